package cli

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/docsort-cli/internal/core/domain"
)

// mockPlanner returns a canned plan.
type mockPlanner struct {
	plan        *domain.MatchPlan
	err         error
	gotSettings domain.Settings
}

func (m *mockPlanner) Scan(_ context.Context, settings domain.Settings) (*domain.MatchPlan, error) {
	m.gotSettings = settings
	if m.err != nil {
		return nil, m.err
	}
	return m.plan, nil
}

// mockApply reports success for every matched candidate.
type mockApply struct {
	results   []domain.MoveResult
	gotScanID string
	called    bool
}

func (m *mockApply) Apply(_ context.Context, scanID string, _ []domain.MatchCandidate) []domain.MoveResult {
	m.called = true
	m.gotScanID = scanID
	return m.results
}

// mockJournal serves canned records.
type mockJournal struct {
	records  []domain.MoveRecord
	listErr  error
	gotLimit int
}

func (m *mockJournal) Record(_ context.Context, rec domain.MoveRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *mockJournal) List(_ context.Context, limit int) ([]domain.MoveRecord, error) {
	m.gotLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockJournal) Close() error { return nil }

// mockConfig is an in-memory config store.
type mockConfig struct {
	data map[string]any
}

func newMockConfig() *mockConfig {
	return &mockConfig{data: make(map[string]any)}
}

func (m *mockConfig) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfig) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfig) GetFloat(key string) float64 {
	if f, ok := m.data[key].(float64); ok {
		return f
	}
	return 0
}

func (m *mockConfig) GetInt(key string) int {
	if n, ok := m.data[key].(int); ok {
		return n
	}
	return 0
}

func (m *mockConfig) GetBool(key string) bool {
	if b, ok := m.data[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfig) GetStringSlice(key string) []string {
	if s, ok := m.data[key].([]string); ok {
		return s
	}
	return nil
}

func (m *mockConfig) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfig) Load() error { return nil }

// testPlan builds a plan with one matched and one unmatched candidate.
func testPlan() *domain.MatchPlan {
	chase := &domain.DestinationProfile{
		Path: "/docs/Chase",
		Name: "Chase",
	}
	return &domain.MatchPlan{
		ID:        "11111111-2222-3333-4444-555555555555",
		Threshold: 0.35,
		Candidates: []domain.MatchCandidate{
			{
				Source:       domain.SourceDocument{Path: "/inbox/statement.pdf", Extension: "pdf"},
				Destination:  chase,
				Score:        0.82,
				ProposedName: "Chase_2023-04.pdf",
			},
			{
				Source: domain.SourceDocument{Path: "/inbox/mystery.pdf", Extension: "pdf"},
				Score:  0.10,
			},
		},
		StartedAt: time.Now(),
	}
}

// setupTestServices swaps every package-level service for a mock and
// returns a cleanup that restores them and resets the shared scan flags.
func setupTestServices() func() {
	oldPlanner := plannerService
	oldApply := applyService
	oldJournal := moveJournal
	oldConfig := configStore

	plannerService = &mockPlanner{plan: testPlan()}
	applyService = &mockApply{results: []domain.MoveResult{
		{SourcePath: "/inbox/statement.pdf", TargetPath: "/docs/Chase/Chase_2023-04.pdf"},
	}}
	moveJournal = &mockJournal{}
	configStore = newMockConfig()

	return func() {
		plannerService = oldPlanner
		applyService = oldApply
		moveJournal = oldJournal
		configStore = oldConfig
		resetScanFlags()
	}
}

func resetScanFlags() {
	scanSource = ""
	scanDest = ""
	scanThreshold = -1
	scanMaxPages = 0
	scanExts = nil
	scanJSON = false
	watchApply = false
}

var errBoom = errors.New("boom")
