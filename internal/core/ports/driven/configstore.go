package driven

// ConfigStore provides persistent application configuration.
// Keys use dot notation (e.g., "scan.threshold").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset.
	GetString(key string) string

	// GetFloat retrieves a float value, or 0 if unset.
	GetFloat(key string) float64

	// GetInt retrieves an integer value, or 0 if unset.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if unset.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, or nil if unset.
	GetStringSlice(key string) []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load re-reads configuration from the backing store.
	Load() error
}
