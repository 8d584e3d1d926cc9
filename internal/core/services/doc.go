// Package services implements the driving port interfaces.
// Services contain the matching and renaming engine: destination
// profiling, similarity scoring, date extraction, naming-pattern
// inference, filename generation and the scan/apply orchestration.
//
// Services call out to infrastructure only through the driven ports.
package services
