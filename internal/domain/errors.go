package domain

import "errors"

// Lookup and validation failures surfaced to API callers. Probe
// failures are never errors; they become down CheckResults.
var (
	ErrInvalidURL   = errors.New("invalid URL: must start with http:// or https://")
	ErrDuplicateURL = errors.New("URL is already being monitored")
	ErrNotFound     = errors.New("monitor not found")
)
