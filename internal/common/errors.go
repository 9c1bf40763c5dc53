// Package common contains shared constants and sentinel errors used across
// AgroVest components. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Location errors (no coordinates configured or resolvable).
	ErrLocationUnavailable = errors.New("location unavailable")

	// Analysis errors (backend reachable but rejected the request).
	ErrAnalysisRejected = errors.New("analysis rejected")
)
