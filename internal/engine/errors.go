package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput means the input URL carries no video identifier.
	ErrMalformedInput = errors.New("malformed input")
	// ErrNoCaptions means none of the preferred languages has a caption track.
	ErrNoCaptions = errors.New("no captions available")
)

// ProviderAuthError reports a missing or rejected provider credential.
type ProviderAuthError struct {
	Provider string
	Err      error
}

func (e *ProviderAuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Provider, e.Err)
}

func (e *ProviderAuthError) Unwrap() error { return e.Err }

// ProviderRequestError reports any other transport or provider-side failure.
// StatusCode is 0 when no HTTP response was received.
type ProviderRequestError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderRequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: request failed (HTTP %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *ProviderRequestError) Unwrap() error { return e.Err }

// errMissingKey is wrapped by ProviderAuthError when the credential variable is unset.
var errMissingKey = errors.New("API key not set")
