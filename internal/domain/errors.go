package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrUpstreamUnavailable indicates a dictionary or thesaurus provider
	// returned a non-success, non-404 status.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrCacheUnavailable indicates the remote cache store returned a
	// non-success status on read or write.
	ErrCacheUnavailable = errors.New("cache store unavailable")

	// ErrResolutionExhausted indicates the thesaurus kept answering with
	// spelling suggestions until the lookup depth limit was reached.
	ErrResolutionExhausted = errors.New("thesaurus resolution exhausted")

	// ErrNoUsableSense indicates a terminal thesaurus response carried no
	// sense entry with a plain-word identifier.
	ErrNoUsableSense = errors.New("no usable sense in thesaurus response")
)
