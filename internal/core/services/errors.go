package services

import "errors"

// Verification service errors.
var (
	// ErrInvalidConfiguration is returned synchronously by policy setters when
	// a value is out of range. It is never deferred to Verify.
	ErrInvalidConfiguration = errors.New("invalid verification policy configuration")
	// ErrPolicySealed is returned by setters once the first verification has
	// started. Policy must be fully configured before any Verify call.
	ErrPolicySealed = errors.New("verification policy is sealed")
	// ErrUpstream is returned by Verify when the registry read or the country
	// list packing fails and the request cannot be assembled at all.
	ErrUpstream = errors.New("cannot assemble verification request")
	// ErrMalformedSignals is returned by Verify when the public signal vector
	// does not match the disclose circuit layout.
	ErrMalformedSignals = errors.New("malformed public signals")
	// ErrEmptyHubResponse marks a hub adapter that reported success without a
	// response. It surfaces inside the outcome like a failed hub call.
	ErrEmptyHubResponse = errors.New("hub returned an empty response")
)
