// Package recaptcha integrates Google reCAPTCHA v2 verification into
// Fiber applications. It provides a Verifier client for the siteverify
// endpoint, a route guard middleware (middleware/recaptcha) and widget
// markup helpers (widget).
package recaptcha

import "context"

// Verifier is the interface that wraps the basic reCAPTCHA verification methods.
type Verifier interface {
	// Validate takes a reCAPTCHA response token and reports whether it is
	// valid. Every failure mode (empty token, transport error, remote
	// rejection, malformed response) collapses to false; this method never
	// returns an error.
	Validate(ctx context.Context, token string) bool

	// ValidateWithDetails behaves like Validate but additionally returns a
	// human-readable diagnostic on failure. On success the detail is empty.
	ValidateWithDetails(ctx context.Context, token string) (bool, string)
}

// RemoteResponse is the wire shape returned by the verification endpoint.
// It is parsed once per call and discarded.
type RemoteResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Failure diagnostics returned by ValidateWithDetails.
const (
	msgTokenMissing   = "reCAPTCHA response was not provided"
	msgTestModeFailed = "Test mode validation failed"
	msgUnreachable    = "failed to reach the reCAPTCHA verification service"
	msgUnparsable     = "could not parse the reCAPTCHA verification response"
	msgRejected       = "reCAPTCHA verification failed"
)
