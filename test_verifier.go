package recaptcha

import "context"

// TestVerifier is a Verifier with a fixed outcome and no network access.
// Use it in non-production environments to disable real verification.
// The outcome is fixed at construction time; there is no runtime toggle,
// so sharing one instance across requests is safe.
type TestVerifier struct {
	result bool
}

// NewTestVerifier creates a verifier that returns the given result for
// any token, including an empty one.
func NewTestVerifier(result bool) *TestVerifier {
	return &TestVerifier{result: result}
}

// Validate implements the Verifier interface.
func (v *TestVerifier) Validate(ctx context.Context, token string) bool {
	return v.result
}

// ValidateWithDetails implements the Verifier interface.
func (v *TestVerifier) ValidateWithDetails(ctx context.Context, token string) (bool, string) {
	if v.result {
		return true, ""
	}
	return false, msgTestModeFailed
}
