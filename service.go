package recaptcha

// ServiceConfig selects which verifier a host application gets. It is
// fixed at construction time; flipping test mode per-request is not
// supported, run separate instances instead.
type ServiceConfig struct {
	// SecretKey authenticates verification requests to the remote endpoint.
	SecretKey string
	// TestMode skips all network calls and returns TestModeResult.
	TestMode bool
	// TestModeResult is the fixed outcome used in test mode.
	TestModeResult bool
}

// NewVerifier builds the Verifier matching the given config: a fixed-result
// TestVerifier in test mode, a GoogleVerifier otherwise.
func NewVerifier(cfg ServiceConfig, opts ...Option) (Verifier, error) {
	if cfg.TestMode {
		return NewTestVerifier(cfg.TestModeResult), nil
	}
	return NewGoogleVerifier(cfg.SecretKey, opts...)
}
