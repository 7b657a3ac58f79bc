package recaptcha

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/fiber-recaptcha/errors"
	"github.com/qolzam/fiber-recaptcha/internal/types"
)

// Renderer is the capability the hosting application supplies to re-display
// a form view after a failed verification. The model carries whatever form
// input was bound before rejection, so the user does not lose it.
type Renderer interface {
	// RenderForm re-renders the current view with the bound model and the
	// accumulated validation errors.
	RenderForm(c *fiber.Ctx, model interface{}, errs []string) error
}

// Config defines the config for middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Verifier validates the submitted response token.
	//
	// Required.
	Verifier Verifier

	// FormField is the form field carrying the response token.
	//
	// Optional. Default: "g-recaptcha-response"
	FormField string

	// ErrorMessage is recorded in the request's validation errors and
	// returned to the client when verification fails.
	//
	// Optional. Default: "reCAPTCHA verification failed. Please try again."
	ErrorMessage string

	// Renderer re-renders the submitting view for browser-style clients.
	// When nil, failed browser requests receive the Rejected response.
	//
	// Optional. Default: nil
	Renderer Renderer

	// NewModel returns a fresh model the form input is bound to before
	// re-rendering. Only used together with Renderer.
	//
	// Optional. Default: nil
	NewModel func() interface{}

	// Rejected defines the response for failed verifications that cannot be
	// re-rendered. By default it returns a 400 with a structured error body.
	//
	// Optional. Default: nil
	Rejected fiber.Handler
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Next:         nil,
	FormField:    types.TokenFormField,
	ErrorMessage: "reCAPTCHA verification failed. Please try again.",
}

// Helper function to set default values
func configDefault(config ...Config) Config {
	// Return default config if nothing provided
	if len(config) < 1 {
		return ConfigDefault
	}

	// Override default config
	cfg := config[0]

	// Set default values
	if cfg.FormField == "" {
		cfg.FormField = ConfigDefault.FormField
	}
	if cfg.ErrorMessage == "" {
		cfg.ErrorMessage = ConfigDefault.ErrorMessage
	}
	if cfg.Rejected == nil {
		cfg.Rejected = func(c *fiber.Ctx) error {
			return errors.HandleCaptchaError(c, cfg.ErrorMessage)
		}
	}
	return cfg
}
