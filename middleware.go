package recaptcha

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	"github.com/qolzam/fiber-recaptcha/errors"
	"github.com/qolzam/fiber-recaptcha/internal/pkg/log"
	"github.com/qolzam/fiber-recaptcha/internal/types"
)

// validationErrorsKey is the Locals key holding the request's validation errors.
const validationErrorsKey = "recaptcha_validation_errors"

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// AddValidationError appends a message to the request's validation errors.
func AddValidationError(c *fiber.Ctx, message string) {
	errs := ValidationErrors(c)
	c.Locals(validationErrorsKey, append(errs, message))
}

// ValidationErrors returns the validation errors recorded for this request.
func ValidationErrors(c *fiber.Ctx) []string {
	if errs, ok := c.Locals(validationErrorsKey).([]string); ok {
		return errs
	}
	return nil
}

// New creates a new middleware handler that verifies the reCAPTCHA response
// token of form submissions before the wrapped handler runs. Requests
// without form-encoded content pass through unguarded.
func New(config Config) fiber.Handler {
	// Set default config
	cfg := configDefault(config)

	if cfg.Verifier == nil {
		panic("recaptcha: middleware requires a Verifier")
	}

	// Return new handler
	return func(c *fiber.Ctx) error {
		// Don't execute middleware if Next returns true
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		// No form content means no token to check
		if !hasFormContent(c) {
			return c.Next()
		}

		token := c.FormValue(cfg.FormField)
		success, detail := cfg.Verifier.ValidateWithDetails(c.Context(), token)
		if success {
			return c.Next()
		}

		AddValidationError(c, cfg.ErrorMessage)
		log.WarnWithContext(c.Context(), "recaptcha verification rejected: %s", detail)

		// API-style clients get a structured error payload
		if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return errors.HandleCaptchaError(c, cfg.ErrorMessage, detail)
		}

		// Browser-style clients get the form re-rendered with their input intact
		if cfg.Renderer != nil {
			var model interface{}
			if cfg.NewModel != nil {
				model = cfg.NewModel()
				if err := formDecoder.Decode(model, formValues(c)); err != nil {
					log.WarnWithContext(c.Context(), "failed to bind form input for re-render: %v", err)
				}
			}
			err := cfg.Renderer.RenderForm(c, model, ValidationErrors(c))
			if err == nil {
				return nil
			}
			log.ErrorWithContext(c.Context(), "form re-render failed, sending generic rejection: %v", err)
		} else {
			log.WarnWithContext(c.Context(), "no renderer configured, sending generic rejection")
		}

		return cfg.Rejected(c)
	}
}

// hasFormContent reports whether the request body is form-encoded.
func hasFormContent(c *fiber.Ctx) bool {
	contentType := strings.ToLower(strings.TrimSpace(c.Get(types.HeaderContentType)))
	return strings.HasPrefix(contentType, types.ContentTypeForm) ||
		strings.HasPrefix(contentType, types.ContentTypeMultipartForm)
}

// formValues collects the submitted form fields for model binding.
func formValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, fieldValues := range form.Value {
			for _, v := range fieldValues {
				values.Add(key, v)
			}
		}
	}
	return values
}
