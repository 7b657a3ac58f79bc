package types

// HTTP Header Constants
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
)

// Content Type Constants
const (
	ContentTypeForm          = "application/x-www-form-urlencoded"
	ContentTypeMultipartForm = "multipart/form-data"
	ContentTypeJSON          = "application/json"
)

// TokenFormField is the form field the reCAPTCHA widget submits its
// response token under.
const TokenFormField = "g-recaptcha-response"

// SiteverifyURL is the Google endpoint that validates response tokens.
const SiteverifyURL = "https://www.google.com/recaptcha/api/siteverify"

// WidgetScriptURL serves the client-side widget script.
const WidgetScriptURL = "https://www.google.com/recaptcha/api.js"
