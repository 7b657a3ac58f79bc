package errors

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error codes for captcha verification responses
const (
	CodeCaptchaFailed        = "CAPTCHA_FAILED"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeSystemError          = "SYSTEM_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleCaptchaError handles failed captcha verification with 400 Bad Request
func HandleCaptchaError(c *fiber.Ctx, message string, details ...string) error {
	response := ErrorResponse{
		Code:    CodeCaptchaFailed,
		Message: message,
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(http.StatusBadRequest).JSON(response)
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string, details ...string) error {
	response := ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(http.StatusBadRequest).JSON(response)
}

// HandleMissingFieldError handles missing required field errors with 400 Bad Request
func HandleMissingFieldError(c *fiber.Ctx, fieldName string) error {
	message := fmt.Sprintf("Missing required field: %s", fieldName)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeMissingRequiredField,
		Message: message,
	})
}

// HandleSystemError handles system errors with 500 Internal Server Error
func HandleSystemError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Code:    CodeSystemError,
		Message: message,
	})
}
