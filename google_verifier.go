package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/qolzam/fiber-recaptcha/internal/pkg/log"
	"github.com/qolzam/fiber-recaptcha/internal/types"
)

// LogFunc receives diagnostic messages for failed verification attempts.
type LogFunc func(ctx context.Context, format string, a ...interface{})

// GoogleVerifier is the production implementation of the Verifier interface.
type GoogleVerifier struct {
	secretKey  string
	endpoint   string
	httpClient *http.Client
	logf       LogFunc
}

// Option configures a GoogleVerifier.
type Option func(*GoogleVerifier)

// WithHTTPClient replaces the default HTTP client, e.g. to control the
// transport timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(v *GoogleVerifier) {
		if c != nil {
			v.httpClient = c
		}
	}
}

// WithEndpoint overrides the siteverify URL. Intended for tests pointing
// the verifier at a local fake endpoint.
func WithEndpoint(endpoint string) Option {
	return func(v *GoogleVerifier) {
		if endpoint != "" {
			v.endpoint = endpoint
		}
	}
}

// WithLogger replaces the default failure logger.
func WithLogger(logf LogFunc) Option {
	return func(v *GoogleVerifier) {
		if logf != nil {
			v.logf = logf
		}
	}
}

// NewGoogleVerifier creates a new production-ready verifier.
func NewGoogleVerifier(secretKey string, opts ...Option) (*GoogleVerifier, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("recaptcha secret key cannot be empty")
	}
	v := &GoogleVerifier{
		secretKey:  secretKey,
		endpoint:   types.SiteverifyURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logf:       log.ErrorWithContext,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate implements the Verifier interface.
func (v *GoogleVerifier) Validate(ctx context.Context, token string) bool {
	success, _ := v.verify(ctx, token)
	return success
}

// ValidateWithDetails implements the Verifier interface.
func (v *GoogleVerifier) ValidateWithDetails(ctx context.Context, token string) (bool, string) {
	return v.verify(ctx, token)
}

// verify performs the single outbound siteverify call. All failure modes
// collapse to (false, detail); nothing crosses this boundary as an error.
func (v *GoogleVerifier) verify(ctx context.Context, token string) (bool, string) {
	if token == "" {
		return false, msgTokenMissing
	}

	formData := url.Values{
		"secret":   {v.secretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		v.logf(ctx, "failed to create recaptcha request: %v", err)
		return false, msgUnreachable
	}
	req.Header.Set(types.HeaderContentType, types.ContentTypeForm)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logf(ctx, "failed to call recaptcha api: %v", err)
		return false, msgUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		v.logf(ctx, "recaptcha api returned status %d", resp.StatusCode)
		return false, fmt.Sprintf("reCAPTCHA verification request failed with status %d", resp.StatusCode)
	}

	var remote RemoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		v.logf(ctx, "failed to decode recaptcha response: %v", err)
		return false, msgUnparsable
	}

	if !remote.Success {
		if len(remote.ErrorCodes) > 0 {
			detail := fmt.Sprintf("%s: %s", msgRejected, strings.Join(remote.ErrorCodes, ", "))
			v.logf(ctx, "recaptcha rejected token: %s", strings.Join(remote.ErrorCodes, ", "))
			return false, detail
		}
		return false, msgRejected
	}
	return true, ""
}
