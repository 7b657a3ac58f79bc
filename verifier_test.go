package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSiteverify stands in for the remote verification endpoint and counts
// every request it receives.
type fakeSiteverify struct {
	status int
	body   string

	calls      int64
	lastSecret string
	lastToken  string
}

func (f *fakeSiteverify) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.calls, 1)
		_ = r.ParseForm()
		f.lastSecret = r.PostFormValue("secret")
		f.lastToken = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}
}

func (f *fakeSiteverify) Calls() int {
	return int(atomic.LoadInt64(&f.calls))
}

func newTestGoogleVerifier(t *testing.T, remote *fakeSiteverify) *GoogleVerifier {
	t.Helper()
	srv := httptest.NewServer(remote.handler())
	t.Cleanup(srv.Close)

	v, err := NewGoogleVerifier("test-secret", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return v
}

func TestNewGoogleVerifier_RequiresSecret(t *testing.T) {
	_, err := NewGoogleVerifier("")
	require.Error(t, err)
}

func TestGoogleVerifier_EmptyToken_NoNetworkCall(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusOK, body: `{"success": true}`}
	v := newTestGoogleVerifier(t, remote)

	require.False(t, v.Validate(context.Background(), ""))

	success, detail := v.ValidateWithDetails(context.Background(), "")
	require.False(t, success)
	require.Equal(t, "reCAPTCHA response was not provided", detail)

	require.Equal(t, 0, remote.Calls(), "empty token must never reach the network")
}

func TestGoogleVerifier_Success(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusOK, body: `{"success": true, "hostname": "example.com"}`}
	v := newTestGoogleVerifier(t, remote)

	require.True(t, v.Validate(context.Background(), "valid-token"))
	require.Equal(t, 1, remote.Calls())
	require.Equal(t, "test-secret", remote.lastSecret)
	require.Equal(t, "valid-token", remote.lastToken)

	success, detail := v.ValidateWithDetails(context.Background(), "valid-token")
	require.True(t, success)
	require.Empty(t, detail)
}

func TestGoogleVerifier_RemoteRejection_SurfacesErrorCodes(t *testing.T) {
	remote := &fakeSiteverify{
		status: http.StatusOK,
		body:   `{"success": false, "error-codes": ["invalid-input-response"]}`,
	}
	v := newTestGoogleVerifier(t, remote)

	require.False(t, v.Validate(context.Background(), "bad-token"))

	success, detail := v.ValidateWithDetails(context.Background(), "bad-token")
	require.False(t, success)
	require.Contains(t, detail, "invalid-input-response")
}

func TestGoogleVerifier_RemoteRejection_NoErrorCodes(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusOK, body: `{"success": false}`}
	v := newTestGoogleVerifier(t, remote)

	success, detail := v.ValidateWithDetails(context.Background(), "bad-token")
	require.False(t, success)
	require.NotEmpty(t, detail)
}

func TestGoogleVerifier_HTTPErrorStatus(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusInternalServerError, body: "boom"}
	v := newTestGoogleVerifier(t, remote)

	require.False(t, v.Validate(context.Background(), "any-token"))

	success, detail := v.ValidateWithDetails(context.Background(), "any-token")
	require.False(t, success)
	require.Contains(t, detail, "500")
}

func TestGoogleVerifier_MalformedBody(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusOK, body: "<html>not json</html>"}
	v := newTestGoogleVerifier(t, remote)

	require.False(t, v.Validate(context.Background(), "any-token"))

	success, detail := v.ValidateWithDetails(context.Background(), "any-token")
	require.False(t, success)
	require.Equal(t, "could not parse the reCAPTCHA verification response", detail)
}

func TestGoogleVerifier_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close() // connection refused from here on

	v, err := NewGoogleVerifier("test-secret", WithEndpoint(endpoint))
	require.NoError(t, err)

	require.False(t, v.Validate(context.Background(), "any-token"))

	success, detail := v.ValidateWithDetails(context.Background(), "any-token")
	require.False(t, success)
	require.Equal(t, "failed to reach the reCAPTCHA verification service", detail)
}

func TestGoogleVerifier_CaseInsensitiveSuccessKey(t *testing.T) {
	remote := &fakeSiteverify{status: http.StatusOK, body: `{"Success": true}`}
	v := newTestGoogleVerifier(t, remote)

	require.True(t, v.Validate(context.Background(), "valid-token"))
}

func TestTestVerifier_FixedResult(t *testing.T) {
	t.Run("Success_For_Any_Token", func(t *testing.T) {
		v := NewTestVerifier(true)
		require.True(t, v.Validate(context.Background(), "anything"))
		require.True(t, v.Validate(context.Background(), ""))

		success, detail := v.ValidateWithDetails(context.Background(), "")
		require.True(t, success)
		require.Empty(t, detail)
	})

	t.Run("Failure_With_Detail", func(t *testing.T) {
		v := NewTestVerifier(false)
		require.False(t, v.Validate(context.Background(), "anything"))

		success, detail := v.ValidateWithDetails(context.Background(), "anything")
		require.False(t, success)
		require.Equal(t, "Test mode validation failed", detail)
	})
}
