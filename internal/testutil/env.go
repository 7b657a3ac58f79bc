package testutil

import (
	"strings"
	"testing"

	"github.com/subosito/gotenv"
)

// ApplyTestEnv parses dotenv-formatted content and applies it to the test
// process environment, restoring the previous values when the test ends.
func ApplyTestEnv(t *testing.T, content string) {
	t.Helper()

	env, err := gotenv.StrictParse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse test env: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
}
