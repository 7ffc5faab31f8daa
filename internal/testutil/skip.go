package testutil

import (
	"os"
	"testing"
)

// SkipIfNoNetwork skips the test if PLANPROOF_TEST_SKIP_NETWORK is set.
// Use this for tests that need a loopback listener, which sandboxed
// environments may not allow.
func SkipIfNoNetwork(t *testing.T) {
	t.Helper()
	if os.Getenv("PLANPROOF_TEST_SKIP_NETWORK") != "" {
		t.Skip("skipping network test: PLANPROOF_TEST_SKIP_NETWORK is set")
	}
}
