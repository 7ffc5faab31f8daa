package dashboard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/planproof/internal/planapi"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind FailureKind
		msg  string
	}{
		{"status 500", &planapi.StatusError{StatusCode: 500, Status: "500 Internal Server Error"}, FailureServer, MessageServerFault},
		{"status 503", &planapi.StatusError{StatusCode: 503}, FailureServer, MessageServerFault},
		{"status 404", &planapi.StatusError{StatusCode: 404, Status: "404 Not Found"}, FailureNotFound, MessageNotFound},
		{"status 422", &planapi.StatusError{StatusCode: 422, Status: "422 Unprocessable Entity"}, FailureOther, "Planning failed: API error: 422 Unprocessable Entity"},
		{"wrapped network", fmt.Errorf("plan request: %w", &planapi.NetworkError{Err: errors.New("connection refused")}), FailureNetwork, MessageNetwork},
		{"text 500", errors.New("API error: 500"), FailureServer, MessageServerFault},
		{"text 404", errors.New("API error: 404"), FailureNotFound, MessageNotFound},
		{"text network", errors.New("NetworkError when attempting to fetch resource."), FailureNetwork, MessageNetwork},
		{"text failed to fetch", errors.New("TypeError: Failed to fetch"), FailureNetwork, MessageNetwork},
		{"other", errors.New("boom"), FailureOther, "Planning failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFailure(tt.err)
			require.Equal(t, tt.kind, got.Kind)
			require.Equal(t, tt.msg, got.Message)
		})
	}
}

// A typed status error is never re-read through its text, so a 422 whose
// message happens to contain "404" stays generic.
func TestClassifyFailureTypedErrorIgnoresSubstrings(t *testing.T) {
	got := ClassifyFailure(&planapi.StatusError{StatusCode: 400, Status: "400 item 404 missing"})
	require.Equal(t, FailureOther, got.Kind)
}
