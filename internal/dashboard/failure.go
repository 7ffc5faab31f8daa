package dashboard

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tOgg1/planproof/internal/planapi"
)

// FailureKind is the coarse cause of a failed request.
type FailureKind string

const (
	FailureServer   FailureKind = "server"
	FailureNotFound FailureKind = "not_found"
	FailureNetwork  FailureKind = "network"
	FailureOther    FailureKind = "other"
)

// User-facing failure copy.
const (
	MessageServerFault = "The planning service hit an internal error. Please try again in a moment."
	MessageNotFound    = "Planning endpoint not found. Check that the API server is running."
	MessageNetwork     = "Unable to reach the planning service. Check your connection and that the server is running."
	messageOtherPrefix = "Planning failed: "
)

// Failure is a classified request failure ready for display.
type Failure struct {
	Kind    FailureKind
	Message string
}

// ClassifyFailure picks the message shown for a failed request. Typed
// transport errors are classified by status code first. Anything else falls
// back to matching substrings of the error text; that fallback will also
// match e.g. "404" inside an unrelated message.
func ClassifyFailure(err error) Failure {
	if err == nil {
		return Failure{Kind: FailureOther, Message: messageOtherPrefix + "unknown error"}
	}

	var statusErr *planapi.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode >= http.StatusInternalServerError:
			return Failure{Kind: FailureServer, Message: MessageServerFault}
		case statusErr.StatusCode == http.StatusNotFound:
			return Failure{Kind: FailureNotFound, Message: MessageNotFound}
		}
		return Failure{Kind: FailureOther, Message: messageOtherPrefix + err.Error()}
	}
	var netErr *planapi.NetworkError
	if errors.As(err, &netErr) {
		return Failure{Kind: FailureNetwork, Message: MessageNetwork}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "500"):
		return Failure{Kind: FailureServer, Message: MessageServerFault}
	case strings.Contains(msg, "404"):
		return Failure{Kind: FailureNotFound, Message: MessageNotFound}
	case strings.Contains(msg, "NetworkError"), strings.Contains(msg, "Failed to fetch"):
		return Failure{Kind: FailureNetwork, Message: MessageNetwork}
	}
	return Failure{Kind: FailureOther, Message: messageOtherPrefix + msg}
}
