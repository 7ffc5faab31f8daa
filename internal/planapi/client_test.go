package planapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/planproof/internal/testutil"
)

func TestClientPlanPostsRequestAndDecodes(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	var got PlanRequest
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/plan", r.URL.Path)
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"plan": [{"task": "Write"}], "validation": {"status": "fail", "errors": ["Overlap"]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/api/plan")
	resp, err := client.Plan(context.Background(), PlanRequest{
		Context:     "write report",
		CurrentTime: "2024-01-01T08:00:00.000Z",
		Timezone:    "UTC",
		Variant:     "v1_naive",
	})
	require.NoError(t, err)

	require.Equal(t, "write report", got.Context)
	require.Equal(t, "2024-01-01T08:00:00.000Z", got.CurrentTime)
	require.Equal(t, "UTC", got.Timezone)
	require.Equal(t, "v1_naive", got.Variant)
	require.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	require.NotEmpty(t, gotHeaders.Get(RequestIDHeader))

	require.Len(t, resp.Plan, 1)
	require.Equal(t, StatusFail, resp.Validation.Status)
	require.Equal(t, []string{"Overlap"}, resp.Validation.Errors)
}

func TestClientPlanReturnsStatusError(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Plan(context.Background(), PlanRequest{Context: "x"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	require.Equal(t, "API error: 500 Internal Server Error", err.Error())
}

func TestClientPlanReturnsNetworkError(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Plan(context.Background(), PlanRequest{Context: "x"})
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	require.Contains(t, err.Error(), "NetworkError")
}

func TestClientPlanReturnsDecodeError(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Plan(context.Background(), PlanRequest{Context: "x"})
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestClientSchemaDeviationDoesNotFail(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"plan": [1, 2], "validation": {"status": "maybe"}}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, WithSchemaCheck(true)).Plan(context.Background(), PlanRequest{Context: "x"})
	require.NoError(t, err)
	require.Len(t, resp.Plan, 2)
	require.False(t, resp.Plan[0].Valid())
}

func TestClientTimeoutWrapsSlowServer(t *testing.T) {
	testutil.SkipIfNoNetwork(t)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond)).Plan(context.Background(), PlanRequest{Context: "x"})
	require.Error(t, err)
}

func TestSchemaIssues(t *testing.T) {
	require.Empty(t, SchemaIssues([]byte(`{"plan": [], "validation": {"status": "pass", "metrics": {"keyword_recall_score": 0.5}, "errors": []}}`)))
	require.NotEmpty(t, SchemaIssues([]byte(`{"validation": {"status": "pending"}}`)))
	require.NotEmpty(t, SchemaIssues([]byte(`{"plan": ["x"]}`)))
}
