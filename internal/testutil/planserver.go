// Package testutil holds helpers shared by package tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// PlanServer is a fake planning service that replies with a fixed status
// and body and records every request it receives.
type PlanServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []map[string]any
}

// NewPlanServer starts a fake planning service. It is closed on test
// cleanup.
func NewPlanServer(t *testing.T, status int, body string) *PlanServer {
	t.Helper()
	SkipIfNoNetwork(t)

	ps := &PlanServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		ps.mu.Lock()
		ps.requests = append(ps.requests, decoded)
		ps.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ps.Close)
	return ps
}

// Requests returns the decoded JSON bodies received so far.
func (ps *PlanServer) Requests() []map[string]any {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return append([]map[string]any(nil), ps.requests...)
}
