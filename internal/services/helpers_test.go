package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

// newTestClient points a game API client at an in-process stub upstream.
func newTestClient(t *testing.T, handler http.Handler) *gameapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gameapi.NewClient(srv.URL, 2*time.Second)
}

func testViewer() *viewer.Viewer {
	return &viewer.Viewer{MemberID: 42, Nickname: "tester", Token: "upstream-token"}
}

func testAdmin() *viewer.Viewer {
	return &viewer.Viewer{MemberID: 1, Nickname: "gm_luna", Roles: []string{"ADMIN"}, Token: "admin-token"}
}

// gameapiUnreachableClient points at a server that is already gone, so every
// call fails at the transport layer with no response received.
func gameapiUnreachableClient(t *testing.T) *gameapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return gameapi.NewClient(url, 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
