package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skytrackr/skytrackr/pkg/catalog"
	"github.com/skytrackr/skytrackr/pkg/logging"
)

func testServer() *Server {
	hd := func(v int) *int { return &v }
	f := func(v float64) *float64 { return &v }
	store := catalog.NewStore([]catalog.StarRecord{
		{HD: hd(48915), RAJ2000: f(101.287), DEJ2000: f(-16.716), Vmag: f(-1.46), DisplayName: "Sirius"},
		{HD: hd(172167), RAJ2000: f(279.234), DEJ2000: f(38.783), Vmag: f(0.03), DisplayName: "Vega"},
	})
	logger := logging.Nop
	return New(store, &logger, DefaultConfig())
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, srv *Server, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding response envelope: %v", err)
		}
	}
	return rec, env
}

// TestListStars tests the full enumeration endpoint.
func TestListStars(t *testing.T) {
	srv := testServer()

	for _, path := range []string{"/api/v1/stars", "/stars"} {
		rec, env := doRequest(t, srv, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
		}
		if env.Error != nil {
			t.Fatalf("GET %s unexpected error: %+v", path, env.Error)
		}

		var stars []catalog.StarRecord
		if err := json.Unmarshal(env.Data, &stars); err != nil {
			t.Fatalf("decoding stars: %v", err)
		}
		if len(stars) != 2 {
			t.Fatalf("GET %s returned %d stars, want 2", path, len(stars))
		}
		if stars[0].DisplayName != "Sirius" {
			t.Errorf("first star display_name = %q, want Sirius (load order preserved)", stars[0].DisplayName)
		}
	}
}

// TestZeroValueConfig tests that a zero-value Config yields a working
// server. Route registration must not panic when no path prefix is set.
func TestZeroValueConfig(t *testing.T) {
	hd := func(v int) *int { return &v }
	f := func(v float64) *float64 { return &v }
	store := catalog.NewStore([]catalog.StarRecord{
		{HD: hd(48915), RAJ2000: f(101.287), DEJ2000: f(-16.716), Vmag: f(-1.46), DisplayName: "Sirius"},
	})
	logger := logging.Nop
	srv := New(store, &logger, Config{})

	for _, path := range []string{"/stars", "/api/v1/stars", "/health"} {
		rec, _ := doRequest(t, srv, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

// TestListStarsMethodNotAllowed tests that only GET is served.
func TestListStarsMethodNotAllowed(t *testing.T) {
	srv := testServer()

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/stars")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Errorf("expected METHOD_NOT_ALLOWED error, got %+v", env.Error)
	}
}

// TestHealth tests the liveness and readiness endpoints.
func TestHealth(t *testing.T) {
	srv := testServer()

	for _, path := range []string{"/health", "/api/v1/health", "/api/v1/ready"} {
		rec, env := doRequest(t, srv, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
		if env.Error != nil {
			t.Errorf("GET %s unexpected error: %+v", path, env.Error)
		}
	}
}

// TestCORSHeaders tests that the default permissive CORS policy applies.
func TestCORSHeaders(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stars", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

// TestCORSPreflight tests that OPTIONS requests short-circuit.
func TestCORSPreflight(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stars", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want 200", rec.Code)
	}
}

// TestFavicon tests the no-content favicon route.
func TestFavicon(t *testing.T) {
	srv := testServer()

	rec, _ := doRequest(t, srv, http.MethodGet, "/favicon.ico")
	if rec.Code != http.StatusNoContent {
		t.Errorf("favicon status = %d, want 204", rec.Code)
	}
}
