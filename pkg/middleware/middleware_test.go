package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/agent-hub/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSystem_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mw := middleware.New()
	mw.Use(mark("first"))
	mw.Use(mark("second"))
	mw.Use(mark("third"))

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "third", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantPath   string
		wantLoc    string
	}{
		{"root untouched", http.MethodGet, "/", http.StatusOK, "/", ""},
		{"no slash", http.MethodGet, "/available_agents", http.StatusOK, "/available_agents", ""},
		{"get redirects", http.MethodGet, "/available_agents/", http.StatusMovedPermanently, "", "/available_agents"},
		{"query kept", http.MethodGet, "/available_agents/?x=1", http.StatusMovedPermanently, "", "/available_agents?x=1"},
		{"post rewritten", http.MethodPost, "/start_agent/", http.StatusOK, "/start_agent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			handler := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLoc != "" {
				if loc := rec.Header().Get("Location"); loc != tt.wantLoc {
					t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
				}
				return
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFrom(r.Context())
	}))

	t.Run("propagates inbound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "abc-123" {
			t.Errorf("context id = %q, want abc-123", seen)
		}
		if got := rec.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
			t.Errorf("response id = %q, want abc-123", got)
		}
	})

	t.Run("generates when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		got := rec.Header().Get(middleware.RequestIDHeader)
		if len(got) != 36 {
			t.Errorf("generated id = %q, want uuid", got)
		}
		if seen != got {
			t.Errorf("context id = %q, want %q", seen, got)
		}
	})

	t.Run("replaces oversized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(middleware.RequestIDHeader); len(got) != 36 {
			t.Errorf("id = %q, want uuid", got)
		}
	})
}

func TestRequestIDFrom_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := middleware.RequestIDFrom(req.Context()); got != "" {
		t.Errorf("RequestIDFrom() = %q, want empty", got)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/available_agents?x=1", nil))

	out := buf.String()
	for _, want := range []string{"msg=request", "method=GET", "uri=\"/available_agents?x=1\"", "status=418"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func corsConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:5173", "myurl.com"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           3600,
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *middleware.CORSConfig
		method      string
		origin      string
		wantStatus  int
		wantReached bool
		wantOrigin  string
	}{
		{"allowed get", corsConfig(), http.MethodGet, "http://localhost:5173", http.StatusNoContent, true, "http://localhost:5173"},
		{"allowed preflight", corsConfig(), http.MethodOptions, "myurl.com", http.StatusOK, false, "myurl.com"},
		{"unlisted origin", corsConfig(), http.MethodGet, "http://evil.example", http.StatusNoContent, true, ""},
		{"no origin", corsConfig(), http.MethodGet, "", http.StatusNoContent, true, ""},
		{"disabled", &middleware.CORSConfig{Origins: []string{"myurl.com"}}, http.MethodGet, "myurl.com", http.StatusNoContent, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			handler := middleware.CORS(tt.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(tt.method, "/available_agents", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if reached != tt.wantReached {
				t.Errorf("reached = %v, want %v", reached, tt.wantReached)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_Headers(t *testing.T) {
	handler := middleware.CORS(corsConfig())(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/start_agent", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	want := map[string]string{
		"Access-Control-Allow-Methods":     "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "3600",
		"Vary":                             "Origin",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		status      int
		body        string
		want        string
	}{
		{"json object", "application/json", http.StatusOK, `{"agent_id":"1","start_time":"t"}`, `{"agentId":"1","startTime":"t"}`},
		{"json with charset", "application/json; charset=utf-8", http.StatusCreated, `[{"end_time":null}]`, `[{"endTime":null}]`},
		{"error status kept", "application/json", http.StatusInternalServerError, `{"error":"boom"}`, `{"error":"boom"}`},
		{"plain text untouched", "text/plain", http.StatusOK, `{"agent_id":"1"}`, `{"agent_id":"1"}`},
		{"invalid json sent as is", "application/json", http.StatusOK, `{"agent_id":`, `{"agent_id":`},
		{"collision sent as is", "application/json", http.StatusOK, `{"a_b":1,"aB":2}`, `{"a_b":1,"aB":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CamelCase(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCamelCase_ImplicitStatus(t *testing.T) {
	handler := middleware.CamelCase(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"currently_running":[]}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"currentlyRunning":[]}` {
		t.Errorf("body = %s", got)
	}
}

func TestCamelCase_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.CamelCase(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected warn log, got %s", buf.String())
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		t.Fatalf("NewHTTPMetrics() error = %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /available_agents", func(w http.ResponseWriter, r *http.Request) {})

	handler := middleware.Metrics(m)(mux)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/available_agents", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	expected := `
# HELP http_requests_total Count of HTTP requests by route and status.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="GET /available_agents",status="200"} 1
http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestNewHTTPMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := middleware.NewHTTPMetrics(reg); err != nil {
		t.Fatalf("first registration error = %v", err)
	}
	if _, err := middleware.NewHTTPMetrics(reg); err == nil {
		t.Error("expected error on duplicate registration")
	}
}
