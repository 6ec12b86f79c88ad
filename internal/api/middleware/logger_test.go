package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogger(t *testing.T) {
	t.Run("logs method, path, status and request ID", func(t *testing.T) {
		buf := captureLog(t)
		handler := chimiddleware.RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})))

		req := httptest.NewRequest(http.MethodGet, "/api/chart", nil)
		req.Header.Set("X-Request-Id", "req-42")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		line := buf.String()
		for _, want := range []string{"[req-42]", "GET", "/api/chart", "418"} {
			if !strings.Contains(line, want) {
				t.Errorf("Expected log line to contain %q, got %q", want, line)
			}
		}
	})

	t.Run("defaults to 200 when the handler never writes a header", func(t *testing.T) {
		buf := captureLog(t)
		handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(buf.String(), " 200 ") {
			t.Errorf("Expected status 200 in log line, got %q", buf.String())
		}
	})

	// WHY: A path containing CR/LF could forge extra log entries.
	t.Run("strips newlines from the logged path", func(t *testing.T) {
		buf := captureLog(t)
		handler := Logger(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.URL.Path = "/a\nforged entry"
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("Expected a single log line, got %q", buf.String())
		}
	})
}
