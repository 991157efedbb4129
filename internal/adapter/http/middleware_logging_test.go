package adapthttp

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(next)

	// Capture log output
	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	req := httptest.NewRequest("GET", "/today", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	logOutput := buf.String()
	for _, want := range []string{"GET", "/today", "418"} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q. Got: %s", want, logOutput)
		}
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	s := &Server{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	w := httptest.NewRecorder()
	s.loggingMiddleware(next).ServeHTTP(w, httptest.NewRequest("GET", "/notes", nil))

	if !strings.Contains(buf.String(), "200") {
		t.Errorf("expected implicit 200 in log, got: %s", buf.String())
	}
}
