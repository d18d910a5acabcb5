package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pfrederiksen/bin-days/internal/logger"
)

func TestChainOrder(t *testing.T) {
	var order []int
	mw := func(n int) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, n)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, 0)
	}), mw(1), mw(2), mw(3))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if len(order) != 4 || order[0] != 1 || order[1] != 2 || order[2] != 3 || order[3] != 0 {
		t.Fatalf("expected [1,2,3,0], got %v", order)
	}
}

func TestRequestLoggerCapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(logger.New(logger.LevelInfo, &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"status":418`) || !strings.Contains(buf.String(), `"path":"/test"`) {
		t.Errorf("log line = %s", buf.String())
	}
}

func TestRequestLoggerNotesLookup(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(logger.New(logger.LevelInfo, &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		noteLookup(r.Context(), "black", "partial_no_data")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/black", nil))

	for _, want := range []string{`"level":"WARN"`, `"variant":"black"`, `"outcome":"partial_no_data"`, `"status":200`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log line %s missing %s", buf.String(), want)
		}
	}
}

func TestNoteLookupWithoutLogger(t *testing.T) {
	// Must not panic when no request note is attached.
	noteLookup(httptest.NewRequest("GET", "/", nil).Context(), "black", "success")
}

func TestRecoverCatchesPanic(t *testing.T) {
	var buf bytes.Buffer
	h := Recover(logger.New(logger.LevelInfo, &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestOTelPassesThrough(t *testing.T) {
	h := OTel("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}
