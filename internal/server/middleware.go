package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pfrederiksen/bin-days/internal/logger"
	"github.com/pfrederiksen/bin-days/internal/schedule"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to a handler left-to-right (first middleware is outermost).
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.status = http.StatusOK
		w.wrote = true
	}
	return w.ResponseWriter.Write(b)
}

// lookupNote carries the variant and lookup outcome of a request back to the
// request log.
type lookupNote struct {
	variant string
	outcome string
}

type lookupNoteKey struct{}

// noteLookup records the lookup outcome on the request's note, if any.
func noteLookup(ctx context.Context, variant, outcome string) {
	if n, ok := ctx.Value(lookupNoteKey{}).(*lookupNote); ok {
		n.variant = variant
		n.outcome = outcome
	}
}

// RequestLogger returns middleware that logs method, path, status, duration,
// and for schedule requests the variant and lookup outcome.
// A schedule request whose lookup failed is logged at WARN.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			note := &lookupNote{}
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), lookupNoteKey{}, note)))

			fields := logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if note.variant == "" {
				log.Info("request", fields)
				return
			}
			fields["variant"] = note.variant
			fields["outcome"] = note.outcome
			if note.outcome != schedule.KindSuccess.String() {
				log.Warn("request", fields)
				return
			}
			log.Info("request", fields)
		})
	}
}

// Recover returns middleware that catches panics and responds with 500.
func Recover(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", logger.Fields{"path": r.URL.Path}, fmt.Errorf("%v", rec))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// OTel returns middleware that creates OpenTelemetry spans for each request.
func OTel(serviceName string) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName)
	}
}
