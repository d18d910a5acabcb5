package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/bin-days/internal/calendar"
	"github.com/pfrederiksen/bin-days/internal/config"
	"github.com/pfrederiksen/bin-days/internal/logger"
	"github.com/pfrederiksen/bin-days/internal/render"
	"github.com/pfrederiksen/bin-days/internal/schedule"
	"github.com/pfrederiksen/bin-days/internal/scraper"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeICS  = "text/calendar; charset=utf-8"
	serviceName     = "bin-days"
)

// Server routes requests to the configured variants.
type Server struct {
	variants *config.Set
	fetcher  schedule.Fetcher
	metrics  *Metrics
	log      *logger.Logger
	now      func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to logger.Default(); nil is ignored.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics collectors. Defaults to NewMetrics(); nil is ignored.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New creates a Server for variants, fetching pages with fetcher.
func New(variants *config.Set, fetcher schedule.Fetcher, opts ...Option) *Server {
	s := &Server{
		variants: variants,
		fetcher:  fetcher,
		metrics:  NewMetrics(),
		log:      logger.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the full routing tree wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /{name}", s.handleName)

	return Chain(mux,
		Recover(s.log),
		RequestLogger(s.log),
		OTel(serviceName),
	)
}

// VariantHandler serves the HTML page of a single variant.
// It always answers 200; failures are rendered as content.
func (s *Server) VariantHandler(v config.Variant) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := s.lookup(r.Context(), v)
		writeHTML(w, http.StatusOK, render.Result(v, res))
	})
}

// CalendarHandler serves the iCalendar feed of a single variant.
func (s *Server) CalendarHandler(v config.Variant) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := s.lookup(r.Context(), v)
		if res.Kind == schedule.KindFetchError {
			http.Error(w, fmt.Sprintf("Error fetching data: %v", res.Err), http.StatusBadGateway)
			return
		}
		if res.Kind != schedule.KindSuccess {
			http.Error(w, "Could not find bin collection information on the page.", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", contentTypeICS)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.ics"`, v.Slug))
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, calendar.Generate(v, res.Areas, s.now()))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeHTML(w, http.StatusOK, render.Index(s.variants.All()))
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if slug, ok := strings.CutSuffix(name, ".ics"); ok {
		if v, found := s.variants.Get(slug); found {
			s.CalendarHandler(v).ServeHTTP(w, r)
			return
		}
	} else if v, found := s.variants.Get(name); found {
		s.VariantHandler(v).ServeHTTP(w, r)
		return
	}

	http.NotFound(w, r)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// lookup runs a variant lookup and records its outcome.
func (s *Server) lookup(ctx context.Context, v config.Variant) schedule.Result {
	start := s.now()
	res := schedule.Lookup(ctx, s.fetcher, v)
	s.metrics.ObserveFetch(s.now().Sub(start))
	s.metrics.IncRequest(v.Slug, res.Kind.String())
	noteLookup(ctx, v.Slug, res.Kind.String())

	fields := logger.Fields{
		"variant": v.Slug,
		"outcome": res.Kind.String(),
	}
	switch res.Kind {
	case schedule.KindFetchError:
		s.metrics.IncFetchError(scraper.ErrorLabel(res.Err))
		fields["url"] = v.URL
		s.log.Error("fetching schedule failed", fields, res.Err)
	case schedule.KindSuccess:
		fields["areas"] = len(res.Areas)
		s.log.Debug("schedule resolved", fields)
	default:
		s.log.Warn("schedule has no dates", fields)
	}
	return res
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// ListenAndServe serves s on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", logger.Fields{"addr": addr, "variants": len(s.variants.All())})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		s.log.Info("shutdown signal received", nil)
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
