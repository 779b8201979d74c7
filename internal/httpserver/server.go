// internal/httpserver/server.go
//
// HTTP server wiring for the word API.
// Responsibilities:
//   - Router + middleware (request IDs, access log, metrics, panic recovery,
//     timeouts, JSON content type, CORS).
//   - Word endpoints: "/", "/random-word", "/check-word", "/health", "/metrics".
//   - Optional game endpoints, mounted when their dependency is configured:
//     /rounds, /matches, /daily*, /players.
//
// Notes:
//   - The dictionary is read-only, so handlers share it without locking.
//   - Handler errors are mapped to status codes here; internal details never
//     reach the response body.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/wordventure/word-api/internal/daily"
	"github.com/wordventure/word-api/internal/metrics"
	"github.com/wordventure/word-api/internal/round"
	"github.com/wordventure/word-api/internal/stats"
	"github.com/wordventure/word-api/internal/store"
	"github.com/wordventure/word-api/internal/words"
)

const maxBodyBytes = 1 << 20

// Options carries the server's collaborators. Dict is required; nil optional
// collaborators leave their routes unmounted.
type Options struct {
	Dict           *words.Dictionary
	Metrics        *metrics.Metrics
	Rounds         *round.Issuer
	Matches        store.Store
	Daily          *daily.Picker
	DailyStore     *daily.Store
	Stats          *stats.Store
	ClientOrigin   string
	RequestTimeout time.Duration
	Logger         *zerolog.Logger
}

// Server bundles router and dependencies.
type Server struct {
	r        *chi.Mux
	dict     *words.Dictionary
	metrics  *metrics.Metrics
	validate *validator.Validate
	opts     Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Matches == nil {
		opts.Matches = store.NewMemoryStore()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{
		r:        chi.NewRouter(),
		dict:     opts.Dict,
		metrics:  opts.Metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))            // request-scoped zerolog logger
	s.r.Use(hlog.AccessHandler(s.accessLog))    // access log + request metrics
	s.r.Use(recoverJSON)                        // recover from panics with a JSON 500
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	s.mountWords()
	s.r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	if opts.Rounds != nil {
		s.mountRounds()
	}
	s.mountMatches()
	if opts.Daily != nil {
		s.mountDaily()
	}
	if opts.Stats != nil {
		s.mountPlayers()
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.opts.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// accessLog writes one line per request and counts it by route pattern.
func (s *Server) accessLog(r *http.Request, status, size int, d time.Duration) {
	route := ""
	if rc := chi.RouteContext(r.Context()); rc != nil {
		route = rc.RoutePattern()
	}
	s.metrics.ObserveRequest(route, r.Method, status)
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// recoverJSON turns a handler panic into a logged 500 with a generic body.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				hlog.FromRequest(r).Error().
					Str("req_id", chimw.GetReqID(r.Context())).
					Interface("panic", rec).
					Msg("handler panic")
				writeError(w, http.StatusInternalServerError, "internal_error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- helpers -----------------------------------

type errorRes struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorRes{Error: code})
}

// errBadBody marks a request body that failed to decode.
var errBadBody = errors.New("invalid request body")

// decode reads a size-limited JSON body into v and validates it.
// An empty body decodes as {}, so it fails validation rather than parsing.
// It returns errBadBody for undecodable input, or validator.ValidationErrors.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errBadBody
	}
	return s.validate.Struct(v)
}

// internalError logs err against the request and writes a generic 500.
func internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	hlog.FromRequest(r).Error().Err(err).Str("req_id", chimw.GetReqID(r.Context())).Msg(msg)
	writeError(w, http.StatusInternalServerError, "internal_error")
}
