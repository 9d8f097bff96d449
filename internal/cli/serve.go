package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/buildinfo"
	"github.com/matzehuels/steprepeat/pkg/cache"
	"github.com/matzehuels/steprepeat/pkg/config"
	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/observability"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
	"github.com/matzehuels/steprepeat/pkg/preset"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		maxEntries int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and previews over HTTP",
		Long: `Serve layouts and previews over HTTP.

Endpoints (query parameters mirror the layout flags: width, height, margin,
item_width, item_height, unit, document, item):

  GET /api/layout      JSON outcome; 422 with {code,message,field} on bad input
  GET /api/presets     size presets (?kind=document|item)
  GET /preview.svg     SVG of the preferred layout (also .png, .txt)
  GET /healthz         liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if err := errors.ValidateAddr(addr); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, maxEntries)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().IntVar(&maxEntries, "cache-entries", cache.DefaultMemoryEntries, "rendered previews kept in memory")

	return cmd
}

// runServe starts the server and shuts it down gracefully when ctx ends.
func (c *CLI) runServe(ctx context.Context, addr string, maxEntries int) error {
	observability.NewLogHooks(c.Logger).Register()
	defer observability.Reset()

	runner := pipeline.NewRunner(cache.NewMemoryCache(maxEntries), nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(c.Config, runner, c.Logger).routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("preview server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// =============================================================================
// Server
// =============================================================================

// server handles preview requests. Every request resolves and computes its
// own layout, so handlers share nothing but the runner's cache.
type server struct {
	cfg    *config.Config
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(cfg *config.Config, runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{cfg: cfg, runner: runner, logger: logger}
}

// routes builds the chi router.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observeRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/presets", s.handlePresets)
	})
	r.Get("/preview.svg", s.handlePreview(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/preview.png", s.handlePreview(pipeline.FormatPNG, "image/png"))
	r.Get("/preview.txt", s.handlePreview(pipeline.FormatText, "text/plain; charset=utf-8"))

	return r
}

// observeRequests reports every request to the registered HTTP hooks.
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Short(),
	})
}

// handleLayout returns the outcome as JSON.
func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatJSON, "application/json")
}

// handlePreview returns a handler that renders the preferred layout.
func (s *server) handlePreview(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveArtifact(w, r, format, contentType)
	}
}

func (s *server) serveArtifact(w http.ResponseWriter, r *http.Request, format, contentType string) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Layout-Orientation", result.Stats.Orientation.String())
	w.Header().Set("X-Layout-Items", strconv.Itoa(result.Stats.Items))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// handlePresets lists presets, optionally filtered by kind.
func (s *server) handlePresets(w http.ResponseWriter, r *http.Request) {
	kind := preset.Kind(r.URL.Query().Get("kind"))
	if kind != "" && kind != preset.Document && kind != preset.Item {
		writeError(w, errors.NewField(errors.ErrCodeInvalidInput, "kind",
			"kind must be %q or %q", preset.Document, preset.Item))
		return
	}
	reg, err := s.cfg.Registry()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg.List(kind))
}

// options resolves query parameters the same way the CLI resolves flags.
func (s *server) options(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	in := layoutInputs{
		Width:      q.Get("width"),
		Height:     q.Get("height"),
		Margin:     q.Get("margin"),
		ItemWidth:  q.Get("item_width"),
		ItemHeight: q.Get("item_height"),
		Unit:       q.Get("unit"),
		Document:   q.Get("document"),
		Item:       q.Get("item"),
	}
	opts, err := in.options(s.cfg)
	if err != nil {
		return opts, err
	}

	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.NewField(errors.ErrCodeInvalidInput, "scale", "scale must be a number")
		}
		opts.Scale = f
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.NewField(errors.ErrCodeInvalidInput, "seed", "seed must be an integer")
		}
		opts.Seed = n
	}
	for name, dst := range map[string]*bool{"labels": &opts.ShowLabels, "show_margin": &opts.ShowMargin} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.NewField(errors.ErrCodeInvalidInput, name, "%s must be true or false", name)
			}
			*dst = b
		}
	}
	return opts, nil
}

// =============================================================================
// Responses
// =============================================================================

// errorResponse is the body of every error reply.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

// statusFor maps an error to its HTTP status. Layout errors are 422 since
// the request was well-formed but cannot be laid out; so are counts too
// large to report.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case errors.IsLayout(err), code == errors.ErrCodeTooManyItems:
		return http.StatusUnprocessableEntity
	case code == errors.ErrCodeInvalidInput, code == errors.ErrCodeInvalidExpression,
		code == errors.ErrCodeInvalidUnit, code == errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case code == errors.ErrCodePresetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, Field: errors.Field(err)})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
