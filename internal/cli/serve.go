package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/helioviz/sunburst/pkg/errors"
	"github.com/helioviz/sunburst/pkg/pipeline"
	"github.com/helioviz/sunburst/pkg/tree"
)

// newServeCmd creates the serve command: an HTTP service that accepts a tree
// and returns the rendered chart. Render results are cached by tree
// fingerprint, so repeated requests for the same tree are served from cache.
func newServeCmd() *cobra.Command {
	var addr string
	var noCache bool
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, noCache, configFile)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/sunburst/config.toml)")

	return cmd
}

func runServe(ctx context.Context, addr string, noCache bool, configFile string) error {
	logger := loggerFromContext(ctx)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	c, err := buildCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeHandler(runner, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// newServeHandler builds the HTTP routes for the rendering service.
func newServeHandler(runner *pipeline.Runner, cfg Config) http.Handler {
	s := &server{runner: runner, cfg: cfg}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	return r
}

type server struct {
	runner *pipeline.Runner
	cfg    Config
}

// ctxRequestIDKey is the context key for the per-request correlation ID.
const ctxRequestIDKey ctxKey = 1

// requestID assigns each request a correlation ID, echoed in the
// X-Request-ID response header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs one line per request with the correlation ID.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		id, _ := r.Context().Value(ctxRequestIDKey).(string)
		s.runner.Logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"}) //nolint:errcheck
}

// handleRender renders the tree in the request body. The output format and
// chart options come from query parameters:
//
//	POST /render?format=svg&width=600&height=600&levels=0&style=simple
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	root, err := tree.Read(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidTree, err, "parse tree"))
		return
	}

	opts, err := s.renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), root, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	format := opts.Formats[0]
	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.RenderHits[format]))
	w.Write(result.Artifacts[format]) //nolint:errcheck
}

// renderOptions builds pipeline options from query parameters, falling back
// to the server config.
func (s *server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := errors.ValidateFormat(format); err != nil {
		return pipeline.Options{}, err
	}

	width, err := floatParam(q.Get("width"), s.cfg.Chart.Width)
	if err != nil {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidFrame, "invalid width %q", q.Get("width"))
	}
	height, err := floatParam(q.Get("height"), s.cfg.Chart.Height)
	if err != nil {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidFrame, "invalid height %q", q.Get("height"))
	}

	levels := 0
	if v := q.Get("levels"); v != "" {
		levels, err = strconv.Atoi(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidLevels, "invalid levels %q", v)
		}
	}

	style := q.Get("style")
	if style == "" {
		style = s.cfg.Chart.Style
	}

	return pipeline.Options{
		Width:    width,
		Height:   height,
		Levels:   levels,
		Style:    style,
		Formats:  []string{format},
		Labels:   q.Get("labels") == "true" || s.cfg.Chart.Labels,
		CacheTTL: time.Duration(s.cfg.Cache.TTLHours) * time.Hour,
	}, nil
}

func floatParam(v string, fallback float64) (float64, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps pipeline and validation errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound || code == errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{ //nolint:errcheck
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}
