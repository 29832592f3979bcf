// Package httpapi serves levels and puzzle sessions as JSON over fasthttp.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/valyala/fasthttp"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/config"
	"github.com/vovakirdan/squarecontrol/internal/progress"
)

const (
	maxBodyBytes      = 1 << 20
	defaultSessionTTL = 2 * time.Hour
	storeTimeout      = 5 * time.Second
)

// Config wires the server to its collaborators. Progress and Logger are optional.
type Config struct {
	Catalog    *catalog.Catalog
	Progress   *progress.Tracker
	Generator  config.GeneratorConfig
	Logger     *log.Logger
	SessionTTL time.Duration
}

// Server is the JSON API.
type Server struct {
	catalog   *catalog.Catalog
	progress  *progress.Tracker
	generator config.GeneratorConfig
	logger    *log.Logger
	sessions  *registry
	srv       *fasthttp.Server
}

// New builds a server.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = defaultSessionTTL
	}

	s := &Server{
		catalog:   cfg.Catalog,
		progress:  cfg.Progress,
		generator: cfg.Generator,
		logger:    logger,
		sessions:  newRegistry(ttl),
	}
	s.srv = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "squarecontrol",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		IdleTimeout:        60 * time.Second,
		MaxRequestBodySize: maxBodyBytes,
	}
	return s
}

// Handler returns the routing request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		s.route(ctx)
		s.logger.Debug("request",
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"duration", time.Since(start),
		)
	}
}

// route dispatches on method and path segments.
func (s *Server) route(ctx *fasthttp.RequestCtx) {
	parts := strings.Split(strings.Trim(string(ctx.Path()), "/"), "/")
	method := string(ctx.Method())

	switch {
	case len(parts) == 1 && parts[0] == "levels":
		s.allow(ctx, method, fasthttp.MethodGet, s.handleLevels)
	case len(parts) == 2 && parts[0] == "levels":
		s.allow(ctx, method, fasthttp.MethodGet, func(ctx *fasthttp.RequestCtx) {
			s.handleLevel(ctx, parts[1])
		})
	case len(parts) == 1 && parts[0] == "generate":
		s.allow(ctx, method, fasthttp.MethodPost, s.handleGenerate)
	case len(parts) == 1 && parts[0] == "progress":
		s.allow(ctx, method, fasthttp.MethodGet, s.handleProgress)
	case len(parts) == 1 && parts[0] == "sessions":
		s.allow(ctx, method, fasthttp.MethodPost, s.handleCreateSession)
	case len(parts) == 2 && parts[0] == "sessions":
		switch method {
		case fasthttp.MethodGet:
			s.handleGetSession(ctx, parts[1])
		case fasthttp.MethodDelete:
			s.handleDeleteSession(ctx, parts[1])
		default:
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		}
	case len(parts) == 3 && parts[0] == "sessions":
		id := parts[1]
		var h func(*fasthttp.RequestCtx, string)
		switch parts[2] {
		case "select":
			h = s.handleSelect
		case "move":
			h = s.handleMove
		case "reset":
			h = s.handleReset
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
			return
		}
		s.allow(ctx, method, fasthttp.MethodPost, func(ctx *fasthttp.RequestCtx) { h(ctx, id) })
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) allow(ctx *fasthttp.RequestCtx, method, want string, h fasthttp.RequestHandler) {
	if method != want {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h(ctx)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting HTTP server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.ShutdownWithContext(shutdownCtx)
}

// --- JSON helpers ---

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"error":"encoding failed"}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

// decode reads the JSON body into v. An empty body leaves v untouched.
func decode(ctx *fasthttp.RequestCtx, v any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return nil
	}
	if len(body) > maxBodyBytes {
		return errors.New("request body too large")
	}
	return json.Unmarshal(body, v)
}

func (s *Server) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
