package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/internal/presentation/graph"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/navigator"
	"github.com/aretw0/cmdassist/pkg/ports"
	"github.com/aretw0/cmdassist/pkg/runner"
	"github.com/aretw0/cmdassist/pkg/session"
)

// Engine is the wizard surface the HTTP adapter needs.
type Engine interface {
	ports.Wizard
	Lookup(target, selection string) (domain.CommandResult, error)
	Search(query, vendor string) domain.TopicMatch
	Edges() []navigator.Edge
}

// Server serves wizard sessions over HTTP.
type Server struct {
	Engine   Engine
	Sessions *session.Manager
	Streams  *StreamManager

	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts h on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server. Sessions live in the manager's store.
func NewServer(engine Engine, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		Engine:   engine,
		Sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)
	return s
}

// NewHandler creates the HTTP handler for the server, validating requests
// against the embedded API description.
func NewHandler(engine Engine, sessions *session.Manager, opts ...Option) (http.Handler, error) {
	return NewServer(engine, sessions, opts...).Routes()
}

// Routes builds the router.
func (s *Server) Routes() (http.Handler, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Get("/health", s.GetHealth)
		r.Get("/info", s.GetInfo)
		r.Get("/graph", s.GetGraph)
		r.Get("/lookup", s.Lookup)
		r.Get("/search", s.Search)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.CreateSession)
			r.Get("/", s.ListSessions)
			r.Get("/{sessionId}", s.GetSession)
			r.Delete("/{sessionId}", s.DeleteSession)
			r.Post("/{sessionId}/events", s.SendEvent)
			r.Get("/{sessionId}/stream", s.StreamSession)
		})
	})

	return r, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Command Assist API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := uuid.NewString()

	state, err := s.Sessions.LoadOrStart(ctx, id, func() *domain.State {
		return s.Engine.Start(ctx, id)
	})
	if err != nil {
		s.logger.Error("CreateSession failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, runner.RenderState(ctx, s.Engine, state))
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids})
}

// GetSession handles GET /sessions/{sessionId}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.Sessions.Load(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runner.RenderState(r.Context(), s.Engine, state))
}

// DeleteSession handles DELETE /sessions/{sessionId}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.storeError(w, err)
		return
	}
	s.Streams.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// SendEvent handles POST /sessions/{sessionId}/events.
func (s *Server) SendEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "sessionId")

	var in domain.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if in.Value != "" {
		clean, err := runner.SanitizeInput(in.Value)
		if err != nil {
			s.logger.Warn("SendEvent: Input rejected", "err", err, "size", len(in.Value))
			writeError(w, http.StatusBadRequest, err)
			return
		}
		in.Value = clean
	}

	var (
		before *domain.State
		moved  bool
	)
	next, err := s.Sessions.Update(ctx, id, func(current *domain.State) (*domain.State, bool) {
		before = current
		var n *domain.State
		n, moved = s.Engine.Navigate(ctx, current, in)
		return n, moved
	})
	if err != nil {
		s.storeError(w, err)
		return
	}

	if moved {
		if diff := domain.Diff(before, next); diff != nil {
			if b, err := json.Marshal(diff); err == nil {
				s.Streams.Broadcast(id, string(b))
			}
		}
	}

	resp := runner.RenderState(ctx, s.Engine, next)
	resp.Moved = moved
	writeJSON(w, http.StatusOK, resp)
}

// StreamSession handles GET /sessions/{sessionId}/stream (SSE).
// Each accepted event of the session is pushed as a StateDiff.
func (s *Server) StreamSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")
	if _, err := s.Sessions.Load(r.Context(), id); err != nil {
		s.storeError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming not supported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "session_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				fmt.Fprintf(w, "event: closed\ndata: %s\n\n", id)
				flusher.Flush()
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	edges := s.Engine.Edges()
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, edges)
		return
	}

	var overlay *graph.GraphOverlay
	if id := r.URL.Query().Get("session_id"); id != "" {
		state, err := s.Sessions.Load(r.Context(), id)
		if err != nil {
			s.storeError(w, err)
			return
		}
		overlay = graph.OverlayFromState(state)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(edges, overlay)))
}

// Lookup handles GET /lookup.
func (s *Server) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selection, err := runner.SanitizeInput(strings.TrimSpace(q.Get("selection")))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.Engine.Lookup(q.Get("target"), selection)
	switch {
	case errors.Is(err, domain.ErrNotInCatalog):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrUnknownInput):
		writeError(w, http.StatusBadRequest, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

// Search handles GET /search. A question no topic answers is still a 200:
// the outcome and reply say why.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, err := runner.SanitizeInput(q.Get("q"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Engine.Search(query, q.Get("vendor")))
}

type pinger interface {
	Ping(ctx context.Context) error
}

// GetHealth handles GET /health. Stores that can be pinged are checked.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.Sessions.Store().(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.logger.Warn("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, _ *http.Request) {
	apiVersion := "unknown"
	if doc, err := GetSwagger(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "cmdassist-http",
		"version":     strings.TrimSpace(cmdassist.Version),
		"api_version": apiVersion,
	})
}

func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.logger.Error("session store error", "err", err)
	writeError(w, http.StatusInternalServerError, err)
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
