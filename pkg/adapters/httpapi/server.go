// Package httpapi exposes dialog sessions over a small JSON HTTP
// surface: create a session, post turns, inspect state.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/interp"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/session"
)

// Server serves dialog sessions over HTTP. Each interact request
// restores the session's automaton under the manager's lock, runs one
// turn and persists the result before responding.
type Server struct {
	manager     *session.Manager
	completer   ports.Completer
	interpOpts  []interp.Option
	logger      *slog.Logger
	metricsPath http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithInterpreterOptions forwards options to every per-turn
// interpreter, e.g. hooks or a custom resolver.
func WithInterpreterOptions(opts ...interp.Option) Option {
	return func(s *Server) { s.interpOpts = opts }
}

// WithMetricsHandler mounts a handler at /metrics. Pass
// promhttp.HandlerFor(...) to serve a custom registry.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metricsPath = h }
}

// NewServer wires the HTTP surface over a session manager and a
// completer.
func NewServer(manager *session.Manager, completer ports.Completer, opts ...Option) *Server {
	s := &Server{
		manager:     manager,
		completer:   completer,
		logger:      logging.NewNop(),
		metricsPath: promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", s.metricsPath)

	r.Post("/sessions", s.createSession)
	r.Get("/sessions", s.listSessions)
	r.Get("/sessions/{sessionID}", s.getSession)
	r.Delete("/sessions/{sessionID}", s.deleteSession)
	r.Post("/sessions/{sessionID}/interact", s.interact)
	return r
}

type sessionResponse struct {
	SessionID string          `json:"session_id"`
	State     automaton.State `json:"state"`
	Message   string          `json:"message,omitempty"`
	Complete  bool            `json:"complete"`
}

type interactRequest struct {
	Input string `json:"input"`
}

type interactResponse struct {
	Message  string          `json:"message"`
	Success  bool            `json:"success"`
	State    automaton.State `json:"state"`
	Complete bool            `json:"complete"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()
	a, err := s.manager.LoadOrStart(r.Context(), sessionID)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to start session", err)
		return
	}

	msg, err := interp.New(a, s.completer, s.interpOpts...).StateMessage()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to describe session", err)
		return
	}

	s.respond(w, http.StatusCreated, sessionResponse{
		SessionID: sessionID,
		State:     a.State(),
		Message:   msg.Content,
		Complete:  a.Complete(),
	})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.manager.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to list sessions", err)
		return
	}
	s.respond(w, http.StatusOK, map[string][]string{"sessions": ids})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	a, err := s.manager.Load(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			s.fail(w, http.StatusNotFound, "session not found", err)
			return
		}
		s.fail(w, http.StatusInternalServerError, "failed to load session", err)
		return
	}
	s.respond(w, http.StatusOK, sessionResponse{
		SessionID: sessionID,
		State:     a.State(),
		Complete:  a.Complete(),
	})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.fail(w, http.StatusInternalServerError, "failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) interact(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req interactRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Input == "" {
		s.fail(w, http.StatusBadRequest, "input is required", nil)
		return
	}

	var resp interactResponse
	err := s.manager.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		snap, err := s.manager.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		a, err := automaton.Restore(s.manager.Index(), snap)
		if err != nil {
			return err
		}

		msg, err := interp.New(a, s.completer, s.interpOpts...).Interact(ctx, req.Input)
		if err != nil {
			return err
		}

		if err := s.manager.Store().Save(ctx, sessionID, a.Snapshot()); err != nil {
			return fmt.Errorf("failed to persist turn: %w", err)
		}
		resp = interactResponse{
			Message:  msg.Content,
			Success:  msg.Success,
			State:    a.State(),
			Complete: a.Complete(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			s.fail(w, http.StatusNotFound, "session not found", err)
			return
		}
		s.fail(w, http.StatusBadGateway, "turn failed", err)
		return
	}
	s.respond(w, http.StatusOK, resp)
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		s.logger.Warn(message, "err", err)
	}
	s.respond(w, status, map[string]string{"error": message})
}
