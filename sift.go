package sift

import (
	"context"
	"log/slog"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/interp"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/aretw0/sift/pkg/validate"
)

// Version is the library version, reported by the CLI and the MCP
// server handshake.
var Version = "0.1.0"

// Session is the high-level entry point: one schema-guided dialog with
// one user, backed by an automaton and an interpreter. It is not safe
// for concurrent use.
type Session struct {
	automaton *automaton.Automaton
	interp    *interp.Interpreter
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	automatonOpts []automaton.Option
	interpOpts    []interp.Option
}

// WithLogger sets a structured logger for both the automaton and the
// interpreter.
func WithLogger(logger *slog.Logger) Option {
	return func(c *sessionConfig) {
		c.automatonOpts = append(c.automatonOpts, automaton.WithLogger(logger))
		c.interpOpts = append(c.interpOpts, interp.WithLogger(logger))
	}
}

// WithValidator attaches semantic validation to the extraction
// fallback.
func WithValidator(v validate.Validator) Option {
	return func(c *sessionConfig) {
		c.interpOpts = append(c.interpOpts, interp.WithValidator(v))
	}
}

// WithHooks registers lifecycle callbacks, e.g. observability.Metrics.
func WithHooks(h interp.Hooks) Option {
	return func(c *sessionConfig) {
		c.interpOpts = append(c.interpOpts, interp.WithHooks(h))
	}
}

// WithInterpreterOptions forwards raw interpreter options for anything
// the dedicated options above do not cover.
func WithInterpreterOptions(opts ...interp.Option) Option {
	return func(c *sessionConfig) {
		c.interpOpts = append(c.interpOpts, opts...)
	}
}

// NewSession builds a fresh session over the schema root.
func NewSession(root schema.Node, completer ports.Completer, opts ...Option) (*Session, error) {
	var cfg sessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := automaton.New(root, cfg.automatonOpts...)
	if err != nil {
		return nil, err
	}
	return &Session{
		automaton: a,
		interp:    interp.New(a, completer, cfg.interpOpts...),
	}, nil
}

// ResumeSession restores a session from a persisted snapshot.
func ResumeSession(index *schema.Index, snap *automaton.Snapshot, completer ports.Completer, opts ...Option) (*Session, error) {
	var cfg sessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := automaton.Restore(index, snap, cfg.automatonOpts...)
	if err != nil {
		return nil, err
	}
	return &Session{
		automaton: a,
		interp:    interp.New(a, completer, cfg.interpOpts...),
	}, nil
}

// Interact runs one dialog turn.
func (s *Session) Interact(ctx context.Context, input string) (automaton.Message, error) {
	return s.interp.Interact(ctx, input)
}

// StateMessage describes the current question.
func (s *Session) StateMessage() (automaton.Message, error) {
	return s.interp.StateMessage()
}

// State returns the current session state.
func (s *Session) State() automaton.State {
	return s.automaton.State()
}

// Complete reports whether every element has a collected value.
func (s *Session) Complete() bool {
	return s.automaton.Complete()
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() *automaton.Snapshot {
	return s.automaton.Snapshot()
}

// Interpreter exposes the underlying interpreter, for surfaces that
// drive turns themselves (the CLI read loop).
func (s *Session) Interpreter() *interp.Interpreter {
	return s.interp
}
