package automaton

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/schema"
)

// Automaton walks one session through the node space of a schema Index.
// It exclusively owns its current State and the append-only history of
// past states: nothing else writes to either, and a new State is only
// committed at the end of a successful Update. It is not safe for
// concurrent use; one automaton serves one session.
type Automaton struct {
	index   *schema.Index
	state   State
	history []State
	logger  *slog.Logger
}

// Option configures an Automaton.
type Option func(*Automaton)

// WithLogger sets a structured logger for transition events.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		a.logger = logger
	}
}

// New builds an Index from root and starts an automaton on it.
func New(root schema.Node, opts ...Option) (*Automaton, error) {
	index, err := schema.NewIndex(root)
	if err != nil {
		return nil, err
	}
	return NewWithIndex(index, opts...), nil
}

// NewWithIndex starts an automaton over a pre-built Index. The Index is
// read-only and may be shared between automatons built from the same
// schema.
func NewWithIndex(index *schema.Index, opts ...Option) *Automaton {
	a := &Automaton{
		index:  index,
		state:  NewState(index.Root().NodeID()),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	// A form-rooted session starts on its first unresolved element, so
	// the opening turn already has a concrete node to ask about.
	if next, ok := a.nextUnresolved(a.state); ok {
		a.state.Location = next
	}
	return a
}

// State returns the current state snapshot.
func (a *Automaton) State() State {
	return a.state
}

// History returns a copy of the past states, oldest first.
func (a *Automaton) History() []State {
	out := make([]State, len(a.history))
	copy(out, a.history)
	return out
}

// Index returns the shared, read-only node index.
func (a *Automaton) Index() *schema.Index {
	return a.index
}

// Current resolves the node the session is working on.
func (a *Automaton) Current() (schema.Node, error) {
	return a.index.Resolve(a.state.Location)
}

// AllowedTransitions returns the legal choices at the current node: the
// option ids for a Selection, nil for every other variant (free-form
// collection).
func (a *Automaton) AllowedTransitions() []string {
	node, err := a.index.Resolve(a.state.Location)
	if err != nil {
		return nil
	}
	if sel, ok := node.(*schema.Selection); ok {
		return sel.AllowedTransitions()
	}
	return nil
}

// Complete reports whether every element of the tree's root has a
// collected value: all direct children for a Form, the root itself
// otherwise.
func (a *Automaton) Complete() bool {
	switch root := a.index.Root().(type) {
	case *schema.Form:
		for _, elem := range root.Elements {
			if _, ok := a.state.Information[elem.NodeID()]; !ok {
				return false
			}
		}
		return true
	default:
		_, ok := a.state.Information[root.NodeID()]
		return ok
	}
}

// Update applies an intent and returns the resulting state and a
// user-facing message. An UpdateIntent pushes the current state onto the
// history, merges the new information and, for a form-rooted session,
// advances the location to the next unresolved element in declaration
// order. A NoOpIntent changes nothing, history included.
func (a *Automaton) Update(intent Intent) (State, Message) {
	switch it := intent.(type) {
	case *UpdateIntent:
		newState := a.state.Update(it.Information)

		from := newState.Location
		completed := false
		if next, ok := a.nextUnresolved(newState); ok {
			newState.Location = next
		} else if _, isForm := a.index.Root().(*schema.Form); isForm {
			newState.Location = a.index.Root().NodeID()
			completed = true
		}

		a.history = append(a.history, a.state)
		a.state = newState
		a.logger.Debug("state updated",
			"from", from,
			"to", newState.Location,
			"collected", len(newState.Information),
			"completed", completed,
		)

		content := fmt.Sprintf("OK! Updated. The new state is: %v.", newState.Information)
		if completed {
			content += " Every element is filled in."
		}
		return a.state, Message{Content: content, Success: true}

	case *NoOpIntent:
		return a.state, Message{Content: "Sorry, I didn't catch that.", Success: false}

	default:
		// Unreachable: Intent is sealed to the two variants above.
		panic(fmt.Sprintf("automaton: unknown intent variant %T", intent))
	}
}

// nextUnresolved returns the id of the first direct element of a
// form root that has no entry in state's information yet.
func (a *Automaton) nextUnresolved(state State) (string, bool) {
	form, ok := a.index.Root().(*schema.Form)
	if !ok {
		return "", false
	}
	for _, elem := range form.Elements {
		if _, resolved := state.Information[elem.NodeID()]; !resolved {
			return elem.NodeID(), true
		}
	}
	return "", false
}
