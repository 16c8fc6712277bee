package interp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/encode"
	"github.com/aretw0/sift/pkg/extract"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/aretw0/sift/pkg/validate"
)

// Interpreter runs dialog turns against an Automaton using a language
// model collaborator.
type Interpreter struct {
	automaton *automaton.Automaton
	completer ports.Completer

	prompt    PromptBuilder
	resolver  Resolver
	encoder   encode.Encoder
	validator validate.Validator
	hooks     Hooks
	logger    *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPromptBuilder overrides the prompt construction.
func WithPromptBuilder(pb PromptBuilder) Option {
	return func(i *Interpreter) { i.prompt = pb }
}

// WithResolver overrides the completion-to-selection resolver.
func WithResolver(r Resolver) Option {
	return func(i *Interpreter) { i.resolver = r }
}

// WithEncoder sets the encoder used when falling back to structured
// extraction. Defaults to a JSON encoder wrapped in a tag-block
// unwrapper, since models often fence their output.
func WithEncoder(e encode.Encoder) Option {
	return func(i *Interpreter) { i.encoder = e }
}

// WithValidator attaches a validator to the extraction fallback.
func WithValidator(v validate.Validator) Option {
	return func(i *Interpreter) { i.validator = v }
}

// WithHooks registers lifecycle callbacks.
func WithHooks(h Hooks) Option {
	return func(i *Interpreter) { i.hooks = h }
}

// WithLogger sets a structured logger for turn events.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// New wires an interpreter over the automaton and completer.
func New(a *automaton.Automaton, completer ports.Completer, opts ...Option) *Interpreter {
	i := &Interpreter{
		automaton: a,
		completer: completer,
		prompt:    DefaultPromptBuilder,
		resolver:  DefaultResolver,
		encoder:   encode.NewTagBlock("json", encode.NewJSON()),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Automaton returns the underlying automaton, for read-only inspection.
func (i *Interpreter) Automaton() *automaton.Automaton {
	return i.automaton
}

// StateMessage describes the current node to the user. A Selection
// lists its id, description and sorted option ids; a Form summarizes
// the elements still to fill in. Reaching any other variant means the
// session is parked on a non-askable node, which is a schema wiring
// problem, so it surfaces as an error rather than a Message.
func (i *Interpreter) StateMessage() (automaton.Message, error) {
	node, err := i.automaton.Current()
	if err != nil {
		return automaton.Message{}, err
	}

	switch n := node.(type) {
	case *schema.Selection:
		content := fmt.Sprintf("Question: %s (%s)\nOptions: %s",
			n.ID, n.Description, strings.Join(n.AllowedTransitions(), ", "))
		return automaton.Message{Content: content, Success: true}, nil

	case *schema.Form:
		state := i.automaton.State()
		remaining := make([]string, 0, len(n.Elements))
		for _, elem := range n.Elements {
			if _, ok := state.Information[elem.NodeID()]; !ok {
				remaining = append(remaining, elem.NodeID())
			}
		}
		var content string
		if len(remaining) == 0 {
			content = fmt.Sprintf("Editing form %q: every element is filled in.", n.ID)
		} else {
			content = fmt.Sprintf("Editing form %q: %d element(s) remaining (%s).",
				n.ID, len(remaining), strings.Join(remaining, ", "))
		}
		return automaton.Message{Content: content, Success: true}, nil

	default:
		return automaton.Message{}, fmt.Errorf("interp: current node %q is a %T, which cannot be asked about", node.NodeID(), node)
	}
}

// Interact runs one synchronous turn: prompt the model about the
// current node, resolve its completion into a selection and apply the
// resulting intent. A completion that resolves to nothing becomes a
// NoOpIntent, so the state survives misunderstood input untouched. The
// returned error covers transport-level failure only (the model call
// itself); everything attributable to model output quality is folded
// into the Message.
func (i *Interpreter) Interact(ctx context.Context, input string) (automaton.Message, error) {
	start := time.Now()

	node, err := i.automaton.Current()
	if err != nil {
		return automaton.Message{}, err
	}
	location := node.NodeID()
	allowed := i.automaton.AllowedTransitions()

	completion, err := i.completer.Complete(ctx, i.prompt(node, input), allowed)
	if err != nil {
		return automaton.Message{}, fmt.Errorf("interp: model call failed: %w", err)
	}

	selection, ok := i.resolver(completion, allowed)
	if !ok {
		selection, ok = i.extractSelection(node, completion, allowed)
	}

	var intent automaton.Intent
	if ok {
		intent = &automaton.UpdateIntent{
			LocationID:  location,
			Information: map[string]any{location: selection},
		}
	} else {
		intent = &automaton.NoOpIntent{}
	}

	state, msg := i.automaton.Update(intent)
	if msg.Success && state.Location != location {
		i.hooks.transition(TransitionEvent{From: location, To: state.Location})
	}
	i.hooks.turn(TurnEvent{
		Location: location,
		Input:    input,
		Success:  msg.Success,
		Duration: time.Since(start),
	})
	i.logger.Debug("turn completed",
		"location", location,
		"success", msg.Success,
		"duration", time.Since(start),
	)
	return msg, nil
}

// extractSelection is the fallback for completions that do not name an
// option outright: decode the completion as structured output and look
// for a value under the node's id. The value still has to be one of the
// allowed ids when the node constrains its choices.
func (i *Interpreter) extractSelection(node schema.Node, completion string, allowed []string) (string, bool) {
	var opts []extract.Option
	if i.validator != nil {
		opts = append(opts, extract.WithValidator(i.validator))
	}
	result := extract.NewParser(node, i.encoder, opts...).Parse(completion)
	i.hooks.extraction(ExtractionEvent{Location: node.NodeID(), Result: result})

	value, present := result.Data[node.NodeID()]
	if !present {
		return "", false
	}
	text, ok := value.(string)
	if !ok {
		return "", false
	}
	if len(allowed) == 0 {
		return text, text != ""
	}
	return i.resolver(text, allowed)
}
