package interp

import (
	"fmt"
	"strings"

	"github.com/aretw0/sift/pkg/schema"
)

// PromptBuilder turns the user's input and the node under discussion
// into the text sent to the language model.
type PromptBuilder func(node schema.Node, input string) string

// DefaultPromptBuilder asks the model to pick one of the node's options
// and answer as a JSON object keyed by the node id. Examples attached to
// the node or its options are included as few-shot guidance.
func DefaultPromptBuilder(node schema.Node, input string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are helping a user fill in a form.\n")
	fmt.Fprintf(&b, "The current question is %q: %s\n", node.NodeID(), node.NodeDescription())

	if sel, ok := node.(*schema.Selection); ok {
		b.WriteString("The valid answers are:\n")
		for _, opt := range sel.Options {
			fmt.Fprintf(&b, "- %s: %s\n", opt.ID, opt.Description)
			for _, ex := range opt.Examples {
				fmt.Fprintf(&b, "  e.g. %q\n", ex)
			}
		}
	}
	for _, ex := range node.NodeExamples() {
		fmt.Fprintf(&b, "Example input: %q\n", ex)
	}

	fmt.Fprintf(&b, "\nRespond with a JSON object of the form {%q: <answer>}.\n", node.NodeID())
	fmt.Fprintf(&b, "If none of the answers fit, respond with an empty JSON object.\n")
	fmt.Fprintf(&b, "\nUser input: %s\n", input)
	return b.String()
}
