package ports

import "context"

// Completer is the language-model collaborator: prompt text and the
// legal options in, raw completion text out. The call blocks for the
// duration of the model round trip; implementations own their timeout
// and retry policy.
type Completer interface {
	Complete(ctx context.Context, prompt string, allowedOptions []string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string, allowedOptions []string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string, allowedOptions []string) (string, error) {
	return f(ctx, prompt, allowedOptions)
}
