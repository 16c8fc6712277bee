package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/sift/pkg/interp"
)

// quitSentinel ends the session when typed on its own line.
const quitSentinel = "q"

// RunREPL drives the interactive read loop: print the current question,
// read a line, forward it to the interpreter. Empty lines are ignored,
// "q" ends the session with a farewell. Returns nil on a clean quit or
// once every element is filled in.
func RunREPL(ctx context.Context, i *interp.Interpreter, in io.Reader, out io.Writer, render func(string) string) error {
	if render == nil {
		render = func(s string) string { return s }
	}

	msg, err := i.StateMessage()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render(msg.Content))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == quitSentinel {
			fmt.Fprintln(out, render("Goodbye!"))
			return nil
		}

		msg, err := i.Interact(ctx, line)
		if err != nil {
			return fmt.Errorf("turn failed: %w", err)
		}
		fmt.Fprintln(out, render(msg.Content))

		if i.Automaton().Complete() {
			fmt.Fprintln(out, render("All done. Goodbye!"))
			return nil
		}

		next, err := i.StateMessage()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, render(next.Content))
	}
	return scanner.Err()
}
