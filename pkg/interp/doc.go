/*
Package interp drives one dialog session: each Interact call is a single
synchronous turn that prompts the language model about the current
schema node, resolves the completion into a selection and applies the
resulting intent to the automaton.

Turns are strictly sequential. The Interpreter is not safe for
concurrent use; one interpreter serves one session, like the automaton
it wraps.
*/
package interp
