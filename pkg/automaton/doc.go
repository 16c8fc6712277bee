/*
Package automaton holds the session state machine: an immutable State
(current location plus collected information), a closed set of intents,
and the Automaton that owns one session's state and append-only history.

The automaton only commits a new state at the end of a successful Update
call, so an abandoned turn can never leave partial state behind. History
is never pruned or rolled back automatically; rollback is a caller-level
concern over the History() copy.
*/
package automaton
