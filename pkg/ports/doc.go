/*
Package ports declares the driven-side interfaces of the dialog engine:
the language-model Completer and the session StateStore. Adapters under
pkg/adapters implement them; the core packages only ever see these
contracts.
*/
package ports
