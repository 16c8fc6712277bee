/*
Package session mediates concurrent access to persisted dialog
sessions. A Manager serializes all operations on one session id behind
a per-session mutex, garbage-collected by reference counting, so two
surfaces (say HTTP and MCP) can safely share one StateStore.
*/
package session
