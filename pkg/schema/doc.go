/*
Package schema defines the node tree that describes what a dialog can
collect: leaf Options, Selections over options, and composite Forms.

Trees are built in code (constructors or the fluent Builder) or loaded
from YAML/JSON documents, then compiled into an Index — a flat id-to-node
registry built once by breadth-first traversal. The Index is read-only
after construction and safe to share across automatons.
*/
package schema
