package schema

import "sort"

// Node is the closed set of schema variants: *Option, *Selection and *Form.
// The unexported marker method prevents external packages from adding
// variants, so type switches over Node stay exhaustive.
type Node interface {
	// NodeID returns the identifier, unique within one tree.
	NodeID() string
	// NodeDescription returns the human-readable description shown to the
	// model and the user.
	NodeDescription() string
	// NodeExamples returns the few-shot examples for prompt building.
	NodeExamples() []string

	children() []Node
	isNode()
}

// Option is a leaf: one selectable value.
type Option struct {
	ID          string
	Description string
	Examples    []string
}

// Selection offers a constrained choice between its options.
type Selection struct {
	ID          string
	Description string
	Examples    []string
	Options     []*Option
}

// Form is a composite of child elements of any variant.
type Form struct {
	ID          string
	Description string
	Examples    []string
	Elements    []Node
}

func (o *Option) NodeID() string          { return o.ID }
func (o *Option) NodeDescription() string { return o.Description }
func (o *Option) NodeExamples() []string  { return o.Examples }
func (o *Option) children() []Node        { return nil }
func (o *Option) isNode()                 {}

func (s *Selection) NodeID() string          { return s.ID }
func (s *Selection) NodeDescription() string { return s.Description }
func (s *Selection) NodeExamples() []string  { return s.Examples }
func (s *Selection) isNode()                 {}

func (s *Selection) children() []Node {
	nodes := make([]Node, 0, len(s.Options))
	for _, opt := range s.Options {
		nodes = append(nodes, opt)
	}
	return nodes
}

// AllowedTransitions returns the ids of the selectable options, sorted.
func (s *Selection) AllowedTransitions() []string {
	ids := make([]string, 0, len(s.Options))
	for _, opt := range s.Options {
		ids = append(ids, opt.ID)
	}
	sort.Strings(ids)
	return ids
}

func (f *Form) NodeID() string          { return f.ID }
func (f *Form) NodeDescription() string { return f.Description }
func (f *Form) NodeExamples() []string  { return f.Examples }
func (f *Form) children() []Node        { return f.Elements }
func (f *Form) isNode()                 {}
