package schema

// NewOption creates a leaf option.
func NewOption(id, description string, examples ...string) *Option {
	return &Option{ID: id, Description: description, Examples: examples}
}

// NewSelection creates a selection over the given options.
func NewSelection(id, description string, options ...*Option) *Selection {
	return &Selection{ID: id, Description: description, Options: options}
}

// NewForm creates a composite form over the given elements.
func NewForm(id, description string, elements ...Node) *Form {
	return &Form{ID: id, Description: description, Elements: elements}
}

// Builder provides a fluent API for constructing a Form tree in code,
// useful for tests and dynamically generated schemas.
type Builder struct {
	form *Form
}

// NewBuilder starts a Form with the given id and description.
func NewBuilder(id, description string) *Builder {
	return &Builder{form: &Form{ID: id, Description: description}}
}

// Selection appends a selection element and returns a SelectionBuilder for
// configuring its options.
func (b *Builder) Selection(id, description string) *SelectionBuilder {
	sel := &Selection{ID: id, Description: description}
	b.form.Elements = append(b.form.Elements, sel)
	return &SelectionBuilder{selection: sel, builder: b}
}

// Element appends a pre-built element of any variant.
func (b *Builder) Element(node Node) *Builder {
	b.form.Elements = append(b.form.Elements, node)
	return b
}

// Build compiles the form into an Index, surfacing duplicate ids and
// other construction problems.
func (b *Builder) Build() (*Index, error) {
	return NewIndex(b.form)
}

// Form returns the underlying tree without building an index.
func (b *Builder) Form() *Form {
	return b.form
}

// SelectionBuilder configures one selection element.
type SelectionBuilder struct {
	selection *Selection
	builder   *Builder
}

// Option appends a selectable option.
func (sb *SelectionBuilder) Option(id, description string, examples ...string) *SelectionBuilder {
	sb.selection.Options = append(sb.selection.Options, NewOption(id, description, examples...))
	return sb
}

// Examples sets the few-shot examples for the selection itself.
func (sb *SelectionBuilder) Examples(examples ...string) *SelectionBuilder {
	sb.selection.Examples = examples
	return sb
}

// Done returns to the form builder.
func (sb *SelectionBuilder) Done() *Builder {
	return sb.builder
}
