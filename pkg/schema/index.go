package schema

import "sort"

// Index is the flat, read-only registry of every node in one tree, keyed
// by id. It is built once per schema and may be shared by any number of
// automatons, since nothing mutates it after construction.
type Index struct {
	root  Node
	nodes map[string]Node
}

// NewIndex builds an Index covering root and every descendant, visiting
// each node exactly once in breadth-first order. It returns *Error for a
// nil root or nil child, and *DuplicateIDError when two nodes share an id.
func NewIndex(root Node) (*Index, error) {
	if root == nil {
		return nil, &Error{Reason: "root node is nil"}
	}

	nodes := make(map[string]Node)
	queue := []Node{root}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node == nil {
			return nil, &Error{Reason: "tree contains a nil child"}
		}
		id := node.NodeID()
		if id == "" {
			return nil, &Error{Reason: "tree contains a node with an empty id"}
		}
		if _, seen := nodes[id]; seen {
			return nil, &DuplicateIDError{ID: id}
		}
		nodes[id] = node
		queue = append(queue, node.children()...)
	}

	return &Index{root: root, nodes: nodes}, nil
}

// Root returns the tree's root node.
func (ix *Index) Root() Node {
	return ix.root
}

// Resolve returns the node registered under id.
func (ix *Index) Resolve(id string) (Node, error) {
	node, ok := ix.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return node, nil
}

// Contains reports whether id resolves in this index.
func (ix *Index) Contains(id string) bool {
	_, ok := ix.nodes[id]
	return ok
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return len(ix.nodes)
}

// IDs returns every indexed id, sorted.
func (ix *Index) IDs() []string {
	ids := make([]string, 0, len(ix.nodes))
	for id := range ix.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
