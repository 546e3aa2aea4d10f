// Package navtree folds a flat descriptor list into the hierarchical
// site map consumed by the navigation renderer.
package navtree

import "github.com/nishant-k1/mdsite/internal/document"

// Node is one level of the site hierarchy. Documents are the descriptors
// attached directly at this level; children are keyed by path segment and
// iterate in insertion order, which the scanner's deterministic walk makes
// stable across rebuilds.
type Node struct {
	Documents []document.Descriptor

	order    []string
	children map[string]*Node
}

// Build folds descriptors into a tree. For each descriptor it descends
// through all segments but the last, creating child nodes as needed, and
// attaches the descriptor to the node reached. Build never fails; an empty
// list yields an empty root.
func Build(docs []document.Descriptor) *Node {
	root := &Node{}
	for _, doc := range docs {
		node := root
		for _, seg := range doc.Segments[:len(doc.Segments)-1] {
			node = node.child(seg)
		}
		node.Documents = append(node.Documents, doc)
	}
	return root
}

// child returns the named child, creating it if absent.
func (n *Node) child(name string) *Node {
	if c, ok := n.children[name]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := &Node{}
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// Child returns the named child node, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// ChildNames returns the child segment names in insertion order.
func (n *Node) ChildNames() []string {
	return n.order
}

// IsEmpty reports whether the node holds no documents and no children.
func (n *Node) IsEmpty() bool {
	return len(n.Documents) == 0 && len(n.order) == 0
}
