package domain

import "github.com/codeclear/unveil/internal/model"

// Visitor receives traversal callbacks. Enter runs before a node's children
// in pre-order, Leave after them in post-order; Enter reports whether the
// walk descends into the children.
type Visitor interface {
	Enter(node, parent *model.Node) bool
	Leave(node *model.Node)
}

// Walk traverses the tree depth-first from root, following each node's child
// ordering. The child list is snapshotted before the walk descends into a
// node, so a visitor may Replace or Remove the node it is positioned on
// without invalidating the traversal. Rewrites based on information gathered
// during a walk belong in a second walk: one read-only discovery traversal,
// then one mutating rewrite traversal.
func Walk(root *model.Node, v Visitor) {
	walkNode(root, nil, v)
}

func walkNode(node, parent *model.Node, v Visitor) {
	if node == nil {
		return
	}
	if v.Enter(node, parent) {
		children := make([]*model.Node, len(node.Children))
		copy(children, node.Children)
		for _, child := range children {
			walkNode(child, node, v)
		}
	}
	v.Leave(node)
}

// Inspect walks the tree calling fn for every node; fn reports whether to
// descend. Convenience for read-only walks.
func Inspect(root *model.Node, fn func(node, parent *model.Node) bool) {
	Walk(root, inspectVisitor(fn))
}

type inspectVisitor func(node, parent *model.Node) bool

func (f inspectVisitor) Enter(node, parent *model.Node) bool { return f(node, parent) }

func (f inspectVisitor) Leave(*model.Node) {}

// Replace swaps newNode into the slot oldNode occupies under parent. The
// slot's ownership transfers to newNode and oldNode is released. It reports
// whether the slot was found.
func Replace(parent, oldNode, newNode *model.Node) bool {
	for i, child := range parent.Children {
		if child == oldNode {
			parent.Children[i] = newNode
			return true
		}
	}
	return false
}

// Remove splices node out of parent's child sequence. It reports whether the
// slot was found.
func Remove(parent, node *model.Node) bool {
	for i, child := range parent.Children {
		if child == node {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return true
		}
	}
	return false
}
