// Package domain contains the scope model, the tree walker, and the rewrite
// pipeline that the passes build on.
package domain

import (
	"errors"
	"fmt"

	"github.com/codeclear/unveil/internal/model"
)

// ScopeKind classifies a lexical environment for binding placement.
type ScopeKind uint8

const (
	// ScopeGlobal is the root environment of a program.
	ScopeGlobal ScopeKind = iota
	// ScopeFunction is the environment a function body opens.
	ScopeFunction
	// ScopeOther covers blocks and other intermediate environments.
	ScopeOther
)

// StructuralScopeError reports a var, global, or unspecified binding whose
// placement found no qualifying ancestor scope. It means the scope tree was
// built wrong relative to the grammar, not that the input was bad; callers
// propagate it up and the pipeline aborts.
type StructuralScopeError struct {
	Name    string
	Binding model.BindingKind
}

func (e *StructuralScopeError) Error() string {
	binding := string(e.Binding)
	if binding == "" {
		binding = "unspecified"
	}
	return fmt.Sprintf("no declaration scope for %q (binding kind %s)", e.Name, binding)
}

// Scope is one lexical environment. V is the payload type a pass attaches to
// the bindings it records; each pass picks its own.
//
// Child scopes are registered under the tree node that opened them, so a
// later traversal over the same tree re-descends into an existing scope tree
// by node identity instead of rebuilding it.
type Scope[V any] struct {
	node     *model.Node
	kind     ScopeKind
	parent   *Scope[V]
	children map[*model.Node]*Scope[V]
	elements map[string]V
}

// NewScope creates a detached scope opened by node. The root of a program's
// scope tree is a ScopeGlobal scope for the program node.
func NewScope[V any](node *model.Node, kind ScopeKind) *Scope[V] {
	return &Scope[V]{
		node:     node,
		kind:     kind,
		children: make(map[*model.Node]*Scope[V]),
		elements: make(map[string]V),
	}
}

// Node returns the tree node that opened this scope.
func (s *Scope[V]) Node() *model.Node { return s.node }

// Kind returns the scope's classification.
func (s *Scope[V]) Kind() ScopeKind { return s.kind }

// Parent returns the enclosing scope, nil at the root.
func (s *Scope[V]) Parent() *Scope[V] { return s.parent }

// Enter returns the child scope registered for node, creating and registering
// it with the given kind when absent.
func (s *Scope[V]) Enter(node *model.Node, kind ScopeKind) *Scope[V] {
	if child, ok := s.children[node]; ok {
		return child
	}
	child := NewScope[V](node, kind)
	child.parent = s
	s.children[node] = child
	return child
}

// Child returns the scope previously registered for node.
func (s *Scope[V]) Child(node *model.Node) (*Scope[V], bool) {
	child, ok := s.children[node]
	return child, ok
}

// Get resolves name against this scope and its ancestors, nearest binding
// first. A miss is a normal outcome, not a fault: it means no statically
// known binding, and callers skip their rewrite.
func (s *Scope[V]) Get(name string) (V, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if value, ok := cur.elements[name]; ok {
			return value, true
		}
	}
	var zero V
	return zero, false
}

// DeclarationScope returns the scope a binding of the given kind is placed
// in: const and let stay here, var climbs to the nearest Function or Global
// ancestor, global and unspecified climb to the nearest Global ancestor.
func (s *Scope[V]) DeclarationScope(binding model.BindingKind) (*Scope[V], error) {
	switch binding {
	case model.BindConst, model.BindLet:
		return s, nil
	case model.BindVar:
		for cur := s; cur != nil; cur = cur.parent {
			if cur.kind == ScopeFunction || cur.kind == ScopeGlobal {
				return cur, nil
			}
		}
	default:
		for cur := s; cur != nil; cur = cur.parent {
			if cur.kind == ScopeGlobal {
				return cur, nil
			}
		}
	}
	return nil, &StructuralScopeError{Binding: binding}
}

// Add places name per the binding kind. Within one scope the last write for a
// name wins.
func (s *Scope[V]) Add(name string, value V, binding model.BindingKind) error {
	target, err := s.DeclarationScope(binding)
	if err != nil {
		var structural *StructuralScopeError
		if errors.As(err, &structural) {
			structural.Name = name
		}
		return err
	}
	target.elements[name] = value
	return nil
}

// Each calls fn for every binding recorded directly in this scope.
func (s *Scope[V]) Each(fn func(name string, value V)) {
	for name, value := range s.elements {
		fn(name, value)
	}
}

// Walk visits this scope and every descendant scope.
func (s *Scope[V]) Walk(fn func(*Scope[V])) {
	fn(s)
	for _, child := range s.children {
		child.Walk(fn)
	}
}
