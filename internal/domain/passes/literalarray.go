// Package passes contains the rewrite passes scheduled by the pipeline.
package passes

import (
	"fortio.org/safecast"

	"github.com/codeclear/unveil/internal/domain"
	"github.com/codeclear/unveil/internal/model"
)

// NameLiteralArrays is the schedule name of the literal-array inlining pass.
const NameLiteralArrays = "literal-arrays"

// arrayDesc records one discovered all-literal array declaration.
type arrayDesc struct {
	decl     *model.Node // the var-decl node
	owner    *model.Node // the decl's parent, for cleanup removal
	name     string
	elements []*model.Node
	uses     int
}

// LiteralArrays undoes literal-array indirection: it finds declarations that
// bind a name to an array of plain literals and replaces in-range constant
// index accesses on that name with copies of the addressed element. When
// cleanup is configured, declarations that had at least one access inlined
// are removed afterwards.
type LiteralArrays struct {
	root    *model.Node
	cleanup bool

	scopes *domain.Scope[*arrayDesc]
	seen   map[*model.Node]bool
	report model.PassReport
}

// NewLiteralArrays binds the pass to root. The seen-set lives on the pass
// rather than on a single Execute call, so rescheduling the same pass later
// in the pipeline does not rediscover declarations it already processed.
func NewLiteralArrays(root *model.Node, cfg model.LiteralArrayConfig) *LiteralArrays {
	return &LiteralArrays{
		root:    root,
		cleanup: cfg.Cleanup,
		seen:    make(map[*model.Node]bool),
	}
}

// Name implements domain.Pass.
func (p *LiteralArrays) Name() string { return NameLiteralArrays }

// Report returns the counters from the latest Execute.
func (p *LiteralArrays) Report() model.PassReport { return p.report }

// Execute alternates discovery and rewrite until a discovery round finds no
// new arrays. The loop is needed because inlining can turn an initializer
// that read from another array into an all-literal one, which only a fresh
// discovery round notices. Each non-final round grows the seen-set, bounded
// by the tree's node count, so the loop terminates.
func (p *LiteralArrays) Execute() error {
	p.report = model.PassReport{Pass: NameLiteralArrays}
	p.scopes = domain.NewScope[*arrayDesc](p.root, domain.ScopeGlobal)

	for {
		found, err := p.discover()
		if err != nil {
			return err
		}
		if !found {
			break
		}
		p.rewrite()
		p.report.Rounds++
	}

	if p.cleanup {
		p.removeInlined()
	}
	return nil
}

// discover walks the tree, mirroring every scope-opening node into the
// pass's scope tree, and records a descriptor for each not-yet-seen
// declaration of an all-literal array in the scope the binding kind selects.
// It reports whether this round found any.
func (p *LiteralArrays) discover() (bool, error) {
	d := &discovery{pass: p, scope: p.scopes}
	domain.Walk(p.root, d)
	return d.found, d.err
}

type discovery struct {
	pass  *LiteralArrays
	scope *domain.Scope[*arrayDesc]
	found bool
	err   error
}

func (d *discovery) Enter(node, parent *model.Node) bool {
	if d.err != nil {
		return false
	}
	if kind, opens := scopeKind(node); opens && parent != nil {
		d.scope = d.scope.Enter(node, kind)
		return true
	}
	if node.Kind != model.KindVarDecl || node.Name == "" || d.pass.seen[node] {
		return true
	}
	elements, ok := literalElements(node)
	if !ok {
		return true
	}
	desc := &arrayDesc{decl: node, owner: parent, name: node.Name, elements: elements}
	if err := d.scope.Add(node.Name, desc, node.Binding); err != nil {
		d.err = err
		return false
	}
	d.pass.seen[node] = true
	d.found = true
	return true
}

func (d *discovery) Leave(node *model.Node) {
	if d.scope.Parent() != nil && d.scope.Node() == node {
		d.scope = d.scope.Parent()
	}
}

// rewrite walks the tree again, re-descending the scope tree discovery built
// (looked up by node identity, not rebuilt) and inlining eligible index
// accesses. Ineligible shapes, unresolved names, and out-of-range indexes
// are skipped, not errors.
func (p *LiteralArrays) rewrite() {
	r := &rewriter{pass: p, scope: p.scopes}
	domain.Walk(p.root, r)
}

type rewriter struct {
	pass  *LiteralArrays
	scope *domain.Scope[*arrayDesc]
}

func (r *rewriter) Enter(node, parent *model.Node) bool {
	if _, opens := scopeKind(node); opens && parent != nil {
		child, ok := r.scope.Child(node)
		if !ok {
			// discovery mirrored every scope-opening node this round
			return false
		}
		r.scope = child
		return true
	}

	index, ok := indexAccess(node)
	if !ok || parent == nil {
		return true
	}
	desc, found := r.scope.Get(node.Children[0].Name)
	if !found || index >= len(desc.elements) {
		return true
	}
	if !domain.Replace(parent, node, desc.elements[index].Clone()) {
		return true
	}
	desc.uses++
	r.pass.report.Inlined++
	return false
}

func (r *rewriter) Leave(node *model.Node) {
	if r.scope.Parent() != nil && r.scope.Node() == node {
		r.scope = r.scope.Parent()
	}
}

// removeInlined drops the declaration of every descriptor with at least one
// inlined use. A zero counter means no access was proven safe to rewrite, so
// the declaration stays: the value may still be reached some other way.
func (p *LiteralArrays) removeInlined() {
	p.scopes.Walk(func(s *domain.Scope[*arrayDesc]) {
		s.Each(func(_ string, desc *arrayDesc) {
			if desc.uses == 0 {
				return
			}
			if domain.Remove(desc.owner, desc.decl) {
				p.report.Removed++
			}
		})
	})
}

// literalElements returns the initializer elements when decl initializes an
// array literal holding non-composite values only.
func literalElements(decl *model.Node) ([]*model.Node, bool) {
	if len(decl.Children) != 1 {
		return nil, false
	}
	init := decl.Children[0]
	if init.Kind != model.KindArrayLit {
		return nil, false
	}
	for _, element := range init.Children {
		if !element.IsLiteral() {
			return nil, false
		}
	}
	return init.Children, true
}

// indexAccess matches the ident[constantIndex] access shape, rejecting
// negative and non-integral indexes.
func indexAccess(node *model.Node) (int, bool) {
	if node.Kind != model.KindMemberExpr || !node.Computed || len(node.Children) != 2 {
		return 0, false
	}
	object, property := node.Children[0], node.Children[1]
	if object.Kind != model.KindIdentifier || property.Kind != model.KindNumberLit {
		return 0, false
	}
	index, err := safecast.Convert[int](property.Num)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// scopeKind maps a tree node to the lexical environment it opens, if any.
func scopeKind(node *model.Node) (domain.ScopeKind, bool) {
	switch node.Kind {
	case model.KindProgram:
		return domain.ScopeGlobal, true
	case model.KindFuncDecl, model.KindFuncExpr:
		return domain.ScopeFunction, true
	case model.KindBlock:
		return domain.ScopeOther, true
	default:
		return 0, false
	}
}
