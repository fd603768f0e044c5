// Package model defines the data structures shared across the rewrite pipeline.
package model

// Kind tags a program tree node with its syntactic form. The set is closed:
// it is a contract with the external parser that produces the trees.
type Kind string

const (
	KindProgram    Kind = "program"
	KindBlock      Kind = "block"
	KindFuncDecl   Kind = "func-decl"
	KindFuncExpr   Kind = "func-expr"
	KindParams     Kind = "params"
	KindVarDecl    Kind = "var-decl"
	KindExprStmt   Kind = "expr-stmt"
	KindReturnStmt Kind = "return-stmt"
	KindIfStmt     Kind = "if-stmt"
	KindCallExpr   Kind = "call"
	KindMemberExpr Kind = "member"
	KindAssignExpr Kind = "assign"
	KindBinaryExpr Kind = "binary"
	KindUnaryExpr  Kind = "unary"
	KindArrayLit   Kind = "array"
	KindIdentifier Kind = "ident"
	KindNumberLit  Kind = "number"
	KindStringLit  Kind = "string"
	KindBoolLit    Kind = "bool"
	KindNullLit    Kind = "null"
)

var knownKinds = map[Kind]bool{
	KindProgram: true, KindBlock: true, KindFuncDecl: true, KindFuncExpr: true,
	KindParams: true, KindVarDecl: true, KindExprStmt: true, KindReturnStmt: true,
	KindIfStmt: true, KindCallExpr: true, KindMemberExpr: true, KindAssignExpr: true,
	KindBinaryExpr: true, KindUnaryExpr: true, KindArrayLit: true, KindIdentifier: true,
	KindNumberLit: true, KindStringLit: true, KindBoolLit: true, KindNullLit: true,
}

// Valid reports whether k belongs to the kind vocabulary.
func (k Kind) Valid() bool {
	return knownKinds[k]
}

// BindingKind is the declaration form of a var-decl node. It determines where
// a binding is placed, not how it is looked up. The empty value is the
// unspecified form, which places like an explicit global.
type BindingKind string

const (
	BindConst       BindingKind = "const"
	BindLet         BindingKind = "let"
	BindVar         BindingKind = "var"
	BindGlobal      BindingKind = "global"
	BindUnspecified BindingKind = ""
)

// Node is one node of the program tree. The ordered Children slice is the
// only child storage, so every child occupies exactly one slot of exactly one
// parent; replace and remove act on those slots.
//
// Child layout per kind:
//
//	program, block   statements
//	func-decl/expr   params node, block node
//	params           identifiers
//	var-decl         initializer (zero or one)
//	expr-stmt        expression
//	return-stmt      result (zero or one)
//	if-stmt          condition, then, else (else optional)
//	call             callee, arguments...
//	member           object, property
//	assign, binary   left, right
//	unary            operand
//	array            elements
type Node struct {
	Kind     Kind        `json:"kind" msgpack:"kind"`
	Name     string      `json:"name,omitempty" msgpack:"name,omitempty"`
	Binding  BindingKind `json:"binding,omitempty" msgpack:"binding,omitempty"`
	Op       string      `json:"op,omitempty" msgpack:"op,omitempty"`
	Num      float64     `json:"num,omitempty" msgpack:"num,omitempty"`
	Str      string      `json:"str,omitempty" msgpack:"str,omitempty"`
	Flag     bool        `json:"flag,omitempty" msgpack:"flag,omitempty"`
	Computed bool        `json:"computed,omitempty" msgpack:"computed,omitempty"`
	Children []*Node     `json:"children,omitempty" msgpack:"children,omitempty"`
}

// IsLiteral reports whether the node is a non-composite literal value.
func (n *Node) IsLiteral() bool {
	switch n.Kind {
	case KindNumberLit, KindStringLit, KindBoolLit, KindNullLit:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the node. Rewrites that inline a value into a
// new position must insert a clone, never the original instance, so no node
// ever occupies two parent slots.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return &clone
}
