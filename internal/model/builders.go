package model

// Builders for assembling trees by hand, mainly in tests and fixtures. The
// external parser emits serialized trees directly and does not go through
// these.

// Program builds a program node from statements.
func Program(stmts ...*Node) *Node {
	return &Node{Kind: KindProgram, Children: stmts}
}

// Block builds a block node from statements.
func Block(stmts ...*Node) *Node {
	return &Node{Kind: KindBlock, Children: stmts}
}

// FuncDecl builds a named function declaration.
func FuncDecl(name string, params *Node, body *Node) *Node {
	return &Node{Kind: KindFuncDecl, Name: name, Children: []*Node{params, body}}
}

// Params builds a parameter list from identifier names.
func Params(names ...string) *Node {
	idents := make([]*Node, len(names))
	for i, name := range names {
		idents[i] = Ident(name)
	}
	return &Node{Kind: KindParams, Children: idents}
}

// Decl builds a variable declaration; init may be nil.
func Decl(binding BindingKind, name string, init *Node) *Node {
	decl := &Node{Kind: KindVarDecl, Name: name, Binding: binding}
	if init != nil {
		decl.Children = []*Node{init}
	}
	return decl
}

// ExprStmt wraps an expression as a statement.
func ExprStmt(expr *Node) *Node {
	return &Node{Kind: KindExprStmt, Children: []*Node{expr}}
}

// Index builds a computed member access object[property].
func Index(object, property *Node) *Node {
	return &Node{Kind: KindMemberExpr, Computed: true, Children: []*Node{object, property}}
}

// Call builds a call expression.
func Call(callee *Node, args ...*Node) *Node {
	return &Node{Kind: KindCallExpr, Children: append([]*Node{callee}, args...)}
}

// Array builds an array literal.
func Array(elements ...*Node) *Node {
	return &Node{Kind: KindArrayLit, Children: elements}
}

// Ident builds an identifier reference.
func Ident(name string) *Node {
	return &Node{Kind: KindIdentifier, Name: name}
}

// Number builds a number literal.
func Number(value float64) *Node {
	return &Node{Kind: KindNumberLit, Num: value}
}

// Str builds a string literal.
func Str(value string) *Node {
	return &Node{Kind: KindStringLit, Str: value}
}

// Bool builds a boolean literal.
func Bool(value bool) *Node {
	return &Node{Kind: KindBoolLit, Flag: value}
}

// Null builds a null literal.
func Null() *Node {
	return &Node{Kind: KindNullLit}
}
