// Package langparser turns a UTF-8 source buffer into the recursive
// syntax tree the traversal code walks, the role go/parser.ParseFile
// plays for Go source walked with ast.Inspect. This is a small
// hand-written recursive-descent parser for the target language (a
// Lean-style dependently-typed functional language): the grammar
// recognized is deliberately shallow, enough to locate mutation sites
// and nothing more — semantic parsing (type checking, elaboration) is
// out of scope.
package langparser

// Kind tags a Node with an opaque grammar label. Traversal code switches
// on these strings; the parser is the only package that assigns them.
type Kind string

const (
	KindRoot       Kind = "root"
	KindDef        Kind = "def"
	KindGuard      Kind = "guard"
	KindBinary     Kind = "binary"
	KindUnary      Kind = "unary"
	KindParen      Kind = "paren"
	KindCall       Kind = "call"
	KindIdentifier Kind = "identifier"
	KindIntLit     Kind = "int_literal"
	KindStringLit  Kind = "string_literal"
	KindCharLit    Kind = "char_literal"
	KindMissing    Kind = "missing"
)

// Node is a discriminated union over four grammar roles:
// Node(info, kind, children[]) | Atom(info, text) | Identifier(info, name)
// | Missing. A single Go struct plays all four roles: Children is nil for
// Atom/Identifier/Missing, Text carries the Atom payload or the
// Identifier's name, and Missing is Kind == KindMissing with no text and
// no children.
type Node struct {
	Kind     Kind
	Text     string // literal text (atoms) or identifier name
	Children []*Node
	Operator string // for KindBinary/KindUnary: the operator token as written
	PosByte  int    // 0-based byte offset of the node's start in the source
	EndByte  int    // 0-based byte offset one past the node's end

	// OpPosByte/OpEndByte give the byte range of just the Operator token
	// itself, for KindBinary/KindUnary nodes. A mutation that only swaps
	// the operator (boolean-and-or, the arithmetic and comparison
	// families) replaces this narrower range; PosByte/EndByte span the
	// whole expression and are used by operators that replace the
	// expression wholesale (boolean-negation-removal).
	OpPosByte int
	OpEndByte int
}

// IsAtom reports whether n is a leaf literal (int/string/char).
func (n *Node) IsAtom() bool {
	switch n.Kind {
	case KindIntLit, KindStringLit, KindCharLit:
		return true
	default:
		return false
	}
}

// IsMissing reports whether n stands in for a parse failure at this
// position. The parser builds a Missing node alongside the error for an
// unexpected token; callers propagate the error and drop the node, and
// Parse stops at the failing command, so commands after a bad one
// contribute no mutation sites.
func (n *Node) IsMissing() bool { return n.Kind == KindMissing }

// Walk performs a pre-order traversal over n and its descendants,
// invoking visit for every node including n itself. visit returning
// false skips n's children, mirroring the contract of go/ast.Inspect.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
