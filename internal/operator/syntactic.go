package operator

import "github.com/conneroisu/leanmutator/internal/langparser"

// BooleanFlip matches identifier nodes whose symbol is true/false and
// emits the opposite literal.
type BooleanFlip struct{}

func (BooleanFlip) Name() string { return "boolean-flip" }

func (BooleanFlip) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindIdentifier && (n.Text == "true" || n.Text == "false")
}

func (BooleanFlip) Mutate(n *langparser.Node) []Replacement {
	if n.Text == "true" {
		return []Replacement{{Text: "false", Description: "flip true to false"}}
	}
	return []Replacement{{Text: "true", Description: "flip false to true"}}
}

// BooleanAndOr matches binary && / || in ASCII or Unicode form and
// swaps to the opposite connective, preserving notation width.
type BooleanAndOr struct{}

func (BooleanAndOr) Name() string { return "boolean-and-or" }

var andOrSwap = map[string]string{
	"&&": "||", "||": "&&",
	"∧": "∨", "∨": "∧",
}

func (BooleanAndOr) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindBinary {
		return false
	}
	_, ok := andOrSwap[n.Operator]
	return ok
}

func (BooleanAndOr) Mutate(n *langparser.Node) []Replacement {
	repl := andOrSwap[n.Operator]
	return []Replacement{{Text: repl, Description: "swap " + n.Operator + " for " + repl}}
}

// BooleanNegation matches a unary negation applied to a sub-expression
// and emits the bare sub-expression, provided its text can be isolated
// unambiguously (it has a recorded byte range).
type BooleanNegation struct{}

func (BooleanNegation) Name() string { return "boolean-negation" }

func (BooleanNegation) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindUnary || (n.Operator != "!" && n.Operator != "¬") {
		return false
	}
	if len(n.Children) != 1 {
		return false
	}
	operand := n.Children[0]
	return operand.PosByte < operand.EndByte
}

func (BooleanNegation) Mutate(n *langparser.Node) []Replacement {
	return []Replacement{{Text: OperandPlaceholder, Description: "remove negation " + n.Operator}}
}

// OperandPlaceholder marks that the replacement text must be sliced
// from source at the operand's own byte range, not synthesized —
// traversal (internal/mutation.Generate) substitutes it in before
// recording the Mutation.
const OperandPlaceholder = "\x00operand\x00"

// ArithmeticAddSub matches binary + / - and swaps within the pair.
type ArithmeticAddSub struct{}

func (ArithmeticAddSub) Name() string { return "arithmetic-add-sub" }

func (ArithmeticAddSub) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindBinary && (n.Operator == "+" || n.Operator == "-")
}

func (ArithmeticAddSub) Mutate(n *langparser.Node) []Replacement {
	if n.Operator == "+" {
		return []Replacement{{Text: "-", Description: "swap + for -"}}
	}
	return []Replacement{{Text: "+", Description: "swap - for +"}}
}

// ArithmeticMulDiv matches binary * / % and swaps within the pair; %
// never survives as modulus — it maps onto * or /.
type ArithmeticMulDiv struct{}

func (ArithmeticMulDiv) Name() string { return "arithmetic-mul-div" }

func (ArithmeticMulDiv) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindBinary && (n.Operator == "*" || n.Operator == "/" || n.Operator == "%")
}

func (ArithmeticMulDiv) Mutate(n *langparser.Node) []Replacement {
	switch n.Operator {
	case "*":
		return []Replacement{{Text: "/", Description: "swap * for /"}}
	case "/":
		return []Replacement{{Text: "*", Description: "swap / for *"}}
	default: // %
		return []Replacement{
			{Text: "*", Description: "map % to *"},
			{Text: "/", Description: "map % to /"},
		}
	}
}

// ArithmeticSwap crosses both pairs: + and - swap with * and /.
type ArithmeticSwap struct{}

func (ArithmeticSwap) Name() string { return "arithmetic-swap" }

var arithmeticCrossSwap = map[string][]string{
	"+": {"-", "*", "/"},
	"-": {"+", "*", "/"},
	"*": {"/", "+", "-"},
	"/": {"*", "+", "-"},
	"%": {"*", "/", "+", "-"},
}

func (ArithmeticSwap) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindBinary {
		return false
	}
	_, ok := arithmeticCrossSwap[n.Operator]
	return ok
}

func (ArithmeticSwap) Mutate(n *langparser.Node) []Replacement {
	var out []Replacement
	for _, repl := range arithmeticCrossSwap[n.Operator] {
		out = append(out, Replacement{Text: repl, Description: "swap " + n.Operator + " for " + repl})
	}
	return out
}

// NumericBoundary matches integer literals and perturbs them by one in
// each direction, plus a mutation to the zero boundary.
type NumericBoundary struct{}

func (NumericBoundary) Name() string { return "numeric-boundary" }

func (NumericBoundary) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindIntLit
}

func (NumericBoundary) Mutate(n *langparser.Node) []Replacement {
	v, err := parseInt(n.Text)
	if err != nil {
		return nil
	}
	out := []Replacement{
		{Text: formatInt(v + 1), Description: "increment literal"},
		{Text: formatInt(v - 1), Description: "decrement literal"},
	}
	if v != 0 {
		out = append(out, Replacement{Text: "0", Description: "collapse literal to zero"})
	}
	return out
}

// ComparisonEquality matches = == ≠ != /= and swaps within its notation
// family.
type ComparisonEquality struct{}

func (ComparisonEquality) Name() string { return "comparison-equality" }

var equalitySwap = map[string]string{
	"==": "!=", "!=": "==",
	"=": "≠", "≠": "=",
	"/=": "==",
}

func (ComparisonEquality) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindBinary {
		return false
	}
	_, ok := equalitySwap[n.Operator]
	return ok
}

func (ComparisonEquality) Mutate(n *langparser.Node) []Replacement {
	repl := equalitySwap[n.Operator]
	return []Replacement{{Text: repl, Description: "swap " + n.Operator + " for " + repl}}
}

// ComparisonRelational matches < <= / ≤, > >= / ≥ and emits a
// strictness flip and a direction reversal.
type ComparisonRelational struct{}

func (ComparisonRelational) Name() string { return "comparison-relational" }

var relationalStrictnessFlip = map[string]string{
	"<": "<=", "<=": "<", "≤": "<",
	">": ">=", ">=": ">", "≥": ">",
}

var relationalDirectionFlip = map[string]string{
	"<": ">", "<=": ">=", "≤": "≥",
	">": "<", ">=": "<=", "≥": "≤",
}

func (ComparisonRelational) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindBinary {
		return false
	}
	_, ok := relationalDirectionFlip[n.Operator]
	return ok
}

func (ComparisonRelational) Mutate(n *langparser.Node) []Replacement {
	var out []Replacement
	if strict, ok := relationalStrictnessFlip[n.Operator]; ok && strict != n.Operator {
		out = append(out, Replacement{Text: strict, Description: "flip strictness of " + n.Operator})
	}
	if dir, ok := relationalDirectionFlip[n.Operator]; ok && dir != n.Operator {
		out = append(out, Replacement{Text: dir, Description: "reverse direction of " + n.Operator})
	}
	return out
}

// ComparisonBoundary collapses any relational operator to equality.
type ComparisonBoundary struct{}

func (ComparisonBoundary) Name() string { return "comparison-boundary" }

func (ComparisonBoundary) CanMutate(n *langparser.Node) bool {
	if n.Kind != langparser.KindBinary {
		return false
	}
	switch n.Operator {
	case "<", "<=", "≤", ">", ">=", "≥":
		return true
	default:
		return false
	}
}

func (ComparisonBoundary) Mutate(n *langparser.Node) []Replacement {
	return []Replacement{{Text: "=", Description: "collapse " + n.Operator + " to equality"}}
}

// StringLiteral matches double-quoted string literals.
type StringLiteral struct{}

func (StringLiteral) Name() string { return "string-literal" }

func (StringLiteral) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindStringLit
}

func (StringLiteral) Mutate(n *langparser.Node) []Replacement {
	if n.Text == `""` {
		return []Replacement{{Text: `"non-empty"`, Description: "make empty string non-empty"}}
	}
	return []Replacement{
		{Text: `""`, Description: "empty the string"},
		{Text: `"MUTATED"`, Description: "replace string contents"},
	}
}

// CharLiteral matches single-quoted char literals.
type CharLiteral struct{}

func (CharLiteral) Name() string { return "char-literal" }

func (CharLiteral) CanMutate(n *langparser.Node) bool {
	return n.Kind == langparser.KindCharLit
}

func (CharLiteral) Mutate(n *langparser.Node) []Replacement {
	candidates := []string{"' '", "'a'"}
	if n.Text == "'a'" {
		candidates[1] = "'z'"
	}

	var out []Replacement
	for _, c := range candidates {
		if c == n.Text {
			continue
		}
		out = append(out, Replacement{Text: c, Description: "replace char literal with " + c})
	}

	if isAlphabeticChar(n.Text) {
		if n.Text != "'0'" {
			out = append(out, Replacement{Text: "'0'", Description: "replace alphabetic char literal with '0'"})
		}
	}
	return out
}

func isAlphabeticChar(text string) bool {
	if len(text) != 3 || text[0] != '\'' || text[2] != '\'' {
		return false
	}
	c := text[1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
