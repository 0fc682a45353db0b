package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/leanmutator/internal/langparser"
)

func ident(text string) *langparser.Node {
	return &langparser.Node{Kind: langparser.KindIdentifier, Text: text}
}

func binary(op string, children ...*langparser.Node) *langparser.Node {
	return &langparser.Node{Kind: langparser.KindBinary, Operator: op, Children: children}
}

func TestBooleanFlip(t *testing.T) {
	op := BooleanFlip{}
	require.True(t, op.CanMutate(ident("true")))
	require.True(t, op.CanMutate(ident("false")))
	assert.False(t, op.CanMutate(ident("x")))

	reps := op.Mutate(ident("true"))
	require.Len(t, reps, 1)
	assert.Equal(t, "false", reps[0].Text)
}

func TestBooleanAndOrPreservesWidth(t *testing.T) {
	op := BooleanAndOr{}
	reps := op.Mutate(binary("&&"))
	require.Len(t, reps, 1)
	assert.Equal(t, "||", reps[0].Text)

	reps = op.Mutate(binary("∧"))
	require.Len(t, reps, 1)
	assert.Equal(t, "∨", reps[0].Text)
}

func TestArithmeticMulDivModulusNeverSurvives(t *testing.T) {
	op := ArithmeticMulDiv{}
	reps := op.Mutate(binary("%"))
	require.Len(t, reps, 2)
	for _, r := range reps {
		assert.NotEqual(t, "%", r.Text)
	}
}

func TestArithmeticSwapCrossesPairs(t *testing.T) {
	op := ArithmeticSwap{}
	reps := op.Mutate(binary("+"))
	texts := make([]string, len(reps))
	for i, r := range reps {
		texts[i] = r.Text
	}
	assert.ElementsMatch(t, []string{"-", "*", "/"}, texts)
}

func TestArithmeticSwapCoversModulus(t *testing.T) {
	op := ArithmeticSwap{}
	require.True(t, op.CanMutate(binary("%")))
	reps := op.Mutate(binary("%"))
	texts := make([]string, len(reps))
	for i, r := range reps {
		texts[i] = r.Text
	}
	assert.ElementsMatch(t, []string{"*", "/", "+", "-"}, texts)
	assert.NotContains(t, texts, "%", "modulus must never survive as modulus")
}

func TestNumericBoundaryNonZero(t *testing.T) {
	op := NumericBoundary{}
	n := &langparser.Node{Kind: langparser.KindIntLit, Text: "5"}
	reps := op.Mutate(n)
	require.Len(t, reps, 3)
	assert.Equal(t, "6", reps[0].Text)
	assert.Equal(t, "4", reps[1].Text)
	assert.Equal(t, "0", reps[2].Text)
}

func TestNumericBoundaryZero(t *testing.T) {
	op := NumericBoundary{}
	n := &langparser.Node{Kind: langparser.KindIntLit, Text: "0"}
	reps := op.Mutate(n)
	require.Len(t, reps, 2)
	assert.Equal(t, "1", reps[0].Text)
	assert.Equal(t, "-1", reps[1].Text)
}

func TestComparisonEqualityFamilies(t *testing.T) {
	op := ComparisonEquality{}
	assert.Equal(t, "!=", op.Mutate(binary("=="))[0].Text)
	assert.Equal(t, "≠", op.Mutate(binary("="))[0].Text)
	assert.Equal(t, "==", op.Mutate(binary("/="))[0].Text)
}

func TestComparisonRelationalEmitsTwo(t *testing.T) {
	op := ComparisonRelational{}
	reps := op.Mutate(binary("<"))
	require.Len(t, reps, 2)
	assert.Equal(t, "<=", reps[0].Text)
	assert.Equal(t, ">", reps[1].Text)
}

func TestComparisonBoundaryCollapsesToEquality(t *testing.T) {
	op := ComparisonBoundary{}
	for _, o := range []string{"<", "<=", ">", ">="} {
		reps := op.Mutate(binary(o))
		require.Len(t, reps, 1)
		assert.Equal(t, "=", reps[0].Text)
	}
}

func TestStringLiteralNonEmpty(t *testing.T) {
	op := StringLiteral{}
	n := &langparser.Node{Kind: langparser.KindStringLit, Text: `"hi"`}
	reps := op.Mutate(n)
	require.Len(t, reps, 2)
	assert.Equal(t, `""`, reps[0].Text)
	assert.Equal(t, `"MUTATED"`, reps[1].Text)
}

func TestStringLiteralEmpty(t *testing.T) {
	op := StringLiteral{}
	n := &langparser.Node{Kind: langparser.KindStringLit, Text: `""`}
	reps := op.Mutate(n)
	require.Len(t, reps, 1)
	assert.Equal(t, `"non-empty"`, reps[0].Text)
}

func TestCharLiteralSkipsEqualToOriginal(t *testing.T) {
	op := CharLiteral{}
	n := &langparser.Node{Kind: langparser.KindCharLit, Text: "'a'"}
	reps := op.Mutate(n)
	for _, r := range reps {
		assert.NotEqual(t, "'a'", r.Text)
	}
	texts := make([]string, len(reps))
	for i, r := range reps {
		texts[i] = r.Text
	}
	assert.Contains(t, texts, "'z'")
	assert.Contains(t, texts, "'0'")
}

func TestCharLiteralNonAlphabeticSkipsZeroCandidate(t *testing.T) {
	op := CharLiteral{}
	n := &langparser.Node{Kind: langparser.KindCharLit, Text: "'!'"}
	reps := op.Mutate(n)
	for _, r := range reps {
		assert.NotEqual(t, "'0'", r.Text)
	}
}

func TestRegistryFixedOrder(t *testing.T) {
	r := NewRegistry()
	want := []string{
		"boolean-flip", "boolean-and-or", "boolean-negation",
		"arithmetic-add-sub", "arithmetic-mul-div", "arithmetic-swap",
		"numeric-boundary", "comparison-equality", "comparison-relational",
		"comparison-boundary", "string-literal", "char-literal",
	}
	assert.Equal(t, want, r.Names())
}

func TestRegistrySelectEmptySelectsAll(t *testing.T) {
	r := NewRegistry()
	assert.Len(t, r.Select(nil), len(r.All()))
}

func TestRegistrySelectFiltersByName(t *testing.T) {
	r := NewRegistry()
	selected := r.Select([]string{"boolean-flip", "numeric-boundary"})
	require.Len(t, selected, 2)
	assert.Equal(t, "boolean-flip", selected[0].Name())
	assert.Equal(t, "numeric-boundary", selected[1].Name())
}

func TestMutateNeverReturnsOriginalText(t *testing.T) {
	r := NewRegistry()
	samples := []*langparser.Node{
		ident("true"), ident("false"),
		binary("&&"), binary("||"), binary("∧"), binary("∨"),
		binary("+"), binary("-"), binary("*"), binary("/"), binary("%"),
		binary("=="), binary("!="), binary("="), binary("≠"), binary("/="),
		binary("<"), binary("<="), binary(">"), binary(">="), binary("≤"), binary("≥"),
		{Kind: langparser.KindIntLit, Text: "3"},
		{Kind: langparser.KindIntLit, Text: "0"},
		{Kind: langparser.KindStringLit, Text: `"x"`},
		{Kind: langparser.KindStringLit, Text: `""`},
		{Kind: langparser.KindCharLit, Text: "'a'"},
	}
	for _, op := range r.All() {
		for _, n := range samples {
			if !op.CanMutate(n) {
				continue
			}
			for _, rep := range op.Mutate(n) {
				assert.NotEqual(t, n.Text, rep.Text, "operator %s produced a no-op mutation", op.Name())
			}
		}
	}
}
