package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/leanmutator/internal/langparser"
	"github.com/conneroisu/leanmutator/internal/operator"
)

func TestGenerateRelationalScenario(t *testing.T) {
	src := []byte("def p (n : Nat) : Bool := n > 0")
	root, err := langparser.Parse(src, "a.lean")
	require.NoError(t, err)

	reg := operator.NewRegistry()
	muts := Generate(root, src, "a.lean", reg.All(), false)

	var gtMutations, intMutations int
	for _, m := range muts {
		if m.OriginalText == ">" {
			gtMutations++
		}
		if m.OriginalText == "0" {
			intMutations++
		}
	}
	assert.Equal(t, 3, gtMutations)  // comparison-relational (2) + comparison-boundary (1)
	assert.Equal(t, 2, intMutations) // numeric-boundary on n=0: +1, -1
}

func TestGenerateAssignsMonotonicIDs(t *testing.T) {
	src := []byte("def x : Nat := 1")
	root, err := langparser.Parse(src, "b.lean")
	require.NoError(t, err)

	reg := operator.NewRegistry()
	muts := Generate(root, src, "b.lean", reg.All(), false)
	require.NotEmpty(t, muts)
	for i, m := range muts {
		assert.Equal(t, i, m.ID)
	}
}

func TestGenerateOriginalTextMatchesByteRange(t *testing.T) {
	src := []byte(`def g : String := "hi"`)
	root, err := langparser.Parse(src, "c.lean")
	require.NoError(t, err)

	reg := operator.NewRegistry()
	muts := Generate(root, src, "c.lean", reg.All(), false)
	for _, m := range muts {
		assert.Equal(t, string(src[m.Location.ByteStart:m.Location.ByteEnd]), m.OriginalText)
	}
}

func TestGenerateSourcePatternDedupKeepsSyntactic(t *testing.T) {
	src := []byte("def r : Nat := 1 + 2")
	root, err := langparser.Parse(src, "d.lean")
	require.NoError(t, err)

	reg := operator.NewRegistry()
	muts := Generate(root, src, "d.lean", reg.All(), true)

	var sourcePatternHits int
	for _, m := range muts {
		if m.OriginalText == " + " {
			sourcePatternHits++
		}
	}
	assert.Zero(t, sourcePatternHits, "source-pattern pass should not duplicate the syntactic + mutation")
}

func TestGenerateSourcePatternCatchesUnparseableOperators(t *testing.T) {
	src := []byte("garbage text a && b more garbage")
	root := &langparser.Node{Kind: langparser.KindRoot, PosByte: 0, EndByte: len(src)}

	reg := operator.NewRegistry()
	muts := Generate(root, src, "e.lean", reg.All(), true)
	require.Len(t, muts, 1)
	assert.Equal(t, " && ", muts[0].OriginalText)
	assert.Equal(t, " || ", muts[0].MutatedText)
}

func TestGenerateNeverEmitsNoOpMutation(t *testing.T) {
	src := []byte("def r : Bool := ¬ (a ∧ b) ∨ c")
	root, err := langparser.Parse(src, "f.lean")
	require.NoError(t, err)

	reg := operator.NewRegistry()
	muts := Generate(root, src, "f.lean", reg.All(), true)
	for _, m := range muts {
		assert.NotEqual(t, m.OriginalText, m.MutatedText)
	}
}
