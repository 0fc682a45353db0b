package mutation

import (
	"sort"
	"strings"

	"github.com/conneroisu/leanmutator/internal/langparser"
	"github.com/conneroisu/leanmutator/internal/operator"
	"github.com/conneroisu/leanmutator/internal/sourcepattern"
)

// newlineIndex maps a byte offset to its 1-based line/column without
// rescanning the source on every lookup.
type newlineIndex struct {
	offsets []int // byte offset of each '\n' in the source
}

func newNewlineIndex(source []byte) *newlineIndex {
	idx := &newlineIndex{}
	for i, b := range source {
		if b == '\n' {
			idx.offsets = append(idx.offsets, i)
		}
	}
	return idx
}

func (idx *newlineIndex) lineCol(byteOffset int) (line, col int) {
	line = sort.SearchInts(idx.offsets, byteOffset) + 1
	lineStart := 0
	if line > 1 {
		lineStart = idx.offsets[line-2] + 1
	}
	return line, byteOffset - lineStart + 1
}

// Generate walks root in pre-order and, for every enabled syntactic
// operator whose CanMutate predicate matches a node, emits one Mutation
// per replacement the operator returns. When includeSourcePattern is
// set, the source-pattern pass also runs and its matches are merged
// in, with any byte-range overlap against a syntactic mutation
// resolved in the syntactic mutation's favor.
func Generate(root *langparser.Node, source []byte, file string, ops []operator.Operator, includeSourcePattern bool) []Mutation {
	lines := newNewlineIndex(source)
	nextID := 0

	var mutations []Mutation
	langparser.Walk(root, func(n *langparser.Node) bool {
		if n.PosByte < 0 || n.EndByte > len(source) || n.PosByte > n.EndByte {
			return true
		}
		// Binary-operator mutations (boolean-and-or, the arithmetic and
		// comparison families) replace only the operator token; every
		// other operator replaces the node's whole span.
		byteStart, byteEnd := n.PosByte, n.EndByte
		if n.Kind == langparser.KindBinary {
			byteStart, byteEnd = n.OpPosByte, n.OpEndByte
		}

		for _, op := range ops {
			if !op.CanMutate(n) {
				continue
			}
			for _, repl := range op.Mutate(n) {
				text := repl.Text
				mutByteStart, mutByteEnd := byteStart, byteEnd
				if text == operator.OperandPlaceholder {
					if len(n.Children) != 1 {
						continue
					}
					operand := n.Children[0]
					text = string(source[operand.PosByte:operand.EndByte])
					mutByteStart, mutByteEnd = n.PosByte, n.EndByte
				}
				mutOriginal := string(source[mutByteStart:mutByteEnd])
				if text == mutOriginal {
					continue
				}
				startLine, startCol := lines.lineCol(mutByteStart)
				endLine, endCol := lines.lineCol(mutByteEnd)
				mutations = append(mutations, Mutation{
					ID:   nextID,
					File: file,
					Location: SourceLocation{
						File:      file,
						StartLine: startLine,
						StartCol:  startCol,
						EndLine:   endLine,
						EndCol:    endCol,
						ByteStart: mutByteStart,
						ByteEnd:   mutByteEnd,
					},
					OriginalText: mutOriginal,
					MutatedText:  text,
					OperatorName: op.Name(),
					Description:  repl.Description,
				})
				nextID++
			}
		}
		return true
	})

	if includeSourcePattern {
		occupied := make([]bool, len(source)+1)
		for _, m := range mutations {
			for i := m.Location.ByteStart; i < m.Location.ByteEnd && i < len(occupied); i++ {
				occupied[i] = true
			}
		}
		for _, match := range sourcepattern.Find(source) {
			if rangeOverlaps(occupied, match.ByteStart, match.ByteEnd) {
				continue
			}
			startLine, startCol := lines.lineCol(match.ByteStart)
			endLine, endCol := lines.lineCol(match.ByteEnd)
			for _, alt := range match.Alternatives {
				mutations = append(mutations, Mutation{
					ID:   nextID,
					File: file,
					Location: SourceLocation{
						File:      file,
						StartLine: startLine,
						StartCol:  startCol,
						EndLine:   endLine,
						EndCol:    endCol,
						ByteStart: match.ByteStart,
						ByteEnd:   match.ByteEnd,
					},
					OriginalText: match.Original,
					MutatedText:  alt,
					OperatorName: "source-pattern:" + strings.TrimSpace(match.Original),
					Description:  "source-pattern swap of " + strings.TrimSpace(match.Original),
				})
				nextID++
			}
		}
	}

	return mutations
}

func rangeOverlaps(occupied []bool, start, end int) bool {
	for i := start; i < end && i < len(occupied); i++ {
		if occupied[i] {
			return true
		}
	}
	return false
}
