// Package sourcepattern implements the source-pattern mutation
// operators: a fallback pass over the raw byte stream for operator
// occurrences the parsed tree doesn't expose as a mutable node, using
// space-padded literal matching over the token set this language
// needs instead of a parsed AST.
package sourcepattern

import "strings"

// Pattern is one space-padded literal and its alternatives, e.g.
// " + " swapping with " - ".
type Pattern struct {
	Literal      string
	Alternatives []string
}

// Patterns is the fixed catalog of space-padded literals this pass
// matches, ordered the same way the syntactic operators that shadow
// them are ordered.
var Patterns = []Pattern{
	{Literal: " && ", Alternatives: []string{" || "}},
	{Literal: " || ", Alternatives: []string{" && "}},
	{Literal: " ∧ ", Alternatives: []string{" ∨ "}},
	{Literal: " ∨ ", Alternatives: []string{" ∧ "}},
	{Literal: " + ", Alternatives: []string{" - "}},
	{Literal: " - ", Alternatives: []string{" + "}},
	{Literal: " * ", Alternatives: []string{" / "}},
	{Literal: " / ", Alternatives: []string{" * "}},
	{Literal: " % ", Alternatives: []string{" * ", " / "}},
	{Literal: " == ", Alternatives: []string{" != "}},
	{Literal: " != ", Alternatives: []string{" == "}},
	{Literal: " = ", Alternatives: []string{" ≠ "}},
	{Literal: " ≠ ", Alternatives: []string{" = "}},
	{Literal: " < ", Alternatives: []string{" <= ", " > "}},
	{Literal: " <= ", Alternatives: []string{" < ", " >= "}},
	{Literal: " > ", Alternatives: []string{" >= ", " < "}},
	{Literal: " >= ", Alternatives: []string{" > ", " <= "}},
}

// Match is one located occurrence of a pattern, with the byte range of
// the full padded literal in source.
type Match struct {
	ByteStart    int
	ByteEnd      int
	Original     string
	Alternatives []string
}

// Find scans source for every non-overlapping occurrence of every
// pattern, in Patterns order, left to right. Matching is byte-literal
// (not identifier-aware beyond the padding itself), so "a+b" is never
// caught and "a + b" is.
func Find(source []byte) []Match {
	src := string(source)
	var matches []Match

	occupied := make([]bool, len(src)+1)

	for _, pat := range Patterns {
		start := 0
		for {
			idx := strings.Index(src[start:], pat.Literal)
			if idx < 0 {
				break
			}
			absStart := start + idx
			absEnd := absStart + len(pat.Literal)

			if !rangeFree(occupied, absStart, absEnd) {
				start = absStart + 1
				continue
			}

			matches = append(matches, Match{
				ByteStart:    absStart,
				ByteEnd:      absEnd,
				Original:     pat.Literal,
				Alternatives: pat.Alternatives,
			})
			markOccupied(occupied, absStart, absEnd)
			start = absEnd
		}
	}

	return matches
}

func rangeFree(occupied []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if occupied[i] {
			return false
		}
	}
	return true
}

func markOccupied(occupied []bool, start, end int) {
	for i := start; i < end; i++ {
		occupied[i] = true
	}
}
