// Package operator implements the operator registry and the built-in
// syntactic mutation operators: the catalog of source-level
// transformations the traversal code in internal/mutation/codegen.go
// applies to each node of a parsed tree.
package operator

import "github.com/conneroisu/leanmutator/internal/langparser"

// Replacement is one candidate mutation for a node: the literal text to
// substitute and a human-readable description for reports.
type Replacement struct {
	Text        string
	Description string
}

// Operator is the contract every mutation operator satisfies. CanMutate
// is a pure predicate; Mutate must be deterministic and must never
// return a Replacement whose Text equals the node's own text.
type Operator interface {
	Name() string
	CanMutate(n *langparser.Node) bool
	Mutate(n *langparser.Node) []Replacement
}

// Registry holds the enabled operator set, in registration order.
type Registry struct {
	operators []Operator
}

// NewRegistry builds a registry with every built-in operator pushed in
// the fixed order the startup sequence requires.
func NewRegistry() *Registry {
	r := &Registry{}
	r.register(
		BooleanFlip{},
		BooleanAndOr{},
		BooleanNegation{},
		ArithmeticAddSub{},
		ArithmeticMulDiv{},
		ArithmeticSwap{},
		NumericBoundary{},
		ComparisonEquality{},
		ComparisonRelational{},
		ComparisonBoundary{},
		StringLiteral{},
		CharLiteral{},
	)
	return r
}

func (r *Registry) register(ops ...Operator) {
	r.operators = append(r.operators, ops...)
}

// All returns every registered operator, in registration order.
func (r *Registry) All() []Operator {
	out := make([]Operator, len(r.operators))
	copy(out, r.operators)
	return out
}

// Select filters the registry down to the named operators, preserving
// registration order. An empty or nil names list selects every
// operator.
func (r *Registry) Select(names []string) []Operator {
	if len(names) == 0 {
		return r.All()
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []Operator
	for _, op := range r.operators {
		if wanted[op.Name()] {
			out = append(out, op)
		}
	}
	return out
}

// Names returns the registration-order list of every built-in
// operator's name, for `list-operators`.
func (r *Registry) Names() []string {
	names := make([]string, len(r.operators))
	for i, op := range r.operators {
		names[i] = op.Name()
	}
	return names
}
