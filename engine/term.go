package engine

import (
	"fmt"
)

// Term is a term, either Variable, Integer, or *Compound.
type Term interface {
	fmt.Stringer

	// Vars returns the variables in the term in the order of first appearance, without duplicates.
	Vars() []Variable

	// HasVariable checks if the variable occurs anywhere in the term.
	HasVariable(Variable) bool

	appendVars([]Variable) []Variable
}

// FreeVariables extracts variables in the given terms in the order of first appearance.
func FreeVariables(ts ...Term) []Variable {
	var fvs []Variable
	for _, t := range ts {
		fvs = t.appendVars(fvs)
	}
	return fvs
}
