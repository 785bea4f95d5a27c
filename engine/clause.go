package engine

import (
	"strings"
)

// Atom is a predicate applied to arguments. It appears in clause heads, clause bodies, and goals.
type Atom struct {
	Predicate string
	Args      []Term
}

// AtomOf converts a compound into an atom.
func AtomOf(c *Compound) Atom {
	return Atom{Predicate: c.Functor, Args: c.Args}
}

// Compound returns the compound view of the atom.
func (a Atom) Compound() *Compound {
	return &Compound{Functor: a.Predicate, Args: a.Args}
}

func (a Atom) String() string {
	return a.Compound().String()
}

// Vars returns the variables in the arguments in the order of first appearance.
func (a Atom) Vars() []Variable {
	return a.Compound().Vars()
}

// Apply returns the atom with the substitution applied to its arguments.
func (a Atom) Apply(s Substitution) Atom {
	return AtomOf(s.Apply(a.Compound()).(*Compound))
}

// MGU computes the most general unifier of the two atoms.
// Atoms with different predicates or arities never unify.
func (a Atom) MGU(b Atom) (Substitution, error) {
	return MGU(a.Compound(), b.Compound())
}

// Goal is a conjunction of atoms.
type Goal []Atom

// Vars returns the variables in the atoms in the order of first appearance.
func (g Goal) Vars() []Variable {
	var vs []Variable
	for _, a := range g {
		vs = a.Compound().appendVars(vs)
	}
	return vs
}

// Apply returns the goal with the substitution applied to every atom.
func (g Goal) Apply(s Substitution) Goal {
	ret := make(Goal, len(g))
	for i, a := range g {
		ret[i] = a.Apply(s)
	}
	return ret
}

func (g Goal) String() string {
	ss := make([]string, len(g))
	for i, a := range g {
		ss[i] = a.String()
	}
	return strings.Join(ss, ", ")
}

// Clause is either a fact or a rule.
// A fact has an empty body, so a rule with no body is a fact: it holds unconditionally either way.
type Clause struct {
	Head Atom
	Body Goal
}

// Fact creates a clause which holds unconditionally.
func Fact(head Atom) Clause {
	return Clause{Head: head}
}

// Rule creates a clause which holds if every atom in the body holds.
// Without body atoms, it's the same clause as Fact(head).
func Rule(head Atom, body ...Atom) Clause {
	return Clause{Head: head, Body: body}
}

// IsFact checks if the clause has no body.
func (c Clause) IsFact() bool {
	return len(c.Body) == 0
}

// Vars returns the variables in the head and then the body.
func (c Clause) Vars() []Variable {
	vs := c.Head.Compound().appendVars(nil)
	for _, a := range c.Body {
		vs = a.Compound().appendVars(vs)
	}
	return vs
}

// Apply returns the clause with the substitution applied to the head and the body.
func (c Clause) Apply(s Substitution) Clause {
	ret := Clause{Head: c.Head.Apply(s)}
	if !c.IsFact() {
		ret.Body = c.Body.Apply(s)
	}
	return ret
}

func (c Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	return c.Head.String() + " :- " + c.Body.String() + "."
}

// Program is a sequence of clauses.
type Program []Clause
