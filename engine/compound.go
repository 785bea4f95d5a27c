package engine

import (
	"strings"
)

// Compound is a functor applied to an ordered sequence of arguments.
// A compound with no arguments is a constant symbol.
type Compound struct {
	Functor string
	Args    []Term
}

// Arity returns the number of arguments.
func (c *Compound) Arity() int {
	return len(c.Args)
}

// String returns the canonical form functor(arg1, arg2, ...).
func (c *Compound) String() string {
	var sb strings.Builder
	_, _ = sb.WriteString(c.Functor)
	_ = sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			_, _ = sb.WriteString(", ")
		}
		_, _ = sb.WriteString(a.String())
	}
	_ = sb.WriteByte(')')
	return sb.String()
}

// Vars returns the variables in the arguments from left to right.
func (c *Compound) Vars() []Variable {
	return c.appendVars(nil)
}

// HasVariable checks if any argument has the variable.
func (c *Compound) HasVariable(v Variable) bool {
	for _, a := range c.Args {
		if a.HasVariable(v) {
			return true
		}
	}
	return false
}

func (c *Compound) appendVars(vs []Variable) []Variable {
	for _, a := range c.Args {
		vs = a.appendVars(vs)
	}
	return vs
}
