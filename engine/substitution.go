package engine

import (
	"strings"

	"github.com/ichiban/unify/internal/rbtree"
)

// Substitution is an immutable mapping from variables to terms.
// The zero value is the empty substitution.
// Bind, Compose, and Apply never modify the receiver, and the resulting substitutions share unchanged parts with it.
type Substitution struct {
	bindings rbtree.Map[Variable, Term]
}

// NewSubstitution creates a substitution from the given bindings.
func NewSubstitution(m map[Variable]Term) Substitution {
	var s Substitution
	for v, t := range m {
		s = s.Bind(v, t)
	}
	return s
}

// Bind returns a substitution which maps v to t in addition to the bindings of s.
func (s Substitution) Bind(v Variable, t Term) Substitution {
	return Substitution{bindings: s.bindings.Set(v, t)}
}

// Lookup returns a term that the given variable is bound to.
func (s Substitution) Lookup(v Variable) (Term, bool) {
	return s.bindings.Get(v)
}

// Len returns the number of bound variables.
func (s Substitution) Len() int {
	return s.bindings.Len()
}

// Each calls f for every binding in ascending order of variables until f returns false.
func (s Substitution) Each(f func(v Variable, t Term) bool) {
	s.bindings.Each(f)
}

// Map returns the bindings as a built-in map.
func (s Substitution) Map() map[Variable]Term {
	m := make(map[Variable]Term, s.Len())
	s.Each(func(v Variable, t Term) bool {
		m[v] = t
		return true
	})
	return m
}

// Apply replaces every bound variable in t with its value.
// It's a single pass: the values themselves are not substituted again.
// If nothing in t is bound, t itself is returned.
func (s Substitution) Apply(t Term) Term {
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case Variable:
		if ref, ok := s.Lookup(t); ok {
			return ref
		}
		return t
	case *Compound:
		var args []Term
		for i, a := range t.Args {
			b := s.Apply(a)
			if args == nil {
				if b == a {
					continue
				}
				args = make([]Term, len(t.Args))
				copy(args, t.Args[:i])
			}
			args[i] = b
		}
		if args == nil {
			return t
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

// Compose returns a substitution equivalent to applying s and then o.
// The values of s are rewritten by o, then the bindings of o are added. o wins if both bind the same variable.
func (s Substitution) Compose(o Substitution) Substitution {
	if o.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return o
	}
	ret := s
	s.Each(func(v Variable, t Term) bool {
		if u := o.Apply(t); u != t {
			ret = ret.Bind(v, u)
		}
		return true
	})
	o.Each(func(v Variable, t Term) bool {
		ret = ret.Bind(v, t)
		return true
	})
	return ret
}

// String returns the bindings in the form of {X -> f(Y), Y -> 1}.
func (s Substitution) String() string {
	var sb strings.Builder
	_ = sb.WriteByte('{')
	s.Each(func(v Variable, t Term) bool {
		if sb.Len() > 1 {
			_, _ = sb.WriteString(", ")
		}
		_, _ = sb.WriteString(v.String())
		_, _ = sb.WriteString(" -> ")
		_, _ = sb.WriteString(t.String())
		return true
	})
	_ = sb.WriteByte('}')
	return sb.String()
}
