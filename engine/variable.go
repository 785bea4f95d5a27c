package engine

// Variable is a logic variable identified by its name.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// Vars returns a slice only with v.
func (v Variable) Vars() []Variable {
	return []Variable{v}
}

// HasVariable checks if v and w are the same variable.
func (v Variable) HasVariable(w Variable) bool {
	return v == w
}

func (v Variable) appendVars(vs []Variable) []Variable {
	for _, w := range vs {
		if w == v {
			return vs
		}
	}
	return append(vs, v)
}
