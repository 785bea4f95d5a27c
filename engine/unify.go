package engine

// MGU computes the most general unifier of x and y by Robinson's algorithm with occurs check.
// If they don't unify, it returns ErrNotUnifiable and no bindings.
func MGU(x, y Term) (Substitution, error) {
	switch x := x.(type) {
	case Variable:
		switch y := y.(type) {
		case Variable:
			if x == y {
				return Substitution{}, nil
			}
			return Substitution{}.Bind(x, y), nil
		case *Compound:
			return bindCompound(x, y)
		case Integer:
			return Substitution{}.Bind(x, y), nil
		}
	case Integer:
		switch y := y.(type) {
		case Integer:
			if x != y {
				return Substitution{}, ErrNotUnifiable
			}
			return Substitution{}, nil
		case Variable:
			return Substitution{}.Bind(y, x), nil
		}
	case *Compound:
		switch y := y.(type) {
		case Variable:
			return bindCompound(y, x)
		case *Compound:
			return unifyArgs(x, y)
		}
	}
	return Substitution{}, ErrNotUnifiable
}

func bindCompound(v Variable, c *Compound) (Substitution, error) {
	if c.HasVariable(v) {
		return Substitution{}, ErrNotUnifiable
	}
	return Substitution{}.Bind(v, c), nil
}

// unifyArgs unifies the arguments from left to right.
// Each pair sees the bindings made by the pairs before it.
func unifyArgs(x, y *Compound) (Substitution, error) {
	if x.Functor != y.Functor || len(x.Args) != len(y.Args) {
		return Substitution{}, ErrNotUnifiable
	}
	var acc Substitution
	for i := range x.Args {
		s, err := MGU(acc.Apply(x.Args[i]), acc.Apply(y.Args[i]))
		if err != nil {
			return Substitution{}, err
		}
		acc = acc.Compose(s)
	}
	return acc, nil
}
