package engine

import (
	"math/big"

	"github.com/cockroachdb/apd"
)

// EvaluableFunctors is a set of arithmetic operators.
type EvaluableFunctors struct {
	// Binary is a set of operators of arity 2.
	Binary map[string]func(x, y Integer) (Integer, error)
}

// DefaultEvaluableFunctors is an EvaluableFunctors with + - * /.
var DefaultEvaluableFunctors = EvaluableFunctors{
	Binary: map[string]func(Integer, Integer) (Integer, error){
		`+`: Add,
		`-`: Sub,
		`*`: Mul,
		`/`: IntDiv,
	},
}

// Simplify reduces an arithmetic expression into an integer with DefaultEvaluableFunctors.
func Simplify(t Term) (Term, error) {
	return DefaultEvaluableFunctors.Simplify(t)
}

// Simplify reduces a compound of an evaluable functor into an integer, evaluating the operands first.
// Variables, integers, and compounds of other functors are returned as they are.
func (e EvaluableFunctors) Simplify(t Term) (Term, error) {
	c, ok := t.(*Compound)
	if !ok {
		return t, nil
	}
	f, ok := e.Binary[c.Functor]
	if !ok {
		return t, nil
	}
	if len(c.Args) != 2 {
		return nil, &EvaluationError{Kind: NotEvaluable, Culprit: c}
	}
	x, err := e.integer(c.Args[0])
	if err != nil {
		return nil, err
	}
	y, err := e.integer(c.Args[1])
	if err != nil {
		return nil, err
	}
	i, err := f(x, y)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (e EvaluableFunctors) integer(t Term) (Integer, error) {
	t, err := e.Simplify(t)
	if err != nil {
		return 0, err
	}
	i, ok := t.(Integer)
	if !ok {
		return 0, &EvaluationError{Kind: NotEvaluable, Culprit: t}
	}
	return i, nil
}

// arithmeticContext is precise enough for the product of two uint64s.
// Traps are off so that conditions are reported as flags.
var arithmeticContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(48)
	c.Traps = 0
	return c
}()

// Add returns x + y.
func Add(x, y Integer) (Integer, error) {
	return binaryInteger(`+`, arithmeticContext.Add, x, y)
}

// Sub returns x - y. It fails with Underflow if y is greater than x.
func Sub(x, y Integer) (Integer, error) {
	return binaryInteger(`-`, arithmeticContext.Sub, x, y)
}

// Mul returns x * y.
func Mul(x, y Integer) (Integer, error) {
	return binaryInteger(`*`, arithmeticContext.Mul, x, y)
}

// IntDiv returns x / y truncated toward zero. It fails with ZeroDivisor if y is 0.
func IntDiv(x, y Integer) (Integer, error) {
	return binaryInteger(`/`, arithmeticContext.QuoInteger, x, y)
}

func binaryInteger(op string, f func(d, x, y *apd.Decimal) (apd.Condition, error), x, y Integer) (Integer, error) {
	var d apd.Decimal
	cond, err := f(&d, decimal(x), decimal(y))
	if err != nil {
		return 0, err
	}

	culprit := &Compound{Functor: op, Args: []Term{x, y}}
	switch {
	case cond&(apd.DivisionByZero|apd.DivisionUndefined|apd.InvalidOperation) != 0:
		return 0, &EvaluationError{Kind: ZeroDivisor, Culprit: culprit}
	case d.Sign() < 0:
		return 0, &EvaluationError{Kind: Underflow, Culprit: culprit}
	case d.Exponent != 0, !d.Coeff.IsUint64():
		return 0, &EvaluationError{Kind: IntOverflow, Culprit: culprit}
	default:
		return Integer(d.Coeff.Uint64()), nil
	}
}

func decimal(i Integer) *apd.Decimal {
	return apd.NewWithBigInt(new(big.Int).SetUint64(uint64(i)), 0)
}
