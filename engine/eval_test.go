package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	op := func(functor string, args ...Term) *Compound {
		return &Compound{Functor: functor, Args: args}
	}

	tests := []struct {
		title string
		term  Term
		out   Term
		err   error
	}{
		{title: "integer", term: Integer(3), out: Integer(3)},
		{title: "variable", term: Variable("X"), out: Variable("X")},
		{title: "other functor", term: op("f", Integer(1), Integer(2)), out: op("f", Integer(1), Integer(2))},
		{title: "other functor with expression", term: op("f", op("+", Integer(1), Integer(2))), out: op("f", op("+", Integer(1), Integer(2)))},
		{title: "add", term: op("+", Integer(2), Integer(3)), out: Integer(5)},
		{title: "sub", term: op("-", Integer(5), Integer(3)), out: Integer(2)},
		{title: "sub to zero", term: op("-", Integer(5), Integer(5)), out: Integer(0)},
		{title: "mul", term: op("*", Integer(6), Integer(7)), out: Integer(42)},
		{title: "div", term: op("/", Integer(7), Integer(2)), out: Integer(3)},
		{title: "nested", term: op("+", Integer(2), op("*", Integer(3), Integer(4))), out: Integer(14)},
		{title: "max", term: op("+", Integer(math.MaxUint64-1), Integer(1)), out: Integer(math.MaxUint64)},
		{
			title: "variable operand",
			term:  op("+", Variable("X"), Integer(1)),
			err:   &EvaluationError{Kind: NotEvaluable, Culprit: Variable("X")},
		},
		{
			title: "compound operand",
			term:  op("*", Integer(1), op("f")),
			err:   &EvaluationError{Kind: NotEvaluable, Culprit: op("f")},
		},
		{
			title: "unary",
			term:  op("-", Integer(1)),
			err:   &EvaluationError{Kind: NotEvaluable, Culprit: op("-", Integer(1))},
		},
		{
			title: "ternary in operand",
			term:  op("+", Integer(1), op("+", Integer(1), Integer(2), Integer(3))),
			err:   &EvaluationError{Kind: NotEvaluable, Culprit: op("+", Integer(1), Integer(2), Integer(3))},
		},
		{
			title: "zero divisor",
			term:  op("/", Integer(1), Integer(0)),
			err:   &EvaluationError{Kind: ZeroDivisor, Culprit: op("/", Integer(1), Integer(0))},
		},
		{
			title: "zero by zero",
			term:  op("/", Integer(0), Integer(0)),
			err:   &EvaluationError{Kind: ZeroDivisor, Culprit: op("/", Integer(0), Integer(0))},
		},
		{
			title: "underflow",
			term:  op("-", Integer(1), Integer(2)),
			err:   &EvaluationError{Kind: Underflow, Culprit: op("-", Integer(1), Integer(2))},
		},
		{
			title: "add overflow",
			term:  op("+", Integer(math.MaxUint64), Integer(1)),
			err:   &EvaluationError{Kind: IntOverflow, Culprit: op("+", Integer(math.MaxUint64), Integer(1))},
		},
		{
			title: "mul overflow",
			term:  op("*", Integer(math.MaxUint64), Integer(math.MaxUint64)),
			err:   &EvaluationError{Kind: IntOverflow, Culprit: op("*", Integer(math.MaxUint64), Integer(math.MaxUint64))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out, err := Simplify(tt.term)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestSimplify_idempotent(t *testing.T) {
	terms := []Term{
		Integer(9),
		&Compound{Functor: "-", Args: []Term{Integer(9), &Compound{Functor: "/", Args: []Term{Integer(8), Integer(3)}}}},
		&Compound{Functor: "point", Args: []Term{Integer(1), Integer(2)}},
	}

	for _, term := range terms {
		t.Run(term.String(), func(t *testing.T) {
			once, err := Simplify(term)
			assert.NoError(t, err)
			twice, err := Simplify(once)
			assert.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestEvaluableFunctors_Simplify(t *testing.T) {
	e := EvaluableFunctors{
		Binary: map[string]func(Integer, Integer) (Integer, error){
			"max": func(x, y Integer) (Integer, error) {
				if x > y {
					return x, nil
				}
				return y, nil
			},
		},
	}

	out, err := e.Simplify(&Compound{Functor: "max", Args: []Term{Integer(3), Integer(5)}})
	assert.NoError(t, err)
	assert.Equal(t, Integer(5), out)

	plus := &Compound{Functor: "+", Args: []Term{Integer(3), Integer(5)}}
	out, err = e.Simplify(plus)
	assert.NoError(t, err)
	assert.Same(t, plus, out)
}

func TestSimplify_failureHasNoResult(t *testing.T) {
	for _, term := range []Term{
		&Compound{Functor: "/", Args: []Term{Integer(1), Integer(0)}},
		&Compound{Functor: "/", Args: []Term{Integer(0), Integer(0)}},
		&Compound{Functor: "-", Args: []Term{Integer(0), Integer(1)}},
		&Compound{Functor: "+", Args: []Term{Integer(math.MaxUint64), Integer(1)}},
		&Compound{Functor: "*", Args: []Term{Integer(math.MaxUint64), Integer(2)}},
	} {
		t.Run(term.String(), func(t *testing.T) {
			out, err := Simplify(term)
			var e *EvaluationError
			assert.ErrorAs(t, err, &e)
			assert.Nil(t, out)
		})
	}
}

func TestEvaluationErrorKind_String(t *testing.T) {
	assert.Equal(t, "not evaluable", NotEvaluable.String())
	assert.Equal(t, "int overflow", IntOverflow.String())
	assert.Equal(t, "unknown(200)", EvaluationErrorKind(200).String())
}

func TestEvaluationError_Error(t *testing.T) {
	err := &EvaluationError{Kind: ZeroDivisor, Culprit: &Compound{Functor: "/", Args: []Term{Integer(1), Integer(0)}}}
	assert.Equal(t, "evaluation error: zero divisor: /(1, 0)", err.Error())
}
