package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotUnifiable is an error that signifies the terms don't unify.
	ErrNotUnifiable = errors.New("not unifiable")
)

// EvaluationErrorKind is a reason why an expression couldn't be reduced to an integer.
type EvaluationErrorKind uint8

// EvaluationErrorKind is one of these values.
const (
	NotEvaluable EvaluationErrorKind = iota
	ZeroDivisor
	Underflow
	IntOverflow
)

var evaluationErrorKindNames = [...]string{
	NotEvaluable: "not evaluable",
	ZeroDivisor:  "zero divisor",
	Underflow:    "underflow",
	IntOverflow:  "int overflow",
}

func (k EvaluationErrorKind) String() string {
	if int(k) >= len(evaluationErrorKindNames) {
		return fmt.Sprintf("unknown(%d)", k)
	}
	return evaluationErrorKindNames[k]
}

// EvaluationError is an error that signifies an arithmetic expression couldn't be simplified into an integer.
type EvaluationError struct {
	Kind    EvaluationErrorKind
	Culprit Term
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: %s: %s", e.Kind, e.Culprit)
}
