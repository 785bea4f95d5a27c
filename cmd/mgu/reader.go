package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/ichiban/unify/engine"
)

// syntaxError is an error that signifies the input is not in the canonical form.
type syntaxError struct {
	pos scanner.Position
	msg string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s: %s", e.pos, e.msg)
}

// query is either a pair of terms to unify or a single term to simplify.
type query struct {
	left, right engine.Term
}

// reader reads terms in the canonical form.
// An identifier followed by ( starts a compound, any other identifier is a variable, and digits are an integer.
type reader struct {
	s   scanner.Scanner
	tok rune
	err error
}

func newReader(src string) *reader {
	var r reader
	r.s.Init(strings.NewReader(src))
	r.s.Mode = scanner.ScanIdents | scanner.ScanInts
	r.s.Error = func(s *scanner.Scanner, msg string) {
		if r.err == nil {
			r.err = &syntaxError{pos: s.Position, msg: msg}
		}
	}
	r.next()
	return &r
}

func (r *reader) next() {
	r.tok = r.s.Scan()
}

func (r *reader) fail(format string, args ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	return &syntaxError{pos: r.s.Position, msg: fmt.Sprintf(format, args...)}
}

// readQuery reads `T1 = T2` or `T`, optionally followed by a period.
func readQuery(src string) (query, error) {
	r := newReader(src)

	var (
		q   query
		err error
	)
	q.left, err = r.term()
	if err != nil {
		return query{}, err
	}
	if r.tok == '=' {
		r.next()
		q.right, err = r.term()
		if err != nil {
			return query{}, err
		}
	}
	if r.tok == '.' {
		r.next()
	}
	if r.tok != scanner.EOF {
		return query{}, r.fail("unexpected %s", scanner.TokenString(r.tok))
	}
	return q, r.err
}

func (r *reader) term() (engine.Term, error) {
	switch r.tok {
	case scanner.Int:
		text := r.s.TokenText()
		i, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, r.fail("invalid integer %s", text)
		}
		r.next()
		return engine.Integer(i), nil
	case scanner.Ident:
		name := r.s.TokenText()
		r.next()
		if r.tok != '(' {
			return engine.Variable(name), nil
		}
		return r.args(name)
	case '+', '-', '*', '/':
		name := string(r.tok)
		r.next()
		if r.tok != '(' {
			return nil, r.fail("expected ( after %s", name)
		}
		return r.args(name)
	default:
		return nil, r.fail("unexpected %s", scanner.TokenString(r.tok))
	}
}

// args reads a parenthesized argument list. The current token is (.
func (r *reader) args(functor string) (engine.Term, error) {
	c := engine.Compound{Functor: functor}
	r.next()
	if r.tok == ')' {
		r.next()
		return &c, nil
	}
	for {
		arg, err := r.term()
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, arg)
		switch r.tok {
		case ',':
			r.next()
		case ')':
			r.next()
			return &c, nil
		default:
			return nil, r.fail("expected , or ) but got %s", scanner.TokenString(r.tok))
		}
	}
}
