package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ichiban/unify/engine"
)

// toplevel answers queries one line at a time.
type toplevel struct {
	out io.Writer
	log logrus.FieldLogger
}

// run handles every line from r.
func (tl *toplevel) run(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if err := tl.handleLine(s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// handleLine answers a query. It returns an error only if it fails to write the answer.
func (tl *toplevel) handleLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	q, err := readQuery(line)
	if err != nil {
		tl.log.WithError(err).WithField("query", line).Warn("failed to read query")
		return nil
	}

	if q.right == nil {
		return tl.simplify(q.left)
	}
	return tl.unify(q.left, q.right)
}

func (tl *toplevel) unify(x, y engine.Term) error {
	log := tl.log.WithFields(logrus.Fields{
		"left":  x,
		"right": y,
	})

	s, err := engine.MGU(x, y)
	if err != nil {
		log.WithError(err).Debug("failed to unify")
		_, err := fmt.Fprintf(tl.out, "%t.\n", false)
		return err
	}

	log.WithField("mgu", s).Debug("unified")

	if s.Len() == 0 {
		_, err := fmt.Fprintf(tl.out, "%t.\n", true)
		return err
	}

	ls := make([]string, 0, s.Len())
	s.Each(func(v engine.Variable, t engine.Term) bool {
		ls = append(ls, fmt.Sprintf("%s = %s", v, t))
		return true
	})
	_, err = fmt.Fprintf(tl.out, "%s.\n", strings.Join(ls, ",\n"))
	return err
}

func (tl *toplevel) simplify(t engine.Term) error {
	log := tl.log.WithField("term", t)

	u, err := engine.Simplify(t)
	if err != nil {
		log.WithError(err).Warn("failed to simplify")
		return nil
	}

	log.WithField("result", u).Debug("simplified")

	_, err = fmt.Fprintf(tl.out, "%s.\n", u)
	return err
}
