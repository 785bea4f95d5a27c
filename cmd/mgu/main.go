package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	var (
		verbose bool
		prompt  string
	)
	pflag.BoolVarP(&verbose, "verbose", "v", false, `verbose`)
	pflag.StringVarP(&prompt, "prompt", "p", "?- ", `prompt`)
	pflag.Parse()

	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	tl := toplevel{out: os.Stdout, log: log}

	for _, a := range pflag.Args() {
		f, err := os.Open(a)
		if err != nil {
			log.WithError(err).WithField("file", a).Fatal("failed to open")
		}
		err = tl.run(f)
		_ = f.Close()
		if err != nil {
			log.WithError(err).WithField("file", a).Fatal("failed to run")
		}
	}

	if !terminal.IsTerminal(0) {
		if err := tl.run(os.Stdin); err != nil {
			log.WithError(err).Fatal("failed to run")
		}
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.WithError(err).Panic("failed to enter raw mode")
	}
	defer func() {
		_ = terminal.Restore(0, oldState)
	}()

	t := terminal.NewTerminal(os.Stdin, prompt)
	log.SetOutput(t)
	tl.out = t

	for {
		line, err := t.ReadLine()
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Error("failed to read line")
			}
			return
		}
		if err := tl.handleLine(line); err != nil {
			log.WithError(err).Error("failed to write")
			return
		}
	}
}
