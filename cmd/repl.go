package cmd

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rami3l/goequator/assert"
)

// REPL checks one assertion per line read from the prompt until an empty
// line or ^D.
func (c *Checker) REPL() error {
	reader, err := readline.New(">> ")
	if err != nil {
		return err
	}
	defer reader.Close()

	for n := 1; ; n++ {
		line, err := reader.Readline()
		switch err {
		case nil:
			if line == "" {
				return nil
			}
		case readline.ErrInterrupt: // ^C
			continue
		case io.EOF: // ^D
			return nil
		default:
			return err
		}

		c.Interpret(assert.Location{File: "<repl>", Line: n, Col: 1}, line)
	}
}

// Interpret checks a prompt line. Unlike Lines, it prints the parse errors
// right away and confirms assertions that hold.
func (c *Checker) Interpret(loc assert.Location, line string) {
	before := c.parseErrors()
	if c.Check(loc, line, "") {
		fmt.Fprintln(c.Out, "ok")
		return
	}
	if c.parseErrors() > before {
		fmt.Fprintln(c.Out, c.errors.Errors[before])
	}
}
