package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rami3l/goequator/assert"
	"github.com/rami3l/goequator/gen"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Checker runs assertions read from text and writes every failure report
// to Out, each followed by a blank line.
type Checker struct {
	Out       io.Writer
	Tolerance float64

	Passed, Failed int
	errors         *multierror.Error
}

func NewChecker(out io.Writer) *Checker {
	return &Checker{Out: out, Tolerance: gen.DefaultTolerance}
}

// Check runs a single assertion as if it were written at loc.
// It reports whether the assertion held.
func (c *Checker) Check(loc assert.Location, text, message string) bool {
	prog, err := gen.NewParser().WithTolerance(c.Tolerance).Parse(text)
	if err != nil {
		for _, err := range err.(*multierror.Error).WrappedErrors() {
			c.errors = multierror.Append(c.errors, fmt.Errorf("%s: %w", loc, err))
		}
		return false
	}
	if err := assert.Checkf(prog.Site(loc), prog.Expr, "%s", message); err != nil {
		c.Failed++
		fmt.Fprintf(c.Out, "%s\n\n", err)
		return false
	}
	c.Passed++
	logrus.Debugf("%s: ok", loc)
	return true
}

// Lines checks one assertion per line. Blank lines and `//` comments are
// skipped.
func (c *Checker) Lines(file string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		col := strings.Index(raw, text) + 1
		c.Check(assert.Location{File: file, Line: line, Col: col}, text, "")
	}
	return sc.Err()
}

// Suite is a named list of assertions stored as YAML.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

type Case struct {
	Name    string `yaml:"name"`
	Assert  string `yaml:"assert"`
	Message string `yaml:"message"`

	line, col int
}

func (cs *Case) UnmarshalYAML(n *yaml.Node) error {
	type plain Case
	if err := n.Decode((*plain)(cs)); err != nil {
		return err
	}
	cs.line, cs.col = n.Line, n.Column
	return nil
}

// Suite checks every case of a YAML suite. Cases are located at the line
// where they start.
func (c *Checker) Suite(file string, data []byte) error {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	logrus.Debugf("running suite %q with %d cases", suite.Name, len(suite.Cases))
	for _, cs := range suite.Cases {
		loc := assert.Location{File: file, Line: cs.line, Col: cs.col}
		if !c.Check(loc, cs.Assert, cs.Message) {
			logrus.Debugf("case %q failed", cs.Name)
		}
	}
	return nil
}

func (c *Checker) parseErrors() int {
	if c.errors == nil {
		return 0
	}
	return len(c.errors.Errors)
}

// Err sums up the run: parse errors first, then the failure count.
func (c *Checker) Err() error {
	errs := c.errors
	if c.Failed > 0 {
		errs = multierror.Append(errs, fmt.Errorf("%d of %d assertions failed", c.Failed, c.Failed+c.Passed))
	}
	return errs.ErrorOrNil()
}
