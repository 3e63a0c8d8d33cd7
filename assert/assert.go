// Package assert is the entry point generated call sites invoke.
//
// A call site declares one Site holding its location and the source text
// of every operand, builds an expression tree from the expr package and
// hands both to That (always checked) or Debug (checked only in builds
// tagged "debug"). Nothing is formatted unless the assertion fails.
package assert

import (
	"fmt"
	"strings"

	"github.com/rami3l/goequator/debug"
	"github.com/rami3l/goequator/decompose"
	e "github.com/rami3l/goequator/errors"
	"github.com/rami3l/goequator/expr"
	"github.com/sirupsen/logrus"
)

type Location struct {
	File      string
	Line, Col int
}

func (l Location) String() string { return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col) }

// Site is the static part of a call site.
type Site struct {
	Location
	Source decompose.Source
}

// Enabled reports whether Debug and Debugf evaluate anything.
const Enabled = debug.DEBUG

// That fails loudly when x does not hold.
func That(site *Site, x expr.Expr) {
	if f := x.Eval(); f != nil {
		Fail(site, f, "")
	}
}

// Thatf is That with a message, formatted only on failure.
func Thatf(site *Site, x expr.Expr, format string, a ...any) {
	if f := x.Eval(); f != nil {
		Fail(site, f, fmt.Sprintf(format, a...))
	}
}

// Debug is That in debug builds and a no-op otherwise.
// build is never called when the build is not tagged "debug".
func Debug(site *Site, build func() expr.Expr) {
	if !Enabled {
		return
	}
	That(site, build())
}

func Debugf(site *Site, build func() expr.Expr, format string, a ...any) {
	if !Enabled {
		return
	}
	Thatf(site, build(), format, a...)
}

// Check returns the report of a failing assertion instead of panicking.
func Check(site *Site, x expr.Expr) error {
	if f := x.Eval(); f != nil {
		return Report(site, f, "")
	}
	return nil
}

func Checkf(site *Site, x expr.Expr, format string, a ...any) error {
	if f := x.Eval(); f != nil {
		return Report(site, f, fmt.Sprintf(format, a...))
	}
	return nil
}

// Report builds the diagnostic for f. A site whose source tree does not
// match the expression is a bug in the generated code and panics.
func Report(site *Site, f expr.Failure, message string) *e.AssertionError {
	leaves, err := decompose.Decompose(f, site.Source)
	if err != nil {
		panic(err)
	}
	var report strings.Builder
	if err := decompose.Recompose(&report, leaves); err != nil {
		panic(err)
	}
	return &e.AssertionError{
		File:    site.File,
		Line:    site.Line,
		Col:     site.Col,
		Message: message,
		Report:  report.String(),
	}
}

// Fail reports f and panics. It never returns.
func Fail(site *Site, f expr.Failure, message string) {
	err := Report(site, f, message)
	logrus.WithField("at", site.Location).Debugln(err)
	panic(err)
}
