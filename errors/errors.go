package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

// ParseError is reported by the generator when assertion text is malformed.
type ParseError struct {
	Line, Col int
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [L%d:%d]: %s", e.Line, e.Col, e.Reason)
}

// ShapeError means an expression tree and its source tree disagree in shape.
// It always points to a bug in the code that built the call site.
type ShapeError struct {
	Want, Got string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed call site: expected %s source, got %s", e.Want, e.Got)
}

// AssertionError is the panic value of a failed assertion.
type AssertionError struct {
	File      string
	Line, Col int
	Message   string

	// Report holds the recomposed reports of the failing comparisons.
	Report string
}

func (e *AssertionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Assertion failed at %s:%d:%d\n", e.File, e.Line, e.Col)
	if e.Message != "" {
		sb.WriteString(e.Message)
		sb.WriteByte('\n')
	}
	sb.WriteString(e.Report)
	return sb.String()
}

const Unreachable = "internal error: entered unreachable code"

var UnreachableError = goerrors.New(Unreachable)
