package rel

import (
	"fmt"
	"io"
)

// Tester is a comparator value with its own notion of success.
// A nil error means the comparison holds.
type Tester[L, R any] interface {
	Test(lhs L, rhs R) error
}

// Comparer lets an operand type replace the built-in relations.
// When the left operand implements it, it is always chosen over the
// default equality/ordering, for every operator.
type Comparer[R any] interface {
	CompareWith(op Op, rhs R) error
}

// Operand is one side of a failed comparison as seen by a Displayer.
type Operand struct {
	Value  any
	Source string
	Debug  fmt.Stringer
}

// Displayer is implemented by failure kinds that know how to render
// themselves into a report.
type Displayer interface {
	DisplayCmp(w io.Writer, cmp any, lhs, rhs Operand) error
}

// Error is the failure kind of a built-in relation.
type Error struct{ Op Op }

func (e Error) Error() string {
	return fmt.Sprintf("relation %s does not hold", e.Op.Symbol())
}

func (e Error) DisplayCmp(w io.Writer, _ any, lhs, rhs Operand) error {
	return DisplayCmp(w, e.Op.Symbol(), lhs, rhs)
}

// DisplayCmp writes the three-line report shared by every built-in relation.
// Downstream tooling parses this text, so it must not change.
func DisplayCmp(w io.Writer, symbol string, lhs, rhs Operand) error {
	_, err := fmt.Fprintf(w,
		"Assertion failed: %s %s %s\n- %s = %s\n- %s = %s",
		lhs.Source, symbol, rhs.Source,
		lhs.Source, lhs.Debug,
		rhs.Source, rhs.Debug,
	)
	return err
}
