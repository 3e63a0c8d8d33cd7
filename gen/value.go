package gen

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rami3l/goequator/rel"
)

// Value is a literal operand. Values bring their own comparison rules:
// values of different kinds are never equal, and only two numbers or two
// strings can be ordered.
type Value interface {
	CompareWith(op rel.Op, rhs Value) error
	DebugString() string
	isValue()
}

type Bool bool

func (Bool) isValue()              {}
func (v Bool) String() string      { return fmt.Sprintf("%t", v) }
func (v Bool) DebugString() string { return v.String() }

func (v Bool) CompareWith(op rel.Op, rhs Value) error {
	if w, ok := rhs.(Bool); ok && !op.Ordering() {
		return rel.EqualityTest(op, rel.Wrap(v), rel.Wrap(w))
	}
	return mismatch(op, v, rhs)
}

type Nil struct{}

func (Nil) isValue()              {}
func (Nil) String() string        { return "nil" }
func (v Nil) DebugString() string { return v.String() }

func (v Nil) CompareWith(op rel.Op, rhs Value) error {
	if w, ok := rhs.(Nil); ok && !op.Ordering() {
		return rel.EqualityTest(op, rel.Wrap(v), rel.Wrap(w))
	}
	return mismatch(op, v, rhs)
}

type Num float64

func (Num) isValue()              {}
func (v Num) String() string      { return fmt.Sprintf("%g", v) }
func (v Num) DebugString() string { return v.String() }

func (v Num) CompareWith(op rel.Op, rhs Value) error {
	if w, ok := rhs.(Num); ok {
		return rel.OrderedTest(op, rel.Wrap(v), rel.Wrap(w))
	}
	return mismatch(op, v, rhs)
}

type Str string

func (Str) isValue()              {}
func (v Str) String() string      { return string(v) }
func (v Str) DebugString() string { return strconv.Quote(string(v)) }

func (v Str) CompareWith(op rel.Op, rhs Value) error {
	if w, ok := rhs.(Str); ok {
		return rel.OrderedTest(op, rel.Wrap(v), rel.Wrap(w))
	}
	return mismatch(op, v, rhs)
}

func mismatch(op rel.Op, lhs, rhs Value) error {
	switch op {
	case rel.Ne:
		return nil
	case rel.Eq:
		return op.Err()
	default:
		return &TypeError{Symbol: op.Symbol(), Lhs: KindOf(lhs), Rhs: KindOf(rhs)}
	}
}

func KindOf(v Value) string {
	switch v.(type) {
	case Bool:
		return "boolean"
	case Nil:
		return "nil"
	case Num:
		return "number"
	case Str:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}

// TypeError is the failure kind of a comparison whose operands cannot be
// compared at all.
type TypeError struct {
	Symbol   string
	Lhs, Rhs string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("operands of %s must be two numbers or two strings, got %s and %s", e.Symbol, e.Lhs, e.Rhs)
}

func (e *TypeError) DisplayCmp(w io.Writer, _ any, lhs, rhs rel.Operand) error {
	if err := rel.DisplayCmp(w, e.Symbol, lhs, rhs); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n- %s", e.Error())
	return err
}

// Approx is the comparator behind `~=`: two numbers hold when they are
// at most Tolerance apart.
type Approx struct{ Tolerance float64 }

func (a Approx) Test(lhs, rhs Value) error {
	l, lok := lhs.(Num)
	r, rok := rhs.(Num)
	if !lok || !rok {
		return &TypeError{Symbol: "~=", Lhs: KindOf(lhs), Rhs: KindOf(rhs)}
	}
	if diff := math.Abs(float64(l - r)); !(diff <= a.Tolerance) {
		return &ApproxError{Diff: diff, Tolerance: a.Tolerance}
	}
	return nil
}

type ApproxError struct {
	Diff, Tolerance float64
}

func (e *ApproxError) Error() string {
	return fmt.Sprintf("difference %g exceeds tolerance %g", e.Diff, e.Tolerance)
}

func (e *ApproxError) DisplayCmp(w io.Writer, _ any, lhs, rhs rel.Operand) error {
	if err := rel.DisplayCmp(w, "~=", lhs, rhs); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n- %s", e.Error())
	return err
}
