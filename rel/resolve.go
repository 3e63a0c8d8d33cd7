package rel

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Test resolves op for ordered operands: the operand's own Comparer wins,
// the wrapped default runs otherwise.
func Test[T constraints.Ordered](op Op, lhs, rhs T) error {
	if c, ok := any(lhs).(Comparer[T]); ok {
		return c.CompareWith(op, rhs)
	}
	return OrderedTest(op, Wrap(lhs), Wrap(rhs))
}

// TestEq is Test for operands that are comparable but not ordered.
func TestEq[T comparable](op Op, lhs, rhs T) error {
	if c, ok := any(lhs).(Comparer[T]); ok {
		return c.CompareWith(op, rhs)
	}
	return EqualityTest(op, Wrap(lhs), Wrap(rhs))
}

// TestBy calls the operand's Comparer. The choice is fixed by the type
// constraint, so no check happens at run time.
func TestBy[L Comparer[R], R any](op Op, lhs L, rhs R) error {
	return lhs.CompareWith(op, rhs)
}

// TestAny resolves op when nothing is known about the operands until run
// time. A Comparer still wins. Otherwise operands of the same numeric or
// string type are ordered natively, and other comparable operands only
// support Eq and Ne.
func TestAny[L, R any](op Op, lhs L, rhs R) error {
	if c, ok := any(lhs).(Comparer[R]); ok {
		return c.CompareWith(op, rhs)
	}
	l, r := reflect.ValueOf(lhs), reflect.ValueOf(rhs)
	if l.IsValid() && r.IsValid() && l.Type() == r.Type() {
		switch {
		case l.CanInt():
			return OrderedTest(op, Wrap(l.Int()), Wrap(r.Int()))
		case l.CanUint():
			return OrderedTest(op, Wrap(l.Uint()), Wrap(r.Uint()))
		case l.CanFloat():
			return OrderedTest(op, Wrap(l.Float()), Wrap(r.Float()))
		case l.Kind() == reflect.String:
			return OrderedTest(op, Wrap(l.String()), Wrap(r.String()))
		}
	}
	for _, v := range [...]reflect.Value{l, r} {
		if v.IsValid() && !v.Type().Comparable() {
			panic(fmt.Sprintf("relation %s needs comparable operands, got %s", op.Symbol(), v.Type()))
		}
	}
	return EqualityTest(op, Wrap[any](lhs), Wrap[any](rhs))
}
