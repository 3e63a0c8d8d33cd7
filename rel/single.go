package rel

import (
	"fmt"
	"unsafe"

	"github.com/rami3l/goequator/debug"
	e "github.com/rami3l/goequator/errors"
	"golang.org/x/exp/constraints"
)

// Single wraps an operand to select the built-in relations.
// It holds no state of its own: a Single[T] has the layout of a T.
type Single[T any] struct{ V T }

func Wrap[T any](v T) Single[T] { return Single[T]{v} }

// FromRef reinterprets v in place, keeping its address.
func FromRef[T any](v *T) *Single[T] {
	debug.AssertEq(unsafe.Sizeof(*v), unsafe.Sizeof(Single[T]{}))
	return (*Single[T])(unsafe.Pointer(v))
}

// OrderedTest is the default implementation for ordered operands.
func OrderedTest[T constraints.Ordered](op Op, lhs, rhs Single[T]) error {
	var ok bool
	switch op {
	case Eq:
		ok = lhs.V == rhs.V
	case Ne:
		ok = lhs.V != rhs.V
	case Lt:
		ok = lhs.V < rhs.V
	case Le:
		ok = lhs.V <= rhs.V
	case Gt:
		ok = lhs.V > rhs.V
	case Ge:
		ok = lhs.V >= rhs.V
	default:
		panic(e.Unreachable)
	}
	if ok {
		return nil
	}
	return op.Err()
}

// EqualityTest is the default implementation for operands that only
// support ==. Asking it for an ordering is a bug at the call site.
func EqualityTest[T comparable](op Op, lhs, rhs Single[T]) error {
	var ok bool
	switch op {
	case Eq:
		ok = lhs.V == rhs.V
	case Ne:
		ok = lhs.V != rhs.V
	default:
		panic(fmt.Sprintf("relation %s needs ordered operands, got %T", op.Symbol(), lhs.V))
	}
	if ok {
		return nil
	}
	return op.Err()
}
