// Package expr holds the expression nodes an assertion call site is built
// from, and their short-circuit evaluation.
//
// Leaves are comparisons, either dispatched on a relation tag or on a
// custom comparator value. Inner nodes are conjunctions and disjunctions.
// A tree is built once per call, evaluated once and then dropped.
package expr

import (
	"github.com/rami3l/goequator/rel"
	"golang.org/x/exp/constraints"
)

// Expr is any node of an assertion tree.
// Eval returns nil when the node holds.
type Expr interface {
	Eval() Failure
}

// CmpExpr compares two operands with a relation tag.
type CmpExpr[L, R any] struct {
	Op  rel.Op
	Lhs L
	Rhs R

	test func(rel.Op, L, R) error
}

// Eval falls back to rel.TestAny for nodes built without a constructor.
func (c CmpExpr[L, R]) Eval() Failure {
	test := c.test
	if test == nil {
		test = rel.TestAny[L, R]
	}
	if err := test(c.Op, c.Lhs, c.Rhs); err != nil {
		return &CmpFailure{Cmp: c.Op, Lhs: c.Lhs, Rhs: c.Rhs, Err: err}
	}
	return nil
}

// Cmp builds a comparison of ordered operands.
func Cmp[T constraints.Ordered](op rel.Op, lhs, rhs T) CmpExpr[T, T] {
	return CmpExpr[T, T]{op, lhs, rhs, rel.Test[T]}
}

// CmpEq builds an equality comparison of comparable operands.
// Only rel.Eq and rel.Ne are meaningful here.
func CmpEq[T comparable](op rel.Op, lhs, rhs T) CmpExpr[T, T] {
	return CmpExpr[T, T]{op, lhs, rhs, rel.TestEq[T]}
}

// CmpBy builds a comparison dispatched on the left operand's Comparer.
func CmpBy[L rel.Comparer[R], R any](op rel.Op, lhs L, rhs R) CmpExpr[L, R] {
	return CmpExpr[L, R]{op, lhs, rhs, rel.TestBy[L, R]}
}

// CustomCmpExpr compares two operands with a comparator value,
// bypassing the relation tags.
type CustomCmpExpr[C rel.Tester[L, R], L, R any] struct {
	Cmp C
	Lhs L
	Rhs R
}

func Custom[C rel.Tester[L, R], L, R any](cmp C, lhs L, rhs R) CustomCmpExpr[C, L, R] {
	return CustomCmpExpr[C, L, R]{cmp, lhs, rhs}
}

func (c CustomCmpExpr[C, L, R]) Eval() Failure {
	if err := c.Cmp.Test(c.Lhs, c.Rhs); err != nil {
		return &CmpFailure{Cmp: c.Cmp, Lhs: c.Lhs, Rhs: c.Rhs, Err: err}
	}
	return nil
}

type AndExpr[A, B Expr] struct {
	Lhs A
	Rhs B
}

func And[A, B Expr](lhs A, rhs B) AndExpr[A, B] { return AndExpr[A, B]{lhs, rhs} }

// Eval only looks at the right side when the left one holds.
func (a AndExpr[A, B]) Eval() Failure {
	if f := a.Lhs.Eval(); f != nil {
		return &AndFailure{Lhs: f}
	}
	if f := a.Rhs.Eval(); f != nil {
		return &AndFailure{Rhs: f}
	}
	return nil
}

type OrExpr[A, B Expr] struct {
	Lhs A
	Rhs B
}

func Or[A, B Expr](lhs A, rhs B) OrExpr[A, B] { return OrExpr[A, B]{lhs, rhs} }

// Eval only looks at the right side when the left one fails.
func (o OrExpr[A, B]) Eval() Failure {
	lf := o.Lhs.Eval()
	if lf == nil {
		return nil
	}
	rf := o.Rhs.Eval()
	if rf == nil {
		return nil
	}
	return &OrFailure{Lhs: lf, Rhs: rf}
}
