package expr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/rami3l/goequator/expr"
	"github.com/rami3l/goequator/rel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter records how often its Test runs and returns a fixed verdict.
type counter struct {
	calls *int
	pass  bool
}

func (c counter) Test(lhs, rhs int) error {
	*c.calls++
	if c.pass {
		return nil
	}
	return fmt.Errorf("%d and %d rejected", lhs, rhs)
}

// mod7 compares integers modulo 7 and reports which method was chosen.
type mod7 int

var errMod7 = fmt.Errorf("mod 7 mismatch")

func (m mod7) CompareWith(op rel.Op, rhs mod7) error {
	a, b := int(m)%7, int(rhs)%7
	if err := rel.OrderedTest(op, rel.Wrap(a), rel.Wrap(b)); err != nil {
		return errMod7
	}
	return nil
}

type pair struct{ A, B int }

func holds(e expr.Expr) bool { return e.Eval() == nil }

func TestRelations(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		op   rel.Op
		a, b int
		want bool
	}{
		{rel.Eq, 1, 1, true}, {rel.Eq, 1, 2, false},
		{rel.Ne, 1, 2, true}, {rel.Ne, 2, 2, false},
		{rel.Lt, 1, 2, true}, {rel.Lt, 2, 2, false},
		{rel.Le, 2, 2, true}, {rel.Le, 3, 2, false},
		{rel.Gt, 3, 2, true}, {rel.Gt, 2, 2, false},
		{rel.Ge, 2, 2, true}, {rel.Ge, 1, 2, false},
	} {
		assert.Equal(t, tc.want, holds(expr.Cmp(tc.op, tc.a, tc.b)), "%d %s %d", tc.a, tc.op.Symbol(), tc.b)
	}
	assert.True(t, holds(expr.Cmp(rel.Lt, "abc", "abd")))
	assert.True(t, holds(expr.CmpEq(rel.Eq, pair{1, 2}, pair{1, 2})))
	assert.True(t, holds(expr.CmpEq(rel.Ne, pair{1, 2}, pair{2, 1})))
}

func TestNaNIsNotSpecialCased(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	for _, op := range []rel.Op{rel.Eq, rel.Lt, rel.Le, rel.Gt, rel.Ge} {
		assert.False(t, holds(expr.Cmp(op, nan, nan)), "NaN %s NaN", op.Symbol())
	}
	assert.True(t, holds(expr.Cmp(rel.Ne, nan, nan)))
}

func TestFailureCarriesKind(t *testing.T) {
	t.Parallel()
	f := expr.Cmp(rel.Le, 3, 2).Eval()
	require.IsType(t, &expr.CmpFailure{}, f)
	cf := f.(*expr.CmpFailure)
	assert.Equal(t, rel.Le, cf.Cmp)
	assert.Equal(t, rel.Error{Op: rel.Le}, cf.Err)
	assert.Equal(t, 3, cf.Lhs)
	assert.Equal(t, 2, cf.Rhs)
}

func TestCustomOperandWins(t *testing.T) {
	t.Parallel()
	// 1 and 8 are equal modulo 7 but not as integers.
	for _, e := range []expr.Expr{
		expr.Cmp(rel.Eq, mod7(1), mod7(8)),
		expr.CmpEq(rel.Eq, mod7(1), mod7(8)),
		expr.CmpBy(rel.Eq, mod7(1), mod7(8)),
	} {
		assert.True(t, holds(e))
	}
	f := expr.Cmp(rel.Lt, mod7(6), mod7(7)).Eval()
	require.NotNil(t, f)
	assert.Equal(t, errMod7, f.(*expr.CmpFailure).Err)
}

func TestEqualityRejectsOrdering(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { expr.CmpEq(rel.Lt, pair{}, pair{}).Eval() })
}

func TestAndShortCircuits(t *testing.T) {
	t.Parallel()
	var left, right int
	e := expr.And(
		expr.Custom(counter{&left, false}, 1, 2),
		expr.Custom(counter{&right, true}, 3, 4),
	)
	f := e.Eval()
	require.IsType(t, &expr.AndFailure{}, f)
	assert.Nil(t, f.(*expr.AndFailure).Rhs)
	assert.Equal(t, 1, left)
	assert.Equal(t, 0, right)
}

func TestAndReportsRightSide(t *testing.T) {
	t.Parallel()
	f := expr.And(expr.Cmp(rel.Eq, 1, 1), expr.Cmp(rel.Eq, 2, 3)).Eval()
	require.IsType(t, &expr.AndFailure{}, f)
	af := f.(*expr.AndFailure)
	assert.Nil(t, af.Lhs)
	assert.Equal(t, 2, af.Rhs.(*expr.CmpFailure).Lhs)
}

func TestOrShortCircuits(t *testing.T) {
	t.Parallel()
	var left, right int
	e := expr.Or(
		expr.Custom(counter{&left, true}, 1, 2),
		expr.Custom(counter{&right, false}, 3, 4),
	)
	assert.Nil(t, e.Eval())
	assert.Equal(t, 1, left)
	assert.Equal(t, 0, right)
}

func TestOrReportsBothSides(t *testing.T) {
	t.Parallel()
	f := expr.Or(expr.Cmp(rel.Gt, 1, 2), expr.Cmp(rel.Eq, "a", "b")).Eval()
	require.IsType(t, &expr.OrFailure{}, f)
	assert.Equal(t, 2, expr.Leaves(f))
	assert.Nil(t, expr.Or(expr.Cmp(rel.Gt, 1, 2), expr.Cmp(rel.Eq, "a", "a")).Eval())
}

func TestNested(t *testing.T) {
	t.Parallel()
	// (1 < 2 || 3 > 4) && (5 == 6 || 7 != 7)
	e := expr.And(
		expr.Or(expr.Cmp(rel.Lt, 1, 2), expr.Cmp(rel.Gt, 3, 4)),
		expr.Or(expr.Cmp(rel.Eq, 5, 6), expr.Cmp(rel.Ne, 7, 7)),
	)
	f := e.Eval()
	require.NotNil(t, f)
	assert.Equal(t, 2, expr.Leaves(f))
	assert.Nil(t, f.(*expr.AndFailure).Lhs)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()
	var calls int
	e := expr.And(expr.Cmp(rel.Le, 1, 1), expr.Custom(counter{&calls, true}, 0, 0))
	for i := 0; i < 5; i++ {
		assert.Nil(t, e.Eval())
	}
	assert.Equal(t, 5, calls)
}

func TestNodeLiteralEvaluates(t *testing.T) {
	t.Parallel()
	assert.True(t, holds(expr.CmpExpr[int, int]{Op: rel.Eq, Lhs: 1, Rhs: 1}))
	assert.True(t, holds(expr.CmpExpr[int, int]{}))

	f := expr.CmpExpr[string, string]{Op: rel.Lt, Lhs: "b", Rhs: "a"}.Eval()
	require.IsType(t, &expr.CmpFailure{}, f)
	assert.Equal(t, rel.Lt.Err(), f.(*expr.CmpFailure).Err)

	f = expr.CmpExpr[mod7, mod7]{Op: rel.Eq, Lhs: 1, Rhs: 9}.Eval()
	require.IsType(t, &expr.CmpFailure{}, f)
	assert.Equal(t, errMod7, f.(*expr.CmpFailure).Err)
}
