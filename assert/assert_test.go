package assert_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rami3l/goequator/assert"
	"github.com/rami3l/goequator/decompose"
	e "github.com/rami3l/goequator/errors"
	"github.com/rami3l/goequator/expr"
	"github.com/rami3l/goequator/rel"
	"github.com/sirupsen/logrus"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.DebugLevel)
	goleak.VerifyTestMain(m)
}

var siteEq = &assert.Site{
	Location: assert.Location{File: "calc_test.go", Line: 12, Col: 2},
	Source:   decompose.Cmp("1", "2"),
}

var siteAnd = &assert.Site{
	Location: assert.Location{File: "calc_test.go", Line: 20, Col: 2},
	Source:   decompose.And(decompose.Cmp("1", "1"), decompose.Cmp("2", "3")),
}

// recovered runs f and returns the assertion error it panicked with.
func recovered(t *testing.T, f func()) (err *e.AssertionError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		require.IsType(t, &e.AssertionError{}, r)
		err = r.(*e.AssertionError)
	}()
	f()
	return
}

func TestThatPasses(t *testing.T) {
	t.Parallel()
	tassert.NotPanics(t, func() { assert.That(siteEq, expr.Cmp(rel.Lt, 1, 2)) })
}

func TestThatReport(t *testing.T) {
	t.Parallel()
	err := recovered(t, func() { assert.That(siteEq, expr.Cmp(rel.Eq, 1, 2)) })
	tassert.Equal(t, heredoc.Doc(`
		Assertion failed at calc_test.go:12:2
		Assertion failed: 1 == 2
		- 1 = 1
		- 2 = 2`), err.Error())
	tassert.Equal(t, "Assertion failed: 1 == 2\n- 1 = 1\n- 2 = 2", err.Report)
}

func TestThatCompoundReportsFailingLeaf(t *testing.T) {
	t.Parallel()
	err := recovered(t, func() {
		assert.That(siteAnd, expr.And(expr.Cmp(rel.Eq, 1, 1), expr.Cmp(rel.Eq, 2, 3)))
	})
	tassert.Contains(t, err.Error(), "Assertion failed: 2 == 3\n- 2 = 2\n- 3 = 3")
	tassert.NotContains(t, err.Error(), "1 == 1")
}

func TestThatfMessage(t *testing.T) {
	t.Parallel()
	err := recovered(t, func() {
		assert.Thatf(siteEq, expr.Cmp(rel.Eq, 1, 2), "balance of %s", "alice")
	})
	tassert.Equal(t, "balance of alice", err.Message)
	tassert.Equal(t, heredoc.Doc(`
		Assertion failed at calc_test.go:12:2
		balance of alice
		Assertion failed: 1 == 2
		- 1 = 1
		- 2 = 2`), err.Error())
}

func TestThatfMessageIsLazy(t *testing.T) {
	t.Parallel()
	formatted := false
	lazy := stringerFunc(func() string { formatted = true; return "" })
	assert.Thatf(siteEq, expr.Cmp(rel.Eq, 2, 2), "%v", lazy)
	tassert.False(t, formatted)
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }

func TestCheck(t *testing.T) {
	t.Parallel()
	tassert.NoError(t, assert.Check(siteEq, expr.Cmp(rel.Ne, 1, 2)))

	err := assert.Check(siteEq, expr.Cmp(rel.Eq, 1, 2))
	var assertErr *e.AssertionError
	require.ErrorAs(t, err, &assertErr)
	tassert.Equal(t, 12, assertErr.Line)

	err = assert.Checkf(siteEq, expr.Cmp(rel.Eq, 1, 2), "want %d", 1)
	tassert.ErrorContains(t, err, "want 1\nAssertion failed: 1 == 2")
}

// approx picks its own equality, which the engine must always prefer.
type approx float64

func (a approx) CompareWith(op rel.Op, rhs approx) error {
	d := float64(a - rhs)
	eq := d < 1e-9 && d > -1e-9
	if (op == rel.Eq) == eq && (op == rel.Eq || op == rel.Ne) {
		return nil
	}
	return fmt.Errorf("approx does not support %s here", op.Symbol())
}

func TestResolutionPrefersCustom(t *testing.T) {
	t.Parallel()
	site := &assert.Site{Source: decompose.Cmp("a", "b")}
	x, y := 0.1, 0.2
	a, b := approx(x+y), approx(0.3)
	tassert.NotPanics(t, func() { assert.That(site, expr.Cmp(rel.Eq, a, b)) })
	tassert.NoError(t, assert.Check(site, expr.CmpBy(rel.Eq, a, b)))
	// The built-in relation disagrees.
	tassert.Error(t, assert.Check(site, expr.Cmp(rel.Eq, x+y, float64(b))))
}

func TestMalformedSitePanics(t *testing.T) {
	t.Parallel()
	site := &assert.Site{Source: decompose.Or(decompose.Cmp("a", "b"), decompose.Cmp("c", "d"))}
	tassert.PanicsWithError(t,
		"malformed call site: expected conjunction source, got disjunction",
		func() { assert.That(site, expr.And(expr.Cmp(rel.Eq, 1, 2), expr.Cmp(rel.Eq, 3, 3))) },
	)
}

func TestConcurrentCallSites(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				errs[i] = assert.Check(siteEq, expr.Cmp(rel.Eq, i%2, 0))
			}
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if i%2 == 0 {
			tassert.NoError(t, err)
		} else {
			tassert.ErrorContains(t, err, "- 1 = 1\n- 2 = 0")
		}
	}
}

func TestComparerErrorReport(t *testing.T) {
	t.Parallel()
	site := &assert.Site{
		Location: assert.Location{File: "calc_test.go", Line: 30, Col: 2},
		Source:   decompose.Cmp("a", "b"),
	}
	err := assert.Check(site, expr.CmpBy(rel.Lt, approx(1), approx(2)))
	tassert.EqualError(t, err, heredoc.Doc(`
		Assertion failed at calc_test.go:30:2
		Assertion failed: a < b
		- a = 1
		- b = 2
		- error: approx does not support < here`))
}

func TestReportJoinsLeaves(t *testing.T) {
	t.Parallel()
	site := &assert.Site{Source: decompose.Or(decompose.Cmp("1", "2"), decompose.Cmp("3", "4"))}
	err := assert.Report(site, expr.Or(expr.Cmp(rel.Eq, 1, 2), expr.Cmp(rel.Eq, 3, 4)).Eval(), "")
	tassert.Equal(t, heredoc.Doc(`
		Assertion failed: 1 == 2
		- 1 = 1
		- 2 = 2
		Assertion failed: 3 == 4
		- 3 = 3
		- 4 = 4`), err.Report)
}
