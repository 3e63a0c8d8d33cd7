// Package decompose turns a failed evaluation into per-leaf records and
// renders them back into a single report.
package decompose

import (
	"fmt"
	"io"

	"github.com/rami3l/goequator/debug"
	e "github.com/rami3l/goequator/errors"
	"github.com/rami3l/goequator/expr"
	"github.com/rami3l/goequator/pretty"
	"github.com/rami3l/goequator/rel"
)

// Leaf is everything a report needs about one failing comparison.
type Leaf struct {
	// Cmp is the rel.Op or the custom comparator.
	Cmp any
	// CmpSource is the comparator's source text, empty for relation tags.
	CmpSource string
	Lhs, Rhs  rel.Operand
	Err       error
}

// Display writes the leaf report. Failure kinds implementing rel.Displayer
// render themselves. Any other error is appended to the template of the
// relation, or of the comparator when there is no relation tag.
func (l Leaf) Display(w io.Writer) error {
	if d, ok := l.Err.(rel.Displayer); ok {
		return d.DisplayCmp(w, l.Cmp, l.Lhs, l.Rhs)
	}
	if op, ok := l.Cmp.(rel.Op); ok {
		if err := rel.DisplayCmp(w, op.Symbol(), l.Lhs, l.Rhs); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n- error: %v", l.Err)
		return err
	}
	_, err := fmt.Fprintf(w,
		"Assertion failed: %s(%s, %s)\n- %s = %s\n- %s = %s\n- error: %v",
		l.CmpSource, l.Lhs.Source, l.Rhs.Source,
		l.Lhs.Source, l.Lhs.Debug,
		l.Rhs.Source, l.Rhs.Debug,
		l.Err,
	)
	return err
}

// Decompose pairs the failure tree with the call site's source tree and
// returns the failing leaves left to right.
func Decompose(f expr.Failure, src Source) ([]Leaf, error) {
	var leaves []Leaf
	if err := walk(f, src, &leaves); err != nil {
		return nil, err
	}
	debug.Assertf(len(leaves) == expr.Leaves(f), "decomposed %d leaves out of %d", len(leaves), expr.Leaves(f))
	return leaves, nil
}

func walk(f expr.Failure, src Source, out *[]Leaf) error {
	switch f := f.(type) {
	case nil:
		return nil

	case *expr.CmpFailure:
		leaf := Leaf{
			Cmp: f.Cmp,
			Lhs: rel.Operand{Value: f.Lhs, Debug: pretty.Value{V: f.Lhs}},
			Rhs: rel.Operand{Value: f.Rhs, Debug: pretty.Value{V: f.Rhs}},
			Err: f.Err,
		}
		_, isTag := f.Cmp.(rel.Op)
		switch s := src.(type) {
		case CmpSource:
			if !isTag {
				return shapeError("custom comparison", src)
			}
			leaf.Lhs.Source, leaf.Rhs.Source = s.Lhs, s.Rhs
		case CustomSource:
			if isTag {
				return shapeError("comparison", src)
			}
			leaf.CmpSource, leaf.Lhs.Source, leaf.Rhs.Source = s.Cmp, s.Lhs, s.Rhs
		default:
			return shapeError("comparison", src)
		}
		*out = append(*out, leaf)
		return nil

	case *expr.AndFailure:
		s, ok := src.(AndSource)
		if !ok {
			return shapeError("conjunction", src)
		}
		if err := walk(f.Lhs, s.Lhs, out); err != nil {
			return err
		}
		return walk(f.Rhs, s.Rhs, out)

	case *expr.OrFailure:
		s, ok := src.(OrSource)
		if !ok {
			return shapeError("disjunction", src)
		}
		if err := walk(f.Lhs, s.Lhs, out); err != nil {
			return err
		}
		return walk(f.Rhs, s.Rhs, out)

	default:
		panic(e.Unreachable)
	}
}

func shapeError(want string, got Source) *e.ShapeError {
	if got == nil {
		return &e.ShapeError{Want: want, Got: "no"}
	}
	return &e.ShapeError{Want: want, Got: got.kind()}
}

// Recompose writes the leaf reports separated by newlines.
func Recompose(w io.Writer, leaves []Leaf) error {
	for i, leaf := range leaves {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := leaf.Display(w); err != nil {
			return err
		}
	}
	return nil
}
