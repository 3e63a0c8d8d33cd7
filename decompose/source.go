package decompose

// Source mirrors an expression tree with the text each operand had at the
// call site. It is built once per call site and never changes.
type Source interface {
	kind() string
}

type CmpSource struct {
	Lhs, Rhs string
}

// CustomSource also keeps the text of the comparator expression.
type CustomSource struct {
	Cmp, Lhs, Rhs string
}

type AndSource struct {
	Lhs, Rhs Source
}

type OrSource struct {
	Lhs, Rhs Source
}

func Cmp(lhs, rhs string) CmpSource            { return CmpSource{lhs, rhs} }
func Custom(cmp, lhs, rhs string) CustomSource { return CustomSource{cmp, lhs, rhs} }
func And(lhs, rhs Source) AndSource            { return AndSource{lhs, rhs} }
func Or(lhs, rhs Source) OrSource              { return OrSource{lhs, rhs} }
func (CmpSource) kind() string                 { return "comparison" }
func (CustomSource) kind() string              { return "custom comparison" }
func (AndSource) kind() string                 { return "conjunction" }
func (OrSource) kind() string                  { return "disjunction" }
