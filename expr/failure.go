package expr

// Failure describes which leaves made an assertion fail.
// Its shape follows the expression tree that produced it.
type Failure interface {
	isFailure()
}

// CmpFailure is a failing leaf. Cmp is the rel.Op or the comparator value.
type CmpFailure struct {
	Cmp      any
	Lhs, Rhs any
	Err      error
}

// AndFailure has exactly one side set: the first side that failed.
type AndFailure struct {
	Lhs, Rhs Failure
}

// OrFailure has both sides set, since both must fail.
type OrFailure struct {
	Lhs, Rhs Failure
}

func (*CmpFailure) isFailure() {}
func (*AndFailure) isFailure() {}
func (*OrFailure) isFailure()  {}

// Leaves counts the failing comparisons in f.
func Leaves(f Failure) int {
	switch f := f.(type) {
	case nil:
		return 0
	case *CmpFailure:
		return 1
	case *AndFailure:
		return Leaves(f.Lhs) + Leaves(f.Rhs)
	case *OrFailure:
		return Leaves(f.Lhs) + Leaves(f.Rhs)
	}
	return 0
}
