package rel

//go:generate stringer -type=Op
type Op uint8

// The six relations a comparison node can test.
const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var symbols = [...]string{
	Eq: "==",
	Ne: "!=",
	Lt: "<",
	Le: "<=",
	Gt: ">",
	Ge: ">=",
}

// Symbol returns the operator as written in source.
func (o Op) Symbol() string { return symbols[o] }

// Err returns the failure kind associated with o.
func (o Op) Err() Error { return Error{o} }

// Ordering reports whether o needs ordered operands.
func (o Op) Ordering() bool { return o >= Lt }

// ParseOp maps an operator symbol back to its tag.
func ParseOp(sym string) (Op, bool) {
	for op, s := range symbols {
		if s == sym {
			return Op(op), true
		}
	}
	return 0, false
}
