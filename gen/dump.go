package gen

import (
	"fmt"
	"strings"

	"github.com/rami3l/goequator/decompose"
	e "github.com/rami3l/goequator/errors"
)

// Dump renders a source tree one node per line, children indented.
func Dump(src decompose.Source) string {
	var sb strings.Builder
	dump(&sb, src, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func dump(sb *strings.Builder, src decompose.Source, depth int) {
	indent := strings.Repeat("    ", depth)
	switch s := src.(type) {
	case decompose.CmpSource:
		fmt.Fprintf(sb, "%scmp %s, %s\n", indent, s.Lhs, s.Rhs)
	case decompose.CustomSource:
		fmt.Fprintf(sb, "%scustom %s %s, %s\n", indent, s.Cmp, s.Lhs, s.Rhs)
	case decompose.AndSource:
		fmt.Fprintf(sb, "%sand\n", indent)
		dump(sb, s.Lhs, depth+1)
		dump(sb, s.Rhs, depth+1)
	case decompose.OrSource:
		fmt.Fprintf(sb, "%sor\n", indent)
		dump(sb, s.Lhs, depth+1)
		dump(sb, s.Rhs, depth+1)
	default:
		panic(e.Unreachable)
	}
}
