// Package pretty renders operands for assertion reports.
//
// Scalars print on one line. Composite values are dumped over several
// lines so that nested fields stay readable in a failure report.
package pretty

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Debugger is implemented by types that render themselves.
type Debugger interface {
	DebugString() string
}

var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func Sprint(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case Debugger:
		return v.DebugString()
	case fmt.GoStringer:
		return v.GoString()
	case string:
		return strconv.Quote(v)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map,
		reflect.Pointer, reflect.Interface:
		return strings.TrimSuffix(dumper.Sdump(v), "\n")
	case reflect.String:
		return strconv.Quote(reflect.ValueOf(v).String())
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Value defers rendering until the report is written.
type Value struct{ V any }

func (v Value) String() string { return Sprint(v.V) }
