package dbg

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Dump writes a labelled, multi-line rendering of v with every field spelled
// out.
func Dump(w io.Writer, label string, v interface{}) {
	fmt.Fprintf(w, "%s: %# v\n", label, pretty.Formatter(v))
}

// Diff lists the fields in which a and b differ, one per line. It returns
// nothing when they are equal.
func Diff(a, b interface{}) []string {
	return pretty.Diff(a, b)
}
