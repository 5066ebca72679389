package gen

import (
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// report renders members sharing strings in a tabular format like below:
//
//	ok:   First  -> "a"
//	FAIL: Second -> "a" // shadowed by First
//	ok:   Third  -> "b"
//	FAIL: Fourth -> "b" // shadowed by Third
//
// Members with unique strings are omitted.
type report struct {
	members []Member
}

// newReport creates a report for the members.
func newReport(members []Member) *report {
	return &report{members: members}
}

// rows returns indices of the members to render in declaration order.
func (r report) rows() []int {
	shared := make(map[int]bool)
	for i, m := range r.members {
		if m.Shadow >= 0 {
			shared[i] = true
			shared[m.Shadow] = true
		}
	}

	var rows []int
	for i := range r.members {
		if shared[i] {
			rows = append(rows, i)
		}
	}
	return rows
}

// String returns the string representation of the report.
func (r report) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 1, 1, 1, ' ', 0)

	for n, i := range r.rows() {
		m := r.members[i]

		if n != 0 {
			io.WriteString(tw, "\n")
		}

		if m.Shadow < 0 {
			io.WriteString(tw, "ok:\t")
		} else {
			io.WriteString(tw, "FAIL:\t")
		}

		io.WriteString(tw, m.Name)
		io.WriteString(tw, "\t->\t")
		io.WriteString(tw, strconv.Quote(m.Value))

		if m.Shadow >= 0 {
			io.WriteString(tw, "\t// shadowed by ")
			io.WriteString(tw, r.members[m.Shadow].Name)
		}
	}

	tw.Flush()
	return b.String()
}
