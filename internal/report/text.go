package report

import (
	"fmt"
	"strings"

	"flexShop/internal/flexshop"
)

// Text lists every factory's machines with their committed slot tuples,
// one (job,start,end) triple per slot.
func Text(s flexshop.Schedule) string {
	var b strings.Builder
	for f, fs := range s {
		fmt.Fprintf(&b, "factory %d\n", f)
		for m, ms := range fs {
			fmt.Fprintf(&b, "  machine %d:", m)
			for _, slot := range ms {
				fmt.Fprintf(&b, " (%d,%d,%d)", slot.Job, slot.Start, slot.End)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
