package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"mntdf/pkg/usage"
)

// widths holds the maximum character count per column. The mount point is
// the last column and is printed without padding, so it needs no width.
type widths struct {
	filesystem int
	total      int
	used       int
	available  int
	capacity   int
}

func maxWidths(rows []usage.Row) widths {
	var w widths
	for _, row := range rows {
		w.filesystem = max(w.filesystem, utf8.RuneCountInString(row.Filesystem))
		w.total = max(w.total, utf8.RuneCountInString(row.Total))
		w.used = max(w.used, utf8.RuneCountInString(row.Used))
		w.available = max(w.available, utf8.RuneCountInString(row.Available))
		w.capacity = max(w.capacity, utf8.RuneCountInString(row.Capacity))
	}
	return w
}

// padLeft right-aligns s in a field of width characters.
func padLeft(s string, width int) string {
	return strings.Repeat(" ", width-utf8.RuneCountInString(s)) + s
}

// padRight left-aligns s in a field of width characters.
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

// Render writes rows as a fixed-width table. The first row is the header;
// the filesystem column is left-aligned, the numeric columns right-aligned,
// and the trailing mount point column is emitted as is. Adjacent columns
// are separated by a single space. When only the header is present nothing
// is written at all.
func Render(w io.Writer, rows []usage.Row) error {
	if len(rows) < 2 {
		return nil
	}

	widths := maxWidths(rows)
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%s %s %s %s %s %s\n",
			padRight(row.Filesystem, widths.filesystem),
			padLeft(row.Total, widths.total),
			padLeft(row.Used, widths.used),
			padLeft(row.Available, widths.available),
			padLeft(row.Capacity, widths.capacity),
			row.MountPoint,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
