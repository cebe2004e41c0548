package df

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"mntdf/pkg/mounts"
	"mntdf/pkg/usage"
)

// reportPaths handles targeted mode: each named path is stat'ed, resolved
// to its owning mount entry, and computed in non-enumerated mode, so a
// zero-capacity filesystem the user asked about is still shown. The mount
// table is re-read for every path; nothing is cached across lookups.
func (a *App) reportPaths(paths []string, rows []usage.Row) ([]usage.Row, int) {
	status := StatusOK
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			a.diag(path, err)
			status = StatusFailure
			continue
		}

		entries, err := mounts.List(a.mounter)
		if err != nil {
			fmt.Fprintln(a.stderr, err)
			status = StatusFailure
			continue
		}

		entry := mounts.Resolve(path, entries)
		if entry == nil {
			a.diag(path, mounts.ErrNotFound)
			status = StatusFailure
			continue
		}

		outcome := a.calc.Compute(*entry, false)
		switch outcome.Kind {
		case usage.Reported:
			rows = append(rows, outcome.Row)
		case usage.QueryFailed:
			a.diag(entry.MountPoint, outcome.Err)
			status = StatusFailure
		case usage.SkippedEmpty:
			// not produced outside enumeration
		}
	}
	return rows, status
}

// diag writes one "<context>: <error message>" line to stderr. A PathError
// is unwrapped first so the context is not printed twice.
func (a *App) diag(context string, err error) {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	fmt.Fprintf(a.stderr, "%s: %v\n", context, err)
}
