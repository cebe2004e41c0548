package df

import (
	"fmt"

	"mntdf/pkg/mounts"
	"mntdf/pkg/usage"
)

// reportAll handles enumeration mode: every entry of the mount table is
// computed in enumerated mode, hiding zero-capacity pseudo-filesystems. A
// failed query is reported and skipped; the remaining entries still print.
func (a *App) reportAll(rows []usage.Row) ([]usage.Row, int) {
	entries, err := mounts.List(a.mounter)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return rows, StatusFailure
	}

	status := StatusOK
	for _, entry := range entries {
		outcome := a.calc.Compute(entry, true)
		switch outcome.Kind {
		case usage.Reported:
			rows = append(rows, outcome.Row)
		case usage.QueryFailed:
			a.diag(entry.MountPoint, outcome.Err)
			status = StatusFailure
		case usage.SkippedEmpty:
		}
	}
	return rows, status
}
