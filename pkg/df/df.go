package df

import (
	"io"

	"k8s.io/mount-utils"

	"mntdf/pkg/table"
	"mntdf/pkg/usage"
)

// Exit statuses. Every per-item failure folds into StatusFailure; the run
// still processes the remaining items.
const (
	StatusOK      = 0
	StatusFailure = 1
)

// Options are the resolved command-line options.
type Options struct {
	Kilo bool // -k: report in 1024-byte blocks instead of 512
}

// App runs one df invocation.
type App struct {
	opts    Options
	mounter mount.Interface
	calc    *usage.Calculator
	stdout  io.Writer
	stderr  io.Writer
}

// New creates an App reading the given mount table source and writing the
// table to stdout and diagnostics to stderr.
func New(opts Options, mounter mount.Interface, calc *usage.Calculator, stdout, stderr io.Writer) *App {
	return &App{
		opts:    opts,
		mounter: mounter,
		calc:    calc,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run reports the named paths, or every mounted filesystem when paths is
// empty. Failures are reported per item on stderr and never stop the run;
// the returned status is StatusOK only if every item succeeded. Rows are
// collected first and the table printed in one piece, so a failure never
// produces a partial row.
func (a *App) Run(paths []string) int {
	rows := []usage.Row{usage.Header(a.opts.Kilo)}
	status := StatusOK

	if len(paths) > 0 {
		rows, status = a.reportPaths(paths, rows)
	} else {
		rows, status = a.reportAll(rows)
	}

	if err := table.Render(a.stdout, rows); err != nil {
		return StatusFailure
	}
	return status
}
