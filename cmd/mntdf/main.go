package main

import (
	"flag"
	"os"

	"mntdf/pkg/df"
	"mntdf/pkg/log"
	"mntdf/pkg/mounts"
	"mntdf/pkg/usage"
)

func main() {
	// Initialize logger first
	_ = log.Logger

	flags := flag.NewFlagSet("mntdf", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	kilo := flags.Bool("k", false, "Use 1024-byte display blocks instead of 512")
	flags.Bool("P", false, "POSIX output format (accepted for compatibility, no effect)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		// The flag set has already written its diagnostic to stderr.
		os.Exit(df.StatusFailure)
	}

	opts := df.Options{Kilo: *kilo}
	log.Debug().Bool("kilo", opts.Kilo).Strs("paths", flags.Args()).Msg("Starting run")

	app := df.New(opts, mounts.New(), usage.New(opts.Kilo), os.Stdout, os.Stderr)
	os.Exit(app.Run(flags.Args()))
}
