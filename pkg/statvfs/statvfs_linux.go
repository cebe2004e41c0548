package statvfs

import (
	"golang.org/x/sys/unix"

	"mntdf/pkg/log"
)

// statfs is held in a variable so tests can substitute the syscall.
var statfs = unix.Statfs

// Query returns the space statistics of the filesystem containing path.
// The error, when non-nil, is the bare system error; callers add the path
// context when reporting it.
func Query(path string) (Stats, error) {
	var buf unix.Statfs_t
	if err := statfs(path, &buf); err != nil {
		log.Debug().Str("path", path).Err(err).Msg("statfs failed")
		return Stats{}, err
	}

	// Note: Bsize and Frsize are signed on some systems, so we handle them safely
	bsize := buf.Bsize
	if bsize < 0 {
		bsize = 0
	}
	frsize := buf.Frsize
	if frsize < 0 {
		frsize = 0
	}

	stats := Stats{
		Bsize:  uint64(bsize),  //nolint:gosec // Safe conversion after checking
		Frsize: uint64(frsize), //nolint:gosec // Safe conversion after checking
		Blocks: buf.Blocks,
		Bfree:  buf.Bfree,
		Bavail: buf.Bavail,
	}

	log.Debug().
		Str("path", path).
		Uint64("frsize", stats.Frsize).
		Uint64("blocks", stats.Blocks).
		Uint64("bfree", stats.Bfree).
		Uint64("bavail", stats.Bavail).
		Msg("Filesystem stats")

	return stats, nil
}
