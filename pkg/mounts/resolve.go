package mounts

import (
	"math"
	"strings"

	"mntdf/pkg/log"
)

// Resolve determines which mount entry owns path, scanning entries in table
// order. Two rules apply:
//
//   - Exact source match: an entry whose spec is an absolute path equal to
//     the target selects that entry outright, so asking about a mounted
//     device node reports the filesystem on it.
//   - Longest prefix: otherwise the entry whose mount point is the longest
//     ancestor of the target wins; on equal lengths the first one is kept.
//
// Returns nil when no entry matches. That is a normal outcome, not an
// error; callers report it as an unresolvable path.
func Resolve(path string, entries []Entry) *Entry {
	var best *Entry
	bestLen := 0
	for i := range entries {
		entry := &entries[i]
		if strings.HasPrefix(entry.Spec, "/") && entry.Spec == path {
			// Nothing can beat this match. The scan still runs to the end
			// so a duplicate spec later in the table behaves the same as
			// in a full pass.
			best = entry
			bestLen = math.MaxInt
		} else if hasPathPrefix(path, entry.MountPoint) {
			if n := len(entry.MountPoint); n > bestLen {
				best = entry
				bestLen = n
			}
		}
	}

	if best != nil {
		log.Debug().Str("path", path).Str("spec", best.Spec).Str("mount_point", best.MountPoint).Msg("Resolved mount entry")
	} else {
		log.Debug().Str("path", path).Msg("No mount entry matches")
	}
	return best
}

// hasPathPrefix reports whether path equals prefix or lives under it. The
// comparison respects directory boundaries: "/home2" is not under "/home".
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) {
		return true
	}
	// "/" and any mount point recorded with a trailing slash already end at
	// a boundary.
	if prefix[len(prefix)-1] == '/' {
		return true
	}
	return path[len(prefix)] == '/'
}
