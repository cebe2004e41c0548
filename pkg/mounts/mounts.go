package mounts

import (
	"k8s.io/mount-utils"

	"mntdf/pkg/log"
)

// Entry is one line of the live mount table.
type Entry struct {
	Spec       string `json:"spec"`        // Mounted device or source identifier
	MountPoint string `json:"mount_point"` // Directory the filesystem is mounted on
}

// New returns the platform mounter that reads the live mount table.
func New() mount.Interface {
	return mount.New("")
}

// List reads the current mount table top to bottom, preserving its order.
// Later entries reflect more recent mounts. The read is all-or-nothing: a
// parse failure discards any partial result.
func List(m mount.Interface) ([]Entry, error) {
	mps, err := m.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(mps))
	for _, mp := range mps {
		entries = append(entries, Entry{Spec: mp.Device, MountPoint: mp.Path})
	}

	log.Debug().Int("count", len(entries)).Msg("Mount table read")
	return entries, nil
}
