package usage

import (
	"strconv"

	"mntdf/pkg/log"
	"mntdf/pkg/mounts"
	"mntdf/pkg/statvfs"
)

const (
	unitDefault = 512
	unitKilo    = 1024
)

// Row is one fully formatted line of output. All six fields are final
// display text; none carries further numeric meaning.
type Row struct {
	Filesystem string
	Total      string
	Used       string
	Available  string
	Capacity   string
	MountPoint string
}

// Header returns the caption row. The total caption names the display unit
// in effect.
func Header(kilo bool) Row {
	total := "512-blocks"
	if kilo {
		total = "1024-blocks"
	}
	return Row{
		Filesystem: "Filesystem",
		Total:      total,
		Used:       "Used",
		Available:  "Available",
		Capacity:   "Capacity",
		MountPoint: "Mounted on",
	}
}

// Kind tags the outcome of computing one mount entry.
type Kind int

const (
	// Reported means a display row was produced.
	Reported Kind = iota
	// SkippedEmpty means the filesystem has zero total blocks and the entry
	// came from full enumeration, so it is left out of the table.
	SkippedEmpty
	// QueryFailed means the statistics query failed; Err holds the cause.
	QueryFailed
)

// Outcome is the three-way result of Compute.
type Outcome struct {
	Kind Kind
	Row  Row   // valid only when Kind is Reported
	Err  error // set only when Kind is QueryFailed
}

// Calculator converts raw space statistics into display rows.
type Calculator struct {
	query statvfs.QueryFunc
	unit  uint64
}

// New returns a Calculator reading the real statistics source. kilo selects
// 1024-byte display blocks over the 512-byte default.
func New(kilo bool) *Calculator {
	return NewWithSource(kilo, statvfs.Query)
}

// NewWithSource returns a Calculator reading statistics through query.
func NewWithSource(kilo bool, query statvfs.QueryFunc) *Calculator {
	unit := uint64(unitDefault)
	if kilo {
		unit = unitKilo
	}
	return &Calculator{query: query, unit: unit}
}

// Compute queries the entry's filesystem and derives its display row.
// enumerated marks entries found by walking the whole mount table: a
// zero-capacity filesystem is skipped there, but still reported when the
// user asked about it explicitly.
//
// The fragment size is the byte scale for every conversion. Total and used
// round up, available rounds down, so free space is never overstated and
// consumption never understated. The capacity percentage is ceiling-divided
// against used+available, which already excludes blocks reserved for the
// superuser.
func (c *Calculator) Compute(entry mounts.Entry, enumerated bool) Outcome {
	stats, err := c.query(entry.MountPoint)
	if err != nil {
		return Outcome{Kind: QueryFailed, Err: err}
	}

	if stats.Blocks == 0 && enumerated {
		log.Debug().Str("mount_point", entry.MountPoint).Msg("Skipping zero-capacity filesystem")
		return Outcome{Kind: SkippedEmpty}
	}

	used := stats.Blocks - stats.Bfree
	usable := used + stats.Bavail
	capacity := "0%"
	if usable != 0 {
		capacity = strconv.FormatUint((used*100+usable-1)/usable, 10) + "%"
	}

	row := Row{
		Filesystem: entry.Spec,
		Total:      strconv.FormatUint((stats.Blocks*stats.Frsize+c.unit-1)/c.unit, 10),
		Used:       strconv.FormatUint((used*stats.Frsize+c.unit-1)/c.unit, 10),
		Available:  strconv.FormatUint(stats.Bavail*stats.Frsize/c.unit, 10),
		Capacity:   capacity,
		MountPoint: entry.MountPoint,
	}

	log.Debug().
		Str("filesystem", row.Filesystem).
		Str("mount_point", row.MountPoint).
		Str("total", row.Total).
		Str("used", row.Used).
		Str("available", row.Available).
		Str("capacity", row.Capacity).
		Msg("Computed usage row")

	return Outcome{Kind: Reported, Row: row}
}
