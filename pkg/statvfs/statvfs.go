package statvfs

// Stats holds the raw space counters for one filesystem, as reported by the
// kernel. All counters are block counts except the two sizes, which are in
// bytes. Frsize is the authoritative byte scale for every conversion; Bsize
// may differ from it on some systems and is carried only for completeness.
type Stats struct {
	Bsize  uint64 `json:"bsize"`  // Allocation block size in bytes
	Frsize uint64 `json:"frsize"` // Fragment size in bytes
	Blocks uint64 `json:"blocks"` // Total blocks, in Frsize units
	Bfree  uint64 `json:"bfree"`  // Free blocks, including reserved ones
	Bavail uint64 `json:"bavail"` // Blocks available to unprivileged users
}

// QueryFunc is the signature of Query, used where the statistics source is
// injected.
type QueryFunc func(path string) (Stats, error)
