package reconciler

// Change is the verdict of Detect.
type Change int

const (
	// Unchanged means the external content was already applied.
	Unchanged Change = iota
	// Changed means the external content must be applied.
	Changed
)

func (c Change) String() string {
	if c == Changed {
		return "changed"
	}

	return "unchanged"
}

// Detect compares the cached fingerprint of an application with the current
// one. A missing cache entry is always a change.
func Detect(cached string, known bool, current string) Change {
	if known && cached == current {
		return Unchanged
	}

	return Changed
}
