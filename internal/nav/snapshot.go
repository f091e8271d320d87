package nav

import (
	"golang.org/x/exp/slices"
)

// Snapshot is the persisted key/value state bag shared between the collaborators of the
// application shell. Each collaborator owns its own keys.
type Snapshot map[string]string

// Keys returns the snapshot keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Merge copies every entry of other into s, overwriting existing keys.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	if s == nil {
		s = Snapshot{}
	}

	for key, value := range other {
		s[key] = value
	}

	return s
}
