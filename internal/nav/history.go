package nav

// History is the back-stack of previously displayed view identities.
type History struct {
	entries []ViewKind
}

func (h *History) Push(kind ViewKind) {
	h.entries = append(h.entries, kind)
}

// Pop removes and returns the most recent entry. ok is false when the history is empty.
func (h *History) Pop() (ViewKind, bool) {
	if len(h.entries) == 0 {
		return RootView, false
	}

	kind := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]

	return kind, true
}

func (h *History) Clear() {
	h.entries = nil
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Empty() bool {
	return len(h.entries) == 0
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []ViewKind {
	entries := make([]ViewKind, len(h.entries))
	copy(entries, h.entries)

	return entries
}
