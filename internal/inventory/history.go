package inventory

import "github.com/rogerio-castellano/inventory-cli/internal/models"

// History is a last-in-first-out stack of product snapshots.
type History struct {
	entries []models.Snapshot
}

func (h *History) Push(s models.Snapshot) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot. ok is false when the stack is empty.
func (h *History) Pop() (s models.Snapshot, ok bool) {
	if len(h.entries) == 0 {
		return models.Snapshot{}, false
	}
	last := len(h.entries) - 1
	s = h.entries[last]
	h.entries = h.entries[:last]
	return s, true
}

func (h *History) Len() int {
	return len(h.entries)
}
