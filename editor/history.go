package editor

// History is a linear undo stack of snapshots.
//
// Past holds older snapshots with the most recent last. Future holds undone
// snapshots with the next one to redo first. Entries in Past and Future are
// never mutated; only Present is edited in place.
type History struct {
	Past    []HistoryItem
	Present HistoryItem
	Future  []HistoryItem

	// Limit caps len(Past). Zero means unbounded.
	Limit int
}

// Push records Present as an undo step. It discards Future, pushes the
// current snapshot onto Past and continues editing on a deep copy of the
// animation, so later in-place edits cannot reach the pushed snapshot.
//
// Call Push once before the first mutation of a gesture; the whole gesture
// then undoes as one step.
func (h *History) Push() {
	h.Future = nil
	h.Past = append(h.Past, h.Present)
	if h.Limit > 0 && len(h.Past) > h.Limit {
		drop := len(h.Past) - h.Limit
		clear(h.Past[:drop])
		h.Past = h.Past[drop:]
	}
	h.Present.Animation = h.Present.Animation.Clone()
}

// Undo steps back one snapshot. It is a no-op when Past is empty.
func (h *History) Undo() bool {
	if len(h.Past) == 0 {
		return false
	}
	last := len(h.Past) - 1
	prev := h.Past[last]
	h.Past[last] = HistoryItem{}
	h.Past = h.Past[:last]

	h.Future = append([]HistoryItem{h.Present}, h.Future...)
	h.Present = prev
	return true
}

// Redo re-applies the most recently undone snapshot. It is a no-op when
// Future is empty.
func (h *History) Redo() bool {
	if len(h.Future) == 0 {
		return false
	}
	next := h.Future[0]
	h.Future = h.Future[1:]

	h.Past = append(h.Past, h.Present)
	h.Present = next
	return true
}

// CanUndo reports whether Undo would change anything.
func (h *History) CanUndo() bool {
	return len(h.Past) > 0
}

// CanRedo reports whether Redo would change anything.
func (h *History) CanRedo() bool {
	return len(h.Future) > 0
}
