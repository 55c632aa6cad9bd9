package carousel

// Slots pads items with a clone of the last item in front and a clone of
// the first item at the end. The result always has len(items)+2 entries;
// a single item fills all three slots. Empty input yields nil.
func Slots[T any](items []T) []T {
	n := len(items)
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n+2)
	out = append(out, items[n-1])
	out = append(out, items...)
	out = append(out, items[0])
	return out
}

// ToReal maps a slot position in [0, n+1] back to the item index in
// [0, n). The head clone maps to the last item, the tail clone to the first.
func ToReal(internal, n int) int {
	switch {
	case n <= 0:
		return 0
	case internal <= 0:
		return n - 1
	case internal >= n+1:
		return 0
	default:
		return internal - 1
	}
}

// ToInternal maps an item index to its real (non-clone) slot position.
func ToInternal(real int) int {
	return real + 1
}

// State classifies a slot position.
type State int

const (
	AtCloneHead State = iota
	AtRealItem
	AtCloneTail
)

func (s State) String() string {
	switch s {
	case AtCloneHead:
		return "clone-head"
	case AtCloneTail:
		return "clone-tail"
	default:
		return "real"
	}
}

// StateOf classifies the slot position internal for a list of n items.
func StateOf(internal, n int) State {
	switch {
	case internal <= 0:
		return AtCloneHead
	case internal >= n+1:
		return AtCloneTail
	default:
		return AtRealItem
	}
}
