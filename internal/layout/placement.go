package layout

// placement is the output of a placement algorithm: one slot per child,
// in child order, relative to the container's content origin.
type placement struct {
	slots []slot
	notes []Warning // Recorded against the container
}

type slot struct {
	rect   Rect
	placed bool
}

func newPlacement(children int) placement {
	return placement{slots: make([]slot, children)}
}

func (p *placement) put(i int, r Rect) {
	p.slots[i] = slot{rect: r, placed: true}
}

func (p *placement) note(w Warning) {
	p.notes = append(p.notes, w)
}

// rectOf returns the relative rectangle assigned to child i.
func (p placement) rectOf(i int) (Rect, bool) {
	if i < 0 || i >= len(p.slots) || !p.slots[i].placed {
		return Rect{}, false
	}
	return p.slots[i].rect, true
}

// place dispatches to the algorithm selected by the container's mode.
func place(n *Node, innerW, innerH int) placement {
	switch n.Style.Mode {
	case ModeGrid:
		return placeGrid(n, innerW, innerH)
	case ModeAbsolute:
		return placeAbsolute(n, innerW, innerH)
	case ModeNone:
		return placeOverlay(n, innerW, innerH)
	default:
		return placeFlow(n, innerW, innerH)
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
