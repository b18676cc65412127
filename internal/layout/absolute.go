package layout

// placeAbsolute positions each child at its declared (X, Y) offset from the
// content origin.
func placeAbsolute(n *Node, innerW, innerH int) placement {
	p := newPlacement(len(n.Children))
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		x, y := child.Style.X, child.Style.Y
		p.put(i, Rect{
			X:      x,
			Y:      y,
			Width:  offsetExtent(child.Width, innerW-x, DefaultWidth),
			Height: offsetExtent(child.Height, innerH-y, DefaultHeight),
		})
	}
	return p
}

// offsetExtent sizes an absolutely placed child on one axis: fill runs from
// the offset to the far content edge (negative when the offset is past it).
func offsetExtent(req Size, remaining, placeholder int) int {
	switch {
	case req.IsFixed():
		return req.Amount
	case req.IsFill():
		return remaining
	default:
		return placeholder
	}
}

// placeOverlay stacks every child at the content origin. Fill takes the
// whole content area and auto takes the child's intrinsic size.
func placeOverlay(n *Node, innerW, innerH int) placement {
	p := newPlacement(len(n.Children))
	m := newMeasurer()
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		w, fillW := resolveFlowSize(m, child, true)
		if fillW {
			w = innerW
		}
		h, fillH := resolveFlowSize(m, child, false)
		if fillH {
			h = innerH
		}
		p.put(i, Rect{Width: w, Height: h})
	}
	return p
}
