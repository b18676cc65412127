package layout

// ComputedLayout holds the absolute boxes of one node after layout.
type ComputedLayout struct {
	// Rect is the border box assigned by the parent's placement algorithm.
	Rect Rect

	// PaddingBox is Rect minus the border.
	PaddingBox Rect

	// ContentBox is PaddingBox minus padding: the area children are placed in.
	ContentBox Rect

	// MarginBox is Rect expanded by the node's margin.
	MarginBox Rect
}

// computeBoxes derives the nested boxes of n from its rectangle.
func computeBoxes(n *Node, rect Rect) ComputedLayout {
	padding := rect.Inset(EdgeAll(n.Style.frame()))
	return ComputedLayout{
		Rect:       rect,
		PaddingBox: padding,
		ContentBox: padding.Inset(n.Style.Padding),
		MarginBox:  rect.Outset(n.Style.Margin),
	}
}
