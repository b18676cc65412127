package layout

// flowItem holds intermediate calculation state for a child.
// This is allocated per placement call, not stored on nodes.
type flowItem struct {
	index     int
	mainSize  int
	crossSize int
	fillMain  bool
	fillCross bool
	mainPos   int
	crossPos  int
}

// placeFlow arranges the children of n along its main axis, wrapping into
// lines when enabled. Sizes that do not fit are kept; the overflow is
// reported by diagnostics rather than corrected here.
func placeFlow(n *Node, innerW, innerH int) placement {
	p := newPlacement(len(n.Children))
	style := n.Style
	isRow := n.flowDirection() == Row

	// Determine main/cross axis dimensions
	mainAvail, crossAvail := innerW, innerH
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	// Phase 1: resolve each child's own main and cross size
	m := newMeasurer()
	items := make([]flowItem, 0, len(n.Children))
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		item := flowItem{index: i}
		item.mainSize, item.fillMain = resolveFlowSize(m, child, isRow)
		item.crossSize, item.fillCross = resolveFlowSize(m, child, !isRow)
		items = append(items, item)
	}
	if len(items) == 0 {
		return p
	}

	// Phase 2: break into lines
	lines := breakLines(items, mainAvail, style.Gap, style.Wrap)

	stretchIgnored := false
	crossOffset := 0
	for _, line := range lines {
		// Phase 3: share the remaining main space among fill items
		shareFill(&p, line, mainAvail, style.Gap)

		// Phase 4: justify along the main axis
		used := style.Gap * (len(line) - 1)
		for _, item := range line {
			used += item.mainSize
		}
		offset, spacing, remainder := justify(style.JustifyContent, mainAvail-used, len(line))
		if remainder > 0 {
			p.note(constraintViolation("%s leaves %d cell(s) undistributed", style.JustifyContent, remainder))
		}
		for i := range line {
			line[i].mainPos = offset
			offset += line[i].mainSize + style.Gap + spacing
		}

		// Phase 5: cross-axis sizing and alignment. A single unwrapped line
		// owns the whole cross axis, so its fill items resolve against it.
		if !style.Wrap {
			for i := range line {
				if line[i].fillCross {
					line[i].crossSize, line[i].fillCross = crossAvail, false
				}
			}
		}
		lineCross := lineCrossSize(line, crossAvail)
		for i := range line {
			if line[i].fillCross {
				line[i].crossSize = lineCross
			}
			line[i].crossPos = crossOffset + alignOffset(style.AlignItems, lineCross, line[i].crossSize)
			if style.AlignItems == AlignStretch && line[i].crossSize < lineCross {
				stretchIgnored = true
			}
		}

		// Phase 6: convert to rects
		for _, item := range line {
			if isRow {
				p.put(item.index, Rect{X: item.mainPos, Y: item.crossPos, Width: item.mainSize, Height: item.crossSize})
			} else {
				p.put(item.index, Rect{X: item.crossPos, Y: item.mainPos, Width: item.crossSize, Height: item.mainSize})
			}
		}

		crossOffset += lineCross + style.Gap
	}

	if stretchIgnored {
		p.note(constraintViolation("align stretch is not applied; items keep their own cross size"))
	}
	return p
}

// resolveFlowSize resolves a child's request on one axis. Fill requests
// are left unresolved and reported as such.
func resolveFlowSize(m *measurer, child *Node, horizontal bool) (size int, fill bool) {
	req := child.Height
	if horizontal {
		req = child.Width
	}
	switch {
	case req.IsFixed():
		return req.Amount, false
	case req.IsFill():
		return 0, true
	case horizontal:
		return m.width(child), false
	default:
		return m.height(child), false
	}
}

// breakLines packs items greedily into lines whose main sizes plus gaps fit
// mainAvail. Without wrap every item shares one line. A line always holds
// at least one item. Unresolved fill items count as zero while packing.
func breakLines(items []flowItem, mainAvail, gap int, wrap bool) [][]flowItem {
	if !wrap {
		return [][]flowItem{items}
	}

	var lines [][]flowItem
	start, used := 0, 0
	for i, item := range items {
		if i > start && used+gap+item.mainSize > mainAvail {
			lines = append(lines, items[start:i])
			start, used = i, 0
		}
		if i > start {
			used += gap
		}
		used += item.mainSize
	}
	return append(lines, items[start:])
}

// shareFill splits the main space left on a line evenly among its fill
// items. The share is floored and never negative; leftover cells are
// reported on the placement.
func shareFill(p *placement, line []flowItem, mainAvail, gap int) {
	fills := 0
	remaining := mainAvail - gap*(len(line)-1)
	for _, item := range line {
		if item.fillMain {
			fills++
		} else {
			remaining -= item.mainSize
		}
	}
	if fills == 0 {
		return
	}

	share := 0
	if remaining > 0 {
		share = remaining / fills
		if rem := remaining % fills; rem != 0 {
			p.note(constraintViolation("fill sharing leaves %d cell(s) undistributed", rem))
		}
	}
	for i := range line {
		if line[i].fillMain {
			line[i].mainSize = share
		}
	}
}

// justify returns the leading offset and the extra spacing between items
// for the given leftover main space, plus the cells lost to flooring.
func justify(mode Justify, leftover, count int) (offset, spacing, remainder int) {
	if leftover <= 0 || count == 0 {
		return 0, 0, 0
	}

	switch mode {
	case JustifyEnd:
		return leftover, 0, 0
	case JustifyCenter:
		return leftover / 2, 0, 0
	case JustifySpaceBetween:
		if count <= 1 {
			return 0, 0, 0
		}
		return 0, leftover / (count - 1), leftover % (count - 1)
	case JustifySpaceAround:
		per := leftover / count
		// half gaps at both ends; flooring the leading half loses a cell
		// when per is odd
		lead := per / 2
		return lead, per, leftover - (lead + per*(count-1) + per/2)
	case JustifySpaceEvenly:
		per := leftover / (count + 1)
		return per, per, leftover % (count + 1)
	default: // JustifyStart
		return 0, 0, 0
	}
}

// lineCrossSize is the cross extent items align within: the largest
// resolved item cross size, or crossAvail when every item fills the cross
// axis.
func lineCrossSize(line []flowItem, crossAvail int) int {
	size, resolved := 0, false
	for _, item := range line {
		if !item.fillCross {
			size = max(size, item.crossSize)
			resolved = true
		}
	}
	if !resolved {
		return crossAvail
	}
	return size
}

// alignOffset returns the offset for positioning an item on the cross axis.
func alignOffset(align Align, lineCross, itemCross int) int {
	switch align {
	case AlignEnd:
		return lineCross - itemCross
	case AlignCenter:
		return (lineCross - itemCross) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
