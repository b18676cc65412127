package layout

// placeGrid partitions the content area into Columns × Rows uniform cells
// and fills them row-major. Children past the last declared row get no
// slot at all and are reported on the container.
func placeGrid(n *Node, innerW, innerH int) placement {
	p := newPlacement(len(n.Children))
	style := n.Style

	count := 0
	for _, child := range n.Children {
		if child != nil {
			count++
		}
	}
	if count == 0 {
		return p
	}

	cols := max(1, style.Columns)
	rows := style.Rows
	if rows <= 0 {
		rows = (count + cols - 1) / cols
	}

	cellW := floorDiv(innerW-(cols-1)*style.ColumnGap, cols)
	cellH := floorDiv(innerH-(rows-1)*style.RowGap, rows)

	k := 0
	dropped := 0
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		col, row := k%cols, k/cols
		k++
		if row >= rows {
			dropped++
			continue
		}
		p.put(i, Rect{
			X:      col * (cellW + style.ColumnGap),
			Y:      row * (cellH + style.RowGap),
			Width:  cellExtent(child.Width, cellW, DefaultWidth),
			Height: cellExtent(child.Height, cellH, DefaultHeight),
		})
	}

	if dropped > 0 {
		p.note(constraintViolation("%d child(ren) beyond %d×%d grid cells were not placed", dropped, cols, rows))
	}
	return p
}

// cellExtent sizes a grid child on one axis. Fixed requests are kept as
// declared and anchored at the cell's top-left; fill takes the whole cell;
// auto takes the cell up to the placeholder size.
func cellExtent(req Size, cell, placeholder int) int {
	switch {
	case req.IsFixed():
		return req.Amount
	case req.IsFill():
		return cell
	default:
		return min(cell, placeholder)
	}
}
