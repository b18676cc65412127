package layout

import "testing"

func rectsOf(t *testing.T, p placement, n int) []Rect {
	t.Helper()
	out := make([]Rect, n)
	for i := range n {
		r, ok := p.rectOf(i)
		if !ok {
			t.Fatalf("child %d was not placed", i)
		}
		out[i] = r
	}
	return out
}

func TestFlow_SpaceBetweenRow(t *testing.T) {
	s := rowStyle()
	s.JustifyContent = JustifySpaceBetween
	n := box("row", s, 25, 5, leaf("a", 5, 1), leaf("b", 5, 1), leaf("c", 5, 1))

	p := placeFlow(n, 25, 5)
	got := rectsOf(t, p, 3)
	for i, wantX := range []int{0, 10, 20} {
		if got[i].X != wantX {
			t.Errorf("child %d X = %d, want %d", i, got[i].X, wantX)
		}
	}
	if len(p.notes) != 0 {
		t.Errorf("notes = %v, want none", p.notes)
	}
}

func TestFlow_ColumnStacking(t *testing.T) {
	s := columnStyle()
	s.Gap = 1
	n := box("col", s, 10, 20, leaf("a", 10, 3), leaf("b", 10, 4))

	got := rectsOf(t, placeFlow(n, 10, 20), 2)
	if got[0].Y != 0 || got[1].Y != 4 {
		t.Errorf("Y = %d, %d, want 0, 4", got[0].Y, got[1].Y)
	}
	if got[1].Height != 4 {
		t.Errorf("second Height = %d, want 4", got[1].Height)
	}
}

func TestFlow_JustifyModes(t *testing.T) {
	type tc struct {
		justify Justify
		xs      [2]int
	}

	// Two 4-wide children in 20 cells leave 12 cells over.
	tests := map[string]tc{
		"start":         {justify: JustifyStart, xs: [2]int{0, 4}},
		"end":           {justify: JustifyEnd, xs: [2]int{12, 16}},
		"center":        {justify: JustifyCenter, xs: [2]int{6, 10}},
		"space-between": {justify: JustifySpaceBetween, xs: [2]int{0, 16}},
		"space-around":  {justify: JustifySpaceAround, xs: [2]int{3, 13}},
		"space-evenly":  {justify: JustifySpaceEvenly, xs: [2]int{4, 12}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := rowStyle()
			s.JustifyContent = tt.justify
			n := box("row", s, 20, 1, leaf("a", 4, 1), leaf("b", 4, 1))

			got := rectsOf(t, placeFlow(n, 20, 1), 2)
			if got[0].X != tt.xs[0] || got[1].X != tt.xs[1] {
				t.Errorf("X = %d, %d, want %d, %d", got[0].X, got[1].X, tt.xs[0], tt.xs[1])
			}
		})
	}
}

func TestFlow_JustifySingleChild(t *testing.T) {
	s := rowStyle()
	s.JustifyContent = JustifySpaceBetween
	n := box("row", s, 20, 1, leaf("a", 4, 1))

	got := rectsOf(t, placeFlow(n, 20, 1), 1)
	if got[0].X != 0 {
		t.Errorf("X = %d, want 0", got[0].X)
	}
}

func TestFlow_SpaceAroundReportsFlooredHalfGap(t *testing.T) {
	s := rowStyle()
	s.JustifyContent = JustifySpaceAround
	// 10 cells over two items: per-item 5, leading half 2, trailing half 2.
	n := box("row", s, 18, 1, leaf("a", 4, 1), leaf("b", 4, 1))

	p := placeFlow(n, 18, 1)
	got := rectsOf(t, p, 2)
	if got[0].X != 2 || got[1].X != 11 {
		t.Errorf("X = %d, %d, want 2, 11", got[0].X, got[1].X)
	}
	if len(p.notes) != 1 || p.notes[0].Description != "space-around leaves 1 cell(s) undistributed" {
		t.Errorf("notes = %v, want one undistributed cell", p.notes)
	}
}

func TestFlow_FlooredRemainderIsReported(t *testing.T) {
	s := rowStyle()
	s.JustifyContent = JustifySpaceBetween
	n := box("row", s, 21, 1, leaf("a", 4, 1), leaf("b", 4, 1), leaf("c", 4, 1))

	p := placeFlow(n, 21, 1)
	got := rectsOf(t, p, 3)
	for i, wantX := range []int{0, 8, 16} {
		if got[i].X != wantX {
			t.Errorf("child %d X = %d, want %d", i, got[i].X, wantX)
		}
	}
	if len(p.notes) != 1 || p.notes[0].Kind != WarningConstraintViolation {
		t.Errorf("notes = %v, want one constraint violation", p.notes)
	}
}

func TestFlow_AlignModes(t *testing.T) {
	type tc struct {
		align Align
		ys    [2]int
		notes int
	}

	// The line is as tall as its tallest item (3), not the 10-high row.
	tests := map[string]tc{
		"start":   {align: AlignStart, ys: [2]int{0, 0}},
		"center":  {align: AlignCenter, ys: [2]int{1, 0}},
		"end":     {align: AlignEnd, ys: [2]int{2, 0}},
		"stretch": {align: AlignStretch, ys: [2]int{0, 0}, notes: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := rowStyle()
			s.AlignItems = tt.align
			n := box("row", s, 20, 10, leaf("a", 5, 1), leaf("b", 5, 3))

			p := placeFlow(n, 20, 10)
			got := rectsOf(t, p, 2)
			if got[0].Y != tt.ys[0] || got[1].Y != tt.ys[1] {
				t.Errorf("Y = %d, %d, want %d, %d", got[0].Y, got[1].Y, tt.ys[0], tt.ys[1])
			}
			if got[0].Height != 1 || got[1].Height != 3 {
				t.Errorf("Height = %d, %d, want 1, 3", got[0].Height, got[1].Height)
			}
			if len(p.notes) != tt.notes {
				t.Errorf("len(notes) = %d, want %d", len(p.notes), tt.notes)
			}
		})
	}
}

func TestFlow_SingleLineFillCrossTakesInnerSize(t *testing.T) {
	s := rowStyle()
	s.AlignItems = AlignEnd
	fill := NewNode("fill", KindBox)
	fill.Width = Fixed(4)
	fill.Height = Fill()
	n := box("row", s, 20, 6, leaf("a", 5, 2), fill)

	got := rectsOf(t, placeFlow(n, 20, 6), 2)
	if got[1] != NewRect(5, 0, 4, 6) {
		t.Errorf("fill = %+v, want full inner height", got[1])
	}
	if got[0].Y != 4 {
		t.Errorf("a.Y = %d, want 4", got[0].Y)
	}
}

func TestFlow_FillSharing(t *testing.T) {
	s := rowStyle()
	s.Gap = 1
	a := leaf("a", 4, 1)
	b := NewNode("b", KindBox)
	b.Width = Fill()
	b.Height = Fill()
	c := NewNode("c", KindBox)
	c.Width = Fill()
	c.Height = Fixed(1)
	n := box("row", s, 20, 3, a, b, c)

	// 20 - 4 - 2 gaps = 14, split over two fills.
	p := placeFlow(n, 20, 3)
	got := rectsOf(t, p, 3)
	want := []Rect{
		NewRect(0, 0, 4, 1),
		NewRect(5, 0, 7, 3),
		NewRect(13, 0, 7, 1),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(p.notes) != 0 {
		t.Errorf("notes = %v, want none", p.notes)
	}
}

func TestFlow_FillRemainderAndOverflow(t *testing.T) {
	t.Run("remainder floored", func(t *testing.T) {
		fills := make([]*Node, 3)
		for i := range fills {
			fills[i] = NewNode("f", KindBox)
			fills[i].Width = Fill()
		}
		n := box("row", rowStyle(), 10, 1, fills...)

		p := placeFlow(n, 10, 1)
		got := rectsOf(t, p, 3)
		for i, wantX := range []int{0, 3, 6} {
			if got[i].X != wantX || got[i].Width != 3 {
				t.Errorf("child %d = %+v, want X %d width 3", i, got[i], wantX)
			}
		}
		if len(p.notes) != 1 {
			t.Errorf("len(notes) = %d, want 1", len(p.notes))
		}
	})

	t.Run("negative remainder", func(t *testing.T) {
		f := NewNode("f", KindBox)
		f.Width = Fill()
		n := box("row", rowStyle(), 10, 1, leaf("a", 12, 1), f)

		got := rectsOf(t, placeFlow(n, 10, 1), 2)
		if got[0].Width != 12 {
			t.Errorf("fixed Width = %d, want 12", got[0].Width)
		}
		if got[1].Width != 0 || got[1].X != 12 {
			t.Errorf("fill = %+v, want X 12 width 0", got[1])
		}
	})
}

func TestFlow_Wrap(t *testing.T) {
	s := rowStyle()
	s.Wrap = true
	s.Gap = 1
	n := box("row", s, 10, 10, leaf("a", 4, 2), leaf("b", 4, 2), leaf("c", 4, 2))

	got := rectsOf(t, placeFlow(n, 10, 10), 3)
	want := []Rect{
		NewRect(0, 0, 4, 2),
		NewRect(5, 0, 4, 2),
		NewRect(0, 3, 4, 2),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFlow_WrapAlignsWithinLine(t *testing.T) {
	s := rowStyle()
	s.Wrap = true
	s.AlignItems = AlignEnd
	n := box("row", s, 6, 10, leaf("a", 3, 1), leaf("b", 3, 3), leaf("c", 6, 2))

	got := rectsOf(t, placeFlow(n, 6, 10), 3)
	want := []Rect{
		NewRect(0, 2, 3, 1),
		NewRect(3, 0, 3, 3),
		NewRect(0, 3, 6, 2),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFlow_WrapOversizedItemGetsOwnLine(t *testing.T) {
	s := columnStyle()
	s.Wrap = true
	n := box("col", s, 10, 4, leaf("a", 2, 6), leaf("b", 3, 1))

	got := rectsOf(t, placeFlow(n, 10, 4), 2)
	if got[0] != NewRect(0, 0, 2, 6) {
		t.Errorf("first = %+v", got[0])
	}
	if got[1] != NewRect(2, 0, 3, 1) {
		t.Errorf("second = %+v, want next column", got[1])
	}
}

func TestFlow_AutoChildrenUseIntrinsicSize(t *testing.T) {
	ok := NewNode("ok", KindButton)
	ok.Content.Label = "OK"
	ok.Style.Border = true
	n := box("row", rowStyle(), 40, 5, ok)

	got := rectsOf(t, placeFlow(n, 40, 5), 1)
	if got[0].Width != 6 || got[0].Height != 3 {
		t.Errorf("button = %dx%d, want 6x3", got[0].Width, got[0].Height)
	}
}

func TestFlow_NilChildrenSkipped(t *testing.T) {
	n := box("row", rowStyle(), 10, 1, leaf("a", 2, 1), nil, leaf("b", 2, 1))

	p := placeFlow(n, 10, 1)
	if _, ok := p.rectOf(1); ok {
		t.Error("nil child should not be placed")
	}
	if r, _ := p.rectOf(2); r.X != 2 {
		t.Errorf("third child X = %d, want 2", r.X)
	}
}
