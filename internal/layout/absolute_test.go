package layout

import "testing"

func absoluteStyle() Style {
	s := DefaultStyle()
	s.Mode = ModeAbsolute
	return s
}

func at(n *Node, x, y int) *Node {
	n.Style.X = x
	n.Style.Y = y
	return n
}

func TestAbsolute_Placement(t *testing.T) {
	type tc struct {
		child *Node
		want  Rect
	}

	tests := map[string]tc{
		"fixed": {
			child: at(leaf("a", 5, 2), 3, 4),
			want:  NewRect(3, 4, 5, 2),
		},
		"fill width": {
			child: func() *Node {
				n := at(NewNode("a", KindBox), 2, 0)
				n.Width = Fill()
				n.Height = Fixed(1)
				return n
			}(),
			want: NewRect(2, 0, 18, 1),
		},
		"fill height": {
			child: func() *Node {
				n := at(NewNode("a", KindBox), 0, 4)
				n.Width = Fixed(1)
				n.Height = Fill()
				return n
			}(),
			want: NewRect(0, 4, 1, 6),
		},
		"unspecified uses placeholder": {
			child: at(NewNode("a", KindButton), 1, 1),
			want:  NewRect(1, 1, DefaultWidth, DefaultHeight),
		},
		"fill past far edge": {
			child: func() *Node {
				n := at(NewNode("a", KindBox), 25, 0)
				n.Width = Fill()
				n.Height = Fixed(1)
				return n
			}(),
			want: NewRect(25, 0, -5, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := box("abs", absoluteStyle(), 20, 10, tt.child)
			got, ok := placeAbsolute(n, 20, 10).rectOf(0)
			if !ok || got != tt.want {
				t.Errorf("rect = %+v (placed %v), want %+v", got, ok, tt.want)
			}
		})
	}
}

func TestOverlay_Placement(t *testing.T) {
	s := DefaultStyle()
	s.Mode = ModeNone
	label := NewNode("t", KindText)
	label.Content.Text = "overlay text"
	n := box("none", s, 30, 8, fillNode("bg"), label)

	p := placeOverlay(n, 30, 8)
	if got, _ := p.rectOf(0); got != NewRect(0, 0, 30, 8) {
		t.Errorf("fill child = %+v, want whole content area", got)
	}
	if got, _ := p.rectOf(1); got != NewRect(0, 0, 12, 1) {
		t.Errorf("auto child = %+v, want intrinsic size at origin", got)
	}
}

func TestPlace_DispatchesOnMode(t *testing.T) {
	child := at(leaf("a", 2, 2), 5, 5)

	n := box("c", absoluteStyle(), 20, 20, child)
	if got, _ := place(n, 20, 20).rectOf(0); got.X != 5 {
		t.Errorf("absolute X = %d, want 5", got.X)
	}

	n.Style.Mode = ModeFlow
	if got, _ := place(n, 20, 20).rectOf(0); got.X != 0 {
		t.Errorf("flow X = %d, want 0", got.X)
	}
}
