package layout

import "testing"

// leaf creates a node with a fixed size.
func leaf(id string, w, h int) *Node {
	n := NewNode(id, KindText)
	n.Width = Fixed(w)
	n.Height = Fixed(h)
	return n
}

// box creates a fixed-size Box container with the given style and children.
func box(id string, style Style, w, h int, children ...*Node) *Node {
	n := NewNode(id, KindBox)
	n.Style = style
	n.Width = Fixed(w)
	n.Height = Fixed(h)
	return n.AddChild(children...)
}

func rowStyle() Style {
	s := DefaultStyle()
	s.Direction = Row
	return s
}

func columnStyle() Style {
	s := DefaultStyle()
	s.Direction = Column
	return s
}

func mustLayout(t *testing.T, res *Result, id string) ComputedLayout {
	t.Helper()
	cl, ok := res.Layout(id)
	if !ok {
		t.Fatalf("Layout(%q) missing", id)
	}
	return cl
}

func warningsOf(res *Result, id string, kind WarningKind) []Warning {
	d, ok := res.Diagnostics(id)
	if !ok {
		return nil
	}
	var out []Warning
	for _, w := range d.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
