package boxlayout

import "testing"

func TestCompute_PublicAPI(t *testing.T) {
	header := NewNode("header", KindText)
	header.Content.Text = "Settings"
	save := NewNode("save", KindButton)
	save.Content.Label = "Save"

	root := NewNode("root", KindScreen)
	root.Style.Direction = Column
	root.Style.Padding = EdgeAll(1)
	root.AddChild(header, save)

	e := NewEngine()
	e.ComputeLayout(root, 40, 10, true)

	type tc struct {
		id   string
		want Rect
	}

	tests := map[string]tc{
		"root":   {id: "root", want: NewRect(0, 0, 40, 10)},
		"header": {id: "header", want: NewRect(1, 1, 10, 1)},
		"save":   {id: "save", want: NewRect(1, 2, 6, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cl, ok := e.Layout(tt.id)
			if !ok {
				t.Fatalf("Layout(%q) missing", tt.id)
			}
			if cl.Rect != tt.want {
				t.Errorf("Layout(%q).Rect = %+v, want %+v", tt.id, cl.Rect, tt.want)
			}
		})
	}

	if got := e.Result().Breakpoint(); got != BreakpointCompact {
		t.Errorf("Breakpoint() = %s, want %s", got, BreakpointCompact)
	}
	if got := e.NodesWithWarnings(); len(got) != 0 {
		t.Errorf("NodesWithWarnings() = %v, want none", got)
	}
}

func TestResolveAuto(t *testing.T) {
	type tc struct {
		kind  Kind
		wantW int
		wantH int
	}

	tests := map[string]tc{
		"divider":      {kind: KindDivider, wantW: 1, wantH: 1},
		"empty box":    {kind: KindBox, wantW: 20, wantH: 3},
		"progress bar": {kind: KindProgressBar, wantW: 20, wantH: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNode(name, tt.kind)
			if got := ResolveAutoWidth(n); got != tt.wantW {
				t.Errorf("ResolveAutoWidth() = %d, want %d", got, tt.wantW)
			}
			if got := ResolveAutoHeight(n); got != tt.wantH {
				t.Errorf("ResolveAutoHeight() = %d, want %d", got, tt.wantH)
			}
		})
	}
}
