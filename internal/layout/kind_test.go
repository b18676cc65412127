package layout

import "testing"

func TestKinds_HaveSizers(t *testing.T) {
	for _, k := range Kinds() {
		if sizers[k] == nil {
			t.Errorf("kind %s has no intrinsic sizer", k)
		}
	}
}

func TestKinds_Count(t *testing.T) {
	if got := len(Kinds()); got != 20 {
		t.Errorf("len(Kinds()) = %d, want 20", got)
	}
}

func TestParseKind(t *testing.T) {
	type tc struct {
		input string
		want  Kind
		ok    bool
	}

	tests := map[string]tc{
		"lower":       {input: "button", want: KindButton, ok: true},
		"camel":       {input: "TextInput", want: KindTextInput, ok: true},
		"kebab":       {input: "progress-bar", want: KindProgressBar, ok: true},
		"snake":       {input: "status_bar", want: KindStatusBar, ok: true},
		"padded":      {input: "  List ", want: KindList, ok: true},
		"unknown":     {input: "carousel", want: KindBox, ok: false},
		"empty input": {input: "", want: KindBox, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseKind(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}

	for _, k := range Kinds() {
		if got, ok := ParseKind(k.String()); !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, want round trip", k.String(), got, ok)
		}
	}
}

func TestKind_Classification(t *testing.T) {
	if !KindModal.IsContainer() || KindButton.IsContainer() {
		t.Error("IsContainer() misclassifies Modal or Button")
	}
	if !KindStatusBar.IsItemCollection() || KindBox.IsItemCollection() {
		t.Error("IsItemCollection() misclassifies StatusBar or Box")
	}
	if !KindList.forcesColumn() || !KindTree.forcesColumn() || KindMenu.forcesColumn() {
		t.Error("forcesColumn() should hold for List and Tree only")
	}
}
