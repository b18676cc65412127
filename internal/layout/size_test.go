package layout

import "testing"

func TestSize(t *testing.T) {
	type tc struct {
		size     Size
		fallback int
		resolved int
		str      string
		auto     bool
		fill     bool
	}

	tests := map[string]tc{
		"zero value is auto": {size: Size{}, fallback: 7, resolved: 7, str: "auto", auto: true},
		"auto":               {size: Auto(), fallback: 3, resolved: 3, str: "auto", auto: true},
		"fixed":              {size: Fixed(12), fallback: 3, resolved: 12, str: "12"},
		"fixed zero":         {size: Fixed(0), fallback: 3, resolved: 0, str: "0"},
		"fill":               {size: Fill(), fallback: 9, resolved: 9, str: "fill", fill: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.Resolve(tt.fallback); got != tt.resolved {
				t.Errorf("Resolve(%d) = %d, want %d", tt.fallback, got, tt.resolved)
			}
			if got := tt.size.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.size.IsAuto(); got != tt.auto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.auto)
			}
			if got := tt.size.IsFill(); got != tt.fill {
				t.Errorf("IsFill() = %v, want %v", got, tt.fill)
			}
			if got := tt.size.IsFixed(); got != (!tt.auto && !tt.fill) {
				t.Errorf("IsFixed() = %v", got)
			}
		})
	}
}

func TestStyle_ParseKeywords(t *testing.T) {
	if m, ok := ParseMode("Absolute"); !ok || m != ModeAbsolute {
		t.Errorf("ParseMode(Absolute) = %v, %v", m, ok)
	}
	if _, ok := ParseMode("table"); ok {
		t.Error("ParseMode(table) should fail")
	}
	if d, ok := ParseDirection("column"); !ok || d != Column {
		t.Errorf("ParseDirection(column) = %v, %v", d, ok)
	}
	if j, ok := ParseJustify("space_between"); !ok || j != JustifySpaceBetween {
		t.Errorf("ParseJustify(space_between) = %v, %v", j, ok)
	}
	if a, ok := ParseAlign(" stretch "); !ok || a != AlignStretch {
		t.Errorf("ParseAlign(stretch) = %v, %v", a, ok)
	}

	for _, j := range []Justify{JustifyStart, JustifyEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly} {
		if got, ok := ParseJustify(j.String()); !ok || got != j {
			t.Errorf("ParseJustify(%q) = %v, %v", j.String(), got, ok)
		}
	}
}
