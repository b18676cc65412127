package layout

import "strings"

// Mode selects the placement algorithm a container uses for its children.
type Mode uint8

const (
	ModeFlow     Mode = iota // Sequential row/column placement
	ModeGrid                 // Uniform row-major cells
	ModeAbsolute             // Explicit offsets from the content origin
	ModeNone                 // No arrangement; children overlay the content origin
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Accepted but placed like AlignStart
)

// Style is a node's layout declaration.
type Style struct {
	Mode Mode

	// Flow container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children on the main axis and between wrapped lines
	Wrap           bool

	// Grid container properties
	Columns   int
	Rows      int // 0 = as many rows as the children need
	ColumnGap int
	RowGap    int

	// Absolute item properties, relative to the parent's content origin
	X, Y int

	// Spacing
	Padding Edges
	Margin  Edges
	Border  bool // One cell on every side, between the rectangle and the padding
}

// DefaultStyle returns a Style with sensible defaults: flow, row, start/start.
func DefaultStyle() Style {
	return Style{
		Mode:           ModeFlow,
		Direction:      Row,
		JustifyContent: JustifyStart,
		AlignItems:     AlignStart,
	}
}

// frame returns the border thickness on one side.
func (s Style) frame() int {
	if s.Border {
		return 1
	}
	return 0
}

var modeNames = [...]string{
	ModeFlow:     "flow",
	ModeGrid:     "grid",
	ModeAbsolute: "absolute",
	ModeNone:     "none",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode converts a declaration keyword into a Mode.
func ParseMode(s string) (Mode, bool) {
	return lookup(modeNames[:], s, Mode(0))
}

var directionNames = [...]string{
	Row:    "row",
	Column: "column",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection converts a declaration keyword into a Direction.
func ParseDirection(s string) (Direction, bool) {
	return lookup(directionNames[:], s, Direction(0))
}

var justifyNames = [...]string{
	JustifyStart:        "start",
	JustifyEnd:          "end",
	JustifyCenter:       "center",
	JustifySpaceBetween: "space-between",
	JustifySpaceAround:  "space-around",
	JustifySpaceEvenly:  "space-evenly",
}

func (j Justify) String() string {
	if int(j) < len(justifyNames) {
		return justifyNames[j]
	}
	return "unknown"
}

// ParseJustify converts a declaration keyword into a Justify.
func ParseJustify(s string) (Justify, bool) {
	return lookup(justifyNames[:], s, Justify(0))
}

var alignNames = [...]string{
	AlignStart:   "start",
	AlignEnd:     "end",
	AlignCenter:  "center",
	AlignStretch: "stretch",
}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// ParseAlign converts a declaration keyword into an Align.
func ParseAlign(s string) (Align, bool) {
	return lookup(alignNames[:], s, Align(0))
}

// lookup finds s in names, ignoring case and treating '_' like '-'.
func lookup[T ~uint8](names []string, s string, zero T) (T, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range names {
		if name == key {
			return T(i), true
		}
	}
	return zero, false
}
