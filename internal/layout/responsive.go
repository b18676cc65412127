package layout

// Breakpoint classifies a viewport width for hosts that adapt their
// designs to the terminal size.
type Breakpoint uint8

const (
	BreakpointNone     Breakpoint = iota // Responsive hint not requested
	BreakpointCompact                    // Fewer than 80 columns
	BreakpointStandard                   // 80 to 159 columns
	BreakpointWide                       // 160 columns or more
)

// breakpoints lists the minimum width of each class, largest first.
var breakpoints = []struct {
	minWidth int
	class    Breakpoint
}{
	{minWidth: 160, class: BreakpointWide},
	{minWidth: 80, class: BreakpointStandard},
}

// BreakpointFor returns the class of a viewport width.
func BreakpointFor(width int) Breakpoint {
	for _, bp := range breakpoints {
		if width >= bp.minWidth {
			return bp.class
		}
	}
	return BreakpointCompact
}

func (b Breakpoint) String() string {
	switch b {
	case BreakpointCompact:
		return "compact"
	case BreakpointStandard:
		return "standard"
	case BreakpointWide:
		return "wide"
	default:
		return "none"
	}
}
