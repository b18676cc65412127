package layout

import "fmt"

// WarningKind classifies a geometric inconsistency.
type WarningKind uint8

const (
	// WarningOverflow: the node extends past its parent's content box.
	WarningOverflow WarningKind = iota
	// WarningNegativeSpace: a computed width or height is below zero.
	WarningNegativeSpace
	// WarningConstraintViolation: the engine could not honor a declaration
	// exactly (dropped grid child, unapplied stretch, floored remainder,
	// duplicate id).
	WarningConstraintViolation
	// WarningCircularDependency: the node is its own ancestor.
	WarningCircularDependency
)

var warningKindNames = [...]string{
	WarningOverflow:            "overflow",
	WarningNegativeSpace:       "negative-space",
	WarningConstraintViolation: "constraint-violation",
	WarningCircularDependency:  "circular-dependency",
}

func (k WarningKind) String() string {
	if int(k) < len(warningKindNames) {
		return warningKindNames[k]
	}
	return "unknown"
}

// Axis names a coordinate axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Warning is one non-fatal problem recorded against a node.
// Which fields are meaningful depends on Kind: Axis and Amount for
// overflow, Dimension and Amount for negative space, Description for
// the rest.
type Warning struct {
	Kind        WarningKind
	Axis        Axis
	Amount      int
	Dimension   string
	Description string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningOverflow:
		return fmt.Sprintf("overflow on %s axis by %d", w.Axis, w.Amount)
	case WarningNegativeSpace:
		return fmt.Sprintf("negative %s (%d)", w.Dimension, -w.Amount)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Description)
	}
}

// Diagnostic collects every warning recorded for one node.
type Diagnostic struct {
	NodeID   string
	Warnings []Warning
}

func overflow(axis Axis, amount int) Warning {
	return Warning{Kind: WarningOverflow, Axis: axis, Amount: amount}
}

func negativeSpace(dimension string, value int) Warning {
	return Warning{Kind: WarningNegativeSpace, Dimension: dimension, Amount: -value}
}

func constraintViolation(format string, args ...any) Warning {
	return Warning{Kind: WarningConstraintViolation, Description: fmt.Sprintf(format, args...)}
}

func circularDependency(format string, args ...any) Warning {
	return Warning{Kind: WarningCircularDependency, Description: fmt.Sprintf(format, args...)}
}

// checkGeometry compares a node's boxes against zero and, when the node
// has a parent, against the parent's content box.
func checkGeometry(cl ComputedLayout, parent *Rect) []Warning {
	var warnings []Warning

	r := cl.Rect
	if r.Width < 0 {
		warnings = append(warnings, negativeSpace("width", r.Width))
	}
	if r.Height < 0 {
		warnings = append(warnings, negativeSpace("height", r.Height))
	}
	// A collapsed content box is only interesting when the rectangle itself is sane.
	if r.Width >= 0 && cl.ContentBox.Width < 0 {
		warnings = append(warnings, negativeSpace("content-width", cl.ContentBox.Width))
	}
	if r.Height >= 0 && cl.ContentBox.Height < 0 {
		warnings = append(warnings, negativeSpace("content-height", cl.ContentBox.Height))
	}

	if parent == nil || parent.ContainsRect(r) {
		return warnings
	}
	if over := excess(r.X, r.Right(), parent.X, parent.Right()); over > 0 {
		warnings = append(warnings, overflow(AxisX, over))
	}
	if over := excess(r.Y, r.Bottom(), parent.Y, parent.Bottom()); over > 0 {
		warnings = append(warnings, overflow(AxisY, over))
	}
	return warnings
}

// excess returns how many cells of [start, end) lie outside [lo, hi).
func excess(start, end, lo, hi int) int {
	return max(0, end-hi) + max(0, lo-start)
}
