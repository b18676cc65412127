// layout.go re-exports the engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import (
	"github.com/charmbracelet/log"
	"github.com/grindlemire/boxlayout/internal/layout"
)

// Node is one element of a design tree.
type Node = layout.Node

// Content carries the textual data leaves are sized from.
type Content = layout.Content

// Item is one entry of a menu, list, tree, tab strip or status bar.
type Item = layout.Item

// Kind identifies what a node represents.
type Kind = layout.Kind

const (
	KindBox         = layout.KindBox
	KindScreen      = layout.KindScreen
	KindPanel       = layout.KindPanel
	KindGrid        = layout.KindGrid
	KindModal       = layout.KindModal
	KindTabs        = layout.KindTabs
	KindMenu        = layout.KindMenu
	KindList        = layout.KindList
	KindTree        = layout.KindTree
	KindText        = layout.KindText
	KindButton      = layout.KindButton
	KindTextInput   = layout.KindTextInput
	KindTextArea    = layout.KindTextArea
	KindCheckbox    = layout.KindCheckbox
	KindRadio       = layout.KindRadio
	KindSelect      = layout.KindSelect
	KindProgressBar = layout.KindProgressBar
	KindSpinner     = layout.KindSpinner
	KindDivider     = layout.KindDivider
	KindStatusBar   = layout.KindStatusBar
)

// Mode selects the placement algorithm of a container.
type Mode = layout.Mode

const (
	ModeFlow     = layout.ModeFlow
	ModeGrid     = layout.ModeGrid
	ModeAbsolute = layout.ModeAbsolute
	ModeNone     = layout.ModeNone
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Size is a width or height request (fixed, auto or fill).
type Size = layout.Size

// Unit specifies how a Size is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
	UnitFill  = layout.UnitFill
)

// Style holds the layout declaration of a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// ComputedLayout holds the computed boxes of a node.
type ComputedLayout = layout.ComputedLayout

// Diagnostic lists the warnings recorded for a node.
type Diagnostic = layout.Diagnostic

// Warning is one geometric problem found during layout.
type Warning = layout.Warning

// WarningKind classifies a Warning.
type WarningKind = layout.WarningKind

const (
	WarningOverflow            = layout.WarningOverflow
	WarningNegativeSpace       = layout.WarningNegativeSpace
	WarningConstraintViolation = layout.WarningConstraintViolation
	WarningCircularDependency  = layout.WarningCircularDependency
)

// Axis names the axis an overflow occurred on.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// Viewport is the character grid a tree is laid out into.
type Viewport = layout.Viewport

// Breakpoint classifies a viewport width.
type Breakpoint = layout.Breakpoint

const (
	BreakpointNone     = layout.BreakpointNone
	BreakpointCompact  = layout.BreakpointCompact
	BreakpointStandard = layout.BreakpointStandard
	BreakpointWide     = layout.BreakpointWide
)

// Result is one immutable layout generation.
type Result = layout.Result

// Engine keeps the latest generation and answers queries by node id.
type Engine = layout.Engine

// Option configures a computation.
type Option = layout.Option

// NewNode creates a node of the given kind with the default style.
func NewNode(id string, kind Kind) *Node {
	return layout.NewNode(id, kind)
}

// ParseKind looks up a kind by name, ignoring case and separators.
func ParseKind(s string) (Kind, bool) {
	return layout.ParseKind(s)
}

// Fixed creates a Size with a fixed cell count.
func Fixed(n int) Size {
	return layout.Fixed(n)
}

// Auto creates a Size that sizes to content.
func Auto() Size {
	return layout.Auto()
}

// Fill creates a Size that takes the space its container offers.
func Fill() Size {
	return layout.Fill()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Compute lays out the tree rooted at root into vp.
func Compute(root *Node, vp Viewport, opts ...Option) *Result {
	return layout.Compute(root, vp, opts...)
}

// NewEngine creates an Engine with empty tables.
func NewEngine(opts ...Option) *Engine {
	return layout.NewEngine(opts...)
}

// WithLogger routes debug output of a computation to l.
func WithLogger(l *log.Logger) Option {
	return layout.WithLogger(l)
}

// ResolveAutoWidth returns the width n takes when sized to its content.
func ResolveAutoWidth(n *Node) int {
	return layout.ResolveAutoWidth(n)
}

// ResolveAutoHeight returns the height n takes when sized to its content.
func ResolveAutoHeight(n *Node) int {
	return layout.ResolveAutoHeight(n)
}
