package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Placeholder dimensions for nodes that are not sized by their content:
// grid and absolute containers, childless containers, and auto-sized
// children of grid and absolute containers.
const (
	DefaultWidth  = 20
	DefaultHeight = 3
)

const (
	minTextWidth     = 10
	minInputWidth    = 10
	minTextAreaWidth = 20
	minTextAreaLines = 3
	progressBarWidth = 20
)

// ResolveAutoWidth returns the width n takes when sized to its content.
// Containers recurse into their children. The result is never negative.
func ResolveAutoWidth(n *Node) int {
	if n == nil {
		return 0
	}
	return newMeasurer().width(n)
}

// ResolveAutoHeight returns the height n takes when sized to its content.
func ResolveAutoHeight(n *Node) int {
	if n == nil {
		return 0
	}
	return newMeasurer().height(n)
}

// intrinsicSizer is the sizing capability every kind provides.
type intrinsicSizer interface {
	intrinsicWidth(m *measurer, n *Node) int
	intrinsicHeight(m *measurer, n *Node) int
}

var sizers = [kindCount]intrinsicSizer{
	KindBox:    containerSizer{},
	KindScreen: containerSizer{},
	KindPanel:  containerSizer{},
	KindGrid:   containerSizer{},
	KindModal:  containerSizer{},

	KindTabs:      collectionSizer{placeholder: []Item{{Label: "Tab 1"}, {Label: "Tab 2"}}},
	KindMenu:      collectionSizer{placeholder: []Item{{Label: "File"}, {Label: "Edit"}, {Label: "View"}}},
	KindList:      collectionSizer{placeholder: []Item{{Label: "Item 1"}, {Label: "Item 2"}, {Label: "Item 3"}}},
	KindTree:      collectionSizer{placeholder: []Item{{Label: "Root"}, {Label: "Child", Depth: 1}}},
	KindStatusBar: collectionSizer{placeholder: []Item{{Label: "Ready"}}},

	KindText:        textSizer{},
	KindButton:      buttonSizer{},
	KindTextInput:   inputSizer{},
	KindTextArea:    textAreaSizer{},
	KindCheckbox:    toggleSizer{placeholder: "Checkbox"},
	KindRadio:       toggleSizer{placeholder: "Option"},
	KindSelect:      selectSizer{},
	KindProgressBar: progressSizer{},
	KindSpinner:     spinnerSizer{},
	KindDivider:     fixedSizer{width: 1, height: 1},
}

func sizerFor(k Kind) intrinsicSizer {
	if k < kindCount && sizers[k] != nil {
		return sizers[k]
	}
	return containerSizer{}
}

// measurer carries the set of nodes currently being measured so that a
// cyclic tree terminates: a node reached again while its own measurement
// is in progress contributes zero.
type measurer struct {
	active map[*Node]struct{}
}

func newMeasurer() *measurer {
	return &measurer{active: make(map[*Node]struct{})}
}

func (m *measurer) width(n *Node) int {
	if _, busy := m.active[n]; busy {
		return 0
	}
	m.active[n] = struct{}{}
	defer delete(m.active, n)
	return max(0, sizerFor(n.Kind).intrinsicWidth(m, n))
}

func (m *measurer) height(n *Node) int {
	if _, busy := m.active[n]; busy {
		return 0
	}
	m.active[n] = struct{}{}
	defer delete(m.active, n)
	return max(0, sizerFor(n.Kind).intrinsicHeight(m, n))
}

// requested returns the size n asks for on one axis when measured inside
// its parent: the fixed request if any, otherwise its intrinsic size.
// Fill children have no size of their own yet and measure like auto.
func (m *measurer) requested(n *Node, horizontal bool) int {
	if horizontal {
		if n.Width.IsFixed() {
			return n.Width.Amount
		}
		return m.width(n)
	}
	if n.Height.IsFixed() {
		return n.Height.Amount
	}
	return m.height(n)
}

// childrenExtent measures n's children along one axis: summed with gaps on
// the flow main axis, maximum on the cross axis.
func (m *measurer) childrenExtent(n *Node, horizontal bool) int {
	alongMain := (n.flowDirection() == Row) == horizontal
	total, count := 0, 0
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		v := m.requested(child, horizontal)
		if alongMain {
			total += v
			count++
		} else {
			total = max(total, v)
		}
	}
	if alongMain && count > 1 {
		total += n.Style.Gap * (count - 1)
	}
	return total
}

func chromeX(s Style) int { return s.Padding.Horizontal() + 2*s.frame() }
func chromeY(s Style) int { return s.Padding.Vertical() + 2*s.frame() }

func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

func longestLine(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, cellWidth(line))
	}
	return w
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// containerSizer sizes flow containers from their children. Everything
// else that can hold children gets the placeholder size.
type containerSizer struct{}

func measuresChildren(n *Node) bool {
	return len(n.Children) > 0 && n.Style.Mode == ModeFlow
}

func (containerSizer) intrinsicWidth(m *measurer, n *Node) int {
	if !measuresChildren(n) {
		return DefaultWidth
	}
	return chromeX(n.Style) + m.childrenExtent(n, true)
}

func (containerSizer) intrinsicHeight(m *measurer, n *Node) int {
	if !measuresChildren(n) {
		return DefaultHeight
	}
	return chromeY(n.Style) + m.childrenExtent(n, false)
}

// collectionSizer sizes list-like kinds from their items; with children
// they behave as ordinary containers.
type collectionSizer struct {
	placeholder []Item
}

func (c collectionSizer) items(n *Node) []Item {
	if len(n.Content.Items) > 0 {
		return n.Content.Items
	}
	return c.placeholder
}

// horizontalItems reports whether the items sit on one line.
func horizontalItems(n *Node) bool {
	switch n.Kind {
	case KindTabs, KindStatusBar:
		return true
	case KindMenu:
		return n.Style.Direction == Row
	}
	return false
}

func itemFootprint(it Item) int {
	w := cellWidth(it.Label) + 2*it.Depth
	if it.Icon != "" {
		w += cellWidth(it.Icon) + 1
	}
	if it.Hotkey != "" {
		w += cellWidth(it.Hotkey) + 1
	}
	return w
}

func (c collectionSizer) intrinsicWidth(m *measurer, n *Node) int {
	if len(n.Children) > 0 {
		return containerSizer{}.intrinsicWidth(m, n)
	}
	w := 0
	items := c.items(n)
	for i, it := range items {
		fp := itemFootprint(it)
		if !horizontalItems(n) {
			w = max(w, fp)
			continue
		}
		w += fp
		if it.Separator {
			w++
		}
		if i > 0 {
			w += n.Style.Gap
		}
	}
	return w + chromeX(n.Style)
}

func (c collectionSizer) intrinsicHeight(m *measurer, n *Node) int {
	if len(n.Children) > 0 {
		return containerSizer{}.intrinsicHeight(m, n)
	}
	if horizontalItems(n) {
		return 1 + chromeY(n.Style)
	}
	h := 0
	for _, it := range c.items(n) {
		h++
		if it.Separator {
			h++
		}
	}
	return h + chromeY(n.Style)
}

type textSizer struct{}

func (textSizer) lines(n *Node) []string {
	return strings.Split(firstNonEmpty(n.Content.Text, n.Content.Label, "Text"), "\n")
}

func (t textSizer) intrinsicWidth(_ *measurer, n *Node) int {
	return max(longestLine(t.lines(n)), minTextWidth) + chromeX(n.Style)
}

func (t textSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return len(t.lines(n)) + chromeY(n.Style)
}

// buttonSizer: label, one cell of padding per side, then icon segments.
type buttonSizer struct{}

func (buttonSizer) intrinsicWidth(_ *measurer, n *Node) int {
	c := n.Content
	w := cellWidth(firstNonEmpty(c.Label, "Button")) + 2
	if c.Icon != "" {
		if c.IconSeparated {
			w += cellWidth(c.Icon) + cellWidth(c.Badge) + 5
		} else {
			w += cellWidth(c.Icon) + 1
		}
	}
	if c.IconRight != "" {
		w += cellWidth(c.IconRight) + 1
	}
	return w + chromeX(n.Style)
}

func (buttonSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

type inputSizer struct{}

func (inputSizer) intrinsicWidth(_ *measurer, n *Node) int {
	text := firstNonEmpty(n.Content.Value, n.Content.Placeholder, "Enter text...")
	return max(cellWidth(text), minInputWidth) + 2 + chromeX(n.Style)
}

func (inputSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

type textAreaSizer struct{}

func (textAreaSizer) lines(n *Node) []string {
	return strings.Split(firstNonEmpty(n.Content.Value, n.Content.Placeholder), "\n")
}

func (t textAreaSizer) intrinsicWidth(_ *measurer, n *Node) int {
	return max(longestLine(t.lines(n)), minTextAreaWidth) + 2 + chromeX(n.Style)
}

func (t textAreaSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return max(len(t.lines(n)), minTextAreaLines) + chromeY(n.Style)
}

// toggleSizer covers checkboxes and radios: a "[x] " marker and a label.
type toggleSizer struct {
	placeholder string
}

func (t toggleSizer) intrinsicWidth(_ *measurer, n *Node) int {
	return 4 + cellWidth(firstNonEmpty(n.Content.Label, t.placeholder)) + chromeX(n.Style)
}

func (toggleSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

// selectSizer is wide enough for the longest choice plus the arrow segment.
type selectSizer struct{}

func (selectSizer) intrinsicWidth(_ *measurer, n *Node) int {
	w := cellWidth(firstNonEmpty(n.Content.Value, n.Content.Label, "Select..."))
	for _, opt := range n.Content.Options {
		w = max(w, cellWidth(opt))
	}
	return w + 4 + chromeX(n.Style)
}

func (selectSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

type progressSizer struct{}

func (progressSizer) intrinsicWidth(_ *measurer, n *Node) int {
	w := progressBarWidth
	if n.Content.Label != "" {
		w += cellWidth(n.Content.Label) + 1
	}
	return w + chromeX(n.Style)
}

func (progressSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

type spinnerSizer struct{}

func (spinnerSizer) intrinsicWidth(_ *measurer, n *Node) int {
	w := 1
	if n.Content.Label != "" {
		w += cellWidth(n.Content.Label) + 1
	}
	return w + chromeX(n.Style)
}

func (spinnerSizer) intrinsicHeight(_ *measurer, n *Node) int {
	return 1 + chromeY(n.Style)
}

type fixedSizer struct {
	width, height int
}

func (f fixedSizer) intrinsicWidth(*measurer, *Node) int  { return f.width }
func (f fixedSizer) intrinsicHeight(*measurer, *Node) int { return f.height }
