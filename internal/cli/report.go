package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/grindlemire/boxlayout/internal/layout"
)

type rectReport struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type warningReport struct {
	Kind        string `json:"kind"`
	Axis        string `json:"axis,omitempty"`
	Amount      int    `json:"amount,omitempty"`
	Dimension   string `json:"dimension,omitempty"`
	Description string `json:"description,omitempty"`
	Message     string `json:"message"`
}

type nodeReport struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Rect       rectReport      `json:"rect"`
	PaddingBox rectReport      `json:"padding_box"`
	ContentBox rectReport      `json:"content_box"`
	MarginBox  rectReport      `json:"margin_box"`
	Warnings   []warningReport `json:"warnings,omitempty"`
}

type designReport struct {
	Path       string       `json:"path"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Breakpoint string       `json:"breakpoint,omitempty"`
	Warnings   int          `json:"warnings"`
	Nodes      []nodeReport `json:"nodes"`
}

func toRect(r layout.Rect) rectReport {
	return rectReport{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func toWarning(w layout.Warning) warningReport {
	out := warningReport{
		Kind:        w.Kind.String(),
		Amount:      w.Amount,
		Dimension:   w.Dimension,
		Description: w.Description,
		Message:     w.String(),
	}
	if w.Kind == layout.WarningOverflow {
		out.Axis = w.Axis.String()
	}
	return out
}

// kindsByID maps every reachable node id to its kind. The first
// occurrence of an id wins, matching the engine.
func kindsByID(root *layout.Node) map[string]layout.Kind {
	kinds := make(map[string]layout.Kind)
	if root == nil {
		return kinds
	}
	seen := make(map[*layout.Node]bool)
	stack := []*layout.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil || seen[n] {
			continue
		}
		seen[n] = true
		if _, ok := kinds[n.ID]; !ok {
			kinds[n.ID] = n.Kind
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return kinds
}

func buildReport(d design) designReport {
	res := d.result
	vp := res.Viewport()
	kinds := kindsByID(d.root)

	r := designReport{
		Path:     d.path,
		Width:    vp.Width,
		Height:   vp.Height,
		Warnings: res.WarningCount(),
	}
	if bp := res.Breakpoint(); bp != layout.BreakpointNone {
		r.Breakpoint = bp.String()
	}

	for _, id := range res.IDs() {
		cl, _ := res.Layout(id)
		n := nodeReport{
			ID:         id,
			Kind:       kinds[id].String(),
			Rect:       toRect(cl.Rect),
			PaddingBox: toRect(cl.PaddingBox),
			ContentBox: toRect(cl.ContentBox),
			MarginBox:  toRect(cl.MarginBox),
		}
		if diag, ok := res.Diagnostics(id); ok {
			for _, w := range diag.Warnings {
				n.Warnings = append(n.Warnings, toWarning(w))
			}
		}
		r.Nodes = append(r.Nodes, n)
	}
	return r
}

func writeJSON(w io.Writer, reports []designReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func formatRect(r rectReport) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// writeTable prints one bordered table per design.
func writeTable(w io.Writer, reports []designReport) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		header := styleTitle.Render(r.Path) + " " + styleDim.Render(fmt.Sprintf("%dx%d", r.Width, r.Height))
		if r.Breakpoint != "" {
			header += styleDim.Render(" · " + r.Breakpoint)
		}
		fmt.Fprintln(w, header)

		rows := make([][]string, 0, len(r.Nodes))
		for _, n := range r.Nodes {
			msgs := make([]string, len(n.Warnings))
			for j, wr := range n.Warnings {
				msgs[j] = wr.Message
			}
			rows = append(rows, []string{n.ID, n.Kind, formatRect(n.Rect), formatRect(n.ContentBox), strings.Join(msgs, "; ")})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("Node", "Kind", "Rect", "Content", "Warnings").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styleHeader.Padding(0, 1)
				}
				if col == 4 {
					return styleCell.Foreground(colorYellow)
				}
				return styleCell
			})
		fmt.Fprintln(w, t.String())
	}
}
