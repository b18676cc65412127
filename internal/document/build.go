package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// builder converts decoded documents into layout nodes. It assigns
// "<kind>#<n>" ids to nodes that omit one, numbering per kind in
// document order.
type builder struct {
	counts map[layout.Kind]int
}

func newBuilder() *builder {
	return &builder{counts: make(map[layout.Kind]int)}
}

func (b *builder) build(d *nodeDoc, path string) (*layout.Node, error) {
	kind := layout.KindBox
	if d.Kind != "" {
		k, ok := layout.ParseKind(d.Kind)
		if !ok {
			return nil, New(ErrCodeInvalidKind, "%s: unknown kind %q", path, d.Kind)
		}
		kind = k
	}

	id := d.ID
	b.counts[kind]++
	if id == "" {
		id = kind.String() + "#" + strconv.Itoa(b.counts[kind])
	}

	n := layout.NewNode(id, kind)

	var err error
	if n.Width, err = parseSize(d.Width); err != nil {
		return nil, Wrap(ErrCodeInvalidSize, err, "%s: width", path)
	}
	if n.Height, err = parseSize(d.Height); err != nil {
		return nil, Wrap(ErrCodeInvalidSize, err, "%s: height", path)
	}
	if n.Style, err = buildStyle(&d.Layout); err != nil {
		return nil, Wrap(ErrCodeInvalidValue, err, "%s: layout", path)
	}
	n.Content = buildContent(&d.Content)

	for i := range d.Children {
		child, err := b.build(&d.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func buildStyle(d *layoutDoc) (layout.Style, error) {
	s := layout.DefaultStyle()

	if d.Mode != "" {
		m, ok := layout.ParseMode(d.Mode)
		if !ok {
			return s, fmt.Errorf("unknown mode %q", d.Mode)
		}
		s.Mode = m
	}
	if d.Direction != "" {
		dir, ok := layout.ParseDirection(d.Direction)
		if !ok {
			return s, fmt.Errorf("unknown direction %q", d.Direction)
		}
		s.Direction = dir
	}
	if d.Justify != "" {
		j, ok := layout.ParseJustify(d.Justify)
		if !ok {
			return s, fmt.Errorf("unknown justify %q", d.Justify)
		}
		s.JustifyContent = j
	}
	if d.Align != "" {
		a, ok := layout.ParseAlign(d.Align)
		if !ok {
			return s, fmt.Errorf("unknown align %q", d.Align)
		}
		s.AlignItems = a
	}

	var err error
	if s.Padding, err = parseEdges(d.Padding); err != nil {
		return s, fmt.Errorf("padding: %w", err)
	}
	if s.Margin, err = parseEdges(d.Margin); err != nil {
		return s, fmt.Errorf("margin: %w", err)
	}

	s.Gap = d.Gap
	s.Wrap = d.Wrap
	s.Columns = d.Columns
	s.Rows = d.Rows
	s.ColumnGap = d.ColumnGap
	s.RowGap = d.RowGap
	s.X = d.X
	s.Y = d.Y
	s.Border = d.Border
	return s, nil
}

func buildContent(d *contentDoc) layout.Content {
	c := layout.Content{
		Label:         d.Label,
		Text:          d.Text,
		Value:         d.Value,
		Placeholder:   d.Placeholder,
		Icon:          d.Icon,
		IconRight:     d.IconRight,
		Badge:         d.Badge,
		IconSeparated: d.IconSeparated,
		Options:       d.Options,
	}
	for _, it := range d.Items {
		c.Items = append(c.Items, layout.Item{
			Icon:      it.Icon,
			Label:     it.Label,
			Hotkey:    it.Hotkey,
			Separator: it.Separator,
			Depth:     it.Depth,
		})
	}
	return c
}

// parseSize accepts a cell count or one of the keywords "auto" and "fill".
// An absent value is auto.
func parseSize(v any) (layout.Size, error) {
	if v == nil {
		return layout.Auto(), nil
	}
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "auto":
			return layout.Auto(), nil
		case "fill":
			return layout.Fill(), nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return layout.Size{}, fmt.Errorf("expected a number, \"auto\" or \"fill\", got %q", s)
		}
		return layout.Fixed(n), nil
	}
	n, ok := toInt(v)
	if !ok {
		return layout.Size{}, fmt.Errorf("expected a number, \"auto\" or \"fill\", got %v", v)
	}
	return layout.Fixed(n), nil
}

// parseEdges accepts a single number for all sides, or a list of 1, 2 or 4
// numbers in CSS order.
func parseEdges(v any) (layout.Edges, error) {
	if v == nil {
		return layout.Edges{}, nil
	}
	if n, ok := toInt(v); ok {
		return layout.EdgeAll(n), nil
	}

	list, ok := v.([]any)
	if !ok {
		return layout.Edges{}, fmt.Errorf("expected a number or a list, got %v", v)
	}
	vals := make([]int, len(list))
	for i, item := range list {
		n, ok := toInt(item)
		if !ok {
			return layout.Edges{}, fmt.Errorf("element %d: expected a number, got %v", i, item)
		}
		vals[i] = n
	}

	switch len(vals) {
	case 1:
		return layout.EdgeAll(vals[0]), nil
	case 2:
		return layout.EdgeSymmetric(vals[0], vals[1]), nil
	case 4:
		return layout.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	}
	return layout.Edges{}, fmt.Errorf("expected 1, 2 or 4 values, got %d", len(vals))
}

// toInt normalizes the integer types produced by the three decoders.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
