package layout

// Viewport is the character grid a tree is laid out into.
type Viewport struct {
	Width, Height int

	// Responsive asks for the viewport to be classified into a Breakpoint.
	Responsive bool
}

// Result is one generation of layout output: the layout table and the
// diagnostics table for a single Compute call. A Result is never modified
// after Compute returns, so it may be shared freely between goroutines.
type Result struct {
	viewport   Viewport
	breakpoint Breakpoint

	layouts map[string]ComputedLayout
	ids     []string // Layout insertion order

	diagnostics map[string]*Diagnostic
	warned      []string // Diagnostics insertion order
}

func newResult(vp Viewport) *Result {
	r := &Result{
		viewport:    vp,
		layouts:     make(map[string]ComputedLayout),
		diagnostics: make(map[string]*Diagnostic),
	}
	if vp.Responsive {
		r.breakpoint = BreakpointFor(vp.Width)
	}
	return r
}

// Layout returns the computed layout of the node with the given id.
func (r *Result) Layout(id string) (ComputedLayout, bool) {
	if r == nil {
		return ComputedLayout{}, false
	}
	cl, ok := r.layouts[id]
	return cl, ok
}

// Diagnostics returns the warnings recorded for the node with the given id.
// Nodes without warnings have no entry.
func (r *Result) Diagnostics(id string) (Diagnostic, bool) {
	if r == nil {
		return Diagnostic{}, false
	}
	d, ok := r.diagnostics[id]
	if !ok {
		return Diagnostic{}, false
	}
	return Diagnostic{NodeID: d.NodeID, Warnings: append([]Warning(nil), d.Warnings...)}, true
}

// NodesWithWarnings returns the ids that have at least one warning, in the
// order the traversal first recorded a warning for them.
func (r *Result) NodesWithWarnings() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.warned...)
}

// IDs returns every laid-out node id in traversal (pre-)order.
func (r *Result) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.ids...)
}

// Len returns the number of laid-out nodes.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}

// WarningCount returns the total number of warnings across all nodes.
func (r *Result) WarningCount() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, d := range r.diagnostics {
		total += len(d.Warnings)
	}
	return total
}

// Viewport returns the viewport the result was computed for.
func (r *Result) Viewport() Viewport {
	if r == nil {
		return Viewport{}
	}
	return r.viewport
}

// Breakpoint returns the viewport class, or BreakpointNone when the
// responsive hint was not set.
func (r *Result) Breakpoint() Breakpoint {
	if r == nil {
		return BreakpointNone
	}
	return r.breakpoint
}

func (r *Result) record(id string, cl ComputedLayout) {
	r.layouts[id] = cl
	r.ids = append(r.ids, id)
}

func (r *Result) warn(id string, warnings ...Warning) {
	if len(warnings) == 0 {
		return
	}
	d, ok := r.diagnostics[id]
	if !ok {
		d = &Diagnostic{NodeID: id}
		r.diagnostics[id] = d
		r.warned = append(r.warned, id)
	}
	d.Warnings = append(d.Warnings, warnings...)
}
