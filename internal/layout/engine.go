package layout

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a layout computation.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for debug output. Computations are
// silent by default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// Compute lays out the tree rooted at root into the viewport and returns
// the layout and diagnostics tables. A nil root yields empty tables.
//
// Compute never fails: geometric problems are recorded as warnings and
// every reachable node still receives a layout.
func Compute(root *Node, vp Viewport, opts ...Option) *Result {
	o := newOptions(opts)
	start := time.Now()

	res := newResult(vp)
	if root == nil {
		o.logger.Debug("layout cleared", "reason", "nil root")
		return res
	}

	w := &walker{res: res}
	w.run(root, vp)

	for _, id := range res.warned {
		for _, warning := range res.diagnostics[id].Warnings {
			o.logger.Debug("layout warning", "node", id, "warning", warning)
		}
	}
	o.logger.Debug("layout computed",
		"nodes", res.Len(),
		"warnings", res.WarningCount(),
		"width", vp.Width,
		"height", vp.Height,
		"breakpoint", res.breakpoint,
		"elapsed", time.Since(start),
	)
	return res
}

// pending is a node waiting on the work-list together with the absolute
// rectangle its parent assigned to it.
type pending struct {
	node   *Node
	rect   Rect
	parent int // Index into walker.arena, -1 for the root
}

// container is an arena entry for a node whose children were enqueued.
type container struct {
	node    *Node
	content Rect
	parent  int
}

// walker performs the depth-first traversal with an explicit stack so that
// Go stack usage does not grow with tree depth.
type walker struct {
	res   *Result
	arena []container
	stack []pending
}

func (w *walker) run(root *Node, vp Viewport) {
	w.stack = append(w.stack, pending{node: root, rect: rootRect(root, vp), parent: -1})
	for len(w.stack) > 0 {
		next := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.visit(next)
	}
}

// rootRect seeds the traversal with the viewport. A fixed root size
// overrides the viewport on that axis.
func rootRect(root *Node, vp Viewport) Rect {
	return NewRect(0, 0, root.Width.Resolve(vp.Width), root.Height.Resolve(vp.Height))
}

func (w *walker) visit(p pending) {
	n := p.node

	if w.isAncestor(p.parent, n) {
		w.res.warn(n.ID, circularDependency("node %q contains itself; the nested occurrence was skipped", n.ID))
		return
	}
	if _, dup := w.res.layouts[n.ID]; dup {
		w.res.warn(n.ID, constraintViolation("duplicate node id %q; later occurrence was skipped", n.ID))
		return
	}

	// 1. Compute boxes from the assigned rectangle and record them
	cl := computeBoxes(n, p.rect)
	w.res.record(n.ID, cl)

	// 2. Diagnose against zero and the parent's content box
	var parentContent *Rect
	if p.parent >= 0 {
		parentContent = &w.arena[p.parent].content
	}
	w.res.warn(n.ID, checkGeometry(cl, parentContent)...)

	if len(n.Children) == 0 {
		return
	}

	// 3. Delegate to the placement algorithm
	for i, child := range n.Children {
		if child == nil {
			w.res.warn(n.ID, constraintViolation("child %d is nil and was skipped", i))
		}
	}
	pl := place(n, cl.ContentBox.Width, cl.ContentBox.Height)
	w.res.warn(n.ID, pl.notes...)

	// 4. Enqueue placed children in reverse so they pop in order
	idx := len(w.arena)
	w.arena = append(w.arena, container{node: n, content: cl.ContentBox, parent: p.parent})
	origin := cl.ContentBox
	for i := len(n.Children) - 1; i >= 0; i-- {
		rel, ok := pl.rectOf(i)
		if !ok {
			continue
		}
		w.stack = append(w.stack, pending{
			node:   n.Children[i],
			rect:   rel.Translate(origin.X, origin.Y),
			parent: idx,
		})
	}
}

// isAncestor reports whether n already appears on the arena chain starting
// at idx.
func (w *walker) isAncestor(idx int, n *Node) bool {
	for idx >= 0 {
		if w.arena[idx].node == n {
			return true
		}
		idx = w.arena[idx].parent
	}
	return false
}

// Engine keeps the most recent layout generation for hosts that query
// layouts by node id after each tree or viewport change. Each call to
// ComputeLayout replaces both tables at once; readers never observe a
// partially built generation.
type Engine struct {
	opts    []Option
	current atomic.Pointer[Result]
}

// NewEngine creates an Engine with empty tables.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{opts: opts}
	e.current.Store(newResult(Viewport{}))
	return e
}

// ComputeLayout recomputes the whole tree and publishes the new tables.
// A nil root clears them.
func (e *Engine) ComputeLayout(root *Node, viewportWidth, viewportHeight int, responsive bool) *Result {
	res := Compute(root, Viewport{Width: viewportWidth, Height: viewportHeight, Responsive: responsive}, e.opts...)
	e.current.Store(res)
	return res
}

// Result returns the current generation.
func (e *Engine) Result() *Result {
	return e.current.Load()
}

// Layout returns the computed layout of a node from the current generation.
func (e *Engine) Layout(id string) (ComputedLayout, bool) {
	return e.Result().Layout(id)
}

// Diagnostics returns the warnings of a node from the current generation.
func (e *Engine) Diagnostics(id string) (Diagnostic, bool) {
	return e.Result().Diagnostics(id)
}

// NodesWithWarnings lists the nodes with warnings in the current generation.
func (e *Engine) NodesWithWarnings() []string {
	return e.Result().NodesWithWarnings()
}
