// Package layout implements a pure-Go box-layout engine for terminal UI designs.
//
// Given a tree of [Node] descriptors and a character grid, it computes an
// absolute [Rect] for every node together with its content, padding and
// margin boxes. Containers place their children with one of three
// strategies: flow (row/column with wrap, justify and align), grid (uniform
// cells) or absolute (explicit offsets). "auto" sizes are resolved from
// content or children by the intrinsic size resolver before placement.
//
// Geometric problems (overflow, negative space, rules the engine cannot
// honor) never fail the computation; they are collected as [Diagnostic]
// warnings next to the layout table.
//
// The main entry point is [Compute], a pure function returning a [Result].
// [Engine] wraps it for hosts that want to query the last computed
// generation by node id.
package layout
