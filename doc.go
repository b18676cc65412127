// Package boxlayout computes cell-grid layouts for terminal UI designs.
//
// Callers describe a design as a tree of Nodes, each with a kind, a layout
// declaration and width/height requests, and receive an absolute rectangle
// plus content, padding and margin boxes for every node. Geometric problems
// (overflow, negative space, unsatisfiable declarations, cycles) are
// reported as per-node warnings; a computation never fails.
//
// Compute is a pure function and is safe to call from many goroutines.
// Engine keeps the latest generation for hosts that query by node id.
package boxlayout
