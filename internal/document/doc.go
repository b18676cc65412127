// Package document decodes design trees from TOML, YAML or JSON files.
//
// A document is one node table with optional layout, content and children:
//
//	id = "root"
//	kind = "screen"
//
//	[layout]
//	direction = "column"
//	padding = [1, 2]
//
//	[[children]]
//	kind = "button"
//	width = "auto"
//	content = { label = "OK" }
//
// Widths and heights are a cell count, "auto" or "fill"; padding and margin
// are a number or a list of 1, 2 or 4 numbers in CSS order.
package document
