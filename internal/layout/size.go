package layout

import "strconv"

// Unit specifies how a Size request is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Resolved from content or children
	UnitFixed             // Absolute terminal cells
	UnitFill              // Whatever space the parent has left
)

// Size is a width or height request: a fixed cell count, "auto" or "fill".
// The zero value is Auto.
type Size struct {
	Amount int
	Unit   Unit
}

// Auto returns a Size resolved by the intrinsic size resolver.
func Auto() Size {
	return Size{Unit: UnitAuto}
}

// Fixed returns a Size of exactly n terminal cells.
func Fixed(n int) Size {
	return Size{Amount: n, Unit: UnitFixed}
}

// Fill returns a Size that consumes the space left by its siblings.
func Fill() Size {
	return Size{Unit: UnitFill}
}

// IsAuto returns true if this size is computed from content.
func (s Size) IsAuto() bool {
	return s.Unit == UnitAuto
}

// IsFixed returns true if this size is a literal cell count.
func (s Size) IsFixed() bool {
	return s.Unit == UnitFixed
}

// IsFill returns true if this size takes the remaining space.
func (s Size) IsFill() bool {
	return s.Unit == UnitFill
}

// Resolve returns the fixed amount, or fallback for auto and fill.
func (s Size) Resolve(fallback int) int {
	if s.Unit == UnitFixed {
		return s.Amount
	}
	return fallback
}

// String returns "auto", "fill" or the cell count.
func (s Size) String() string {
	switch s.Unit {
	case UnitFixed:
		return strconv.Itoa(s.Amount)
	case UnitFill:
		return "fill"
	default:
		return "auto"
	}
}
