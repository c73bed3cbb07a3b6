package boxgrid

import "image/color"

// ColorState is the highlight state a box is drawn in.
type ColorState int

const (
	ColorDefault ColorState = iota
	ColorNeighbor
	ColorActive
)

func (s ColorState) String() string {
	switch s {
	case ColorDefault:
		return "default"
	case ColorNeighbor:
		return "neighbor"
	case ColorActive:
		return "active"
	}
	return "unknown"
}

// Palette maps each ColorState to the colour it is drawn with.
type Palette struct {
	Default  color.RGBA
	Neighbor color.RGBA
	Active   color.RGBA
}

func (p Palette) Color(s ColorState) color.RGBA {
	switch s {
	case ColorNeighbor:
		return p.Neighbor
	case ColorActive:
		return p.Active
	}
	return p.Default
}

// ColorFromHex converts 0xRRGGBB into an opaque colour.
func ColorFromHex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Material is the per-box appearance. Every box owns its own.
type Material struct {
	State ColorState
	Col   color.RGBA
}

func (m *Material) Set(s ColorState, p Palette) {
	m.State = s
	m.Col = p.Color(s)
}
