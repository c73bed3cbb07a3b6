package boxgrid

// Pointer holds the last cursor position in normalized device coordinates.
// Later updates overwrite earlier ones; nothing is queued.
type Pointer struct {
	x, y float64
	set  bool
}

// SetPixels records a cursor position given in pixels from the top-left of a
// viewport of width x height. Empty viewports are ignored.
func (p *Pointer) SetPixels(px, py float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.SetNDC(
		(px/float64(width))*2-1,
		-(py/float64(height))*2+1,
	)
}

func (p *Pointer) SetNDC(x, y float64) {
	p.x, p.y = x, y
	p.set = true
}

// Clear forgets the position, e.g. when the cursor leaves the window.
func (p *Pointer) Clear() {
	p.set = false
}

func (p *Pointer) NDC() (x, y float64, ok bool) {
	return p.x, p.y, p.set
}
