package boxgrid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

// Scene owns the grid of boxes and advances the hover highlight once per
// tick.
type Scene struct {
	grid     Grid
	geometry *Geometry
	boxes    []*Box
	camera   *Camera
	pointer  Pointer
	palette  Palette
	lighting Lighting

	ambientSpin float64
	activeSpin  float64

	raycaster  Raycaster
	hit        Hit
	hasHit     bool
	viewPoints []mgl64.Vec3
}

// NewScene builds the grid for a viewport of the given aspect ratio.
func NewScene(cfg Config, aspect float64) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("Initializing scene...")
	grid := NewGrid(cfg.Grid.Columns, aspect, cfg.Grid.Span, cfg.Grid.Margin)

	geometry, err := loadGeometry(cfg.Geometry, grid.BoxSize)
	if err != nil {
		return nil, err
	}

	rotations, err := NewRotationSource(cfg.Grid.Rotation, cfg.Grid.Seed)
	if err != nil {
		return nil, err
	}

	s := NewSceneWith(grid, geometry, rotations, cfg, aspect)
	log.Info("Initialization Complete.")
	return s, nil
}

// NewSceneWith assembles a scene from an already sized grid and geometry.
func NewSceneWith(grid Grid, geometry *Geometry, rotations RotationSource, cfg Config, aspect float64) *Scene {
	palette := cfg.Colors.Palette()
	return &Scene{
		grid:        grid,
		geometry:    geometry,
		boxes:       BuildBoxes(grid, geometry, rotations, palette),
		camera:      NewCamera(cfg.Camera, aspect),
		palette:     palette,
		lighting:    cfg.Lights.Lighting(),
		ambientSpin: cfg.Motion.AmbientSpin,
		activeSpin:  cfg.Motion.ActiveSpin,
	}
}

func loadGeometry(cfg GeometryConfig, size float64) (*Geometry, error) {
	if cfg.File == "" {
		return NewBoxGeometry(size), nil
	}

	reverse := FACE_NORMAL
	if cfg.Reverse {
		reverse = FACE_REVERSE
	}
	geom, err := LoadGeometryFromDXFFile(cfg.File, reverse, size)
	if err != nil {
		return nil, fmt.Errorf("loading geometry: %w", err)
	}
	return geom, nil
}

func (s *Scene) Grid() Grid             { return s.grid }
func (s *Scene) Boxes() []*Box          { return s.boxes }
func (s *Scene) Camera() *Camera        { return s.camera }
func (s *Scene) Pointer() *Pointer      { return &s.pointer }
func (s *Scene) Geometry() *Geometry    { return s.geometry }
func (s *Scene) Palette() Palette       { return s.palette }
func (s *Scene) Lighting() Lighting     { return s.lighting }
func (s *Scene) Hit() (Hit, bool)       { return s.hit, s.hasHit }
func (s *Scene) SetCamera(c *Camera)    { s.camera = c }
func (s *Scene) SetLighting(l Lighting) { s.lighting = l }

// Tick advances the scene by dt seconds: ambient spin, colour reset, pick
// and highlight.
func (s *Scene) Tick(dt float64) {
	for _, box := range s.boxes {
		box.RotateY(s.ambientSpin * dt)
	}

	s.hit, s.hasHit = s.pick()
	s.applyHighlight()
	if s.hasHit {
		s.hit.Box.RotateY(s.activeSpin * dt)
	}
}

func (s *Scene) pick() (Hit, bool) {
	x, y, ok := s.pointer.NDC()
	if !ok || len(s.boxes) == 0 {
		return Hit{}, false
	}
	return s.raycaster.Intersect(s.camera.Ray(x, y), s.boxes)
}

func (s *Scene) applyHighlight() {
	for _, box := range s.boxes {
		box.Material.Set(ColorDefault, s.palette)
	}
	if !s.hasHit {
		return
	}
	s.highlight(s.hit.Box.ID)
}

// highlight colours the neighbour columns of center and marks center active.
func (s *Scene) highlight(center int) {
	if !s.grid.Contains(center) {
		return
	}
	for _, id := range s.grid.NeighborIDs(center) {
		s.boxes[id].Material.Set(ColorNeighbor, s.palette)
	}
	s.boxes[center].Material.Set(ColorActive, s.palette)
}
