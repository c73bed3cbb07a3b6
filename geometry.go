package boxgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

// Geometry is the shape shared by every box. It is built once and must not be
// modified after Finished; appearance lives in each box's Material.
type Geometry struct {
	mesh     *Mesh
	faces    []Face
	radius   float64
	extents  mgl64.Vec3
	finished bool
}

func NewGeometry() *Geometry {
	return &Geometry{mesh: NewMesh()}
}

// NewBoxGeometry builds an axis aligned cube with edge length size, centred on
// the origin, with outward facing normals.
func NewBoxGeometry(size float64) *Geometry {
	s := size / 2
	corners := []mgl64.Vec3{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, // Z- (0-3)
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}, // Z+ (4-7)
	}

	faces := [][]int{
		{4, 5, 6, 7}, // Z+
		{0, 3, 2, 1}, // Z-
		{1, 2, 6, 5}, // X+
		{0, 4, 7, 3}, // X-
		{3, 7, 6, 2}, // Y+
		{0, 1, 5, 4}, // Y-
	}

	g := NewGeometry()
	for _, fd := range faces {
		pnts := make([]mgl64.Vec3, len(fd))
		for i, idx := range fd {
			pnts[i] = corners[idx]
		}
		g.AddFace(pnts, FACE_NORMAL)
	}
	g.Finished(0)
	return g
}

// AddFace appends a convex polygon. Degenerate polygons are dropped.
func (g *Geometry) AddFace(points []mgl64.Vec3, reverse int) {
	if g.finished {
		return
	}
	if f, ok := newFace(g.mesh, points, reverse); ok {
		g.faces = append(g.faces, f)
	}
}

// Finished freezes the geometry. When size is positive the shape is centred
// and scaled so its largest extent equals size.
func (g *Geometry) Finished(size float64) {
	if g.finished {
		return
	}
	if size > 0 {
		g.centreAndScale(size)
	}
	g.calcSize()
	g.finished = true

	log.Debugf("Geometry: %d points, %d faces, extents %.2f x %.2f x %.2f",
		g.mesh.PointCount(), len(g.faces), g.extents[0], g.extents[1], g.extents[2])
}

func (g *Geometry) centreAndScale(size float64) {
	points := g.mesh.Points
	if len(points) == 0 {
		return
	}

	minP, maxP := bounds(points)
	centre := minP.Add(maxP).Mul(0.5)
	ext := maxP.Sub(minP)
	largest := math.Max(ext[0], math.Max(ext[1], ext[2]))
	scale := 1.0
	if largest > 0 {
		scale = size / largest
	}

	for i := range points {
		points[i] = points[i].Sub(centre).Mul(scale)
	}
	g.mesh.reindex()
	for i := range g.faces {
		g.faces[i].createNormal(points)
	}
}

func (g *Geometry) calcSize() {
	points := g.mesh.Points
	if len(points) == 0 {
		g.extents = mgl64.Vec3{}
		g.radius = 0
		return
	}

	minP, maxP := bounds(points)
	g.extents = maxP.Sub(minP)

	g.radius = 0
	for _, p := range points {
		g.radius = math.Max(g.radius, p.Len())
	}
}

func bounds(points []mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < minP[axis] {
				minP[axis] = p[axis]
			} else if p[axis] > maxP[axis] {
				maxP[axis] = p[axis]
			}
		}
	}
	return minP, maxP
}

// Points returns the shared vertex list. Callers must not modify it.
func (g *Geometry) Points() []mgl64.Vec3 {
	return g.mesh.Points
}

// Faces returns the shared face list. Callers must not modify it.
func (g *Geometry) Faces() []Face {
	return g.faces
}

func (g *Geometry) FaceCount() int {
	return len(g.faces)
}

// Radius is the distance from the local origin to the furthest point.
func (g *Geometry) Radius() float64 {
	return g.radius
}

func (g *Geometry) Extents() mgl64.Vec3 {
	return g.extents
}
