package boxgrid

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Lighting is an ambient term plus one directional light.
type Lighting struct {
	Ambient     float64
	Directional float64
	Direction   mgl64.Vec3 // towards the light, unit length
}

// Shade scales base by the light reaching a surface with the given world
// normal.
func (l Lighting) Shade(base color.RGBA, normal mgl64.Vec3) color.RGBA {
	diffuse := normal.Dot(l.Direction)
	if diffuse < 0 {
		diffuse = 0
	}
	intensity := l.Ambient + l.Directional*diffuse
	if intensity > 1 {
		intensity = 1
	}
	if intensity < 0 {
		intensity = 0
	}
	return color.RGBA{
		R: uint8(float64(base.R) * intensity),
		G: uint8(float64(base.G) * intensity),
		B: uint8(float64(base.B) * intensity),
		A: base.A,
	}
}

// ScreenPolygon is a projected, shaded face ready to fill.
type ScreenPolygon struct {
	X, Y  []float32
	Col   color.RGBA
	Depth float64 // mean distance in front of the eye
	BoxID int
}

// Polygons projects every front facing box face onto a width x height
// viewport, ordered far to near for painting.
func (s *Scene) Polygons(width, height int) []ScreenPolygon {
	if width <= 0 || height <= 0 {
		return nil
	}

	view := s.camera.View()
	proj := s.camera.Projection()
	w, h := float64(width), float64(height)

	polys := make([]ScreenPolygon, 0, len(s.boxes)*3)
	for _, box := range s.boxes {
		model := box.ModelMatrix()
		modelView := view.Mul4(model)
		s.viewPoints = transformPoints(modelView, box.geometry.Points(), s.viewPoints)

		for i := range box.geometry.faces {
			face := &box.geometry.faces[i]
			if poly, ok := s.projectFace(face, box, model, proj, w, h); ok {
				polys = append(polys, poly)
			}
		}
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
	return polys
}

func (s *Scene) projectFace(face *Face, box *Box, model, proj mgl64.Mat4, w, h float64) (ScreenPolygon, bool) {
	points := s.viewPoints

	// the eye sits at the origin of view space looking down -Z
	p0 := points[face.Indices[0]]
	viewNormal := points[face.Indices[1]].Sub(p0).Cross(points[face.Indices[2]].Sub(p0))
	if viewNormal.Dot(p0) >= 0 {
		return ScreenPolygon{}, false
	}

	poly := ScreenPolygon{
		X:     make([]float32, len(face.Indices)),
		Y:     make([]float32, len(face.Indices)),
		BoxID: box.ID,
	}
	var depth float64
	for i, idx := range face.Indices {
		p := points[idx]
		if -p[2] < s.camera.Near {
			return ScreenPolygon{}, false
		}
		ndc := mgl64.TransformCoordinate(p, proj)
		poly.X[i] = float32((ndc[0] + 1) / 2 * w)
		poly.Y[i] = float32((1 - ndc[1]) / 2 * h)
		depth += -p[2]
	}
	poly.Depth = depth / float64(len(face.Indices))

	worldNormal := model.Mat3().Mul3x1(face.Normal)
	poly.Col = s.lighting.Shade(box.Material.Col, worldNormal)
	return poly, true
}
