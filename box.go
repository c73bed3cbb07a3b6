package boxgrid

import "github.com/go-gl/mathgl/mgl64"

// Box is one grid cell. The geometry is shared with every other box; the
// material and transform belong to this box alone.
type Box struct {
	ID        int
	Position  mgl64.Vec3
	RotationY float64
	Material  *Material

	geometry *Geometry
}

func NewBox(id int, geometry *Geometry, position mgl64.Vec3) *Box {
	return &Box{
		ID:       id,
		Position: position,
		Material: &Material{},
		geometry: geometry,
	}
}

func (b *Box) Geometry() *Geometry {
	return b.geometry
}

// RotateY adds amount radians to the box's spin.
func (b *Box) RotateY(amount float64) {
	b.RotationY += amount
}

// ModelMatrix maps geometry space to world space.
func (b *Box) ModelMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(b.Position[0], b.Position[1], b.Position[2]).
		Mul4(mgl64.HomogRotate3DY(b.RotationY))
}

// WorldPoints transforms the shared points into dst, growing it as needed.
func (b *Box) WorldPoints(dst []mgl64.Vec3) []mgl64.Vec3 {
	return transformPoints(b.ModelMatrix(), b.geometry.Points(), dst)
}

func transformPoints(m mgl64.Mat4, src, dst []mgl64.Vec3) []mgl64.Vec3 {
	dst = dst[:0]
	for _, p := range src {
		dst = append(dst, mgl64.TransformCoordinate(p, m))
	}
	return dst
}
