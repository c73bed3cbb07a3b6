package boxgrid

import "github.com/go-gl/mathgl/mgl64"

// Face is a convex polygon referencing points of its owning Mesh.
type Face struct {
	Indices []int
	Normal  mgl64.Vec3
}

const (
	FACE_NORMAL  = 0
	FACE_REVERSE = 1
)

func newFace(mesh *Mesh, points []mgl64.Vec3, reverse int) (Face, bool) {
	indices := make([]int, 0, len(points))
	for _, p := range points {
		idx := mesh.AddPoint(p)
		// DXF triangles repeat their last corner
		if len(indices) > 0 && (indices[len(indices)-1] == idx || indices[0] == idx) {
			continue
		}
		indices = append(indices, idx)
	}
	if len(indices) < 3 {
		return Face{}, false
	}

	if reverse == FACE_REVERSE {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	f := Face{Indices: indices}
	f.createNormal(mesh.Points)
	return f, true
}

func (f *Face) createNormal(points []mgl64.Vec3) {
	if len(f.Indices) < 3 {
		f.Normal = mgl64.Vec3{0, 0, 1}
		return
	}

	p0 := points[f.Indices[0]]
	u := points[f.Indices[1]].Sub(p0)
	v := points[f.Indices[2]].Sub(p0)

	n := u.Cross(v)
	if n.Len() == 0 {
		f.Normal = mgl64.Vec3{0, 0, 1}
		return
	}
	f.Normal = n.Normalize()
}

// MidPoint averages the face corners taken from points.
func (f *Face) MidPoint(points []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(f.Indices) == 0 {
		return sum
	}
	for _, idx := range f.Indices {
		sum = sum.Add(points[idx])
	}
	return sum.Mul(1 / float64(len(f.Indices)))
}
