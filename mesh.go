package boxgrid

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a vertex list with duplicate points folded onto a single index.
type Mesh struct {
	Points     []mgl64.Vec3
	pointIndex map[mgl64.Vec3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     make([]mgl64.Vec3, 0, 8),
		pointIndex: make(map[mgl64.Vec3]int),
	}
}

// AddPoint returns the index of point, adding it if it is not already present.
func (m *Mesh) AddPoint(point mgl64.Vec3) int {
	if index, found := m.pointIndex[point]; found {
		return index
	}

	m.Points = append(m.Points, point)
	newIndex := len(m.Points) - 1
	m.pointIndex[point] = newIndex
	return newIndex
}

func (m *Mesh) PointCount() int {
	return len(m.Points)
}

// Copy must also duplicate the pointIndex map.
func (m *Mesh) Copy() *Mesh {
	newPointIndex := make(map[mgl64.Vec3]int, len(m.pointIndex))
	for key, value := range m.pointIndex {
		newPointIndex[key] = value
	}

	points := make([]mgl64.Vec3, len(m.Points))
	copy(points, m.Points)

	return &Mesh{
		Points:     points,
		pointIndex: newPointIndex,
	}
}

// reindex rebuilds the lookup map after the points have been moved in place.
func (m *Mesh) reindex() {
	m.pointIndex = make(map[mgl64.Vec3]int, len(m.Points))
	for i, p := range m.Points {
		m.pointIndex[p] = i
	}
}
