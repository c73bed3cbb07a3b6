package boxgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3 // unit length
}

func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is the nearest box crossed by a ray.
type Hit struct {
	Box      *Box
	Distance float64
	Point    mgl64.Vec3
}

// Raycaster intersects rays with boxes, reusing its scratch buffer between
// calls.
type Raycaster struct {
	worldPoints []mgl64.Vec3
	facePoints  []mgl64.Vec3
}

// Intersect returns the nearest box the ray enters, if any.
func (rc *Raycaster) Intersect(ray Ray, boxes []*Box) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat64}
	found := false

	for _, box := range boxes {
		if !ray.nearSphere(box.Position, box.geometry.Radius(), best.Distance) {
			continue
		}

		rc.worldPoints = box.WorldPoints(rc.worldPoints)
		for i := range box.geometry.faces {
			face := &box.geometry.faces[i]
			rc.facePoints = rc.facePoints[:0]
			for _, idx := range face.Indices {
				rc.facePoints = append(rc.facePoints, rc.worldPoints[idx])
			}

			t, ok := RayIntersectsPolygon(ray, rc.facePoints)
			if ok && t < best.Distance {
				best = Hit{Box: box, Distance: t, Point: ray.At(t)}
				found = true
			}
		}
	}
	return best, found
}

// nearSphere reports whether the ray passes within radius of centre before
// maxT.
func (r Ray) nearSphere(centre mgl64.Vec3, radius, maxT float64) bool {
	toCentre := centre.Sub(r.Origin)
	along := toCentre.Dot(r.Dir)
	if along+radius < 0 || along-radius > maxT {
		return false
	}
	closest := toCentre.Sub(r.Dir.Mul(along))
	return closest.Len() <= radius+epsilon
}

// RayIntersectsPolygon returns the ray parameter where the ray crosses a
// planar convex polygon.
func RayIntersectsPolygon(ray Ray, polygon []mgl64.Vec3) (float64, bool) {
	if len(polygon) < 3 {
		return 0, false
	}

	p0 := polygon[0]
	planeNormal := polygon[1].Sub(p0).Cross(polygon[2].Sub(p0))

	dotNormalDir := planeNormal.Dot(ray.Dir)
	if math.Abs(dotNormalDir) < epsilon {
		return 0, false
	}

	t := planeNormal.Dot(p0.Sub(ray.Origin)) / dotNormalDir
	if t < epsilon {
		return 0, false
	}

	if !isPointInPolygon(ray.At(t), polygon, planeNormal) {
		return 0, false
	}
	return t, true
}

// isPointInPolygon checks a point already on the polygon's plane by
// projecting onto the axis plane the polygon is most parallel to and
// counting edge crossings.
func isPointInPolygon(point mgl64.Vec3, polygon []mgl64.Vec3, normal mgl64.Vec3) bool {
	absX := math.Abs(normal[0])
	absY := math.Abs(normal[1])
	absZ := math.Abs(normal[2])

	var u, v int
	switch {
	case absX > absY && absX > absZ:
		u, v = 1, 2
	case absY > absX && absY > absZ:
		u, v = 0, 2
	default:
		u, v = 0, 1
	}

	px, py := point[u], point[v]
	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		if (a[v] > py) != (b[v] > py) {
			xIntersection := (b[u]-a[u])*(py-a[v])/(b[v]-a[v]) + a[u]
			if px < xIntersection {
				inside = !inside
			}
		}
	}
	return inside
}
