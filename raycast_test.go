package boxgrid

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayIntersectsPolygon(t *testing.T) {
	square := []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}

	testCases := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float64
	}{
		{"straight on", Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{0, 0, -1}}, true, 5},
		{"from behind", Ray{Origin: mgl64.Vec3{0.5, 0.5, -2}, Dir: mgl64.Vec3{0, 0, 1}}, true, 2},
		{"outside the square", Ray{Origin: mgl64.Vec3{2, 0, 5}, Dir: mgl64.Vec3{0, 0, -1}}, false, 0},
		{"pointing away", Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{0, 0, 1}}, false, 0},
		{"parallel", Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{1, 0, 0}}, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RayIntersectsPolygon(tc.ray, square)
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v", ok, tc.hit)
			}
			if ok && !almostEqual(got, tc.wantT) {
				t.Errorf("t = %f, want %f", got, tc.wantT)
			}
		})
	}
}

func TestRayIntersectsPolygonTooFewPoints(t *testing.T) {
	ray := Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{0, 0, -1}}
	if _, ok := RayIntersectsPolygon(ray, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}); ok {
		t.Fatal("two points cannot be hit")
	}
}

func TestRaycasterPicksNearestBox(t *testing.T) {
	geom := NewBoxGeometry(1)
	near := NewBox(0, geom, mgl64.Vec3{0, 0, 2})
	far := NewBox(1, geom, mgl64.Vec3{0, 0, -2})
	aside := NewBox(2, geom, mgl64.Vec3{5, 0, 3})

	var rc Raycaster
	ray := Ray{Origin: mgl64.Vec3{0, 0, 10}, Dir: mgl64.Vec3{0, 0, -1}}

	for _, order := range [][]*Box{{near, far, aside}, {far, aside, near}} {
		hit, ok := rc.Intersect(ray, order)
		if !ok {
			t.Fatal("expected a hit")
		}
		if hit.Box != near {
			t.Fatalf("hit box %d, want %d", hit.Box.ID, near.ID)
		}
		if !almostEqual(hit.Distance, 7.5) {
			t.Errorf("distance = %f, want 7.5", hit.Distance)
		}
		if !almostEqual(hit.Point[2], 2.5) {
			t.Errorf("hit point z = %f, want 2.5", hit.Point[2])
		}
	}
}

func TestRaycasterFollowsRotation(t *testing.T) {
	geom := NewBoxGeometry(2)
	box := NewBox(0, geom, mgl64.Vec3{})
	// a ray grazing x = 1.2 misses the cube but hits it once turned 45 degrees
	ray := Ray{Origin: mgl64.Vec3{1.2, 0, 10}, Dir: mgl64.Vec3{0, 0, -1}}

	var rc Raycaster
	if _, ok := rc.Intersect(ray, []*Box{box}); ok {
		t.Fatal("unrotated cube should be missed")
	}
	box.RotateY(mgl64.DegToRad(45))
	if _, ok := rc.Intersect(ray, []*Box{box}); !ok {
		t.Fatal("rotated cube should be hit")
	}
}

func TestRaycasterNoBoxes(t *testing.T) {
	var rc Raycaster
	ray := Ray{Origin: mgl64.Vec3{0, 0, 10}, Dir: mgl64.Vec3{0, 0, -1}}
	if _, ok := rc.Intersect(ray, nil); ok {
		t.Fatal("hit with no boxes")
	}
}
