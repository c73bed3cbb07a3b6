package boxgrid

import "testing"

func TestPointerSetPixels(t *testing.T) {
	testCases := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"top left", 0, 0, -1, 1},
		{"bottom right", 800, 600, 1, -1},
		{"centre", 400, 300, 0, 0},
		{"quarter", 200, 450, -0.5, -0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Pointer
			p.SetPixels(tc.px, tc.py, 800, 600)
			x, y, ok := p.NDC()
			if !ok {
				t.Fatal("pointer not set")
			}
			if !almostEqual(x, tc.wantX) || !almostEqual(y, tc.wantY) {
				t.Errorf("NDC = (%f, %f), want (%f, %f)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPointerLastValueWins(t *testing.T) {
	var p Pointer
	p.SetPixels(0, 0, 100, 100)
	p.SetPixels(50, 50, 100, 100)
	x, y, _ := p.NDC()
	if !almostEqual(x, 0) || !almostEqual(y, 0) {
		t.Errorf("NDC = (%f, %f), want (0, 0)", x, y)
	}
}

func TestPointerIgnoresEmptyViewport(t *testing.T) {
	var p Pointer
	p.SetPixels(10, 10, 0, 100)
	if _, _, ok := p.NDC(); ok {
		t.Fatal("zero width viewport set the pointer")
	}

	p.SetNDC(0.25, 0.5)
	p.SetPixels(10, 10, 100, -1)
	x, y, ok := p.NDC()
	if !ok || x != 0.25 || y != 0.5 {
		t.Errorf("NDC = (%f, %f, %v), want (0.25, 0.5, true)", x, y, ok)
	}
}

func TestPointerClear(t *testing.T) {
	var p Pointer
	p.SetNDC(0, 0)
	p.Clear()
	if _, _, ok := p.NDC(); ok {
		t.Fatal("pointer still set after Clear")
	}
}
