package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteSource is the 1x1 texel every solid polygon samples from.
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

func colorComponents(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}

// fanIndices triangulates a convex polygon starting at base.
func fanIndices(indices []uint16, base uint16, n int) []uint16 {
	for i := 2; i < n; i++ {
		indices = append(indices, base, base+uint16(i-1), base+uint16(i))
	}
	return indices
}
