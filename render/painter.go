package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/boxgrid"
)

// polygonSink receives projected faces in paint order.
type polygonSink interface {
	AddPolygon(xp, yp []float32, clr color.RGBA)
	AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32)
}

// Painter fills a scene's projected faces back to front.
type Painter struct {
	batcher      *PolygonBatcher
	outline      bool
	outlineColor color.RGBA
}

func NewPainter(outline bool) *Painter {
	return &Painter{
		batcher:      NewPolygonBatcher(),
		outline:      outline,
		outlineColor: color.RGBA{R: 50, G: 50, B: 50, A: 25},
	}
}

func (p *Painter) Paint(screen *ebiten.Image, scene *boxgrid.Scene) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	p.batcher.Begin(screen)
	p.queue(p.batcher, scene.Polygons(w, h))
	p.batcher.Flush()
}

func (p *Painter) queue(sink polygonSink, polys []boxgrid.ScreenPolygon) {
	for _, poly := range polys {
		if p.outline {
			sink.AddPolygonAndOutline(poly.X, poly.Y, poly.Col, p.outlineColor, 1.0)
		} else {
			sink.AddPolygon(poly.X, poly.Y, poly.Col)
		}
	}
}
