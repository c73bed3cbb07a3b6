package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PolygonBatcher collects solid polygons and outlines into as few
// DrawTriangles calls as the uint16 index range allows.
type PolygonBatcher struct {
	target   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	draws    int
}

func NewPolygonBatcher() *PolygonBatcher {
	return &PolygonBatcher{
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 6144),
	}
}

// Begin starts a batch that will be drawn onto target.
func (b *PolygonBatcher) Begin(target *ebiten.Image) {
	b.target = target
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.draws = 0
}

// reserve flushes first when n more vertices would overflow the index type.
func (b *PolygonBatcher) reserve(n int) {
	if len(b.vertices)+n > math.MaxUint16 {
		b.Flush()
	}
}

func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 || len(xp) != len(yp) {
		return
	}
	b.reserve(len(xp))

	cr, cg, cb, ca := colorComponents(clr)
	base := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	b.indices = fanIndices(b.indices, base, len(xp))
}

func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	b.addOutline(xp, yp, strokeClr, strokeWidth)
}

func (b *PolygonBatcher) addOutline(xp, yp []float32, clr color.RGBA, strokeWidth float32) {
	if len(xp) < 2 || len(xp) != len(yp) {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	if len(vs) == 0 {
		return
	}
	b.reserve(len(vs))

	cr, cg, cb, ca := colorComponents(clr)
	base := uint16(len(b.vertices))
	for _, v := range vs {
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
		b.vertices = append(b.vertices, v)
	}
	for _, idx := range is {
		b.indices = append(b.indices, base+idx)
	}
}

// Flush draws everything collected so far.
func (b *PolygonBatcher) Flush() {
	if b.target != nil && len(b.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		b.target.DrawTriangles(b.vertices, b.indices, whiteSource(), op)
		b.draws++
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *PolygonBatcher) VertexCount() int { return len(b.vertices) }
func (b *PolygonBatcher) IndexCount() int  { return len(b.indices) }

// Draws is the number of DrawTriangles calls since Begin.
func (b *PolygonBatcher) Draws() int { return b.draws }
