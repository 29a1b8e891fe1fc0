package game

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/steverpalmer/first-person-maze/internal/view"
)

// Renderer submits view primitives to an ebiten image. It is the game's
// stand-in for the GPU: for the shaded view it runs the vertex stage on the
// CPU (apply the frame transform, clip against the near plane, perspective
// divide) and leaves texture sampling to DrawTriangles.
type Renderer struct {
	textures *Textures
}

var (
	skyColor    = color.RGBA{R: 102, G: 166, B: 204, A: 255} // matches the original 0.4/0.65/0.8 clear
	planBGColor = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	lineColor   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

func NewRenderer(assetsDir string) *Renderer {
	return &Renderer{textures: NewTextures(assetsDir)}
}

// DrawPlan paints the top-down view: atlas tiles on a centred grid.
// Maze y grows northward, screen y southward, so rows flip.
func (r *Renderer) DrawPlan(dst *ebiten.Image, sprites []view.Sprite, mazeW, mazeH int) {
	dst.Fill(planBGColor)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scale := minf(float64(w)/float64(mazeW*tileSize), float64(h)/float64(mazeH*tileSize))
	tilePx := float64(tileSize) * scale
	offX := (float64(w) - tilePx*float64(mazeW)) / 2
	offY := (float64(h) - tilePx*float64(mazeH)) / 2

	for _, sp := range sprites {
		img := r.textures.Tile(sp.Atlas, sp.Index)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			offX+tilePx*float64(sp.Cell.X),
			offY+tilePx*float64(mazeH-1-sp.Cell.Y),
		)
		dst.DrawImage(img, op)
	}
}

// DrawLines paints the tunnel view's wall segments on black.
func (r *Renderer) DrawLines(dst *ebiten.Image, lines []view.Line) {
	dst.Fill(color.Black)
	for _, l := range lines {
		vector.StrokeLine(dst, l.A[0], l.A[1], l.B[0], l.B[1], 1, lineColor, true)
	}
}

// DrawShaded paints the textured view: sky clear, then the scene's quads
// transformed by the camera matrix, far quads first.
func (r *Renderer) DrawShaded(dst *ebiten.Image, scene *view.Scene, cam view.Camera) {
	dst.Fill(skyColor)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	transform := cam.Transform(float32(w) / float32(h))
	eye := cam.Eye()

	r.drawQuad(dst, scene.Ground, transform, eye, w, h)

	// Painter's order for the upright panels: farthest first.
	panels := make([]view.TexturedQuad, 0, len(scene.Walls)+1)
	panels = append(panels, scene.Walls...)
	panels = append(panels, scene.Exit)
	sort.SliceStable(panels, func(i, j int) bool {
		return quadDistSq(panels[i], eye) > quadDistSq(panels[j], eye)
	})
	for _, q := range panels {
		r.drawQuad(dst, q, transform, eye, w, h)
	}
}

func quadDistSq(q view.TexturedQuad, eye mgl32.Vec3) float32 {
	c := q.V[0].Pos.Add(q.V[1].Pos).Add(q.V[2].Pos).Add(q.V[3].Pos).Mul(0.25)
	d := c.Sub(eye)
	return d.Dot(d)
}

// clipVertex is a vertex mid-pipeline: clip-space position plus the
// attributes that survive to rasterization.
type clipVertex struct {
	pos   mgl32.Vec4
	uv    mgl32.Vec2
	shade float32
}

func (r *Renderer) drawQuad(dst *ebiten.Image, q view.TexturedQuad, transform mgl32.Mat4, eye mgl32.Vec3, w, h int) {
	tex := r.textures.Texture(q.Tex)
	if tex == nil {
		return
	}
	poly := make([]clipVertex, 0, 8)
	for _, v := range q.V {
		poly = append(poly, clipVertex{
			pos:   transform.Mul4x1(v.Pos.Vec4(1)),
			uv:    v.UV,
			shade: shadeFor(v.Pos, eye),
		})
	}
	poly = clipNear(poly)
	if len(poly) < 3 {
		return
	}

	tw := float32(tex.Bounds().Dx())
	th := float32(tex.Bounds().Dy())
	vs := make([]ebiten.Vertex, len(poly))
	for i, cv := range poly {
		invW := 1 / cv.pos.W()
		vs[i] = ebiten.Vertex{
			DstX:   (cv.pos.X()*invW + 1) / 2 * float32(w),
			DstY:   (1 - cv.pos.Y()*invW) / 2 * float32(h),
			SrcX:   cv.uv[0] * tw,
			SrcY:   cv.uv[1] * th,
			ColorR: cv.shade,
			ColorG: cv.shade,
			ColorB: cv.shade,
			ColorA: 1,
		}
	}
	is := make([]uint16, 0, (len(poly)-2)*3)
	for i := 2; i < len(poly); i++ {
		is = append(is, 0, uint16(i-1), uint16(i))
	}
	op := &ebiten.DrawTrianglesOptions{Address: ebiten.AddressRepeat}
	dst.DrawTriangles(vs, is, tex, op)
}

// shadeFor is the lighting stage: full brightness up close, dimming with
// distance so depth reads even on a flat texture.
func shadeFor(pos, eye mgl32.Vec3) float32 {
	d := pos.Sub(eye).Len()
	s := 1.1 - d*0.07
	if s > 1 {
		return 1
	}
	if s < 0.3 {
		return 0.3
	}
	return s
}

// clipNear clips a convex polygon in clip space against the near plane
// (z + w > 0), interpolating attributes at the crossings. Without this,
// geometry behind the camera folds over the whole frame.
func clipNear(in []clipVertex) []clipVertex {
	const boundary = 1e-5
	out := make([]clipVertex, 0, len(in)+2)
	for i := range in {
		cur := in[i]
		prev := in[(i+len(in)-1)%len(in)]
		curIn := cur.pos.Z()+cur.pos.W() > boundary
		prevIn := prev.pos.Z()+prev.pos.W() > boundary
		if curIn != prevIn {
			fPrev := prev.pos.Z() + prev.pos.W()
			fCur := cur.pos.Z() + cur.pos.W()
			t := fPrev / (fPrev - fCur)
			out = append(out, lerpClip(prev, cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		uv:    a.uv.Add(b.uv.Sub(a.uv).Mul(t)),
		shade: a.shade + (b.shade-a.shade)*t,
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
