package ebitenbackend

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"frameui/internal/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

// Renderer draws onto the ebiten screen image handed to Draw. Fonts are
// registered by name; unknown or empty names use a 7x13 bitmap face scaled
// to the requested size.
type Renderer struct {
	dst      *ebiten.Image
	sources  map[string]*text.GoTextFaceSource
	fallback text.Face
	white    *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: text.NewGoXFace(basicfont.Face7x13),
	}
}

// LoadFont reads the TTF/OTF file at path and registers it as name.
func (r *Renderer) LoadFont(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load font %s: %w", name, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load font %s: %w", name, err)
	}
	r.sources[name] = src
	return nil
}

// fallbackSize is the pixel height the bitmap face is drawn at unscaled.
const fallbackSize = 13

// fallbackScale is the factor that brings the bitmap face to size.
func fallbackScale(size float32) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / fallbackSize
}

// face returns the face for name at size and the scale to draw it with.
func (r *Renderer) face(name string, size float32) (text.Face, float64) {
	if src, ok := r.sources[name]; ok {
		return &text.GoTextFace{Source: src, Size: float64(size)}, 1
	}
	return r.fallback, fallbackScale(size)
}

// begin sets the image the next draw calls go to.
func (r *Renderer) begin(dst *ebiten.Image) {
	r.dst = dst
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
}

func (r *Renderer) DrawRectangle(x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(r.dst, x, y, w, h, c, true)
}

func (r *Renderer) DrawRectangleLines(x, y, w, h, thick float32, c color.RGBA) {
	vector.StrokeRect(r.dst, x, y, w, h, thick, c, true)
}

func (r *Renderer) DrawText(s string, x, y float32, font string, size float32, c color.RGBA) {
	face, k := r.face(font, size)
	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.dst, s, face, op)
}

func (r *Renderer) MeasureText(s, font string, size float32) (w, h float32) {
	face, k := r.face(font, size)
	fw, fh := text.Measure(s, face, 0)
	return float32(fw * k), float32(fh * k)
}

// polygon builds a regular polygon path; rotation is in degrees like
// raylib's.
func polygon(cx, cy float32, sides int, radius, rotation float32) *vector.Path {
	var p vector.Path
	if sides < 3 {
		sides = 3
	}
	step := 2 * math32.Pi / float32(sides)
	start := rotation * math32.Pi / 180
	for i := 0; i < sides; i++ {
		a := start + step*float32(i)
		x, y := cx+radius*math32.Cos(a), cy+radius*math32.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return &p
}

func (r *Renderer) fill(vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	r.dst.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) DrawPoly(cx, cy float32, sides int, radius, rotation float32, c color.RGBA) {
	vs, is := polygon(cx, cy, sides, radius, rotation).AppendVerticesAndIndicesForFilling(nil, nil)
	r.fill(vs, is, c)
}

func (r *Renderer) DrawPolyLines(cx, cy float32, sides int, radius, rotation, thick float32, c color.RGBA) {
	op := &vector.StrokeOptions{Width: thick, LineJoin: vector.LineJoinMiter}
	vs, is := polygon(cx, cy, sides, radius, rotation).AppendVerticesAndIndicesForStroke(nil, nil, op)
	r.fill(vs, is, c)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2, thick float32, c color.RGBA) {
	vector.StrokeLine(r.dst, x1, y1, x2, y2, thick, c, true)
}
