package rlbackend

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"frameui/internal/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

const textSpacing = 1

// Renderer draws with raylib. Fonts are registered by name; unknown or
// empty names use raylib's default font.
type Renderer struct {
	fonts map[string]rl.Font
}

func NewRenderer() *Renderer {
	return &Renderer{fonts: make(map[string]rl.Font)}
}

// LoadFont loads the TTF/OTF file at path and registers it as name. On
// failure the name keeps falling back to the default font.
func (r *Renderer) LoadFont(name, path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return fmt.Errorf("load font %s: %s", name, path)
	}
	if old, ok := r.fonts[name]; ok {
		rl.UnloadFont(old)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	r.fonts[name] = f
	return nil
}

// Close unloads every registered font. Needs the window still open.
func (r *Renderer) Close() {
	for name, f := range r.fonts {
		rl.UnloadFont(f)
		delete(r.fonts, name)
	}
}

func (r *Renderer) font(name string) rl.Font {
	if f, ok := r.fonts[name]; ok && f.Texture.ID != 0 {
		return f
	}
	return rl.GetFontDefault()
}

func (r *Renderer) DrawRectangle(x, y, w, h float32, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, h), c)
}

func (r *Renderer) DrawRectangleLines(x, y, w, h, thick float32, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), thick, c)
}

func (r *Renderer) DrawText(text string, x, y float32, font string, size float32, c color.RGBA) {
	rl.DrawTextEx(r.font(font), text, rl.NewVector2(x, y), size, textSpacing, c)
}

func (r *Renderer) MeasureText(text, font string, size float32) (w, h float32) {
	v := rl.MeasureTextEx(r.font(font), text, size, textSpacing)
	return v.X, v.Y
}

func (r *Renderer) DrawPoly(cx, cy float32, sides int, radius, rotation float32, c color.RGBA) {
	rl.DrawPoly(rl.NewVector2(cx, cy), int32(sides), radius, rotation, c)
}

func (r *Renderer) DrawPolyLines(cx, cy float32, sides int, radius, rotation, thick float32, c color.RGBA) {
	rl.DrawPolyLinesEx(rl.NewVector2(cx, cy), int32(sides), radius, rotation, thick, c)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2, thick float32, c color.RGBA) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thick, c)
}
