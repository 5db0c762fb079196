package ui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// contrastThreshold is the Lab lightness above which dark text reads better.
const contrastThreshold = 0.6

// ContrastColor returns black or white, whichever reads better on top of c.
func ContrastColor(c color.RGBA) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	l, _, _ := cf.Lab()
	if l > contrastThreshold {
		return Black
	}
	return White
}

// Shade moves c's Lab lightness by amount on a 0–100 scale. Positive values
// lighten, negative darken. Alpha is kept.
func Shade(c color.RGBA, amount float64) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	l, a, b := cf.Lab()
	l += amount / 100
	if l < 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}
	return toRGBA(colorful.Lab(l, a, b), c.A)
}

// Mix blends a towards b by t in Lab space (t=0 → a, t=1 → b). The result
// takes a's alpha.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	ca, ok := colorful.MakeColor(a)
	if !ok {
		return b
	}
	cb, ok := colorful.MakeColor(b)
	if !ok {
		return a
	}
	return toRGBA(ca.BlendLab(cb, t), a.A)
}

func toRGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}
