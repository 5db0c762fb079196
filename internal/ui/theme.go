package ui

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallback colours for elements built without a theme.
var (
	Gray      = color.RGBA{130, 130, 130, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	DarkGray  = color.RGBA{80, 80, 80, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
)

// Theme holds the palette and font shared by the elements of one tree.
// Primary covers most surfaces, Secondary the controls (lightest first),
// Accent the highlights.
type Theme struct {
	Font      string
	FontSize  float32
	Primary   color.RGBA
	Secondary [5]color.RGBA
	Accent    [2]color.RGBA
	Shadow    color.RGBA
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		FontSize: 18,
		Primary:  hex(0xBEC3C5),
		Secondary: [5]color.RGBA{
			hex(0x94A6AD), hex(0x669099), hex(0x457378), hex(0x285152), hex(0x112826),
		},
		Accent: [2]color.RGBA{hex(0x4A44C5), hex(0xDC1E70)},
		Shadow: color.RGBA{0, 0, 0, 120},
	}
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// themeFile is the YAML shape of a theme. Empty fields keep the default.
type themeFile struct {
	Font      string   `yaml:"font,omitempty"`
	FontSize  float32  `yaml:"font_size,omitempty"`
	Primary   string   `yaml:"primary,omitempty"`
	Secondary []string `yaml:"secondary,omitempty"`
	Accent    []string `yaml:"accent,omitempty"`
	Shadow    string   `yaml:"shadow,omitempty"`
}

// LoadTheme reads a YAML theme file. Fields missing from the file keep
// their DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("load theme: %w", err)
	}
	th, err := ParseTheme(data)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("load theme %s: %w", path, err)
	}
	return th, nil
}

// ParseTheme decodes a YAML theme on top of DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	th := DefaultTheme()
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return th, err
	}
	if f.Font != "" {
		th.Font = f.Font
	}
	if f.FontSize > 0 {
		th.FontSize = f.FontSize
	}
	if err := setColor(&th.Primary, "primary", f.Primary); err != nil {
		return th, err
	}
	if len(f.Secondary) > len(th.Secondary) {
		return th, fmt.Errorf("secondary: %d colors, at most %d", len(f.Secondary), len(th.Secondary))
	}
	for i, s := range f.Secondary {
		if err := setColor(&th.Secondary[i], fmt.Sprintf("secondary[%d]", i), s); err != nil {
			return th, err
		}
	}
	if len(f.Accent) > len(th.Accent) {
		return th, fmt.Errorf("accent: %d colors, at most %d", len(f.Accent), len(th.Accent))
	}
	for i, s := range f.Accent {
		if err := setColor(&th.Accent[i], fmt.Sprintf("accent[%d]", i), s); err != nil {
			return th, err
		}
	}
	if err := setColor(&th.Shadow, "shadow", f.Shadow); err != nil {
		return th, err
	}
	return th, nil
}

func setColor(dst *color.RGBA, field, s string) error {
	if s == "" {
		return nil
	}
	c, ok := ParseHexColor(s)
	if !ok {
		return fmt.Errorf("%s: invalid color %q", field, s)
	}
	*dst = c
	return nil
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return Black, false
	}
	h := s[1:]
	for i := 0; i < len(h); i++ {
		if _, ok := hexDigit(h[i]); !ok {
			return Black, false
		}
	}
	byteAt := func(i int) uint8 {
		hi, _ := hexDigit(h[i])
		lo, _ := hexDigit(h[i+1])
		return hi<<4 | lo
	}
	switch len(h) {
	case 3:
		r, _ := hexDigit(h[0])
		g, _ := hexDigit(h[1])
		b, _ := hexDigit(h[2])
		return color.RGBA{r * 17, g * 17, b * 17, 255}, true
	case 6:
		return color.RGBA{byteAt(0), byteAt(2), byteAt(4), 255}, true
	case 8:
		return color.RGBA{byteAt(0), byteAt(2), byteAt(4), byteAt(6)}, true
	}
	return Black, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
