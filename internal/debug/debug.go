package debug

import (
	"fmt"
	"image/color"
	"runtime"

	"frameui/internal/ui"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// refreshInterval: FPS/Mem text is only rebuilt this often (seconds) to limit allocations.
	refreshInterval = 0.5
)

var green = color.RGBA{0, 228, 48, 255}

// Overlay draws the FPS counter and heap size in the top-right corner. All
// overlays are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	Font         string // theme font name; empty uses the backend default

	elapsed  float64
	frames   int
	fpsText  string
	memText  string
	memStats runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// Update counts the frame and refreshes the text every refreshInterval.
// The first call fills the text right away.
func (o *Overlay) Update(dt float32) {
	o.frames++
	o.elapsed += float64(dt)
	if o.fpsText != "" && o.elapsed < refreshInterval-1e-6 {
		return
	}
	fps := 0
	if o.elapsed > 0 {
		fps = int(float64(o.frames)/o.elapsed + 0.5)
	}
	o.fpsText = fmt.Sprintf("FPS: %d", fps)
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
	}
	o.elapsed, o.frames = 0, 0
}

// FPSText is the text last shown for the frame rate.
func (o *Overlay) FPSText() string { return o.fpsText }

// Draw renders the enabled overlays right-aligned against screenW.
func (o *Overlay) Draw(rd ui.Renderer, screenW float32) {
	y := float32(padding)
	if o.ShowFPS && o.fpsText != "" {
		o.drawRight(rd, o.fpsText, screenW, y)
		y += lineHeight
	}
	if o.ShowMemAlloc && o.memText != "" {
		o.drawRight(rd, o.memText, screenW, y)
	}
}

func (o *Overlay) drawRight(rd ui.Renderer, text string, screenW, y float32) {
	w, _ := rd.MeasureText(text, o.Font, fontSize)
	rd.DrawText(text, screenW-w-padding, y, o.Font, fontSize, green)
}
