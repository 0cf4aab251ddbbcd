package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNotEnoughPoints is returned when fewer than two points are given
var ErrNotEnoughPoints = errors.New("at least two points are required")

// Point is one (timestamp, balance) sample of the series
type Point struct {
	Label string
	Value float64
}

// Style defines the visual style of the chart
type Style struct {
	Width     int
	Height    int
	Padding   float64
	LineRGB   [3]float64
	MarkerRGB [3]float64
	GridRGBA  [4]float64
}

// Renderer draws balance-over-time line charts
type Renderer struct {
	style Style
}

// NewRenderer creates a renderer with the default style
func NewRenderer() *Renderer {
	return &Renderer{
		style: Style{
			Width:     900,
			Height:    450,
			Padding:   60,
			LineRGB:   [3]float64{0.15, 0.35, 0.85},
			MarkerRGB: [3]float64{0.1, 0.25, 0.7},
			GridRGBA:  [4]float64{0.5, 0.5, 0.5, 0.3},
		},
	}
}

// Render draws the series as a PNG line chart
func (r *Renderer) Render(points []Point) ([]byte, error) {
	if len(points) < 2 {
		return nil, ErrNotEnoughPoints
	}

	w, h := float64(r.style.Width), float64(r.style.Height)
	pad := r.style.Padding

	dc := gg.NewContext(r.style.Width, r.style.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	labelFace, err := loadFont(goregular.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	titleFace, err := loadFont(gobold.TTF, 15)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// Title
	dc.SetFontFace(titleFace)
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored("Evolución del saldo", w/2, pad/2, 0.5, 0.5)
	dc.SetFontFace(labelFace)

	minV, maxV := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if maxV == minV {
		// Flat series still needs a visible vertical range
		maxV = minV + 1
	}

	plotW := w - 2*pad
	plotH := h - 2*pad

	x := func(i int) float64 {
		return pad + plotW*float64(i)/float64(len(points)-1)
	}
	y := func(v float64) float64 {
		return h - pad - plotH*(v-minV)/(maxV-minV)
	}

	// Horizontal grid and y-axis labels
	const gridLines = 5
	dc.SetLineWidth(1)
	for i := 0; i <= gridLines; i++ {
		v := minV + (maxV-minV)*float64(i)/gridLines
		gy := y(v)
		dc.SetRGBA(r.style.GridRGBA[0], r.style.GridRGBA[1], r.style.GridRGBA[2], r.style.GridRGBA[3])
		dc.DrawLine(pad, gy, w-pad, gy)
		dc.Stroke()
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", v), pad-8, gy, 1, 0.5)
	}

	// Axes
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5)
	dc.DrawLine(pad, pad, pad, h-pad)
	dc.DrawLine(pad, h-pad, w-pad, h-pad)
	dc.Stroke()

	// Series polyline
	dc.SetRGB(r.style.LineRGB[0], r.style.LineRGB[1], r.style.LineRGB[2])
	dc.SetLineWidth(2)
	for i := 1; i < len(points); i++ {
		dc.DrawLine(x(i-1), y(points[i-1].Value), x(i), y(points[i].Value))
	}
	dc.Stroke()

	// Markers and value labels
	for i, p := range points {
		dc.SetRGB(r.style.MarkerRGB[0], r.style.MarkerRGB[1], r.style.MarkerRGB[2])
		dc.DrawCircle(x(i), y(p.Value), 3.5)
		dc.Fill()
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", p.Value), x(i), y(p.Value)-10, 0.5, 0.5)
	}

	// Sparse date labels when there are many points
	step := 1
	if len(points) > 10 {
		step = len(points) / 10
	}
	dc.SetRGB(0.3, 0.3, 0.3)
	for i := 0; i < len(points); i += step {
		label := points[i].Label
		// Keep only the date part so labels fit between ticks
		if len(label) > 10 {
			label = label[:10]
		}
		dc.DrawStringAnchored(label, x(i), h-pad+16, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func loadFont(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	}), nil
}
