package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/datawindow/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	BandColor   color.RGBA
	Disks       int
}

// DefaultTrayIconConfig returns the config for the tray database glyph.
func DefaultTrayIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{53, 132, 228, 255},  // Blue
		BorderColor: color.RGBA{26, 95, 180, 255},   // Dark blue
		BandColor:   color.RGBA{153, 193, 241, 255}, // Light blue
		Disks:       3,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	if config.Size <= 0 {
		config.Size = common.TrayIconSize
	}
	if config.Disks <= 0 {
		config.Disks = 1
	}
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	var buf bytes.Buffer
	png.Encode(&buf, g.Image())
	return buf.Bytes()
}

// Image draws the glyph: a cylinder made of stacked disks, the usual
// picture of a database.
func (g *IconGenerator) Image() *image.RGBA {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	left, right := 2, size-3
	top, bottom := 2, size-3
	rx := float64(right-left) / 2
	ry := float64(size) / 8
	cx := float64(left+right) / 2

	// Body
	for y := top + int(ry); y <= bottom-int(ry); y++ {
		for x := left; x <= right; x++ {
			if x == left || x == right {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}

	// Disk rims, top to bottom. The top one is a full ellipse.
	step := float64(bottom-top-2*int(ry)) / float64(g.config.Disks)
	for d := 0; d <= g.config.Disks; d++ {
		cy := float64(top) + ry + step*float64(d)
		g.drawEllipse(img, cx, cy, rx, ry, d == 0)
	}

	return img
}

// drawEllipse draws an elliptical rim centered at (cx, cy). When full is
// false only the lower half is drawn, as seen on the side of the cylinder.
func (g *IconGenerator) drawEllipse(img *image.RGBA, cx, cy, rx, ry float64, full bool) {
	size := g.config.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy

			if !full && float64(y)+0.5 < cy {
				continue
			}
			switch {
			case d >= 0.7 && d <= 1.1:
				img.Set(x, y, g.config.BorderColor)
			case full && d < 0.7:
				img.Set(x, y, g.config.BandColor)
			}
		}
	}
}

// GenerateTrayIcon generates the tray icon.
func GenerateTrayIcon() []byte {
	return NewIconGenerator(DefaultTrayIconConfig()).Generate()
}
