// Package render turns a finished label map into viewable images: a
// false-color preview of the regions and a blended overlay of that preview
// on the source image.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/segtools/regiongrow/internal/segment"
)

// Palette maps a positive region id to a preview color. Palettes must be
// deterministic: the same id always yields the same color. Unassigned
// cells (id 0) are handled by Render itself and never reach the palette.
type Palette func(id int) color.NRGBA

// Scaled is the classic channel-scaling palette: each channel is the
// region id times a fixed multiplier, truncated to 8 bits. Colors are
// visually distinct for small region counts but wrap around for large
// ones; collisions are an accepted limitation.
func Scaled(id int) color.NRGBA {
	return color.NRGBA{
		R: uint8(id * 35),
		G: uint8(id * 90),
		B: uint8(id * 30),
		A: 255,
	}
}

// goldenAngle spaces consecutive hues as far apart as possible on the
// color wheel.
const goldenAngle = 137.50776405003785

// Distinct derives a hue from the region id by golden-angle stepping and
// renders it at fixed saturation and value. Like Scaled it is a pure
// function of the id, but neighboring ids land on opposite sides of the
// color wheel, which reads better for seeded output with few regions.
func Distinct(id int) color.NRGBA {
	h := math.Mod(float64(id)*goldenAngle, 360)
	r, g, b := colorful.Hsv(h, 0.65, 0.95).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Render produces the false-color preview of a label map. Unassigned
// cells render white; every other cell gets the palette color of its
// region id.
func Render(labels *segment.LabelGrid, palette Palette) *image.NRGBA {
	preview := image.NewNRGBA(image.Rect(0, 0, labels.W, labels.H))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	for y := 0; y < labels.H; y++ {
		for x := 0; x < labels.W; x++ {
			id := labels.Get(x, y)
			if id == 0 {
				preview.SetNRGBA(x, y, white)
				continue
			}
			preview.SetNRGBA(x, y, palette(id))
		}
	}
	return preview
}

// Overlay composites the preview over the source image at half opacity,
// keeping the original structure visible under the region coloring.
func Overlay(src, preview image.Image) *image.RGBA {
	return blend.Opacity(src, preview, 0.5)
}
