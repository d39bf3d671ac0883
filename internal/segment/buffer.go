package segment

import (
	"image"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PixelBuffer is a dense grid of 3-channel color samples. Channel values
// are stored as float64 in the 0-255 range, regardless of the bit depth of
// the source image.
//
// The buffer is treated as immutable by the segmentation engine; Set exists
// for producers assembling a buffer from something other than an
// image.Image (tests, synthetic inputs).
type PixelBuffer struct {
	W, H int
	pix  []float64 // interleaved R,G,B; len = W*H*3
}

// NewPixelBuffer returns an all-black buffer of the given dimensions.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{
		W:   w,
		H:   h,
		pix: make([]float64, w*h*3),
	}
}

// FromImage converts a decoded image into a PixelBuffer.
//
// Samples are read through the image.Image interface and reduced to 8-bit
// channel values, so 16-bit sources lose their low byte. The alpha channel
// is discarded.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			off := (y*buf.W + x) * 3
			buf.pix[off] = float64(r >> 8)
			buf.pix[off+1] = float64(g >> 8)
			buf.pix[off+2] = float64(b >> 8)
		}
	}
	return buf
}

// At returns the color sample at (x, y).
func (b *PixelBuffer) At(x, y int) [3]float64 {
	off := (y*b.W + x) * 3
	return [3]float64{b.pix[off], b.pix[off+1], b.pix[off+2]}
}

// Set overwrites the color sample at (x, y).
func (b *PixelBuffer) Set(x, y int, c [3]float64) {
	off := (y*b.W + x) * 3
	b.pix[off] = c[0]
	b.pix[off+1] = c[1]
	b.pix[off+2] = c[2]
}

// Mean collapses the sample at (x, y) to a single luminance-like scalar,
// the arithmetic mean of its three channels.
func (b *PixelBuffer) Mean(x, y int) float64 {
	c := b.At(x, y)
	return stat.Mean(c[:], nil)
}

// Norm returns the Euclidean norm of the sample at (x, y). A zero norm
// identifies a pure-black pixel.
func (b *PixelBuffer) Norm(x, y int) float64 {
	c := b.At(x, y)
	return floats.Norm(c[:], 2)
}
