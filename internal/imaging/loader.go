package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/segtools/regiongrow/internal/segment"
)

// Load decodes the image at path. Supported formats are those registered
// by disintegration/imaging: PNG, JPEG, GIF, TIFF, and BMP.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// LoadBuffer decodes the image at path straight into a pixel buffer.
//
// A decoded image with no pixels (zero width or height) is rejected here
// so the engine never sees a zero-sized grid.
func LoadBuffer(path string) (*segment.PixelBuffer, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s decoded to zero size", path)
	}
	return segment.FromImage(img), nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// SiblingPath derives an output path next to the input file by inserting
// suffix before the extension and forcing a .png extension:
//
//	SiblingPath("shots/board.jpg", "_segmented") -> "shots/board_segmented.png"
func SiblingPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ".png"
}
