// Command regiongrow segments an image exhaustively: every pixel is
// assigned to a region by flood fill with a fixed color-distance
// threshold, and a false-color preview plus an overlay are written next to
// the input file.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/segtools/regiongrow/internal/imaging"
	"github.com/segtools/regiongrow/internal/render"
	"github.com/segtools/regiongrow/internal/segment"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <image_path> <threshold>\n", os.Args[0])
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	path := os.Args[1]
	threshold, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid threshold %q: must be numeric\n", os.Args[2])
		os.Exit(1)
	}

	img, err := imaging.Load(path)
	if err != nil {
		log.Fatalf("Load error: %v", err)
	}
	buf := segment.FromImage(img)

	result, err := segment.SegmentAll(buf, threshold)
	if err != nil {
		log.Fatalf("Segmentation error: %v", err)
	}

	preview := render.Render(result.Labels, render.Scaled)
	previewPath := imaging.SiblingPath(path, "_segmented")
	if err := imaging.Save(preview, previewPath); err != nil {
		log.Fatalf("Save error: %v", err)
	}
	overlayPath := imaging.SiblingPath(path, "_overlay")
	if err := imaging.Save(render.Overlay(img, preview), overlayPath); err != nil {
		log.Fatalf("Save error: %v", err)
	}

	log.Printf("segmented %s: %d regions in %d iterations", path, result.Regions, result.Iterations)
	log.Printf("wrote %s and %s", previewPath, overlayPath)
}
