// Command seedgrow segments an image from user-chosen seed points with an
// adaptive threshold. Seeds are read from stdin as "x y" pairs, one per
// line, ended by "done" or EOF; regions smaller than 64 pixels are
// dissolved. Output previews are written next to the input file.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/segtools/regiongrow/internal/imaging"
	"github.com/segtools/regiongrow/internal/render"
	"github.com/segtools/regiongrow/internal/seeds"
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

	fmt.Fprintf(os.Stderr, "enter seeds as \"x y\" (one per line), finish with %q or EOF:\n", seeds.Terminator)
	seedList, err := seeds.Collect(os.Stdin)
	if err != nil {
		log.Fatalf("Seed input error: %v", err)
	}
	if err := seeds.Validate(seedList, buf.W, buf.H); err != nil {
		log.Fatalf("Seed input error: %v", err)
	}
	if len(seedList) == 0 {
		log.Fatalf("no seeds supplied")
	}

	result, err := segment.SegmentFromSeeds(buf, seedList, threshold, segment.DefaultSeedOptions())
	if err != nil {
		log.Fatalf("Segmentation error: %v", err)
	}

	preview := render.Render(result.Labels, render.Distinct)
	previewPath := imaging.SiblingPath(path, "_segmented")
	if err := imaging.Save(preview, previewPath); err != nil {
		log.Fatalf("Save error: %v", err)
	}
	overlayPath := imaging.SiblingPath(path, "_overlay")
	if err := imaging.Save(render.Overlay(img, preview), overlayPath); err != nil {
		log.Fatalf("Save error: %v", err)
	}

	log.Printf("grew %d regions from %d seeds in %d iterations", result.Regions, len(seedList), result.Iterations)
	log.Printf("wrote %s and %s", previewPath, overlayPath)
}
