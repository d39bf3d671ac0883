package segment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Result contains the outcome of a segmentation pass.
type Result struct {
	// Labels is the finished label map, same dimensions as the input buffer.
	Labels *LabelGrid `json:"-"`

	// Regions is the number of regions still open when the pass finished
	// (dissolved regions are not counted).
	Regions int `json:"regions"`

	// Iterations is the number of frontier pops performed.
	Iterations int `json:"iterations"`
}

// SeedOptions tunes seed-driven segmentation.
type SeedOptions struct {
	// MaxIterations caps the number of frontier pops. Once exceeded, no
	// further pixels are absorbed and the pass winds down; pixels the
	// seeds never reached stay unassigned. This is a planned termination
	// path, not a failure.
	MaxIterations int

	// MinRegionSize is the smallest cell count a finished region may
	// have. Smaller regions are dissolved back to unassigned. Later
	// seeds may or may not re-grow over the freed cells, so this is a
	// repair heuristic rather than a guarantee.
	MinRegionSize int
}

// DefaultSeedOptions returns the standard tuning: a 200000-pop budget and
// an 8x8-cell minimum region.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		MaxIterations: 200000,
		MinRegionSize: 64,
	}
}

// Engine holds the mutable state of one segmentation pass: the label map,
// the frontier, and the region counter. It is created per call and not
// safe for concurrent use.
type Engine struct {
	buf           *PixelBuffer
	labels        *LabelGrid
	frontier      *FrontierStack
	currentRegion int
	iterations    int
}

func newEngine(buf *PixelBuffer) (*Engine, error) {
	if buf == nil || buf.W <= 0 || buf.H <= 0 {
		return nil, fmt.Errorf("segment: empty pixel buffer")
	}
	return &Engine{
		buf:      buf,
		labels:   NewLabelGrid(buf.W, buf.H),
		frontier: &FrontierStack{},
	}, nil
}

// openRegion starts a new region and returns its identifier. Identifiers
// are handed out by a counter that increments by exactly one per region.
func (e *Engine) openRegion() int {
	e.currentRegion++
	return e.currentRegion
}

// dissolveRegion resets every cell of region id to unassigned and returns
// the identifier to the counter. Only the most recently opened region is
// ever dissolved, so the freed identifier is reused by the next openRegion
// for a different region only after the reset has fully cleared it.
func (e *Engine) dissolveRegion(id int) {
	e.labels.ResetID(id)
	e.currentRegion--
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.buf.W && y >= 0 && y < e.buf.H
}

// passedAll reports whether the pass should stop absorbing pixels: the
// iteration budget is spent or every pixel already carries a label.
func (e *Engine) passedAll(maxIterations int) bool {
	return e.iterations > maxIterations || e.labels.CountAssigned() == e.buf.W*e.buf.H
}

// SegmentAll labels every pixel of the buffer by exhaustive flood fill.
//
// The buffer is scanned in row-major order. Each still-unassigned pixel
// opens a new region, which is then grown by draining the frontier: every
// in-bounds, unassigned 8-neighbor whose color distance from the popped
// pixel is strictly below threshold joins the region and is pushed in
// turn. A pixel that already carries a label is never re-examined, so the
// pass terminates after at most 8 membership tests per pixel.
//
// Every pixel of the result carries a positive label, and Regions equals
// the number of distinct labels produced.
func SegmentAll(buf *PixelBuffer, threshold float64) (*Result, error) {
	e, err := newEngine(buf)
	if err != nil {
		return nil, err
	}

	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			if e.labels.Get(x, y) != 0 {
				continue
			}
			id := e.openRegion()
			e.labels.Set(x, y, id)
			e.frontier.Push(Point{X: x, Y: y})
			e.growFixed(id, threshold)
		}
	}

	return &Result{
		Labels:     e.labels,
		Regions:    e.currentRegion,
		Iterations: e.iterations,
	}, nil
}

// growFixed drains the frontier with a fixed acceptance threshold.
func (e *Engine) growFixed(id int, threshold float64) {
	for !e.frontier.IsEmpty() {
		p := e.frontier.Pop()
		e.iterations++
		c := e.buf.At(p.X, p.Y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !e.inBounds(nx, ny) || e.labels.Get(nx, ny) != 0 {
					continue
				}
				if Distance(c, e.buf.At(nx, ny)) < threshold {
					e.labels.Set(nx, ny, id)
					e.frontier.Push(Point{X: nx, Y: ny})
				}
			}
		}
	}
}

// SegmentFromSeeds grows regions from an ordered seed list with an
// adaptive threshold and minimum-region-size enforcement.
//
// The seed list is first densified: each seed is followed by its in-bounds
// 8-neighbors, which turns sparse click points into small clusters.
// Duplicates are tolerated; a candidate that is already labeled, or whose
// color is pure black (zero norm), is skipped. Seeds themselves must lie
// within the buffer; out-of-bounds seeds are a caller contract violation.
//
// Each accepted candidate opens a region and grows it with a working
// threshold that starts at baseThreshold and tracks the running mean of
// the region's per-pixel channel means, clamped so it never drops below
// baseThreshold. Growth across the whole pass stops once the iteration
// budget is exceeded or the image is fully labeled; a region finishing
// below opts.MinRegionSize is dissolved back to unassigned.
//
// Unlike SegmentAll, the result may leave pixels unassigned: both the
// iteration budget and region dissolution are accepted sources of
// unlabeled residue.
func SegmentFromSeeds(buf *PixelBuffer, seedList []Point, baseThreshold float64, opts SeedOptions) (*Result, error) {
	e, err := newEngine(buf)
	if err != nil {
		return nil, err
	}

	for _, s := range densifySeeds(e, seedList) {
		if e.labels.Get(s.X, s.Y) != 0 || e.buf.Norm(s.X, s.Y) == 0 {
			continue
		}
		id := e.openRegion()
		e.labels.Set(s.X, s.Y, id)
		e.frontier.Push(s)
		e.growAdaptive(id, s, baseThreshold, opts.MaxIterations)

		if e.passedAll(opts.MaxIterations) {
			break
		}
		if e.labels.CountWithID(id) < opts.MinRegionSize {
			e.dissolveRegion(id)
		}
	}

	return &Result{
		Labels:     e.labels,
		Regions:    e.currentRegion,
		Iterations: e.iterations,
	}, nil
}

// densifySeeds appends the in-bounds 8-neighbors of every seed after the
// seed itself, preserving order. Out-of-range neighbors are dropped here;
// duplicate candidates are filtered later by the labeled-pixel check.
func densifySeeds(e *Engine, seedList []Point) []Point {
	expanded := make([]Point, 0, len(seedList)*9)
	for _, s := range seedList {
		expanded = append(expanded, s)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if e.inBounds(s.X+dx, s.Y+dy) {
					expanded = append(expanded, Point{X: s.X + dx, Y: s.Y + dy})
				}
			}
		}
	}
	return expanded
}

// growAdaptive drains the frontier for one region with a self-widening
// threshold.
//
// elems accumulates the channel mean of every pixel absorbed into the
// region, starting with the seed. Each absorption re-derives the working
// threshold as the mean of elems, and after every neighbor evaluation the
// threshold is clamped back up to baseThreshold. Regions of gradually
// varying color therefore keep absorbing similar neighbors while the floor
// prevents the threshold from decaying on low-variance seeds.
//
// Once passedAll triggers, the remaining frontier is drained without
// absorbing anything so the next seed starts from an empty stack.
func (e *Engine) growAdaptive(id int, seed Point, baseThreshold float64, maxIterations int) {
	elems := []float64{e.buf.Mean(seed.X, seed.Y)}
	working := baseThreshold

	for !e.frontier.IsEmpty() {
		p := e.frontier.Pop()
		e.iterations++
		if e.passedAll(maxIterations) {
			continue
		}
		c := e.buf.At(p.X, p.Y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if e.inBounds(nx, ny) && e.labels.Get(nx, ny) == 0 &&
					Distance(e.buf.At(nx, ny), c) < working {
					e.labels.Set(nx, ny, id)
					e.frontier.Push(Point{X: nx, Y: ny})
					elems = append(elems, e.buf.Mean(nx, ny))
					working = stat.Mean(elems, nil)
				}
				working = math.Max(working, baseThreshold)
			}
		}
	}
}
