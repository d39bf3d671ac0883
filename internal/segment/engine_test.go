package segment

import "testing"

// halvesBuffer builds a w x h buffer whose left and right column halves
// carry two different colors.
func halvesBuffer(w, h int, left, right [3]float64) *PixelBuffer {
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				buf.Set(x, y, left)
			} else {
				buf.Set(x, y, right)
			}
		}
	}
	return buf
}

func distinctLabels(g *LabelGrid) map[int]int {
	counts := make(map[int]int)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if id := g.Get(x, y); id != 0 {
				counts[id]++
			}
		}
	}
	return counts
}

func TestSegmentAll_UniformImage(t *testing.T) {
	buf := uniformBuffer(4, 4, [3]float64{100, 150, 200})

	result, err := SegmentAll(buf, 10)
	if err != nil {
		t.Fatalf("SegmentAll failed: %v", err)
	}

	if result.Regions != 1 {
		t.Errorf("Regions: got %d, want 1", result.Regions)
	}
	if got := result.Labels.CountWithID(1); got != 16 {
		t.Errorf("region 1 size: got %d, want 16", got)
	}
}

func TestSegmentAll_TwoHalves(t *testing.T) {
	// Halves differ by Euclidean distance exactly 5.
	left := [3]float64{0, 0, 0}
	right := [3]float64{3, 4, 0}

	tests := []struct {
		name        string
		threshold   float64
		wantRegions int
	}{
		{"threshold above gap merges", 10, 1},
		{"threshold below gap separates", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := halvesBuffer(4, 4, left, right)
			result, err := SegmentAll(buf, tt.threshold)
			if err != nil {
				t.Fatalf("SegmentAll failed: %v", err)
			}
			if result.Regions != tt.wantRegions {
				t.Errorf("Regions: got %d, want %d", result.Regions, tt.wantRegions)
			}
		})
	}
}

func TestSegmentAll_FullCoverage(t *testing.T) {
	// Strongly contrasting stripes with a tight threshold: many regions,
	// but never an unassigned pixel.
	buf := NewPixelBuffer(7, 5)
	colors := [][3]float64{{0, 0, 0}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			buf.Set(x, y, colors[x%len(colors)])
		}
	}

	result, err := SegmentAll(buf, 2)
	if err != nil {
		t.Fatalf("SegmentAll failed: %v", err)
	}

	if got := result.Labels.CountAssigned(); got != 7*5 {
		t.Errorf("CountAssigned: got %d, want %d", got, 7*5)
	}
	if got := len(distinctLabels(result.Labels)); got != result.Regions {
		t.Errorf("region counter %d does not match %d distinct labels", result.Regions, got)
	}
}

func TestSegmentAll_LabelsStayPositiveAndStable(t *testing.T) {
	buf := halvesBuffer(6, 6, [3]float64{10, 10, 10}, [3]float64{200, 200, 200})

	result, err := SegmentAll(buf, 15)
	if err != nil {
		t.Fatalf("SegmentAll failed: %v", err)
	}

	// Labels are contiguous ids 1..Regions; every half is one block.
	for id, count := range distinctLabels(result.Labels) {
		if id < 1 || id > result.Regions {
			t.Errorf("unexpected label %d outside 1..%d", id, result.Regions)
		}
		if count != 18 {
			t.Errorf("region %d size: got %d, want 18", id, count)
		}
	}
}

func TestSegmentAll_EmptyBuffer(t *testing.T) {
	if _, err := SegmentAll(nil, 10); err == nil {
		t.Error("nil buffer should be rejected")
	}
	if _, err := SegmentAll(NewPixelBuffer(0, 0), 10); err == nil {
		t.Error("zero-sized buffer should be rejected")
	}
}

func TestSegmentFromSeeds_UniformBlock(t *testing.T) {
	buf := uniformBuffer(8, 8, [3]float64{100, 150, 200})

	result, err := SegmentFromSeeds(buf, []Point{{X: 0, Y: 0}}, 5, DefaultSeedOptions())
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	if result.Regions != 1 {
		t.Errorf("Regions: got %d, want 1", result.Regions)
	}
	if got := result.Labels.CountWithID(1); got != 64 {
		t.Errorf("region size: got %d, want 64 (no dissolve expected)", got)
	}
}

func TestSegmentFromSeeds_SmallIslandDissolved(t *testing.T) {
	// A 2x2 color island on black background. The region grows to 4
	// pixels, below the 64-cell minimum, and is dissolved.
	buf := uniformBuffer(8, 8, [3]float64{0, 0, 0})
	island := [3]float64{200, 60, 90}
	buf.Set(3, 3, island)
	buf.Set(4, 3, island)
	buf.Set(3, 4, island)
	buf.Set(4, 4, island)

	result, err := SegmentFromSeeds(buf, []Point{{X: 3, Y: 3}}, 10, DefaultSeedOptions())
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	if result.Regions != 0 {
		t.Errorf("Regions after dissolve: got %d, want 0", result.Regions)
	}
	if got := result.Labels.CountAssigned(); got != 0 {
		t.Errorf("dissolved region left %d labeled cells", got)
	}
}

func TestSegmentFromSeeds_BlackPixelsNeverSeed(t *testing.T) {
	buf := uniformBuffer(8, 8, [3]float64{0, 0, 0})

	result, err := SegmentFromSeeds(buf, []Point{{X: 4, Y: 4}}, 50, DefaultSeedOptions())
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	if result.Regions != 0 || result.Labels.CountAssigned() != 0 {
		t.Errorf("pure-black image grew %d regions over %d cells",
			result.Regions, result.Labels.CountAssigned())
	}
}

func TestSegmentFromSeeds_ThresholdFloorHolds(t *testing.T) {
	// Alternating colors whose pairwise distance (sqrt(27) ~ 5.2) sits
	// between the running channel-mean average (~2.5) and the base
	// threshold (6). Growth only crosses every boundary if the working
	// threshold never decays below the base.
	buf := NewPixelBuffer(8, 1)
	for x := 0; x < 8; x++ {
		if x%2 == 0 {
			buf.Set(x, 0, [3]float64{1, 1, 1})
		} else {
			buf.Set(x, 0, [3]float64{4, 4, 4})
		}
	}

	opts := SeedOptions{MaxIterations: 200000, MinRegionSize: 1}
	result, err := SegmentFromSeeds(buf, []Point{{X: 0, Y: 0}}, 6, opts)
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	if got := result.Labels.CountAssigned(); got != 8 {
		t.Errorf("working threshold decayed below base: %d of 8 pixels labeled", got)
	}
	if result.Regions != 1 {
		t.Errorf("Regions: got %d, want 1", result.Regions)
	}
}

func TestSegmentFromSeeds_IterationBudget(t *testing.T) {
	buf := uniformBuffer(16, 16, [3]float64{90, 90, 90})

	opts := SeedOptions{MaxIterations: 10, MinRegionSize: 1}
	result, err := SegmentFromSeeds(buf, []Point{{X: 8, Y: 8}}, 5, opts)
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	// The budget is a planned termination path: some pixels stay
	// unassigned, and this is not an error.
	if got := result.Labels.CountAssigned(); got == 0 || got == 16*16 {
		t.Errorf("expected partial coverage under tight budget, got %d of %d", got, 16*16)
	}
	if result.Regions != 1 {
		t.Errorf("Regions: got %d, want 1", result.Regions)
	}
}

func TestSegmentFromSeeds_SeedDensification(t *testing.T) {
	// Two color patches separated by black. One seed placed on the last
	// row of the first patch: densified neighbors land on the same patch
	// only, so the second patch stays unlabeled.
	buf := uniformBuffer(8, 8, [3]float64{0, 0, 0})
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, [3]float64{120, 40, 40})
		}
	}
	for y := 5; y < 8; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, [3]float64{40, 40, 120})
		}
	}

	opts := SeedOptions{MaxIterations: 200000, MinRegionSize: 8}
	result, err := SegmentFromSeeds(buf, []Point{{X: 4, Y: 2}}, 10, opts)
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}

	if result.Regions != 1 {
		t.Errorf("Regions: got %d, want 1", result.Regions)
	}
	if got := result.Labels.CountWithID(1); got != 24 {
		t.Errorf("patch size: got %d, want 24", got)
	}
	if got := result.Labels.Get(4, 6); got != 0 {
		t.Errorf("unreachable patch was labeled %d", got)
	}
}

func TestSegmentFromSeeds_CornerSeed(t *testing.T) {
	// Densification at a corner must not push out-of-bounds neighbors.
	buf := uniformBuffer(4, 4, [3]float64{50, 60, 70})

	opts := SeedOptions{MaxIterations: 200000, MinRegionSize: 1}
	result, err := SegmentFromSeeds(buf, []Point{{X: 0, Y: 0}}, 5, opts)
	if err != nil {
		t.Fatalf("SegmentFromSeeds failed: %v", err)
	}
	if got := result.Labels.CountAssigned(); got != 16 {
		t.Errorf("CountAssigned: got %d, want 16", got)
	}
}

func TestSegmentFromSeeds_EmptyBuffer(t *testing.T) {
	if _, err := SegmentFromSeeds(nil, []Point{{X: 0, Y: 0}}, 5, DefaultSeedOptions()); err == nil {
		t.Error("nil buffer should be rejected")
	}
}

func TestDefaultSeedOptions(t *testing.T) {
	opts := DefaultSeedOptions()
	if opts.MaxIterations != 200000 {
		t.Errorf("MaxIterations: got %d, want 200000", opts.MaxIterations)
	}
	if opts.MinRegionSize != 64 {
		t.Errorf("MinRegionSize: got %d, want 64", opts.MinRegionSize)
	}
}
