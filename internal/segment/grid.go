package segment

// LabelGrid maps every pixel of an image to a region identifier. A label
// of 0 means the pixel is unassigned; positive labels identify regions.
//
// Once assigned, a label only ever changes through ResetID, the explicit
// repair path for dissolving an undersized region.
type LabelGrid struct {
	W, H     int
	labels   []int
	assigned int // count of non-zero cells, maintained by Set/ResetID
}

// NewLabelGrid returns a grid of the given dimensions with every cell
// unassigned.
func NewLabelGrid(w, h int) *LabelGrid {
	return &LabelGrid{
		W:      w,
		H:      h,
		labels: make([]int, w*h),
	}
}

// Get returns the label at (x, y).
func (g *LabelGrid) Get(x, y int) int {
	return g.labels[y*g.W+x]
}

// Set assigns the label at (x, y).
func (g *LabelGrid) Set(x, y, id int) {
	off := y*g.W + x
	if g.labels[off] == 0 && id != 0 {
		g.assigned++
	} else if g.labels[off] != 0 && id == 0 {
		g.assigned--
	}
	g.labels[off] = id
}

// CountAssigned returns the number of cells carrying a non-zero label.
func (g *LabelGrid) CountAssigned() int {
	return g.assigned
}

// CountWithID returns the number of cells labeled id.
func (g *LabelGrid) CountWithID(id int) int {
	count := 0
	for _, v := range g.labels {
		if v == id {
			count++
		}
	}
	return count
}

// ResetID sets every cell labeled id back to unassigned.
func (g *LabelGrid) ResetID(id int) {
	for i, v := range g.labels {
		if v == id {
			g.labels[i] = 0
			g.assigned--
		}
	}
}
