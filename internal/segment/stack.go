package segment

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// FrontierStack is the LIFO work-list of pixels whose neighbors have not
// yet been evaluated for region membership. It grows without bound and
// only ever holds in-bounds coordinates.
type FrontierStack struct {
	items []Point
}

// Push appends a coordinate to the frontier.
func (s *FrontierStack) Push(p Point) {
	s.items = append(s.items, p)
}

// Pop removes and returns the most recently pushed coordinate.
//
// Popping an empty frontier is a programming error: callers must check
// IsEmpty first. Pop panics rather than silently continuing.
func (s *FrontierStack) Pop() Point {
	if len(s.items) == 0 {
		panic("segment: pop from empty frontier")
	}
	p := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return p
}

// IsEmpty reports whether the frontier holds no coordinates.
func (s *FrontierStack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of coordinates on the frontier.
func (s *FrontierStack) Size() int {
	return len(s.items)
}
