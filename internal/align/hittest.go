package align

// Box is the on-screen rectangle occupied by one rendered token, in the
// cell coordinate space of the rendering surface. A nil *Box in a box
// array means the surface has not reported layout for that token yet.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) falls inside the box.
// Both edges are inclusive: a box at X=10 with Width=20 covers 10..30.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// FindTokenAt scans boxes in index order and returns the index of the
// first box containing (x, y). Lowest index wins when boxes overlap.
// Unmeasured (nil) entries never match. The second return is false when
// nothing is hit.
func FindTokenAt(boxes []*Box, x, y int) (int, bool) {
	for i, b := range boxes {
		if b == nil {
			continue
		}
		if b.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
