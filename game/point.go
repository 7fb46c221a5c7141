package game

// Point is a cell coordinate or an offset relative to a piece anchor.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rotate turns the point counter-clockwise about the origin by n quarter turns.
func (p Point) Rotate(n int) Point {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return Point{X: -p.Y, Y: p.X}
	case 2:
		return Point{X: -p.X, Y: -p.Y}
	case 3:
		return Point{X: p.Y, Y: -p.X}
	}
	return p
}

// Distance is the Manhattan distance between two points.
func (p Point) Distance(o Point) int {
	return abs(o.X-p.X) + abs(o.Y-p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var (
	edgeOffsets   = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	cornerOffsets = [4]Point{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)
