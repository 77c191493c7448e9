package world

// Rect is an axis-aligned block of world cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions in cells
}

// RectAround returns the square of cells within radius of (x, y).
func RectAround(x, y, radius int) Rect {
	if radius < 0 {
		radius = 0
	}
	return Rect{X: x - radius, Y: y - radius, Width: 2*radius + 1, Height: 2*radius + 1}
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Area returns the number of cells covered, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}
