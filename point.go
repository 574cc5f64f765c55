package simulator

// Point represents a 2D integer coordinate, in either display space or
// output surface space.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ComponentMul returns the element-wise product of two points.
func (p Point) ComponentMul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// ComponentDiv returns the element-wise quotient of two points, using Go
// integer division. Both components of q must be non-zero.
func (p Point) ComponentDiv(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Size represents a 2D dimension in whole units of either coordinate space.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// SzEqual creates a square Size with both dimensions set to v.
func SzEqual(v int) Size {
	return Size{Width: v, Height: v}
}
