package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Point is a grid position.
type Point struct {
	Row int
	Col int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	dr, dc := dir.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}
