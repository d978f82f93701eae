package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns all occupied cells reachable from start via N/E/S/W steps.
// An empty set is returned when start is not occupied.
func Reachable(g *Grid, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsOccupied(start.Row, start.Col) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if g.IsOccupied(next.Row, next.Col) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}
