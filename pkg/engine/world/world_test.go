package world

import "testing"

func TestGrid_MarkAndReset(t *testing.T) {
	g := NewGrid(5)
	if g.Size() != 5 || g.Rows() != 5 || g.Cols() != 5 {
		t.Fatalf("dimensions = %d/%d/%d, want 5", g.Size(), g.Rows(), g.Cols())
	}
	if !g.MarkRoom(1, 1, 0) {
		t.Fatal("MarkRoom(1,1) = false, want true")
	}
	if g.MarkRoom(5, 0, 0) {
		t.Error("MarkRoom out of bounds = true, want false")
	}
	g.MarkCorridor(1, 1)
	if c := g.GetCell(1, 1); c.Kind != CellRoom || c.RoomIndex != 0 {
		t.Errorf("corridor over room changed cell to %v/%d, want Room/0", c.Kind, c.RoomIndex)
	}
	g.MarkCorridor(2, 1)
	if !g.GetCell(2, 1).IsCorridor() {
		t.Error("cell (2,1) is not a corridor")
	}
	if n := g.OccupiedCount(); n != 2 {
		t.Errorf("OccupiedCount() = %d, want 2", n)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	g.Reset()
	if n := g.OccupiedCount(); n != 0 {
		t.Errorf("OccupiedCount() after Reset = %d, want 0", n)
	}
	if c := g.GetCell(1, 1); c.RoomIndex != -1 {
		t.Errorf("RoomIndex after Reset = %d, want -1", c.RoomIndex)
	}
}

func TestGrid_IsAreaClear(t *testing.T) {
	g := NewGrid(6)
	g.MarkRoom(3, 3, 0)

	if !g.IsAreaClear(Room{X: 0, Y: 0, Width: 3, Height: 3}) {
		t.Error("empty corner reported as blocked")
	}
	if g.IsAreaClear(Room{X: 2, Y: 2, Width: 2, Height: 2}) {
		t.Error("area covering (3,3) reported as clear")
	}
	if g.IsAreaClear(Room{X: -1, Y: 0, Width: 2, Height: 2}) {
		t.Error("area leaving the grid reported as clear")
	}
}

func TestGrid_PositionChecks(t *testing.T) {
	g := NewGrid(4)
	if g.GetCell(-1, 0) != nil || g.GetCell(0, 4) != nil {
		t.Error("GetCell out of bounds returned a cell")
	}
	if g.IsOccupied(10, 10) {
		t.Error("IsOccupied out of bounds = true")
	}
	if g.IsPlayablePosition(0, 1) || !g.IsPlayablePosition(1, 2) || g.IsPlayablePosition(3, 1) {
		t.Error("IsPlayablePosition does not exclude the border")
	}
}

func TestGrid_OccupancySnapshot(t *testing.T) {
	g := NewGrid(3)
	g.MarkCorridor(0, 2)
	occ := g.Occupancy()
	if !occ[0][2] || occ[2][0] {
		t.Errorf("Occupancy() = %v, want only [0][2] set", occ)
	}
	occ[1][1] = true
	if g.IsOccupied(1, 1) {
		t.Error("mutating the snapshot changed the grid")
	}
}

func TestRoom_Geometry(t *testing.T) {
	r := Room{X: 2, Y: 3, Width: 5, Height: 4}
	if x, y := r.Center(); x != 4 || y != 5 {
		t.Errorf("Center() = %d,%d, want 4,5", x, y)
	}
	if !r.Contains(3, 2) || !r.Contains(6, 6) || r.Contains(7, 2) || r.Contains(3, 7) {
		t.Error("Contains disagrees with the rectangle bounds")
	}
	if p := r.Padded(1); p != (Room{X: 1, Y: 2, Width: 7, Height: 6}) {
		t.Errorf("Padded(1) = %+v", p)
	}
	if r.Footprint().Size() != r.Area() {
		t.Errorf("Footprint size %d != Area %d", r.Footprint().Size(), r.Area())
	}

	touching := Room{X: 7, Y: 3, Width: 2, Height: 2}
	if r.Intersects(touching) {
		t.Error("adjacent rooms reported as intersecting")
	}
	if !r.Padded(RoomPadding).Intersects(touching) {
		t.Error("adjacent room not caught by padding")
	}
	if r.Padded(RoomPadding).Intersects(Room{X: 8, Y: 3, Width: 2, Height: 2}) {
		t.Error("room one cell apart caught by padding")
	}
}

func TestReachable(t *testing.T) {
	g := NewGrid(5)
	g.MarkRoom(0, 0, 0)
	g.MarkCorridor(0, 1)
	g.MarkCorridor(1, 1)
	g.MarkRoom(4, 4, 1)

	got := Reachable(g, Point{Row: 0, Col: 0})
	if got.Size() != 3 {
		t.Errorf("Reachable size = %d, want 3", got.Size())
	}
	if got.Has(Point{Row: 4, Col: 4}) {
		t.Error("isolated cell reported reachable")
	}
	if Reachable(g, Point{Row: 2, Col: 2}).Size() != 0 {
		t.Error("Reachable from empty cell is not empty")
	}
}
