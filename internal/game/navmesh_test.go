package game

import "testing"

func TestNavGrid_UnblockedByDefault(t *testing.T) {
	ng := NewNavGrid(NewTileMap(10, 8))
	if ng.IsBlocked(0, 0) {
		t.Fatal("empty map should have no blocked cells")
	}
	if ng.IsBlocked(ng.cols-1, ng.rows-1) {
		t.Fatal("corner cell should not be blocked")
	}
}

func TestNavGrid_SolidTilesBlock(t *testing.T) {
	tm := NewTileMap(10, 8)
	tm.Set(4, 4, TileBuilding)
	tm.Set(0, 7, TileLevelEnd)
	tm.Set(5, 5, TileRoadVertical)
	ng := NewNavGrid(tm)
	if !ng.IsBlocked(4, 4) {
		t.Fatal("building cell should be blocked")
	}
	if !ng.IsBlocked(0, 7) {
		t.Fatal("level end cell should be blocked")
	}
	if ng.IsBlocked(5, 5) {
		t.Fatal("road cell should be drivable")
	}
}

func TestNavGrid_OOB_IsBlocked(t *testing.T) {
	ng := NewNavGrid(NewTileMap(10, 8))
	if !ng.IsBlocked(-1, 0) || !ng.IsBlocked(0, -1) || !ng.IsBlocked(ng.cols, 0) {
		t.Fatal("out-of-bounds cell should be blocked")
	}
}

func TestMapToCell(t *testing.T) {
	cx, cy := MapToCell(130, 300)
	if cx != 1 || cy != 2 {
		t.Fatalf("expected (1,2) got (%d,%d)", cx, cy)
	}
	cx, cy = MapToCell(-1, -129)
	if cx != -1 || cy != -2 {
		t.Fatalf("negative pixels should floor, got (%d,%d)", cx, cy)
	}
}

func TestFindPath_StraightLine(t *testing.T) {
	ng := NewNavGrid(NewTileMap(10, 10))
	path := ng.FindPath(CellToMap(1, 1), CellToMap(6, 1))
	if len(path) != 6 {
		t.Fatalf("expected 6 waypoints, got %d", len(path))
	}
	if path[len(path)-1] != CellToMap(6, 1) {
		t.Fatalf("path should end at goal cell centre, got %+v", path[len(path)-1])
	}
}

func TestFindPath_AroundWall(t *testing.T) {
	tm := NewTileMap(10, 10)
	for row := 0; row < 8; row++ {
		tm.Set(4, row, TileBuilding)
	}
	ng := NewNavGrid(tm)
	path := ng.FindPath(CellToMap(1, 1), CellToMap(7, 1))
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	for _, p := range path {
		cx, cy := MapToCell(p.X, p.Y)
		if ng.IsBlocked(cx, cy) {
			t.Fatalf("path crosses blocked cell (%d,%d)", cx, cy)
		}
	}
	// Around the wall bottom: 6 right plus 2*7 vertical, plus the start cell.
	if len(path) != 21 {
		t.Fatalf("expected shortest detour of 21 cells, got %d", len(path))
	}
}

func TestFindPath_NoDiagonalSqueeze(t *testing.T) {
	tm := NewTileMap(4, 4)
	// Two buildings touching only at a corner, everything else walled.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			tm.Set(col, row, TileBuilding)
		}
	}
	tm.Set(1, 1, TileEmpty)
	tm.Set(2, 2, TileEmpty)
	ng := NewNavGrid(tm)
	if path := ng.FindPath(CellToMap(1, 1), CellToMap(2, 2)); path != nil {
		t.Fatalf("diagonal corner squeeze should not be a route, got %v", path)
	}
}

func TestFindPath_BlockedGoal(t *testing.T) {
	tm := NewTileMap(5, 5)
	tm.Set(3, 3, TileBuilding)
	if path := NewNavGrid(tm).FindPath(CellToMap(0, 0), CellToMap(3, 3)); path != nil {
		t.Fatal("expected nil path to a blocked goal")
	}
}
