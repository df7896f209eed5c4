package game

import "testing"

// losMap returns an empty 10x10 map with the given solid cells.
func losMap(cells ...[2]int) *TileMap {
	tm := NewTileMap(10, 10)
	for _, c := range cells {
		tm.Set(c[0], c[1], TileBuilding)
	}
	return tm
}

func TestLOS_ClearLine(t *testing.T) {
	if !HasLineOfSight(losMap(), 10, 10, 1000, 1000) {
		t.Fatal("expected clear LOS on an empty map")
	}
}

func TestLOS_BlockedByBuilding(t *testing.T) {
	tm := losMap([2]int{2, 1})
	// Ray along row 1 passes through the building at column 2.
	if HasLineOfSight(tm, 10, 192, 600, 192) {
		t.Fatal("expected LOS blocked by building")
	}
}

func TestLOS_BuildingBeyondEndpoint_NotBlocked(t *testing.T) {
	tm := losMap([2]int{5, 0})
	if !HasLineOfSight(tm, 0, 64, 500, 64) {
		t.Fatal("building beyond endpoint should not block LOS")
	}
}

func TestLOS_VerticalRay_Blocked(t *testing.T) {
	tm := losMap([2]int{1, 3})
	if HasLineOfSight(tm, 200, 10, 200, 900) {
		t.Fatal("expected vertical ray blocked by building")
	}
}

func TestLOS_LevelEndBlocks(t *testing.T) {
	tm := NewTileMap(10, 10)
	tm.Set(3, 3, TileLevelEnd)
	if HasLineOfSight(tm, 0, 0, 1000, 1000) {
		t.Fatal("diagonal ray through the level boundary should be blocked")
	}
}

func TestLOS_RoadDoesNotBlock(t *testing.T) {
	tm := NewTileMap(10, 10)
	tm.Set(2, 1, TileRoadHorizontal)
	tm.Set(3, 1, TileAsphalt)
	if !HasLineOfSight(tm, 10, 192, 600, 192) {
		t.Fatal("road tiles should not block LOS")
	}
}

func TestLOS_ZeroLength(t *testing.T) {
	tm := losMap([2]int{0, 0})
	if HasLineOfSight(tm, 50, 50, 50, 50) {
		t.Fatal("a point inside a building has no LOS")
	}
}

func TestHasClearLane_EdgeClipsBuilding(t *testing.T) {
	tm := losMap([2]int{3, 2})
	// Centre line at y=250 runs just below the building (y 256..384 is row 2),
	// one edge line at y=250+40 runs through it.
	a, b := point{10, 250}, point{1000, 250}
	if !HasLineOfSight(tm, a.X, a.Y, b.X, b.Y) {
		t.Fatal("centre line should be clear")
	}
	if hasClearLane(tm, a, b, 40) {
		t.Fatal("lane 80 px wide should be blocked by the building")
	}
}

func TestRayIntersectsAABB_InsideBox(t *testing.T) {
	if !rayIntersectsAABB(10, 10, 20, 20, 0, 0, 100, 100) {
		t.Fatal("ray with both endpoints inside AABB should intersect")
	}
}

func TestRayIntersectsAABB_Miss(t *testing.T) {
	if rayIntersectsAABB(0, 0, 0, 100, 50, 0, 150, 100) {
		t.Fatal("ray to the left of AABB should not intersect")
	}
}
