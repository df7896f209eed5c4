package game

import "testing"

func TestNewTileMap_DefaultEmpty(t *testing.T) {
	tm := NewTileMap(10, 8)
	if tm.Cols != 10 || tm.Rows != 8 {
		t.Fatalf("expected 10x8, got %dx%d", tm.Cols, tm.Rows)
	}
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			if k := tm.At(col, row); k != TileEmpty {
				t.Fatalf("tile (%d,%d) = %s, want empty", col, row, k)
			}
		}
	}
}

func TestTileMap_OutOfBoundsIsEmpty(t *testing.T) {
	tm := NewTileMap(4, 4)
	for i := range tm.Tiles {
		tm.Tiles[i] = TileBuilding
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-100, 100}} {
		if k := tm.At(c[0], c[1]); k != TileEmpty {
			t.Fatalf("At(%d,%d) = %s, want empty", c[0], c[1], k)
		}
	}
}

func TestTileMap_SetIgnoresOutOfBounds(t *testing.T) {
	tm := NewTileMap(3, 3)
	tm.Set(3, 0, TileBuilding)
	tm.Set(-1, 2, TileBuilding)
	if n := tm.Count(TileBuilding); n != 0 {
		t.Fatalf("out-of-bounds Set wrote %d tiles", n)
	}
	tm.Set(1, 2, TileBuilding)
	if tm.At(1, 2) != TileBuilding || tm.Tiles[2*3+1] != TileBuilding {
		t.Fatal("in-bounds Set should write row-major")
	}
}

func TestTileMap_AtPixel(t *testing.T) {
	tm := NewTileMap(4, 4)
	tm.Set(1, 2, TileAsphalt)
	if k := tm.AtPixel(RoadTileSize+5, 2*RoadTileSize+127); k != TileAsphalt {
		t.Fatalf("expected asphalt, got %s", k)
	}
	if k := tm.AtPixel(-1, 10); k != TileEmpty {
		t.Fatalf("negative pixel should be empty, got %s", k)
	}
}

func TestTileKind_Solid(t *testing.T) {
	for k := TileEmpty; k < tileKindCount; k++ {
		want := k == TileBuilding || k == TileLevelEnd
		if k.Solid() != want {
			t.Fatalf("%s.Solid() = %v, want %v", k, k.Solid(), want)
		}
	}
}

func TestTileMap_Equal(t *testing.T) {
	a, b := NewTileMap(3, 3), NewTileMap(3, 3)
	if !a.Equal(b) {
		t.Fatal("fresh maps should be equal")
	}
	b.Set(0, 0, TileGrass)
	if a.Equal(b) {
		t.Fatal("maps differing in one cell should not be equal")
	}
	if a.Equal(NewTileMap(3, 4)) || a.Equal(nil) {
		t.Fatal("maps of different size or nil should not be equal")
	}
}
