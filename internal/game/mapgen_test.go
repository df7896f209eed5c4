package game

import (
	"errors"
	"testing"
)

func TestBlockCountForSeed(t *testing.T) {
	cases := map[int64]int{0: 1, 1: 2, 2: 3, 42: 1, 43: 2, -1: 3, -2: 2, -3: 1}
	for seed, want := range cases {
		if got := BlockCountForSeed(seed); got != want {
			t.Fatalf("BlockCountForSeed(%d) = %d, want %d", seed, got, want)
		}
	}
}

func TestGenerateMap_SizeAndBorder(t *testing.T) {
	for blocks := 1; blocks <= 3; blocks++ {
		tm, _, err := GenerateMap(blocks, NewRng(int64(blocks)))
		if err != nil {
			t.Fatal(err)
		}
		side := 4*blocks + 22
		if tm.Cols != side || tm.Rows != side || MapSide(blocks) != side {
			t.Fatalf("%d blocks: map is %dx%d, want side %d", blocks, tm.Cols, tm.Rows, side)
		}
		for i := 0; i < side; i++ {
			for _, c := range [][2]int{{i, 0}, {i, side - 1}, {0, i}, {side - 1, i}} {
				if k := tm.At(c[0], c[1]); k != TileLevelEnd {
					t.Fatalf("%d blocks: border (%d,%d) is %s", blocks, c[0], c[1], k)
				}
			}
		}
		// Only the border is level end.
		if got := tm.Count(TileLevelEnd); got != 4*(side-1) {
			t.Fatalf("%d blocks: %d level end tiles, want %d", blocks, got, 4*(side-1))
		}
	}
}

func TestGenerateMap_BuildingsAwayFromBorder(t *testing.T) {
	tm, _, err := GenerateMap(3, NewRng(3))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			if tm.At(col, row) != TileBuilding {
				continue
			}
			if col < 2 || row < 2 || col > tm.Cols-3 || row > tm.Rows-3 {
				t.Fatalf("building at (%d,%d) touches the border", col, row)
			}
		}
	}
	if got := tm.Count(TileBuilding); got != 4*9 {
		t.Fatalf("expected 36 building tiles for 3x3 blocks, got %d", got)
	}
}

func TestGenerateMap_SingleBlockLayout(t *testing.T) {
	tm, _, err := GenerateMap(1, NewRng(0))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			if got, want := tm.At(11+col, 11+row), blockPattern[row][col]; got != want {
				t.Fatalf("block cell (%d,%d) = %s, want %s", col, row, got, want)
			}
		}
	}
}

func TestGenerateMap_AdjoiningBlocksShareRoads(t *testing.T) {
	tm, _, err := GenerateMap(2, NewRng(0))
	if err != nil {
		t.Fatal(err)
	}
	// The second block starts three tiles in and skips its leading edge, so
	// its stub row does not overwrite the first block's bottom road.
	if k := tm.At(12, 15); k != TileAsphalt {
		t.Fatalf("shared junction = %s, want asphalt", k)
	}
	if k := tm.At(14, 15); k != TileRoadHorizontal {
		t.Fatalf("shared road = %s, want horizontal road", k)
	}
}

func TestGenerateMap_Pedestrians(t *testing.T) {
	for blocks := 1; blocks <= 3; blocks++ {
		tm, peds, err := GenerateMap(blocks, NewRng(77))
		if err != nil {
			t.Fatal(err)
		}
		if len(peds) != 20*blocks {
			t.Fatalf("%d blocks: %d pedestrians, want %d", blocks, len(peds), 20*blocks)
		}
		lo := 8*RoadTileSize + 50
		hi := lo + blocks*4*RoadTileSize + 100
		for i, p := range peds {
			if !p.Alive() {
				t.Fatalf("pedestrian %d starts dead", i)
			}
			if tm.AtPixel(p.X, p.Y) == TileBuilding {
				t.Fatalf("pedestrian %d stands on a building at (%d,%d)", i, p.X, p.Y)
			}
			if p.X < lo || p.X >= hi || p.Y < lo || p.Y >= hi {
				t.Fatalf("pedestrian %d at (%d,%d) outside the spawn square", i, p.X, p.Y)
			}
			if p.Variant < 0 || p.Variant >= PedestrianVariants {
				t.Fatalf("pedestrian %d has variant %d", i, p.Variant)
			}
		}
	}
}

func TestGenerateMap_Deterministic(t *testing.T) {
	a, pa, err := GenerateMap(2, NewRng(1234))
	if err != nil {
		t.Fatal(err)
	}
	b, pb, _ := GenerateMap(2, NewRng(1234))
	if !a.Equal(b) {
		t.Fatal("same seed produced different maps")
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("pedestrian %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestGenerateMap_RejectsZeroBlocks(t *testing.T) {
	if _, _, err := GenerateMap(0, NewRng(1)); err == nil {
		t.Fatal("expected an error for zero blocks")
	}
}

func TestGenerateMap_NoSpawnSpace(t *testing.T) {
	cfg := defaultMapGenConfig
	cfg.MaxSpawnAttempts = 5
	// Spawn square entirely inside the building core.
	cfg.SpawnOrigin = 13 * RoadTileSize
	cfg.SpawnSpanPerBlock = 2 * RoadTileSize
	cfg.SpawnSpanExtra = 0
	_, _, err := generateMap(1, NewRng(1), cfg)
	if !errors.Is(err, ErrNoSpawnSpace) {
		t.Fatalf("expected ErrNoSpawnSpace, got %v", err)
	}
}
