package game

import (
	"errors"
	"fmt"
)

// ErrNoSpawnSpace is returned when a pedestrian cannot be placed on a
// non-building tile within the attempt budget.
var ErrNoSpawnSpace = errors.New("no free tile for pedestrian")

// mapGenConfig holds the layout constants for city generation.
type mapGenConfig struct {
	BorderPadding       int // tiles added around the blocks (grid side = 4*blocks + padding)
	BlockOrigin         int // tile index of the first block's top-left corner
	BlockStride         int // tiles between adjacent block origins
	PedestriansPerBlock int
	SpawnOrigin         int // map pixel where the spawn square starts on both axes
	SpawnSpanPerBlock   int // spawn square growth per block, in pixels
	SpawnSpanExtra      int
	MaxSpawnAttempts    int // rejection-sampling budget per pedestrian
}

var defaultMapGenConfig = mapGenConfig{
	BorderPadding:       22,
	BlockOrigin:         11,
	BlockStride:         3,
	PedestriansPerBlock: 20,
	SpawnOrigin:         8*RoadTileSize + 50,
	SpawnSpanPerBlock:   4 * RoadTileSize,
	SpawnSpanExtra:      100,
	MaxSpawnAttempts:    10000,
}

// blockPattern is one city block: a 2x2 building core ringed by road, with
// road stubs leading out of each side. Indexed [row][col].
var blockPattern = [6][6]TileKind{
	{TileEmpty, TileRoadEndUp, TileEmpty, TileEmpty, TileRoadEndUp, TileEmpty},
	{TileRoadEndLeft, TileAsphalt, TileRoadHorizontal, TileRoadHorizontal, TileAsphalt, TileRoadEndRight},
	{TileEmpty, TileRoadVertical, TileBuilding, TileBuilding, TileRoadVertical, TileEmpty},
	{TileEmpty, TileRoadVertical, TileBuilding, TileBuilding, TileRoadVertical, TileEmpty},
	{TileRoadEndLeft, TileAsphalt, TileRoadHorizontal, TileRoadHorizontal, TileAsphalt, TileRoadEndRight},
	{TileEmpty, TileRoadEndDown, TileEmpty, TileEmpty, TileRoadEndDown, TileEmpty},
}

// BlockCountForSeed derives the city size (1..3 blocks per side) from the seed.
func BlockCountForSeed(seed int64) int {
	return int(((seed%3)+3)%3) + 1
}

// MapSide returns the grid side length for blockCount blocks.
func MapSide(blockCount int) int {
	return 4*blockCount + defaultMapGenConfig.BorderPadding
}

// GenerateMap lays out blockCount x blockCount city blocks and scatters
// pedestrians over the non-building tiles of the generated area.
func GenerateMap(blockCount int, rng *Rng) (*TileMap, []Pedestrian, error) {
	return generateMap(blockCount, rng, defaultMapGenConfig)
}

func generateMap(blockCount int, rng *Rng, cfg mapGenConfig) (*TileMap, []Pedestrian, error) {
	if blockCount < 1 {
		return nil, nil, fmt.Errorf("generate map: block count %d must be at least 1", blockCount)
	}
	tm := newBorderedMap(4*blockCount + cfg.BorderPadding)
	stampBlocks(tm, blockCount, cfg)

	peds, err := placePedestrians(tm, blockCount, rng, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("generate map: %w", err)
	}
	return tm, peds, nil
}

// newBorderedMap creates a square map whose outer ring is level boundary.
func newBorderedMap(side int) *TileMap {
	tm := NewTileMap(side, side)
	for i := 0; i < side; i++ {
		tm.Set(i, 0, TileLevelEnd)
		tm.Set(i, side-1, TileLevelEnd)
		tm.Set(0, i, TileLevelEnd)
		tm.Set(side-1, i, TileLevelEnd)
	}
	return tm
}

// stampBlocks writes the block pattern for every block. Blocks after the
// first in a row or column skip their leading edge so adjoining blocks share
// a single road instead of doubling it.
func stampBlocks(tm *TileMap, blockCount int, cfg mapGenConfig) {
	for bx := 0; bx < blockCount; bx++ {
		for by := 0; by < blockCount; by++ {
			originCol := cfg.BlockOrigin + bx*cfg.BlockStride
			originRow := cfg.BlockOrigin + by*cfg.BlockStride
			startCol, startRow := 0, 0
			if bx > 0 {
				startCol = 1
			}
			if by > 0 {
				startRow = 1
			}
			for row := startRow; row < len(blockPattern); row++ {
				for col := startCol; col < len(blockPattern[row]); col++ {
					tm.Set(originCol+col, originRow+row, blockPattern[row][col])
				}
			}
		}
	}
}

// placePedestrians rejection-samples spawn points inside the spawn square
// until each lands on a tile that is not a building.
func placePedestrians(tm *TileMap, blockCount int, rng *Rng, cfg mapGenConfig) ([]Pedestrian, error) {
	count := blockCount * cfg.PedestriansPerBlock
	span := blockCount*cfg.SpawnSpanPerBlock + cfg.SpawnSpanExtra
	peds := make([]Pedestrian, 0, count)
	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt < cfg.MaxSpawnAttempts; attempt++ {
			x := cfg.SpawnOrigin + rng.Intn(span)
			y := cfg.SpawnOrigin + rng.Intn(span)
			if tm.AtPixel(x, y) == TileBuilding {
				continue
			}
			peds = append(peds, NewPedestrian(x, y, rng.Intn(PedestrianVariants)))
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("pedestrian %d of %d: %w", i+1, count, ErrNoSpawnSpace)
		}
	}
	return peds, nil
}
