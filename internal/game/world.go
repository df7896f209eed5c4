package game

import (
	"fmt"
	"image"
)

// Screen and tile geometry in pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TileSize     = 64  // grass, pedestrian and blood sprites
	RoadTileSize = 128 // one map cell
)

// World is everything generated from a seed at startup.
type World struct {
	Seed      int64
	Rng       *Rng
	Assets    *AssetSet
	Car       *CarModel
	CarSprite *image.RGBA
	Sim       *Simulation
}

// NewWorld builds a world from seed. Generation runs in a fixed order over a
// single random stream (grass, checkered, pedestrian families, road tiles,
// then the map and pedestrian placement), so equal seeds give equal worlds.
func NewWorld(seed int64) (*World, error) {
	rng := NewRng(seed)

	assets, err := GenerateAssets(rng)
	if err != nil {
		return nil, fmt.Errorf("new world (seed %d): %w", seed, err)
	}

	car := BuildCarModel(seed)

	tm, peds, err := GenerateMap(BlockCountForSeed(seed), rng)
	if err != nil {
		return nil, fmt.Errorf("new world (seed %d): %w", seed, err)
	}

	return &World{
		Seed:      seed,
		Rng:       rng,
		Assets:    assets,
		Car:       car,
		CarSprite: car.Render(),
		Sim:       NewSimulation(tm, peds, rng),
	}, nil
}
