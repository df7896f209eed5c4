package game

// TileKind identifies the surface drawn in one map cell.
type TileKind int8

const (
	TileEmpty          TileKind = iota - 1 // No tile; grass background shows through
	TileGrass                              // Background grass
	TileAsphalt                            // Plain road surface (junctions)
	TileRoadVertical                       // Road running top to bottom
	TileRoadHorizontal                     // Road running left to right
	TileRoadEndUp                          // Road capped at its top edge
	TileRoadEndDown                        // Road capped at its bottom edge
	TileRoadEndLeft                        // Road capped at its left edge
	TileRoadEndRight                       // Road capped at its right edge
	TileLevelEnd                           // Striped boundary of the level
	TileBuilding                           // Solid building roof
	tileKindCount                          // sentinel
)

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileGrass:
		return "grass"
	case TileAsphalt:
		return "asphalt"
	case TileRoadVertical:
		return "road_vertical"
	case TileRoadHorizontal:
		return "road_horizontal"
	case TileRoadEndUp:
		return "road_end_up"
	case TileRoadEndDown:
		return "road_end_down"
	case TileRoadEndLeft:
		return "road_end_left"
	case TileRoadEndRight:
		return "road_end_right"
	case TileLevelEnd:
		return "level_end"
	case TileBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Solid reports whether the car bounces off this tile.
func (k TileKind) Solid() bool {
	return k == TileBuilding || k == TileLevelEnd
}

// TileMap is the square grid of road tiles the level is built from.
type TileMap struct {
	Cols  int
	Rows  int
	Tiles []TileKind // row-major: index = row*Cols + col
}

// NewTileMap creates a tile map with every cell empty.
func NewTileMap(cols, rows int) *TileMap {
	tiles := make([]TileKind, cols*rows)
	for i := range tiles {
		tiles[i] = TileEmpty
	}
	return &TileMap{Cols: cols, Rows: rows, Tiles: tiles}
}

// inBounds returns true if (col, row) is within the tile map.
func (tm *TileMap) inBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// At returns the tile at (col, row), or TileEmpty if out of bounds.
func (tm *TileMap) At(col, row int) TileKind {
	if !tm.inBounds(col, row) {
		return TileEmpty
	}
	return tm.Tiles[row*tm.Cols+col]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (tm *TileMap) Set(col, row int, k TileKind) {
	if !tm.inBounds(col, row) {
		return
	}
	tm.Tiles[row*tm.Cols+col] = k
}

// AtPixel returns the tile containing the map-space pixel (x, y).
func (tm *TileMap) AtPixel(x, y int) TileKind {
	if x < 0 || y < 0 {
		return TileEmpty
	}
	return tm.At(x/RoadTileSize, y/RoadTileSize)
}

// Count returns how many cells hold kind k.
func (tm *TileMap) Count(k TileKind) int {
	n := 0
	for _, t := range tm.Tiles {
		if t == k {
			n++
		}
	}
	return n
}

// Equal reports whether two maps have identical size and contents.
func (tm *TileMap) Equal(other *TileMap) bool {
	if other == nil || tm.Cols != other.Cols || tm.Rows != other.Rows {
		return false
	}
	for i, t := range tm.Tiles {
		if other.Tiles[i] != t {
			return false
		}
	}
	return true
}
