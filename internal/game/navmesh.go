package game

import (
	"container/heap"
	"math"
)

// NavGrid is a walkability grid over the map's tiles, where true = blocked.
// One nav cell is one road tile.
type NavGrid struct {
	cols    int
	rows    int
	blocked []bool
}

// NewNavGrid builds a walkability grid from the tile map. Solid tiles are
// blocked; everything else, grass included, is drivable.
func NewNavGrid(tm *TileMap) *NavGrid {
	ng := &NavGrid{
		cols:    tm.Cols,
		rows:    tm.Rows,
		blocked: make([]bool, tm.Cols*tm.Rows),
	}
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			ng.blocked[row*tm.Cols+col] = tm.At(col, row).Solid()
		}
	}
	return ng
}

// IsBlocked returns true if the cell at (cx, cy) is not drivable.
func (ng *NavGrid) IsBlocked(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= ng.cols || cy >= ng.rows {
		return true
	}
	return ng.blocked[cy*ng.cols+cx]
}

// MapToCell converts map pixel coordinates to grid cell coordinates.
func MapToCell(x, y float64) (int, int) {
	return int(math.Floor(x / RoadTileSize)), int(math.Floor(y / RoadTileSize))
}

// CellToMap converts grid cell coordinates to the map pixel at the cell centre.
func CellToMap(cx, cy int) point {
	return point{
		X: float64(cx*RoadTileSize) + RoadTileSize/2,
		Y: float64(cy*RoadTileSize) + RoadTileSize/2,
	}
}

// --- A* pathfinding ---

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int)      { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x any)        { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// Only the four axis directions: the car is as wide as half a tile, so a
// diagonal step between two touching buildings is never drivable.
var navDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindPath returns map-pixel waypoints (cell centres) from the cell holding
// from to the cell holding to, both ends included. Returns nil if either end
// is blocked or no route exists.
func (ng *NavGrid) FindPath(from, to point) []point {
	scx, scy := MapToCell(from.X, from.Y)
	gcx, gcy := MapToCell(to.X, to.Y)

	if ng.IsBlocked(scx, scy) || ng.IsBlocked(gcx, gcy) {
		return nil
	}

	key := func(cx, cy int) int { return cy*ng.cols + cx }
	heuristic := func(ax, ay, bx, by int) float64 {
		return math.Abs(float64(ax-bx)) + math.Abs(float64(ay-by))
	}

	start := &pathNode{cx: scx, cy: scy, h: heuristic(scx, scy, gcx, gcy)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := make(map[int]*pathNode)
	best[key(scx, scy)] = start

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == gcx && cur.cy == gcy {
			return buildPath(cur)
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range navDirs {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if ng.IsBlocked(nx, ny) {
				continue
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[nk]; ok && g >= prev.g {
				continue
			}
			node := &pathNode{cx: nx, cy: ny, g: g, h: heuristic(nx, ny, gcx, gcy), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildPath(end *pathNode) []point {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	// Reverse
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	path := make([]point, len(cells))
	for i, c := range cells {
		path[i] = CellToMap(c[0], c[1])
	}
	return path
}
