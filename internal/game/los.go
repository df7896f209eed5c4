package game

import "math"

// HasLineOfSight returns true if a straight line from (ax,ay) to (bx,by), in
// map pixels, crosses no solid tile. Only tiles in the segment's bounding
// box are tested, each with a ray-vs-AABB check.
func HasLineOfSight(tm *TileMap, ax, ay, bx, by float64) bool {
	c0 := int(math.Floor(math.Min(ax, bx) / RoadTileSize))
	c1 := int(math.Floor(math.Max(ax, bx) / RoadTileSize))
	r0 := int(math.Floor(math.Min(ay, by) / RoadTileSize))
	r1 := int(math.Floor(math.Max(ay, by) / RoadTileSize))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !tm.At(col, row).Solid() {
				continue
			}
			x, y := float64(col*RoadTileSize), float64(row*RoadTileSize)
			if rayIntersectsAABB(ax, ay, bx, by, x, y, x+RoadTileSize, y+RoadTileSize) {
				return false
			}
		}
	}
	return true
}

// hasClearLane is HasLineOfSight for a body of the given half width: the
// centre line and both edge lines must be unobstructed.
func hasClearLane(tm *TileMap, a, b point, halfWidth float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return HasLineOfSight(tm, a.X, a.Y, b.X, b.Y)
	}
	nx, ny := -dy/l*halfWidth, dx/l*halfWidth
	return HasLineOfSight(tm, a.X, a.Y, b.X, b.Y) &&
		HasLineOfSight(tm, a.X+nx, a.Y+ny, b.X+nx, b.Y+ny) &&
		HasLineOfSight(tm, a.X-nx, a.Y-ny, b.X-nx, b.Y-ny)
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the line
// from (ox,oy)->(ex,ey) enters the AABB. The bool is false when no hit exists.
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	dx := ex - ox
	dy := ey - oy

	tMin := 0.0
	tMax := 1.0

	// Check X slab
	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Check Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}

	if tMin < 0 {
		tMin = 0
	}
	if tMin > 1 {
		return 0, false
	}

	return tMin, true
}

// rayIntersectsAABB checks if the line segment from (ox,oy)->(ex,ey)
// intersects the axis-aligned bounding box defined by (minX,minY)-(maxX,maxY).
func rayIntersectsAABB(ox, oy, ex, ey, minX, minY, maxX, maxY float64) bool {
	_, hit := rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY)
	return hit
}
