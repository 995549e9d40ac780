package sim

import (
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
)

// tileRect returns the world box of grid cell (col, row).
func tileRect(col, row int, ts float64) core.Rect {
	return core.NewRect(float64(col)*ts, float64(row)*ts, ts, ts)
}

// probe tests r against the tiles in the three columns around centerX and
// every row r spans. The first tile accepted by match that overlaps r wins.
func probe(g *level.Grid, r core.Rect, centerX, ts float64, match func(level.TileType) bool) (col, row int, ok bool) {
	cx := core.FloorDiv(centerX, ts)
	r0 := core.FloorDiv(r.Y, ts)
	r1 := core.FloorDiv(r.Bottom(), ts)

	for dc := -1; dc <= 1; dc++ {
		c := cx + dc
		for rr := r0; rr <= r1; rr++ {
			if !match(g.At(c, rr)) {
				continue
			}
			if r.Intersects(tileRect(c, rr, ts)) {
				return c, rr, true
			}
		}
	}
	return 0, 0, false
}

// probeSpan tests r against every tile it covers.
func probeSpan(g *level.Grid, r core.Rect, ts float64, match func(level.TileType) bool) bool {
	c0, c1 := core.FloorDiv(r.X, ts), core.FloorDiv(r.Right(), ts)
	r0, r1 := core.FloorDiv(r.Y, ts), core.FloorDiv(r.Bottom(), ts)

	for c := c0; c <= c1; c++ {
		for rr := r0; rr <= r1; rr++ {
			if match(g.At(c, rr)) && r.Intersects(tileRect(c, rr, ts)) {
				return true
			}
		}
	}
	return false
}

func isSolid(t level.TileType) bool    { return t.Solid() }
func isPlatform(t level.TileType) bool { return t == level.TilePlatform }
