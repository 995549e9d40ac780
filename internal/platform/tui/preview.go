package tui

import (
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
)

// tileColors matches the in-game colors of each tile.
var tileColors = map[level.TileType]core.Color{
	level.TileFloor:    core.ColorMoss,
	level.TilePlatform: core.ColorLeaf,
	level.TileSpawn1:   core.ColorSky,
	level.TileSpawn2:   core.ColorEmber,
	level.TileEnemy:    core.ColorBlood,
	level.TilePortal1:  core.ColorPortal,
	level.TilePortal2:  core.ColorPortal,
}

// PreviewScreen draws a grid one cell per tile using the level characters.
// Grids wider than maxWidth are cut off; maxWidth <= 0 means no limit.
func PreviewScreen(g *level.Grid, maxWidth int) *core.Screen {
	w := g.Width
	if maxWidth > 0 {
		w = min(w, maxWidth)
	}
	s := core.NewScreen(w, g.Height)
	for y := range g.Height {
		for x := range w {
			t := g.At(x, y)
			if t == level.TileVoid {
				continue
			}
			s.SetColored(x, y, t.Rune(), tileColors[t])
		}
	}
	return s
}

// RenderLevel returns a colored preview of a grid.
func RenderLevel(g *level.Grid, maxWidth int) string {
	return RenderScreen(PreviewScreen(g, maxWidth))
}
