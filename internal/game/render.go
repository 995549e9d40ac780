package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/particles"
	"github.com/vovakirdan/tether/internal/sim"
)

// Each tile is drawn as two terminal columns on one row.
const tileCols = 2

// Sprites
var (
	topFrames    = [2]string{"▟▙", "▙▟"}
	bottomFrames = [2]string{"▜▛", "▛▜"}
	enemyFrames  = [2]string{"<>", "><"}
	portalFrames = [2]string{"░▒", "▒░"}
)

const (
	gunRune    = '━'
	bulletRune = '•'
)

// view maps world pixels to screen cells.
type view struct {
	camX float64
	ts   float64
	top  int // Screen row of grid row 0
}

// col returns the screen column of world X.
func (v view) col(x float64) int {
	return int(math.Floor((x - v.camX) / v.ts * tileCols))
}

// row returns the screen row of a tile-aligned world Y.
func (v view) row(y float64) int {
	return v.top + int(math.Round(y/v.ts))
}

// cellRenderer draws particles into a screen buffer.
type cellRenderer struct {
	dst *core.Screen
	v   view
}

// FillSquare implements particles.Renderer. Alpha particles only fill blank
// cells; additive particles draw over anything.
func (r cellRenderer) FillSquare(x, y, size float64, c core.Color, mode particles.BlendMode) {
	col := r.v.col(x)
	row := r.v.top + int(math.Floor(y/r.v.ts))
	if mode == particles.BlendAlpha && r.dst.Get(col, row) != ' ' {
		return
	}
	r.dst.SetColored(col, row, particleRune(size), c)
}

func particleRune(size float64) rune {
	switch {
	case size < 2:
		return '·'
	case size < 3.5:
		return '•'
	default:
		return '●'
	}
}

// viewFor positions the grid vertically in the space below the HUD.
func viewFor(w *sim.World, dst *core.Screen) view {
	top := 1
	if free := dst.Height() - 1 - w.Grid.Height; free > 0 {
		top += free / 2
	}
	return view{camX: w.Camera.X, ts: w.Params.TileSize, top: top}
}

// drawWorld renders tiles, enemies, bullets, characters and particles.
func drawWorld(dst *core.Screen, w *sim.World, fx *Effects, clock float64) {
	drawWorldView(dst, w, fx, clock, viewFor(w, dst))
}

// drawWorldView renders the world through an explicit view. fx may be nil.
func drawWorldView(dst *core.Screen, w *sim.World, fx *Effects, clock float64, v view) {
	ts := w.Params.TileSize
	blink := int(clock*4) % 2

	first := core.FloorDiv(w.Camera.X, ts)
	last := first + dst.Width()/tileCols + 1
	for row := 0; row < w.Grid.Height; row++ {
		for col := first; col <= last; col++ {
			glyph, c := tileGlyph(w.Grid.At(col, row), blink)
			if glyph == "" {
				continue
			}
			dst.DrawTextColored(v.col(float64(col)*ts), v.row(float64(row)*ts), glyph, c)
		}
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		c := core.ColorBlood
		if e.Hit() {
			c = core.ColorWhite
		}
		dst.DrawTextColored(v.col(e.Pos.X), v.row(e.Pos.Y+e.Bob(w.Params)), enemyFrames[blink], c)
	}

	for _, b := range w.Bullets {
		dst.SetColored(v.col(b.Pos.X), v.top+int(math.Floor(b.Pos.Y/ts)), bulletRune, core.ColorSand)
	}

	x := v.col(w.PlayerX)
	drawCharacter(dst, &w.Top, x, v, topFrames, core.ColorSky)
	drawCharacter(dst, &w.Bottom, x, v, bottomFrames, core.ColorEmber)
	holder := w.GunHolder()
	dst.SetColored(x+tileCols, v.row(holder.Y), gunRune, core.ColorGray)

	if fx != nil {
		fx.Draw(cellRenderer{dst: dst, v: v})
	}
}

func drawCharacter(dst *core.Screen, c *sim.Character, x int, v view, frames [2]string, color core.Color) {
	dst.DrawTextColored(x, v.row(c.Y), frames[c.AnimFrame%len(frames)], color)
}

func tileGlyph(t level.TileType, blink int) (string, core.Color) {
	switch t {
	case level.TileFloor:
		return "██", core.ColorMoss
	case level.TilePlatform:
		return "▓▓", core.ColorLeaf
	case level.TilePortal1, level.TilePortal2:
		return portalFrames[blink], core.ColorPortal
	default:
		return "", core.ColorDefault
	}
}

// drawHUD renders the status line on row 0.
func drawHUD(dst *core.Screen, title string, st core.GameState, gunAtTop bool, progress float64) {
	lives := "∞"
	if st.Lives >= 0 {
		lives = fmt.Sprintf("%d", st.Lives)
	}
	gun := "▼"
	if gunAtTop {
		gun = "▲"
	}
	left := fmt.Sprintf(" %s  Score: %d  Lives: %s  Gun: %s", title, st.Score, lives, gun)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	const barW = 20
	filled := int(core.Clamp(progress, 0, 1) * barW)
	bar := "[" + strings.Repeat("■", filled) + strings.Repeat("·", barW-filled) + "]"
	dst.DrawTextColored(dst.Width()-len([]rune(bar))-1, 0, bar, core.ColorPortal)
}

// drawPanel draws a centered box with one line of text per row.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	x, y := (dst.Width()-w)/2, (dst.Height()-h)/2
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		dst.DrawTextColored(x+2, y+1+i, l, core.ColorWhite)
	}
}
