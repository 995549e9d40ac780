package game

import (
	"strings"

	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/sim"
)

// menuScene is the level that loops behind the menu and help screens.
// Enemies float two rows clear of the runners so the loop never dies.
var menuScene = strings.Join([]string{
	"            O                         O                          ",
	"",
	"   1                                                            ]",
	"=================================================================",
	"   2                                                            }",
	"",
	"                         O                          O            ",
}, "\n")

// sceneActions are the keys the menu scene reacts to. Jump and the runner
// keys drive the menu itself.
var sceneActions = []core.Action{core.ActionFire, core.ActionSwap}

// resetMenuScene builds a silent world for the menu background.
func (g *Game) resetMenuScene() {
	g.scene = sim.NewWorld(level.Parse(menuScene), g.base, sim.NopSound{})
}

// stepMenuScene advances the background run and starts it over whenever it
// reaches the portal.
func (g *Game) stepMenuScene(in core.InputFrame, dt float64) {
	if g.scene == nil {
		return
	}
	keys := core.NewInputFrame()
	for _, a := range sceneActions {
		if in.IsPressed(a) {
			keys.Set(a)
		}
	}
	g.scene.Step(dt, keys)
	if g.scene.NextLevel || g.scene.RestartLevel {
		g.scene.Restart()
	}
}

// drawMenuScene draws the background run along the bottom of the screen
// and returns the first row it covers.
func (g *Game) drawMenuScene(dst *core.Screen) int {
	if g.scene == nil {
		return dst.Height()
	}
	top := max(1, dst.Height()-g.scene.Grid.Height)
	drawWorldView(dst, g.scene, nil, g.clock, view{camX: g.scene.Camera.X, ts: g.scene.Params.TileSize, top: top})
	return top
}
