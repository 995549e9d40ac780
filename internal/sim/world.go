package sim

import (
	"math"

	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
)

// World is the complete simulation state for one level.
type World struct {
	Params Params
	Grid   *level.Grid

	Top     Character
	Bottom  Character
	PlayerX float64

	AgainstWall bool
	GunAtTop    bool

	Camera  Camera
	Enemies []Enemy
	Bullets []Bullet

	// PortalX is the X at which the level is complete. +Inf when the level
	// has no portal.
	PortalX float64

	// Flags polled and cleared by the caller once per tick.
	RestartLevel bool
	NextLevel    bool

	// Effects raised by the last Step.
	Effects []Effect

	sound SoundPlayer
}

// NewWorld creates a world for the grid and places everything at its spawn.
// A nil grid is treated as an empty level and a nil sound player as silence.
func NewWorld(g *level.Grid, p Params, sound SoundPlayer) *World {
	if sound == nil {
		sound = NopSound{}
	}
	w := &World{Params: p, sound: sound}
	w.SetGrid(g)
	return w
}

// SetGrid swaps in a new level and restarts.
func (w *World) SetGrid(g *level.Grid) {
	if g == nil {
		g = level.NewGrid(0, 0)
	}
	w.Grid = g
	w.Restart()
}

// Restart places the characters on their spawn tiles, rebuilds enemies from
// the grid, drops bullets and resets the camera and flags.
func (w *World) Restart() {
	p := w.Params
	ts := p.TileSize

	col1, row1, _ := w.Grid.Find(level.TileSpawn1)
	_, row2, ok2 := w.Grid.Find(level.TileSpawn2)
	if !ok2 {
		row2 = row1
	}

	w.PlayerX = float64(col1) * ts
	w.Top.reset(float64(row1)*ts, OrientTop)
	w.Bottom.reset(float64(row2)*ts, OrientBottom)

	w.AgainstWall = false
	w.GunAtTop = true
	w.Camera = Camera{X: w.PlayerX - p.StartLag, Speed: p.MoveSpeed}

	w.Enemies = w.Enemies[:0]
	for _, cell := range w.Grid.FindAll(level.TileEnemy) {
		w.Enemies = append(w.Enemies, newEnemy(cell[0], cell[1], p))
	}
	w.Bullets = w.Bullets[:0]

	w.PortalX = math.Inf(1)
	for _, t := range []level.TileType{level.TilePortal1, level.TilePortal2} {
		if col, _, ok := w.Grid.Find(t); ok {
			w.PortalX = min(w.PortalX, float64(col)*ts)
		}
	}

	w.RestartLevel = false
	w.NextLevel = false
	w.Effects = w.Effects[:0]
}

// ClearFlags resets the restart and next-level flags.
func (w *World) ClearFlags() {
	w.RestartLevel = false
	w.NextLevel = false
}

// Characters returns pointers to the top and bottom characters.
func (w *World) Characters() [2]*Character {
	return [2]*Character{&w.Top, &w.Bottom}
}

// GunHolder returns the character currently holding the gun.
func (w *World) GunHolder() *Character {
	if w.GunAtTop {
		return &w.Top
	}
	return &w.Bottom
}

// Lag returns the distance between the player and the camera.
func (w *World) Lag() float64 {
	return w.Camera.Lag(w.PlayerX)
}

// Progress returns how far through the level the player is, in [0, 1].
func (w *World) Progress() float64 {
	if math.IsInf(w.PortalX, 1) || w.PortalX <= 0 {
		return 0
	}
	return core.Clamp(w.PlayerX/w.PortalX, 0, 1)
}

// jumpKeys maps each character to the action that jumps it alone.
// core.ActionJump jumps both.
var jumpKeys = [2]core.Action{core.ActionUp, core.ActionDown}

// Step advances the world by dt seconds.
func (w *World) Step(dt float64, keys core.KeyState) Events {
	p := w.Params
	ts := p.TileSize
	w.Effects = w.Effects[:0]

	var ev Events
	chars := w.Characters()

	// Contacts.
	w.AgainstWall = false
	for _, c := range chars {
		wasGrounded := c.OnGround
		c.OnGround = false
		if !c.GoingUp {
			_, _, c.OnGround = probe(w.Grid, c.groundProbe(w.PlayerX, p), w.PlayerX+ts/2, ts, isSolid)
		}
		_, _, c.AgainstCeiling = probe(w.Grid, c.ceilingProbe(w.PlayerX, p), w.PlayerX+ts/2, ts, isPlatform)
		if probeSpan(w.Grid, c.wallProbe(w.PlayerX, p), ts, isSolid) {
			w.AgainstWall = true
		}
		if c.OnGround && !wasGrounded {
			ev |= EventLanded
			w.Effects = append(w.Effects, Effect{Event: EventLanded, Pos: c.Foot(w.PlayerX, ts), Orient: c.Orientation})
		}
	}

	if !w.AgainstWall {
		w.PlayerX += p.MoveSpeed * dt
	}

	// Vertical motion.
	both := keys.IsDown(core.ActionJump)
	bothPressed := keys.IsPressed(core.ActionJump)
	for i, c := range chars {
		pressed := bothPressed || keys.IsPressed(jumpKeys[i])
		held := both || keys.IsDown(jumpKeys[i])
		if jumped := c.integrate(dt, pressed, held, p); jumped != 0 {
			ev |= jumped
			w.Effects = append(w.Effects, Effect{Event: EventJumped, Pos: c.Foot(w.PlayerX, ts), Orient: c.Orientation})
			w.sound.Play(CueJump)
		}
		c.animate(dt, p)
	}

	w.Camera.update(dt, w.PlayerX, w.AgainstWall, p)

	ev |= w.updateEnemies(dt)
	ev |= w.updateBullets(dt)

	if w.touchingEnemy() || w.Lag() < p.RestartLag || w.fellOut() {
		w.RestartLevel = true
		ev |= EventRestart
	}

	if w.PlayerX >= w.PortalX {
		w.NextLevel = true
		ev |= EventNextLevel
		if !w.sound.IsPlaying(CuePortal) {
			w.sound.Play(CuePortal)
		}
	}

	if keys.IsPressed(core.ActionSwap) {
		w.GunAtTop = !w.GunAtTop
		ev |= EventSwapped
		w.sound.Play(CueSwap)
	}
	if keys.IsPressed(core.ActionFire) {
		ev |= w.fire()
	}

	return ev
}

// fellOut reports whether either character left the vertical extent of
// the level.
func (w *World) fellOut() bool {
	ts := w.Params.TileSize
	bottom := float64(w.Grid.Height) * ts
	if w.Grid.Height == 0 {
		return false
	}
	for _, c := range w.Characters() {
		if c.Y > bottom || c.Y+ts < 0 {
			return true
		}
	}
	return false
}
