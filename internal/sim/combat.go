package sim

import (
	"math"

	"github.com/vovakirdan/tether/internal/core"
)

// Enemy is a stationary hazard placed from an enemy tile.
type Enemy struct {
	Col, Row int
	Pos      core.Vec2 // Top-left in world units
	HitTimer float64   // Counts down after being shot
	HP       int
	BobTimer float64
}

// Rect returns the enemy's tile-sized box.
func (e *Enemy) Rect(ts float64) core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, ts, ts)
}

// Bob returns the vertical draw offset of the idle animation.
func (e *Enemy) Bob(p Params) float64 {
	return math.Sin(e.BobTimer*p.BobSpeed) * p.BobAmplitude
}

// Hit reports whether the enemy is flashing from a recent hit.
func (e *Enemy) Hit() bool { return e.HitTimer > 0 }

// Bullet is a projectile travelling right.
type Bullet struct {
	Pos core.Vec2
}

// newEnemy creates an enemy on grid cell (col, row). The bob phase is
// staggered by column so neighbours do not move in unison.
func newEnemy(col, row int, p Params) Enemy {
	return Enemy{
		Col:      col,
		Row:      row,
		Pos:      core.V(float64(col)*p.TileSize, float64(row)*p.TileSize),
		HP:       p.EnemyHP,
		BobTimer: float64(col%7) * 0.45,
	}
}

// updateEnemies ticks hit timers, removes dead enemies and advances the
// bob animation.
func (w *World) updateEnemies(dt float64) Events {
	var ev Events
	for i := 0; i < len(w.Enemies); {
		e := &w.Enemies[i]
		if e.HitTimer > 0 {
			e.HitTimer = max(0, e.HitTimer-dt)
		}
		if e.HP <= 0 {
			w.addEffect(EventEnemyKilled, e.Rect(w.Params.TileSize))
			w.Enemies = RemoveSwap(w.Enemies, i)
			ev |= EventEnemyKilled
			continue
		}
		e.BobTimer += dt
		i++
	}
	if ev != 0 {
		w.sound.Play(CueKill)
	}
	return ev
}

// updateBullets moves bullets, culls those past the right edge of the view
// and resolves hits against live enemies.
func (w *World) updateBullets(dt float64) Events {
	p := w.Params
	var ev Events
	right := w.Camera.X + p.ScreenW

	for i := 0; i < len(w.Bullets); {
		b := &w.Bullets[i]
		b.Pos.X += (p.MoveSpeed + p.BulletSpeed) * dt

		if b.Pos.X > right {
			w.Bullets = RemoveSwap(w.Bullets, i)
			continue
		}

		hit := false
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.HP <= 0 {
				continue
			}
			if core.CircleIntersectsRect(b.Pos, p.BulletRadius, e.Rect(p.TileSize)) {
				e.HitTimer = p.HitTime
				e.HP--
				w.addEffect(EventEnemyHit, e.Rect(p.TileSize))
				hit = true
				break
			}
		}
		if hit {
			w.Bullets = RemoveSwap(w.Bullets, i)
			ev |= EventEnemyHit
			continue
		}
		i++
	}

	if ev != 0 {
		w.sound.Play(CueHit)
	}
	return ev
}

// fire spawns a bullet in front of the character holding the gun.
func (w *World) fire() Events {
	p := w.Params
	if p.MaxBullets > 0 && len(w.Bullets) >= p.MaxBullets {
		return 0
	}
	holder := w.GunHolder()
	pos := holder.Center(w.PlayerX, p.TileSize).Add(core.V(p.TileSize/2, 0))
	w.Bullets = append(w.Bullets, Bullet{Pos: pos})
	w.Effects = append(w.Effects, Effect{Event: EventFired, Pos: pos})
	w.sound.Play(CueShoot)
	return EventFired
}

// touchingEnemy reports whether any enemy overlaps either character.
func (w *World) touchingEnemy() bool {
	ts := w.Params.TileSize
	top := w.Top.Rect(w.PlayerX, ts)
	bottom := w.Bottom.Rect(w.PlayerX, ts)
	for i := range w.Enemies {
		r := w.Enemies[i].Rect(ts)
		if r.Intersects(top) || r.Intersects(bottom) {
			return true
		}
	}
	return false
}

func (w *World) addEffect(ev Events, r core.Rect) {
	w.Effects = append(w.Effects, Effect{
		Event: ev,
		Pos:   core.V(r.X+r.W/2, r.Y+r.H/2),
	})
}
