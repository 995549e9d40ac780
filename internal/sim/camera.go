package sim

// Camera scrolls horizontally behind the player.
type Camera struct {
	X     float64
	Speed float64
}

// Lag returns how far the player is ahead of the camera.
func (c *Camera) Lag(playerX float64) float64 {
	return playerX - c.X
}

// update recomputes the camera speed from the current lag and integrates.
// The camera eases off when it gets close to the player and loses speed
// while the player is blocked, so a blocked player is eventually caught.
func (c *Camera) update(dt, playerX float64, againstWall bool, p Params) {
	lag := c.Lag(playerX)

	c.Speed = p.MoveSpeed
	if lag < p.CameraSlack && p.CameraSlackDiv != 0 {
		c.Speed -= lag / p.CameraSlackDiv
	}
	if againstWall {
		c.Speed -= p.WallPenalty
	}
	c.X += c.Speed * dt
}
