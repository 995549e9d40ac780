// Package game runs a tether session: the menu and intro screens, the level
// sequence, lives, score and particle effects around the simulation.
package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/sim"
	"github.com/vovakirdan/tether/internal/storage"
)

// Mode is the screen the game is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModeInstructions
	ModeIntro
	ModePlay
	ModeTransition
	ModeGameOver
	ModeVictory
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInstructions:
		return "instructions"
	case ModeIntro:
		return "intro"
	case ModePlay:
		return "play"
	case ModeTransition:
		return "transition"
	case ModeGameOver:
		return "game over"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Menu entries
const (
	menuPlay = iota
	menuHelp
	menuCount
)

// RunRecorder receives every finished level attempt.
type RunRecorder interface {
	RecordLevelRun(r storage.LevelRun) (int64, error)
}

// BestTimer looks up the fastest recorded clear of a level. When the
// recorder also implements it, the transition screen shows the record.
type BestTimer interface {
	BestLevelTime(levelID string) (best time.Duration, ok bool, err error)
}

// Options configures a Game.
type Options struct {
	Config   config.Config
	Levels   []level.Level // Played in order; empty means the built-in pack
	Preset   config.DifficultyPreset
	Player   string
	Sound    sim.SoundPlayer
	Recorder RunRecorder
	Logger   *log.Logger
	SkipMenu bool // Start on the intro instead of the menu
}

var _ core.Game = (*Game)(nil)

// Game implements core.Game for tether.
type Game struct {
	opts       Options
	cfg        config.Config
	base       sim.Params
	log        *log.Logger
	sound      sim.SoundPlayer
	difficulty *config.DifficultyManager
	levels     []level.Level

	runtime core.RuntimeConfig
	world   *sim.World
	scene   *sim.World // Menu background
	fx      *Effects

	mode       Mode
	menuIndex  int
	introSlide int
	timer      float64
	clock      float64
	paused     bool
	slowMo     float64

	index   int
	score   int
	best    int // Distance points reached in the current level
	lives   int
	cleared int
	ticks   int

	levelTime  float64
	levelKills int
	startX     float64

	clearTime time.Duration // Time of the last clear
	prevBest  time.Duration // Record before the last clear, if hasBest
	hasBest   bool
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.World.TileSize <= 0 {
		cfg = config.DefaultConfig()
	}
	if opts.Preset != "" {
		config.ApplyPreset(&cfg, opts.Preset)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sound := opts.Sound
	if sound == nil {
		sound = sim.NopSound{}
	}

	levels := slices.Clone(opts.Levels)
	if len(levels) == 0 {
		levels = level.DefaultCatalog().List()
	}
	if len(levels) == 0 {
		levels = []level.Level{{ID: "empty", Grid: level.NewGrid(0, 0)}}
	}

	return &Game{
		opts:       opts,
		cfg:        cfg,
		base:       SimParams(cfg),
		log:        logger,
		sound:      sound,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		levels:     levels,
		slowMo:     1,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string { return "tether" }

// Title returns the display name.
func (g *Game) Title() string { return "Tether" }

// Reset starts a new session on the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.fx = NewEffects(g.cfg.Effects, rand.New(rand.NewSource(seed)))
	g.menuIndex = 0
	g.clock = 0
	g.slowMo = 1
	g.resetMenuScene()
	g.newRun()

	g.mode = ModeMenu
	if g.opts.SkipMenu {
		g.startIntro()
	}
}

// newRun resets score and lives and loads the first level.
func (g *Game) newRun() {
	g.score = 0
	g.best = 0
	g.cleared = 0
	g.ticks = 0
	g.paused = false
	g.lives = g.cfg.Gameplay.Lives
	if g.lives <= 0 {
		g.lives = -1
	}
	g.loadLevel(0)
}

// loadLevel builds the world for level i with difficulty applied.
func (g *Game) loadLevel(i int) {
	g.index = i
	lvl := g.levels[i]

	p := g.base
	prog := config.Progress{LevelIndex: i, Score: g.score, Ticks: g.ticks}
	p.MoveSpeed = g.difficulty.Speed(p.MoveSpeed, prog)
	p.WallPenalty = g.difficulty.WallPenalty(p.WallPenalty, prog)

	if g.world == nil {
		g.world = sim.NewWorld(lvl.Grid, p, g.sound)
	} else {
		g.world.Params = p
		g.world.SetGrid(lvl.Grid)
	}
	g.fx.Clear()
	g.fx.SetPortals(portalPositions(g.world.Grid, p.TileSize))
	g.beginAttempt()

	g.log.Debug("level loaded", "id", lvl.ID, "index", i, "speed", p.MoveSpeed, "penalty", p.WallPenalty)
}

// beginAttempt resets the per-attempt counters after a (re)start.
func (g *Game) beginAttempt() {
	g.levelTime = 0
	g.levelKills = 0
	g.startX = g.world.PlayerX
}

func portalPositions(grid *level.Grid, ts float64) []core.Vec2 {
	var out []core.Vec2
	for _, t := range []level.TileType{level.TilePortal1, level.TilePortal2} {
		for _, cell := range grid.FindAll(t) {
			out = append(out, core.V((float64(cell[0])+0.5)*ts, (float64(cell[1])+0.5)*ts))
		}
	}
	return out
}

func (g *Game) startIntro() {
	g.mode = ModeIntro
	g.introSlide = 0
	g.timer = 0
}

// frameDelta returns the simulated seconds for one tick.
func (g *Game) frameDelta() float64 {
	dt := g.runtime.TickDelta() * g.cfg.Timing.TimeScale
	return sim.ClampDT(dt, g.cfg.Timing.MaxDT) * g.slowMo
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.frameDelta()
	g.clock += dt

	switch g.mode {
	case ModeMenu:
		g.stepMenuScene(in, dt)
		g.stepMenu(in)
	case ModeInstructions:
		g.stepMenuScene(in, dt)
		if in.IsPressed(core.ActionBack) || in.IsPressed(core.ActionConfirm) {
			g.mode = ModeMenu
		}
	case ModeIntro:
		g.stepIntro(in, dt)
	case ModePlay:
		g.stepPlay(in, dt)
	case ModeTransition:
		g.stepTransition(dt)
	case ModeGameOver, ModeVictory:
		if in.IsPressed(core.ActionRestart) || in.IsPressed(core.ActionConfirm) {
			g.newRun()
			g.startIntro()
			g.introSlide = 1
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.IsPressed(core.ActionUp):
		g.menuIndex = (g.menuIndex + menuCount - 1) % menuCount
	case in.IsPressed(core.ActionDown):
		g.menuIndex = (g.menuIndex + 1) % menuCount
	case in.IsPressed(core.ActionConfirm), in.IsPressed(core.ActionJump):
		if g.menuIndex == menuHelp {
			g.mode = ModeInstructions
			return
		}
		g.startIntro()
	}
}

// stepIntro waits for confirmation on the first slide and counts down on
// the second.
func (g *Game) stepIntro(in core.InputFrame, dt float64) {
	if g.introSlide == 0 {
		if in.IsPressed(core.ActionConfirm) || in.IsPressed(core.ActionJump) {
			g.introSlide = 1
			g.timer = 0
		}
		return
	}
	g.timer += dt
	if g.timer > g.cfg.Timing.IntroDelay {
		g.mode = ModePlay
		g.log.Info("run started", "level", g.levels[g.index].ID, "lives", g.lives)
	}
}

func (g *Game) stepPlay(in core.InputFrame, dt float64) {
	if in.IsPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if g.runtime.Debug {
		step := g.cfg.Timing.SlowMoStep
		switch {
		case in.IsPressed(core.ActionSlower):
			g.slowMo = max(step, g.slowMo-step)
		case in.IsPressed(core.ActionFaster):
			g.slowMo = min(1, g.slowMo+step)
		}
		if in.IsPressed(core.ActionRestart) {
			g.world.Restart()
			g.fx.Clear()
			g.beginAttempt()
			return
		}
	}

	g.ticks++
	g.levelTime += dt
	g.world.Step(dt, in)
	g.collect(true)

	switch {
	case g.world.RestartLevel:
		g.loseLife()
	case g.world.NextLevel:
		g.completeLevel()
	}
	g.fx.Update(dt)
}

// collect turns the world's effects into particles and, when scoring,
// into points.
func (g *Game) collect(scoring bool) {
	for _, e := range g.world.Effects {
		g.fx.Trigger(e)
		if scoring && e.Event == sim.EventEnemyKilled {
			g.levelKills++
			g.score += g.cfg.Gameplay.KillPoints
		}
	}
	if scoring && g.cfg.Gameplay.DistanceUnit > 0 {
		d := int((g.world.PlayerX - g.startX) / g.cfg.Gameplay.DistanceUnit)
		g.best = max(g.best, d)
	}
}

func (g *Game) loseLife() {
	g.record(storage.OutcomeDied)
	g.sound.Play(sim.CueRestart)

	if g.lives > 0 {
		g.lives--
	}
	if g.lives == 0 {
		g.mode = ModeGameOver
		g.world.ClearFlags()
		g.log.Info("game over", "score", g.State().Score, "cleared", g.cleared)
		return
	}
	g.world.Restart()
	g.fx.Clear()
	g.beginAttempt()
}

func (g *Game) completeLevel() {
	g.clearTime = g.attemptDuration()
	g.prevBest, g.hasBest = g.lookupBest()
	g.record(storage.OutcomeCleared)
	g.score += g.best + g.cfg.Gameplay.LevelPoints
	g.best = 0
	g.cleared++
	g.world.ClearFlags()
	g.mode = ModeTransition
	g.timer = 0
	g.log.Info("level cleared", "id", g.levels[g.index].ID, "time", g.levelTime)
}

// stepTransition keeps the runners moving past the portal before the next
// level loads.
func (g *Game) stepTransition(dt float64) {
	g.timer += dt
	g.world.Step(dt, core.NewInputFrame())
	g.collect(false)
	g.world.ClearFlags()
	g.fx.Update(dt)

	if g.timer < g.cfg.Timing.TransitionTime {
		return
	}
	if g.index+1 >= len(g.levels) {
		g.mode = ModeVictory
		g.log.Info("victory", "score", g.score)
		return
	}
	g.loadLevel(g.index + 1)
	g.mode = ModePlay
}

// lookupBest returns the recorded best time of the current level.
func (g *Game) lookupBest() (time.Duration, bool) {
	bt, ok := g.opts.Recorder.(BestTimer)
	if !ok {
		return 0, false
	}
	id := g.levels[g.index].ID
	best, found, err := bt.BestLevelTime(id)
	if err != nil {
		g.log.Warn("could not read best time", "level", id, "error", err)
		return 0, false
	}
	return best, found
}

func (g *Game) attemptDuration() time.Duration {
	return time.Duration(g.levelTime * float64(time.Second))
}

// record reports the current attempt to the recorder, if any.
func (g *Game) record(outcome storage.Outcome) {
	if g.opts.Recorder == nil {
		return
	}
	run := storage.LevelRun{
		LevelID:  g.levels[g.index].ID,
		Player:   g.opts.Player,
		Outcome:  outcome,
		Duration: g.attemptDuration(),
		Distance: int(g.world.PlayerX - g.startX),
		Kills:    g.levelKills,
	}
	if _, err := g.opts.Recorder.RecordLevelRun(run); err != nil {
		g.log.Warn("could not record level run", "level", run.LevelID, "error", err)
	}
}

// Abandon records the current attempt as quit. The platform calls it when
// the player leaves mid-level.
func (g *Game) Abandon() {
	if g.mode == ModePlay && g.world != nil {
		g.record(storage.OutcomeQuit)
	}
}

// ReloadLevel swaps in a new version of a level in the sequence. If it is
// the level being played, the world restarts on the new grid. It reports
// whether the level was part of the sequence.
func (g *Game) ReloadLevel(lvl level.Level) bool {
	for i := range g.levels {
		if g.levels[i].ID != lvl.ID {
			continue
		}
		if lvl.Grid == nil {
			lvl.Grid = level.NewGrid(0, 0)
		}
		g.levels[i] = lvl
		if i == g.index && g.world != nil {
			g.world.SetGrid(lvl.Grid)
			g.fx.Clear()
			g.fx.SetPortals(portalPositions(lvl.Grid, g.world.Params.TileSize))
			g.beginAttempt()
		}
		g.log.Info("level reloaded", "id", lvl.ID, "width", lvl.Grid.Width, "height", lvl.Grid.Height)
		return true
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score + g.best,
		Lives:    g.lives,
		GameOver: g.mode == ModeGameOver || g.mode == ModeVictory,
		Victory:  g.mode == ModeVictory,
		Paused:   g.paused,
	}
	if g.index < len(g.levels) {
		st.Level = g.levels[g.index].ID
	}
	return st
}

// Mode returns the current screen.
func (g *Game) Mode() Mode { return g.mode }

// World returns the simulation of the current level.
func (g *Game) World() *sim.World { return g.world }

// Level returns the level being played.
func (g *Game) Level() level.Level { return g.levels[g.index] }

// LevelIndex returns the position of the current level in the sequence.
func (g *Game) LevelIndex() int { return g.index }

// LevelsCleared returns how many levels this run has completed.
func (g *Game) LevelsCleared() int { return g.cleared }

// Preset returns the difficulty preset name, defaulting to normal.
func (g *Game) Preset() config.DifficultyPreset {
	if g.opts.Preset == "" {
		return config.DifficultyNormal
	}
	return g.opts.Preset
}

// SlowMotion returns the debug time multiplier.
func (g *Game) SlowMotion() float64 { return g.slowMo }

// Effects returns the particle effects.
func (g *Game) Effects() *Effects { return g.fx }

var introText = []string{
	"You wake up running. So does the one below you.",
	"",
	"Neither of you can stop, and the dark behind you",
	"is catching up.",
	"",
	"Stay ahead of it. Reach the portal.",
}

var helpText = []string{
	"Two runners share one stride, mirrored across the floor.",
	"",
	"W / Up      jump the top runner",
	"S / Down    jump the bottom runner",
	"Space       jump both",
	"F           fire the gun",
	"Tab         pass the gun to the other runner",
	"P           pause",
	"",
	"Walls stop you both. If the dark catches up, you start over.",
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModeInstructions:
		g.drawMenuScene(dst)
		drawPanel(dst, slices.Concat(helpText, []string{"", "[Enter] back"}), core.ColorSky)
	case ModeIntro:
		g.renderPlay(dst)
		if g.introSlide == 0 {
			drawPanel(dst, slices.Concat(introText, []string{"", "[Enter] yes"}), core.ColorPortal)
		} else {
			left := max(0, g.cfg.Timing.IntroDelay-g.timer)
			drawPanel(dst, []string{fmt.Sprintf("Run in %.1f", left)}, core.ColorSand)
		}
	case ModePlay:
		g.renderPlay(dst)
		if g.paused {
			drawPanel(dst, []string{"PAUSED", "", "Press P to resume"}, core.ColorGray)
		}
	case ModeTransition:
		g.renderPlay(dst)
		drawPanel(dst, g.clearLines(), core.ColorPortal)
	case ModeGameOver:
		g.renderPlay(dst)
		drawPanel(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  Levels: %d", g.State().Score, g.cleared),
			"Press R to run again",
		}, core.ColorBlood)
	case ModeVictory:
		drawPanel(dst, []string{
			"You made it out. Both of you.",
			"",
			fmt.Sprintf("Score: %d  Levels: %d", g.State().Score, g.cleared),
			"Press R to run again",
		}, core.ColorLeaf)
	}
}

// clearLines is the transition panel text: the clear time against the
// previous record.
func (g *Game) clearLines() []string {
	lines := []string{
		g.levels[g.index].Title() + " cleared!",
		"",
		"Time " + formatClock(g.clearTime),
	}
	switch {
	case !g.hasBest:
	case g.clearTime < g.prevBest:
		lines = append(lines, "New best! Was "+formatClock(g.prevBest))
	default:
		lines = append(lines, "Best "+formatClock(g.prevBest))
	}
	return lines
}

func formatClock(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}

func (g *Game) renderPlay(dst *core.Screen) {
	if g.world == nil {
		return
	}
	drawWorld(dst, g.world, g.fx, g.clock)
	drawHUD(dst, g.levels[g.index].Title(), g.State(), g.world.GunAtTop, g.world.Progress())
	if g.runtime.Debug && g.slowMo < 1 {
		dst.DrawTextColored(1, dst.Height()-1, fmt.Sprintf("slow-mo x%.1f", g.slowMo), core.ColorGray)
	}
}

var logo = []string{
	"▀█▀ █▀▀ ▀█▀ █ █ █▀▀ █▀█",
	" █  █▀▀  █  █▀█ █▀▀ █▀▄",
	" ▀  ▀▀▀  ▀  ▀ ▀ ▀▀▀ ▀ ▀",
}

func (g *Game) renderMenu(dst *core.Screen) {
	// Both logos, the gaps and the entries, centered above the scene.
	height := 2*len(logo) + 3 + 2*menuCount - 1
	sceneTop := g.drawMenuScene(dst)
	y := max(1, (sceneTop-height)/2)
	for i, l := range logo {
		dst.DrawTextCentered(y+i, l, core.ColorSky)
	}
	y += len(logo) + 1
	for i, l := range logo {
		dst.DrawTextCentered(y+len(logo)-1-i, l, core.ColorEmber)
	}
	y += len(logo) + 2

	items := [menuCount]string{"Play", "Help"}
	for i, item := range items {
		text, c := "  "+item+"  ", core.ColorGray
		if i == g.menuIndex {
			text, c = "> "+item+" <", core.ColorWhite
		}
		dst.DrawTextCentered(y+i*2, text, c)
	}
}
