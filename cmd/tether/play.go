package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tether/internal/audio"
	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/game"
	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/platform/tui"
	"github.com/vovakirdan/tether/internal/sim"
	"github.com/vovakirdan/tether/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagWatch      bool
	flagDebug      bool
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the level pack",
	Long: `Play every level in order, or start at the given level.

The argument is a level ID from 'tether levels' (the run continues with
the levels after it) or a path to a level file (played alone).

Controls:
  W/Up       - Top runner jumps
  S/Down     - Bottom runner jumps
  Space      - Both jump
  F          - Fire
  Tab        - Pass the gun
  P          - Pause
  M          - Mute
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 8 lives, slow start, speeds up over the pack
  normal - Default lives, speeds up over the pack
  hard   - 3 lives, fast start
  fixed  - No progression

Examples:
  tether play
  tether play level_2 --difficulty hard
  tether play --levels ./levels --watch
  tether play ./draft.txt --watch --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files (overrides built-ins with the same name)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files when they change on disk")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug keys: [ ] slow motion, R restart")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted (M toggles it in game)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume in halvings: 0 is full, -1 is half, -2 a quarter")
}

func runPlay(_ *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fail(err)
	}
}

func play(args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(logger)
	if err != nil {
		return err
	}

	start := ""
	if len(args) > 0 {
		start = args[0]
	}
	levels := game.Sequence(cat, start, logger)

	var sound sim.SoundPlayer = sim.NopSound{}
	var muter tui.Muter
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	} else {
		defer player.Close()
		player.SetVolume(flagVolume)
		player.SetMuted(flagMute)
		sound, muter = player, player
	}

	playerName := currentUser()
	opts := game.Options{
		Config:   cfg,
		Levels:   levels,
		Preset:   preset,
		Player:   playerName,
		Sound:    sound,
		Logger:   logger,
		SkipMenu: start != "",
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	var watcher *level.Watcher
	if flagWatch {
		watcher = startWatcher(levels, logger)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	rt.Debug = flagDebug

	return tui.Run(game.New(opts), rt, tui.Options{
		Store:   store,
		Player:  playerName,
		Watcher: watcher,
		Audio:   muter,
		Muted:   flagMute,
		Logger:  logger,
	})
}

// parseDifficulty maps the flag to a preset; empty keeps the config as is.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p, ok := config.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// loadCatalog returns the built-in levels plus --levels.
func loadCatalog(logger *log.Logger) (*level.Catalog, error) {
	cat := level.DefaultCatalog()
	if flagLevelsDir == "" {
		return cat, nil
	}
	n, err := cat.AddDir(flagLevelsDir)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded levels", "dir", flagLevelsDir, "count", n)
	return cat, nil
}

// startWatcher watches the directories of the file-backed levels. Built-in
// levels have no file and are not watched.
func startWatcher(levels []level.Level, logger *log.Logger) *level.Watcher {
	var dirs []string
	for _, lvl := range levels {
		if lvl.Path == "" {
			continue
		}
		if dir := filepath.Dir(lvl.Path); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		logger.Warn("--watch has nothing to watch; built-in levels are embedded")
		return nil
	}

	w, err := level.NewWatcher(dirs...)
	if err != nil {
		logger.Error("level watcher failed to start", "error", err)
		return nil
	}
	logger.Info("watching levels", "dirs", dirs)
	return w
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
