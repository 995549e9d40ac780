package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/game"
	"github.com/vovakirdan/tether/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tether SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own run. Scores and level runs are stored
per-server (all users share the same leaderboard) under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tether/host_key

Examples:
  tether serve                           # Listen on :23234 with auto-generated key
  tether serve --ssh :2222               # Listen on port 2222
  tether serve --difficulty hard         # Every session plays on hard
  tether serve --db ./tether.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err == nil {
		err = gameCfg.Validate()
	}
	if err != nil {
		fail(err)
	}
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fail(err)
	}
	cat, err := loadCatalog(logger)
	if err != nil {
		fail(err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg
	cfg.Preset = preset
	cfg.Levels = game.Sequence(cat, "", logger)
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("tether-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Starting tether SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}
