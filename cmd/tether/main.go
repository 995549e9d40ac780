// tether is a two-runner platformer for the terminal.
//
// Usage:
//
//	tether play [level]       - Play the level pack, or start at a level
//	tether levels             - List available levels
//	tether levels show <id>   - Preview a level
//	tether scores             - Show high scores and level statistics
//	tether serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible effects
//	--db <path>         - Set database path (default: ~/.tether/tether.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tether",
	Short: "Tether - two runners, one gun, a mirrored world",
	Long: `Tether is a side-scrolling platformer for the terminal. Two runners
share one level: one runs on top of the floor, the other hangs upside
down beneath it. Keep both alive, pass the gun between them and reach
the portal.

Available commands:
  play     - Play the level pack
  levels   - List or preview levels
  scores   - View high scores and level statistics
  serve    - Start SSH server for remote play

Examples:
  tether play
  tether play level_2 --difficulty hard
  tether play ./my_level.txt --watch
  tether levels show level_1
  tether serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (interactive commands default to ~/.tether/tether.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail reports a fatal error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the logger shared by a command. Interactive commands log
// to a file so output never lands on the alternate screen.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	path := flagLogFile
	if path == "" && interactive {
		if dir := config.UserDir(); dir != "" {
			path = filepath.Join(dir, "tether.log")
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tether",
		Level:           level,
	})
	return logger, closeFn, nil
}
