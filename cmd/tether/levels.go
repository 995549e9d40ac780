package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/platform/tui"
	"github.com/vovakirdan/tether/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and those in --levels, in play order.

Examples:
  tether levels
  tether levels --levels ./levels
  tether levels show level_1
  tether levels show ./draft.txt`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id|path>",
	Short: "Preview a level",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files")
	levelsCmd.AddCommand(levelsShowCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cat, err := loadCatalog(logger)
	if err != nil {
		fail(err)
	}

	levels := cat.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, lvl := range levels {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Size", "Enemies", "Source")
	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "--", "----", "-------", "------")
	for _, lvl := range levels {
		source := lvl.Path
		if source == "" {
			source = "built-in"
		}
		size := fmt.Sprintf("%dx%d", lvl.Grid.Width, lvl.Grid.Height)
		fmt.Printf("  %-*s  %-7s  %-7d  %s\n", maxIDLen, lvl.ID, size, lvl.Grid.Count(level.TileEnemy), source)
	}

	fmt.Println()
	fmt.Println("Run 'tether play <id>' to start at a level.")
}

func runLevelsShow(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cat, err := loadCatalog(logger)
	if err != nil {
		fail(err)
	}

	lvl, err := cat.Get(args[0])
	if err != nil {
		lvl, err = level.LoadFile(args[0])
		if err != nil {
			fail(fmt.Errorf("unknown level %q; run 'tether levels' to see available levels", args[0]))
		}
	}

	width := 0
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w - 4
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	fmt.Println(title.Render(fmt.Sprintf("%s (%dx%d)", lvl.Title(), lvl.Grid.Width, lvl.Grid.Height)))
	fmt.Println(box.Render(tui.RenderLevel(lvl.Grid, width)))
	if width > 0 && lvl.Grid.Width > width {
		fmt.Printf("(showing %d of %d columns)\n", width, lvl.Grid.Width)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()
	st, err := store.LevelStatsFor(lvl.ID)
	if err != nil {
		logger.Warn("could not read level stats", "level", lvl.ID, "error", err)
		return
	}
	fmt.Println(tui.FormatLevelStats(st))
}
