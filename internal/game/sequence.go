package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tether/internal/level"
)

// Sequence returns the levels to play. An empty start plays the whole
// catalog; a catalog ID plays from that level onward; anything else is
// treated as a file path and played alone. An unreadable file is logged and
// played as an empty grid.
func Sequence(cat *level.Catalog, start string, logger *log.Logger) []level.Level {
	if logger == nil {
		logger = log.Default()
	}
	all := cat.List()
	if start == "" {
		return all
	}

	for i, lvl := range all {
		if lvl.ID == start {
			return all[i:]
		}
	}

	lvl, err := level.LoadFile(start)
	if err != nil {
		logger.Error("could not load level, using an empty grid", "level", start, "error", err)
		return []level.Level{{ID: level.IDFromPath(start), Grid: level.NewGrid(0, 0), Path: start}}
	}
	return []level.Level{lvl}
}

// LoadOrEmpty reads a level file for hot reload, falling back to an empty
// grid when the file cannot be read.
func LoadOrEmpty(path string, logger *log.Logger) level.Level {
	lvl, err := level.LoadFile(path)
	if err == nil {
		return lvl
	}
	if logger != nil {
		logger.Warn("could not reload level", "path", path, "error", err)
	}
	return level.Level{ID: level.IDFromPath(path), Grid: level.NewGrid(0, 0), Path: path}
}
