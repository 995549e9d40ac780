package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed levels/*.txt
var builtin embed.FS

// Ext is the extension of level files.
const Ext = ".txt"

// Level is a parsed level with its origin.
type Level struct {
	ID   string // File name without extension, e.g. "level_1"
	Grid *Grid
	Path string // Source path, empty for built-in levels
}

// Title returns a display name derived from the ID ("level_2" -> "Level 2").
func (l Level) Title() string {
	name := strings.ReplaceAll(l.ID, "_", " ")
	if name == "" {
		return "Untitled"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// LoadFile reads and parses a level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	return Level{
		ID:   IDFromPath(path),
		Grid: Parse(string(data)),
		Path: path,
	}, nil
}

// LoadDir loads every level file in dir (non-recursive) in CompareIDs order.
func LoadDir(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read directory %s: %w", dir, err)
	}

	var levels []Level
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		lvl, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Builtin returns the levels embedded in the binary in CompareIDs order.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtin, "levels")
	if err != nil {
		return nil
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := fs.ReadFile(builtin, "levels/"+e.Name())
		if err != nil {
			continue
		}
		levels = append(levels, Level{
			ID:   IDFromPath(e.Name()),
			Grid: Parse(string(data)),
		})
	}

	sortByID(levels)
	return levels
}

// IDFromPath derives a level ID from a file path.
func IDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// IsLevelFile reports whether the path has the level file extension.
func IsLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}
