package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(path, []byte("1\n=\n2"), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.ID != "custom" {
		t.Errorf("ID = %q, want custom", lvl.ID)
	}
	if lvl.Grid.Width != 1 || lvl.Grid.Height != 3 {
		t.Errorf("grid = %dx%d, want 1x3", lvl.Grid.Width, lvl.Grid.Height)
	}
	if lvl.Path != path {
		t.Errorf("Path = %q, want %q", lvl.Path, path)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "cannot read") {
		t.Errorf("error = %v, want 'cannot read' prefix", err)
	}
}

func TestLoadDirFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.txt":     "=",
		"a.txt":     "==",
		"notes.md":  "ignored",
		"c.TXT":     "===",
		"level.bak": "ignored",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	levels, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	var ids []string
	for _, l := range levels {
		ids = append(ids, l.ID)
	}
	if got := strings.Join(ids, ","); got != "a,b,c" {
		t.Errorf("ids = %s, want a,b,c", got)
	}
}

func TestBuiltin(t *testing.T) {
	levels := Builtin()
	if len(levels) < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %d", len(levels))
	}

	for _, lvl := range levels {
		g := lvl.Grid
		if _, _, ok := g.Find(TileSpawn1); !ok {
			t.Errorf("%s: missing spawn 1", lvl.ID)
		}
		if _, _, ok := g.Find(TileSpawn2); !ok {
			t.Errorf("%s: missing spawn 2", lvl.ID)
		}
		if _, _, ok := g.Find(TilePortal1); !ok {
			t.Errorf("%s: missing portal", lvl.ID)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"level_2", "Level 2"},
		{"cave", "Cave"},
		{"", "Untitled"},
	}
	for _, tt := range tests {
		if got := (Level{ID: tt.id}).Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
