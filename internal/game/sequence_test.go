package game

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tether/internal/level"
)

func testCatalog() *level.Catalog {
	cat := level.NewCatalog()
	for _, id := range []string{"b", "a", "c"} {
		cat.Register(level.Level{ID: id, Grid: level.Parse("1\n=\n2")})
	}
	return cat
}

func ids(levels []level.Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.ID
	}
	return out
}

func TestSequence(t *testing.T) {
	quiet := log.New(io.Discard)
	cat := testCatalog()

	tests := []struct {
		start string
		want  []string
	}{
		{"", []string{"a", "b", "c"}},
		{"a", []string{"a", "b", "c"}},
		{"b", []string{"b", "c"}},
		{"c", []string{"c"}},
	}
	for _, tt := range tests {
		got := ids(Sequence(cat, tt.start, quiet))
		if len(got) != len(tt.want) {
			t.Errorf("Sequence(%q) = %v, want %v", tt.start, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Sequence(%q) = %v, want %v", tt.start, got, tt.want)
				break
			}
		}
	}
}

func TestSequenceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	if err := os.WriteFile(path, []byte("1  ]\n====\n2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Sequence(testCatalog(), path, log.New(io.Discard))
	if len(got) != 1 || got[0].ID != "custom" {
		t.Fatalf("Sequence(file) = %v", ids(got))
	}
	if got[0].Grid.Count(level.TilePortal1) != 1 {
		t.Error("file level was not parsed")
	}
}

func TestSequenceMissingFileFallsBackToEmptyGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	got := Sequence(testCatalog(), path, log.New(io.Discard))
	if len(got) != 1 || got[0].ID != "nope" {
		t.Fatalf("Sequence(missing) = %v", ids(got))
	}
	if g := got[0].Grid; g == nil || g.Width != 0 || g.Height != 0 {
		t.Errorf("grid = %+v, want empty", g)
	}
}

func TestLoadOrEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level_9.txt")
	if err := os.WriteFile(path, []byte("1\n=\n2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if lvl := LoadOrEmpty(path, nil); lvl.Grid.Width != 1 || lvl.ID != "level_9" {
		t.Errorf("LoadOrEmpty(existing) = %+v", lvl)
	}

	lvl := LoadOrEmpty(filepath.Join(dir, "gone.txt"), log.New(io.Discard))
	if lvl.ID != "gone" || lvl.Grid.Width != 0 {
		t.Errorf("LoadOrEmpty(missing) = %+v", lvl)
	}
}
