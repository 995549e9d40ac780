package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompareIDs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"level_2", "level_10", -1},
		{"level_10", "level_9", 1},
		{"level_3", "level_3", 0},
		{"a", "b", -1},
		{"level", "level_1", -1},
		{"cave2b", "cave10a", -1},
		{"cave2b", "cave2a", 1},
		{"a01", "a1", -1},
		{"x007", "x8", -1},
		{"", "a", -1},
	}
	for _, tt := range tests {
		if got := CompareIDs(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareIDs(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := CompareIDs(tt.b, tt.a); got != -tt.want {
			t.Errorf("CompareIDs(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestLevelOrderIsNumeric(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"level_10.txt", "level_2.txt", "level_1.txt", "bonus.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("1\n2"), 0o644); err != nil {
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
	want := "bonus,level_1,level_2,level_10"
	if got := strings.Join(ids, ","); got != want {
		t.Errorf("LoadDir order = %s, want %s", got, want)
	}

	c := NewCatalog()
	for _, l := range levels {
		c.Register(l)
	}
	if got := strings.Join(c.IDs(), ","); got != want {
		t.Errorf("Catalog order = %s, want %s", got, want)
	}
}
