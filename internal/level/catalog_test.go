package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogRegisterAndGet(t *testing.T) {
	c := NewCatalog()
	c.Register(Level{ID: "b", Grid: Parse("=")})
	c.Register(Level{ID: "a", Grid: Parse("==")})

	if !c.Exists("a") || c.Exists("z") {
		t.Error("Exists returned wrong result")
	}

	lvl, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if lvl.Grid.Width != 2 {
		t.Errorf("Width = %d, want 2", lvl.Grid.Width)
	}

	if _, err := c.Get("z"); err == nil {
		t.Error("expected error for unknown level")
	}

	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs = %v, want [a b]", ids)
	}
}

func TestCatalogDuplicatePanics(t *testing.T) {
	c := NewCatalog()
	c.Register(Level{ID: "a"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate register")
		}
	}()
	c.Register(Level{ID: "a"})
}

func TestCatalogAddDirOverrides(t *testing.T) {
	c := DefaultCatalog()
	before := len(c.List())

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level_1.txt"), []byte("1\n2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "zz_extra.txt"), []byte("1\n2"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := c.AddDir(dir)
	if err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if n != 2 {
		t.Errorf("AddDir loaded %d, want 2", n)
	}
	if got := len(c.List()); got != before+1 {
		t.Errorf("catalog size = %d, want %d", got, before+1)
	}

	lvl, _ := c.Get("level_1")
	if lvl.Grid.Width != 1 {
		t.Errorf("level_1 was not overridden (width %d)", lvl.Grid.Width)
	}
}
