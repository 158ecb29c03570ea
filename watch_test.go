package flipbook

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsDefinitionFile(t *testing.T) {
	cases := map[string]bool{
		"hero.yaml":       true,
		"hero.YML":        true,
		"dir/explode.yml": true,
		"hero.png":        false,
		"hero.yaml.swp":   false,
		"yaml":            false,
	}
	for path, want := range cases {
		if got := IsDefinitionFile(path); got != want {
			t.Errorf("IsDefinitionFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDefinitionWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDefinitionWatcher(dir)
	if err != nil {
		t.Fatalf("NewDefinitionWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "hero.yaml")
	if err := os.WriteFile(path, []byte(explosionYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for written definition")
	}
}

func TestDefinitionWatcherMissingDir(t *testing.T) {
	_, err := NewDefinitionWatcher(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}

func TestDefinitionWatcherCloseTwice(t *testing.T) {
	w, err := NewDefinitionWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
}
