package flipbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const explosionYAML = `
name: explosion
image: explosion.png
grid:
  columns: 4
  rows: 2
  frames: 7
  frame_width: 64
  frame_height: 48
  offset: {left: 2, top: 3}
playback:
  repeat: false
  start_frame: 1
  timing: 0.5
  timings: [0, 0, 0.8]
`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(explosionYAML))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}

	if def.Name != "explosion" || def.Image != "explosion.png" {
		t.Errorf("name/image = %q/%q", def.Name, def.Image)
	}
	want := FrameGrid{
		Columns: 4, Rows: 2, Frames: 7,
		FrameWidth: 64, FrameHeight: 48,
		Offset: Trim{Left: 2, Top: 3},
	}
	if def.Grid != want {
		t.Errorf("Grid = %+v, want %+v", def.Grid, want)
	}
	p := def.Playback
	if p.Autostart != nil {
		t.Error("omitted autostart should stay nil")
	}
	if p.Repeat == nil || *p.Repeat {
		t.Error("repeat should be explicitly false")
	}
	if p.StartFrame != 1 || p.Timing != 0.5 || len(p.Timings) != 3 {
		t.Errorf("playback = %+v", p)
	}
}

func TestParseDefinitionBadYAML(t *testing.T) {
	_, err := ParseDefinition([]byte("grid: [not, a, map"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "flipbook:") {
		t.Errorf("error %q lacks package prefix", err)
	}
}

func TestValidateRejects(t *testing.T) {
	base := Definition{Grid: FrameGrid{Columns: 2, Rows: 2, Frames: 4, FrameWidth: 10, FrameHeight: 10}}
	if err := base.Validate(); err != nil {
		t.Fatalf("base definition invalid: %v", err)
	}

	cases := map[string]func(d *Definition){
		"no columns":      func(d *Definition) { d.Grid.Columns = 0 },
		"zero frames":     func(d *Definition) { d.Grid.Frames = 0 },
		"too many frames": func(d *Definition) { d.Grid.Frames = 5 },
		"zero width":      func(d *Definition) { d.Grid.FrameWidth = 0 },
		"trim eats frame": func(d *Definition) { d.Grid.Offset.Left = 5 },
		"start past end":  func(d *Definition) { d.Playback.StartFrame = 4 },
		"negative start":  func(d *Definition) { d.Playback.StartFrame = -1 },
		"negative height": func(d *Definition) { d.Grid.FrameHeight = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := base
			mutate(&d)
			err := d.Validate()
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Validate = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explosion.yaml")
	if err := os.WriteFile(path, []byte(explosionYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition: %v", err)
	}
	if def.Grid.Frames != 7 {
		t.Errorf("Frames = %d, want 7", def.Grid.Frames)
	}
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadDefinitionInvalidNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: {columns: 1, rows: 1, frames: 3, frame_width: 4, frame_height: 4}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDefinition(path)
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("err = %v, want ErrInvalidDefinition", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestDefinitionAnimate(t *testing.T) {
	def, err := ParseDefinition([]byte(explosionYAML))
	if err != nil {
		t.Fatal(err)
	}
	target, _, vp := newFakeTarget()
	eng := &fakeEngine{}

	def.Animate(target, Callbacks{}, eng)

	tl := eng.created[0]
	if len(tl.sets) != 6 {
		t.Errorf("got %d keyframes, want 6", len(tl.sets))
	}
	if tl.cfg.Repeat != 0 {
		t.Errorf("Repeat = %d, want 0", tl.cfg.Repeat)
	}
	if vp.width != 60 || vp.height != 42 {
		t.Errorf("viewport = %vx%v, want 60x42", vp.width, vp.height)
	}
}
