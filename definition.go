package flipbook

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition describes one sprite sheet animation in a YAML file:
//
//	name: explosion
//	image: explosion.png
//	grid:
//	  columns: 4
//	  rows: 2
//	  frames: 7
//	  frame_width: 64
//	  frame_height: 64
//	  offset: {left: 2, top: 2}
//	playback:
//	  repeat: false
//	  timing: 0.5
//	  timings: [0, 0, 0.8]
type Definition struct {
	Name     string         `yaml:"name"`
	Image    string         `yaml:"image"`
	Grid     FrameGrid      `yaml:"grid"`
	Playback PlaybackConfig `yaml:"playback"`
}

// ErrInvalidDefinition is wrapped by every validation error from Validate.
var ErrInvalidDefinition = errors.New("invalid sheet definition")

// ParseDefinition decodes and validates a YAML definition.
func ParseDefinition(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("flipbook: failed to parse sheet definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// LoadDefinition reads and parses the YAML definition at path.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flipbook: failed to read sheet definition %q: %w", path, err)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return def, nil
}

// Validate checks the geometry. New itself never validates; this runs only
// on data read from files.
func (d *Definition) Validate() error {
	g := d.Grid
	switch {
	case g.Columns <= 0 || g.Rows <= 0:
		return fmt.Errorf("flipbook: %w: grid must have at least one column and row, got %dx%d",
			ErrInvalidDefinition, g.Columns, g.Rows)
	case g.Frames < 1:
		return fmt.Errorf("flipbook: %w: frames must be at least 1, got %d", ErrInvalidDefinition, g.Frames)
	case g.Frames > g.Capacity():
		return fmt.Errorf("flipbook: %w: %d frames do not fit a %dx%d grid",
			ErrInvalidDefinition, g.Frames, g.Columns, g.Rows)
	case g.FrameWidth <= 0 || g.FrameHeight <= 0:
		return fmt.Errorf("flipbook: %w: frame size must be positive, got %vx%v",
			ErrInvalidDefinition, g.FrameWidth, g.FrameHeight)
	case 2*g.Offset.Left >= g.FrameWidth || 2*g.Offset.Top >= g.FrameHeight:
		return fmt.Errorf("flipbook: %w: offset %v,%v leaves nothing of a %vx%v frame",
			ErrInvalidDefinition, g.Offset.Left, g.Offset.Top, g.FrameWidth, g.FrameHeight)
	case d.Playback.StartFrame < 0 || d.Playback.StartFrame >= g.Frames:
		return fmt.Errorf("flipbook: %w: start frame %d outside [0, %d)",
			ErrInvalidDefinition, d.Playback.StartFrame, g.Frames)
	}
	return nil
}

// Animate builds an Animator for target from the definition.
func (d *Definition) Animate(target Target, callbacks Callbacks, engine Engine) *Animator {
	return New(target, d.Grid, d.Playback, callbacks, engine)
}
