package flipbook

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Rect is a frame or view area in pixels, Y pointing down.
type Rect struct {
	X, Y, Width, Height float64
}

// Trim is the whitespace, in pixels, to the left of and above the drawing
// inside every frame. The same amount is assumed on the right and bottom.
type Trim struct {
	Left float64 `yaml:"left"`
	Top  float64 `yaml:"top"`
}

// Event identifies a timeline lifecycle point.
type Event uint8

const (
	EventStart    Event = iota // fires when playback leaves position 0
	EventUpdate                // fires on every tick while playing
	EventComplete              // fires when a one-shot timeline reaches its end
	EventRepeat                // fires each time a looping timeline wraps
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventUpdate:
		return "update"
	case EventComplete:
		return "complete"
	case EventRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}
