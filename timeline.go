package flipbook

import "github.com/tanema/gween/ease"

// Positioner is anything a timeline keyframe can move.
type Positioner interface {
	SetPosition(x, y float64)
}

// EventFunc handles a timeline event. progress is the playhead position as a
// fraction of the timeline duration, in [0, 1].
type EventFunc func(progress float64)

// TimelineConfig configures a new timeline.
type TimelineConfig struct {
	// Paused creates the timeline paused at position 0.
	Paused bool
	// Repeat is the number of extra passes after the first; -1 loops forever.
	Repeat int
	// RepeatDelay is the pause, in seconds, between passes.
	RepeatDelay float64
	// Force3D hints that targets should be composited on their own layer.
	// Ticker records it; it has no effect on ebiten draws.
	Force3D bool
	// Ease remaps playhead speed across a pass. nil means ease.Linear.
	// Keyframes stay discrete whatever the easing.
	Ease ease.TweenFunc
}

// Timeline is a schedule of instantaneous property changes plus playback
// state. Implementations fire the keyframes as their playhead crosses them.
type Timeline interface {
	// Set schedules target to jump to pos when the playhead reaches at
	// seconds.
	Set(target Positioner, pos Vec2, at float64)
	// On adds a handler for a lifecycle event. Handlers run in the order
	// they were added.
	On(event Event, fn EventFunc)
	// Restart seeks to position 0 and plays, whatever the current state.
	Restart()
	// Pause freezes the playhead where it is.
	Pause()
}

// Engine creates timelines. Ticker is the built-in implementation; tests and
// hosts with their own scheduler can supply another.
type Engine interface {
	NewTimeline(cfg TimelineConfig) Timeline
}
