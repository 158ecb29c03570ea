package flipbook

// PlaybackConfig controls how an Animator plays its frames. Every field is
// optional; zero values fall back to DefaultPlayback.
type PlaybackConfig struct {
	// Autostart begins playback during New. nil means true.
	Autostart *bool `yaml:"autostart"`
	// Repeat loops forever instead of playing a single pass. nil means true.
	Repeat *bool `yaml:"repeat"`
	// StartFrame is the first frame given a keyframe.
	StartFrame int `yaml:"start_frame"`
	// Timing is the length of a full cycle in seconds. Values <= 0 mean 1.
	Timing float64 `yaml:"timing"`
	// Timings optionally overrides Timing per frame index. Missing or
	// non-positive entries fall back to Timing.
	Timings []float64 `yaml:"timings"`
}

// DefaultPlayback returns the default playback settings: autostart, repeat
// forever, start at frame 0, one second per cycle.
func DefaultPlayback() PlaybackConfig {
	return PlaybackConfig{
		Autostart: Bool(true),
		Repeat:    Bool(true),
		Timing:    1,
	}
}

// Bool returns a pointer to v, for the optional fields of PlaybackConfig.
func Bool(v bool) *bool {
	return &v
}

// resolved returns a copy with every default applied. Timings is copied so
// later edits by the caller cannot reach the Animator.
func (c PlaybackConfig) resolved() PlaybackConfig {
	def := DefaultPlayback()
	out := c
	if out.Autostart == nil {
		out.Autostart = def.Autostart
	} else {
		out.Autostart = Bool(*c.Autostart)
	}
	if out.Repeat == nil {
		out.Repeat = def.Repeat
	} else {
		out.Repeat = Bool(*c.Repeat)
	}
	if out.Timing <= 0 {
		out.Timing = def.Timing
	}
	if c.Timings != nil {
		out.Timings = append([]float64(nil), c.Timings...)
	}
	return out
}

// FrameDuration returns the cycle duration used to place frame i.
func (c PlaybackConfig) FrameDuration(i int) float64 {
	if i >= 0 && i < len(c.Timings) && c.Timings[i] > 0 {
		return c.Timings[i]
	}
	if c.Timing <= 0 {
		return DefaultPlayback().Timing
	}
	return c.Timing
}

// Callbacks are optional lifecycle handlers bound to an Animator's timeline.
type Callbacks struct {
	OnStart    func()
	OnStop     func() // bound to timeline completion, not to Stop
	OnUpdate   func(progress float64)
	OnComplete func()
	OnRepeat   func()
}
