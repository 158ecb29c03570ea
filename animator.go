package flipbook

// Animator steps a sprite sheet through its frames. It schedules one
// instantaneous keyframe per frame on a timeline it owns, sizes the viewport
// to a single trimmed frame, and exposes Play and Stop.
//
// An Animator is created once per image/viewport pair and keeps the same
// timeline for its whole life. There is no Dispose; drop the Animator and,
// with a Ticker, remove its timeline.
type Animator struct {
	target    Target
	grid      FrameGrid
	playback  PlaybackConfig
	callbacks Callbacks
	timeline  Timeline
}

// New builds an Animator and, unless playback.Autostart is false, starts it.
//
// If target is missing its image or viewport the timeline is still created
// but nothing is scheduled and no element is touched; Play and Stop remain
// safe to call. Geometry is not validated: out-of-range values render
// wrongly rather than failing.
func New(target Target, grid FrameGrid, playback PlaybackConfig, callbacks Callbacks, engine Engine) *Animator {
	a := &Animator{
		target:    target,
		grid:      grid,
		playback:  playback.resolved(),
		callbacks: callbacks,
	}

	autostart := *a.playback.Autostart
	repeat := 0
	if *a.playback.Repeat {
		repeat = -1
	}
	a.timeline = engine.NewTimeline(TimelineConfig{
		Paused:      !autostart,
		Repeat:      repeat,
		RepeatDelay: 0,
		Force3D:     true,
	})

	if !target.Ready() {
		debugCheckTarget(target)
		return a
	}
	debugCheckGrid(grid, a.playback)

	for i := a.playback.StartFrame; i < grid.Frames; i++ {
		at := grid.KeyframeAt(i, a.playback.FrameDuration(i))
		a.timeline.Set(target.Image, grid.FrameOffset(i), at)
	}

	size := grid.ViewportSize()
	target.Viewport.SetSize(size.X, size.Y)
	target.Viewport.SetClip(true)

	margin := grid.Margin()
	target.Image.SetMargin(margin.X, margin.Y)

	a.bindCallbacks()

	if autostart {
		a.Play()
	}
	return a
}

func (a *Animator) bindCallbacks() {
	cb := a.callbacks
	if cb.OnStart != nil {
		a.timeline.On(EventStart, func(float64) { cb.OnStart() })
	}
	if cb.OnStop != nil {
		a.timeline.On(EventComplete, func(float64) { cb.OnStop() })
	}
	if cb.OnUpdate != nil {
		a.timeline.On(EventUpdate, cb.OnUpdate)
	}
	if cb.OnComplete != nil {
		a.timeline.On(EventComplete, func(float64) { cb.OnComplete() })
	}
	if cb.OnRepeat != nil {
		a.timeline.On(EventRepeat, func(float64) { cb.OnRepeat() })
	}
}

// Play restarts playback from the first scheduled frame, whether the
// animation is running, paused or finished.
func (a *Animator) Play() {
	a.timeline.Restart()
}

// Stop pauses playback where it is. A later Play still starts over.
func (a *Animator) Stop() {
	a.timeline.Pause()
}

// Grid returns the frame geometry.
func (a *Animator) Grid() FrameGrid {
	return a.grid
}

// Playback returns the playback settings with defaults applied.
func (a *Animator) Playback() PlaybackConfig {
	return a.playback
}

// Timeline returns the timeline owned by the animator.
func (a *Animator) Timeline() Timeline {
	return a.timeline
}

// Target returns the elements the animator drives.
func (a *Animator) Target() Target {
	return a.target
}
