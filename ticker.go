package flipbook

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ticker is the built-in Engine. It owns every timeline it creates and
// advances them when the game calls Update, typically once per ebiten tick.
// There is no background goroutine and no locking; flipbook is
// single-threaded like the ebiten game loop that drives it.
type Ticker struct {
	timelines []*TweenTimeline
}

// NewTicker creates an empty Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// NewTimeline creates a timeline driven by this ticker.
func (tk *Ticker) NewTimeline(cfg TimelineConfig) Timeline {
	return tk.Add(cfg)
}

// Add creates a timeline driven by this ticker and returns the concrete type.
func (tk *Ticker) Add(cfg TimelineConfig) *TweenTimeline {
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	tl := &TweenTimeline{cfg: cfg, paused: cfg.Paused, ticker: tk}
	tk.timelines = append(tk.timelines, tl)
	return tl
}

// Update advances every live timeline by dt seconds. Timelines killed during
// the update (for example from a callback) are dropped afterwards.
func (tk *Ticker) Update(dt float32) {
	n := len(tk.timelines)
	for i := 0; i < n; i++ {
		tk.timelines[i].Update(dt)
	}
	live := tk.timelines[:0]
	for _, tl := range tk.timelines {
		if !tl.killed {
			live = append(live, tl)
		}
	}
	for i := len(live); i < len(tk.timelines); i++ {
		tk.timelines[i] = nil
	}
	tk.timelines = live
}

// Remove stops driving tl. It is a no-op if tl does not belong to this
// ticker.
func (tk *Ticker) Remove(tl Timeline) {
	t, ok := tl.(*TweenTimeline)
	if !ok || t.ticker != tk {
		return
	}
	t.Kill()
}

// Len returns the number of live timelines.
func (tk *Ticker) Len() int {
	n := 0
	for _, tl := range tk.timelines {
		if !tl.killed {
			n++
		}
	}
	return n
}

type keyframe struct {
	target Positioner
	pos    Vec2
	at     float64
}

// TweenTimeline is the Timeline created by a Ticker. Its playhead is a gween
// tween running from 0 to the timeline duration, which is the position of the
// latest keyframe.
type TweenTimeline struct {
	cfg      TimelineConfig
	keys     []keyframe // sorted by at, insertion order kept for ties
	handlers [4][]EventFunc
	duration float64
	clock    *gween.Tween // rebuilt lazily when duration changes

	elapsed float64 // raw seconds into the current pass
	pos     float64 // eased playhead
	delay   float64 // repeat delay still to wait out
	passes  int     // completed passes since the last restart

	paused  bool
	started bool
	primed  bool // keys at position 0 applied for the current pass
	done    bool
	killed  bool
	ticker  *Ticker
}

// Set implements Timeline.
func (t *TweenTimeline) Set(target Positioner, pos Vec2, at float64) {
	if at < 0 {
		at = 0
	}
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].at > at })
	t.keys = append(t.keys, keyframe{})
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = keyframe{target: target, pos: pos, at: at}
	if at > t.duration {
		t.duration = at
		t.clock = nil
	}
}

// On implements Timeline.
func (t *TweenTimeline) On(event Event, fn EventFunc) {
	if fn == nil || int(event) >= len(t.handlers) {
		return
	}
	t.handlers[event] = append(t.handlers[event], fn)
}

// Restart implements Timeline. Keyframes at position 0 are applied at once.
func (t *TweenTimeline) Restart() {
	if t.killed {
		return
	}
	t.paused = false
	t.started = false
	t.done = false
	t.passes = 0
	t.delay = 0
	t.elapsed = 0
	t.pos = 0
	t.applyPassStart()
	t.primed = true
}

// Pause implements Timeline.
func (t *TweenTimeline) Pause() {
	t.paused = true
}

// Resume continues from the current position without seeking.
func (t *TweenTimeline) Resume() {
	if !t.done {
		t.paused = false
	}
}

// Kill detaches the timeline from its ticker. It never fires again.
func (t *TweenTimeline) Kill() {
	t.killed = true
	t.paused = true
}

// Duration returns the position of the latest keyframe in seconds.
func (t *TweenTimeline) Duration() float64 { return t.duration }

// Position returns the playhead position in seconds within the current pass.
func (t *TweenTimeline) Position() float64 { return t.pos }

// Progress returns the playhead position as a fraction of the duration.
func (t *TweenTimeline) Progress() float64 {
	if t.duration <= 0 {
		if t.done {
			return 1
		}
		return 0
	}
	return t.pos / t.duration
}

// Paused reports whether the timeline is paused.
func (t *TweenTimeline) Paused() bool { return t.paused }

// Done reports whether a one-shot timeline has finished.
func (t *TweenTimeline) Done() bool { return t.done }

// Len returns the number of scheduled keyframes.
func (t *TweenTimeline) Len() int { return len(t.keys) }

// Config returns the configuration the timeline was created with.
func (t *TweenTimeline) Config() TimelineConfig { return t.cfg }

// Update advances the playhead by dt seconds, applying every keyframe it
// crosses and firing lifecycle events. Overflow past the end of a looping
// pass carries into the next one.
func (t *TweenTimeline) Update(dt float32) {
	if t.paused || t.done || t.killed || dt <= 0 {
		return
	}
	remaining := float64(dt)

	if t.delay > 0 {
		if remaining < t.delay {
			t.delay -= remaining
			return
		}
		remaining -= t.delay
		t.delay = 0
	}

	if !t.started {
		t.started = true
		if !t.primed {
			t.applyPassStart()
			t.primed = true
		}
		t.emit(EventStart, t.Progress())
	}

	// A zero-length timeline has a single pass worth of events; after that
	// it idles until restarted.
	if t.duration <= 0 {
		if t.passes == 0 {
			t.endPass()
		}
		return
	}

	for !t.done && !t.paused && !t.killed {
		prev := t.pos
		end := t.elapsed + remaining
		if end < t.duration {
			t.elapsed = end
			t.pos = t.eased(end)
			t.seek(prev, t.pos)
			t.emit(EventUpdate, t.Progress())
			return
		}

		remaining = end - t.duration
		t.elapsed = t.duration
		t.pos = t.duration
		t.seek(prev, t.pos)
		if !t.endPass() {
			return
		}
		if t.cfg.RepeatDelay > 0 {
			if remaining < t.cfg.RepeatDelay {
				t.delay = t.cfg.RepeatDelay - remaining
				return
			}
			remaining -= t.cfg.RepeatDelay
		}
		if remaining <= 0 {
			return
		}
	}
}

// endPass handles the playhead reaching the end. It returns true when
// playback wrapped to a new pass.
func (t *TweenTimeline) endPass() bool {
	t.emit(EventUpdate, 1)
	if t.cfg.Repeat >= 0 && t.passes >= t.cfg.Repeat {
		t.done = true
		t.paused = true
		t.emit(EventComplete, 1)
		return false
	}
	t.passes++
	t.emit(EventRepeat, 1)
	if t.duration <= 0 {
		return false
	}
	t.elapsed = 0
	t.pos = 0
	t.applyPassStart()
	t.primed = true
	return true
}

func (t *TweenTimeline) eased(elapsed float64) float64 {
	if t.clock == nil {
		d := float32(t.duration)
		t.clock = gween.New(0, d, d, t.cfg.Ease)
	}
	v, _ := t.clock.Set(float32(elapsed))
	pos := float64(v)
	if pos < 0 {
		pos = 0
	}
	if pos > t.duration {
		pos = t.duration
	}
	return pos
}

// seek applies keyframes between two playhead positions. Moving forward
// applies every key in (from, to] in order. Moving backward, which only
// happens with overshooting eases, re-renders the state at to.
func (t *TweenTimeline) seek(from, to float64) {
	if to >= from {
		for _, k := range t.keys {
			if k.at > to {
				break
			}
			if k.at > from {
				k.target.SetPosition(k.pos.X, k.pos.Y)
			}
		}
		return
	}
	t.renderAt(to)
}

// applyPassStart applies the keyframes sitting at position 0.
func (t *TweenTimeline) applyPassStart() {
	for _, k := range t.keys {
		if k.at > 0 {
			break
		}
		k.target.SetPosition(k.pos.X, k.pos.Y)
	}
}

// renderAt applies, per target, the latest keyframe at or before pos.
func (t *TweenTimeline) renderAt(pos float64) {
	latest := make(map[Positioner]Vec2)
	var order []Positioner
	for _, k := range t.keys {
		if k.at > pos {
			break
		}
		if _, seen := latest[k.target]; !seen {
			order = append(order, k.target)
		}
		latest[k.target] = k.pos
	}
	for _, target := range order {
		p := latest[target]
		target.SetPosition(p.X, p.Y)
	}
}

func (t *TweenTimeline) emit(event Event, progress float64) {
	for _, fn := range t.handlers[event] {
		fn(progress)
	}
}
