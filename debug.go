package flipbook

import "log"

// globalDebug enables warnings for inputs that render wrongly without
// failing. Off by default; flipbook never logs otherwise.
var globalDebug bool

// SetDebug turns debug warnings on or off.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckTarget warns when an Animator is created without both elements.
func debugCheckTarget(t Target) {
	if !globalDebug {
		return
	}
	if t.Image == nil {
		log.Printf("flipbook: animator has no image, frames will not be scheduled")
	}
	if t.Viewport == nil {
		log.Printf("flipbook: animator has no viewport, frames will not be scheduled")
	}
}

// debugCheckGrid warns about geometry that produces undefined output.
func debugCheckGrid(g FrameGrid, p PlaybackConfig) {
	if !globalDebug {
		return
	}
	if g.Columns <= 0 || g.Rows <= 0 {
		log.Printf("flipbook: grid has %d columns and %d rows", g.Columns, g.Rows)
	}
	if g.Frames < 1 || g.Frames > g.Capacity() {
		log.Printf("flipbook: frame count %d outside grid capacity %d", g.Frames, g.Capacity())
	}
	if g.FrameWidth <= 0 || g.FrameHeight <= 0 {
		log.Printf("flipbook: frame size %vx%v is not positive", g.FrameWidth, g.FrameHeight)
	}
	if p.StartFrame < 0 || p.StartFrame >= g.Frames {
		log.Printf("flipbook: start frame %d outside [0, %d)", p.StartFrame, g.Frames)
	}
}
