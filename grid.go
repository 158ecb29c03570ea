package flipbook

import "math"

// FrameGrid describes how frames are laid out on a sprite sheet. Frames run
// left-to-right, top-to-bottom. Value type; an Animator keeps its own copy.
type FrameGrid struct {
	Columns     int     `yaml:"columns"`      // frames per row
	Rows        int     `yaml:"rows"`         // rows of frames
	Frames      int     `yaml:"frames"`       // usable frames, at most Columns*Rows
	FrameWidth  float64 `yaml:"frame_width"`  // width of one frame in pixels
	FrameHeight float64 `yaml:"frame_height"` // height of one frame in pixels
	Offset      Trim    `yaml:"offset"`       // trim applied to every frame
}

// Capacity returns the number of cells in the grid.
func (g FrameGrid) Capacity() int {
	return g.Columns * g.Rows
}

// FrameOffset returns the sheet position that brings frame i into view:
// (-(i mod Columns) * FrameWidth, -floor(i / Columns) * FrameHeight).
// A grid without columns is read as a single column.
func (g FrameGrid) FrameOffset(i int) Vec2 {
	cols := g.Columns
	if cols <= 0 {
		cols = 1
	}
	col := i % cols
	row := i / cols
	return Vec2{
		X: -float64(col) * g.FrameWidth,
		Y: -float64(row) * g.FrameHeight,
	}
}

// FrameRect returns the source rectangle of frame i within the sheet,
// ignoring trim.
func (g FrameGrid) FrameRect(i int) Rect {
	off := g.FrameOffset(i)
	return Rect{X: -off.X, Y: -off.Y, Width: g.FrameWidth, Height: g.FrameHeight}
}

// ViewportSize returns the visible size of one trimmed frame.
func (g FrameGrid) ViewportSize() Vec2 {
	return Vec2{
		X: g.FrameWidth - 2*g.Offset.Left,
		Y: g.FrameHeight - 2*g.Offset.Top,
	}
}

// Margin returns the shift applied to the sheet so the trimmed frame lines up
// with the viewport's top-left corner.
func (g FrameGrid) Margin() Vec2 {
	return Vec2{X: -g.Offset.Left, Y: -g.Offset.Top}
}

// KeyframeAt returns the timeline position of frame i for the given cycle
// duration: (i / (Frames-1)) * duration. A single-frame grid has nothing to
// step through, so its only frame sits at position 0.
func (g FrameGrid) KeyframeAt(i int, duration float64) float64 {
	if g.Frames <= 1 {
		return 0
	}
	return float64(i) / float64(g.Frames-1) * duration
}

// FrameAt returns the frame index shown for an offset produced by
// FrameOffset, or -1 if the offset does not land on a frame of this grid.
func (g FrameGrid) FrameAt(off Vec2) int {
	if g.FrameWidth <= 0 || g.FrameHeight <= 0 || g.Columns <= 0 {
		return -1
	}
	col := -off.X / g.FrameWidth
	row := -off.Y / g.FrameHeight
	if col != math.Trunc(col) || row != math.Trunc(row) || col < 0 || row < 0 {
		return -1
	}
	if int(col) >= g.Columns {
		return -1
	}
	i := int(row)*g.Columns + int(col)
	if i >= g.Frames {
		return -1
	}
	return i
}
