package flipbook

// Image is the element showing the whole sprite sheet. Keyframes move it with
// SetPosition; SetMargin shifts it once to crop the frame trim.
type Image interface {
	Positioner
	SetMargin(left, top float64)
}

// Viewport is the element the sheet is seen through.
type Viewport interface {
	SetSize(width, height float64)
	SetClip(clip bool)
}

// Target pairs the two elements an Animator drives. Either may be nil, in
// which case the Animator is inert.
type Target struct {
	Image    Image
	Viewport Viewport
}

// Ready reports whether both elements are present.
func (t Target) Ready() bool {
	return t.Image != nil && t.Viewport != nil
}
