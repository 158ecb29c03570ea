package flipbook

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SheetImage is an Image backed by an ebiten sprite sheet. Its position and
// margin are relative to the View it is drawn through.
type SheetImage struct {
	Sheet *ebiten.Image

	X, Y       float64 // current frame offset, set by keyframes
	MarginLeft float64
	MarginTop  float64
}

// NewSheetImage wraps sheet. A nil sheet is allowed; it draws nothing.
func NewSheetImage(sheet *ebiten.Image) *SheetImage {
	return &SheetImage{Sheet: sheet}
}

// SetPosition implements Positioner.
func (s *SheetImage) SetPosition(x, y float64) {
	s.X = x
	s.Y = y
}

// SetMargin implements Image.
func (s *SheetImage) SetMargin(left, top float64) {
	s.MarginLeft = left
	s.MarginTop = top
}

// Origin returns where the sheet's top-left corner sits relative to the view.
func (s *SheetImage) Origin() Vec2 {
	return Vec2{X: s.X + s.MarginLeft, Y: s.Y + s.MarginTop}
}

// View is a Viewport placed on screen. When Clip is set only the Width x
// Height area at (X, Y) is drawn to.
type View struct {
	X, Y          float64
	Width, Height float64
	Clip          bool
	Visible       bool

	// Image is drawn by Draw. It may be nil.
	Image *SheetImage
}

// NewView creates a visible view at (x, y) showing img.
func NewView(x, y float64, img *SheetImage) *View {
	return &View{X: x, Y: y, Visible: true, Image: img}
}

// SetSize implements Viewport.
func (v *View) SetSize(width, height float64) {
	v.Width = width
	v.Height = height
}

// SetClip implements Viewport.
func (v *View) SetClip(clip bool) {
	v.Clip = clip
}

// Bounds returns the screen rectangle covered by the view.
func (v *View) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// clipRect returns the integer destination rectangle used for clipping.
func (v *View) clipRect() image.Rectangle {
	x0 := int(math.Floor(v.X))
	y0 := int(math.Floor(v.Y))
	x1 := int(math.Ceil(v.X + v.Width))
	y1 := int(math.Ceil(v.Y + v.Height))
	return image.Rect(x0, y0, x1, y1)
}

// Draw renders the view's image onto dst.
func (v *View) Draw(dst *ebiten.Image) {
	if !v.Visible || v.Image == nil || v.Image.Sheet == nil || dst == nil {
		return
	}
	target := dst
	if v.Clip {
		r := v.clipRect().Intersect(dst.Bounds())
		if r.Empty() {
			return
		}
		target = dst.SubImage(r).(*ebiten.Image)
	}
	origin := v.Image.Origin()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(v.X+origin.X, v.Y+origin.Y)
	target.DrawImage(v.Image.Sheet, &op)
}

// SheetTarget is a Target built from a SheetImage and the View showing it.
type SheetTarget struct {
	Image *SheetImage
	View  *View
}

// NewSheetTarget creates the image and view for sheet, with the view's
// top-left corner at (x, y).
func NewSheetTarget(sheet *ebiten.Image, x, y float64) SheetTarget {
	img := NewSheetImage(sheet)
	return SheetTarget{Image: img, View: NewView(x, y, img)}
}

// Target returns the pair as a Target for New.
func (st SheetTarget) Target() Target {
	var t Target
	if st.Image != nil {
		t.Image = st.Image
	}
	if st.View != nil {
		t.Viewport = st.View
	}
	return t
}
