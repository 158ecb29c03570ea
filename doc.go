// Package flipbook animates sprite sheets for [Ebitengine].
//
// A sprite sheet is a single image holding every frame of an animation laid
// out on a grid. flipbook shows one frame at a time through a clipped
// viewport and steps the sheet behind it, frame by frame, on a timeline.
//
// # Quick start
//
//	sheet := ebiten.NewImageFromImage(img)
//	target := flipbook.NewSheetTarget(sheet, 100, 50)
//	ticker := flipbook.NewTicker()
//
//	anim := flipbook.New(target.Target(), flipbook.FrameGrid{
//		Columns: 4, Rows: 2, Frames: 8,
//		FrameWidth: 64, FrameHeight: 64,
//	}, flipbook.DefaultPlayback(), flipbook.Callbacks{}, ticker)
//
// Then, from your [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.ticker.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.target.View.Draw(s) }
//
// # Timelines
//
// An [Animator] never paces frames itself. It registers one instantaneous
// keyframe per frame on a [Timeline] created by an [Engine], then only calls
// Restart and Pause. [Ticker] is the built-in engine; its playhead is a
// [gween] tween, so [TimelineConfig.Ease] can ramp playback speed while the
// frames themselves stay discrete. There is no global animation manager:
// the game calls [Ticker.Update] itself.
//
// # Sheet definitions
//
// Grid geometry and playback settings can live in YAML files, loaded with
// [LoadDefinition] and reloaded with a [DefinitionWatcher].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package flipbook
