// Package pickle provides the data model of a pixel-art editor.
//
// # Overview
//
// A [Sprite] is a fixed-size RGBA8 raster. An [Animation] is an ordered list
// of sprites played back as frames. The editing operations work directly on
// sprites:
//
//	s := pickle.NewSprite(16, 16)
//	s.SetPixels([]pickle.Loc{{X: 1, Y: 1}, {X: 2, Y: 1}}, pickle.Red)
//	_ = pickle.FloodFill(s, pickle.L(0, 0), pickle.Blue)
//	s.Translate(pickle.L(1, 0))
//
// Undo history, tools and command dispatch live in package editor; the
// client-to-pixel viewport and multi-pointer gestures live in package
// viewport.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right, Y increases down
//   - A client position p lies in pixel p.Floor()
//
// # Version Tokens
//
// Every successful mutation gives a sprite a new [Sprite.Version]. Tokens
// are random, so two sprites with identical pixels do not share one.
// Renderers repaint when the token they last drew differs from the current
// one.
//
// # Concurrency
//
// Sprites and animations are not safe for concurrent mutation. Take a
// [Sprite.Clone] before handing a sprite to another goroutine.
package pickle
