// Command pickledemo drives the pickle editing engine without a UI and
// writes the resulting animation as a sprite-sheet PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/davidisaaclee/pickle"
	"github.com/davidisaaclee/pickle/clipboard"
	"github.com/davidisaaclee/pickle/config"
	"github.com/davidisaaclee/pickle/editor"
	"github.com/davidisaaclee/pickle/preview"
	"github.com/davidisaaclee/pickle/viewport"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		output     = flag.String("output", "demo.png", "output sprite sheet")
		frames     = flag.Int("frames", 4, "number of animation frames")
		scale      = flag.Int("scale", 8, "sprite sheet magnification")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level, _ := cfg.Level()
	pickle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, closeStore, err := openStore(cfg.Clipboard)
	if err != nil {
		log.Fatalf("Failed to open clipboard: %v", err)
	}
	defer closeStore()

	state := editor.NewState(cfg.Sprite.Width, cfg.Sprite.Height)
	state.History.Limit = cfg.HistoryLimit
	if c, err := cfg.ActiveColor(); err == nil {
		state.ActiveColor = c
	}

	d := &demo{engine: editor.NewEngine(store), state: state}
	d.drawBackground()
	d.drawFrames(*frames)
	d.drawWithViewport()
	if d.err != nil {
		log.Fatalf("Demo failed: %v", d.err)
	}

	if err := savePNG(*output, state.Animation(), *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%d frames of %dx%d)\n",
		*output, state.Animation().Len(), cfg.Sprite.Width, cfg.Sprite.Height)
}

func openStore(c config.ClipboardConfig) (editor.Store, func(), error) {
	switch c.Backend {
	case config.BackendSystem:
		s := clipboard.NewSystem()
		if s.Unsupported() {
			return nil, nil, fmt.Errorf("system clipboard unavailable")
		}
		return s, func() {}, nil
	case config.BackendSQLite:
		s, err := clipboard.OpenSQLite(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return clipboard.NewMemory(), func() {}, nil
	}
}

// demo dispatches commands and keeps the first error.
type demo struct {
	engine *editor.Engine
	state  *editor.State
	err    error
}

func (d *demo) do(cmds ...editor.Command) {
	for _, c := range cmds {
		if d.err != nil {
			return
		}
		d.err = d.engine.Dispatch(d.state, c)
	}
}

func (d *demo) drawBackground() {
	size := d.state.Animation().Size()
	var border []pickle.Loc
	for x := 0; x < size.X; x++ {
		border = append(border, pickle.L(x, 0), pickle.L(x, size.Y-1))
	}
	for y := 0; y < size.Y; y++ {
		border = append(border, pickle.L(0, y), pickle.L(size.X-1, y))
	}

	d.do(
		editor.PushHistory{},
		editor.PaintPixels{Locations: border, Color: pickle.Palette[1]},
		editor.PaintBucket{Location: pickle.L(size.X/2, size.Y/2), Color: pickle.Palette[13]},
	)
}

// drawFrames paints a small block, then builds each following frame by
// duplicating the previous one and shifting it right.
func (d *demo) drawFrames(n int) {
	block := []pickle.Loc{pickle.L(2, 2), pickle.L(3, 2), pickle.L(2, 3), pickle.L(3, 3)}
	d.do(
		editor.PushHistory{},
		editor.PaintPixels{Locations: block, Color: d.state.ActiveColor},
	)
	for i := 1; i < n; i++ {
		d.do(
			editor.PushHistory{},
			editor.DuplicateFrame{},
			editor.TranslateSprite{Offset: pickle.L(1, 0)},
		)
	}

	// An edit that is undone and redone again lands exactly once.
	d.do(
		editor.PushHistory{},
		editor.SetBroadcastEdits{Enabled: true},
		editor.PaintPixels{Locations: []pickle.Loc{pickle.L(1, 1)}, Color: pickle.Palette[3]},
		editor.Undo{},
		editor.Redo{},
		editor.SetBroadcastEdits{Enabled: false},
	)

	// Copy the first frame to the end of the animation.
	d.do(
		editor.MovePlayhead{Frame: 0},
		editor.CopyFrame{},
		editor.MovePlayhead{Frame: d.state.Animation().Len() - 1},
		editor.PushHistory{},
		editor.PasteFrame{},
	)
}

// drawWithViewport simulates pointer input on a 320x320 artboard: a pinch
// zooms the view, then a tap paints the pixel under the pointer.
func (d *demo) drawWithViewport() {
	vp := viewport.New(d.state.Animation().Size(), 320, 320)

	vp.PointerDown(1, pickle.Pt(100, 100))
	vp.PointerDown(2, pickle.Pt(200, 200))
	vp.PointerMove(2, pickle.Pt(300, 300))
	vp.PointerUp(1)
	vp.PointerUp(2)

	tap := vp.PixelAt(pickle.Pt(160, 160))
	d.do(
		editor.PushHistory{},
		editor.PaintPixels{Locations: []pickle.Loc{tap}, Color: pickle.Palette[4]},
	)
}

func savePNG(path string, a *pickle.Animation, scale int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return writePNG(f, a, scale)
}

func writePNG(w io.Writer, a *pickle.Animation, scale int) error {
	return png.Encode(w, preview.Sheet(a, scale))
}
