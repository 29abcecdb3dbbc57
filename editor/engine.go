package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/davidisaaclee/pickle"
)

// PasteboardKey is the store key CopyFrame writes and PasteFrame reads.
const PasteboardKey = "pasteboard"

var (
	// ErrUnknownCommand is returned by Dispatch for unrecognised commands.
	ErrUnknownCommand = errors.New("editor: unknown command")

	// ErrNoStore is returned by clipboard commands when the engine has no store.
	ErrNoStore = errors.New("editor: no clipboard store")
)

// Store is a key-value slot holder used as the clipboard.
type Store interface {
	// Get returns the value at key; ok is false when the slot is empty.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value at key.
	Set(key, value string) error
}

// Engine applies commands to a State. It holds no editor state itself, so
// one engine can serve several documents.
type Engine struct {
	store  Store
	key    string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the logger, which defaults to pickle.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithPasteboardKey changes the store key used for copy and paste.
func WithPasteboardKey(key string) Option {
	return func(e *Engine) {
		e.key = key
	}
}

// NewEngine creates an engine using store as its clipboard. store may be
// nil, in which case clipboard commands fail with ErrNoStore.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{store: store, key: PasteboardKey}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return pickle.Logger()
}

// Dispatch applies cmd to s. Commands run to completion before Dispatch
// returns. A command that fails returns its error and leaves s unchanged.
//
// Pixel commands never record history themselves; dispatch PushHistory
// before the first one of a gesture.
func (e *Engine) Dispatch(s *State, cmd Command) error {
	if err := e.apply(s, cmd); err != nil {
		e.log().Warn("command failed", "command", commandName(cmd), "err", err)
		return err
	}
	if l := e.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("command",
			"command", commandName(cmd),
			"frame", s.CurrentFrame(),
			"frames", s.Animation().Len(),
			"version", s.ActiveSprite().Version())
	}
	return nil
}

func commandName(cmd Command) string {
	if cmd == nil {
		return "nil"
	}
	return cmd.Type().String()
}

func (e *Engine) apply(s *State, cmd Command) error {
	switch c := cmd.(type) {
	case PushHistory:
		s.History.Push()
	case Undo:
		s.History.Undo()
	case Redo:
		s.History.Redo()

	case PaintPixels:
		for _, sp := range s.editTargets() {
			sp.SetPixels(c.Locations, c.Color)
		}
	case ErasePixels:
		for _, sp := range s.editTargets() {
			sp.SetPixels(c.Locations, pickle.Transparent)
		}
	case PaintBucket:
		return paintBucket(s.editTargets(), c)
	case TranslateSprite:
		for _, sp := range s.editTargets() {
			sp.Translate(c.Offset)
		}
	case PickColor:
		color, err := s.ActiveSprite().Pixel(c.Location)
		if err != nil {
			s.ActiveTool = ToolEraser
			return nil
		}
		s.ActiveColor = color

	case SetActiveTool:
		s.ActiveTool = c.Tool
	case SetActiveColor:
		s.ActiveColor = c.Color
	case SetBroadcastEdits:
		s.BroadcastEdits = c.Enabled

	case MovePlayhead:
		s.setCurrentFrame(c.Frame)
	case AdvancePlayhead:
		s.setCurrentFrame((s.CurrentFrame() + 1) % s.Animation().Len())
	case SetPlaying:
		s.History.Present.Playback.IsPlaying = c.Playing

	case AddBlankFrame:
		s.Animation().AppendEmptyFrame()
		s.setCurrentFrame(s.Animation().Len() - 1)
	case DuplicateFrame:
		cur := s.CurrentFrame()
		if _, err := s.Animation().DuplicateFrame(cur); err != nil {
			return err
		}
		s.setCurrentFrame(cur + 1)
	case DeleteFrame:
		e.deleteFrame(s)
	case CopyFrame:
		return e.copyFrame(s)
	case CutFrame:
		if err := e.copyFrame(s); err != nil {
			return err
		}
		e.deleteFrame(s)
	case PasteFrame:
		return e.pasteFrame(s)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return nil
}

// paintBucket fills every target or none: all regions are computed before
// the first pixel is written.
func paintBucket(targets []*pickle.Sprite, c PaintBucket) error {
	regions := make([][]pickle.Loc, len(targets))
	for i, sp := range targets {
		region, err := pickle.FillRegion(sp, c.Location)
		if err != nil {
			return fmt.Errorf("paint bucket on frame %d: %w", i, err)
		}
		regions[i] = region
	}
	for i, sp := range targets {
		sp.SetPixels(regions[i], c.Color)
	}
	return nil
}

func (e *Engine) deleteFrame(s *State) {
	if !s.Animation().DeleteFrame(s.CurrentFrame()) {
		e.log().Debug("delete refused", "frame", s.CurrentFrame(), "frames", s.Animation().Len())
		return
	}
	s.setCurrentFrame(s.CurrentFrame())
}

func (e *Engine) copyFrame(s *State) error {
	if e.store == nil {
		return ErrNoStore
	}
	payload, err := pickle.Serialize(s.ActiveSprite())
	if err != nil {
		return err
	}
	if err := e.store.Set(e.key, payload); err != nil {
		return fmt.Errorf("copy frame: %w", err)
	}
	return nil
}

func (e *Engine) pasteFrame(s *State) error {
	if e.store == nil {
		return ErrNoStore
	}
	payload, ok, err := e.store.Get(e.key)
	if err != nil {
		return fmt.Errorf("paste frame: %w", err)
	}
	if !ok || payload == "" {
		return nil
	}
	pasted, err := pickle.Deserialize(payload)
	if err != nil {
		return fmt.Errorf("paste frame: %w", err)
	}
	if size := s.Animation().Size(); pasted.Size() != size {
		return fmt.Errorf("paste frame: %w: clipboard holds %v, animation is %v",
			pickle.ErrSizeMismatch, pasted.Size(), size)
	}

	at := s.CurrentFrame() + 1
	frame, err := s.Animation().InsertEmptyFrame(at)
	if err != nil {
		return err
	}
	if err := frame.Overlay(pasted); err != nil {
		return err
	}
	s.setCurrentFrame(at)
	return nil
}
