package editor

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/davidisaaclee/pickle"
	"github.com/davidisaaclee/pickle/clipboard"
)

func mustDispatch(t *testing.T, e *Engine, s *State, cmds ...Command) {
	t.Helper()
	for _, cmd := range cmds {
		if err := e.Dispatch(s, cmd); err != nil {
			t.Fatalf("Dispatch(%v): %v", cmd.Type(), err)
		}
	}
}

func pixel(t *testing.T, sp *pickle.Sprite, x, y int) pickle.Color {
	t.Helper()
	c, err := sp.Pixel(pickle.L(x, y))
	if err != nil {
		t.Fatalf("Pixel(%d,%d): %v", x, y, err)
	}
	return c
}

type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(string, string) error         { return f.err }

type bogusCommand struct{}

func (bogusCommand) Type() CommandType { return CommandType(200) }

func TestEngine_PaintAndErase(t *testing.T) {
	s := NewState(4, 4)
	e := NewEngine(nil)

	locs := []pickle.Loc{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 9, Y: 9}}
	mustDispatch(t, e, s, PaintPixels{Locations: locs, Color: pickle.Blue})

	if got := pixel(t, s.ActiveSprite(), 0, 0); got != pickle.Blue {
		t.Errorf("(0,0) = %v, want blue", got)
	}
	if got := pixel(t, s.ActiveSprite(), 3, 3); got != pickle.Blue {
		t.Errorf("(3,3) = %v, want blue", got)
	}

	mustDispatch(t, e, s, ErasePixels{Locations: locs[:1]})
	if got := pixel(t, s.ActiveSprite(), 0, 0); got != pickle.Transparent {
		t.Errorf("(0,0) after erase = %v, want transparent", got)
	}
	if got := pixel(t, s.ActiveSprite(), 3, 3); got != pickle.Blue {
		t.Errorf("(3,3) after erase = %v, want blue", got)
	}
}

func TestEngine_BroadcastEdits(t *testing.T) {
	s := NewState(4, 4)
	e := NewEngine(nil)
	mustDispatch(t, e, s, AddBlankFrame{}, AddBlankFrame{})

	mustDispatch(t, e, s,
		SetBroadcastEdits{Enabled: true},
		PaintPixels{Locations: []pickle.Loc{{X: 1, Y: 2}}, Color: pickle.Green},
	)
	for i, f := range s.Animation().Frames {
		if got := pixel(t, f, 1, 2); got != pickle.Green {
			t.Errorf("frame %d pixel = %v, want green", i, got)
		}
	}

	mustDispatch(t, e, s,
		SetBroadcastEdits{Enabled: false},
		PaintPixels{Locations: []pickle.Loc{{X: 0, Y: 0}}, Color: pickle.Red},
	)
	for i, f := range s.Animation().Frames {
		want := pickle.Transparent
		if i == s.CurrentFrame() {
			want = pickle.Red
		}
		if got := pixel(t, f, 0, 0); got != want {
			t.Errorf("frame %d pixel = %v, want %v", i, got, want)
		}
	}
}

func TestEngine_PaintBucket(t *testing.T) {
	s := NewState(4, 4)
	fill := pickle.RGBA(0, 255, 0, 255)
	mustDispatch(t, NewEngine(nil), s, PaintBucket{Location: pickle.L(0, 0), Color: fill})

	for y := range 4 {
		for x := range 4 {
			if got := pixel(t, s.ActiveSprite(), x, y); got != fill {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, fill)
			}
		}
	}
}

func TestEngine_PaintBucketAllOrNothing(t *testing.T) {
	s := NewState(100, 100)
	e := NewEngine(nil)
	mustDispatch(t, e, s, AddBlankFrame{}, MovePlayhead{Frame: 0})

	// Frame 0 gets a wall so its region is one column; frame 1 stays empty
	// and exceeds the fill cutoff.
	var wall []pickle.Loc
	for y := range 100 {
		wall = append(wall, pickle.L(1, y))
	}
	mustDispatch(t, e, s, PaintPixels{Locations: wall, Color: pickle.Black})
	v0 := s.Animation().Frame(0).Version()

	err := e.Dispatch(s, SetBroadcastEdits{Enabled: true})
	if err != nil {
		t.Fatal(err)
	}
	err = e.Dispatch(s, PaintBucket{Location: pickle.L(0, 0), Color: pickle.Red})
	if !errors.Is(err, pickle.ErrFillTooLarge) {
		t.Fatalf("error = %v, want ErrFillTooLarge", err)
	}
	if got := pixel(t, s.Animation().Frame(0), 0, 0); got != pickle.Transparent {
		t.Errorf("frame 0 was filled despite failure: %v", got)
	}
	if s.Animation().Frame(0).Version() != v0 {
		t.Error("frame 0 version changed despite failure")
	}
}

func TestEngine_TranslateSprite(t *testing.T) {
	s := NewState(2, 2)
	e := NewEngine(nil)
	mustDispatch(t, e, s,
		PaintPixels{Locations: []pickle.Loc{{X: 0, Y: 0}}, Color: pickle.Red},
		TranslateSprite{Offset: pickle.L(1, 0)},
	)
	if got := pixel(t, s.ActiveSprite(), 1, 0); got != pickle.Red {
		t.Errorf("(1,0) = %v, want red", got)
	}
	if got := pixel(t, s.ActiveSprite(), 0, 0); got != pickle.Transparent {
		t.Errorf("(0,0) = %v, want transparent", got)
	}
}

func TestEngine_PickColor(t *testing.T) {
	s := NewState(3, 3)
	e := NewEngine(nil)
	mustDispatch(t, e, s,
		PaintPixels{Locations: []pickle.Loc{{X: 2, Y: 1}}, Color: pickle.Blue},
		SetActiveTool{Tool: ToolEyedropper},
		PickColor{Location: pickle.L(2, 1)},
	)
	if s.ActiveColor != pickle.Blue {
		t.Errorf("ActiveColor = %v, want blue", s.ActiveColor)
	}

	// Picking outside the sprite switches to the eraser and keeps the color.
	mustDispatch(t, e, s, PickColor{Location: pickle.L(-1, 5)})
	if s.ActiveTool != ToolEraser {
		t.Errorf("ActiveTool = %v, want eraser", s.ActiveTool)
	}
	if s.ActiveColor != pickle.Blue {
		t.Errorf("ActiveColor = %v, want unchanged blue", s.ActiveColor)
	}
}

func TestEngine_Playhead(t *testing.T) {
	s := NewState(2, 2)
	e := NewEngine(nil)
	mustDispatch(t, e, s, AddBlankFrame{}, AddBlankFrame{})
	if s.CurrentFrame() != 2 {
		t.Fatalf("CurrentFrame after two adds = %d, want 2", s.CurrentFrame())
	}

	tests := []struct {
		cmd  Command
		want int
	}{
		{MovePlayhead{Frame: 1}, 1},
		{MovePlayhead{Frame: -4}, 0},
		{MovePlayhead{Frame: 99}, 2},
		{AdvancePlayhead{}, 0},
		{AdvancePlayhead{}, 1},
	}
	for _, tt := range tests {
		mustDispatch(t, e, s, tt.cmd)
		if s.CurrentFrame() != tt.want {
			t.Errorf("after %v: CurrentFrame = %d, want %d", tt.cmd, s.CurrentFrame(), tt.want)
		}
	}

	mustDispatch(t, e, s, SetPlaying{Playing: true})
	if !s.Playback().IsPlaying {
		t.Error("IsPlaying = false after SetPlaying{true}")
	}
}

func TestEngine_DuplicateFrame(t *testing.T) {
	s := NewState(2, 2)
	e := NewEngine(nil)
	mustDispatch(t, e, s,
		PaintPixels{Locations: []pickle.Loc{{X: 1, Y: 1}}, Color: pickle.Red},
		AddBlankFrame{},
		MovePlayhead{Frame: 0},
		DuplicateFrame{},
	)
	if s.Animation().Len() != 3 || s.CurrentFrame() != 1 {
		t.Fatalf("frames=%d current=%d, want 3 and 1", s.Animation().Len(), s.CurrentFrame())
	}
	if !s.ActiveSprite().Equal(s.Animation().Frame(0)) {
		t.Error("duplicate differs from source")
	}
	if s.ActiveSprite() == s.Animation().Frame(0) {
		t.Error("duplicate is the same sprite as its source")
	}
}

func TestEngine_DeleteFrame(t *testing.T) {
	s := NewState(2, 2)
	e := NewEngine(nil)

	only := s.ActiveSprite()
	mustDispatch(t, e, s, DeleteFrame{})
	if s.Animation().Len() != 1 || s.ActiveSprite() != only {
		t.Fatal("deleted the only frame")
	}

	mustDispatch(t, e, s, AddBlankFrame{}, AddBlankFrame{}, DeleteFrame{})
	if s.Animation().Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Animation().Len())
	}
	if s.CurrentFrame() != 1 {
		t.Errorf("CurrentFrame = %d, want clamped to 1", s.CurrentFrame())
	}
}

func TestEngine_CopyPaste(t *testing.T) {
	store := clipboard.NewMemory()
	s := NewState(3, 3)
	e := NewEngine(store)

	mustDispatch(t, e, s,
		PaintPixels{Locations: []pickle.Loc{{X: 0, Y: 0}, {X: 2, Y: 1}}, Color: pickle.Blue},
		CopyFrame{},
	)
	payload, ok, _ := store.Get(PasteboardKey)
	if !ok {
		t.Fatal("CopyFrame left the pasteboard empty")
	}
	want, _ := pickle.Serialize(s.ActiveSprite())
	if payload != want {
		t.Errorf("pasteboard = %s, want %s", payload, want)
	}

	mustDispatch(t, e, s, PasteFrame{})
	if s.Animation().Len() != 2 || s.CurrentFrame() != 1 {
		t.Fatalf("frames=%d current=%d, want 2 and 1", s.Animation().Len(), s.CurrentFrame())
	}
	if !s.ActiveSprite().Equal(s.Animation().Frame(0)) {
		t.Error("pasted frame differs from the copied one")
	}
}

func TestEngine_CutPaste(t *testing.T) {
	s := NewState(2, 2)
	e := NewEngine(clipboard.NewMemory())
	mustDispatch(t, e, s,
		AddBlankFrame{},
		PaintPixels{Locations: []pickle.Loc{{X: 1, Y: 0}}, Color: pickle.Green},
		CutFrame{},
	)
	if s.Animation().Len() != 1 || s.CurrentFrame() != 0 {
		t.Fatalf("after cut: frames=%d current=%d, want 1 and 0", s.Animation().Len(), s.CurrentFrame())
	}

	mustDispatch(t, e, s, PasteFrame{})
	if got := pixel(t, s.Animation().Frame(1), 1, 0); got != pickle.Green {
		t.Errorf("pasted pixel = %v, want green", got)
	}
}

func TestEngine_PasteEmptyIsNoOp(t *testing.T) {
	s := NewState(2, 2)
	mustDispatch(t, NewEngine(clipboard.NewMemory()), s, PasteFrame{})
	if s.Animation().Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Animation().Len())
	}
}

func TestEngine_PasteRejectsBadPayload(t *testing.T) {
	small, _ := pickle.Serialize(pickle.NewSprite(2, 2))
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"size mismatch", small, pickle.ErrSizeMismatch},
		{"malformed", `{"size":[4,4]}`, pickle.ErrMalformedPayload},
		{"not json", "hello", pickle.ErrMalformedPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := clipboard.NewMemory()
			if err := store.Set(PasteboardKey, tt.payload); err != nil {
				t.Fatal(err)
			}
			s := NewState(4, 4)
			err := NewEngine(store).Dispatch(s, PasteFrame{})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if s.Animation().Len() != 1 || s.CurrentFrame() != 0 {
				t.Errorf("state changed: frames=%d current=%d", s.Animation().Len(), s.CurrentFrame())
			}
		})
	}
}

func TestEngine_PasteboardKey(t *testing.T) {
	store := clipboard.NewMemory()
	s := NewState(2, 2)
	mustDispatch(t, NewEngine(store, WithPasteboardKey("frames")), s, CopyFrame{})

	if _, ok, _ := store.Get("frames"); !ok {
		t.Error("custom key not written")
	}
	if _, ok, _ := store.Get(PasteboardKey); ok {
		t.Error("default key written despite override")
	}
}

func TestEngine_ClipboardErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, cmd := range []Command{CopyFrame{}, CutFrame{}, PasteFrame{}} {
		s := NewState(2, 2)
		mustDispatch(t, NewEngine(nil), s, AddBlankFrame{})

		if err := NewEngine(nil).Dispatch(s, cmd); !errors.Is(err, ErrNoStore) {
			t.Errorf("%v without store: error = %v, want ErrNoStore", cmd.Type(), err)
		}
		if err := NewEngine(failingStore{boom}).Dispatch(s, cmd); !errors.Is(err, boom) {
			t.Errorf("%v with failing store: error = %v, want boom", cmd.Type(), err)
		}
		if s.Animation().Len() != 2 {
			t.Errorf("%v failure changed the frame count to %d", cmd.Type(), s.Animation().Len())
		}
	}
}

func TestEngine_UnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := NewEngine(nil, WithLogger(logger)).Dispatch(NewState(1, 1), bogusCommand{})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
	if !strings.Contains(buf.String(), "command failed") {
		t.Errorf("failure not logged: %q", buf.String())
	}
}

func TestEngine_GestureUndoesAsOneStep(t *testing.T) {
	s := NewState(4, 1)
	e := NewEngine(nil)

	mustDispatch(t, e, s, PushHistory{})
	for x := range 4 {
		mustDispatch(t, e, s, PaintPixels{Locations: []pickle.Loc{{X: x, Y: 0}}, Color: pickle.Red})
	}
	mustDispatch(t, e, s, Undo{})
	for x := range 4 {
		if got := pixel(t, s.ActiveSprite(), x, 0); got != pickle.Transparent {
			t.Errorf("(%d,0) = %v after undo, want transparent", x, got)
		}
	}
	mustDispatch(t, e, s, Redo{})
	for x := range 4 {
		if got := pixel(t, s.ActiveSprite(), x, 0); got != pickle.Red {
			t.Errorf("(%d,0) = %v after redo, want red", x, got)
		}
	}
}

func TestTool_ParseAndString(t *testing.T) {
	for _, tool := range AllTools() {
		got, err := ParseTool(strings.ToUpper(tool.String()))
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	if _, err := ParseTool("lasso"); err == nil {
		t.Error("ParseTool(lasso) succeeded")
	}
	if got := Tool(42).String(); got != "unknown" {
		t.Errorf("Tool(42).String() = %q", got)
	}
}

func TestCommandType_String(t *testing.T) {
	if got := (PasteFrame{}).Type().String(); got != "PasteFrame" {
		t.Errorf("PasteFrame name = %q", got)
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q", got)
	}
}
