package editor

import (
	"fmt"
	"strings"

	"github.com/davidisaaclee/pickle"
)

// Tool identifies the active editing tool.
type Tool uint8

const (
	ToolPen Tool = iota
	ToolEraser
	ToolBucket
	ToolEyedropper
	ToolMove
)

var toolNames = [...]string{
	ToolPen:        "pen",
	ToolEraser:     "eraser",
	ToolBucket:     "bucket",
	ToolEyedropper: "eyedropper",
	ToolMove:       "move",
}

// String returns the lower-case tool name.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

// AllTools returns every tool in toolbar order.
func AllTools() []Tool {
	return []Tool{ToolPen, ToolEraser, ToolBucket, ToolEyedropper, ToolMove}
}

// ParseTool returns the tool with the given name, ignoring case.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(n, name) {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("editor: unknown tool %q", name)
}

// Playback is the playhead of an animation.
type Playback struct {
	CurrentFrame int
	IsPlaying    bool
}

// HistoryItem is one undoable snapshot.
type HistoryItem struct {
	Animation *pickle.Animation
	Playback  Playback
}

// State is everything an editor session owns. It is passed to
// Engine.Dispatch by pointer and mutated in place.
type State struct {
	History        History
	ActiveTool     Tool
	ActiveColor    pickle.Color
	BroadcastEdits bool
}

// NewState returns the initial editor state: one blank width x height
// frame, the pen tool and opaque red.
func NewState(width, height int) *State {
	return &State{
		History: History{
			Present: HistoryItem{
				Animation: pickle.NewAnimation(pickle.NewSprite(width, height)),
			},
		},
		ActiveTool:  ToolPen,
		ActiveColor: pickle.Red,
	}
}

// Animation returns the animation being edited.
func (s *State) Animation() *pickle.Animation {
	return s.History.Present.Animation
}

// Playback returns the playhead of the present snapshot.
func (s *State) Playback() Playback {
	return s.History.Present.Playback
}

// CurrentFrame returns the index of the frame under the playhead.
func (s *State) CurrentFrame() int {
	return s.History.Present.Playback.CurrentFrame
}

// ActiveSprite returns the frame under the playhead.
func (s *State) ActiveSprite() *pickle.Sprite {
	return s.Animation().Frame(s.CurrentFrame())
}

// editTargets returns the sprites an edit applies to: every frame in
// broadcast mode, otherwise the active one.
func (s *State) editTargets() []*pickle.Sprite {
	if s.BroadcastEdits {
		return s.Animation().Frames
	}
	return []*pickle.Sprite{s.ActiveSprite()}
}

// setCurrentFrame stores frame clamped into [0, frames).
func (s *State) setCurrentFrame(frame int) {
	n := s.Animation().Len()
	s.History.Present.Playback.CurrentFrame = min(max(frame, 0), n-1)
}
