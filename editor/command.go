package editor

import "github.com/davidisaaclee/pickle"

// CommandType identifies the kind of a command.
type CommandType uint8

const (
	// History commands
	CmdPushHistory CommandType = iota // Record an undo step
	CmdUndo                           // Step back
	CmdRedo                           // Step forward

	// Pixel commands
	CmdPaintPixels     // Write a color at locations
	CmdErasePixels     // Clear locations to transparent
	CmdPaintBucket     // Flood fill from a location
	CmdTranslateSprite // Wrap-shift the sprite
	CmdPickColor       // Sample a color

	// Editor settings
	CmdSetActiveTool
	CmdSetActiveColor
	CmdSetBroadcastEdits

	// Playback
	CmdMovePlayhead
	CmdAdvancePlayhead
	CmdSetPlaying

	// Frames
	CmdAddBlankFrame
	CmdDuplicateFrame
	CmdDeleteFrame
	CmdCopyFrame
	CmdCutFrame
	CmdPasteFrame
)

var commandTypeNames = [...]string{
	CmdPushHistory:       "PushHistory",
	CmdUndo:              "Undo",
	CmdRedo:              "Redo",
	CmdPaintPixels:       "PaintPixels",
	CmdErasePixels:       "ErasePixels",
	CmdPaintBucket:       "PaintBucket",
	CmdTranslateSprite:   "TranslateSprite",
	CmdPickColor:         "PickColor",
	CmdSetActiveTool:     "SetActiveTool",
	CmdSetActiveColor:    "SetActiveColor",
	CmdSetBroadcastEdits: "SetBroadcastEdits",
	CmdMovePlayhead:      "MovePlayhead",
	CmdAdvancePlayhead:   "AdvancePlayhead",
	CmdSetPlaying:        "SetPlaying",
	CmdAddBlankFrame:     "AddBlankFrame",
	CmdDuplicateFrame:    "DuplicateFrame",
	CmdDeleteFrame:       "DeleteFrame",
	CmdCopyFrame:         "CopyFrame",
	CmdCutFrame:          "CutFrame",
	CmdPasteFrame:        "PasteFrame",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every command accepted by Engine.Dispatch.
type Command interface {
	Type() CommandType
}

// PushHistory records the present snapshot as an undo step. Dispatch it
// once before the first mutating command of a gesture.
type PushHistory struct{}

// Undo steps back one snapshot.
type Undo struct{}

// Redo steps forward one snapshot.
type Redo struct{}

// PaintPixels writes Color at every location. Out-of-bounds locations are
// skipped.
type PaintPixels struct {
	Locations []pickle.Loc
	Color     pickle.Color
}

// ErasePixels clears every location to transparent.
type ErasePixels struct {
	Locations []pickle.Loc
}

// PaintBucket flood fills from Location with Color.
type PaintBucket struct {
	Location pickle.Loc
	Color    pickle.Color
}

// TranslateSprite wrap-shifts the sprite by Offset pixels.
type TranslateSprite struct {
	Offset pickle.Loc
}

// PickColor makes the color at Location the active color.
type PickColor struct {
	Location pickle.Loc
}

// SetActiveTool selects Tool.
type SetActiveTool struct {
	Tool Tool
}

// SetActiveColor selects Color.
type SetActiveColor struct {
	Color pickle.Color
}

// SetBroadcastEdits toggles applying pixel edits to every frame.
type SetBroadcastEdits struct {
	Enabled bool
}

// MovePlayhead selects Frame, clamped into the animation.
type MovePlayhead struct {
	Frame int
}

// AdvancePlayhead steps the playhead forward one frame, wrapping to the
// first frame after the last.
type AdvancePlayhead struct{}

// SetPlaying starts or stops playback.
type SetPlaying struct {
	Playing bool
}

// AddBlankFrame appends an empty frame and moves the playhead to it.
type AddBlankFrame struct{}

// DuplicateFrame copies the current frame right after itself and moves the
// playhead to the copy.
type DuplicateFrame struct{}

// DeleteFrame removes the current frame unless it is the only one.
type DeleteFrame struct{}

// CopyFrame writes the current frame to the clipboard store.
type CopyFrame struct{}

// CutFrame copies the current frame, then deletes it.
type CutFrame struct{}

// PasteFrame inserts a new frame after the current one holding the
// clipboard contents. It is a no-op when the clipboard is empty.
type PasteFrame struct{}

func (PushHistory) Type() CommandType       { return CmdPushHistory }
func (Undo) Type() CommandType              { return CmdUndo }
func (Redo) Type() CommandType              { return CmdRedo }
func (PaintPixels) Type() CommandType       { return CmdPaintPixels }
func (ErasePixels) Type() CommandType       { return CmdErasePixels }
func (PaintBucket) Type() CommandType       { return CmdPaintBucket }
func (TranslateSprite) Type() CommandType   { return CmdTranslateSprite }
func (PickColor) Type() CommandType         { return CmdPickColor }
func (SetActiveTool) Type() CommandType     { return CmdSetActiveTool }
func (SetActiveColor) Type() CommandType    { return CmdSetActiveColor }
func (SetBroadcastEdits) Type() CommandType { return CmdSetBroadcastEdits }
func (MovePlayhead) Type() CommandType      { return CmdMovePlayhead }
func (AdvancePlayhead) Type() CommandType   { return CmdAdvancePlayhead }
func (SetPlaying) Type() CommandType        { return CmdSetPlaying }
func (AddBlankFrame) Type() CommandType     { return CmdAddBlankFrame }
func (DuplicateFrame) Type() CommandType    { return CmdDuplicateFrame }
func (DeleteFrame) Type() CommandType       { return CmdDeleteFrame }
func (CopyFrame) Type() CommandType         { return CmdCopyFrame }
func (CutFrame) Type() CommandType          { return CmdCutFrame }
func (PasteFrame) Type() CommandType        { return CmdPasteFrame }
