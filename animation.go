package pickle

import "fmt"

// Animation is an ordered list of frames played back in index order.
// An Animation built with NewAnimation always holds at least one frame.
type Animation struct {
	Frames []*Sprite
}

// NewAnimation creates an animation from frames. With no frames it starts
// with a single blank DefaultSpriteSize x DefaultSpriteSize sprite.
func NewAnimation(frames ...*Sprite) *Animation {
	if len(frames) == 0 {
		frames = []*Sprite{NewSprite(DefaultSpriteSize, DefaultSpriteSize)}
	}
	return &Animation{Frames: frames}
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.Frames)
}

// Frame returns the frame at index i, or nil when i is out of range.
func (a *Animation) Frame(i int) *Sprite {
	if i < 0 || i >= len(a.Frames) {
		return nil
	}
	return a.Frames[i]
}

// Size returns the dimensions of frame 0, or the default size when empty.
func (a *Animation) Size() Loc {
	if len(a.Frames) == 0 {
		return Loc{X: DefaultSpriteSize, Y: DefaultSpriteSize}
	}
	return a.Frames[0].Size()
}

func (a *Animation) newFrame() *Sprite {
	size := a.Size()
	return NewSprite(size.X, size.Y)
}

// AppendEmptyFrame adds a blank frame at the end and returns it.
func (a *Animation) AppendEmptyFrame() *Sprite {
	s := a.newFrame()
	a.Frames = append(a.Frames, s)
	return s
}

// InsertEmptyFrame inserts a blank frame so that it ends up at index.
// index may equal Len to append.
func (a *Animation) InsertEmptyFrame(index int) (*Sprite, error) {
	if index < 0 || index > len(a.Frames) {
		return nil, fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, index, len(a.Frames))
	}
	s := a.newFrame()
	a.insert(index, s)
	return s, nil
}

// DuplicateFrame inserts a deep copy of frame index right after it.
func (a *Animation) DuplicateFrame(index int) (*Sprite, error) {
	if index < 0 || index >= len(a.Frames) {
		return nil, fmt.Errorf("%w: duplicate %d of %d", ErrIndexOutOfRange, index, len(a.Frames))
	}
	s := a.Frames[index].Clone()
	s.BumpVersion()
	a.insert(index+1, s)
	return s, nil
}

// DeleteFrame removes frame index. It refuses, returning false, when index
// is out of range or the frame is the last one left.
func (a *Animation) DeleteFrame(index int) bool {
	if len(a.Frames) <= 1 || index < 0 || index >= len(a.Frames) {
		return false
	}
	a.Frames = append(a.Frames[:index], a.Frames[index+1:]...)
	return true
}

func (a *Animation) insert(index int, s *Sprite) {
	a.Frames = append(a.Frames, nil)
	copy(a.Frames[index+1:], a.Frames[index:])
	a.Frames[index] = s
}

// Clone returns a deep copy of the animation and all of its frames.
func (a *Animation) Clone() *Animation {
	frames := make([]*Sprite, len(a.Frames))
	for i, f := range a.Frames {
		frames[i] = f.Clone()
	}
	return &Animation{Frames: frames}
}
