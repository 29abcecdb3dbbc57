package pickle

import (
	"bytes"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// DefaultSpriteSize is the width and height of a sprite created without an
// explicit size.
const DefaultSpriteSize = 16

// newVersion produces version tokens. Tokens are unique per mutation, not
// derived from content.
var newVersion = uuid.NewString

// Sprite is a fixed-size RGBA8 raster: 4 bytes per pixel in R, G, B, A
// order, rows top to bottom.
//
// Every successful mutation assigns a fresh version token; renderers compare
// tokens to decide whether to repaint.
type Sprite struct {
	width   int
	height  int
	data    []uint8
	version string
}

// NewSprite creates a fully transparent sprite. Negative dimensions are
// treated as zero.
func NewSprite(width, height int) *Sprite {
	width = max(width, 0)
	height = max(height, 0)
	return &Sprite{
		width:   width,
		height:  height,
		data:    make([]uint8, width*height*4),
		version: newVersion(),
	}
}

// bufferLen returns width*height*4, or false when either dimension is
// outside [0, MaxUint32] or the product does not fit in an int.
func bufferLen(width, height int) (int, bool) {
	if width < 0 || height < 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return 0, false
	}
	if width != 0 && height > math.MaxInt/4/width {
		return 0, false
	}
	return width * height * 4, true
}

// SpriteFromPixels creates a sprite holding a copy of pix, which must be
// width*height*4 bytes of RGBA data.
func SpriteFromPixels(width, height int, pix []uint8) (*Sprite, error) {
	if n, ok := bufferLen(width, height); !ok || len(pix) != n {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(pix), width, height)
	}
	data := make([]uint8, len(pix))
	copy(data, pix)
	return &Sprite{width: width, height: height, data: data, version: newVersion()}, nil
}

// Width returns the width of the sprite in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the height of the sprite in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Size returns the sprite dimensions as a Loc.
func (s *Sprite) Size() Loc {
	return Loc{X: s.width, Y: s.height}
}

// Data returns the raw pixel buffer. Callers must treat it as read-only;
// writes through it bypass version tracking.
func (s *Sprite) Data() []uint8 {
	return s.data
}

// Version returns the current version token.
func (s *Sprite) Version() string {
	return s.version
}

// BumpVersion assigns a fresh version token.
func (s *Sprite) BumpVersion() {
	s.version = newVersion()
}

// Contains reports whether loc addresses a pixel of s.
func (s *Sprite) Contains(loc Loc) bool {
	return loc.X >= 0 && loc.X < s.width && loc.Y >= 0 && loc.Y < s.height
}

func (s *Sprite) offset(loc Loc) int {
	return (loc.Y*s.width + loc.X) * 4
}

// Pixel returns the color at loc.
func (s *Sprite) Pixel(loc Loc) (Color, error) {
	if !s.Contains(loc) {
		return Color{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, loc, s.width, s.height)
	}
	i := s.offset(loc)
	return Color{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}, nil
}

// SetPixels writes c at every location. Locations outside the sprite are
// skipped individually; the rest of the batch is still written. The version
// is bumped once if any pixel was written.
func (s *Sprite) SetPixels(locs []Loc, c Color) {
	written := false
	for _, loc := range locs {
		if !s.Contains(loc) {
			continue
		}
		i := s.offset(loc)
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
		written = true
	}
	if written {
		s.BumpVersion()
	}
}

// Clear fills the entire sprite with c.
func (s *Sprite) Clear(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
	s.BumpVersion()
}

// Slice copies the w x h rectangle whose top-left corner is offset. The
// rectangle must lie entirely inside the sprite.
func (s *Sprite) Slice(offset Loc, w, h int) ([]uint8, error) {
	if offset.X < 0 || offset.Y < 0 || w < 0 || h < 0 ||
		offset.X+w > s.width || offset.Y+h > s.height {
		return nil, fmt.Errorf("%w: %dx%d at %v in %dx%d",
			ErrInvalidSlice, w, h, offset, s.width, s.height)
	}

	out := make([]uint8, w*h*4)
	if w == s.width {
		copy(out, s.data[offset.Y*s.width*4:])
		return out, nil
	}
	row := w * 4
	for y := 0; y < h; y++ {
		src := s.offset(Loc{X: offset.X, Y: offset.Y + y})
		copy(out[y*row:(y+1)*row], s.data[src:src+row])
	}
	return out, nil
}

// Translate shifts the sprite by offset, wrapping around. The buffer is
// treated as one circular run of pixels: the pixel at flat index i moves to
// (i + offset.Y*width + offset.X) mod (width*height), so content leaving the
// end of a row re-enters at the start of the next.
func (s *Sprite) Translate(offset Loc) {
	n := s.width * s.height
	if n == 0 {
		return
	}
	shift := (offset.Y*s.width + offset.X) % n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		return
	}

	k := shift * 4
	rotated := make([]uint8, len(s.data))
	copy(rotated[k:], s.data[:len(s.data)-k])
	copy(rotated[:k], s.data[len(s.data)-k:])
	s.data = rotated
	s.BumpVersion()
}

// Overlay paints every pixel of src with non-zero alpha onto s as a fully
// opaque pixel. Pixels of src with zero alpha leave s untouched.
func (s *Sprite) Overlay(src *Sprite) error {
	if src.width != s.width || src.height != s.height {
		return fmt.Errorf("%w: overlay %dx%d onto %dx%d",
			ErrSizeMismatch, src.width, src.height, s.width, s.height)
	}
	for i := 0; i < len(src.data); i += 4 {
		if src.data[i+3] == 0 {
			continue
		}
		s.data[i+0] = src.data[i+0]
		s.data[i+1] = src.data[i+1]
		s.data[i+2] = src.data[i+2]
		s.data[i+3] = 255
	}
	s.BumpVersion()
	return nil
}

// Clone returns a deep copy of s, version token included.
func (s *Sprite) Clone() *Sprite {
	data := make([]uint8, len(s.data))
	copy(data, s.data)
	return &Sprite{
		width:   s.width,
		height:  s.height,
		data:    data,
		version: s.version,
	}
}

// Equal reports whether s and o have the same dimensions and pixels.
// Version tokens are ignored.
func (s *Sprite) Equal(o *Sprite) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.width == o.width && s.height == o.height && bytes.Equal(s.data, o.data)
}
