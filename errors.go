package pickle

import "errors"

var (
	// ErrOutOfBounds is returned when a pixel is read outside the sprite.
	ErrOutOfBounds = errors.New("pickle: location out of bounds")

	// ErrSizeMismatch is returned when two sprites must share dimensions but do not.
	ErrSizeMismatch = errors.New("pickle: sprite size mismatch")

	// ErrInvalidSlice is returned when a slice rectangle is not fully inside the sprite.
	ErrInvalidSlice = errors.New("pickle: invalid slice rectangle")

	// ErrMalformedPayload is returned when a serialized sprite cannot be decoded.
	ErrMalformedPayload = errors.New("pickle: malformed sprite payload")

	// ErrFillTooLarge is returned when a flood fill visits more than
	// MaxFillIterations pixels.
	ErrFillTooLarge = errors.New("pickle: flood fill too large")

	// ErrIndexOutOfRange is returned for frame indices outside the animation.
	ErrIndexOutOfRange = errors.New("pickle: frame index out of range")

	// ErrNoPointPairs is returned when a transform is estimated from nothing.
	ErrNoPointPairs = errors.New("pickle: no point pairs")
)
