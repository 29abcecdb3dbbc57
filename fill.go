package pickle

import "fmt"

// MaxFillIterations bounds the number of pixels a single flood fill may
// process. It is a fixed safety cutoff, not a tunable.
const MaxFillIterations = 9999

// FloodFill paints the 4-connected region of pixels that share the color at
// start. A start outside the sprite is a no-op.
//
// The region is computed before anything is written: when the fill fails
// with ErrFillTooLarge the sprite is unchanged.
func FloodFill(s *Sprite, start Loc, c Color) error {
	region, err := FillRegion(s, start)
	if err != nil {
		return err
	}
	s.SetPixels(region, c)
	return nil
}

// FillRegion returns the 4-connected locations whose color equals the color
// at start, exactly channel for channel, in visiting order. It returns nil
// when start lies outside the sprite.
func FillRegion(s *Sprite, start Loc) ([]Loc, error) {
	if !s.Contains(start) {
		return nil, nil
	}
	match, _ := s.Pixel(start)

	eligible := func(loc Loc) bool {
		if !s.Contains(loc) {
			return false
		}
		c, _ := s.Pixel(loc)
		return c == match
	}

	var (
		region  []Loc
		stack   = []Loc{start}
		visited = map[Loc]struct{}{start: {}}
	)
	for len(stack) > 0 {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		region = append(region, loc)
		if len(region) > MaxFillIterations {
			return nil, fmt.Errorf("%w: more than %d pixels from %v",
				ErrFillTooLarge, MaxFillIterations, start)
		}

		for _, n := range [4]Loc{
			{X: loc.X + 1, Y: loc.Y},
			{X: loc.X - 1, Y: loc.Y},
			{X: loc.X, Y: loc.Y + 1},
			{X: loc.X, Y: loc.Y - 1},
		} {
			if _, seen := visited[n]; seen || !eligible(n) {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}

	Logger().Debug("fill region", "start", start, "pixels", len(region))
	return region, nil
}
