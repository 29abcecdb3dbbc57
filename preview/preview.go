// Package preview turns sprites into standard library images for renderers:
// full-size copies, nearest-neighbour thumbnails for timelines, and
// horizontal sprite sheets for export.
//
// Scaling always uses nearest-neighbour sampling so pixel edges stay hard.
package preview

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/davidisaaclee/pickle"
)

// Image copies s into a new *image.NRGBA. The sprite buffer already uses the
// NRGBA byte layout, so this is a single copy.
func Image(s *pickle.Sprite) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	copy(img.Pix, s.Data())
	return img
}

// FromImage creates a sprite holding the pixels of img.
func FromImage(img image.Image) *pickle.Sprite {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	s, err := pickle.SpriteFromPixels(b.Dx(), b.Dy(), dst.Pix)
	if err != nil {
		// dst is freshly allocated with exactly Dx*Dy*4 bytes.
		panic(err)
	}
	return s
}

// Thumbnail scales s to width x height.
func Thumbnail(s *pickle.Sprite, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	src := Image(s)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Sheet lays every frame of a out left to right, each magnified by scale
// (values below 1 are treated as 1).
func Sheet(a *pickle.Animation, scale int) *image.NRGBA {
	scale = max(scale, 1)
	size := a.Size()
	fw, fh := size.X*scale, size.Y*scale

	sheet := image.NewNRGBA(image.Rect(0, 0, fw*a.Len(), fh))
	for i, f := range a.Frames {
		dr := image.Rect(i*fw, 0, (i+1)*fw, fh)
		src := Image(f)
		draw.NearestNeighbor.Scale(sheet, dr, src, src.Bounds(), draw.Src, nil)
	}
	return sheet
}
