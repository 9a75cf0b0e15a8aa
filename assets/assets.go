// Package assets loads textures and sounds from the resources directory.
//
// All loaders return errors instead of panicking: a missing or undecodable
// asset must surface through the scene constructor to the host, which
// terminates with a non-zero status.
package assets

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage reads and decodes a texture from the given path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// LoadImages loads several textures, stopping at the first failure.
func LoadImages(paths ...string) ([]*ebiten.Image, error) {
	imgs := make([]*ebiten.Image, 0, len(paths))
	for _, path := range paths {
		img, err := LoadImage(path)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// Frames slices a horizontal sprite strip into count sub-images of
// frameWidth x frameHeight, left to right.
func Frames(sheet *ebiten.Image, frameWidth, frameHeight, count int) []*ebiten.Image {
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		r := image.Rect(i*frameWidth, 0, (i+1)*frameWidth, frameHeight)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}
