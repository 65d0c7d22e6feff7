// Package assets supplies the decoded images and text face the game draws
// with.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/procedural-td/internal/title"
)

// Provider looks sprites up by name, preferring PNGs in fsys and falling
// back to the built-in drawings.
type Provider struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// New returns a provider reading overrides from fsys, which may be nil.
func New(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys, cache: make(map[string]*ebiten.Image)}
}

// Decode returns the image for name without uploading it to the GPU.
func (p *Provider) Decode(name string) (image.Image, error) {
	if p.fsys != nil {
		f, err := p.fsys.Open(name + ".png")
		switch {
		case err == nil:
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				return nil, fmt.Errorf("assets: decode %s: %w", name, err)
			}
			return img, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("assets: open %s: %w", name, err)
		}
	}
	if img := builtin(name); img != nil {
		return img, nil
	}
	return nil, fmt.Errorf("assets: unknown sprite %q", name)
}

// Image returns the sprite called name.
func (p *Provider) Image(name string) (*ebiten.Image, error) {
	if img, ok := p.cache[name]; ok {
		return img, nil
	}
	src, err := p.Decode(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	p.cache[name] = img
	return img, nil
}

// TitleSprites loads every image the title screen draws.
func (p *Provider) TitleSprites() (title.Sprites, error) {
	var sp title.Sprites
	var err error
	if sp.Title, err = p.Image(NameTitle); err != nil {
		return sp, err
	}
	if sp.SeedBox, err = p.Image(NameSeedBox); err != nil {
		return sp, err
	}
	for i, name := range NamesStart {
		if sp.Start[i], err = p.Image(name); err != nil {
			return sp, err
		}
	}
	for _, name := range NamesLoading {
		img, err := p.Image(name)
		if err != nil {
			return sp, err
		}
		sp.Loading = append(sp.Loading, img)
	}
	return sp, nil
}

// TitleSizes returns the title sprite sizes without creating GPU images,
// for laying the screen out headlessly.
func (p *Provider) TitleSizes() (title.SpriteSizes, error) {
	var s title.SpriteSizes
	size := func(name string) (image.Point, error) {
		img, err := p.Decode(name)
		if err != nil {
			return image.Point{}, err
		}
		return img.Bounds().Size(), nil
	}
	var err error
	if s.Title, err = size(NameTitle); err != nil {
		return s, err
	}
	if s.SeedBox, err = size(NameSeedBox); err != nil {
		return s, err
	}
	if s.Start, err = size(NamesStart[0]); err != nil {
		return s, err
	}
	if s.Loading, err = size(NamesLoading[len(NamesLoading)-1]); err != nil {
		return s, err
	}
	return s, nil
}
