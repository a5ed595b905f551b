// Package assetload loads textures and level descriptions from disk into
// the plain data shapes raycaster operates on. Nothing here is imported by
// raycaster itself: the core package stays free of file I/O and image
// format dependencies, in keeping with its GIGO, caller-supplies-everything
// contract.
package assetload

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ovk-raycaster-go/raygo/raycaster"
)

// LoadTexture decodes a PNG file into a raycaster.Texture. Any image.Image
// is accepted; pixels are converted to 8-bit-per-channel RGBA via the
// standard image package's own color conversion.
func LoadTexture(path string) (*raycaster.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assetload: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assetload: decode %s: %w", path, err)
	}

	return fromImage(img), nil
}

func fromImage(img image.Image) *raycaster.Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := raycaster.NewTexture(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// image.Image.RGBA returns 16-bit-per-channel, alpha-premultiplied.
			tex.Set(x, y, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return tex
}

// LoadTextureSet loads one PNG per path, in order, for a billboard or wall
// slot that wants several directional frames.
func LoadTextureSet(paths []string) ([]*raycaster.Texture, error) {
	textures := make([]*raycaster.Texture, len(paths))
	for i, p := range paths {
		tex, err := LoadTexture(p)
		if err != nil {
			return nil, err
		}
		textures[i] = tex
	}
	return textures, nil
}
