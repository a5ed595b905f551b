package assetload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovk-raycaster-go/raygo/raycaster"
)

// LevelFile is the top-level structure for a .raylevel JSON level
// description: a tilemap, its wall textures, optional floor/ceiling
// textures, lighting/fog, and the billboards (sprites) scattered through
// it. Texture paths are resolved relative to the level file's own
// directory.
type LevelFile struct {
	Version        string          `json:"version"`
	Name           string          `json:"name"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Cells          []int           `json:"cells"`
	WallTextures   []string        `json:"wall_textures"`
	FloorTexture   string          `json:"floor_texture,omitempty"`
	CeilingTexture string          `json:"ceiling_texture,omitempty"`
	Light          *LightData      `json:"light,omitempty"`
	Fog            *FogData        `json:"fog,omitempty"`
	Billboards     []BillboardData `json:"billboards,omitempty"`
	ExtraLevels    []ExtraLevel    `json:"extra_levels,omitempty"`
}

// LightData stores a single directional light plus ambient term.
type LightData struct {
	Direction [3]float64 `json:"direction"`
	Color     [3]float64 `json:"color"`
	Ambient   [3]float64 `json:"ambient"`
}

// FogData stores a linear near/far fog.
type FogData struct {
	Near  float64    `json:"near"`
	Far   float64    `json:"far"`
	Color [3]float64 `json:"color"`
}

// BillboardData stores one sprite's placement and directional texture set.
type BillboardData struct {
	Position [2]float64 `json:"position"`
	Scale    [2]float64 `json:"scale"`
	VOffset  float64    `json:"v_offset"`
	Angle    float64    `json:"angle"`
	Textures []string   `json:"textures"`
}

// ExtraLevel stores one vertically-stacked tilemap slab, mirroring Level.
type ExtraLevel struct {
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Cells        []int    `json:"cells"`
	WallTextures []string `json:"wall_textures"`
}

// Level is a fully-resolved level: decoded textures, a populated tilemap,
// and the render-ready billboards, light, and fog from a LevelFile.
type Level struct {
	Tilemap        *raycaster.Tilemap
	WallTextures   []*raycaster.Texture
	FloorTexture   *raycaster.Texture
	CeilingTexture *raycaster.Texture
	Light          *raycaster.Light
	Fog            *raycaster.Fog
	Billboards     []*raycaster.Billboard
	ExtraLevels    []raycaster.Level
}

// LoadLevel reads and decodes a .raylevel JSON file at path, resolving
// every texture path relative to path's own directory.
func LoadLevel(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assetload: read %s: %w", path, err)
	}

	var lf LevelFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("assetload: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	return resolveLevel(&lf, dir)
}

func resolveLevel(lf *LevelFile, dir string) (*Level, error) {
	if len(lf.Cells) != lf.Width*lf.Height {
		return nil, fmt.Errorf("assetload: level %q has %d cells, want %d (%dx%d)",
			lf.Name, len(lf.Cells), lf.Width*lf.Height, lf.Width, lf.Height)
	}

	wallTextures, err := LoadTextureSet(resolvePaths(dir, lf.WallTextures))
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		Tilemap:      raycaster.NewTilemap(lf.Width, lf.Height, lf.Cells),
		WallTextures: wallTextures,
	}

	if lf.FloorTexture != "" {
		lvl.FloorTexture, err = LoadTexture(filepath.Join(dir, lf.FloorTexture))
		if err != nil {
			return nil, err
		}
	}
	if lf.CeilingTexture != "" {
		lvl.CeilingTexture, err = LoadTexture(filepath.Join(dir, lf.CeilingTexture))
		if err != nil {
			return nil, err
		}
	}
	if lf.Light != nil {
		lvl.Light = &raycaster.Light{
			Direction: vec3From(lf.Light.Direction),
			Color:     rgbFrom(lf.Light.Color),
			Ambient:   rgbFrom(lf.Light.Ambient),
		}
	}
	if lf.Fog != nil {
		lvl.Fog = &raycaster.Fog{
			Near:  lf.Fog.Near,
			Far:   lf.Fog.Far,
			Color: rgbFrom(lf.Fog.Color),
		}
	}

	for _, bd := range lf.Billboards {
		textures, err := LoadTextureSet(resolvePaths(dir, bd.Textures))
		if err != nil {
			return nil, err
		}
		lvl.Billboards = append(lvl.Billboards, &raycaster.Billboard{
			Position: vec2From(bd.Position),
			Scale:    vec2From(bd.Scale),
			VOffset:  bd.VOffset,
			Angle:    bd.Angle,
			Textures: textures,
		})
	}

	for _, el := range lf.ExtraLevels {
		if len(el.Cells) != el.Width*el.Height {
			return nil, fmt.Errorf("assetload: extra level has %d cells, want %d (%dx%d)",
				len(el.Cells), el.Width*el.Height, el.Width, el.Height)
		}
		textures, err := LoadTextureSet(resolvePaths(dir, el.WallTextures))
		if err != nil {
			return nil, err
		}
		lvl.ExtraLevels = append(lvl.ExtraLevels, raycaster.Level{
			Tilemap:      raycaster.NewTilemap(el.Width, el.Height, el.Cells),
			WallTextures: textures,
		})
	}

	return lvl, nil
}

func resolvePaths(dir string, names []string) []string {
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
	}
	return paths
}

func vec2From(a [2]float64) raycaster.Vector2 {
	return raycaster.Vector2{X: a[0], Y: a[1]}
}

func vec3From(a [3]float64) raycaster.Vector3 {
	return raycaster.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func rgbFrom(a [3]float64) raycaster.RGB {
	return raycaster.RGB{R: a[0], G: a[1], B: a[2]}
}
