package raycaster

import "math"

// Level is one vertically-stacked tilemap slab for RenderLevels: a second
// (third, ...) tilemap drawn above the ground-floor one, the way
// ovk-raycaster-go and buybuyname-raycaster-go stack worldMap/midMap/upMap.
type Level struct {
	Tilemap      *Tilemap
	WallTextures []*Texture
}

// RenderLevels renders p as the ground floor (exactly as Render does, with
// floor/ceiling/billboards/z-buffer all behaving normally), then draws each
// of extraLevels as an additional wall slab stacked directly above it: for
// stacked level i (1-indexed), its column height is computed from its own
// tilemap's DDA hit but its vertical draw window is shifted up by i line
// heights, mirroring the teacher's drawStart -= lineHeight*levelNum trick.
//
// Stacked levels do not participate in the z-buffer or shading fog/light
// distance model beyond what wall columns already do; they are a thin
// additive wrapper built entirely out of RayTilemapIntersection and do not
// change Render's own contract.
func (r *Raycaster) RenderLevels(p RenderParams, extraLevels []Level) {
	r.Render(p)

	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	hf := float64(h)

	for levelIdx, lvl := range extraLevels {
		stack := levelIdx + 1
		for x := 0; x < w; x++ {
			rayDir := cam.rayDirForColumn(x, w)
			hit := RayTilemapIntersection(Ray2{Start: cam.Position, Dir: rayDir}, lvl.Tilemap)
			perp := hit.PerpendicularDistance

			lineHeight := math.Floor(hf / perp)
			start := int(math.Floor((hf-lineHeight)/2)) - stack*int(lineHeight)
			end := start + int(lineHeight)

			clippedStart := clampInt(start, 0, h)
			clippedEnd := clampInt(end, 0, h)
			if clippedStart >= clippedEnd {
				continue
			}

			var wallPos float64
			if hit.Side == 0 {
				wallPos = hit.HitPosition.Y
			} else {
				wallPos = hit.HitPosition.X
			}
			u := wallPos - math.Floor(wallPos)

			cellCode := lvl.Tilemap.At(hit.MapPosition.X, hit.MapPosition.Y)
			tex := lvl.WallTextures[TextureIndex(cellCode)]

			texX := int(u * float64(tex.Width))
			flip := (hit.Side == 0 && rayDir.X < 0) || (hit.Side == 1 && rayDir.Y > 0)
			if flip {
				texX = tex.Width - texX - 1
			}
			texX = clampInt(texX, 0, tex.Width-1)
			normal := hit.Normal.To3(0)

			for y := clippedStart; y < clippedEnd; y++ {
				vFrac := (float64(y) - float64(start)) / lineHeight
				texY := clampInt(int(vFrac*float64(tex.Height)), 0, tex.Height-1)
				tr, tg, tb, ta := tex.At(texX, texY)
				if p.Light != nil || p.Fog != nil {
					tr, tg, tb = shade(tr, tg, tb, normal, perp, p.Light, p.Fog)
				}
				r.fb.Set(x, y, tr, tg, tb, ta)
			}
		}
	}
}
