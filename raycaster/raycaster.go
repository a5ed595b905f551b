package raycaster

import (
	"math"
	"sort"
)

// ClearTarget selects which buffer(s) Clear resets.
type ClearTarget int

const (
	ClearColor ClearTarget = 1 << iota
	ClearDepth
)

// RenderParams bundles everything a single Render call needs. Tilemap and
// WallTextures must both be present (non-nil) for walls to draw;
// FloorTexture and CeilingTexture are independently optional; Light and Fog
// are independently optional; Camera is required.
type RenderParams struct {
	Tilemap        *Tilemap
	WallTextures   []*Texture
	Billboards     []*Billboard
	FloorTexture   *Texture
	CeilingTexture *Texture
	Light          *Light
	Fog            *Fog
	Camera         *Camera
}

// Raycaster orchestrates a single frame's render into a borrowed
// FrameBuffer: clear, floor/ceiling scanlines, wall columns (which also
// populate the z-buffer), then back-to-front billboards. It owns the
// z-buffer for its lifetime; the frame buffer is a mutable view borrowed
// from the caller and must outlive the Raycaster.
type Raycaster struct {
	fb      *FrameBuffer
	zBuffer []float64
}

// NewRaycaster binds a Raycaster to fb for its lifetime. fb.Data must be
// non-nil: the contract is that a caller unable to supply a writable pixel
// buffer simply does not construct a Raycaster.
func NewRaycaster(fb *FrameBuffer) *Raycaster {
	if fb.Data == nil {
		panic("raycaster: frame buffer has no backing pixel data")
	}
	return &Raycaster{fb: fb, zBuffer: make([]float64, fb.Width)}
}

// Clear resets the given targets. No arguments means both color and depth.
func (r *Raycaster) Clear(targets ...ClearTarget) {
	if len(targets) == 0 {
		targets = []ClearTarget{ClearColor, ClearDepth}
	}
	var mask ClearTarget
	for _, t := range targets {
		mask |= t
	}
	if mask&ClearColor != 0 {
		for i := range r.fb.Data {
			r.fb.Data[i] = 0
		}
	}
	if mask&ClearDepth != 0 {
		for i := range r.zBuffer {
			r.zBuffer[i] = math.Inf(1)
		}
	}
}

// Render draws one frame, in the fixed order: reset buffers, floor/ceiling,
// walls, billboards.
func (r *Raycaster) Render(p RenderParams) {
	r.Clear()

	if p.FloorTexture != nil || p.CeilingTexture != nil {
		r.renderFloorCeiling(p)
	}
	if p.Tilemap != nil && p.WallTextures != nil {
		r.renderWalls(p)
	}
	if len(p.Billboards) > 0 {
		r.renderBillboards(p)
	}
}

func (r *Raycaster) renderWalls(p RenderParams) {
	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	hf := float64(h)

	for x := 0; x < w; x++ {
		rayDir := cam.rayDirForColumn(x, w)
		hit := RayTilemapIntersection(Ray2{Start: cam.Position, Dir: rayDir}, p.Tilemap)
		perp := hit.PerpendicularDistance
		r.zBuffer[x] = perp

		lineHeight := math.Floor(hf / perp)
		start := int(math.Floor((hf - lineHeight) / 2))
		end := int(math.Floor((hf + lineHeight) / 2))

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

		cellCode := p.Tilemap.At(hit.MapPosition.X, hit.MapPosition.Y)
		tex := p.WallTextures[TextureIndex(cellCode)]

		texX := int(u * float64(tex.Width))
		flip := (hit.Side == 0 && rayDir.X < 0) || (hit.Side == 1 && rayDir.Y > 0)
		if flip {
			texX = tex.Width - texX - 1
		}
		texX = clampInt(texX, 0, tex.Width-1)

		normal := hit.Normal.To3(0)
		useShading := p.Light != nil || p.Fog != nil

		for y := clippedStart; y < clippedEnd; y++ {
			vFrac := (float64(y) - (hf-lineHeight)/2) / lineHeight
			texY := clampInt(int(vFrac*float64(tex.Height)), 0, tex.Height-1)
			tr, tg, tb, ta := tex.At(texX, texY)

			if useShading {
				tr, tg, tb = shade(tr, tg, tb, normal, perp, p.Light, p.Fog)
			}
			r.fb.Set(x, y, tr, tg, tb, ta)
		}
	}
}

func (r *Raycaster) renderFloorCeiling(p RenderParams) {
	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	dir, plane := cam.Direction(), cam.Plane()
	hf, wf := float64(h), float64(w)

	rayDir0 := dir.Sub(plane)
	rayDir1 := dir.Add(plane)

	for y := 0; y < h/2; y++ {
		rowDistance := (hf / 2) / math.Abs(float64(y)-hf/2)

		floorPos := cam.Position.Add(rayDir0.Scale(rowDistance))
		step := rayDir1.Sub(rayDir0).Scale(rowDistance / wf)

		pos := floorPos
		for x := 0; x < w; x++ {
			u := fracWrap(pos.X)
			v := fracWrap(pos.Y)

			if p.FloorTexture != nil {
				r.sampleFloorCeiling(x, h-1-y, u, v, p.FloorTexture, Vector3{X: 0, Y: 0, Z: 1}, rowDistance, p)
			}
			if p.CeilingTexture != nil {
				r.sampleFloorCeiling(x, y, u, v, p.CeilingTexture, Vector3{X: 0, Y: 0, Z: -1}, rowDistance, p)
			}
			pos = pos.Add(step)
		}
	}
}

func (r *Raycaster) sampleFloorCeiling(x, y int, u, v float64, tex *Texture, normal Vector3, dist float64, p RenderParams) {
	texX := clampInt(int(u*float64(tex.Width)), 0, tex.Width-1)
	texY := clampInt(int(v*float64(tex.Height)), 0, tex.Height-1)
	tr, tg, tb, ta := tex.At(texX, texY)
	if p.Light != nil || p.Fog != nil {
		tr, tg, tb = shade(tr, tg, tb, normal, dist, p.Light, p.Fog)
	}
	r.fb.Set(x, y, tr, tg, tb, ta)
}

func fracWrap(v float64) float64 {
	f := v - float64(int(v))
	if f < 0 {
		f += 1
	}
	return f
}

func (r *Raycaster) renderBillboards(p RenderParams) {
	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	dir, plane := cam.Direction(), cam.Plane()
	wf, hf := float64(w), float64(h)

	order := make([]int, len(p.Billboards))
	sqDist := make([]float64, len(p.Billboards))
	for i, bb := range p.Billboards {
		order[i] = i
		sqDist[i] = bb.Position.Sub(cam.Position).SqLength()
	}
	sort.Slice(order, func(i, j int) bool { return sqDist[order[i]] > sqDist[order[j]] })

	invDet := 1 / cam.basisDeterminant()

	for _, idx := range order {
		bb := p.Billboards[idx]
		delta := bb.Position.Sub(cam.Position)

		bxc := invDet * (dir.Y*delta.X - dir.X*delta.Y)
		byc := invDet * (-plane.Y*delta.X + plane.X*delta.Y)
		if byc <= 0 {
			continue
		}

		spriteHeight := math.Abs(math.Floor(hf/byc)) * bb.Scale.Y
		spriteWidth := math.Abs(math.Floor(hf/byc)) * bb.Scale.X

		drawOffsetY := int(math.Floor(-bb.VOffset / byc * hf))
		bxs := int(math.Floor(wf / 2 * (1 + bxc/byc)))

		halfW := int(math.Floor(spriteWidth / 2))
		width := int(math.Floor(spriteWidth))
		height := int(math.Floor(spriteHeight))
		if width <= 0 || height <= 0 {
			continue
		}

		drawStartY := int(math.Floor(-spriteHeight/2)) + h/2 + drawOffsetY
		drawEndY := drawStartY + height
		drawStartX := bxs - halfW
		drawEndX := drawStartX + width

		clipStartX := clampInt(drawStartX, 0, w)
		clipEndX := clampInt(drawEndX, 0, w)
		clipStartY := clampInt(drawStartY, 0, h)
		clipEndY := clampInt(drawEndY, 0, h)
		if clipStartX >= clipEndX || clipStartY >= clipEndY {
			continue
		}

		tex := bb.selectTexture(cam.Position)
		normal := delta.Normalized().To3(0)

		for x := clipStartX; x < clipEndX; x++ {
			if byc >= r.zBuffer[x] {
				continue
			}
			u := float64(x-(bxs-halfW)) / float64(width)
			texX := clampInt(int(u*float64(tex.Width)), 0, tex.Width-1)

			for y := clipStartY; y < clipEndY; y++ {
				v := float64(y-drawOffsetY-(h-height)/2) / float64(height)
				texY := clampInt(int(v*float64(tex.Height)), 0, tex.Height-1)

				tr, tg, tb, ta := tex.At(texX, texY)
				if ta == 0 {
					continue
				}
				if p.Light != nil || p.Fog != nil {
					tr, tg, tb = shade(tr, tg, tb, normal, byc, p.Light, p.Fog)
				}
				r.fb.Set(x, y, tr, tg, tb, 0xFF)
			}
		}
	}
}
