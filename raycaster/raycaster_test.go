package raycaster

import (
	"math"
	"testing"
)

func checkerTexture(size int) *Texture {
	tex := NewTexture(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				tex.Set(x, y, 200, 200, 200, 255)
			} else {
				tex.Set(x, y, 50, 50, 50, 255)
			}
		}
	}
	return tex
}

func TestNewRaycasterPanicsOnNilBackingData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a frame buffer with nil Data")
		}
	}()
	NewRaycaster(&FrameBuffer{Width: 4, Height: 4})
}

func TestClearResetsColorAndDepth(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	r := NewRaycaster(fb)
	for i := range fb.Data {
		fb.Data[i] = 0xFF
	}
	r.zBuffer[0] = 1
	r.Clear()
	for i, v := range fb.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %d after Clear, want 0", i, v)
		}
	}
	for i, v := range r.zBuffer {
		if !math.IsInf(v, 1) {
			t.Fatalf("zBuffer[%d] = %v after Clear, want +Inf", i, v)
		}
	}
}

func TestRenderWallsPopulatesZBufferEveryColumn(t *testing.T) {
	m := boxTilemap()
	tex := checkerTexture(8)
	fb := NewFrameBuffer(16, 16)
	r := NewRaycaster(fb)
	cam := NewCamera(2.5, 2.5, 0, 1.0)

	r.Render(RenderParams{
		Tilemap:      m,
		WallTextures: []*Texture{tex},
		Camera:       cam,
	})

	for x, d := range r.zBuffer {
		if math.IsInf(d, 1) || d <= 0 {
			t.Fatalf("zBuffer[%d] = %v, want a finite positive wall distance", x, d)
		}
	}
}

func TestRenderWithoutWallsLeavesWallColumnsUntouched(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	r := NewRaycaster(fb)
	cam := NewCamera(2.5, 2.5, 0, 1.0)

	r.Render(RenderParams{Camera: cam})

	for i, v := range fb.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %d with no tilemap/textures, want untouched 0", i, v)
		}
	}
}

func TestRenderFloorCeilingFillsBothHalves(t *testing.T) {
	floor := checkerTexture(4)
	ceil := checkerTexture(4)
	fb := NewFrameBuffer(8, 8)
	r := NewRaycaster(fb)
	cam := NewCamera(2.5, 2.5, 0, 1.0)

	r.Render(RenderParams{
		FloorTexture:   floor,
		CeilingTexture: ceil,
		Camera:         cam,
	})

	_, _, _, topA := fb.at(0, 0)
	_, _, _, botA := fb.at(0, 7)
	if topA == 0 || botA == 0 {
		t.Errorf("expected both ceiling row and floor row to be written, got alpha %d / %d", topA, botA)
	}
}

// at is a tiny test-only accessor mirroring Texture.At for a FrameBuffer.
func (f *FrameBuffer) at(x, y int) (r, g, b, a byte) {
	i := 4 * (f.Width*y + x)
	return f.Data[i], f.Data[i+1], f.Data[i+2], f.Data[i+3]
}

func TestRenderBillboardOccludedByNearerWallDoesNotDraw(t *testing.T) {
	m := boxTilemap()
	wallTex := checkerTexture(4)
	bbTex := solidTexture(4, 4, 9, 9, 9, 255)
	fb := NewFrameBuffer(32, 32)
	r := NewRaycaster(fb)
	cam := NewCamera(1.5, 2.5, math.Pi/2, 1.0) // facing +X; east wall is 2.5 units away

	farBillboard := &Billboard{
		Position: Vector2{X: 5.5, Y: 2.5}, // beyond the east wall, so farther than it
		Scale:    Vector2{X: 1, Y: 1},
		Textures: []*Texture{bbTex},
	}

	r.Render(RenderParams{
		Tilemap:      m,
		WallTextures: []*Texture{wallTex},
		Billboards:   []*Billboard{farBillboard},
		Camera:       cam,
	})

	center := fb.Width / 2
	r0, g0, b0, _ := fb.at(center, fb.Height/2)
	if r0 == 9 && g0 == 9 && b0 == 9 {
		t.Errorf("billboard behind a wall was drawn over it at column %d", center)
	}
}
