package raycaster

import (
	"math"
	"testing"
)

func solidTexture(w, h int, r, g, b, a byte) *Texture {
	tex := NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tex.Set(x, y, r, g, b, a)
		}
	}
	return tex
}

func TestBillboardSingleTextureAlwaysSelected(t *testing.T) {
	tex := solidTexture(1, 1, 1, 2, 3, 255)
	bb := &Billboard{Position: Vector2{0, 0}, Textures: []*Texture{tex}}
	for _, camPos := range []Vector2{{5, 0}, {0, 5}, {-5, -5}} {
		if got := bb.selectTexture(camPos); got != tex {
			t.Errorf("single-texture billboard returned a different texture for camPos %v", camPos)
		}
	}
}

func TestBillboardFourWayFrontSelection(t *testing.T) {
	front := solidTexture(1, 1, 1, 0, 0, 255)
	right := solidTexture(1, 1, 0, 1, 0, 255)
	rear := solidTexture(1, 1, 0, 0, 1, 255)
	left := solidTexture(1, 1, 1, 1, 0, 255)
	bb := &Billboard{
		Position: Vector2{0, 0},
		Angle:    0,
		Textures: []*Texture{front, right, rear, left},
	}

	// Per the bearing formula (atan2 offset by angle-angleRange/2), the
	// center of the front bucket (index 0) falls on a camera due +X of
	// the billboard when Angle is 0.
	got := bb.selectTexture(Vector2{X: 5, Y: 0})
	if got != front {
		t.Errorf("camera at front bucket center selected wrong texture")
	}
}

func TestBillboardFacingNormalMatchesCameraConvention(t *testing.T) {
	bb := &Billboard{Angle: 0}
	n := bb.facingNormal()
	if math.Abs(n.X) > 1e-12 || math.Abs(n.Y+1) > 1e-12 {
		t.Errorf("facingNormal at angle=0 = %v, want (0,-1)", n)
	}
}
