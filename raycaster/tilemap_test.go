package raycaster

import "testing"

func TestTilemapAtAndIsWall(t *testing.T) {
	m := NewTilemap(3, 2, []int{
		1, 0, 2,
		0, 3, 0,
	})
	if m.At(1, 1) != 3 {
		t.Errorf("At(1,1) = %d, want 3", m.At(1, 1))
	}
	if !m.IsWall(0, 0) {
		t.Errorf("IsWall(0,0) = false, want true")
	}
	if m.IsWall(1, 0) {
		t.Errorf("IsWall(1,0) = true, want false")
	}
}

func TestTextureIndex(t *testing.T) {
	if got := TextureIndex(1); got != 0 {
		t.Errorf("TextureIndex(1) = %d, want 0", got)
	}
	if got := TextureIndex(4); got != 3 {
		t.Errorf("TextureIndex(4) = %d, want 3", got)
	}
}
