package raycaster

// Texture is a read-only RGBA image: Width*Height pixels, 4 bytes per pixel
// (R,G,B,A, 8 bits each), row-major with no row padding. Data may be nil in
// environments without raw pixel access; such a texture must not be bound
// to a Raycaster as a frame buffer (see NewRaycaster).
type Texture struct {
	Width, Height int
	Data          []byte
}

// NewTexture allocates a zeroed (fully transparent black) Texture.
func NewTexture(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Data: make([]byte, 4*width*height)}
}

// At returns the RGBA bytes at (x, y) as four separate values.
func (t *Texture) At(x, y int) (r, g, b, a byte) {
	i := 4 * (t.Width*y + x)
	d := t.Data
	return d[i], d[i+1], d[i+2], d[i+3]
}

// Set writes the RGBA bytes at (x, y).
func (t *Texture) Set(x, y int, r, g, b, a byte) {
	i := 4 * (t.Width*y + x)
	d := t.Data
	d[i], d[i+1], d[i+2], d[i+3] = r, g, b, a
}

// FrameBuffer is the caller-owned destination pixel buffer. Its shape is
// identical to Texture; it is kept as a distinct type so call sites read as
// "destination" vs. "source" even though the underlying layout is the same.
type FrameBuffer struct {
	Width, Height int
	Data          []byte
}

// NewFrameBuffer allocates a zeroed frame buffer of the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{Width: width, Height: height, Data: make([]byte, 4*width*height)}
}

// Set writes the RGBA bytes at (x, y). Out-of-range (x, y) is undefined
// behavior; the renderer's inner loops never call Set with out-of-range
// coordinates.
func (f *FrameBuffer) Set(x, y int, r, g, b, a byte) {
	i := 4 * (f.Width*y + x)
	d := f.Data
	d[i], d[i+1], d[i+2], d[i+3] = r, g, b, a
}
