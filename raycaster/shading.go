package raycaster

// shade applies the directional-light-plus-ambient-plus-fog composition of
// spec section 4.4 to a single texel, producing the final byte triple to
// write to the frame buffer. Alpha passes through unmodified by the caller.
//
//	I  = max(0, light.Direction . normal)
//	lit = tex * (light.Color*I + light.Ambient)          (per channel)
//	out = fog.Color*(1-f)*255 + lit*f                     (per channel)
//
// light == nil is treated as (color*I + ambient) == 1 (no shading term).
// fog == nil is treated as f == 1 (no fog contribution).
func shade(texR, texG, texB byte, normal Vector3, dist float64, light *Light, fog *Fog) (r, g, b byte) {
	var litR, litG, litB float64
	if light == nil {
		litR, litG, litB = float64(texR), float64(texG), float64(texB)
	} else {
		i := light.Direction.Dot(normal)
		if i < 0 {
			i = 0
		}
		litR = float64(texR) * (light.Color.R*i + light.Ambient.R)
		litG = float64(texG) * (light.Color.G*i + light.Ambient.G)
		litB = float64(texB) * (light.Color.B*i + light.Ambient.B)
	}

	if fog == nil {
		return clampByte(litR), clampByte(litG), clampByte(litB)
	}

	f := fog.factor(dist)
	outR := fog.Color.R*(1-f)*255 + litR*f
	outG := fog.Color.G*(1-f)*255 + litG*f
	outB := fog.Color.B*(1-f)*255 + litB*f
	return clampByte(outR), clampByte(outG), clampByte(outB)
}
