package raycaster

import "math"

// Ray2 is a 2D ray: a start point and a direction that need not be unit
// length.
type Ray2 struct {
	Start Vector2
	Dir   Vector2
}

// Ray3 is a 3D ray.
type Ray3 struct {
	Start Vector3
	Dir   Vector3
}

// MapPos is an integer tilemap cell coordinate.
type MapPos struct {
	X, Y int
}

// WallHit is the result of RayTilemapIntersection.
type WallHit struct {
	MapPosition           MapPos
	Side                  int // 0 = x-face (east/west), 1 = y-face (north/south)
	HitPosition           Vector2
	Normal                Vector2
	PerpendicularDistance float64
}

// RayTilemapIntersection casts a 2D ray against tilemap using a classic
// Amanatides-Woo DDA grid walk, terminating at the first nonzero cell. The
// returned PerpendicularDistance is a meaningful world-space distance only
// when ray.Dir is unit length; it is always the correct value to use as a
// column's fisheye-corrected wall distance when ray.Dir was built from the
// camera's Dir/Plane basis (which is unit on its Dir axis by construction).
//
// Precondition: tilemap's outer boundary is solid, so the walk terminates.
// Violating this is undefined behavior (out-of-range map reads).
func RayTilemapIntersection(ray Ray2, tilemap *Tilemap) WallHit {
	sx, sy := ray.Start.X, ray.Start.Y
	dx, dy := ray.Dir.X, ray.Dir.Y

	mapX, mapY := int(math.Floor(sx)), int(math.Floor(sy))

	deltaDistX := math.Abs(1 / dx)
	deltaDistY := math.Abs(1 / dy)

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if dx < 0 {
		stepX = -1
		sideDistX = (sx - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - sx) * deltaDistX
	}
	if dy < 0 {
		stepY = -1
		sideDistY = (sy - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - sy) * deltaDistY
	}

	side := 0
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if tilemap.At(mapX, mapY) != 0 {
			break
		}
	}

	var perp float64
	var normal Vector2
	if side == 0 {
		perp = (float64(mapX) - sx + (1-float64(stepX))/2) / dx
		normal = Vector2{X: float64(-stepX), Y: 0}
	} else {
		perp = (float64(mapY) - sy + (1-float64(stepY))/2) / dy
		normal = Vector2{X: 0, Y: float64(-stepY)}
	}

	return WallHit{
		MapPosition:           MapPos{mapX, mapY},
		Side:                  side,
		HitPosition:           Vector2{X: sx + perp*dx, Y: sy + perp*dy},
		Normal:                normal,
		PerpendicularDistance: perp,
	}
}

// PlaneHit is the result of RayTilemapCeilingFloorIntersection.
type PlaneHit struct {
	Position Vector3
	Normal   Vector3
	RayScale float64
}

// RayTilemapCeilingFloorIntersection extends the 2D wall DDA into 3D
// against the floor (z=0) and ceiling (z=1) slabs. It projects ray to XY,
// normalizes that projection, runs RayTilemapIntersection, and uses the
// resulting perpendicular distance to find the z height the ray would have
// reached at the 2D hit. If that height falls within (0, 1) the true hit is
// the wall face itself; otherwise it is the floor or ceiling plane, and the
// final position/RayScale are found by analytically intersecting the
// chosen plane with the original (unnormalized) 3D ray.
func RayTilemapCeilingFloorIntersection(ray Ray3, tilemap *Tilemap) PlaneHit {
	dirXY := ray.Dir.XY()
	l := dirXY.Length()
	normDirXY := dirXY
	if l != 0 {
		normDirXY = dirXY.Scale(1 / l)
	}

	hit2D := RayTilemapIntersection(Ray2{Start: ray.Start.XY(), Dir: normDirXY}, tilemap)
	z := ray.Start.Z + (ray.Dir.Z/l)*hit2D.PerpendicularDistance

	var n Vector3
	var d float64
	switch {
	case z <= 0:
		n = Vector3{X: 0, Y: 0, Z: 1}
		d = 0
	case z >= 1:
		n = Vector3{X: 0, Y: 0, Z: -1}
		d = 1
	default:
		n = hit2D.Normal.To3(0)
		d = -(n.X*hit2D.HitPosition.X + n.Y*hit2D.HitPosition.Y)
	}

	t := -(d + n.Dot(ray.Start)) / n.Dot(ray.Dir)
	return PlaneHit{
		Position: ray.Start.Add(ray.Dir.Scale(t)),
		Normal:   n,
		RayScale: t,
	}
}

// BillboardHit is the result of RayBillboardIntersection.
type BillboardHit struct {
	Position Vector3
	RayScale float64
	UV       Vector2
	Hit      bool // true iff UV lies within [-0.5, 0.5] on both axes
}

// RayBillboardIntersection intersects ray with the plane of a billboard
// rectangle: the plane through (billboard.Position, 0) with normal bbDir
// (lifted to 3D with z=0). The rectangle's right tangent is
// (bbDir.Y, -bbDir.X, 0); UV is measured from the sprite's
// center-of-canvas, (billboard.Position, 0.5+billboard.VOffset), divided by
// (Scale.X, Scale.Y).
func RayBillboardIntersection(ray Ray3, billboard *Billboard, bbDir Vector2) BillboardHit {
	n := bbDir.To3(0)
	planePoint := billboard.Position.To3(0)
	d := -n.Dot(planePoint)

	t := -(d + n.Dot(ray.Start)) / n.Dot(ray.Dir)
	pos := ray.Start.Add(ray.Dir.Scale(t))

	tangent := Vector3{X: bbDir.Y, Y: -bbDir.X, Z: 0}
	center := billboard.Position.To3(0.5 + billboard.VOffset)
	rel := pos.Sub(center)

	u := rel.Dot(tangent) / billboard.Scale.X
	v := rel.Z / billboard.Scale.Y

	return BillboardHit{
		Position: pos,
		RayScale: t,
		UV:       Vector2{X: u, Y: v},
		Hit:      u >= -0.5 && u <= 0.5 && v >= -0.5 && v <= 0.5,
	}
}

// ScreenPointToRay unprojects a normalized screen point (both components in
// [0, 1], origin top-left) into a 3D world ray starting at
// (camera.Position, 0.5).
func ScreenPointToRay(nScreen Vector2, camera *Camera) Ray3 {
	t := 2*nScreen.X - 1
	dir := camera.Direction()
	plane := camera.Plane()
	return Ray3{
		Start: camera.Position.To3(0.5),
		Dir: Vector3{
			X: dir.X + plane.X*t,
			Y: dir.Y + plane.Y*t,
			Z: (1 - nScreen.Y) - 0.5,
		},
	}
}
