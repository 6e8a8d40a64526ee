package icon

// Circle is a disc in pixel coordinates.
type Circle struct {
	X, Y, R int
}

// Geometry describes every shape of the icon for one edge length. All values
// are fixed fractions of the size, truncated toward zero, so the composition
// keeps its proportions at every size.
type Geometry struct {
	Size         int
	CornerRadius int
	Sun          Circle
	Cloud        [5]Circle
}

// cloudPuffs offsets each cloud circle from the cloud base point in units of
// the base radius, and scales its radius. Later entries paint over earlier
// ones.
var cloudPuffs = [5]struct {
	dx, dy, scale float64
}{
	{0, 0, 1.0},
	{0.7, -0.3, 0.9},
	{1.4, 0, 0.85},
	{0.4, 0.3, 0.7},
	{1.0, 0.3, 0.7},
}

// Layout computes the icon geometry for a size×size canvas.
func Layout(size int) Geometry {
	s := float64(size)
	g := Geometry{
		Size:         size,
		CornerRadius: int(s * 0.15),
	}

	sunXY := int(s * 0.3)
	g.Sun = Circle{X: sunXY, Y: sunXY, R: int(s * 0.2)}

	baseX := int(s * 0.55)
	baseY := int(s * 0.55)
	r := int(s * 0.12)
	for i, p := range cloudPuffs {
		g.Cloud[i] = Circle{
			X: int(float64(baseX) + float64(r)*p.dx),
			Y: int(float64(baseY) + float64(r)*p.dy),
			R: int(float64(r) * p.scale),
		}
	}
	return g
}
