package icon

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is a square RGBA pixel grid that starts fully transparent and is
// painted by successive shape fills.
type Canvas struct {
	img       *image.RGBA
	antialias bool
}

// NewCanvas allocates a transparent size×size canvas. With antialias set,
// shapes are rasterized by area coverage and composited over what is
// already painted; otherwise each pixel is either inside a shape (and
// replaced by the paint) or untouched.
func NewCanvas(size int, antialias bool) *Canvas {
	if size < 0 {
		size = 0
	}
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, size, size)),
		antialias: antialias,
	}
}

// Image returns the underlying pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRoundedRect paints the inclusive pixel box [x0,x1]×[y0,y1] with its
// corners replaced by quarter circles of radius r.
func (c *Canvas) FillRoundedRect(x0, y0, x1, y1, r int, paint image.Image) {
	if x1 < x0 || y1 < y0 {
		return
	}
	if limit := min(x1-x0, y1-y0) / 2; r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}

	if c.antialias {
		c.fillPath(paint, func(z *vector.Rasterizer) {
			roundedRectPath(z, float32(x0), float32(y0), float32(x1+1), float32(y1+1), float32(r))
		})
		return
	}

	b := c.img.Bounds().Intersect(image.Rect(x0, y0, x1+1, y1+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := cornerDistance(y, y0+r, y1-r)
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := cornerDistance(x, x0+r, x1-r)
			if dx*dx+dy*dy <= r*r {
				c.img.Set(x, y, paint.At(x, y))
			}
		}
	}
}

// FillCircle paints the disc centered on pixel (cx, cy). A zero radius
// paints the center pixel only.
func (c *Canvas) FillCircle(cx, cy, r int, paint image.Image) {
	if r < 0 {
		return
	}

	if c.antialias {
		c.fillPath(paint, func(z *vector.Rasterizer) {
			circlePath(z, float32(cx)+0.5, float32(cy)+0.5, float32(r)+0.5)
		})
		return
	}

	b := c.img.Bounds().Intersect(image.Rect(cx-r, cy-r, cx+r+1, cy+r+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := y - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r*r {
				c.img.Set(x, y, paint.At(x, y))
			}
		}
	}
}

func (c *Canvas) fillPath(paint image.Image, build func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	build(z)
	z.Draw(c.img, b, paint, b.Min)
}

// cornerDistance returns how far v lies outside [lo, hi], or 0 inside it.
func cornerDistance(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	k := r * kappa
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
}
