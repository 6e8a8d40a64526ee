// Package icon draws the sun-and-cloud weather icon.
package icon

import "image"

// Render draws the icon on a new size×size canvas: a rounded-square sky, a
// sun disc, and a five-circle cloud. It is a pure function of its arguments.
// Sizes below 1 yield an empty image.
func Render(size int, style Style) *image.RGBA {
	if size < 1 {
		return image.NewRGBA(image.Rectangle{})
	}
	style = style.withDefaults()
	g := Layout(size)
	c := NewCanvas(size, style.Antialias)

	c.FillRoundedRect(0, 0, size-1, size-1, g.CornerRadius, style.backgroundPaint(size))

	c.FillCircle(g.Sun.X, g.Sun.Y, g.Sun.R, image.NewUniform(style.Sun))

	cloud := image.NewUniform(style.Cloud)
	for _, p := range g.Cloud {
		c.FillCircle(p.X, p.Y, p.R, cloud)
	}

	return c.Image()
}
