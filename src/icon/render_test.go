package icon

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var defaultSizes = []int{16, 32, 48, 128}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v >= -tol && v <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderDimensions(t *testing.T) {
	for _, size := range defaultSizes {
		img := Render(size, DefaultStyle())
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Errorf("size %d: expected bounds %v, got %v", size, image.Rect(0, 0, size, size), got)
		}
	}
}

func TestRenderCornersTransparent(t *testing.T) {
	for _, size := range defaultSizes {
		img := Render(size, DefaultStyle())
		corners := []image.Point{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}}
		for _, p := range corners {
			if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d: corner %v has alpha %d, expected 0", size, p, a)
			}
		}
	}
}

func TestRenderSunCenter(t *testing.T) {
	for _, size := range defaultSizes {
		g := Layout(size)
		img := Render(size, DefaultStyle())
		if got := img.RGBAAt(g.Sun.X, g.Sun.Y); got != rgba(SunYellow) {
			t.Errorf("size %d: sun center is %v, expected %v", size, got, rgba(SunYellow))
		}
	}
}

func TestRenderPaintsBackgroundAndCloud(t *testing.T) {
	size := 128
	g := Layout(size)
	img := Render(size, DefaultStyle())

	if got := img.RGBAAt(size-10, 10); got != rgba(SkyBlue) {
		t.Errorf("expected sky at top-right, got %v", got)
	}
	if got := img.RGBAAt(size/2, size-2); got != rgba(SkyBlue) {
		t.Errorf("expected sky at bottom edge, got %v", got)
	}
	for i, c := range g.Cloud {
		if got := img.RGBAAt(c.X, c.Y); got != rgba(CloudWhite) {
			t.Errorf("cloud circle %d center is %v, expected white", i, got)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, style := range []Style{DefaultStyle(), {Antialias: true}} {
		for _, size := range defaultSizes {
			a := Render(size, style)
			b := Render(size, style)
			if !bytes.Equal(a.Pix, b.Pix) {
				t.Errorf("size %d antialias=%v: renders differ", size, style.Antialias)
			}
		}
	}
}

func TestRenderDegenerateSizes(t *testing.T) {
	img := Render(1, DefaultStyle())
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("expected 1x1 image, got %v", img.Bounds())
	}

	aa := Render(1, Style{Antialias: true})
	if aa.Bounds().Dx() != 1 {
		t.Errorf("expected 1x1 antialiased image, got %v", aa.Bounds())
	}

	for _, size := range []int{0, -5} {
		if img := Render(size, DefaultStyle()); !img.Bounds().Empty() {
			t.Errorf("size %d: expected empty image, got %v", size, img.Bounds())
		}
	}
}

func TestRenderZeroStyleUsesDefaults(t *testing.T) {
	a := Render(48, Style{})
	b := Render(48, DefaultStyle())
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("zero Style should render like DefaultStyle")
	}
}

func TestRenderCustomColors(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	style := DefaultStyle()
	style.Sun = red

	g := Layout(32)
	img := Render(32, style)
	if got := img.RGBAAt(g.Sun.X, g.Sun.Y); got != rgba(red) {
		t.Errorf("expected red sun, got %v", got)
	}
}

func TestRenderAntialiased(t *testing.T) {
	style := DefaultStyle()
	style.Antialias = true

	for _, size := range defaultSizes {
		g := Layout(size)
		img := Render(size, style)
		if got := img.RGBAAt(g.Sun.X, g.Sun.Y); !near(got, rgba(SunYellow), 1) {
			t.Errorf("size %d: sun center is %v, expected %v", size, got, rgba(SunYellow))
		}
	}

	img := Render(128, style)
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}

	// The sun rim blends into the sky along the diagonal.
	g := Layout(128)
	d := int(float64(g.Sun.R)*0.7071 + 0.5)
	edge := img.RGBAAt(g.Sun.X+d, g.Sun.Y+d)
	if edge == rgba(SunYellow) || edge == rgba(SkyBlue) {
		t.Errorf("expected blended sun edge, got %v", edge)
	}
}

func TestRenderGradientBackground(t *testing.T) {
	end := color.NRGBA{R: 2, G: 136, B: 209, A: 255} // #0288D1
	style := DefaultStyle()
	style.BackgroundEnd = end

	size := 128
	img := Render(size, style)

	// Top-right and bottom-left sit halfway along the diagonal.
	mid := img.RGBAAt(size-1, 20)
	if mid == rgba(SkyBlue) || mid == rgba(end) {
		t.Errorf("expected interpolated color, got %v", mid)
	}
	want := rgba(newDiagonalGradient(SkyBlue, end, size).At(116, 116))
	if got := img.RGBAAt(116, 116); got != want {
		t.Errorf("expected %v near bottom-right, got %v", want, got)
	}
}
