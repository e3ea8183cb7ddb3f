package viz

import "math"

// Viewport maps a world-coordinate window onto canvas pixels. The world
// y-axis points up; the pixel y-axis points down. Scene renderers draw
// through a Viewport so they can work in meters, AU or dollars.
type Viewport struct {
	c                      *Canvas
	xmin, xmax, ymin, ymax float64
}

func NewViewport(c *Canvas, xmin, xmax, ymin, ymax float64) *Viewport {
	if xmax <= xmin {
		xmax = xmin + 1
	}
	if ymax <= ymin {
		ymax = ymin + 1
	}
	return &Viewport{c: c, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
}

// Pixel converts a world point to pixel coordinates.
func (v *Viewport) Pixel(x, y float64) (int, int) {
	pw, ph := v.c.PixelSize()
	px := (x - v.xmin) / (v.xmax - v.xmin) * float64(pw-1)
	py := (v.ymax - y) / (v.ymax - v.ymin) * float64(ph-1)
	return int(math.Round(px)), int(math.Round(py))
}

// XScale returns pixels per world unit along x.
func (v *Viewport) XScale() float64 {
	pw, _ := v.c.PixelSize()
	return float64(pw-1) / (v.xmax - v.xmin)
}

func (v *Viewport) Point(x, y float64) {
	px, py := v.Pixel(x, y)
	v.c.Set(px, py)
}

func (v *Viewport) Line(x0, y0, x1, y1 float64) {
	px0, py0 := v.Pixel(x0, y0)
	px1, py1 := v.Pixel(x1, y1)
	v.c.DrawLine(px0, py0, px1, py1)
}

// Polyline connects consecutive points, skipping non-finite samples so
// curves with gaps (asymptotes, log domains) render cleanly.
func (v *Viewport) Polyline(xs, ys []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	havePrev := false
	var px, py int
	for i := 0; i < n; i++ {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			havePrev = false
			continue
		}
		qx, qy := v.Pixel(xs[i], ys[i])
		if havePrev {
			v.c.DrawLine(px, py, qx, qy)
		}
		px, py = qx, qy
		havePrev = true
	}
}

// Circle draws a circle whose radius is given in world x-units.
func (v *Viewport) Circle(x, y, r float64) {
	px, py := v.Pixel(x, y)
	v.c.DrawCircle(px, py, int(math.Round(r*v.XScale())))
}

// Disc draws a filled circle whose radius is given in world x-units.
func (v *Viewport) Disc(x, y, r float64) {
	px, py := v.Pixel(x, y)
	v.c.FillCircle(px, py, int(math.Round(r*v.XScale())))
}

// Dot draws a small 2x2 marker, visible where a single pixel would vanish.
func (v *Viewport) Dot(x, y float64) {
	px, py := v.Pixel(x, y)
	v.c.Set(px, py)
	v.c.Set(px+1, py)
	v.c.Set(px, py+1)
	v.c.Set(px+1, py+1)
}

// Dashed draws a dashed line, alternating on/off runs of the given pixel
// length. Used for normals and reference axes.
func (v *Viewport) Dashed(x0, y0, x1, y1 float64, run int) {
	if run < 1 {
		run = 1
	}
	px0, py0 := v.Pixel(x0, y0)
	px1, py1 := v.Pixel(x1, y1)
	steps := absInt(px1-px0) + absInt(py1-py0)
	if steps == 0 {
		v.c.Set(px0, py0)
		return
	}
	for i := 0; i <= steps; i++ {
		if (i/run)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		x := px0 + int(math.Round(t*float64(px1-px0)))
		y := py0 + int(math.Round(t*float64(py1-py0)))
		v.c.Set(x, y)
	}
}
