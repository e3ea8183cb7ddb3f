package viz

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/k-sandesh/edusim/internal/models"
	"github.com/k-sandesh/edusim/internal/sim"
)

// DrawScene clears the canvas and renders the scene for the given model at
// simulated time t. Models without a dedicated scene fall back to a plot of
// their first output over the viewport.
func DrawScene(c *Canvas, m sim.Model, p *sim.Params, t float64) {
	c.Clear()
	switch mdl := m.(type) {
	case *models.Projectile:
		projectileScene(c, mdl, p, t)
	case *models.Kepler:
		keplerScene(c, mdl, p, t)
	case *models.Snell:
		snellScene(c, mdl, p, t)
	case *models.Reaction:
		reactionScene(c, mdl, p, t)
	case *models.Mitosis:
		mitosisScene(c, mdl, p, t)
	case *models.Photosynthesis:
		photosynthesisScene(c, mdl, p, t)
	case *models.WaterCycle:
		waterCycleScene(c, mdl, p, t)
	case *models.Tide:
		tideScene(c, mdl, p, t)
	case *models.Market:
		marketScene(c, mdl, p, t)
	case *models.Grapher:
		grapherScene(c, mdl, p, t)
	case *models.Probability:
		probabilityScene(c, mdl, p, t)
	case *models.Tectonics:
		tectonicsScene(c, mdl, p, t)
	default:
		genericScene(c, m, p, t)
	}
}

// eased maps a raw progress fraction through an easing curve. A fresh tween
// is built per frame so scene drawing stays a pure function of (params, t).
func eased(progress float64, fn ease.TweenFunc) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	tw := gween.New(0, 1, 1, fn)
	v, _ := tw.Update(float32(progress))
	return float64(v)
}

func projectileScene(c *Canvas, m *models.Projectile, p *sim.Params, t float64) {
	xs, ys := m.Trajectory(p)
	tx, ty := m.Target(p)

	xmax, ymax := 70.0, 22.0
	for i := range xs {
		if xs[i] > xmax {
			xmax = xs[i]
		}
		if ys[i] > ymax {
			ymax = ys[i]
		}
	}
	if tx*1.15 > xmax {
		xmax = tx * 1.15
	}
	if ty*1.4 > ymax {
		ymax = ty * 1.4
	}
	vp := NewViewport(c, -2, xmax*1.05, -0.5, ymax*1.1)

	vp.Line(-2, 0, xmax*1.05, 0) // ground
	vp.Polyline(xs, ys)
	vp.Circle(tx, ty, 1.5)

	st := m.Eval(p, t)
	if st[1] >= 0 {
		vp.Dot(st[0], st[1])
	}
}

func keplerScene(c *Canvas, m *models.Kepler, p *sim.Params, t float64) {
	a, e := p.Get("a"), p.Get("e")
	half := a * (1 + e) * 1.15
	vp := NewViewport(c, -half, half, -half, half)

	xs, ys := models.OrbitPath(a, e, 128)
	vp.Polyline(xs, ys)

	vp.Disc(0, 0, half*0.03) // sun at the occupied focus

	st := m.Eval(p, t)
	vp.Line(0, 0, st[0], st[1])
	vp.Dot(st[0], st[1])
}

func snellScene(c *Canvas, m *models.Snell, p *sim.Params, t float64) {
	vp := NewViewport(c, -1.2, 1.2, -1.2, 1.2)

	vp.Line(-1.2, 0, 1.2, 0)       // media interface
	vp.Dashed(0, -1.1, 0, 1.1, 3)  // normal

	th1 := p.Get("theta1") * math.Pi / 180
	ix, iy := -math.Sin(th1), math.Cos(th1)
	vp.Line(ix, iy, 0, 0)

	st := m.Eval(p, t)
	tir := st[2] >= 0.5
	// When st[2] flags total internal reflection, st[0] holds the
	// reflected angle, so the outgoing leg points back up.
	th2 := st[0] * math.Pi / 180
	var ox, oy float64
	if tir {
		ox, oy = math.Sin(th2), math.Cos(th2)
	} else {
		ox, oy = math.Sin(th2), -math.Cos(th2)
	}
	vp.Line(0, 0, ox, oy)

	// A photon runs the incident leg then the outgoing leg every 2 seconds.
	phase := math.Mod(t, 2)
	if phase < 1 {
		s := eased(phase, ease.InOutQuad)
		vp.Dot(ix*(1-s), iy*(1-s))
	} else {
		s := eased(phase-1, ease.InOutQuad)
		vp.Dot(ox*s, oy*s)
	}
}

// drawMolecule renders a molecule as Count stacked discs sized by its atom
// total, hollow while still materializing.
func drawMolecule(vp *Viewport, mol models.Molecule, x, y float64, solid bool) {
	atoms := 0
	for _, a := range mol.Atoms {
		atoms += a.N
	}
	r := 0.035 * math.Sqrt(float64(atoms)) * 2
	for i := 0; i < mol.Count; i++ {
		cy := y + float64(i)*r*2.4 - float64(mol.Count-1)*r*1.2
		if solid {
			vp.Disc(x, cy, r)
		} else {
			vp.Circle(x, cy, r)
		}
	}
}

func reactionScene(c *Canvas, m *models.Reaction, p *sim.Params, t float64) {
	vp := NewViewport(c, -1.2, 1.2, -0.8, 0.8)
	def := m.Current(p)
	st := m.Eval(p, t)
	progress := st[0]

	slide := eased(progress, ease.OutQuad)
	for i, mol := range def.Reactants {
		x := -0.95 + 0.75*slide
		y := 0.35 - 0.7*float64(i)/math.Max(1, float64(len(def.Reactants)-1))
		if len(def.Reactants) == 1 {
			y = 0
		}
		drawMolecule(vp, mol, x, y, progress < 0.9)
	}
	for i, mol := range def.Products {
		productAlpha := st[2]
		if productAlpha <= 0 {
			continue
		}
		x := 0.95 - 0.35*eased(productAlpha, ease.OutQuad)
		y := 0.35 - 0.7*float64(i)/math.Max(1, float64(len(def.Products)-1))
		if len(def.Products) == 1 {
			y = 0
		}
		drawMolecule(vp, mol, x, y, productAlpha > 0.5)
	}

	// Reaction flash at the midpoint.
	if progress > 0.35 && progress < 0.65 {
		vp.Dot(0, 0)
		vp.Circle(0, 0, 0.08*math.Sin(progress*math.Pi))
	}
}

func mitosisScene(c *Canvas, m *models.Mitosis, p *sim.Params, t float64) {
	vp := NewViewport(c, -1.4, 1.4, -1, 1)
	stage, frac := m.StageAt(p, t)
	n := int(p.Get("chromosomes"))
	s := eased(frac, ease.InOutQuad)

	switch stage {
	case 0: // interphase: resting cell with nucleus
		vp.Circle(0, 0, 0.62)
		vp.Circle(0, 0, 0.24)
	case 1: // prophase: chromosomes condense
		vp.Circle(0, 0, 0.62)
		for i := 0; i < n; i++ {
			ang := float64(i) * 2 * math.Pi / float64(n)
			x, y := 0.28*math.Cos(ang), 0.28*math.Sin(ang)
			vp.Line(x-0.05, y-0.05, x+0.05, y+0.05)
			vp.Line(x-0.05, y+0.05, x+0.05, y-0.05)
		}
	case 2: // metaphase: chromosomes align at the equator
		vp.Circle(0, 0, 0.62)
		for i := 0; i < n; i++ {
			y := 0.4 - 0.8*float64(i)/math.Max(1, float64(n-1))
			vp.Line(-0.06, y, 0.06, y)
		}
	case 3: // anaphase: sister chromatids separate
		vp.Circle(0, 0, 0.62)
		d := 0.12 + 0.3*s
		for i := 0; i < n; i++ {
			y := 0.4 - 0.8*float64(i)/math.Max(1, float64(n-1))
			vp.Line(-d-0.05, y, -d+0.05, y)
			vp.Line(d-0.05, y, d+0.05, y)
		}
	case 4: // telophase: nuclei reform at the poles
		vp.Circle(0, 0, 0.62)
		vp.Circle(-0.34, 0, 0.18)
		vp.Circle(0.34, 0, 0.18)
	default: // cytokinesis: the cell pinches in two
		off := 0.34 + 0.34*s
		r := 0.55 - 0.1*s
		vp.Circle(-off, 0, r)
		vp.Circle(off, 0, r)
		vp.Circle(-off, 0, 0.16)
		vp.Circle(off, 0, 0.16)
	}
}

func photosynthesisScene(c *Canvas, m *models.Photosynthesis, p *sim.Params, t float64) {
	vp := NewViewport(c, 0, 10, 0, 7)
	st := m.Eval(p, t)
	rate := st[0]

	// Sun with rays scaled by the sunlight input.
	vp.Disc(1.3, 6, 0.45)
	rays := int(p.Get("sunlight")/15) + 2
	for i := 0; i < rays; i++ {
		ang := float64(i) * 2 * math.Pi / float64(rays)
		vp.Line(1.3+0.6*math.Cos(ang), 6+0.6*math.Sin(ang),
			1.3+0.95*math.Cos(ang), 6+0.95*math.Sin(ang))
	}

	vp.Line(0, 0.8, 10, 0.8) // soil line

	// Plant: stem and leaves.
	vp.Line(5.5, 0.8, 5.5, 3.6)
	vp.Circle(4.8, 3.0, 0.5)
	vp.Circle(6.2, 3.4, 0.5)
	vp.Circle(5.5, 4.1, 0.45)

	// CO2 drifting toward the leaves, O2 rising away; particle count tracks
	// the current rate so starved plants visibly slow down.
	particles := int(rate / 12)
	for i := 0; i < particles; i++ {
		ph := math.Mod(t*0.8+float64(i)/float64(particles+1)*4, 4) / 4
		vp.Dot(9-5.2*ph, 2.6+0.4*math.Sin(float64(i)*2.1))
		vp.Dot(5.5+0.8*math.Sin(float64(i)*1.7), 4.3+2.3*ph)
	}
}

func waterCycleScene(c *Canvas, m *models.WaterCycle, p *sim.Params, t float64) {
	vp := NewViewport(c, 0, 12, 0, 8)
	st := m.Eval(p, t)
	evap, cond, precip := st[0], st[1], st[2]

	// Mountain, ocean and sun anchor the scene.
	vp.Line(0, 1, 3, 5)
	vp.Line(3, 5, 6, 1)
	vp.Line(6, 1, 12, 1)
	for y := 0.2; y < 1.0; y += 0.3 {
		vp.Line(6.2, y, 11.8, y)
	}
	vp.Disc(1.4, 7, 0.4)

	// Cloud grows with condensation.
	cr := 0.25 + cond/120
	vp.Circle(8.2, 6.3, cr)
	vp.Circle(8.9, 6.5, cr*1.1)
	vp.Circle(9.6, 6.3, cr)

	// Rising vapor over the ocean.
	for i := 0; i < int(evap/9); i++ {
		ph := math.Mod(t+float64(i)*0.7, 3) / 3
		vp.Dot(7+float64(i%4), 1.3+4.4*ph)
	}
	// Rain under the cloud.
	for i := 0; i < int(precip/9); i++ {
		ph := math.Mod(t*1.4+float64(i)*0.5, 2) / 2
		x := 7.8 + float64(i%5)*0.5
		y := 5.8 - 4.4*ph
		vp.Line(x, y, x, y+0.25)
	}
}

func tideScene(c *Canvas, m *models.Tide, p *sim.Params, t float64) {
	vp := NewViewport(c, -2.2, 2.2, -1.6, 1.6)

	vp.Circle(0, 0, 0.7) // Earth

	// Ocean surface: radius 0.7*(1 + h(theta)) around Earth.
	profile := m.Profile(p, t)
	xs := make([]float64, len(profile)+1)
	ys := make([]float64, len(profile)+1)
	for i, h := range profile {
		theta := float64(i) * 2 * math.Pi / float64(len(profile))
		r := 0.7 * (1 + h)
		xs[i], ys[i] = r*math.Cos(theta), r*math.Sin(theta)
	}
	xs[len(profile)], ys[len(profile)] = xs[0], ys[0]
	vp.Polyline(xs, ys)

	moonAngle := m.MoonAngle(p, t)
	mx, my := 1.8*math.Cos(moonAngle), 1.8*math.Sin(moonAngle)
	vp.Disc(mx, my, 0.1)
	vp.Dashed(0, 0, mx, my, 4)

	if p.Get("sun_on") >= 0.5 {
		sa := p.Get("sun_angle") * math.Pi / 180
		sx, sy := 2.05*math.Cos(sa), 1.45*math.Sin(sa)
		vp.Circle(sx, sy, 0.13)
		for i := 0; i < 8; i++ {
			ang := float64(i) * math.Pi / 4
			vp.Line(sx+0.16*math.Cos(ang), sy+0.16*math.Sin(ang),
				sx+0.24*math.Cos(ang), sy+0.24*math.Sin(ang))
		}
	}
}

func marketScene(c *Canvas, m *models.Market, p *sim.Params, t float64) {
	demand, supply := p.Get("demand"), p.Get("supply")
	qmax := math.Max(demand, supply) * 1.1
	vp := NewViewport(c, -qmax*0.06, qmax, -3, 53)

	vp.Line(0, 0, qmax, 0)  // quantity axis
	vp.Line(0, 0, 0, 52)    // price axis

	prices := make([]float64, 51)
	for i := range prices {
		prices[i] = float64(i)
	}
	vp.Polyline(models.DemandCurve(demand, prices), prices)
	vp.Polyline(models.SupplyCurve(supply, prices), prices)

	st := m.Eval(p, t)
	price, qty := st[0], st[1]
	vp.Dashed(0, price, qty, price, 3)
	vp.Dashed(qty, 0, qty, price, 3)
	vp.Dot(qty, price)
}

func grapherScene(c *Canvas, m *models.Grapher, p *sim.Params, t float64) {
	vp := NewViewport(c, -10.5, 10.5, -11, 11)

	vp.Dashed(-10.5, 0, 10.5, 0, 4)
	vp.Dashed(0, -11, 0, 11, 4)

	xs, ys := m.Curve(p, 240)
	for i, y := range ys {
		if y > 11 || y < -11 {
			ys[i] = math.NaN() // let Polyline break at off-screen spans
		}
	}
	vp.Polyline(xs, ys)

	st := m.Eval(p, t)
	if st[1] >= -11 && st[1] <= 11 {
		vp.Dot(st[0], st[1])
	}
}

func probabilityScene(c *Canvas, m *models.Probability, p *sim.Params, t float64) {
	counts := m.Counts(p, t)
	if len(counts) == 0 {
		return
	}
	max := 1
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	vp := NewViewport(c, -0.5, float64(len(counts)), 0, float64(max)*1.15)

	vp.Line(-0.5, 0, float64(len(counts)), 0)
	for i, n := range counts {
		if n == 0 {
			continue
		}
		x0, y0 := vp.Pixel(float64(i)+0.12, 0)
		x1, y1 := vp.Pixel(float64(i)+0.88, float64(n))
		vp.c.FillRect(x0, y1, x1, y0)
	}
}

func tectonicsScene(c *Canvas, m *models.Tectonics, p *sim.Params, t float64) {
	vp := NewViewport(c, -3, 3, -1.5, 1.5)
	st := m.Eval(p, t)
	offset, feature := st[0], st[1]

	switch m.BoundaryName(p) {
	case "Convergent":
		// Plates push in; crust buckles into a mountain at the suture.
		vp.Line(-3, 0, -0.15+offset/4, 0)
		vp.Line(0.15-offset/4, 0, 3, 0)
		h := feature * 1.2
		vp.Line(-0.5, 0, 0, h)
		vp.Line(0, h, 0.5, 0)
	case "Divergent":
		// Plates pull apart; a rift valley opens between them.
		vp.Line(-3, 0, -0.15-offset, 0)
		vp.Line(0.15+offset, 0, 3, 0)
		vp.Line(-0.15-offset, 0, -0.05, -feature*0.9)
		vp.Line(-0.05, -feature*0.9, 0.05, -feature*0.9)
		vp.Line(0.05, -feature*0.9, 0.15+offset, 0)
	default:
		// Transform: plates shear past one another; hatches show the slip.
		vp.Line(-3, 0.1, 3, 0.1)
		vp.Line(-3, -0.1, 3, -0.1)
		for i := -2; i <= 2; i++ {
			x := float64(i)
			vp.Line(x+offset, 0.1, x+offset, 0.7)
			vp.Line(x-offset, -0.1, x-offset, -0.7)
		}
	}

	// Depth reference lines for the cross-section.
	vp.Dashed(-3, -1.2, 3, -1.2, 5)
}

// genericScene plots the model's first output against time when no bespoke
// renderer exists.
func genericScene(c *Canvas, m sim.Model, p *sim.Params, t float64) {
	const window = 10.0
	start := t - window
	if start < 0 {
		start = 0
	}
	n := 200
	xs := make([]float64, n)
	ys := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		ti := start + float64(i)/float64(n-1)*window
		st := m.Eval(p, ti)
		xs[i] = ti
		ys[i] = st[0]
		if st[0] < lo {
			lo = st[0]
		}
		if st[0] > hi {
			hi = st[0]
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	vp := NewViewport(c, start, start+window, lo, hi)
	vp.Polyline(xs, ys)
}
