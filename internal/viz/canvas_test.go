package viz

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasSetAndOn(t *testing.T) {
	c := NewCanvas(10, 5)
	pw, ph := c.PixelSize()
	if pw != 20 || ph != 20 {
		t.Fatalf("PixelSize() = (%d, %d), want (20, 20)", pw, ph)
	}

	c.Set(3, 7)
	if !c.On(3, 7) {
		t.Error("pixel (3,7) should be set")
	}
	if c.On(4, 7) {
		t.Error("pixel (4,7) should not be set")
	}

	c.Unset(3, 7)
	if c.On(3, 7) {
		t.Error("pixel (3,7) should be clear after Unset")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4)
	// Must not panic or wrap around.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)
	if c.On(-1, 0) || c.On(100, 0) {
		t.Error("out-of-range pixels must read as clear")
	}
	for _, row := range c.Grid {
		for _, r := range row {
			if r != brailleBase {
				t.Fatal("out-of-range Set modified the grid")
			}
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawLine(2, 3, 17, 29)
	if !c.On(2, 3) {
		t.Error("line start not set")
	}
	if !c.On(17, 29) {
		t.Error("line end not set")
	}
}

func TestDrawCircleSymmetry(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)
	for _, pt := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.On(pt[0], pt[1]) {
			t.Errorf("cardinal point (%d,%d) not on circle", pt[0], pt[1])
		}
	}
	if c.On(20, 20) {
		t.Error("circle outline must not fill the center")
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(20, 20, 6)
	if !c.On(20, 20) || !c.On(22, 18) {
		t.Error("filled circle should cover interior pixels")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("row %q has %d runes, want 3", line, len([]rune(line)))
		}
	}
}

func TestViewportCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	vp := NewViewport(c, 0, 10, 0, 5)
	pw, ph := c.PixelSize()

	if x, y := vp.Pixel(0, 5); x != 0 || y != 0 {
		t.Errorf("top-left maps to (%d,%d), want (0,0)", x, y)
	}
	if x, y := vp.Pixel(10, 0); x != pw-1 || y != ph-1 {
		t.Errorf("bottom-right maps to (%d,%d), want (%d,%d)", x, y, pw-1, ph-1)
	}
}

func TestViewportYAxisPointsUp(t *testing.T) {
	c := NewCanvas(10, 10)
	vp := NewViewport(c, 0, 1, 0, 1)
	_, yLow := vp.Pixel(0.5, 0.1)
	_, yHigh := vp.Pixel(0.5, 0.9)
	if yHigh >= yLow {
		t.Errorf("larger world y should map to smaller pixel y: got %d vs %d", yHigh, yLow)
	}
}

func TestPolylineSkipsNaN(t *testing.T) {
	c := NewCanvas(20, 10)
	vp := NewViewport(c, 0, 10, 0, 10)
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{5, 5, math.NaN(), 5, 5}
	vp.Polyline(xs, ys) // must not panic or draw through the gap

	gx, gy := vp.Pixel(2.5, 5)
	if c.On(gx, gy) {
		t.Error("polyline drew across a NaN gap")
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("no-such-theme").Name; got != "chalkboard" {
		t.Errorf("fallback theme = %q, want chalkboard", got)
	}
	if got := GetTheme("retro").Name; got != "retro" {
		t.Errorf("GetTheme(retro) = %q", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	SetTheme("chalkboard")
	seen := map[string]bool{}
	for range Themes {
		seen[NextTheme()] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycled through %d themes, want %d", len(seen), len(Themes))
	}
	if CurrentTheme.Name != "chalkboard" {
		t.Errorf("full cycle should return to chalkboard, got %q", CurrentTheme.Name)
	}
}
