package main

import "testing"

func TestIntersectArea(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	tests := []struct {
		name       string
		x, y, w, h int
		want       int
	}{
		{"fully inside", 100, 100, 200, 200, 200 * 200},
		{"fully outside", 2000, 2000, 100, 100, 0},
		{"partial overlap right edge", 1900, 0, 100, 100, 20 * 100},
		{"touching edge, zero area", 1920, 0, 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersectArea(tt.x, tt.y, tt.w, tt.h, mon)
			if got != tt.want {
				t.Errorf("intersectArea(%d,%d,%d,%d) = %d, want %d", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestRectToMonitor(t *testing.T) {
	left := &Monitor{mx: 0, my: 0, mw: 1000, mh: 1000}
	right := &Monitor{mx: 1000, my: 0, mw: 1000, mh: 1000}
	mons := []*Monitor{left, right}

	got := rectToMonitor(1500, 100, 200, 200, mons, left)
	if got != right {
		t.Errorf("rectToMonitor placed window mostly on right screen on the left monitor")
	}

	got = rectToMonitor(100, 100, 200, 200, mons, right)
	if got != left {
		t.Errorf("rectToMonitor placed window mostly on left screen on the right monitor")
	}

	got = rectToMonitor(5000, 5000, 10, 10, mons, left)
	if got != left {
		t.Errorf("rectToMonitor did not fall back to the provided default when no monitor overlaps")
	}
}

func TestSizeHintsIsFixed(t *testing.T) {
	tests := []struct {
		name string
		h    sizeHints
		want bool
	}{
		{"unset", sizeHints{}, false},
		{"fixed", sizeHints{minW: 300, minH: 200, maxW: 300, maxH: 200}, true},
		{"min only", sizeHints{minW: 300, minH: 200}, false},
		{"mismatched max", sizeHints{minW: 300, minH: 200, maxW: 400, maxH: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.isFixed(); got != tt.want {
				t.Errorf("isFixed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplySizeHintsRespectsIncrementsAndMin(t *testing.T) {
	screen := Rect{0, 0, 1920, 1080}
	wa := Rect{0, 0, 1920, 1060}
	cur := Rect{100, 100, 600, 400}
	h := sizeHints{baseW: 0, baseH: 0, incW: 10, incH: 10, minW: 100, minH: 100}

	_, _, nw, nh, changed := applySizeHints(100, 100, 647, 483, 0, cur, screen, wa, h, false, true, false)
	if !changed {
		t.Fatalf("expected geometry to change")
	}
	if nw%10 != 0 || nh%10 != 0 {
		t.Errorf("got w=%d h=%d, want both multiples of 10", nw, nh)
	}

	_, _, nw, nh, _ = applySizeHints(100, 100, 5, 5, 0, cur, screen, wa, h, false, true, false)
	if nw < h.minW || nh < h.minH {
		t.Errorf("got w=%d h=%d, want at least min %d/%d", nw, nh, h.minW, h.minH)
	}
}

func TestApplySizeHintsNoChangeWhenSame(t *testing.T) {
	screen := Rect{0, 0, 1920, 1080}
	wa := Rect{0, 0, 1920, 1060}
	cur := Rect{100, 100, 640, 480}

	_, _, _, _, changed := applySizeHints(100, 100, 640, 480, 0, cur, screen, wa, sizeHints{}, false, false, false)
	if changed {
		t.Errorf("expected no change when geometry is already current")
	}
}
