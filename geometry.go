package main

// Rect is a plain rectangle, used for both screen/work-area geometry
// and client geometry arithmetic. It carries no X11 dependency so the
// layout and size-hint algorithms can be unit tested without a
// display connection.
type Rect struct {
	X, Y, W, H int
}

// intersectArea returns the area of the intersection of two
// rectangles, or 0 if they don't overlap. Mirrors dwm.c's INTERSECT
// macro.
func intersectArea(x, y, w, h int, m Rect) int {
	iw := min(x+w, m.X+m.W) - max(x, m.X)
	ih := min(y+h, m.Y+m.H) - max(y, m.Y)
	if iw < 0 {
		iw = 0
	}
	if ih < 0 {
		ih = 0
	}
	return iw * ih
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// sizeHints mirrors the ICCCM WM_NORMAL_HINTS fields dwm tracks on a
// Client, decoupled from xgbutil/icccm's wire type so the
// normalization algorithm below is independently testable.
type sizeHints struct {
	baseW, baseH int
	incW, incH   int
	maxW, maxH   int
	minW, minH   int
	minAspect    float64
	maxAspect    float64
}

// isFixed reports whether min and max size are equal and nonzero,
// matching dwm.c's c->isfixed derivation in updatesizehints.
func (h sizeHints) isFixed() bool {
	return h.maxW != 0 && h.maxH != 0 && h.maxW == h.minW && h.maxH == h.minH
}

// applySizeHints normalizes a candidate geometry in place, following
// dwm.c's applysizehints: clamp into bounds (interact uses the full
// screen, otherwise the work area), floor to 1x1 (and at least
// bar-height), then - when hints apply - run the ICCCM 4.1.2.3
// aspect/increment/base-size correction. It returns whether the
// resulting geometry differs from current.
//
// screen is the full display rectangle (used only when interact is
// true); workArea is the monitor's work area (used otherwise).
func applySizeHints(x, y, w, h, bw int, cur Rect, screen, workArea Rect, h2 sizeHints, floating, hintsOn, interact bool) (nx, ny, nw, nh int, changed bool) {
	nx, ny, nw, nh = x, y, w, h

	nw = max(1, nw)
	nh = max(1, nh)

	if interact {
		if nx > screen.W {
			nx = screen.W - (nw + 2*bw)
		}
		if ny > screen.H {
			ny = screen.H - (nh + 2*bw)
		}
		if nx+nw+2*bw < 0 {
			nx = 0
		}
		if ny+nh+2*bw < 0 {
			ny = 0
		}
	} else {
		if nx >= workArea.X+workArea.W {
			nx = workArea.X + workArea.W - (nw + 2*bw)
		}
		if ny >= workArea.Y+workArea.H {
			ny = workArea.Y + workArea.H - (nh + 2*bw)
		}
		if nx+nw+2*bw <= workArea.X {
			nx = workArea.X
		}
		if ny+nh+2*bw <= workArea.Y {
			ny = workArea.Y
		}
	}

	if nh < barHeight {
		nh = barHeight
	}
	if nw < barHeight {
		nw = barHeight
	}

	if hintsOn || floating {
		baseIsMin := h2.baseW == h2.minW && h2.baseH == h2.minH
		if !baseIsMin {
			nw -= h2.baseW
			nh -= h2.baseH
		}
		if h2.minAspect > 0 && h2.maxAspect > 0 {
			if h2.maxAspect < float64(nw)/float64(nh) {
				nw = int(float64(nh)*h2.maxAspect + 0.5)
			} else if h2.minAspect < float64(nh)/float64(nw) {
				nh = int(float64(nw)*h2.minAspect + 0.5)
			}
		}
		if baseIsMin {
			nw -= h2.baseW
			nh -= h2.baseH
		}
		if h2.incW != 0 {
			nw -= nw % h2.incW
		}
		if h2.incH != 0 {
			nh -= nh % h2.incH
		}
		nw = max(nw+h2.baseW, h2.minW)
		nh = max(nh+h2.baseH, h2.minH)
		if h2.maxW != 0 {
			nw = min(nw, h2.maxW)
		}
		if h2.maxH != 0 {
			nh = min(nh, h2.maxH)
		}
	}

	changed = nx != cur.X || ny != cur.Y || nw != cur.W || nh != cur.H
	return
}

// rectToMonitor returns the monitor whose rectangle maximizes
// intersection area with the given rect, defaulting to fallback on a
// tie or when no monitor overlaps at all. Mirrors dwm.c's recttomon.
func rectToMonitor(x, y, w, h int, mons []*Monitor, fallback *Monitor) *Monitor {
	best := fallback
	bestArea := 0
	for _, m := range mons {
		a := intersectArea(x, y, w, h, m.screen())
		if a > bestArea || (a > 0 && a == bestArea && m == fallback) {
			bestArea = a
			best = m
		}
	}
	return best
}
