package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// arrange recomputes the layout on m (or every monitor when m is
// nil), hiding/showing clients for the current tagset first and
// restacking afterward. Mirrors dwm.c's arrange.
func (wm *WM) arrange(m *Monitor) {
	if m != nil {
		wm.showHide(m.stack)
	} else {
		for mm := wm.mons; mm != nil; mm = mm.next {
			wm.showHide(mm.stack)
		}
	}

	if m != nil {
		wm.tile(m)
		wm.restack(m)
	} else {
		for mm := wm.mons; mm != nil; mm = mm.next {
			wm.tile(mm)
			wm.restack(mm)
		}
	}
}

// showHide walks the focus stack, moving visible clients to their
// recorded geometry top-down and parking hidden clients off-screen
// bottom-up after the recursion returns, mirroring dwm.c's showhide
// ordering. No window is unmapped.
func (wm *WM) showHide(c *Client) {
	if c == nil {
		return
	}
	if c.isVisible() {
		wm.moveResizeWindow(c, c.x, c.y, c.w, c.h)
		if (c.mon.activeTagset() == 0 || !c.isFloating) && !c.isFullscreen {
			// placement handled by tile(); nothing further here
		}
		wm.showHide(c.snext)
	} else {
		wm.showHide(c.snext)
		wm.moveWindowOffscreen(c)
	}
}

// tile arranges m's non-floating, visible clients into a master
// column and a stack column, matching dwm.c's tile layout exactly,
// including the gap and border accounting.
func (wm *WM) tile(m *Monitor) {
	var clients []*Client
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		clients = append(clients, c)
	}
	n := len(clients)
	if n == 0 {
		return
	}

	gap := m.gappx
	wa := m.workArea()

	mw := wa.W - gap
	if n > m.nmaster {
		if m.nmaster != 0 {
			mw = int(float64(wa.W-gap) * m.mfact)
		} else {
			mw = 0
		}
	}

	my, ty := gap, gap
	for i, c := range clients {
		if i < m.nmaster {
			h := (wa.H - my) / (min(n, m.nmaster) - i)
			h -= gap
			wm.resize(c, wa.X+gap, wa.Y+my, mw-2*c.bw-gap, h-2*c.bw, false)
			if c.height()+my < wa.H {
				my += c.height() + gap
			}
		} else {
			h := (wa.H - ty) / (n - i)
			h -= gap
			wm.resize(c, wa.X+mw+gap, wa.Y+ty, wa.W-mw-2*c.bw-2*gap, h-2*c.bw, false)
			if c.height()+ty < wa.H {
				ty += c.height() + gap
			}
		}
	}
}

// resize validates a candidate geometry against size hints (when the
// client is floating, or resizehints is globally enabled) and applies
// it via resizeClient if it actually changed. Mirrors dwm.c's resize.
func (wm *WM) resize(c *Client, x, y, w, h int, interact bool) {
	nx, ny, nw, nh, changed := applySizeHints(
		x, y, w, h, c.bw,
		Rect{c.x, c.y, c.w, c.h},
		Rect{0, 0, wm.sw, wm.sh},
		c.mon.workArea(),
		c.hints,
		c.isFloating,
		resizehints,
		interact,
	)
	if changed {
		wm.resizeClient(c, nx, ny, nw, nh)
	}
}

// resizeClient commits geometry to the Client struct and issues the
// ConfigureWindow request, mirroring dwm.c's resizeclient.
func (wm *WM) resizeClient(c *Client, x, y, w, h int) {
	c.oldX, c.oldY, c.oldW, c.oldH = c.x, c.y, c.w, c.h
	c.x, c.y, c.w, c.h = x, y, w, h
	wm.configureWindow(c)
}

// configureWindow issues the ConfigureWindow request for c's current
// geometry and border width, then synthesizes a ConfigureNotify so
// ICCCM-compliant clients observing in-place moves stay correctly
// informed (mirroring dwm.c's resizeclient / configure).
func (wm *WM) configureWindow(c *Client) {
	if wm.conn == nil {
		return
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight |
		xproto.ConfigWindowBorderWidth)
	values := []uint32{
		uint32(int32(c.x)),
		uint32(int32(c.y)),
		uint32(c.w),
		uint32(c.h),
		uint32(c.bw),
	}
	xproto.ConfigureWindow(wm.conn, c.win, mask, values)
	wm.sendConfigureNotify(c)
}

// moveResizeWindow is a thin wrapper used by showHide; it skips the
// size-hint validation tile() already performed.
func (wm *WM) moveResizeWindow(c *Client, x, y, w, h int) {
	if wm.conn == nil {
		return
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32(x)), uint32(int32(y)), uint32(w), uint32(h)}
	xproto.ConfigureWindow(wm.conn, c.win, mask, values)
}

// moveWindowOffscreen parks a hidden client far outside any monitor's
// visible area, matching dwm.c's showhide hidden-client branch
// (MOVE(c->win, WIDTH(c) * -2, c->y)).
func (wm *WM) moveWindowOffscreen(c *Client) {
	if wm.conn == nil {
		return
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	values := []uint32{uint32(int32(-2 * c.width())), uint32(int32(c.y))}
	xproto.ConfigureWindow(wm.conn, c.win, mask, values)
}
