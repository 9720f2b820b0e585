package main

import (
	"time"

	"github.com/BurntSushi/xgb/xproto"
)

// frameInterval throttles interactive move/resize updates to roughly
// 60Hz, matching dwm.c's movemouse/resizemouse 1000/60 ms poll
// interval.
const frameInterval = time.Second / 60

// cmdMoveMouse enters a modal loop that repositions the focused
// client under the pointer until the grabbed button is released,
// snapping to work-area edges and promoting a tiled client to floating
// once the move displaces it by more than snap pixels. Mirrors dwm.c's
// movemouse.
func (wm *WM) cmdMoveMouse(a arg) error {
	c := wm.selmon.sel
	if c == nil || c.isFullscreen {
		return nil
	}
	wm.restack(wm.selmon)
	ox, oy := c.x, c.y

	pointer, err := xproto.QueryPointer(wm.conn, wm.root).Reply()
	if err != nil {
		return nil
	}
	startX, startY := int(pointer.RootX), int(pointer.RootY)

	grab := xproto.GrabPointer(wm.conn, false, wm.root,
		uint16(xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, wm.cursorMove, xproto.TimeCurrentTime)
	reply, err := grab.Reply()
	if err != nil || reply.Status != xproto.GrabStatusSuccess {
		return nil
	}
	defer xproto.UngrabPointer(wm.conn, xproto.TimeCurrentTime)

	var lastFrame time.Time
	for {
		ev, xerr := wm.conn.WaitForEvent()
		if xerr != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ButtonReleaseEvent:
			wm.finishMove(c, e.RootX, e.RootY)
			return nil
		case xproto.MotionNotifyEvent:
			if time.Since(lastFrame) < frameInterval {
				continue
			}
			lastFrame = time.Now()
			nx := ox + int(e.RootX) - startX
			ny := oy + int(e.RootY) - startY
			nx, ny = wm.snapMove(c, nx, ny)
			if !c.isFloating && (abs(nx-c.x) > snap || abs(ny-c.y) > snap) {
				c.isFloating = true
				wm.arrange(c.mon)
			}
			if c.isFloating {
				wm.resize(c, nx, ny, c.w, c.h, true)
			}
		default:
			wm.dispatch(ev)
		}
	}
}

// snapMove pulls a candidate top-left corner onto the nearest
// work-area edge within snap pixels, mirroring dwm.c's edge snapping
// in movemouse.
func (wm *WM) snapMove(c *Client, nx, ny int) (int, int) {
	mon := rectToMonitor(nx, ny, c.width(), c.height(), wm.monitorList(), c.mon)
	wa := mon.workArea()
	if abs(nx-wa.X) < snap {
		nx = wa.X
	} else if abs((wa.X+wa.W)-(nx+c.width())) < snap {
		nx = wa.X + wa.W - c.width()
	}
	if abs(ny-wa.Y) < snap {
		ny = wa.Y
	} else if abs((wa.Y+wa.H)-(ny+c.height())) < snap {
		ny = wa.Y + wa.H - c.height()
	}
	return nx, ny
}

func (wm *WM) finishMove(c *Client, rootX, rootY int16) {
	if m := rectToMonitor(c.x, c.y, c.w, c.h, wm.monitorList(), c.mon); m != c.mon {
		wm.sendToMonitor(c, m)
	}
}

// cmdResizeMouse enters a modal loop that resizes the focused client
// from its bottom-right corner until the grabbed button is released.
// Mirrors dwm.c's resizemouse.
func (wm *WM) cmdResizeMouse(a arg) error {
	c := wm.selmon.sel
	if c == nil || c.isFullscreen {
		return nil
	}
	wm.restack(wm.selmon)
	ox, oy := c.x, c.y

	xproto.WarpPointer(wm.conn, xproto.WindowNone, c.win, 0, 0, 0, 0,
		int16(c.w+c.bw-1), int16(c.h+c.bw-1))

	grab := xproto.GrabPointer(wm.conn, false, wm.root,
		uint16(xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, wm.cursorResize, xproto.TimeCurrentTime)
	reply, err := grab.Reply()
	if err != nil || reply.Status != xproto.GrabStatusSuccess {
		return nil
	}
	defer xproto.UngrabPointer(wm.conn, xproto.TimeCurrentTime)

	var lastFrame time.Time
	for {
		ev, xerr := wm.conn.WaitForEvent()
		if xerr != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ButtonReleaseEvent:
			xproto.WarpPointer(wm.conn, xproto.WindowNone, c.win, 0, 0, 0, 0,
				int16(c.w+c.bw-1), int16(c.h+c.bw-1))
			if m := rectToMonitor(c.x, c.y, c.w, c.h, wm.monitorList(), c.mon); m != c.mon {
				wm.sendToMonitor(c, m)
			}
			return nil
		case xproto.MotionNotifyEvent:
			if time.Since(lastFrame) < frameInterval {
				continue
			}
			lastFrame = time.Now()
			nw := max(int(e.RootX)-ox-2*c.bw+1, 1)
			nh := max(int(e.RootY)-oy-2*c.bw+1, 1)
			if !c.isFloating && (abs(nw-c.w) > snap || abs(nh-c.h) > snap) {
				c.isFloating = true
				wm.arrange(c.mon)
			}
			if c.isFloating {
				wm.resize(c, ox, oy, nw, nh, true)
			}
		default:
			wm.dispatch(ev)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
