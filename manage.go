package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// manage begins managing win, building a Client, applying rules,
// reparenting it into the tiling order, and mapping it. Mirrors
// dwm.c's manage.
func (wm *WM) manage(win xproto.Window, geom *xproto.GetGeometryReply) {
	if wm.clientForWindow(win) != nil {
		return
	}

	c := &Client{win: win, bw: borderpx}
	c.x, c.y, c.w, c.h = int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height)
	c.oldX, c.oldY, c.oldW, c.oldH = c.x, c.y, c.w, c.h
	c.oldBW = borderpx

	c.mon = wm.selmon
	if trans, err := icccm.WmTransientForGet(wm.xu, win); err == nil && trans != 0 {
		if t := wm.clientForWindow(trans); t != nil {
			c.mon = t.mon
			c.tags = t.tags
		}
	}

	if c.x+c.width() > c.mon.mx+c.mon.mw {
		c.x = c.mon.mx + c.mon.mw - c.width()
	}
	if c.y+c.height() > c.mon.my+c.mon.mh {
		c.y = c.mon.my + c.mon.mh - c.height()
	}
	c.x = max(c.x, c.mon.mx)
	c.y = max(c.y, c.mon.my)

	c.hints = windowSizeHints(wm.xu, win)
	c.isFixed = c.hints.isFixed()

	class, instance := windowClassInstance(wm.xu, win)
	title := windowTitle(wm.xu, win)
	tags, floating, monNum := applyRules(class, instance, title)
	if tags != 0 {
		c.tags = tags
	} else if c.tags == 0 {
		c.tags = c.mon.activeTagset()
	}
	c.isFloating = floating
	if monNum >= 0 {
		if m := wm.monitorByNum(monNum); m != nil {
			c.mon = m
		}
	}
	c.name = title

	wm.updateWindowType(c)

	xproto.ConfigureWindow(wm.conn, win, xproto.ConfigWindowBorderWidth, []uint32{uint32(c.bw)})
	wm.setBorder(c, false)
	wm.configureWindow(c)
	wm.setClientState(c, icccmNormalState)

	xproto.ChangeWindowAttributes(wm.conn, win, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange | xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify),
	})

	wm.registerClient(c)
	attach(c)
	attachStack(c)
	wm.updateClientList()

	xproto.MapWindow(wm.conn, win)
	wm.arrange(c.mon)
	wm.focus(c)
}

// unmanage stops managing c, restoring WM_STATE withdrawal when the
// window still exists (destroyed == false) and rearranging. Mirrors
// dwm.c's unmanage.
func (wm *WM) unmanage(c *Client, destroyed bool) {
	m := c.mon
	detach(c)
	detachStack(c)
	wm.unregisterClient(c)

	if !destroyed {
		xproto.ConfigureWindow(wm.conn, c.win, xproto.ConfigWindowBorderWidth, []uint32{uint32(c.oldBW)})
		xproto.UngrabButton(wm.conn, xproto.ButtonIndexAny, c.win, xproto.ModMaskAny)
		wm.setClientState(c, icccmWithdrawnState)
	}

	wm.focus(nil)
	wm.updateClientList()
	wm.arrange(m)
}

// updateWindowType reads _NET_WM_STATE and _NET_WM_WINDOW_TYPE: a
// window whose state already lists _NET_WM_STATE_FULLSCREEN enters
// fullscreen via wm.setFullscreen, and a dialog-typed window becomes
// floating. Mirrors dwm.c's updatewindowtype.
func (wm *WM) updateWindowType(c *Client) {
	if wm.xu == nil {
		return
	}
	state, _ := ewmh.WmStateGet(wm.xu, c.win)
	for _, s := range state {
		if s == "_NET_WM_STATE_FULLSCREEN" {
			wm.setFullscreen(c, true)
		}
	}
	wtype, _ := ewmh.WmWindowTypeGet(wm.xu, c.win)
	for _, t := range wtype {
		if t == "_NET_WM_WINDOW_TYPE_DIALOG" {
			c.isFloating = true
		}
	}
}

const (
	icccmWithdrawnState = 0
	icccmNormalState    = 1
	icccmIconicState    = 3
)

// setClientState writes the two-long WM_STATE property (state, icon
// window). Mirrors dwm.c's setclientstate.
func (wm *WM) setClientState(c *Client, state int) {
	if wm.conn == nil {
		return
	}
	data := []uint32{uint32(state), uint32(xproto.WindowNone)}
	buf := make([]byte, 8)
	for i, v := range data {
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v >> 16)
		buf[i*4+3] = byte(v >> 24)
	}
	xproto.ChangeProperty(wm.conn, xproto.PropModeReplace, c.win, wm.atomWMState, wm.atomWMState, 32, 2, buf)
}

// scan walks the existing top-level windows at startup and manages
// every non-override-redirect one that is currently mapped. Unmapped
// windows, including iconified ones in IconicState, are not managed.
func (wm *WM) scan() {
	tree, err := xproto.QueryTree(wm.conn, wm.root).Reply()
	if err != nil {
		return
	}
	for _, win := range tree.Children {
		attr, err := xproto.GetWindowAttributes(wm.conn, win).Reply()
		if err != nil || attr.OverrideRedirect {
			continue
		}
		if attr.MapState != xproto.MapStateUnmapped {
			if geom, err := xproto.GetGeometry(wm.conn, xproto.Drawable(win)).Reply(); err == nil {
				wm.manage(win, geom)
			}
		}
	}
}
