package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// focus sets c as the selected client on its monitor (or re-derives
// the top of the focus stack when c is nil), unfocusing whatever was
// previously focused first. Mirrors dwm.c's focus.
func (wm *WM) focus(c *Client) {
	if c == nil || !c.isVisible() {
		c = nil
		for t := wm.selmon.stack; t != nil; t = t.snext {
			if t.isVisible() {
				c = t
				break
			}
		}
	}
	if wm.selmon.sel != nil && wm.selmon.sel != c {
		wm.unfocus(wm.selmon.sel, false)
	}
	if c != nil {
		if c.mon != wm.selmon {
			wm.selmon = c.mon
		}
		if c.isUrgent {
			wm.setUrgent(c, false)
		}
		detachStack(c)
		attachStack(c)
		wm.grabButtonsFor(c, true)
		wm.setBorder(c, true)
		wm.setFocus(c)
	} else {
		wm.setInputFocus(wm.root)
		wm.deletePropActiveWindow()
	}
	wm.selmon.sel = c
}

// unfocus removes input focus from c, reverting its border color and
// ungrabbing its buttons. When setfocus is true the root window is
// refocused immediately (used when switching monitors or sending c
// to another monitor); callers that are about to focus something else
// pass false. Mirrors dwm.c's unfocus.
func (wm *WM) unfocus(c *Client, setfocus bool) {
	if c == nil {
		return
	}
	wm.grabButtonsFor(c, false)
	wm.setBorder(c, false)
	if setfocus {
		wm.setInputFocus(wm.root)
		wm.deletePropActiveWindow()
	}
}

// setFocus sets the X input focus and the _NET_ACTIVE_WINDOW property
// to c unless c has the neverFocus hint, and also sends ICCCM
// WM_TAKE_FOCUS when c participates in that protocol. Mirrors dwm.c's
// setfocus.
func (wm *WM) setFocus(c *Client) {
	if !c.neverFocus {
		wm.setInputFocus(c.win)
		if wm.xu != nil {
			ewmh.ActiveWindowSet(wm.xu, c.win)
		}
	}
	wm.sendProtocolMessage(c, "WM_TAKE_FOCUS")
}

func (wm *WM) setInputFocus(w xproto.Window) {
	if wm.conn == nil {
		return
	}
	xproto.SetInputFocus(wm.conn, xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime)
}

func (wm *WM) deletePropActiveWindow() {
	if wm.xu == nil {
		return
	}
	xproto.DeleteProperty(wm.conn, wm.root, wm.atomNetActiveWindow)
}

// sendProtocolMessage sends a ClientMessage naming protoName on
// WM_PROTOCOLS to c, provided c advertises support for it via
// WM_PROTOCOLS. Mirrors dwm.c's sendevent.
func (wm *WM) sendProtocolMessage(c *Client, protoName string) bool {
	if wm.xu == nil {
		return false
	}
	protocols, err := icccm.WmProtocolsGet(wm.xu, c.win)
	if err != nil {
		return false
	}
	supported := false
	for _, p := range protocols {
		if p == protoName {
			supported = true
			break
		}
	}
	if !supported {
		return false
	}
	return wm.sendClientMessage(c.win, protoName)
}

// zoom promotes the selected client to the master slot (or, if it is
// already the master, swaps it with the next tiled client). Mirrors
// dwm.c's zoom.
func (wm *WM) cmdZoom(a arg) error {
	c := wm.selmon.sel
	if c == nil || c.isFloating {
		return nil
	}
	if c == nextTiled(wm.selmon.clients) {
		c = nextTiled(c.next)
		if c == nil {
			return nil
		}
	}
	wm.pop(c)
	return nil
}

// pop moves c to the head of the arrangement list, focuses it, and
// rearranges. Mirrors dwm.c's pop.
func (wm *WM) pop(c *Client) {
	detach(c)
	attach(c)
	wm.focus(c)
	wm.arrange(c.mon)
}

// cmdFocusStack moves focus forward (a.i > 0) or backward (a.i < 0)
// through the visible clients in arrangement-list order, wrapping
// around at either end, as dwm.c's focusstack does. It does nothing
// while the selected client is fullscreen.
func (wm *WM) cmdFocusStack(a arg) error {
	m := wm.selmon
	if m.sel == nil {
		return nil
	}
	if m.sel.isFullscreen {
		return nil
	}

	var clients []*Client
	for c := m.clients; c != nil; c = c.next {
		if c.isVisible() {
			clients = append(clients, c)
		}
	}
	if len(clients) == 0 {
		return nil
	}
	idx := -1
	for i, c := range clients {
		if c == m.sel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	var next *Client
	if a.i > 0 {
		next = clients[(idx+1)%len(clients)]
	} else {
		next = clients[(idx-1+len(clients))%len(clients)]
	}
	wm.focus(next)
	wm.restack(m)
	return nil
}

// restack raises the selected client when it is floating, stacks the
// visible tiled clients in focus-stack order, and then drains pending
// EnterNotify events. Mirrors dwm.c's restack.
func (wm *WM) restack(m *Monitor) {
	if wm.conn == nil {
		return
	}
	if m.sel == nil {
		return
	}
	if m.sel.isFloating {
		xproto.ConfigureWindow(wm.conn, m.sel.win, uint16(xproto.ConfigWindowStackMode), []uint32{uint32(xproto.StackModeAbove)})
	}
	prev := xproto.WindowNone
	for c := m.stack; c != nil; c = c.snext {
		if !c.isFloating && c.isVisible() {
			if prev != xproto.WindowNone {
				xproto.ConfigureWindow(wm.conn, c.win, uint16(xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode),
					[]uint32{uint32(prev), uint32(xproto.StackModeBelow)})
			}
			prev = c.win
		}
	}

	wm.drainEnterNotify()
}

// drainEnterNotify forces a round-trip to flush the ConfigureWindow
// requests above, then discards any EnterNotify events that crossing
// clients generated as a result, so the stacking change doesn't
// spuriously steal focus via onEnterNotify. Mirrors dwm.c's
// restack(), which follows XSync with XCheckMaskEvent(dpy,
// EnterWindowMask, &ev) in a loop.
func (wm *WM) drainEnterNotify() {
	xproto.GetInputFocus(wm.conn).Reply()
	for {
		ev, xerr := wm.conn.PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			wm.handleXError(xerr)
			continue
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); !ok {
			wm.dispatch(ev)
		}
	}
}

// cmdFocusMon switches the selected monitor to the next/previous one
// in the ring (a.i > 0 forward). Mirrors dwm.c's focusmon.
func (wm *WM) cmdFocusMon(a arg) error {
	mons := wm.monitorList()
	if len(mons) < 2 {
		return nil
	}
	idx := 0
	for i, m := range mons {
		if m == wm.selmon {
			idx = i
			break
		}
	}
	var next *Monitor
	if a.i > 0 {
		next = mons[(idx+1)%len(mons)]
	} else {
		next = mons[(idx-1+len(mons))%len(mons)]
	}
	if next == wm.selmon {
		return nil
	}
	wm.unfocus(wm.selmon.sel, true)
	wm.selmon = next
	wm.focus(nil)
	return nil
}

// cmdTagMon moves the selected client to the next/previous monitor.
// Mirrors dwm.c's tagmon.
func (wm *WM) cmdTagMon(a arg) error {
	c := wm.selmon.sel
	if c == nil {
		return nil
	}
	mons := wm.monitorList()
	if len(mons) < 2 {
		return nil
	}
	idx := 0
	for i, m := range mons {
		if m == wm.selmon {
			idx = i
			break
		}
	}
	var dst *Monitor
	if a.i > 0 {
		dst = mons[(idx+1)%len(mons)]
	} else {
		dst = mons[(idx-1+len(mons))%len(mons)]
	}
	if dst == c.mon {
		return nil
	}
	wm.sendToMonitor(c, dst)
	return nil
}

// sendToMonitor detaches c from its current monitor and re-attaches
// it to dst, keeping its tag mask. Mirrors dwm.c's sendmon.
func (wm *WM) sendToMonitor(c *Client, dst *Monitor) {
	if c.mon == dst {
		return
	}
	wm.unfocus(c, true)
	detach(c)
	detachStack(c)
	c.mon = dst
	attach(c)
	attachStack(c)
	wm.focus(nil)
	wm.arrange(nil)
}

// cmdKillClient politely asks the focused client to close via
// WM_DELETE_WINDOW, falling back to an X kill when it doesn't
// participate in that protocol. Mirrors dwm.c's killclient.
func (wm *WM) cmdKillClient(a arg) error {
	c := wm.selmon.sel
	if c == nil {
		return nil
	}
	if !wm.sendProtocolMessage(c, "WM_DELETE_WINDOW") {
		xproto.KillClient(wm.conn, uint32(c.win))
	}
	return nil
}

// cmdQuit requests a graceful shutdown of the run loop.
func (wm *WM) cmdQuit(a arg) error {
	wm.running = false
	return nil
}
