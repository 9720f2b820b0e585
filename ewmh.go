package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
)

// setupAtoms interns the handful of WM_* and _NET_* atoms this port
// compares against or writes directly (the remaining _NET_* properties
// go through xgbutil/ewmh's own cache) and publishes the EWMH "supported" list plus the small always-on
// check-window dance clients use to detect a compliant WM. Mirrors
// the atom block in dwm.c's setup().
func (wm *WM) setupAtoms() error {
	var err error
	if wm.atomWMProtocols, err = xprop.Atm(wm.xu, "WM_PROTOCOLS"); err != nil {
		return err
	}
	if wm.atomWMDelete, err = xprop.Atm(wm.xu, "WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if wm.atomWMState, err = xprop.Atm(wm.xu, "WM_STATE"); err != nil {
		return err
	}
	if wm.atomWMTakeFocus, err = xprop.Atm(wm.xu, "WM_TAKE_FOCUS"); err != nil {
		return err
	}
	if wm.atomNetActiveWindow, err = xprop.Atm(wm.xu, "_NET_ACTIVE_WINDOW"); err != nil {
		return err
	}
	if wm.atomNetWMState, err = xprop.Atm(wm.xu, "_NET_WM_STATE"); err != nil {
		return err
	}
	if wm.atomNetWMStateFullscreen, err = xprop.Atm(wm.xu, "_NET_WM_STATE_FULLSCREEN"); err != nil {
		return err
	}
	if wm.atomNetWMName, err = xprop.Atm(wm.xu, "_NET_WM_NAME"); err != nil {
		return err
	}

	ewmh.SupportedSet(wm.xu, []string{
		"_NET_ACTIVE_WINDOW",
		"_NET_SUPPORTED",
		"_NET_WM_NAME",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_WINDOW_TYPE",
		"_NET_WM_WINDOW_TYPE_DIALOG",
		"_NET_CLIENT_LIST",
	})
	ewmh.SupportingWmCheckSet(wm.xu, wm.root, wm.wmCheckWin)
	ewmh.SupportingWmCheckSet(wm.xu, wm.wmCheckWin, wm.wmCheckWin)
	ewmh.WmNameSet(wm.xu, wm.wmCheckWin, "dwm-go")
	return nil
}

// updateClientList rebuilds _NET_CLIENT_LIST from scratch across every
// monitor's arrangement list. dwm.c appends incrementally on manage()
// and simply deletes+rebuilds on unmanage(); this port always rebuilds,
// which is simpler and just as correct since the list is small.
func (wm *WM) updateClientList() {
	if wm.xu == nil {
		return
	}
	var wins []xproto.Window
	for m := wm.mons; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			wins = append(wins, c.win)
		}
	}
	ewmh.ClientListSet(wm.xu, wins)
}

// windowClassInstance reads WM_CLASS, returning (class, instance).
// Mirrors dwm.c's updatetitle/updatewindowtype's use of XGetClassHint.
func windowClassInstance(xu *xgbutil.XUtil, win xproto.Window) (class, instance string) {
	ch, err := icccm.WmClassGet(xu, win)
	if err != nil || ch == nil {
		return "", ""
	}
	return ch.Class, ch.Instance
}

// windowTitle resolves a window's title, preferring _NET_WM_NAME and
// falling back to WM_NAME. Mirrors dwm.c's updatetitle.
func windowTitle(xu *xgbutil.XUtil, win xproto.Window) string {
	if name, err := ewmh.WmNameGet(xu, win); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(xu, win); err == nil {
		return name
	}
	return "broken"
}

// windowSizeHints reads WM_NORMAL_HINTS and converts it to the
// decoupled sizeHints type used by the pure layout math in
// geometry.go. Mirrors dwm.c's updatesizehints.
func windowSizeHints(xu *xgbutil.XUtil, win xproto.Window) sizeHints {
	nh, err := icccm.WmNormalHintsGet(xu, win)
	if err != nil || nh == nil {
		return sizeHints{}
	}
	h := sizeHints{
		baseW: nh.BaseWidth, baseH: nh.BaseHeight,
		incW: nh.WidthInc, incH: nh.HeightInc,
		maxW: nh.MaxWidth, maxH: nh.MaxHeight,
		minW: nh.MinWidth, minH: nh.MinHeight,
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 && nh.MinAspect.Y != 0 && nh.MaxAspect.Y != 0 {
		h.minAspect = float64(nh.MinAspect.X) / float64(nh.MinAspect.Y)
		h.maxAspect = float64(nh.MaxAspect.X) / float64(nh.MaxAspect.Y)
	}
	if h.baseW == 0 && h.baseH == 0 && nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.baseW, h.baseH = nh.MinWidth, nh.MinHeight
	}
	return h
}

// icccmWMHintsGet/Set thinly wrap xgbutil/icccm's WM_HINTS accessors
// so fullscreen.go's setUrgent can round-trip the property without
// importing xgbutil directly.
func icccmWMHintsGet(xu *xgbutil.XUtil, win xproto.Window) (*icccm.Hints, error) {
	return icccm.WmHintsGet(xu, win)
}

func icccmWMHintsSet(xu *xgbutil.XUtil, win xproto.Window, hints *icccm.Hints) error {
	return icccm.WmHintsSet(xu, win, hints)
}

// hintUrgencyFlag is ICCCM's XUrgencyHint bit within WM_HINTS.flags.
const hintUrgencyFlag = 1 << 8

// setUrgencyFlag sets or clears the ICCCM urgency bit within a
// WM_HINTS flags word.
func setUrgencyFlag(flags int, urgent bool) int {
	if urgent {
		return flags | hintUrgencyFlag
	}
	return flags &^ hintUrgencyFlag
}

// sendClientMessage builds and sends a WM_PROTOCOLS ClientMessage
// naming protoName to win. Mirrors dwm.c's sendevent.
func (wm *WM) sendClientMessage(win xproto.Window, protoName string) bool {
	protoAtom, err := xprop.Atm(wm.xu, protoName)
	if err != nil {
		return false
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wm.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(protoAtom), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(wm.conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check() == nil
}

// sendConfigureNotify synthesizes a ConfigureNotify so clients that
// only react to synthetic events (rather than the real
// ConfigureWindow reply) observe in-place moves. Mirrors dwm.c's
// configure().
func (wm *WM) sendConfigureNotify(c *Client) {
	if wm.conn == nil {
		return
	}
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.win,
		Window:           c.win,
		X:                int16(c.x),
		Y:                int16(c.y),
		Width:            uint16(c.w),
		Height:           uint16(c.h),
		BorderWidth:      uint16(c.bw),
		OverrideRedirect: false,
	}
	xproto.SendEventChecked(wm.conn, false, c.win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}
