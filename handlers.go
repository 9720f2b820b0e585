package main

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// clickRegion identifies which part of the UI a button press landed
// on, so config.go's button table can bind different actions to the
// same button depending on where it was clicked. Mirrors dwm.c's Clk
// enum.
type clickRegion int

const (
	clickTagBar clickRegion = iota
	clickLayoutSymbol
	clickWinTitle
	clickStatusText
	clickClientWin
	clickRootWin
)

// eventTable dispatches decoded X events to their handler in O(1) by
// concrete event type, mirroring the fixed handler[] array dwm.c
// indexes by event opcode.
var eventTable = map[reflect.Type]func(*WM, xgb.Event){
	reflect.TypeOf(xproto.ButtonPressEvent{}):     func(wm *WM, e xgb.Event) { wm.onButtonPress(e.(xproto.ButtonPressEvent)) },
	reflect.TypeOf(xproto.ClientMessageEvent{}):   func(wm *WM, e xgb.Event) { wm.onClientMessage(e.(xproto.ClientMessageEvent)) },
	reflect.TypeOf(xproto.ConfigureRequestEvent{}): func(wm *WM, e xgb.Event) { wm.onConfigureRequest(e.(xproto.ConfigureRequestEvent)) },
	reflect.TypeOf(xproto.ConfigureNotifyEvent{}): func(wm *WM, e xgb.Event) { wm.onConfigureNotify(e.(xproto.ConfigureNotifyEvent)) },
	reflect.TypeOf(xproto.DestroyNotifyEvent{}):   func(wm *WM, e xgb.Event) { wm.onDestroyNotify(e.(xproto.DestroyNotifyEvent)) },
	reflect.TypeOf(xproto.EnterNotifyEvent{}):     func(wm *WM, e xgb.Event) { wm.onEnterNotify(e.(xproto.EnterNotifyEvent)) },
	reflect.TypeOf(xproto.ExposeEvent{}):          func(wm *WM, e xgb.Event) { wm.onExpose(e.(xproto.ExposeEvent)) },
	reflect.TypeOf(xproto.FocusInEvent{}):         func(wm *WM, e xgb.Event) { wm.onFocusIn(e.(xproto.FocusInEvent)) },
	reflect.TypeOf(xproto.KeyPressEvent{}):        func(wm *WM, e xgb.Event) { wm.onKeyPress(e.(xproto.KeyPressEvent)) },
	reflect.TypeOf(xproto.KeyReleaseEvent{}):      func(wm *WM, e xgb.Event) { wm.onKeyRelease(e.(xproto.KeyReleaseEvent)) },
	reflect.TypeOf(xproto.MappingNotifyEvent{}):   func(wm *WM, e xgb.Event) { wm.onMappingNotify(e.(xproto.MappingNotifyEvent)) },
	reflect.TypeOf(xproto.MapRequestEvent{}):      func(wm *WM, e xgb.Event) { wm.onMapRequest(e.(xproto.MapRequestEvent)) },
	reflect.TypeOf(xproto.MotionNotifyEvent{}):    func(wm *WM, e xgb.Event) { wm.onMotionNotify(e.(xproto.MotionNotifyEvent)) },
	reflect.TypeOf(xproto.PropertyNotifyEvent{}):  func(wm *WM, e xgb.Event) { wm.onPropertyNotify(e.(xproto.PropertyNotifyEvent)) },
	reflect.TypeOf(xproto.UnmapNotifyEvent{}):     func(wm *WM, e xgb.Event) { wm.onUnmapNotify(e.(xproto.UnmapNotifyEvent)) },
}

// dispatch looks up and runs the handler for ev, silently ignoring
// event types the table doesn't carry an entry for (SelectionClear,
// etc. - dwm.c's handler[] array does the same by leaving those slots
// null).
func (wm *WM) dispatch(ev xgb.Event) {
	if h, ok := eventTable[reflect.TypeOf(ev)]; ok {
		h(wm, ev)
	}
}

func (wm *WM) onButtonPress(ev xproto.ButtonPressEvent) {
	region := clickRootWin
	var c *Client
	if c = wm.clientForWindow(ev.Event); c != nil {
		region = clickClientWin
	} else if m := wm.winToMonitorBarOrTray(ev.Event); m != nil && ev.Event == m.barWindow {
		region = clickTagBar
	}
	if c != nil && c != wm.selmon.sel {
		wm.focus(c)
		wm.restack(wm.selmon)
	}
	if bb := wm.lookupButton(region, ev.State, ev.Detail); bb != nil {
		bb.fn(wm, bb.arg)
	}
	xproto.AllowEvents(wm.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime)
}

func (wm *WM) onClientMessage(ev xproto.ClientMessageEvent) {
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	if ev.Type == wm.atomNetWMState {
		data := ev.Data.Data32
		const (
			stateRemove = 0
			stateAdd    = 1
			stateToggle = 2
		)
		if xproto.Atom(data[1]) == wm.atomNetWMStateFullscreen || xproto.Atom(data[2]) == wm.atomNetWMStateFullscreen {
			want := data[0] == stateAdd || (data[0] == stateToggle && !c.isFullscreen)
			wm.setFullscreen(c, want)
		}
	} else if ev.Type == wm.atomNetActiveWindow {
		if c != wm.selmon.sel && !c.isUrgent {
			wm.setUrgent(c, true)
		}
	}
}

func (wm *WM) onConfigureRequest(ev xproto.ConfigureRequestEvent) {
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		values := []uint32{}
		mask := uint16(0)
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			values = append(values, uint32(ev.X))
			mask |= xproto.ConfigWindowX
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			values = append(values, uint32(ev.Y))
			mask |= xproto.ConfigWindowY
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			values = append(values, uint32(ev.Width))
			mask |= xproto.ConfigWindowWidth
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			values = append(values, uint32(ev.Height))
			mask |= xproto.ConfigWindowHeight
		}
		if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			values = append(values, uint32(ev.BorderWidth))
			mask |= xproto.ConfigWindowBorderWidth
		}
		if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
			values = append(values, uint32(ev.Sibling))
			mask |= xproto.ConfigWindowSibling
		}
		if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
			values = append(values, uint32(ev.StackMode))
			mask |= xproto.ConfigWindowStackMode
		}
		xproto.ConfigureWindow(wm.conn, ev.Window, mask, values)
		return
	}

	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		c.bw = int(ev.BorderWidth)
	}
	if c.isFloating {
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			c.x = c.mon.mx + int(ev.X)
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			c.y = c.mon.my + int(ev.Y)
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			c.w = int(ev.Width)
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			c.h = int(ev.Height)
		}
		m := c.mon
		if c.x+c.w > m.mx+m.mw {
			c.x = m.mx + (m.mw/2 - c.width()/2)
		}
		if c.y+c.h > m.my+m.mh {
			c.y = m.my + (m.mh/2 - c.height()/2)
		}
		wm.configureWindow(c)
	} else {
		wm.sendConfigureNotify(c)
	}
}

func (wm *WM) onConfigureNotify(ev xproto.ConfigureNotifyEvent) {
	if ev.Window != wm.root {
		return
	}
	if int(ev.Width) == wm.sw && int(ev.Height) == wm.sh {
		return
	}
	wm.sw, wm.sh = int(ev.Width), int(ev.Height)
	if wm.updateGeometry(wm.queryScreens()) {
		wm.focus(nil)
		wm.arrange(nil)
	}
}

func (wm *WM) onDestroyNotify(ev xproto.DestroyNotifyEvent) {
	if c := wm.clientForWindow(ev.Window); c != nil {
		wm.unmanage(c, true)
	}
}

func (wm *WM) onUnmapNotify(ev xproto.UnmapNotifyEvent) {
	if c := wm.clientForWindow(ev.Window); c != nil {
		wm.setClientState(c, icccmWithdrawnState)
	}
}

func (wm *WM) onEnterNotify(ev xproto.EnterNotifyEvent) {
	if ev.Mode != xproto.NotifyModeNormal && ev.Detail != xproto.NotifyDetailInferior {
		return
	}
	c := wm.clientForWindow(ev.Event)
	m := wm.selmon
	if c != nil {
		m = c.mon
	}
	if m != wm.selmon {
		wm.unfocus(wm.selmon.sel, true)
		wm.selmon = m
	} else if c == nil || c == wm.selmon.sel {
		return
	}
	wm.focus(c)
}

func (wm *WM) onExpose(ev xproto.ExposeEvent) {
	// The introspection surface (debugapi.go) replaces status-bar
	// redraws; no on-screen bar is drawn by this handler.
}

func (wm *WM) onFocusIn(ev xproto.FocusInEvent) {
	if wm.selmon.sel != nil && ev.Event != wm.selmon.sel.win {
		wm.setFocus(wm.selmon.sel)
	}
}

func (wm *WM) onKeyPress(ev xproto.KeyPressEvent) {
	if kb := wm.lookupKey(ev.State, ev.Detail); kb != nil {
		kb.fn(wm, kb.arg)
	}
}

func (wm *WM) onKeyRelease(ev xproto.KeyReleaseEvent) {
	sym := wm.keycodeToKeysym(ev.Detail)
	if sym == keysymAltL || sym == keysymAltR || sym == keysymControlL || sym == keysymControlR || sym == keysymShiftL || sym == keysymShiftR {
		wm.endCombo()
	}
}

func (wm *WM) onMappingNotify(ev xproto.MappingNotifyEvent) {
	if ev.Request == xproto.MappingModifier || ev.Request == xproto.MappingKeyboard {
		wm.updateNumlockMask()
		wm.grabKeys()
	}
}

func (wm *WM) onMapRequest(ev xproto.MapRequestEvent) {
	if wm.clientForWindow(ev.Window) != nil {
		return
	}
	attr, err := xproto.GetWindowAttributes(wm.conn, ev.Window).Reply()
	if err != nil || attr.OverrideRedirect {
		return
	}
	geom, err := xproto.GetGeometry(wm.conn, xproto.Drawable(ev.Window)).Reply()
	if err != nil {
		return
	}
	wm.manage(ev.Window, geom)
}

func (wm *WM) onMotionNotify(ev xproto.MotionNotifyEvent) {
	if ev.Event != wm.root {
		return
	}
	if m := rectToMonitor(int(ev.RootX), int(ev.RootY), 1, 1, wm.monitorList(), wm.selmon); m != wm.selmon {
		wm.unfocus(wm.selmon.sel, true)
		wm.selmon = m
		wm.focus(nil)
	}
}

func (wm *WM) onPropertyNotify(ev xproto.PropertyNotifyEvent) {
	if ev.Window == wm.root {
		return
	}
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	switch ev.Atom {
	case xproto.AtomWmHints:
		if hints, err := icccmWMHintsGet(wm.xu, c.win); err == nil {
			c.isUrgent = hints.Flags&hintUrgencyFlag != 0
		}
	case xproto.AtomWmNormalHints:
		c.hints = windowSizeHints(wm.xu, c.win)
		c.isFixed = c.hints.isFixed()
	case xproto.AtomWmName:
		c.name = windowTitle(wm.xu, c.win)
	default:
		if ev.Atom == wm.atomNetWMName {
			c.name = windowTitle(wm.xu, c.win)
		}
	}
}
