package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// updateNumlockMask discovers which modifier bit the server maps
// Num_Lock to, so grabKeys/grabButtonsFor can grab all four
// lock-key combinations dwm.c grabs (mirrors updatenumlockmask).
func (wm *WM) updateNumlockMask() {
	wm.numlockMask = 0
	modmap, err := xproto.GetModifierMapping(wm.conn).Reply()
	if err != nil {
		return
	}
	numlockSyms := keybind.KeysymToKeycodes(wm.xu, 0xff7f) // XK_Num_Lock
	perModifier := int(modmap.KeycodesPerModifier)
	for i := 0; i < 8; i++ {
		for j := 0; j < perModifier; j++ {
			kc := modmap.Keycodes[i*perModifier+j]
			for _, nk := range numlockSyms {
				if kc == nk {
					wm.numlockMask = 1 << uint(i)
				}
			}
		}
	}
}

// ignoreModCombos returns the four modifier masks dwm.c grabs for
// every binding, covering every combination of Num_Lock and
// Lock(Caps_Lock) being engaged.
func (wm *WM) ignoreModCombos(base uint16) []uint16 {
	lock := uint16(xproto.ModMaskLock)
	num := uint16(wm.numlockMask)
	return []uint16{base, base | lock, base | num, base | lock | num}
}

// grabKeys ungrabs any existing key grabs on the root window and
// reinstalls one grab per (modifier-combo, keycode) pair in the
// configured binding table. Mirrors dwm.c's grabkeys.
func (wm *WM) grabKeys() {
	if wm.conn == nil {
		return
	}
	xproto.UngrabKey(wm.conn, xproto.GrabAny, wm.root, xproto.ModMaskAny)
	for _, kb := range wm.keyTable {
		codes := keybind.KeysymToKeycodes(wm.xu, kb.sym)
		for _, code := range codes {
			for _, mods := range wm.ignoreModCombos(kb.mod) {
				xproto.GrabKey(wm.conn, true, wm.root, mods, code,
					xproto.GrabModeAsync, xproto.GrabModeAsync)
			}
		}
	}
}

// grabButtonsFor installs the click bindings on c's window, either as
// the minimal "any button" grab used while unfocused (so clicking a
// background window can still raise/focus it) or the client-window
// entries of the button table when c is the focused client. Mirrors
// dwm.c's grabbuttons.
func (wm *WM) grabButtonsFor(c *Client, focused bool) {
	if wm.conn == nil {
		return
	}
	xproto.UngrabButton(wm.conn, xproto.ButtonIndexAny, c.win, xproto.ModMaskAny)
	if !focused {
		xproto.GrabButton(wm.conn, false, c.win,
			uint16(xproto.EventMaskButtonPress),
			xproto.GrabModeSync, xproto.GrabModeSync,
			xproto.WindowNone, xproto.CursorNone,
			xproto.ButtonIndexAny, xproto.ModMaskAny)
		return
	}
	for _, bb := range wm.buttonTable {
		if bb.region != clickClientWin {
			continue
		}
		for _, mods := range wm.ignoreModCombos(bb.mod) {
			xproto.GrabButton(wm.conn, false, c.win,
				uint16(xproto.EventMaskButtonPress),
				xproto.GrabModeAsync, xproto.GrabModeSync,
				xproto.WindowNone, xproto.CursorNone,
				byte(bb.button), mods)
		}
	}
}

// cleanMask strips the numlock bit and Lock modifier, normalizing a
// raw event modifier state the same way dwm.c's CLEANMASK does
// before comparing against the binding tables.
func (wm *WM) cleanMask(mod uint16) uint16 {
	return mod &^ (uint16(wm.numlockMask) | xproto.ModMaskLock) & 0xff
}

// lookupKey finds the binding matching a KeyPress's (cleaned modifier,
// keycode) pair, resolving the keycode back to its keysym via
// xgbutil/keybind.
func (wm *WM) lookupKey(mod uint16, keycode xproto.Keycode) *keyBinding {
	sym := keybind.KeycodeToKeysym(wm.xu, keycode, 0)
	clean := wm.cleanMask(mod)
	for i := range wm.keyTable {
		kb := &wm.keyTable[i]
		if kb.sym == sym && wm.cleanMask(kb.mod) == clean {
			return kb
		}
	}
	return nil
}

// keycodeToKeysym resolves a raw KeyPress/KeyRelease keycode to its
// unshifted keysym, used when matching against modifier-key keysyms
// (the combo-release check) rather than the full binding table.
func (wm *WM) keycodeToKeysym(code xproto.Keycode) uint32 {
	return keybind.KeycodeToKeysym(wm.xu, code, 0)
}

// lookupButton finds the binding matching a ButtonPress in the given
// click region.
func (wm *WM) lookupButton(region clickRegion, mod uint16, button xproto.Button) *buttonBinding {
	clean := wm.cleanMask(mod)
	for i := range wm.buttonTable {
		bb := &wm.buttonTable[i]
		if bb.region == region && byte(button) == bb.button && wm.cleanMask(bb.mod) == clean {
			return bb
		}
	}
	return nil
}
