package main

import (
	"github.com/BurntSushi/xgbutil/xcursor"
)

// setupCursors creates the three cursor glyphs dwm.c switches between:
// the idle root cursor and the two shown during interactive move and
// resize. Adapted from the teacher's cursor-creation block, trimmed
// of the font/text drawing that accompanied it there.
func (wm *WM) setupCursors() error {
	var err error
	wm.cursorNormal, err = xcursor.CreateCursor(wm.xu, xcursor.LeftPtr)
	if err != nil {
		return err
	}
	wm.cursorMove, err = xcursor.CreateCursor(wm.xu, xcursor.Fleur)
	if err != nil {
		return err
	}
	wm.cursorResize, err = xcursor.CreateCursor(wm.xu, xcursor.Sizing)
	return err
}
