package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// handleXError classifies an asynchronous X protocol error the way
// dwm.c's xerror does: BadWindow/BadMatch/BadDrawable are expected
// whenever a window disappears mid-request (closed between a query
// and a follow-up call) and are swallowed silently; anything else is
// logged but never fatal, since by this point in the run loop
// checkOtherWM has already ruled out the one error (BadAccess while
// selecting SubstructureRedirect) this port treats as a startup
// failure.
func (wm *WM) handleXError(err error) {
	switch err.(type) {
	case xproto.WindowError, xproto.MatchError, xproto.DrawableError:
		return
	case xproto.AccessError:
		wm.log.Debug("ignored X BadAccess (likely a racing grab)", "err", err)
	case xproto.ValueError:
		wm.log.Debug("ignored X BadValue", "err", err)
	default:
		wm.log.Warn("X protocol error", "err", err)
	}
}
