package main

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// WM holds every piece of global state the window manager needs:
// the X connection, the monitor/client registry, the resolved
// binding tables, and the handful of atoms looked up once at
// startup. There is exactly one WM per process, created by main.go
// and threaded through every handler as a method receiver - mirroring
// dwm.c's reliance on file-scope globals, made explicit instead of
// implicit.
type WM struct {
	conn *xgb.Conn
	xu   *xgbutil.XUtil
	log  *slog.Logger

	root       xproto.Window
	wmCheckWin xproto.Window
	screen     *xproto.ScreenInfo

	sw, sh int

	mons   *Monitor
	selmon *Monitor

	running     bool
	numlockMask uint16
	combo       comboState

	keyTable    []keyBinding
	buttonTable []buttonBinding

	cursorNormal, cursorMove, cursorResize xproto.Cursor

	atomWMProtocols          xproto.Atom
	atomWMDelete             xproto.Atom
	atomWMState              xproto.Atom
	atomWMTakeFocus          xproto.Atom
	atomNetActiveWindow      xproto.Atom
	atomNetWMState           xproto.Atom
	atomNetWMStateFullscreen xproto.Atom
	atomNetWMName            xproto.Atom

	clients map[xproto.Window]*Client
}

func newWM() *WM {
	return &WM{
		keyTable:    keys(),
		buttonTable: buttons(),
		clients:     make(map[xproto.Window]*Client),
		running:     true,
	}
}

func (wm *WM) registerClient(c *Client) {
	wm.clients[c.win] = c
}

func (wm *WM) unregisterClient(c *Client) {
	delete(wm.clients, c.win)
}

func (wm *WM) clientForWindow(w xproto.Window) *Client {
	return wm.clients[w]
}

func (wm *WM) monitorByNum(n int) *Monitor {
	for m := wm.mons; m != nil; m = m.next {
		if m.num == n {
			return m
		}
	}
	return nil
}

// queryScreens asks Xinerama for the current screen layout, returning
// nil when the extension isn't active (the caller then falls back to
// a single full-root monitor). Mirrors dwm.c's updategeom Xinerama
// branch guarded by XineramaIsActive.
func (wm *WM) queryScreens() []xinerama.ScreenInfo {
	if err := xinerama.Init(wm.conn); err != nil {
		return nil
	}
	active, err := xinerama.IsActive(wm.conn).Reply()
	if err != nil || active == nil || active.State == 0 {
		return nil
	}
	reply, err := xinerama.QueryScreens(wm.conn).Reply()
	if err != nil {
		return nil
	}
	return reply.ScreenInfo
}

// setup establishes the X connection, checks for a competing WM,
// interns atoms, builds the cursor set, discovers monitors, publishes
// the root window's event mask, and installs key grabs (button grabs
// are installed per client by grabButtonsFor).
// Mirrors dwm.c's checkotherwm + setup.
func (wm *WM) setup() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X: %w", err)
	}
	wm.conn = conn

	setup := xproto.Setup(conn)
	wm.screen = setup.DefaultScreen(conn)
	wm.root = wm.screen.Root
	wm.sw = int(wm.screen.WidthInPixels)
	wm.sh = int(wm.screen.HeightInPixels)

	if err := wm.checkOtherWM(); err != nil {
		return err
	}

	xu, err := xgbutil.NewConnXgb(conn)
	if err != nil {
		return fmt.Errorf("wrap xgbutil: %w", err)
	}
	wm.xu = xu

	wm.wmCheckWin, err = xproto.NewWindowId(conn)
	if err != nil {
		return err
	}
	xproto.CreateWindow(conn, wm.screen.RootDepth, wm.wmCheckWin, wm.root,
		-1, -1, 1, 1, 0, xproto.WindowClassInputOnly, wm.screen.RootVisual, 0, nil)

	if err := wm.setupAtoms(); err != nil {
		return fmt.Errorf("intern atoms: %w", err)
	}
	if err := wm.setupCursors(); err != nil {
		return fmt.Errorf("create cursors: %w", err)
	}

	wm.updateGeometry(wm.queryScreens())
	wm.selmon = wm.mons

	xproto.ChangeWindowAttributes(conn, wm.root, xproto.CwEventMask|xproto.CwCursor, []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
			xproto.EventMaskEnterWindow | xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange),
		uint32(wm.cursorNormal),
	})

	wm.updateNumlockMask()
	wm.grabKeys()

	wm.log.Info("window manager initialized", "screen_w", wm.sw, "screen_h", wm.sh)
	return nil
}

// checkOtherWM attempts to select SubstructureRedirect on the root
// window; a BadAccess error there means another window manager
// already owns it, which is the one X error this port treats as
// fatal at startup. Mirrors dwm.c's checkotherwm.
func (wm *WM) checkOtherWM() error {
	cookie := xproto.ChangeWindowAttributesChecked(wm.conn, wm.root, xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskSubstructureRedirect)})
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("another window manager is already running: %w", err)
	}
	return nil
}

// cleanup unmanages every client, releases grabs, and destroys the
// check window, giving well-behaved clients their withdrawn state
// back before the connection closes. Mirrors dwm.c's cleanup.
func (wm *WM) cleanup() {
	for m := wm.mons; m != nil; m = m.next {
		for m.stack != nil {
			wm.unmanage(m.stack, false)
		}
	}
	xproto.UngrabKey(wm.conn, xproto.GrabAny, wm.root, xproto.ModMaskAny)
	if wm.wmCheckWin != 0 {
		xproto.DestroyWindow(wm.conn, wm.wmCheckWin)
	}
	if wm.conn != nil {
		wm.conn.Close()
	}
}

// run pumps the X event queue until a quit is requested or the
// connection breaks. Mirrors dwm.c's run.
func (wm *WM) run() {
	for wm.running {
		ev, xerr := wm.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			wm.log.Error("X connection closed")
			return
		}
		if xerr != nil {
			wm.handleXError(xerr)
			continue
		}
		wm.dispatch(ev)
	}
}
