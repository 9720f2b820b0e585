package main

import (
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents one unique screen rectangle, per spec.md §3.
type Monitor struct {
	num int

	mx, my, mw, mh int // screen rectangle
	wx, wy, ww, wh int // work area (screen minus bar)

	by, bh    int           // bar rectangle (y offset, height); 0 when no bar attached
	barWindow xproto.Window // externally owned, 0 when absent
	trayWindow xproto.Window // externally owned, 0 when absent

	mfact   float64
	nmaster int
	gappx   int

	tagset   [2]uint32 // dual tagsets
	selTags  int       // selector: 0 or 1

	clients *Client // arrangement list head
	stack   *Client // focus stack head
	sel     *Client // currently selected client, may be nil

	next *Monitor
}

// screen returns the monitor's full screen rectangle.
func (m *Monitor) screen() Rect {
	return Rect{X: m.mx, Y: m.my, W: m.mw, H: m.mh}
}

// workArea returns the monitor's work-area rectangle.
func (m *Monitor) workArea() Rect {
	return Rect{X: m.wx, Y: m.wy, W: m.ww, H: m.wh}
}

// activeTagset returns the currently visible tagset bitmask.
func (m *Monitor) activeTagset() uint32 {
	return m.tagset[m.selTags]
}

func createMonitor() *Monitor {
	return &Monitor{
		mfact:   mfact,
		nmaster: nmaster,
		gappx:   gappx,
		tagset:  [2]uint32{1, 1},
	}
}

// updateBarPos recomputes the work area from the screen rectangle and
// the bar band, matching dwm.c's updatebarpos (bar always occupies
// the top edge in this port; dwm itself supports top/bottom via a
// separate flag omitted here since spec.md does not distinguish it).
func (m *Monitor) updateBarPos() {
	m.wy = m.my
	m.wh = m.mh
	m.wx = m.mx
	m.ww = m.mw
	if m.bh > 0 {
		m.wh -= m.bh
		m.by = m.my
		m.wy = m.my + m.bh
	} else {
		m.by = -m.bh
	}
}

// isUniqueGeometry reports whether info's rectangle is not already
// present in unique, mirroring dwm.c's isuniquegeom.
func isUniqueGeometry(unique []xinerama.ScreenInfo, info xinerama.ScreenInfo) bool {
	for _, u := range unique {
		if u.XOrg == info.XOrg && u.YOrg == info.YOrg && u.Width == info.Width && u.Height == info.Height {
			return false
		}
	}
	return true
}

// updateGeometry re-runs monitor discovery from the current Xinerama
// screen list (or a single full-display default when Xinerama is
// unavailable), deduplicating identical rectangles, growing or
// shrinking the monitor list, and migrating clients off any removed
// monitor onto the head monitor. Mirrors dwm.c's updategeom.
func (wm *WM) updateGeometry(screens []xinerama.ScreenInfo) bool {
	dirty := false

	if len(screens) > 0 {
		var unique []xinerama.ScreenInfo
		for _, s := range screens {
			if isUniqueGeometry(unique, s) {
				unique = append(unique, s)
			}
		}

		existing := wm.monitorList()
		n := len(existing)
		nn := len(unique)

		if n <= nn {
			for i := 0; i < nn-n; i++ {
				wm.appendMonitor(createMonitor())
			}
			mons := wm.monitorList()
			for i := 0; i < nn && i < len(mons); i++ {
				m := mons[i]
				u := unique[i]
				if i >= n || int(u.XOrg) != m.mx || int(u.YOrg) != m.my || int(u.Width) != m.mw || int(u.Height) != m.mh {
					dirty = true
					m.num = i
					m.mx, m.my = int(u.XOrg), int(u.YOrg)
					m.mw, m.mh = int(u.Width), int(u.Height)
					m.updateBarPos()
				}
			}
		} else {
			mons := wm.monitorList()
			for i := nn; i < n; i++ {
				m := mons[len(mons)-1]
				wm.migrateClients(m, mons[0])
				dirty = true
				wm.removeMonitor(m)
				mons = wm.monitorList()
			}
		}
	} else {
		if wm.mons == nil {
			wm.appendMonitor(createMonitor())
		}
		m := wm.mons
		if m.mw != wm.sw || m.mh != wm.sh {
			dirty = true
			m.mx, m.my = 0, 0
			m.mw, m.mh = wm.sw, wm.sh
			m.updateBarPos()
		}
	}

	if dirty {
		wm.selmon = wm.mons
	}
	return dirty
}

func (wm *WM) monitorList() []*Monitor {
	var out []*Monitor
	for m := wm.mons; m != nil; m = m.next {
		out = append(out, m)
	}
	return out
}

func (wm *WM) appendMonitor(m *Monitor) {
	if wm.mons == nil {
		wm.mons = m
		return
	}
	last := wm.mons
	for last.next != nil {
		last = last.next
	}
	last.next = m
}

func (wm *WM) removeMonitor(target *Monitor) {
	if wm.mons == target {
		wm.mons = target.next
		return
	}
	for m := wm.mons; m != nil; m = m.next {
		if m.next == target {
			m.next = target.next
			return
		}
	}
}

// migrateClients reassigns every client of src onto dst, preserving
// each client's tag bitmask. Mirrors the client-migration loop inside
// dwm.c's updategeom "less monitors available" branch.
func (wm *WM) migrateClients(src, dst *Monitor) {
	for src.clients != nil {
		c := src.clients
		src.clients = c.next
		detachStack(c)
		c.mon = dst
		attach(c)
		attachStack(c)
	}
	if wm.selmon == src {
		wm.selmon = dst
	}
}

// winToMonitor maps a bar/tray window to its owning monitor.
func (wm *WM) winToMonitorBarOrTray(w xproto.Window) *Monitor {
	for m := wm.mons; m != nil; m = m.next {
		if w == m.barWindow || w == m.trayWindow {
			return m
		}
	}
	return nil
}
