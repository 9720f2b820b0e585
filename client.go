package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Client wraps one managed top-level window, per spec.md §3 Data
// Model. Geometry fields mirror dwm.c's Client struct; oldX/oldY/
// oldW/oldH hold the pre-float/pre-fullscreen geometry used to
// restore state on toggle.
type Client struct {
	name string

	x, y, w, h          int
	oldX, oldY, oldW, oldH int
	bw, oldBW           int

	tags uint32

	isFixed, isFloating, isUrgent, neverFocus bool
	oldState                                  bool // floating state saved across fullscreen
	isFullscreen                              bool

	hints sizeHints

	mon *Monitor
	win xproto.Window

	next      *Client // arrangement-list link
	snext     *Client // focus-stack link
}

// isVisible reports whether c has at least one tag in common with its
// monitor's active tagset. Mirrors dwm.c's ISVISIBLE macro.
func (c *Client) isVisible() bool {
	return c.tags&c.mon.activeTagset() != 0
}

// width/height including border, mirroring dwm.c's WIDTH/HEIGHT macros.
func (c *Client) width() int  { return c.w + 2*c.bw }
func (c *Client) height() int { return c.h + 2*c.bw }

// attach inserts c at the head of its monitor's arrangement list.
// Mirrors dwm.c's attach.
func attach(c *Client) {
	c.next = c.mon.clients
	c.mon.clients = c
}

// detach removes c from its monitor's arrangement list.
// Mirrors dwm.c's detach.
func detach(c *Client) {
	pp := &c.mon.clients
	for *pp != nil {
		if *pp == c {
			*pp = c.next
			c.next = nil
			return
		}
		pp = &(*pp).next
	}
}

// attachStack inserts c at the head of its monitor's focus stack.
// Mirrors dwm.c's attachstack.
func attachStack(c *Client) {
	c.snext = c.mon.stack
	c.mon.stack = c
}

// detachStack removes c from its monitor's focus stack, and if c was
// the monitor's selected client, re-selects the topmost visible
// client left on the stack (nil when none is visible). Mirrors
// dwm.c's detachstack.
func detachStack(c *Client) {
	pp := &c.mon.stack
	for *pp != nil {
		if *pp == c {
			*pp = c.snext
			c.snext = nil
			break
		}
		pp = &(*pp).snext
	}

	if c.mon.sel == c {
		t := c.mon.stack
		for t != nil && !t.isVisible() {
			t = t.snext
		}
		c.mon.sel = t
	}
}

// nextTiled returns the next non-floating, visible client in the
// arrangement list starting at c (inclusive). Mirrors dwm.c's
// nexttiled.
func nextTiled(c *Client) *Client {
	for c != nil && (c.isFloating || !c.isVisible()) {
		c = c.next
	}
	return c
}

// clientCount returns the number of clients on m's arrangement list.
func (m *Monitor) clientCount() int {
	n := 0
	for c := m.clients; c != nil; c = c.next {
		n++
	}
	return n
}

// forEach walks the arrangement list.
func (m *Monitor) forEach(f func(*Client)) {
	for c := m.clients; c != nil; c = c.next {
		f(c)
	}
}

// applyRules matches class/instance/title substrings against the
// configured rule table and returns the tags/floating/monitor to
// apply, mirroring dwm.c's applyrules. class/instance/title are
// expected to already be resolved from WM_CLASS/WM_NAME (or
// _NET_WM_NAME) by the caller.
func applyRules(class, instance, title string) (tags uint32, floating bool, monitor int) {
	monitor = -1
	for _, r := range rules {
		if (r.title == "" || contains(title, r.title)) &&
			(r.class == "" || contains(class, r.class)) &&
			(r.instance == "" || contains(instance, r.instance)) {
			floating = r.floating
			tags |= r.tags
			if r.monitor >= 0 {
				monitor = r.monitor
			}
		}
	}
	return tags, floating, monitor
}

// contains reports whether substr occurs within s. Named separately
// from strings.Contains so applyRules reads like dwm.c's strstr
// chain.
func contains(s, substr string) bool {
	if substr == "" {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
