package main

import "testing"

func newTestMonitor(nmaster int, mfact float64, gap int, wa Rect) *Monitor {
	m := &Monitor{nmaster: nmaster, mfact: mfact, gappx: gap, tagset: [2]uint32{1, 1}}
	m.mx, m.my, m.mw, m.mh = wa.X, wa.Y, wa.W, wa.H
	m.wx, m.wy, m.ww, m.wh = wa.X, wa.Y, wa.W, wa.H
	return m
}

func attachTiled(m *Monitor, bw int) *Client {
	c := &Client{mon: m, bw: bw, tags: 1}
	attach(c)
	return c
}

func TestTileMasterAndStackGeometry(t *testing.T) {
	wm := &WM{sw: 800, sh: 600}
	m := newTestMonitor(1, 0.5, 10, Rect{0, 0, 800, 600})

	c0 := attachTiled(m, 1)
	c1 := attachTiled(m, 1)
	c2 := attachTiled(m, 1)
	_ = c0
	_ = c1
	_ = c2
	// attach() pushes to the head, so the arrangement list is now c2, c1, c0.

	wm.tile(m)

	master := nextTiled(m.clients)
	if master != c2 {
		t.Fatalf("expected the most recently attached client (c2) in the master slot, got %p want %p", master, c2)
	}
	if master.x != 10 || master.y != 10 || master.w != 383 || master.h != 578 {
		t.Errorf("master geometry = (%d,%d,%d,%d), want (10,10,383,578)", master.x, master.y, master.w, master.h)
	}

	s1 := nextTiled(master.next)
	if s1.x != 405 || s1.y != 10 || s1.w != 383 || s1.h != 283 {
		t.Errorf("first stack client geometry = (%d,%d,%d,%d), want (405,10,383,283)", s1.x, s1.y, s1.w, s1.h)
	}

	s2 := nextTiled(s1.next)
	if s2.x != 405 || s2.y != 305 || s2.w != 383 || s2.h != 283 {
		t.Errorf("second stack client geometry = (%d,%d,%d,%d), want (405,305,383,283)", s2.x, s2.y, s2.w, s2.h)
	}
}

func TestTileAllMasterLeavesGapOnBothEdges(t *testing.T) {
	wm := &WM{sw: 800, sh: 600}
	m := newTestMonitor(2, 0.5, 10, Rect{0, 0, 800, 600})

	c0 := attachTiled(m, 1)
	c1 := attachTiled(m, 1)
	// attach() pushes to the head, so the arrangement list is c1, c0.

	wm.tile(m)

	for _, c := range []*Client{c0, c1} {
		right := c.x + c.w + 2*c.bw
		if right != 790 {
			t.Errorf("master-only client right edge = %d, want 790 (wx+ww-gappx = 800-10)", right)
		}
		if c.x != 10 {
			t.Errorf("master-only client left edge = %d, want 10 (gap)", c.x)
		}
	}
	if c1.y != 10 || c1.h != 283 {
		t.Errorf("first master client geometry y,h = (%d,%d), want (10,283)", c1.y, c1.h)
	}
	if c0.y != 305 || c0.h != 283 {
		t.Errorf("second master client geometry y,h = (%d,%d), want (305,283)", c0.y, c0.h)
	}
}

func TestTileSkipsFloatingClients(t *testing.T) {
	wm := &WM{sw: 800, sh: 600}
	m := newTestMonitor(1, 0.5, 10, Rect{0, 0, 800, 600})

	master := attachTiled(m, 1)
	floater := attachTiled(m, 1)
	floater.isFloating = true
	origX, origY := floater.x, floater.y

	wm.tile(m)

	if floater.x != origX || floater.y != origY {
		t.Errorf("tile() moved a floating client: got (%d,%d), want unchanged (%d,%d)", floater.x, floater.y, origX, origY)
	}
	if nextTiled(m.clients) != master {
		t.Errorf("nextTiled should skip the floating client and land on the only tiled one")
	}
}

func TestTileSkipsInvisibleClients(t *testing.T) {
	wm := &WM{sw: 800, sh: 600}
	m := newTestMonitor(1, 0.5, 10, Rect{0, 0, 800, 600})
	m.tagset[m.selTags] = 1

	visible := attachTiled(m, 1)
	hidden := attachTiled(m, 1)
	hidden.tags = 2 // not in the active tagset
	origX, origY := hidden.x, hidden.y

	wm.tile(m)

	if hidden.x != origX || hidden.y != origY {
		t.Errorf("tile() moved a client not on the active tagset")
	}
	if nextTiled(m.clients) != visible {
		t.Errorf("nextTiled should land on the only visible client")
	}
}

func TestNextTiledEmptyList(t *testing.T) {
	if got := nextTiled(nil); got != nil {
		t.Errorf("nextTiled(nil) = %v, want nil", got)
	}
}
