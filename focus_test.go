package main

import "testing"

func newTestWM() *WM {
	wm := newWM()
	m := createMonitor()
	m.tagset = [2]uint32{1, 1}
	wm.mons = m
	wm.selmon = m
	return wm
}

func TestCmdFocusStackWrapsAround(t *testing.T) {
	wm := newTestWM()
	m := wm.selmon
	a := &Client{mon: m, tags: 1, win: 1}
	b := &Client{mon: m, tags: 1, win: 2}
	c := &Client{mon: m, tags: 1, win: 3}
	attach(a)
	attach(b)
	attach(c)
	attachStack(a)
	attachStack(b)
	attachStack(c)
	wm.registerClient(a)
	wm.registerClient(b)
	wm.registerClient(c)
	m.sel = c // arrangement list is c, b, a (head to tail)

	if err := wm.cmdFocusStack(arg{i: 1}); err != nil {
		t.Fatalf("cmdFocusStack: %v", err)
	}
	if m.sel != b {
		t.Fatalf("focusstack(+1) from c should land on b, got window %v", m.sel.win)
	}

	if err := wm.cmdFocusStack(arg{i: 1}); err != nil {
		t.Fatalf("cmdFocusStack: %v", err)
	}
	if m.sel != a {
		t.Fatalf("focusstack(+1) from b should land on a, got window %v", m.sel.win)
	}

	if err := wm.cmdFocusStack(arg{i: 1}); err != nil {
		t.Fatalf("cmdFocusStack: %v", err)
	}
	if m.sel != c {
		t.Fatalf("focusstack(+1) from a should wrap around to c, got window %v", m.sel.win)
	}
}

func TestCmdZoomPromotesToMaster(t *testing.T) {
	wm := newTestWM()
	m := wm.selmon
	a := &Client{mon: m, tags: 1, win: 1}
	b := &Client{mon: m, tags: 1, win: 2}
	attach(a) // list: a
	attach(b) // list: b, a
	attachStack(a)
	attachStack(b)
	m.sel = a // a is second in the arrangement list (the stack slot)

	if err := wm.cmdZoom(arg{}); err != nil {
		t.Fatalf("cmdZoom: %v", err)
	}
	if nextTiled(m.clients) != a {
		t.Fatalf("zoom should promote the selected non-master client to the head of the arrangement list")
	}
}

func TestCmdZoomOnMasterSwapsWithNext(t *testing.T) {
	wm := newTestWM()
	m := wm.selmon
	a := &Client{mon: m, tags: 1, win: 1}
	b := &Client{mon: m, tags: 1, win: 2}
	attach(a)
	attach(b) // list: b, a -- b is master
	attachStack(a)
	attachStack(b)
	m.sel = b

	if err := wm.cmdZoom(arg{}); err != nil {
		t.Fatalf("cmdZoom: %v", err)
	}
	if nextTiled(m.clients) != a {
		t.Fatalf("zooming the master client should swap it with the next tiled client")
	}
}

func TestCmdFocusStackIgnoresFullscreenSelection(t *testing.T) {
	wm := newTestWM()
	m := wm.selmon
	a := &Client{mon: m, tags: 1, win: 1, isFullscreen: true}
	b := &Client{mon: m, tags: 1, win: 2}
	attach(a)
	attach(b)
	attachStack(a)
	attachStack(b)
	m.sel = a

	if err := wm.cmdFocusStack(arg{i: 1}); err != nil {
		t.Fatalf("cmdFocusStack: %v", err)
	}
	if m.sel != a {
		t.Errorf("focusstack should be a no-op while the selected client is fullscreen")
	}
}
