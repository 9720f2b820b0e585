package main

import "testing"

func countClients(m *Monitor) int {
	n := 0
	for c := m.clients; c != nil; c = c.next {
		n++
	}
	return n
}

func TestAttachDetachOrder(t *testing.T) {
	m := createMonitor()
	a := &Client{mon: m}
	b := &Client{mon: m}
	c := &Client{mon: m}

	attach(a)
	attach(b)
	attach(c)

	if m.clients != c || c.next != b || b.next != a || a.next != nil {
		t.Fatalf("attach() should push to the head; want c,b,a order")
	}

	detach(b)
	if m.clients != c || c.next != a || a.next != nil {
		t.Fatalf("detach() of a middle element should splice it out cleanly")
	}
	if countClients(m) != 2 {
		t.Fatalf("countClients() = %d, want 2", countClients(m))
	}
}

func TestAttachStackDetachStackReselectsVisible(t *testing.T) {
	m := createMonitor()
	m.tagset[m.selTags] = 1

	a := &Client{mon: m, tags: 1}
	b := &Client{mon: m, tags: 2} // not visible
	attachStack(a)
	attachStack(b)
	m.sel = b

	detachStack(b)
	if m.sel != a {
		t.Fatalf("detaching the selected client should reselect the nearest visible stack entry (a)")
	}

	m.sel = a
	detachStack(a)
	if m.sel != nil {
		t.Fatalf("detaching the last client should leave sel nil")
	}
}

func TestNextTiledSkipsFloatingAndHidden(t *testing.T) {
	m := createMonitor()
	m.tagset[m.selTags] = 1
	a := &Client{mon: m, tags: 1, isFloating: true}
	b := &Client{mon: m, tags: 2}
	c := &Client{mon: m, tags: 1}
	attach(a)
	attach(b)
	attach(c)
	// list head-to-tail: c, b, a

	got := nextTiled(m.clients)
	if got != c {
		t.Fatalf("nextTiled should land on the first visible, non-floating client (c)")
	}
	if nextTiled(got.next) != nil {
		t.Fatalf("nextTiled should skip both the hidden (b) and floating (a) clients")
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Firefox", "", true},
		{"Firefox", "Fire", true},
		{"Firefox", "fox", true},
		{"Firefox", "Chrome", false},
		{"", "x", false},
	}
	for _, tt := range tests {
		if got := contains(tt.s, tt.substr); got != tt.want {
			t.Errorf("contains(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestApplyRules(t *testing.T) {
	tags, floating, mon := applyRules("Gimp", "gimp", "GNU Image Manipulation Program")
	if !floating {
		t.Errorf("Gimp rule should float")
	}
	if mon != -1 {
		t.Errorf("Gimp rule doesn't pin a monitor, want -1, got %d", mon)
	}
	if tags != 0 {
		t.Errorf("Gimp rule doesn't assign tags, want 0, got %d", tags)
	}

	tags, floating, _ = applyRules("Firefox", "Navigator", "Mozilla Firefox")
	if floating {
		t.Errorf("Firefox rule should not float")
	}
	if tags != 1<<8 {
		t.Errorf("Firefox rule should assign tag bit 8, got %b", tags)
	}

	tags, floating, mon = applyRules("xterm", "xterm", "xterm")
	if floating || tags != 0 || mon != -1 {
		t.Errorf("unmatched class should fall through with zero-value rule result")
	}
}
