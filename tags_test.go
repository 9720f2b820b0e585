package main

import "testing"

func TestMonitorView(t *testing.T) {
	m := createMonitor()
	m.tagset = [2]uint32{1, 2}
	m.selTags = 0

	m.view(4)
	if m.activeTagset() != 4 {
		t.Fatalf("activeTagset() = %d, want 4", m.activeTagset())
	}

	m.view(4) // viewing the already-active tagset is a no-op
	if m.selTags != 1 {
		t.Fatalf("selTags = %d, want 1 (no toggle on repeated view)", m.selTags)
	}

	m.view(0)
	if m.activeTagset() != 1 {
		t.Fatalf("view(0-equivalent) after repeat should flip back to previous tagset, got %d", m.activeTagset())
	}
}

func TestMonitorToggleViewNeverGoesBlank(t *testing.T) {
	m := createMonitor()
	m.tagset[m.selTags] = 1

	m.toggleView(1) // would zero out the tagset entirely
	if m.activeTagset() != 1 {
		t.Errorf("toggleView emptied the tagset; want it left unchanged at 1, got %d", m.activeTagset())
	}

	m.tagset[m.selTags] = 0b101
	m.toggleView(0b100)
	if m.activeTagset() != 0b001 {
		t.Errorf("toggleView(0b100) on 0b101 = %b, want 0b001", m.activeTagset())
	}
}

func TestTagAndToggleTag(t *testing.T) {
	mon := createMonitor()
	c := &Client{mon: mon, tags: 1}

	tag(c, 4)
	if c.tags != 4 {
		t.Errorf("tag() = %d, want 4", c.tags)
	}

	tag(c, 0) // zero mask must not clear the client's tags
	if c.tags != 4 {
		t.Errorf("tag(0) changed tags to %d, want unchanged 4", c.tags)
	}

	toggleTag(c, 4) // would empty c's tags
	if c.tags != 4 {
		t.Errorf("toggleTag left client with no tags; want unchanged at 4, got %d", c.tags)
	}

	toggleTag(c, 2)
	if c.tags != 6 {
		t.Errorf("toggleTag(2) on 4 = %d, want 6", c.tags)
	}
}

func TestComboViewAccumulatesAcrossPresses(t *testing.T) {
	wm := newTestWM()
	m := wm.selmon
	m.tagset[m.selTags] = 1

	if err := wm.cmdComboView(arg{ui: 1 << 1}); err != nil {
		t.Fatalf("cmdComboView: %v", err)
	}
	if m.activeTagset() != 1<<1 {
		t.Fatalf("first combo press should set the tagset to exactly its bit, got %b", m.activeTagset())
	}

	if err := wm.cmdComboView(arg{ui: 1 << 3}); err != nil {
		t.Fatalf("cmdComboView: %v", err)
	}
	want := uint32(1<<1 | 1<<3)
	if m.activeTagset() != want {
		t.Fatalf("second combo press should union with the first, want %b got %b", want, m.activeTagset())
	}

	wm.endCombo()
	if wm.combo.active {
		t.Errorf("endCombo should clear the active flag")
	}

	if err := wm.cmdComboView(arg{ui: 1 << 2}); err != nil {
		t.Fatalf("cmdComboView: %v", err)
	}
	if m.activeTagset() != 1<<2 {
		t.Fatalf("a combo press after endCombo should start a fresh mask, want %b got %b", uint32(1<<2), m.activeTagset())
	}
}

func TestClientIsVisible(t *testing.T) {
	mon := createMonitor()
	mon.tagset[mon.selTags] = 0b0010
	c := &Client{mon: mon, tags: 0b0010}
	if !c.isVisible() {
		t.Errorf("client sharing a tag bit with the active tagset should be visible")
	}
	c.tags = 0b0100
	if c.isVisible() {
		t.Errorf("client with no tag bits in common with the active tagset should not be visible")
	}
}
