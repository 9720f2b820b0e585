package main

// comboState tracks an in-progress combo (multi-key union) tag
// selection, held open between KeyPress events until the modifier key
// is released. Mirrors dwm.c's combo patch (comboview/combotag plus
// the KeyRelease handler that clears it).
type comboState struct {
	active bool
	mask   uint32
}

// view switches the monitor to the given tagset. A mask of 0 re-views
// the previously active tagset (dwm.c's Mod+Tab behavior); the mask is
// otherwise used as-is, including ^0 for "view all tags". Mirrors
// dwm.c's view.
func (m *Monitor) view(mask uint32) {
	if mask == m.activeTagset() {
		return
	}
	m.selTags ^= 1
	if mask != 0 {
		m.tagset[m.selTags] = mask
	}
}

// toggleView XORs mask into the active tagset. If the result would be
// empty the active tagset is left unchanged, matching dwm.c's
// toggleview `if (newtagset)` guard.
func (m *Monitor) toggleView(mask uint32) {
	newTagset := m.activeTagset() ^ mask
	if newTagset != 0 {
		m.tagset[m.selTags] = newTagset
	}
}

// tag assigns mask as c's tag set, provided mask is nonzero. Mirrors
// dwm.c's tag.
func tag(c *Client, mask uint32) {
	if mask != 0 {
		c.tags = mask
	}
}

// toggleTag XORs mask into c's tag set, refusing to leave c with no
// tags at all. Mirrors dwm.c's toggletag.
func toggleTag(c *Client, mask uint32) {
	newTags := c.tags ^ mask
	if newTags != 0 {
		c.tags = newTags
	}
}

// cmdView implements Mod+Tab/Mod+0 and the tag-bar click: view a
// single tagset, the previous one (arg.ui == 0), or all tags (arg.ui ==
// tagMask-all via ^uint32(0)). Mod+<N> is bound to cmdComboView.
func (wm *WM) cmdView(a arg) error {
	wm.selmon.view(a.ui & tagMask)
	if a.ui == ^uint32(0) {
		wm.selmon.tagset[wm.selmon.selTags] = tagMask
	}
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// cmdToggleView implements Mod+Ctrl+<N>.
func (wm *WM) cmdToggleView(a arg) error {
	wm.selmon.toggleView(a.ui & tagMask)
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// cmdTag implements Mod+Shift+0 and Mod+click on the tag bar (move the
// focused client to a tagset / to all tags). Mod+Shift+<N> is bound to
// cmdComboTag.
func (wm *WM) cmdTag(a arg) error {
	c := wm.selmon.sel
	if c == nil {
		return nil
	}
	mask := a.ui
	if mask != ^uint32(0) {
		mask &= tagMask
	} else {
		mask = tagMask
	}
	tag(c, mask)
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// cmdToggleTag implements Mod+Ctrl+Shift+<N>.
func (wm *WM) cmdToggleTag(a arg) error {
	c := wm.selmon.sel
	if c == nil {
		return nil
	}
	toggleTag(c, a.ui&tagMask)
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// cmdComboView accumulates a.ui into the in-progress combo mask and
// applies the union as the visible tagset immediately, so each
// additional key press while the modifier is held extends the view.
func (wm *WM) cmdComboView(a arg) error {
	if !wm.combo.active {
		wm.combo.active = true
		wm.combo.mask = 0
	}
	wm.combo.mask |= a.ui & tagMask
	wm.selmon.tagset[wm.selmon.selTags] = wm.combo.mask
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// cmdComboTag is cmdComboView's counterpart for reassigning the
// focused client's tags instead of the monitor's view.
func (wm *WM) cmdComboTag(a arg) error {
	c := wm.selmon.sel
	if c == nil {
		return nil
	}
	if !wm.combo.active {
		wm.combo.active = true
		wm.combo.mask = 0
	}
	wm.combo.mask |= a.ui & tagMask
	c.tags = wm.combo.mask
	wm.focus(nil)
	wm.arrange(wm.selmon)
	return nil
}

// endCombo clears the in-progress combo state. Called from the
// KeyRelease handler when the modifier key itself is released.
func (wm *WM) endCombo() {
	wm.combo.active = false
	wm.combo.mask = 0
}
