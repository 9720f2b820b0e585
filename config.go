package main

// Compile-time configuration. There is no runtime config parser by
// design: rules, key bindings, colors, and gaps live here the same way
// they live in dwm's config.h.

const (
	borderpx    = 1        // border width of managed windows, in pixels
	gappx       = 10       // gap between clients and work-area edges
	snap        = 32       // snap distance for interactive move/resize
	mfact       = 0.55     // fraction of work-area width given to the master area
	nmaster     = 1        // number of clients kept in the master area
	resizehints = true     // respect ICCCM size hints on tiled resizes
	barHeight   = 20       // minimum client width/height enforced by applySizeHints
	altBarClass = "Polybar" // WM_CLASS substring naming the status bar; not consulted on MapRequest, so a bar window is managed like any other client
)

// Border colors, as 24-bit RGB packed the way xproto.ChangeWindowAttributes
// expects for CwBorderPixel.
const (
	borderColorNormal   uint32 = 0x444444
	borderColorSelected uint32 = 0x5e81ac
)

var tags = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// tagMask is the bitmask with one bit set per configured tag.
var tagMask = uint32(1)<<uint(len(tags)) - 1

// rule matches newly-managed clients by class/instance/title substring
// and assigns their initial floating state, tags, and monitor.
type rule struct {
	class    string
	instance string
	title    string
	tags     uint32
	floating bool
	monitor  int // -1 means "don't force a monitor"
}

var rules = []rule{
	{class: "Gimp", floating: true, monitor: -1},
	{class: "Firefox", tags: 1 << 8, monitor: -1},
}

// keyBinding associates a modifier+keysym combination with an action.
type keyBinding struct {
	mod uint16
	sym uint32
	fn  func(wm *WM, a arg) error
	arg arg
}

// arg is the dwm-style tagged union of action parameters.
type arg struct {
	i  int
	ui uint32
	f  float64
	v  []string
}

const (
	modMain  uint16 = 1 << 3 // Mod1 (Alt)
	modShift uint16 = 1 << 0
	modCtrl  uint16 = 1 << 2
)

// tagKeys builds the per-tag view/toggleview/tag/toggletag bindings,
// mirroring dwm.c's TAGKEYS macro.
func tagKeys() []keyBinding {
	var kb []keyBinding
	for i := range tags {
		sym := uint32('1' + i)
		kb = append(kb,
			keyBinding{mod: modMain, sym: sym, fn: (*WM).cmdComboView, arg: arg{ui: 1 << uint(i)}},
			keyBinding{mod: modMain | modCtrl, sym: sym, fn: (*WM).cmdToggleView, arg: arg{ui: 1 << uint(i)}},
			keyBinding{mod: modMain | modShift, sym: sym, fn: (*WM).cmdComboTag, arg: arg{ui: 1 << uint(i)}},
			keyBinding{mod: modMain | modCtrl | modShift, sym: sym, fn: (*WM).cmdToggleTag, arg: arg{ui: 1 << uint(i)}},
		)
	}
	return kb
}

// keys returns the full key binding table: fixed commands plus the
// generated per-tag bindings.
func keys() []keyBinding {
	kb := []keyBinding{
		{mod: modMain | modShift, sym: keysymReturn, fn: (*WM).cmdSpawn, arg: arg{v: []string{"st"}}},
		{mod: modMain, sym: keysymP, fn: (*WM).cmdSpawn, arg: arg{v: []string{"dmenu_run"}}},
		{mod: modMain | modShift, sym: keysymC, fn: (*WM).cmdKillClient},
		{mod: modMain, sym: keysymJ, fn: (*WM).cmdFocusStack, arg: arg{i: +1}},
		{mod: modMain, sym: keysymK, fn: (*WM).cmdFocusStack, arg: arg{i: -1}},
		{mod: modMain, sym: keysymI, fn: (*WM).cmdIncNMaster, arg: arg{i: +1}},
		{mod: modMain, sym: keysymD, fn: (*WM).cmdIncNMaster, arg: arg{i: -1}},
		{mod: modMain, sym: keysymH, fn: (*WM).cmdSetMFact, arg: arg{f: -0.05}},
		{mod: modMain, sym: keysymL, fn: (*WM).cmdSetMFact, arg: arg{f: +0.05}},
		{mod: modMain, sym: keysymReturn, fn: (*WM).cmdZoom},
		{mod: modMain, sym: keysymTab, fn: (*WM).cmdView, arg: arg{ui: 0}},
		{mod: modMain, sym: keysymT, fn: (*WM).cmdSetFloating, arg: arg{i: 0}},
		{mod: modMain, sym: keysymF, fn: (*WM).cmdToggleFullscreen},
		{mod: modMain, sym: keysymSpace, fn: (*WM).cmdToggleFloating},
		{mod: modMain, sym: keysym0, fn: (*WM).cmdView, arg: arg{ui: ^uint32(0)}},
		{mod: modMain | modShift, sym: keysym0, fn: (*WM).cmdTag, arg: arg{ui: ^uint32(0)}},
		{mod: modMain, sym: keysymComma, fn: (*WM).cmdFocusMon, arg: arg{i: -1}},
		{mod: modMain, sym: keysymPeriod, fn: (*WM).cmdFocusMon, arg: arg{i: +1}},
		{mod: modMain | modShift, sym: keysymComma, fn: (*WM).cmdTagMon, arg: arg{i: -1}},
		{mod: modMain | modShift, sym: keysymPeriod, fn: (*WM).cmdTagMon, arg: arg{i: +1}},
		{mod: modMain | modShift | modCtrl, sym: keysymQ, fn: (*WM).cmdQuit},
	}
	return append(kb, tagKeys()...)
}

// button bindings are keyed by click region (see clickRegion in
// handlers.go).
type buttonBinding struct {
	region clickRegion
	mod    uint16
	button byte
	fn     func(wm *WM, a arg) error
	arg    arg
}

func buttons() []buttonBinding {
	return []buttonBinding{
		{region: clickClientWin, mod: modMain, button: 1, fn: (*WM).cmdMoveMouse},
		{region: clickClientWin, mod: modMain, button: 3, fn: (*WM).cmdResizeMouse},
		{region: clickTagBar, mod: 0, button: 1, fn: (*WM).cmdView},
		{region: clickTagBar, mod: modMain, button: 1, fn: (*WM).cmdTag},
		{region: clickTagBar, mod: 0, button: 3, fn: (*WM).cmdToggleView},
		{region: clickTagBar, mod: modMain, button: 3, fn: (*WM).cmdToggleTag},
	}
}
