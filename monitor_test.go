package main

import (
	"testing"

	"github.com/BurntSushi/xgb/xinerama"
)

func screenInfo(x, y int16, w, h uint16) xinerama.ScreenInfo {
	return xinerama.ScreenInfo{XOrg: x, YOrg: y, Width: w, Height: h}
}

func TestIsUniqueGeometry(t *testing.T) {
	unique := []xinerama.ScreenInfo{screenInfo(0, 0, 1920, 1080)}
	if isUniqueGeometry(unique, screenInfo(0, 0, 1920, 1080)) {
		t.Errorf("an identical rectangle should not be considered unique")
	}
	if !isUniqueGeometry(unique, screenInfo(1920, 0, 1920, 1080)) {
		t.Errorf("a rectangle at a different origin should be unique")
	}
}

func TestUpdateGeometryGrowsMonitorList(t *testing.T) {
	wm := &WM{}
	screens := []xinerama.ScreenInfo{
		screenInfo(0, 0, 1920, 1080),
		screenInfo(1920, 0, 1920, 1080),
	}

	dirty := wm.updateGeometry(screens)
	if !dirty {
		t.Fatalf("expected dirty=true on initial discovery")
	}
	mons := wm.monitorList()
	if len(mons) != 2 {
		t.Fatalf("len(monitorList()) = %d, want 2", len(mons))
	}
	if mons[0].mx != 0 || mons[1].mx != 1920 {
		t.Errorf("monitor x-origins = (%d,%d), want (0,1920)", mons[0].mx, mons[1].mx)
	}
	if wm.selmon != wm.mons {
		t.Errorf("selmon should be reset to the head monitor when the layout changes")
	}
}

func TestUpdateGeometryIsIdempotent(t *testing.T) {
	wm := &WM{}
	screens := []xinerama.ScreenInfo{screenInfo(0, 0, 1920, 1080)}
	wm.updateGeometry(screens)

	dirty := wm.updateGeometry(screens)
	if dirty {
		t.Errorf("re-running updateGeometry with an unchanged layout should not report dirty")
	}
}

func TestUpdateGeometryShrinkMigratesClients(t *testing.T) {
	wm := &WM{}
	screens := []xinerama.ScreenInfo{
		screenInfo(0, 0, 1920, 1080),
		screenInfo(1920, 0, 1920, 1080),
	}
	wm.updateGeometry(screens)
	mons := wm.monitorList()
	head, tail := mons[0], mons[1]
	wm.selmon = head

	victim := &Client{mon: tail, tags: 1}
	attach(victim)
	attachStack(victim)

	dirty := wm.updateGeometry([]xinerama.ScreenInfo{screenInfo(0, 0, 1920, 1080)})
	if !dirty {
		t.Fatalf("expected dirty=true when a monitor is removed")
	}
	if len(wm.monitorList()) != 1 {
		t.Fatalf("expected exactly one monitor left, got %d", len(wm.monitorList()))
	}
	if victim.mon != head {
		t.Errorf("client on the removed monitor should have migrated to the head monitor")
	}
	found := false
	for c := head.clients; c != nil; c = c.next {
		if c == victim {
			found = true
		}
	}
	if !found {
		t.Errorf("migrated client should be present on the surviving monitor's arrangement list")
	}
}

func TestUpdateGeometryNoXinerama(t *testing.T) {
	wm := &WM{sw: 1024, sh: 768}
	dirty := wm.updateGeometry(nil)
	if !dirty {
		t.Fatalf("expected dirty=true when creating the fallback monitor")
	}
	if wm.mons.mw != 1024 || wm.mons.mh != 768 {
		t.Errorf("fallback monitor should span the full reported screen size, got %dx%d", wm.mons.mw, wm.mons.mh)
	}
}
