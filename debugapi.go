package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// clientSnapshot and monitorSnapshot are the read-only JSON views
// served by the introspection API. Adapted from the teacher's api.go
// response shapes, narrowed to state this port actually tracks.
type clientSnapshot struct {
	Window     uint32 `json:"window"`
	Name       string `json:"name"`
	Tags       uint32 `json:"tags"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	W          int    `json:"w"`
	H          int    `json:"h"`
	Floating   bool   `json:"floating"`
	Fullscreen bool   `json:"fullscreen"`
	Urgent     bool   `json:"urgent"`
	Monitor    int    `json:"monitor"`
}

type monitorSnapshot struct {
	Num        int    `json:"num"`
	MX         int    `json:"mx"`
	MY         int    `json:"my"`
	MW         int    `json:"mw"`
	MH         int    `json:"mh"`
	ActiveTags uint32 `json:"active_tags"`
	Selected   uint32 `json:"selected_window,omitempty"`
}

// snapshotState builds the full read-only view of every monitor and
// client. Called from each HTTP handler and from the WS broadcast
// loop below; never mutates wm state, per SPEC_FULL.md's decision to
// keep this surface strictly introspective.
func (wm *WM) snapshotState() ([]monitorSnapshot, []clientSnapshot) {
	var mons []monitorSnapshot
	var clients []clientSnapshot
	for m := wm.mons; m != nil; m = m.next {
		ms := monitorSnapshot{
			Num: m.num, MX: m.mx, MY: m.my, MW: m.mw, MH: m.mh,
			ActiveTags: m.activeTagset(),
		}
		if m.sel != nil {
			ms.Selected = uint32(m.sel.win)
		}
		mons = append(mons, ms)
		for c := m.clients; c != nil; c = c.next {
			clients = append(clients, clientSnapshot{
				Window: uint32(c.win), Name: c.name, Tags: c.tags,
				X: c.x, Y: c.y, W: c.w, H: c.h,
				Floating: c.isFloating, Fullscreen: c.isFullscreen, Urgent: c.isUrgent,
				Monitor: c.mon.num,
			})
		}
	}
	return mons, clients
}

// newDebugRouter builds the read-only introspection router: GET
// /monitors, GET /clients, and a WS /events stream that pushes a
// fresh snapshot on an interval. Disabled by default; see
// SPEC_FULL.md's DOMAIN STACK section for why this doesn't count as
// the runtime-mutable configuration surface the spec excludes.
func (wm *WM) newDebugRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/monitors", func(w http.ResponseWriter, r *http.Request) {
		mons, _ := wm.snapshotState()
		writeJSON(w, mons)
	}).Methods(http.MethodGet)

	r.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		_, clients := wm.snapshotState()
		writeJSON(w, clients)
	}).Methods(http.MethodGet)

	r.HandleFunc("/events", wm.handleEventsWS)
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type statePush struct {
	Monitors []monitorSnapshot `json:"monitors"`
	Clients  []clientSnapshot  `json:"clients"`
}

// handleEventsWS upgrades to a websocket and pushes a state snapshot
// every second until the client disconnects. Adapted from the
// teacher's ws.go echo handler, repurposed from an echo demo into a
// real (if coarse) state feed.
func (wm *WM) handleEventsWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "closing")

	ctx := r.Context()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mons, clients := wm.snapshotState()
			wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := wsjson.Write(wctx, c, statePush{Monitors: mons, Clients: clients})
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// startDebugAPI launches the introspection HTTP server in the
// background when addr is non-empty (empty disables it entirely, the
// default).
func (wm *WM) startDebugAPI(addr string) {
	if addr == "" {
		return
	}
	srv := &http.Server{Addr: addr, Handler: wm.newDebugRouter()}
	go func() {
		wm.log.Info("introspection API listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			wm.log.Warn("introspection API stopped", "err", err)
		}
	}()
}
