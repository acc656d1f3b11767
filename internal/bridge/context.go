package bridge

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/guestwin/xwlbridge/internal/bus"
	"github.com/jezek/xgb/xproto"
)

// Screen is the default guest screen, used to center windows that are not
// tied to a specific output.
type Screen struct {
	WidthInPixels  int32
	HeightInPixels int32
}

// Context owns every live Window and the focus slot. It is created at
// bridge start and torn down at bridge stop; nothing here is ambient global
// state.
type Context struct {
	Guest      GuestConn
	Shell      HostShell
	Decoration DecorationShell
	Surfaces   SurfaceResolver
	Transform  Transform
	Atoms      Atoms
	Screen     Screen

	// Policy, sourced from config.
	AppIDOverride        string
	VMName               string
	FrameColor           uint32
	DarkFrameColor       uint32
	FullscreenMode       FullscreenMode
	SuppressEmptyCommits bool
	// XWayland reports whether the bridge translates a whole guest window
	// system rather than a directly embedded client.
	XWayland bool

	mu       sync.Mutex
	paired   []*Window
	unpaired []*Window
	byID     map[xproto.Window]*Window

	Focus            *Window
	NeedsFocusResync bool
}

func NewContext() *Context {
	return &Context{
		Transform:            UniformScale{Scale: 1},
		SuppressEmptyCommits: true,
		XWayland:             true,
		byID:                 make(map[xproto.Window]*Window),
	}
}

// NewWindow registers a guest window on first observation. Windows start in
// the unpaired set.
func (ctx *Context) NewWindow(id xproto.Window, x, y, width, height, borderWidth int32) *Window {
	w := &Window{
		ctx:         ctx,
		ID:          id,
		FrameID:     id,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BorderWidth: borderWidth,
		Managed:     true,
		AllowResize: true,
		Unpaired:    true,
	}
	ctx.unpaired = append(ctx.unpaired, w)
	ctx.byID[id] = w
	return w
}

func (ctx *Context) Lookup(id xproto.Window) *Window {
	return ctx.byID[id]
}

// LookupBySurface finds the window currently paired to a host surface id.
func (ctx *Context) LookupBySurface(surfaceID uint32) *Window {
	if surfaceID == 0 {
		return nil
	}
	for _, w := range ctx.byID {
		if w.HostSurfaceID == surfaceID {
			return w
		}
	}
	return nil
}

// DestroyWindow removes a window for good. If it held the focus slot the
// slot is cleared and a focus resync is requested.
func (ctx *Context) DestroyWindow(w *Window) {
	if ctx.Focus == w {
		ctx.Focus = nil
		ctx.requestFocusResync()
	}
	w.destroyHostObjects()
	ctx.removeFromSets(w)
	delete(ctx.byID, w.ID)
}

func (ctx *Context) removeFromSets(w *Window) {
	if i := slices.Index(ctx.paired, w); i >= 0 {
		ctx.paired = slices.Delete(ctx.paired, i, i+1)
	}
	if i := slices.Index(ctx.unpaired, w); i >= 0 {
		ctx.unpaired = slices.Delete(ctx.unpaired, i, i+1)
	}
}

func (ctx *Context) moveToPaired(w *Window) {
	ctx.removeFromSets(w)
	ctx.paired = append(ctx.paired, w)
}

func (ctx *Context) moveToUnpaired(w *Window) {
	ctx.removeFromSets(w)
	ctx.unpaired = append(ctx.unpaired, w)
}

func (ctx *Context) requestFocusResync() {
	ctx.NeedsFocusResync = true
	var focus xproto.Window
	if ctx.Focus != nil {
		focus = ctx.Focus.ID
	}
	bus.Publish(FocusResyncRequested{Focus: focus})
}

// setFocus moves the focus slot, requesting a resync only when the holder
// actually changes.
func (ctx *Context) setFocus(w *Window) {
	if ctx.Focus == w {
		return
	}
	ctx.Focus = w
	ctx.requestFocusResync()
}

// Run drains guest and host events until cancellation. Window state is
// mutated only here; the mutex exists solely so snapshots can be read from
// the debug API.
func (ctx *Context) Run(c context.Context, guestC <-chan GuestEvent, hostC <-chan HostEvent) error {
	for {
		select {
		case <-c.Done():
			return c.Err()
		case ev, ok := <-guestC:
			if !ok {
				return nil
			}
			ctx.mu.Lock()
			ctx.HandleGuestEvent(ev)
			ctx.mu.Unlock()
		case ev, ok := <-hostC:
			if !ok {
				return nil
			}
			ctx.mu.Lock()
			ctx.HandleHostEvent(ev)
			ctx.mu.Unlock()
		}
	}
}

// WindowSnapshot is the debug view of one window.
type WindowSnapshot struct {
	ID            uint32 `json:"id"`
	Title         string `json:"title,omitempty"`
	Class         string `json:"class,omitempty"`
	AppID         string `json:"app_id,omitempty"`
	Managed       bool   `json:"managed"`
	Paired        bool   `json:"paired"`
	Realized      bool   `json:"realized"`
	Focused       bool   `json:"focused"`
	PendingSerial uint32 `json:"pending_serial,omitempty"`
	X             int32  `json:"x"`
	Y             int32  `json:"y"`
	Width         int32  `json:"width"`
	Height        int32  `json:"height"`
}

func (ctx *Context) snapshotOf(w *Window) WindowSnapshot {
	return WindowSnapshot{
		ID:            uint32(w.ID),
		Title:         w.Name,
		Class:         w.Class,
		AppID:         ctx.applicationID(w),
		Managed:       w.Managed,
		Paired:        !w.Unpaired,
		Realized:      w.Realized,
		Focused:       ctx.Focus == w,
		PendingSerial: w.pending.Serial,
		X:             w.X,
		Y:             w.Y,
		Width:         w.Width,
		Height:        w.Height,
	}
}

// Snapshot returns a point-in-time view of the registry, paired windows
// first.
func (ctx *Context) Snapshot() []WindowSnapshot {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	out := make([]WindowSnapshot, 0, len(ctx.paired)+len(ctx.unpaired))
	for _, w := range ctx.paired {
		out = append(out, ctx.snapshotOf(w))
	}
	for _, w := range ctx.unpaired {
		out = append(out, ctx.snapshotOf(w))
	}
	return out
}

// FocusSnapshot reports the focus slot holder, if any.
func (ctx *Context) FocusSnapshot() (uint32, bool) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if ctx.Focus == nil {
		return 0, false
	}
	return uint32(ctx.Focus.ID), true
}

func (ctx *Context) log(w *Window) *slog.Logger {
	return slog.With("window", uint32(w.ID))
}
