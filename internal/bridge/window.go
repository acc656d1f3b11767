package bridge

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

type SizeFlags uint32

const (
	USPosition SizeFlags = 1 << 0
	USSize     SizeFlags = 1 << 1
	PPosition  SizeFlags = 1 << 2
	PSize      SizeFlags = 1 << 3
	PMinSize   SizeFlags = 1 << 4
	PMaxSize   SizeFlags = 1 << 5
)

// WindowConfig is one configure slot: a host serial plus the guest change
// mask, its ordered values and the state atom list. Serial zero means the
// slot is empty.
type WindowConfig struct {
	Serial uint32
	Mask   uint16
	Values []uint32
	States []xproto.Atom
}

// Window is the per-guest-window entity. All fields are mutated only on the
// bridge goroutine.
type Window struct {
	ctx *Context

	ID      xproto.Window
	FrameID xproto.Window

	X, Y          int32
	Width, Height int32
	BorderWidth   int32

	SizeFlags SizeFlags
	MinWidth  int32
	MinHeight int32
	MaxWidth  int32
	MaxHeight int32

	Managed              bool
	Decorated            bool
	DarkFrame            bool
	Maximized            bool
	Fullscreen           bool
	CompositorFullscreen bool
	Activated            bool
	AllowResize          bool
	Realized             bool
	Unpaired             bool

	Depth uint8

	TransientFor xproto.Window
	ClientLeader xproto.Window

	Name          string
	Class         string
	AppIDProperty string
	StartupID     string

	HostSurfaceID uint32
	PairedSurface *HostSurface

	shellSurface ShellSurface
	toplevel     Toplevel
	popup        Popup
	decoration   DecorationSurface

	pending WindowConfig
	next    WindowConfig
}

// Configure applies the queued next configuration: it forwards the change
// mask to the guest, synchronizes cached geometry and promotes next into
// pending. Calling it with an outstanding ack is a contract violation.
func (w *Window) Configure() {
	if w.pending.Serial != 0 {
		panic(fmt.Sprintf("bridge: window %d: configure with serial %d still awaiting ack", w.ID, w.pending.Serial))
	}

	if w.next.Mask != 0 {
		if !w.Managed {
			panic(fmt.Sprintf("bridge: window %d: geometry configure on unmanaged window", w.ID))
		}

		w.ctx.Guest.ConfigureWindow(w.FrameID, w.next.Mask, w.next.Values)

		x, y := w.X, w.Y
		i := 0
		if w.next.Mask&xproto.ConfigWindowX != 0 {
			x = int32(w.next.Values[i])
			i++
		}
		if w.next.Mask&xproto.ConfigWindowY != 0 {
			y = int32(w.next.Values[i])
			i++
		}
		if w.next.Mask&xproto.ConfigWindowWidth != 0 {
			w.Width = int32(w.next.Values[i])
			i++
		}
		if w.next.Mask&xproto.ConfigWindowHeight != 0 {
			w.Height = int32(w.next.Values[i])
			i++
		}
		if w.next.Mask&xproto.ConfigWindowBorderWidth != 0 {
			w.BorderWidth = int32(w.next.Values[i])
			i++
		}

		// Pin the client window to the frame origin in case its gravity is
		// not northwest.
		w.ctx.Guest.ConfigureWindow(w.ID,
			xproto.ConfigWindowX|xproto.ConfigWindowY|
				xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|
				xproto.ConfigWindowBorderWidth,
			[]uint32{0, 0, uint32(w.Width), uint32(w.Height), uint32(w.BorderWidth)})

		if x != w.X || y != w.Y {
			w.X = x
			w.Y = y
			w.SendConfigureNotify()
		}
	}

	if w.Managed {
		w.ctx.Guest.SetWMState(w.ID, w.next.States)
	}

	w.pending = w.next
	w.next = WindowConfig{}
}

// SendConfigureNotify tells the guest where the window ended up.
func (w *Window) SendConfigureNotify() {
	w.ctx.Guest.SendConfigureNotify(w.ID, w.X, w.Y, w.Width, w.Height, w.BorderWidth)
}

// ProcessPendingConfigureAcks acknowledges the pending configuration once
// the host contents match it. Reports whether a commit may proceed.
func (w *Window) ProcessPendingConfigureAcks(hs *HostSurface) bool {
	if w.pending.Serial == 0 {
		return false
	}

	// Do not ack/commit a no-op configuration, it only feeds a commit loop
	// between the two protocols.
	if w.ctx.SuppressEmptyCommits && w.pending.Mask == 0 && len(w.pending.States) == 0 {
		return false
	}

	if w.Managed && hs != nil {
		width := w.Width + w.BorderWidth*2
		height := w.Height + w.BorderWidth*2
		// Contents will match the window size at some point in the future;
		// acking before that would desynchronize the two size machines.
		if width != hs.ContentsWidth || height != hs.ContentsHeight {
			return false
		}
	}

	if w.shellSurface != nil {
		w.shellSurface.AckConfigure(w.pending.Serial)
	}
	w.pending.Serial = 0

	if w.next.Serial != 0 {
		w.Configure()
	}

	return true
}

// Commit pushes the surface forward, but only once any pending
// configuration has been acknowledged.
func (w *Window) Commit(hs *HostSurface) {
	if w.ProcessPendingConfigureAcks(hs) {
		if hs != nil {
			hs.Proxy.Commit()
		}
	}
}

// destroyHostObjects tears down every host-side object the window holds, in
// dependency order.
func (w *Window) destroyHostObjects() {
	if w.decoration != nil {
		w.decoration.Destroy()
		w.decoration = nil
	}
	if w.toplevel != nil {
		w.toplevel.Destroy()
		w.toplevel = nil
	}
	if w.popup != nil {
		w.popup.Destroy()
		w.popup = nil
	}
	if w.shellSurface != nil {
		w.shellSurface.Destroy()
		w.shellSurface = nil
	}
}

// PendingSerial exposes the in-flight configure serial for introspection.
func (w *Window) PendingSerial() uint32 { return w.pending.Serial }
