package bridge

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
)

// HandleGuestEvent dispatches one guest-protocol event.
func (ctx *Context) HandleGuestEvent(ev GuestEvent) {
	switch ev := ev.(type) {
	case WindowCreated:
		w := ctx.NewWindow(ev.ID, ev.X, ev.Y, ev.Width, ev.Height, ev.BorderWidth)
		w.Managed = !ev.OverrideRedirect
		w.Decorated = w.Managed
	case WindowDestroyed:
		if w := ctx.Lookup(ev.ID); w != nil {
			ctx.DestroyWindow(w)
		}
	case WindowTitleChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.Name = ev.Title
			if w.toplevel != nil {
				w.toplevel.SetTitle(w.Name)
			}
		}
	case WindowClassChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.Class = ev.Class
			ctx.updateApplicationID(w)
		}
	case WindowTransientForChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.TransientFor = ev.Parent
		}
	case WindowClientLeaderChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.ClientLeader = ev.Leader
			ctx.updateApplicationID(w)
		}
	case WindowStartupIDChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.StartupID = ev.StartupID
			if w.decoration != nil {
				w.decoration.SetStartupID(w.StartupID)
			}
		}
	case WindowAppIDChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.AppIDProperty = ev.AppID
			ctx.updateApplicationID(w)
		}
	case WindowDecorationChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.Decorated = ev.Decorated
			ctx.refreshDecoration(w)
		}
	case WindowFrameThemeChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.DarkFrame = ev.Dark
			ctx.refreshDecoration(w)
		}
	case WindowHintsChanged:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.SizeFlags = ev.SizeFlags
			w.MinWidth, w.MinHeight = ev.MinWidth, ev.MinHeight
			w.MaxWidth, w.MaxHeight = ev.MaxWidth, ev.MaxHeight
		}
	case WindowSurfaceAssigned:
		if w := ctx.Lookup(ev.ID); w != nil {
			w.HostSurfaceID = ev.SurfaceID
			ctx.UpdateWindow(w)
		}
	default:
		slog.Debug("unknown guest event", "event", ev)
	}
}

// HandleHostEvent dispatches one host-protocol event.
func (ctx *Context) HandleHostEvent(ev HostEvent) {
	switch ev := ev.(type) {
	case ShellSurfaceConfigure:
		if w := ctx.Lookup(ev.ID); w != nil {
			ctx.handleShellSurfaceConfigure(w, ev.Serial)
		}
	case ToplevelConfigure:
		if w := ctx.Lookup(ev.ID); w != nil {
			ctx.handleToplevelConfigure(w, ev)
		}
	case ToplevelClose:
		if w := ctx.Lookup(ev.ID); w != nil {
			ctx.Guest.SendCloseRequest(w.ID)
		}
	case PopupConfigure, PopupDone:
		// Registered for completeness; nothing to translate.
	case SurfaceContentsChanged:
		ctx.handleSurfaceContentsChanged(ev)
	case SurfaceDestroyed:
		if w := ctx.LookupBySurface(ev.SurfaceID); w != nil {
			w.HostSurfaceID = 0
			ctx.UpdateWindow(w)
		}
	default:
		slog.Debug("unknown host event", "event", ev)
	}
}

// handleShellSurfaceConfigure records the serial of a host configure and,
// when no ack is outstanding, applies and commits immediately. Otherwise the
// serial stays queued in next until the in-flight ack lands.
func (ctx *Context) handleShellSurfaceConfigure(w *Window, serial uint32) {
	w.next.Serial = serial
	if w.pending.Serial == 0 {
		hs := ctx.Surfaces.Lookup(w.HostSurfaceID)
		w.Configure()
		w.Commit(hs)
	}
}

// handleToplevelConfigure translates a host size/state proposal into the
// queued guest configuration.
func (ctx *Context) handleToplevelConfigure(w *Window, ev ToplevelConfigure) {
	if !w.Managed {
		return
	}

	if ev.Width != 0 && ev.Height != 0 {
		// The host asks in logical dimensions. If the request differs from
		// the cached logical size, renegotiate the scale so the buffer can
		// keep the size the application last chose.
		ps := w.PairedSurface
		if ps != nil && ps.HasOwnScale {
			if ev.Width != ps.CachedLogicalWidth || ev.Height != ps.CachedLogicalHeight {
				ctx.Transform.TryWindowScale(ps, w.Width, w.Height)
			}
		}

		widthInPixels, heightInPixels := ctx.Transform.HostToGuest(ps, ev.Width, ev.Height)

		w.next.Mask = xproto.ConfigWindowWidth | xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth
		w.next.Values = w.next.Values[:0]
		if w.SizeFlags&(USPosition|PPosition) == 0 {
			w.next.Mask |= xproto.ConfigWindowX | xproto.ConfigWindowY
			if ps != nil && ps.Output != nil {
				w.next.Values = append(w.next.Values,
					uint32(ps.Output.VirtX+(ps.Output.Width-widthInPixels)/2),
					uint32(ps.Output.VirtY+(ps.Output.Height-heightInPixels)/2))
			} else {
				w.next.Values = append(w.next.Values,
					uint32(ctx.Screen.WidthInPixels/2-widthInPixels/2),
					uint32(ctx.Screen.HeightInPixels/2-heightInPixels/2))
			}
		}
		w.next.Values = append(w.next.Values, uint32(widthInPixels), uint32(heightInPixels), 0)
	}

	w.AllowResize = true
	w.CompositorFullscreen = false
	activated := false
	w.next.States = w.next.States[:0]
	for _, state := range ev.States {
		switch state {
		case StateFullscreen:
			w.AllowResize = false
			w.CompositorFullscreen = true
			w.next.States = append(w.next.States, ctx.Atoms.NetWMStateFullscreen)
		case StateMaximized:
			w.AllowResize = false
			w.next.States = append(w.next.States,
				ctx.Atoms.NetWMStateMaximizedVert,
				ctx.Atoms.NetWMStateMaximizedHorz)
		case StateActivated:
			activated = true
			w.next.States = append(w.next.States, ctx.Atoms.NetWMStateFocused)
		case StateResizing:
			w.AllowResize = false
		}
	}

	if activated != w.Activated {
		if activated != (ctx.Focus == w) {
			if activated {
				ctx.setFocus(w)
			} else {
				ctx.setFocus(nil)
			}
		}
		w.Activated = activated
	}
}

// handleSurfaceContentsChanged refreshes the surface's contents size and
// retries any commit that was withheld on a size mismatch.
func (ctx *Context) handleSurfaceContentsChanged(ev SurfaceContentsChanged) {
	hs := ctx.Surfaces.Lookup(ev.SurfaceID)
	if hs == nil {
		return
	}
	hs.ContentsWidth, hs.ContentsHeight = ev.Width, ev.Height

	w := ctx.LookupBySurface(ev.SurfaceID)
	if w == nil {
		return
	}
	if hs.ContentsWidth > 0 && hs.ContentsHeight > 0 {
		w.Realized = true
	}
	w.Commit(hs)
}
