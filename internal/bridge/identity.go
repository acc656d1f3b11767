package bridge

import "fmt"

const (
	appIDFormatPrefix         = "org.guestwin.guest_os.%s"
	xidAppIDFormat            = appIDFormatPrefix + ".xid.%d"
	wmClientLeaderAppIDFormat = appIDFormatPrefix + ".wmclientleader.%d"
	wmClassAppIDFormat        = appIDFormatPrefix + ".wmclass.%s"
	xPropertyAppIDFormat      = appIDFormatPrefix + ".xprop.%s"
)

// applicationID derives the stable identity string for a window. Empty
// means "do not set one".
func (ctx *Context) applicationID(w *Window) string {
	if ctx.AppIDOverride != "" {
		return ctx.AppIDOverride
	}
	// Never tag X11 override-redirect windows: the host would otherwise
	// treat them as regular application windows.
	if ctx.XWayland && !w.Managed {
		return ""
	}
	switch {
	case w.AppIDProperty != "":
		return fmt.Sprintf(xPropertyAppIDFormat, ctx.VMName, w.AppIDProperty)
	case w.Class != "":
		return fmt.Sprintf(wmClassAppIDFormat, ctx.VMName, w.Class)
	case w.ClientLeader != 0:
		return fmt.Sprintf(wmClientLeaderAppIDFormat, ctx.VMName, w.ClientLeader)
	default:
		return fmt.Sprintf(xidAppIDFormat, ctx.VMName, w.ID)
	}
}

func (ctx *Context) updateApplicationID(w *Window) {
	if w.decoration == nil {
		return
	}
	if id := ctx.applicationID(w); id != "" {
		w.decoration.SetApplicationID(id)
	}
}

// refreshDecoration re-pushes decoration metadata for a window that already
// carries a decoration surface.
func (ctx *Context) refreshDecoration(w *Window) {
	if w.decoration == nil {
		return
	}
	ctx.updateDecoration(w, ctx.Surfaces.Lookup(w.HostSurfaceID))
}

// updateDecoration pushes frame, identity and startup metadata to the shell
// extension. Safe to repeat on every pairing pass.
func (ctx *Context) updateDecoration(w *Window, hs *HostSurface) {
	if ctx.Decoration == nil {
		return
	}

	if w.decoration == nil {
		w.decoration = ctx.Decoration.DecorationSurface(hs)
	}

	frame := FrameShadow
	if w.Decorated {
		frame = FrameNormal
	} else if w.Depth == 32 {
		frame = FrameNone
	}
	w.decoration.SetFrame(frame)

	color := ctx.FrameColor
	if w.DarkFrame {
		color = ctx.DarkFrameColor
	}
	w.decoration.SetFrameColors(color, color)

	w.decoration.SetStartupID(w.StartupID)
	ctx.updateApplicationID(w)

	if ctx.Decoration.SupportsFullscreenMode() {
		w.decoration.SetFullscreenMode(ctx.FullscreenMode)
	}
}
