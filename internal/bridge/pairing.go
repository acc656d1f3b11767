package bridge

import "fmt"

// UpdateWindow is the pairing/realization pass. It reconciles registry
// membership and host object existence with whether the window's host
// surface id currently resolves, then rebuilds the shell role, hierarchy
// and decoration metadata. Idempotent: already-created host objects are
// kept, metadata pushes repeat.
func (ctx *Context) UpdateWindow(w *Window) {
	var hs *HostSurface

	if w.HostSurfaceID != 0 {
		hs = ctx.Surfaces.Lookup(w.HostSurfaceID)
		if hs != nil && w.Unpaired {
			ctx.moveToPaired(w)
			w.Unpaired = false
		}
	} else if !w.Unpaired {
		ctx.moveToUnpaired(w)
		w.Unpaired = true
		w.PairedSurface = nil
	}

	if hs == nil {
		w.destroyHostObjects()
		w.Realized = false
		return
	}

	// A host surface carries at most one shell role. Handing it a second
	// one corrupts both state machines; there is no way to continue.
	if w.shellSurface == nil && hs.HasRole {
		panic(fmt.Sprintf("bridge: surface %d already has a role, cannot pair window %d", hs.ID, w.ID))
	}

	if !w.Unpaired {
		w.PairedSurface = hs
		ctx.Transform.TryWindowScale(hs, w.Width, w.Height)
	}

	parent := ctx.resolveParent(w)

	// Depth is queried once and cached for the window's lifetime; a missing
	// reply just leaves it unknown.
	if w.Depth == 0 {
		if depth, err := ctx.Guest.QueryDepth(w.ID); err == nil {
			w.Depth = depth
		} else {
			ctx.log(w).Debug("depth query failed", "error", err)
		}
	}

	if w.shellSurface == nil {
		w.shellSurface = ctx.Shell.ShellSurface(hs)
		hs.HasRole = true
	}

	ctx.updateDecoration(w, hs)

	// Under full window-system translation windows always get a toplevel
	// role: the guest can close them at any time, which a popup cannot
	// express.
	if ctx.XWayland || parent == nil {
		if w.toplevel == nil {
			w.toplevel = w.shellSurface.Toplevel()
		}
		if parent != nil && parent.toplevel != nil {
			w.toplevel.SetParent(parent.toplevel)
		}
		if w.Name != "" {
			w.toplevel.SetTitle(w.Name)
		}
		if w.SizeFlags&PMinSize != 0 {
			minw, minh := ctx.Transform.GuestToHost(w.PairedSurface, w.MinWidth, w.MinHeight)
			w.toplevel.SetMinSize(minw, minh)
		}
		if w.SizeFlags&PMaxSize != 0 {
			maxw, maxh := ctx.Transform.GuestToHost(w.PairedSurface, w.MaxWidth, w.MaxHeight)
			w.toplevel.SetMaxSize(maxw, maxh)
		}
		if w.Maximized {
			w.toplevel.SetMaximized()
		}
		if w.Fullscreen {
			w.toplevel.SetFullscreen()
		}
	} else if w.popup == nil {
		pos := ctx.Shell.Positioner()

		diffx, diffy := ctx.Transform.GuestToHost(w.PairedSurface, w.X-parent.X, w.Y-parent.Y)
		pos.SetAnchor(AnchorTopLeft)
		pos.SetGravity(GravityBottomRight)
		pos.SetAnchorRect(diffx, diffy, 1, 1)

		w.popup = w.shellSurface.Popup(parent.shellSurface, pos)
		pos.Destroy()
	}

	if w.SizeFlags&(USPosition|PPosition) != 0 && parent != nil &&
		w.decoration != nil && parent.decoration != nil {
		diffx, diffy := ctx.Transform.GuestToHost(w.PairedSurface, w.X-parent.X, w.Y-parent.Y)
		w.decoration.SetParent(parent.decoration, diffx, diffy)
	}

	if ctx.SuppressEmptyCommits {
		w.Commit(hs)
	} else {
		hs.Proxy.Commit()
	}

	if hs.ContentsWidth > 0 && hs.ContentsHeight > 0 {
		w.Realized = true
	}
}
