package bridge

// resolveParent picks the logical parent of a window, if any.
//
// A managed window with a transient-for hint gets the paired window carrying
// that id, provided it already holds a toplevel. For unmanaged windows, or
// when the hinted parent is not usable, fall back to the realized sibling
// the user last interacted with: override-redirect windows routinely omit
// or misreport their hints, and a wrong pick is corrected on the next focus
// change. Ties on the input serial keep the earliest candidate.
func (ctx *Context) resolveParent(w *Window) *Window {
	var parent *Window

	if w.Managed && w.TransientFor != 0 {
		for _, sibling := range ctx.paired {
			if sibling.ID == w.TransientFor {
				if sibling.toplevel != nil {
					parent = sibling
				}
				break
			}
		}
	}

	if !w.Managed || (parent == nil && w.TransientFor != 0) {
		var best uint32
		for _, sibling := range ctx.paired {
			if !sibling.Realized {
				continue
			}
			hs := ctx.Surfaces.Lookup(sibling.HostSurfaceID)
			if hs == nil {
				continue
			}
			if sibling.HostSurfaceID == w.HostSurfaceID {
				continue
			}
			// Any parent will do, but prefer the last-event window.
			if parent != nil && hs.LastEventSerial <= best {
				continue
			}
			parent = sibling
			best = hs.LastEventSerial
		}
	}

	return parent
}
