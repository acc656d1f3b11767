package x11

import (
	"context"
	"log/slog"
	"strings"

	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const mwmHintsDecorations = 1 << 1

// ReceiveEvents drains the X connection and translates what the bridge
// consumes into typed guest events. Everything else is logged and dropped.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, atoms Atoms, eventC chan<- bridge.GuestEvent) error {
	defer close(eventC)
	slog := slog.With("func", "x11.ReceiveEvents")

	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("exit: no event or error")
			return nil
		}

		if err != nil {
			slog.Error("failed to read event", "error", err)
			return err
		}

		out, ok := translate(conn, atoms, ev)
		if !ok {
			slog.Debug("ignoring event", "event", ev)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case eventC <- out:
		}
	}
}

func translate(conn *xgb.Conn, atoms Atoms, ev xgb.Event) (bridge.GuestEvent, bool) {
	switch ev := ev.(type) {
	case xproto.CreateNotifyEvent:
		if err := selectWindowEvents(conn, ev.Window); err != nil {
			slog.Debug("failed to select window events", "window", uint32(ev.Window), "error", err)
		}
		return bridge.WindowCreated{
			ID:               ev.Window,
			X:                int32(ev.X),
			Y:                int32(ev.Y),
			Width:            int32(ev.Width),
			Height:           int32(ev.Height),
			BorderWidth:      int32(ev.BorderWidth),
			OverrideRedirect: ev.OverrideRedirect,
		}, true
	case xproto.DestroyNotifyEvent:
		return bridge.WindowDestroyed{ID: ev.Window}, true
	case xproto.PropertyNotifyEvent:
		return translateProperty(conn, atoms, ev)
	case xproto.ClientMessageEvent:
		if ev.Type == atoms.WLSurfaceID {
			return bridge.WindowSurfaceAssigned{
				ID:        ev.Window,
				SurfaceID: ev.Data.Data32[0],
			}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func translateProperty(conn *xgb.Conn, atoms Atoms, ev xproto.PropertyNotifyEvent) (bridge.GuestEvent, bool) {
	deleted := ev.State == xproto.PropertyDelete

	switch ev.Atom {
	case xproto.AtomWmName:
		if deleted {
			return bridge.WindowTitleChanged{ID: ev.Window}, true
		}
		return bridge.WindowTitleChanged{ID: ev.Window, Title: readString(conn, ev.Window, ev.Atom)}, true
	case xproto.AtomWmClass:
		if deleted {
			return bridge.WindowClassChanged{ID: ev.Window}, true
		}
		return bridge.WindowClassChanged{ID: ev.Window, Class: readClass(conn, ev.Window)}, true
	case xproto.AtomWmTransientFor:
		if deleted {
			return bridge.WindowTransientForChanged{ID: ev.Window}, true
		}
		return bridge.WindowTransientForChanged{ID: ev.Window, Parent: readWindow(conn, ev.Window, ev.Atom)}, true
	case atoms.WMClientLeader:
		if deleted {
			return bridge.WindowClientLeaderChanged{ID: ev.Window}, true
		}
		return bridge.WindowClientLeaderChanged{ID: ev.Window, Leader: readWindow(conn, ev.Window, ev.Atom)}, true
	case atoms.NetStartupID:
		if deleted {
			return bridge.WindowStartupIDChanged{ID: ev.Window}, true
		}
		return bridge.WindowStartupIDChanged{ID: ev.Window, StartupID: readString(conn, ev.Window, ev.Atom)}, true
	case atoms.XWLAppID:
		if deleted {
			return bridge.WindowAppIDChanged{ID: ev.Window}, true
		}
		return bridge.WindowAppIDChanged{ID: ev.Window, AppID: readString(conn, ev.Window, ev.Atom)}, true
	case xproto.AtomWmNormalHints:
		if deleted {
			return bridge.WindowHintsChanged{ID: ev.Window}, true
		}
		return readSizeHints(conn, ev.Window), true
	case atoms.MotifWMHints:
		return bridge.WindowDecorationChanged{ID: ev.Window, Decorated: readDecorated(conn, ev.Window, ev.Atom)}, true
	case atoms.GTKThemeVariant:
		dark := !deleted && readString(conn, ev.Window, ev.Atom) == "dark"
		return bridge.WindowFrameThemeChanged{ID: ev.Window, Dark: dark}, true
	default:
		return nil, false
	}
}

func readProperty(conn *xgb.Conn, id xproto.Window, atom xproto.Atom) []byte {
	reply, err := xproto.GetProperty(conn, false, id, atom,
		xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil || reply == nil {
		return nil
	}
	return reply.Value
}

func readString(conn *xgb.Conn, id xproto.Window, atom xproto.Atom) string {
	return strings.TrimRight(string(readProperty(conn, id, atom)), "\x00")
}

// readClass extracts the class half of WM_CLASS (instance NUL class NUL).
func readClass(conn *xgb.Conn, id xproto.Window) string {
	parts := strings.Split(strings.TrimRight(string(readProperty(conn, id, xproto.AtomWmClass)), "\x00"), "\x00")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func readWindow(conn *xgb.Conn, id xproto.Window, atom xproto.Atom) xproto.Window {
	v := readProperty(conn, id, atom)
	if len(v) < 4 {
		return xproto.WindowNone
	}
	return xproto.Window(xgb.Get32(v))
}

// readSizeHints decodes the WM_SIZE_HINTS words the bridge cares about:
// flags, then min and max extents.
func readSizeHints(conn *xgb.Conn, id xproto.Window) bridge.WindowHintsChanged {
	out := bridge.WindowHintsChanged{ID: id}

	v := readProperty(conn, id, xproto.AtomWmNormalHints)
	if len(v) < 9*4 {
		return out
	}
	word := func(i int) int32 { return int32(xgb.Get32(v[i*4:])) }

	out.SizeFlags = bridge.SizeFlags(word(0))
	out.MinWidth, out.MinHeight = word(5), word(6)
	out.MaxWidth, out.MaxHeight = word(7), word(8)
	return out
}

func readDecorated(conn *xgb.Conn, id xproto.Window, atom xproto.Atom) bool {
	v := readProperty(conn, id, atom)
	if len(v) < 3*4 {
		// No Motif hints means the window gets a frame.
		return true
	}
	flags := xgb.Get32(v)
	if flags&mwmHintsDecorations == 0 {
		return true
	}
	return xgb.Get32(v[2*4:]) != 0
}
