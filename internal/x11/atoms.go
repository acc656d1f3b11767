package x11

import (
	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Atoms are every non-predefined atom the bridge touches, interned once at
// startup.
type Atoms struct {
	bridge.Atoms

	WMClientLeader  xproto.Atom
	NetStartupID    xproto.Atom
	MotifWMHints    xproto.Atom
	GTKThemeVariant xproto.Atom
	WLSurfaceID     xproto.Atom
	// XWLAppID is the per-window identity override property.
	XWLAppID xproto.Atom
}

func InternAtoms(conn *xgb.Conn) (Atoms, error) {
	var a Atoms

	targets := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &a.WMProtocols},
		{"WM_DELETE_WINDOW", &a.WMDeleteWindow},
		{"_NET_WM_STATE", &a.NetWMState},
		{"_NET_WM_STATE_FULLSCREEN", &a.NetWMStateFullscreen},
		{"_NET_WM_STATE_MAXIMIZED_VERT", &a.NetWMStateMaximizedVert},
		{"_NET_WM_STATE_MAXIMIZED_HORZ", &a.NetWMStateMaximizedHorz},
		{"_NET_WM_STATE_FOCUSED", &a.NetWMStateFocused},
		{"WM_CLIENT_LEADER", &a.WMClientLeader},
		{"_NET_STARTUP_ID", &a.NetStartupID},
		{"_MOTIF_WM_HINTS", &a.MotifWMHints},
		{"_GTK_THEME_VARIANT", &a.GTKThemeVariant},
		{"WL_SURFACE_ID", &a.WLSurfaceID},
		{"_XWL_APP_ID", &a.XWLAppID},
	}

	cookies := make([]xproto.InternAtomCookie, len(targets))
	for i, t := range targets {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(t.name)), t.name)
	}
	for i, t := range targets {
		reply, err := cookies[i].Reply()
		if err != nil {
			return Atoms{}, err
		}
		*t.dst = reply.Atom
	}

	return a, nil
}
