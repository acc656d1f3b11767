package bridge

import "github.com/jezek/xgb/xproto"

// Atoms are the interned guest atoms the bridge writes into properties and
// state lists. Interning happens in the X adapter.
type Atoms struct {
	WMProtocols             xproto.Atom
	WMDeleteWindow          xproto.Atom
	NetWMState              xproto.Atom
	NetWMStateFullscreen    xproto.Atom
	NetWMStateMaximizedVert xproto.Atom
	NetWMStateMaximizedHorz xproto.Atom
	NetWMStateFocused       xproto.Atom
}

// GuestConn is the guest-protocol emission boundary. All requests are
// fire-and-forget; the adapter reports failures through its own logging.
type GuestConn interface {
	// ConfigureWindow issues a configure request with the given change mask
	// and the matching ordered value list.
	ConfigureWindow(id xproto.Window, mask uint16, values []uint32)
	// SetWMState replaces the window's net-wm-state atom list.
	SetWMState(id xproto.Window, states []xproto.Atom)
	// SendConfigureNotify delivers a synthetic geometry notification.
	SendConfigureNotify(id xproto.Window, x, y, width, height, borderWidth int32)
	// SendCloseRequest asks the client to close the window gracefully.
	SendCloseRequest(id xproto.Window)
	// QueryDepth synchronously fetches the window's color depth.
	QueryDepth(id xproto.Window) (uint8, error)
}
