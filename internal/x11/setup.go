package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// SelectRootEvents subscribes to child window creation and destruction on
// the root window so the bridge observes every guest window.
func SelectRootEvents(conn *xgb.Conn) error {
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureNotify}).Check()
}

// selectWindowEvents subscribes to property changes on a freshly observed
// guest window.
func selectWindowEvents(conn *xgb.Conn, id xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(conn, id,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check()
}
