package x11

import (
	"errors"
	"log/slog"

	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Conn adapts an X connection to the bridge's guest-protocol boundary.
type Conn struct {
	conn  *xgb.Conn
	atoms Atoms
}

func NewConn(conn *xgb.Conn, atoms Atoms) *Conn {
	return &Conn{conn: conn, atoms: atoms}
}

var _ bridge.GuestConn = (*Conn)(nil)

// Screen reports the default screen size in pixels.
func (c *Conn) Screen() bridge.Screen {
	screen := xproto.Setup(c.conn).DefaultScreen(c.conn)
	return bridge.Screen{
		WidthInPixels:  int32(screen.WidthInPixels),
		HeightInPixels: int32(screen.HeightInPixels),
	}
}

func (c *Conn) ConfigureWindow(id xproto.Window, mask uint16, values []uint32) {
	if err := xproto.ConfigureWindowChecked(c.conn, id, mask, values).Check(); err != nil {
		slog.Error("failed to configure window", "window", uint32(id), "error", err)
	}
}

func (c *Conn) SetWMState(id xproto.Window, states []xproto.Atom) {
	data := make([]byte, len(states)*4)
	for i, atom := range states {
		xgb.Put32(data[i*4:], uint32(atom))
	}
	err := xproto.ChangePropertyChecked(c.conn, xproto.PropModeReplace, id,
		c.atoms.NetWMState, xproto.AtomAtom, 32, uint32(len(states)), data).Check()
	if err != nil {
		slog.Error("failed to set wm state", "window", uint32(id), "error", err)
	}
}

func (c *Conn) SendConfigureNotify(id xproto.Window, x, y, width, height, borderWidth int32) {
	ev := xproto.ConfigureNotifyEvent{
		Event:        id,
		Window:       id,
		AboveSibling: xproto.WindowNone,
		X:            int16(x),
		Y:            int16(y),
		Width:        uint16(width),
		Height:       uint16(height),
		BorderWidth:  uint16(borderWidth),
	}
	err := xproto.SendEventChecked(c.conn, false, id,
		xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
	if err != nil {
		slog.Error("failed to send configure notify", "window", uint32(id), "error", err)
	}
}

func (c *Conn) SendCloseRequest(id xproto.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   c.atoms.WMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.WMDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0,
			0,
			0,
		}),
	}
	err := xproto.SendEventChecked(c.conn, false, id,
		xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
	if err != nil {
		slog.Error("failed to send close request", "window", uint32(id), "error", err)
	}
}

func (c *Conn) QueryDepth(id xproto.Window) (uint8, error) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(id)).Reply()
	if err != nil {
		return 0, err
	}
	if reply == nil {
		return 0, errors.New("x11: no geometry reply")
	}
	return reply.Depth, nil
}
