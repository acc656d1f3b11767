package x11

import (
	"context"
	"log/slog"

	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/guestwin/xwlbridge/internal/bus"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// SubscribeFocusResync brings the guest's input focus back in line whenever
// the bridge's focus slot changes.
func SubscribeFocusResync(conn *xgb.Conn) {
	bus.Subscribe("x11.FocusResync", func(ctx context.Context, ev bridge.FocusResyncRequested) error {
		focus := ev.Focus
		if focus == 0 {
			focus = xproto.WindowNone
		}
		err := xproto.SetInputFocusChecked(conn, xproto.InputFocusNone, focus, xproto.TimeCurrentTime).Check()
		if err != nil {
			return err
		}
		slog.Debug("input focus resynced", "window", uint32(focus))
		return nil
	})
}
