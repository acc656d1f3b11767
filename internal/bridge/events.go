package bridge

import "github.com/jezek/xgb/xproto"

// Typed event variants delivered to the bridge loop. Guest events come from
// the X adapter's pump, host events from the compositor transport. Both are
// consumed on the single bridge goroutine.

type GuestEvent interface{ guestEvent() }

type WindowCreated struct {
	ID               xproto.Window
	X, Y             int32
	Width, Height    int32
	BorderWidth      int32
	OverrideRedirect bool
}

type WindowDestroyed struct {
	ID xproto.Window
}

type WindowTitleChanged struct {
	ID    xproto.Window
	Title string
}

type WindowClassChanged struct {
	ID    xproto.Window
	Class string
}

type WindowTransientForChanged struct {
	ID     xproto.Window
	Parent xproto.Window
}

type WindowClientLeaderChanged struct {
	ID     xproto.Window
	Leader xproto.Window
}

type WindowStartupIDChanged struct {
	ID        xproto.Window
	StartupID string
}

type WindowAppIDChanged struct {
	ID    xproto.Window
	AppID string
}

type WindowHintsChanged struct {
	ID        xproto.Window
	SizeFlags SizeFlags
	MinWidth  int32
	MinHeight int32
	MaxWidth  int32
	MaxHeight int32
}

// WindowDecorationChanged reports whether the window wants a frame at all.
type WindowDecorationChanged struct {
	ID        xproto.Window
	Decorated bool
}

// WindowFrameThemeChanged reports whether the window asked for the dark
// frame variant.
type WindowFrameThemeChanged struct {
	ID   xproto.Window
	Dark bool
}

// WindowSurfaceAssigned pairs a guest window with a host surface id. A zero
// SurfaceID unpairs.
type WindowSurfaceAssigned struct {
	ID        xproto.Window
	SurfaceID uint32
}

func (WindowCreated) guestEvent()             {}
func (WindowDestroyed) guestEvent()           {}
func (WindowTitleChanged) guestEvent()        {}
func (WindowClassChanged) guestEvent()        {}
func (WindowTransientForChanged) guestEvent() {}
func (WindowClientLeaderChanged) guestEvent() {}
func (WindowStartupIDChanged) guestEvent()    {}
func (WindowAppIDChanged) guestEvent()        {}
func (WindowHintsChanged) guestEvent()        {}
func (WindowDecorationChanged) guestEvent()   {}
func (WindowFrameThemeChanged) guestEvent()   {}
func (WindowSurfaceAssigned) guestEvent()     {}

type HostEvent interface{ hostEvent() }

type ToplevelState int

const (
	StateFullscreen ToplevelState = iota
	StateMaximized
	StateActivated
	StateResizing
)

type ShellSurfaceConfigure struct {
	ID     xproto.Window
	Serial uint32
}

type ToplevelConfigure struct {
	ID            xproto.Window
	Width, Height int32
	States        []ToplevelState
}

type ToplevelClose struct {
	ID xproto.Window
}

type PopupConfigure struct {
	ID            xproto.Window
	X, Y          int32
	Width, Height int32
}

type PopupDone struct {
	ID xproto.Window
}

// SurfaceContentsChanged reports that the host surface produced contents of
// a new size. Re-drives any ack that was deferred on a size mismatch.
type SurfaceContentsChanged struct {
	SurfaceID     uint32
	Width, Height int32
}

// SurfaceDestroyed reports that a host surface resource went away.
type SurfaceDestroyed struct {
	SurfaceID uint32
}

func (ShellSurfaceConfigure) hostEvent()  {}
func (ToplevelConfigure) hostEvent()      {}
func (ToplevelClose) hostEvent()          {}
func (PopupConfigure) hostEvent()         {}
func (PopupDone) hostEvent()              {}
func (SurfaceContentsChanged) hostEvent() {}
func (SurfaceDestroyed) hostEvent()       {}

// FocusResyncRequested is published on the bus when the focus slot changed
// and the guest's input focus must be brought back in line. A zero Focus
// means no window holds the focus.
type FocusResyncRequested struct {
	Focus xproto.Window
}
