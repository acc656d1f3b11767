package bridge

// Host shell boundary. The compositor transport lives behind these
// interfaces; the bridge only issues the requests it needs and consumes the
// events in events.go.

type FrameType int

const (
	FrameNone FrameType = iota
	FrameNormal
	FrameShadow
)

type FullscreenMode int

const (
	FullscreenModeImmersive FullscreenMode = iota
	FullscreenModePlain
)

type Anchor int

const (
	AnchorTopLeft Anchor = iota
)

type Gravity int

const (
	GravityBottomRight Gravity = iota
)

// HostShell creates shell roles on host surfaces.
type HostShell interface {
	ShellSurface(s *HostSurface) ShellSurface
	Positioner() Positioner
}

// DecorationShell is the optional shell extension carrying frame, identity
// and startup metadata. May be absent on the host.
type DecorationShell interface {
	DecorationSurface(s *HostSurface) DecorationSurface
	SupportsFullscreenMode() bool
}

type ShellSurface interface {
	AckConfigure(serial uint32)
	Toplevel() Toplevel
	Popup(parent ShellSurface, pos Positioner) Popup
	Destroy()
}

type Toplevel interface {
	SetParent(parent Toplevel)
	SetTitle(title string)
	SetMinSize(width, height int32)
	SetMaxSize(width, height int32)
	SetMaximized()
	SetFullscreen()
	Destroy()
}

type Popup interface {
	Destroy()
}

type Positioner interface {
	SetAnchor(a Anchor)
	SetGravity(g Gravity)
	SetAnchorRect(x, y, width, height int32)
	Destroy()
}

type DecorationSurface interface {
	SetFrame(t FrameType)
	SetFrameColors(active, inactive uint32)
	SetStartupID(id string)
	SetApplicationID(id string)
	SetFullscreenMode(mode FullscreenMode)
	SetParent(parent DecorationSurface, x, y int32)
	Destroy()
}

// SurfaceProxy is the committable handle of a host surface.
type SurfaceProxy interface {
	Commit()
}

// Output is the host output a surface is presented on, in guest pixel
// coordinates.
type Output struct {
	VirtX  int32
	VirtY  int32
	Width  int32
	Height int32
}

// HostSurface mirrors the fields of the host surface resource this core
// reads and writes. The surface is owned by the transport, not by Window.
type HostSurface struct {
	ID    uint32
	Proxy SurfaceProxy

	ContentsWidth  int32
	ContentsHeight int32

	HasOwnScale         bool
	CachedLogicalWidth  int32
	CachedLogicalHeight int32

	LastEventSerial uint32
	HasRole         bool

	Output *Output
}

// SurfaceResolver resolves a host surface id to a live surface resource.
// Returns nil while the resource does not (or no longer does) exist.
type SurfaceResolver interface {
	Lookup(id uint32) *HostSurface
}
