package bridge

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// recorder keeps an ordered trace of host-protocol requests so tests can
// assert on ordering, not just counts.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

type guestConfigure struct {
	ID     xproto.Window
	Mask   uint16
	Values []uint32
}

type fakeGuest struct {
	configures []guestConfigure
	states     [][]xproto.Atom
	notifies   []xproto.Window
	closes     []xproto.Window
	depth      uint8
	depthErr   error
	depthCalls int
}

func (g *fakeGuest) ConfigureWindow(id xproto.Window, mask uint16, values []uint32) {
	g.configures = append(g.configures, guestConfigure{ID: id, Mask: mask, Values: append([]uint32(nil), values...)})
}

func (g *fakeGuest) SetWMState(id xproto.Window, states []xproto.Atom) {
	g.states = append(g.states, append([]xproto.Atom(nil), states...))
}

func (g *fakeGuest) SendConfigureNotify(id xproto.Window, x, y, width, height, borderWidth int32) {
	g.notifies = append(g.notifies, id)
}

func (g *fakeGuest) SendCloseRequest(id xproto.Window) {
	g.closes = append(g.closes, id)
}

func (g *fakeGuest) QueryDepth(id xproto.Window) (uint8, error) {
	g.depthCalls++
	return g.depth, g.depthErr
}

type mapResolver map[uint32]*HostSurface

func (m mapResolver) Lookup(id uint32) *HostSurface { return m[id] }

type fakeProxy struct {
	rec *recorder
	id  uint32
}

func (p fakeProxy) Commit() { p.rec.add("commit %d", p.id) }

type fakeShell struct {
	rec *recorder
}

func (s *fakeShell) ShellSurface(hs *HostSurface) ShellSurface {
	s.rec.add("create shell %d", hs.ID)
	return &fakeShellSurface{rec: s.rec, id: hs.ID}
}

func (s *fakeShell) Positioner() Positioner {
	return &fakePositioner{rec: s.rec}
}

type fakeShellSurface struct {
	rec *recorder
	id  uint32
}

func (s *fakeShellSurface) AckConfigure(serial uint32) { s.rec.add("ack %d", serial) }

func (s *fakeShellSurface) Toplevel() Toplevel {
	s.rec.add("create toplevel %d", s.id)
	return &fakeToplevel{rec: s.rec, id: s.id}
}

func (s *fakeShellSurface) Popup(parent ShellSurface, pos Positioner) Popup {
	s.rec.add("create popup %d parent %d", s.id, parent.(*fakeShellSurface).id)
	return &fakePopup{rec: s.rec, id: s.id}
}

func (s *fakeShellSurface) Destroy() { s.rec.add("destroy shell %d", s.id) }

type fakeToplevel struct {
	rec   *recorder
	id    uint32
	title string
}

func (t *fakeToplevel) SetParent(parent Toplevel) {
	t.rec.add("set parent %d %d", t.id, parent.(*fakeToplevel).id)
}
func (t *fakeToplevel) SetTitle(title string)          { t.title = title }
func (t *fakeToplevel) SetMinSize(width, height int32) { t.rec.add("min size %dx%d", width, height) }
func (t *fakeToplevel) SetMaxSize(width, height int32) { t.rec.add("max size %dx%d", width, height) }
func (t *fakeToplevel) SetMaximized()                  { t.rec.add("set maximized %d", t.id) }
func (t *fakeToplevel) SetFullscreen()                 { t.rec.add("set fullscreen %d", t.id) }
func (t *fakeToplevel) Destroy()                       { t.rec.add("destroy toplevel %d", t.id) }

type fakePopup struct {
	rec *recorder
	id  uint32
}

func (p *fakePopup) Destroy() { p.rec.add("destroy popup %d", p.id) }

type fakePositioner struct {
	rec                 *recorder
	x, y, width, height int32
}

func (p *fakePositioner) SetAnchor(a Anchor)   {}
func (p *fakePositioner) SetGravity(g Gravity) {}
func (p *fakePositioner) SetAnchorRect(x, y, width, height int32) {
	p.x, p.y, p.width, p.height = x, y, width, height
	p.rec.add("anchor rect %d,%d %dx%d", x, y, width, height)
}
func (p *fakePositioner) Destroy() {}

type fakeDecorationShell struct {
	rec *recorder
}

func (d *fakeDecorationShell) DecorationSurface(hs *HostSurface) DecorationSurface {
	d.rec.add("create decoration %d", hs.ID)
	return &fakeDecoration{rec: d.rec, id: hs.ID}
}

func (d *fakeDecorationShell) SupportsFullscreenMode() bool { return true }

type fakeDecoration struct {
	rec    *recorder
	id     uint32
	frames []FrameType
	colors []uint32
	appIDs []string
}

func (d *fakeDecoration) SetFrame(t FrameType) { d.frames = append(d.frames, t) }
func (d *fakeDecoration) SetFrameColors(active, inactive uint32) {
	d.colors = append(d.colors, active)
}
func (d *fakeDecoration) SetStartupID(id string)                {}
func (d *fakeDecoration) SetApplicationID(id string)            { d.appIDs = append(d.appIDs, id) }
func (d *fakeDecoration) SetFullscreenMode(mode FullscreenMode) {}
func (d *fakeDecoration) SetParent(parent DecorationSurface, x, y int32) {
	d.rec.add("decoration parent %d,%d", x, y)
}
func (d *fakeDecoration) Destroy() { d.rec.add("destroy decoration %d", d.id) }

var testAtoms = Atoms{
	WMProtocols:             100,
	WMDeleteWindow:          101,
	NetWMState:              102,
	NetWMStateFullscreen:    103,
	NetWMStateMaximizedVert: 104,
	NetWMStateMaximizedHorz: 105,
	NetWMStateFocused:       106,
}

func newTestContext() (*Context, *recorder, *fakeGuest, mapResolver) {
	rec := &recorder{}
	guest := &fakeGuest{depth: 24}
	resolver := mapResolver{}

	ctx := NewContext()
	ctx.Guest = guest
	ctx.Shell = &fakeShell{rec: rec}
	ctx.Decoration = &fakeDecorationShell{rec: rec}
	ctx.Surfaces = resolver
	ctx.Atoms = testAtoms
	ctx.Screen = Screen{WidthInPixels: 1920, HeightInPixels: 1080}
	ctx.VMName = "testvm"

	return ctx, rec, guest, resolver
}

// pairWindow creates a window, a resolvable host surface and runs the
// pairing pass.
func pairWindow(ctx *Context, resolver mapResolver, rec *recorder, id xproto.Window, surfaceID uint32) (*Window, *HostSurface) {
	w := ctx.NewWindow(id, 0, 0, 100, 100, 0)
	hs := &HostSurface{ID: surfaceID, Proxy: fakeProxy{rec: rec, id: surfaceID}}
	resolver[surfaceID] = hs
	w.HostSurfaceID = surfaceID
	ctx.UpdateWindow(w)
	return w, hs
}
