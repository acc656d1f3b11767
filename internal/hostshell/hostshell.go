// Package hostshell carries the host-side collaborators the bridge core
// talks to. The wire transport to a real compositor is pluggable; the Log
// shell here records every request through slog, which is enough for
// dry-running the guest side and for seeing exactly what the bridge would
// ask of a compositor.
package hostshell

import (
	"log/slog"
	"sync"

	"github.com/guestwin/xwlbridge/internal/bridge"
)

// Registry resolves host surface ids to surface resources. The transport
// adds and removes surfaces as they come and go.
type Registry struct {
	mu       sync.Mutex
	surfaces map[uint32]*bridge.HostSurface
}

func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[uint32]*bridge.HostSurface)}
}

var _ bridge.SurfaceResolver = (*Registry)(nil)

func (r *Registry) Lookup(id uint32) *bridge.HostSurface {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surfaces[id]
}

func (r *Registry) Add(s *bridge.HostSurface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[s.ID] = s
}

func (r *Registry) Remove(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

// Log implements both the shell and the decoration extension on top of
// slog.
type Log struct{}

var (
	_ bridge.HostShell       = Log{}
	_ bridge.DecorationShell = Log{}
)

func (Log) ShellSurface(s *bridge.HostSurface) bridge.ShellSurface {
	slog.Debug("host: get shell surface", "surface", s.ID)
	return &logShellSurface{surface: s.ID}
}

func (Log) Positioner() bridge.Positioner {
	return &logPositioner{}
}

func (Log) DecorationSurface(s *bridge.HostSurface) bridge.DecorationSurface {
	slog.Debug("host: get decoration surface", "surface", s.ID)
	return &logDecoration{surface: s.ID}
}

func (Log) SupportsFullscreenMode() bool { return true }

// LogProxy is a committable surface handle for Log-backed surfaces.
type LogProxy struct {
	ID uint32
}

func (p LogProxy) Commit() {
	slog.Debug("host: commit", "surface", p.ID)
}

type logShellSurface struct {
	surface uint32
}

func (s *logShellSurface) AckConfigure(serial uint32) {
	slog.Debug("host: ack configure", "surface", s.surface, "serial", serial)
}

func (s *logShellSurface) Toplevel() bridge.Toplevel {
	slog.Debug("host: get toplevel", "surface", s.surface)
	return &logToplevel{surface: s.surface}
}

func (s *logShellSurface) Popup(parent bridge.ShellSurface, pos bridge.Positioner) bridge.Popup {
	slog.Debug("host: get popup", "surface", s.surface)
	return &logPopup{surface: s.surface}
}

func (s *logShellSurface) Destroy() {
	slog.Debug("host: destroy shell surface", "surface", s.surface)
}

type logToplevel struct {
	surface uint32
}

func (t *logToplevel) SetParent(parent bridge.Toplevel) {
	slog.Debug("host: set parent", "surface", t.surface)
}

func (t *logToplevel) SetTitle(title string) {
	slog.Debug("host: set title", "surface", t.surface, "title", title)
}

func (t *logToplevel) SetMinSize(width, height int32) {
	slog.Debug("host: set min size", "surface", t.surface, "width", width, "height", height)
}

func (t *logToplevel) SetMaxSize(width, height int32) {
	slog.Debug("host: set max size", "surface", t.surface, "width", width, "height", height)
}

func (t *logToplevel) SetMaximized() {
	slog.Debug("host: set maximized", "surface", t.surface)
}

func (t *logToplevel) SetFullscreen() {
	slog.Debug("host: set fullscreen", "surface", t.surface)
}

func (t *logToplevel) Destroy() {
	slog.Debug("host: destroy toplevel", "surface", t.surface)
}

type logPopup struct {
	surface uint32
}

func (p *logPopup) Destroy() {
	slog.Debug("host: destroy popup", "surface", p.surface)
}

type logPositioner struct{}

func (*logPositioner) SetAnchor(a bridge.Anchor)               {}
func (*logPositioner) SetGravity(g bridge.Gravity)             {}
func (*logPositioner) SetAnchorRect(x, y, width, height int32) {}
func (*logPositioner) Destroy()                                {}

type logDecoration struct {
	surface uint32
}

func (d *logDecoration) SetFrame(t bridge.FrameType) {
	slog.Debug("host: set frame", "surface", d.surface, "type", int(t))
}

func (d *logDecoration) SetFrameColors(active, inactive uint32) {
	slog.Debug("host: set frame colors", "surface", d.surface, "active", active, "inactive", inactive)
}

func (d *logDecoration) SetStartupID(id string) {
	slog.Debug("host: set startup id", "surface", d.surface, "startup_id", id)
}

func (d *logDecoration) SetApplicationID(id string) {
	slog.Debug("host: set application id", "surface", d.surface, "app_id", id)
}

func (d *logDecoration) SetFullscreenMode(mode bridge.FullscreenMode) {
	slog.Debug("host: set fullscreen mode", "surface", d.surface, "mode", int(mode))
}

func (d *logDecoration) SetParent(parent bridge.DecorationSurface, x, y int32) {
	slog.Debug("host: set decoration parent", "surface", d.surface, "x", x, "y", y)
}

func (d *logDecoration) Destroy() {
	slog.Debug("host: destroy decoration surface", "surface", d.surface)
}
