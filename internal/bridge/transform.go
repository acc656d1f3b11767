package bridge

// Transform converts between guest pixel and host logical coordinate
// spaces. Consumed as a black box; the bridge never does scale math itself.
type Transform interface {
	// HostToGuest converts a logical size or offset into guest pixels.
	HostToGuest(s *HostSurface, x, y int32) (int32, int32)
	// GuestToHost converts guest pixels into logical coordinates.
	GuestToHost(s *HostSurface, x, y int32) (int32, int32)
	// TryWindowScale renegotiates the per-surface scale so the buffer can
	// stay at the guest size the application last chose.
	TryWindowScale(s *HostSurface, width, height int32)
}

// UniformScale applies one global scale factor and gives surfaces that own
// their scale a cached logical size derived from the guest size.
type UniformScale struct {
	Scale float64
}

func (t UniformScale) factor() float64 {
	if t.Scale <= 0 {
		return 1
	}
	return t.Scale
}

func (t UniformScale) HostToGuest(s *HostSurface, x, y int32) (int32, int32) {
	f := t.factor()
	return int32(float64(x) * f), int32(float64(y) * f)
}

func (t UniformScale) GuestToHost(s *HostSurface, x, y int32) (int32, int32) {
	f := t.factor()
	return int32(float64(x) / f), int32(float64(y) / f)
}

func (t UniformScale) TryWindowScale(s *HostSurface, width, height int32) {
	if s == nil || !s.HasOwnScale {
		return
	}
	f := t.factor()
	s.CachedLogicalWidth = int32(float64(width) / f)
	s.CachedLogicalHeight = int32(float64(height) / f)
}
