package bridge

import (
	"slices"
	"testing"
)

func TestPairingIsIdempotent(t *testing.T) {
	ctx, rec, guest, resolver := newTestContext()
	w, _ := pairWindow(ctx, resolver, rec, 1, 10)
	ctx.HandleHostEvent(SurfaceContentsChanged{SurfaceID: 10, Width: 100, Height: 100})

	ctx.UpdateWindow(w)

	for _, event := range []string{"create shell 10", "create toplevel 10", "create decoration 10"} {
		if rec.count(event) != 1 {
			t.Fatalf("%q issued %d times, want 1", event, rec.count(event))
		}
	}
	if guest.depthCalls != 1 {
		t.Fatalf("depth queried %d times, want 1", guest.depthCalls)
	}

	// Metadata pushes repeat, with identical content.
	d := w.decoration.(*fakeDecoration)
	if len(d.appIDs) != 2 || d.appIDs[0] != d.appIDs[1] {
		t.Fatalf("app id pushes = %v, want two identical", d.appIDs)
	}
	if len(d.frames) != 2 || d.frames[0] != d.frames[1] {
		t.Fatalf("frame pushes = %v, want two identical", d.frames)
	}
}

func TestPairingForwardsHintsAndRequestedState(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()

	w := ctx.NewWindow(1, 0, 0, 200, 150, 0)
	w.Name = "term"
	w.SizeFlags = PMinSize | PMaxSize
	w.MinWidth, w.MinHeight = 10, 20
	w.MaxWidth, w.MaxHeight = 300, 400
	w.Maximized = true
	w.Fullscreen = true

	hs := &HostSurface{ID: 10, Proxy: fakeProxy{rec: rec, id: 10}}
	resolver[10] = hs
	w.HostSurfaceID = 10
	ctx.UpdateWindow(w)

	for _, event := range []string{"min size 10x20", "max size 300x400", "set maximized 10", "set fullscreen 10"} {
		if rec.count(event) != 1 {
			t.Fatalf("%q issued %d times, want 1", event, rec.count(event))
		}
	}
	if title := w.toplevel.(*fakeToplevel).title; title != "term" {
		t.Fatalf("toplevel title = %q, want %q", title, "term")
	}
	if w.Unpaired {
		t.Fatal("window still marked unpaired")
	}
	if w.PairedSurface != hs {
		t.Fatal("paired surface not recorded")
	}
}

func TestUnpairingTearsDownInOrder(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()
	w, _ := pairWindow(ctx, resolver, rec, 1, 10)
	ctx.HandleHostEvent(SurfaceContentsChanged{SurfaceID: 10, Width: 100, Height: 100})
	delete(resolver, 10)

	ctx.HandleHostEvent(SurfaceDestroyed{SurfaceID: 10})

	decoration := slices.Index(rec.events, "destroy decoration 10")
	toplevel := slices.Index(rec.events, "destroy toplevel 10")
	shell := slices.Index(rec.events, "destroy shell 10")
	if decoration == -1 || toplevel == -1 || shell == -1 {
		t.Fatalf("missing teardown requests: %v", rec.events)
	}
	if !(decoration < toplevel && toplevel < shell) {
		t.Fatalf("teardown out of order: %v", rec.events)
	}
	if !w.Unpaired || w.Realized {
		t.Fatalf("unpaired=%v realized=%v after surface loss", w.Unpaired, w.Realized)
	}
	if ctx.Lookup(1) != w {
		t.Fatal("window entity must survive surface loss")
	}
}

func TestRepairingWithFreshSurface(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()
	w, _ := pairWindow(ctx, resolver, rec, 1, 10)
	delete(resolver, 10)
	ctx.HandleHostEvent(SurfaceDestroyed{SurfaceID: 10})

	resolver[11] = &HostSurface{ID: 11, Proxy: fakeProxy{rec: rec, id: 11}}
	ctx.HandleGuestEvent(WindowSurfaceAssigned{ID: 1, SurfaceID: 11})

	if rec.count("create shell 11") != 1 || rec.count("create toplevel 11") != 1 {
		t.Fatalf("host objects not rebuilt: %v", rec.events)
	}
	if w.Unpaired {
		t.Fatal("window still marked unpaired after reassignment")
	}
}

func TestPairingSurfaceWithRolePanics(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()

	w := ctx.NewWindow(1, 0, 0, 100, 100, 0)
	resolver[10] = &HostSurface{ID: 10, Proxy: fakeProxy{rec: rec, id: 10}, HasRole: true}
	w.HostSurfaceID = 10

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when the surface already holds a role")
		}
	}()
	ctx.UpdateWindow(w)
}

func TestUnmanagedTransientBecomesPopup(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()
	ctx.XWayland = false

	_, _ = pairWindow(ctx, resolver, rec, 1, 10)
	ctx.HandleHostEvent(SurfaceContentsChanged{SurfaceID: 10, Width: 100, Height: 100})

	child := ctx.NewWindow(2, 30, 40, 20, 20, 0)
	child.Managed = false
	resolver[11] = &HostSurface{ID: 11, Proxy: fakeProxy{rec: rec, id: 11}}
	child.HostSurfaceID = 11
	ctx.UpdateWindow(child)

	if rec.count("create popup 11 parent 10") != 1 {
		t.Fatalf("popup role not created: %v", rec.events)
	}
	if rec.count("anchor rect 30,40 1x1") != 1 {
		t.Fatalf("positioner not anchored at the parent offset: %v", rec.events)
	}
	if rec.count("create toplevel 11") != 0 {
		t.Fatal("child must not also get a toplevel role")
	}
}

func TestEveryWindowGetsToplevelUnderFullTranslation(t *testing.T) {
	ctx, rec, _, resolver := newTestContext()

	_, _ = pairWindow(ctx, resolver, rec, 1, 10)
	ctx.HandleHostEvent(SurfaceContentsChanged{SurfaceID: 10, Width: 100, Height: 100})

	child := ctx.NewWindow(2, 30, 40, 20, 20, 0)
	child.Managed = false
	resolver[11] = &HostSurface{ID: 11, Proxy: fakeProxy{rec: rec, id: 11}}
	child.HostSurfaceID = 11
	ctx.UpdateWindow(child)

	if rec.count("create toplevel 11") != 1 {
		t.Fatalf("toplevel role not created: %v", rec.events)
	}
	if rec.count("create popup 11 parent 10") != 0 {
		t.Fatal("popup role must not be used when translating a whole window system")
	}
}
