// Package webdebug exposes a read-only introspection API over the bridge
// registry, for poking at pairing and focus state while the daemon runs.
package webdebug

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/guestwin/xwlbridge/internal/build"
	"github.com/guestwin/xwlbridge/pkg/chiext"
)

type Server struct {
	address string
	handler http.Handler
}

func NewServer(address string, ctx *bridge.Context) Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())

	api := humachi.New(r, huma.DefaultConfig("xwlbridge debug", build.Current.Version))
	register(api, ctx)

	return Server{
		address: address,
		handler: r,
	}
}

type windowsOutput struct {
	Body struct {
		Windows []bridge.WindowSnapshot `json:"windows"`
	}
}

type focusOutput struct {
	Body struct {
		Focused bool   `json:"focused"`
		Window  uint32 `json:"window,omitempty"`
	}
}

func register(api huma.API, ctx *bridge.Context) {
	huma.Get(api, "/api/windows", func(c context.Context, input *struct{}) (*windowsOutput, error) {
		out := &windowsOutput{}
		out.Body.Windows = ctx.Snapshot()
		return out, nil
	})

	huma.Get(api, "/api/focus", func(c context.Context, input *struct{}) (*focusOutput, error) {
		out := &focusOutput{}
		out.Body.Window, out.Body.Focused = ctx.FocusSnapshot()
		return out, nil
	})
}

func (s Server) String() string {
	return "webdebug.Server"
}

// Serve runs the HTTP server until ctx is done.
func (s Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handler,
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return ctx.Err()
}
