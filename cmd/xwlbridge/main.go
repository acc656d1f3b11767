package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/google/uuid"
	"github.com/guestwin/xwlbridge/internal/bridge"
	"github.com/guestwin/xwlbridge/internal/build"
	"github.com/guestwin/xwlbridge/internal/bus"
	"github.com/guestwin/xwlbridge/internal/config"
	"github.com/guestwin/xwlbridge/internal/core"
	"github.com/guestwin/xwlbridge/internal/hostshell"
	"github.com/guestwin/xwlbridge/internal/webdebug"
	"github.com/guestwin/xwlbridge/internal/x11"
	"github.com/guestwin/xwlbridge/pkg/sutureext"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Host   string `doc:"host to serve the debug api on"`
	Port   int    `doc:"port to serve the debug api on" default:"8080"`
	Config string `doc:"config file" default:".xwlbridge.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			cfg, err := store.GetConfig()
			if err != nil {
				return err
			}

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			atoms, err := x11.InternAtoms(conn)
			if err != nil {
				return err
			}
			if err := x11.SelectRootEvents(conn); err != nil {
				return err
			}

			guest := x11.NewConn(conn, atoms)
			x11.SubscribeFocusResync(conn)

			bctx := newBridgeContext(cfg, guest, atoms)

			guestC := make(chan bridge.GuestEvent)
			// Owned by the compositor transport once one is linked in.
			hostC := make(chan bridge.HostEvent)

			super := sutureext.NewSimple("xwlbridge")
			super.Add(sutureext.NewServiceFunc("x11.ReceiveEvents", func(ctx context.Context) error {
				return x11.ReceiveEvents(ctx, conn, atoms, guestC)
			}))
			super.Add(sutureext.NewServiceFunc("bridge.Run", func(ctx context.Context) error {
				return bctx.Run(ctx, guestC, hostC)
			}))
			super.Add(webdebug.NewServer(core.Address(options.Host, options.Port), bctx))

			return super.Serve(ctx)
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func newBridgeContext(cfg config.Config, guest *x11.Conn, atoms x11.Atoms) *bridge.Context {
	bctx := bridge.NewContext()
	bctx.Guest = guest
	bctx.Shell = hostshell.Log{}
	bctx.Decoration = hostshell.Log{}
	bctx.Surfaces = hostshell.NewRegistry()
	bctx.Transform = bridge.UniformScale{Scale: cfg.Scale}
	bctx.Atoms = atoms.Atoms
	bctx.Screen = guest.Screen()

	bctx.AppIDOverride = cfg.AppIDOverride
	bctx.VMName = cfg.VMName
	if bctx.VMName == "" {
		bctx.VMName = uuid.NewString()
	}
	bctx.FrameColor = cfg.FrameColor
	bctx.DarkFrameColor = cfg.DarkFrameColor
	if cfg.FullscreenMode == "plain" {
		bctx.FullscreenMode = bridge.FullscreenModePlain
	} else {
		bctx.FullscreenMode = bridge.FullscreenModeImmersive
	}
	bctx.SuppressEmptyCommits = core.Optional(cfg.SuppressEmptyCommits, true)
	bctx.XWayland = core.Optional(cfg.XWayland, true)

	return bctx
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
