// Package bus is a process-wide typed pub/sub used for notifications that
// must not couple the bridge loop to its consumers, such as focus-resync
// requests toward the X adapter.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ctx = context.Background()

func SetContext(ctx context.Context) {
	_ctx = ctx
}

var (
	mu   sync.Mutex
	subs = make(map[string][]func(ctx context.Context, event any))
)

func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	topic := fmt.Sprintf("%T", *new(T))
	mu.Lock()
	subs[topic] = append(subs[topic], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
	mu.Unlock()
}

func Publish[T any](event T) {
	mu.Lock()
	fns := subs[fmt.Sprintf("%T", event)]
	mu.Unlock()

	for _, fn := range fns {
		fn(_ctx, event)
	}
}
