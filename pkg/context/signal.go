// Package context provides context utilities with proper resource cleanup
package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// WithSignal creates a context that cancels when any of the given
// signals arrives. The returned cancel function must be called to
// release the signal watcher.
func WithSignal(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	// Buffered so a signal arriving before the watcher runs isn't lost.
	ch := make(chan os.Signal, len(sigs))
	signal.Notify(ch, sigs...)

	stopCh := make(chan struct{})
	go func() {
		select {
		case <-ch:
			cancel()
		case <-stopCh:
		case <-ctx.Done():
		}
		signal.Stop(ch)
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			close(stopCh)
		})
	}
	return ctx, stop
}
