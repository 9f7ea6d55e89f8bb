package imageview

import (
	"context"
	"time"
)

// Viewer operations reported to observers.
const (
	OpLoad    = "load"
	OpDisplay = "display"
)

// Observer receives events for viewer operations.
// It is called after each load or display completes.
type Observer interface {
	OnViewerOp(ctx context.Context, op string, source string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, op string, source string, hit bool, err error, dur time.Duration)

// OnViewerOp implements Observer.
func (f ObserverFunc) OnViewerOp(ctx context.Context, op string, source string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(ctx, op, source, hit, err, dur)
}

func observe(ctx context.Context, o Observer, op, source string, hit bool, err error, start time.Time) {
	if o == nil {
		return
	}
	o.OnViewerOp(ctx, op, source, hit, err, time.Since(start))
}
