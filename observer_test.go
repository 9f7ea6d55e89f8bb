package imageview_test

import (
	"context"
	"testing"
	"time"

	"github.com/goforj/imageview"
	"github.com/goforj/imageview/viewerfake"
)

type viewerEvent struct {
	op  string
	hit bool
	err error
}

type spyObserver struct {
	events []viewerEvent
}

func (s *spyObserver) OnViewerOp(_ context.Context, op string, _ string, hit bool, err error, _ time.Duration) {
	s.events = append(s.events, viewerEvent{op: op, hit: hit, err: err})
}

func TestObserverSeesLoadThenMissThenHit(t *testing.T) {
	fake := viewerfake.New().Add("a.png", "PNG", 1, 1)
	obs := &spyObserver{}
	p, err := imageview.NewCachingProxy(context.Background(), "a.png",
		fakeOptions(fake, &syncBuffer{}, imageview.WithObserver(obs))...)
	if err != nil {
		t.Fatalf("new proxy failed: %v", err)
	}
	_, _ = p.DisplayImage()
	_, _ = p.DisplayImage()

	want := []viewerEvent{
		{op: imageview.OpLoad},
		{op: imageview.OpDisplay, hit: false},
		{op: imageview.OpDisplay, hit: true},
	}
	if len(obs.events) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), obs.events)
	}
	for i := range want {
		if obs.events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], obs.events[i])
		}
	}
}

func TestObserverSeesLoadFailure(t *testing.T) {
	obs := &spyObserver{}
	_, err := imageview.NewCachingProxy(context.Background(), "missing.png",
		fakeOptions(viewerfake.New(), &syncBuffer{}, imageview.WithObserver(obs))...)
	if err == nil {
		t.Fatalf("expected construction failure")
	}
	if len(obs.events) != 1 || obs.events[0].op != imageview.OpLoad || obs.events[0].err == nil {
		t.Fatalf("expected one failed load event, got %+v", obs.events)
	}
}

func TestObserverFuncNilIsSafe(t *testing.T) {
	var f imageview.ObserverFunc
	f.OnViewerOp(context.Background(), imageview.OpDisplay, "x", true, nil, 0)
}
