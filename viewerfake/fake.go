// Package viewerfake provides an in-memory Decoder and Presenter with call
// counting and assertion helpers, so viewer code can be tested without
// image files.
package viewerfake

import (
	"context"
	"fmt"
	"image"
	"sync"
	"testing"

	"github.com/goforj/imageview"
)

// Op identifies a collaborator call for assertions.
type Op string

const (
	OpDecode  Op = "decode"
	OpPresent Op = "present"
)

// Fake holds registered images and counts decode/present calls per source.
type Fake struct {
	mu     sync.Mutex
	images map[string]imageSpec
	counts map[Op]map[string]int
	shown  []*imageview.Image
}

type imageSpec struct {
	format string
	width  int
	height int
	err    error
}

// New returns an empty Fake. Unregistered sources fail to decode with
// imageview.ErrImageNotFound.
func New() *Fake {
	return &Fake{
		images: make(map[string]imageSpec),
		counts: make(map[Op]map[string]int),
	}
}

// Add registers source as an image of the given format and size.
func (f *Fake) Add(source, format string, width, height int) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[source] = imageSpec{format: format, width: width, height: height}
	return f
}

// Fail makes decoding source return err wrapped in a *imageview.LoadError.
func (f *Fake) Fail(source string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[source] = imageSpec{err: err}
	return f
}

// Decoder returns a Decoder backed by the registered images. Each call
// builds a new *imageview.Image, so identical pointers prove a cache hit.
func (f *Fake) Decoder() imageview.Decoder {
	return imageview.DecoderFunc(func(ctx context.Context, source string) (*imageview.Image, error) {
		f.record(OpDecode, source)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f.mu.Lock()
		spec, ok := f.images[source]
		f.mu.Unlock()
		if !ok {
			return nil, &imageview.LoadError{
				Source: source,
				Err:    fmt.Errorf("%w: %s", imageview.ErrImageNotFound, source),
			}
		}
		if spec.err != nil {
			return nil, &imageview.LoadError{Source: source, Err: spec.err}
		}
		return &imageview.Image{
			Source: source,
			Format: spec.format,
			Width:  spec.width,
			Height: spec.height,
			Bytes:  int64(spec.width * spec.height * 4),
			Pixels: image.NewRGBA(image.Rect(0, 0, spec.width, spec.height)),
		}, nil
	})
}

// Presenter returns a Presenter that records every presented image.
func (f *Fake) Presenter() imageview.Presenter {
	return imageview.PresenterFunc(func(_ context.Context, img *imageview.Image) error {
		f.record(OpPresent, img.Source)
		f.mu.Lock()
		f.shown = append(f.shown, img)
		f.mu.Unlock()
		return nil
	})
}

// Shown returns the presented images in order.
func (f *Fake) Shown() []*imageview.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*imageview.Image(nil), f.shown...)
}

// Reset clears recorded counts and presented images.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
	f.shown = nil
}

// AssertCalled verifies source was touched by op the expected number of times.
func (f *Fake) AssertCalled(t *testing.T, op Op, source string, times int) {
	t.Helper()
	if got := f.Count(op, source); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, source, times, got)
	}
}

// AssertNotCalled ensures source was never touched by op.
func (f *Fake) AssertNotCalled(t *testing.T, op Op, source string) {
	t.Helper()
	if got := f.Count(op, source); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, source, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t *testing.T, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+source.
func (f *Fake) Count(op Op, source string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][source]
}

// Total returns total calls for an op across sources.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) record(op Op, source string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][source]++
}
