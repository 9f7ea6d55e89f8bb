package viewertest

import (
	"context"
	"sync"
	"testing"

	"github.com/goforj/imageview"
)

// Options configures the shared viewer contract checks.
type Options struct {
	// Displays is how many sequential displays to perform. Defaults to 3.
	Displays int
	// Concurrent is how many parallel displays to perform after the
	// sequential ones. Zero skips the concurrent check.
	Concurrent int
	// Format, Width and Height are checked when non-zero.
	Format string
	Width  int
	Height int
}

// RunViewerContract checks that v returns one stable handle: every display
// succeeds and yields the same *Image, whose metadata matches opts.
func RunViewerContract(t *testing.T, v imageview.Viewer, opts Options) {
	t.Helper()

	displays := opts.Displays
	if displays <= 0 {
		displays = 3
	}

	first, err := v.DisplayImage()
	if err != nil {
		t.Fatalf("first display failed: %v", err)
	}
	if first == nil {
		t.Fatalf("first display returned a nil image")
	}
	if opts.Format != "" && first.Format != opts.Format {
		t.Fatalf("expected format %q, got %q", opts.Format, first.Format)
	}
	if opts.Width != 0 && first.Width != opts.Width {
		t.Fatalf("expected width %d, got %d", opts.Width, first.Width)
	}
	if opts.Height != 0 && first.Height != opts.Height {
		t.Fatalf("expected height %d, got %d", opts.Height, first.Height)
	}

	for i := 1; i < displays; i++ {
		img, err := v.DisplayImageCtx(context.Background())
		if err != nil {
			t.Fatalf("display %d failed: %v", i, err)
		}
		if img != first {
			t.Fatalf("display %d returned a different handle", i)
		}
	}

	if opts.Concurrent <= 0 {
		return
	}
	var wg sync.WaitGroup
	errs := make(chan string, opts.Concurrent)
	wg.Add(opts.Concurrent)
	for i := 0; i < opts.Concurrent; i++ {
		go func() {
			defer wg.Done()
			img, err := v.DisplayImage()
			switch {
			case err != nil:
				errs <- "concurrent display failed: " + err.Error()
			case img != first:
				errs <- "concurrent display returned a different handle"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}
