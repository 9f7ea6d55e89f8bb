package imageview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/goforj/imageview/internal/optional"
)

// RealViewer owns one decoded image. In LoadEager mode the image is decoded
// by the constructor; in LoadLazy mode by the first display. Either way the
// decoder runs at most once per RealViewer.
type RealViewer struct {
	source string
	cfg    ViewerConfig

	mu        sync.Mutex
	attempted bool
	image     optional.Value[*Image]
	loadErr   error
}

// NewRealViewer builds a viewer for source.
// @group Viewers
//
// Example: eager viewer
//
//	ctx := context.Background()
//	v, err := imageview.NewRealViewer(ctx, "sample.png")
//	if err != nil {
//		return err // *imageview.LoadError
//	}
//	img, _ := v.DisplayImage()
//	fmt.Println(img.Format, img.Size()) // PNG (100, 50)
func NewRealViewer(ctx context.Context, source string, opts ...ViewerOption) (*RealViewer, error) {
	return newRealViewer(ctx, source, newViewerConfig(opts))
}

func newRealViewer(ctx context.Context, source string, cfg ViewerConfig) (*RealViewer, error) {
	v := &RealViewer{source: source, cfg: cfg}
	if cfg.LoadMode == LoadEager {
		if _, err := v.load(ctx); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Source returns the resource identifier this viewer loads.
func (v *RealViewer) Source() string {
	return v.source
}

// Loaded reports whether the image has been decoded successfully.
func (v *RealViewer) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.image.IsSome()
}

// DisplayImage returns the loaded image, presenting it when a Presenter is
// configured. It always returns the same handle.
// @group Viewers
func (v *RealViewer) DisplayImage() (*Image, error) {
	return v.DisplayImageCtx(context.Background())
}

// DisplayImageCtx is DisplayImage with a caller context. A cancelled or
// expired ctx aborts the load without recording it, so a later call decodes.
func (v *RealViewer) DisplayImageCtx(ctx context.Context) (*Image, error) {
	img, err := v.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := v.cfg.Presenter.Present(ctx, img); err != nil {
		return nil, fmt.Errorf("present %q: %w", v.source, err)
	}
	return img, nil
}

func (v *RealViewer) load(ctx context.Context) (*Image, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.attempted {
		if err := v.decode(ctx); isContextErr(err) {
			return nil, err
		}
		v.attempted = true
	}
	if img, ok := v.image.Get(); ok {
		return img, nil
	}
	return nil, v.loadErr
}

// decode runs the decoder; callers hold v.mu. Context errors are returned
// bare and leave no state behind.
func (v *RealViewer) decode(ctx context.Context) error {
	start := time.Now()
	img, err := v.cfg.Decoder.Decode(ctx, v.source)
	if err == nil && img == nil {
		err = ErrUnsupportedFormat
	}
	if isContextErr(err) {
		err = bareContextErr(ctx, err)
		observe(ctx, v.cfg.Observer, OpLoad, v.source, false, err, start)
		v.cfg.Logger.WithError(err).WithField("source", v.source).Debug("image load aborted")
		return err
	}
	if err != nil && !IsLoadError(err) {
		err = newLoadError(v.source, err)
	}
	observe(ctx, v.cfg.Observer, OpLoad, v.source, false, err, start)
	if err != nil {
		v.loadErr = err
		v.cfg.Logger.WithError(err).WithField("source", v.source).Error("image load failed")
		return err
	}
	v.image = optional.Some(img)
	v.cfg.Logger.WithFields(log.Fields{
		"source": v.source,
		"format": img.Format,
		"size":   img.Size(),
		"bytes":  humanize.Bytes(uint64(img.Bytes)),
		"took":   time.Since(start),
	}).Debug("image loaded")
	return nil
}
