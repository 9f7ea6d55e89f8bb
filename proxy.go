package imageview

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"github.com/goforj/imageview/internal/optional"
)

// Diagnostic lines written to the proxy's output.
const (
	MissLine = "loading image from real viewer"
	HitLine  = "serving image from proxy cache"
)

// CachingProxy satisfies Viewer in front of a RealViewer. The first
// successful display delegates to the RealViewer and caches the handle;
// every later display is served from that cache. The cache is never
// cleared or replaced.
type CachingProxy struct {
	real *RealViewer
	cfg  ViewerConfig

	mu      sync.RWMutex
	cached  optional.Value[*Image]
	failure error

	flight singleflight.Group
	outMu  sync.Mutex
}

type flightResult struct {
	image  *Image
	loaded bool
}

// NewCachingProxy builds a proxy for source. The proxy does not decode by
// itself; it constructs the RealViewer it owns, which in LoadEager mode
// decodes immediately, so a bad source fails here with *LoadError.
// @group Viewers
//
// Example: display twice, load once
//
//	ctx := context.Background()
//	p, err := imageview.NewCachingProxy(ctx, "sample.png")
//	if err != nil {
//		return err
//	}
//	_, _ = p.DisplayImage() // loading image from real viewer / PNG / (100, 50)
//	_, _ = p.DisplayImage() // serving image from proxy cache
func NewCachingProxy(ctx context.Context, source string, opts ...ViewerOption) (*CachingProxy, error) {
	cfg := newViewerConfig(opts)

	// The proxy presents; its RealViewer only loads.
	realCfg := cfg
	realCfg.Presenter = NopPresenter{}

	rv, err := newRealViewer(ctx, source, realCfg)
	if err != nil {
		return nil, err
	}
	return &CachingProxy{real: rv, cfg: cfg}, nil
}

// Source returns the resource identifier behind the proxy.
func (p *CachingProxy) Source() string {
	return p.real.Source()
}

// Cached reports whether the proxy has captured the image handle.
func (p *CachingProxy) Cached() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cached.IsSome()
}

// DisplayImage presents the image, loading it through the RealViewer only on
// the first call.
// @group Viewers
func (p *CachingProxy) DisplayImage() (*Image, error) {
	return p.DisplayImageCtx(context.Background())
}

// DisplayImageCtx is DisplayImage with a caller context.
func (p *CachingProxy) DisplayImageCtx(ctx context.Context) (*Image, error) {
	start := time.Now()
	img, hit, err := p.resolve(ctx)
	if err != nil {
		observe(ctx, p.cfg.Observer, OpDisplay, p.Source(), false, err, start)
		return nil, err
	}
	if hit {
		p.writeLines(HitLine)
	}
	if err := p.cfg.Presenter.Present(ctx, img); err != nil {
		err = fmt.Errorf("present %q: %w", p.Source(), err)
		observe(ctx, p.cfg.Observer, OpDisplay, p.Source(), hit, err, start)
		return nil, err
	}
	p.cfg.Logger.WithFields(log.Fields{
		"source": p.Source(),
		"hit":    hit,
	}).Debug("image displayed")
	observe(ctx, p.cfg.Observer, OpDisplay, p.Source(), hit, nil, start)
	return img, nil
}

// resolve returns the cached handle, or performs the single delegation to
// the RealViewer. hit is false only for the caller whose call loaded it.
// A load aborted by the leader's context is retried by joiners whose own
// context is still live.
func (p *CachingProxy) resolve(ctx context.Context) (*Image, bool, error) {
	for {
		if img, ok, err := p.state(); ok || err != nil {
			return img, ok, err
		}

		ran := false
		v, err, _ := p.flight.Do(p.Source(), func() (any, error) {
			ran = true
			if img, ok, err := p.state(); ok || err != nil {
				return flightResult{image: img}, err
			}

			img, err := p.real.DisplayImageCtx(ctx)
			if isContextErr(err) {
				return nil, err
			}
			p.mu.Lock()
			if err != nil {
				p.failure = err
			} else {
				p.cached = optional.Some(img)
			}
			p.mu.Unlock()
			if err != nil {
				p.writeLines(MissLine)
				return nil, err
			}
			p.writeLines(MissLine, img.Format, img.Size())
			return flightResult{image: img, loaded: true}, nil
		})
		if isContextErr(err) && !ran {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, false, ctxErr
			}
			continue
		}
		if err != nil {
			return nil, false, err
		}
		res := v.(flightResult)
		return res.image, !(ran && res.loaded), nil
	}
}

// state reads the cache. A remembered failure is returned as an error so a
// failed lazy load is not attempted again.
func (p *CachingProxy) state() (*Image, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if img, ok := p.cached.Get(); ok {
		return img, true, nil
	}
	return nil, false, p.failure
}

func (p *CachingProxy) writeLines(lines ...string) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	for _, line := range lines {
		_, _ = io.WriteString(p.cfg.Output, line+"\n")
	}
}
