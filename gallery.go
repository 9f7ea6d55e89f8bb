package imageview

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Gallery hands out one CachingProxy per source so repeated requests for the
// same image share a single load. Proxies are kept for the lifetime of the
// gallery; there is no expiry or eviction.
type Gallery struct {
	opts    []ViewerOption
	proxies *gocache.Cache
	mu      sync.Mutex
}

// NewGallery returns an empty gallery whose proxies are built with opts.
// @group Gallery
//
// Example: shared proxy per path
//
//	ctx := context.Background()
//	g := imageview.NewGallery(imageview.WithPresenter(imageview.NopPresenter{}))
//	a, _ := g.Proxy(ctx, "sample.png")
//	b, _ := g.Proxy(ctx, "./sample.png")
//	fmt.Println(a == b) // true
func NewGallery(opts ...ViewerOption) *Gallery {
	return &Gallery{
		opts:    opts,
		proxies: gocache.New(gocache.NoExpiration, 0),
	}
}

// Proxy returns the gallery's proxy for source, constructing it on first
// use. A construction failure is returned and nothing is stored, so a later
// call tries again with a fresh proxy.
func (g *Gallery) Proxy(ctx context.Context, source string) (*CachingProxy, error) {
	key := galleryKey(source)

	g.mu.Lock()
	defer g.mu.Unlock()

	if item, ok := g.proxies.Get(key); ok {
		return item.(*CachingProxy), nil
	}
	p, err := NewCachingProxy(ctx, source, g.opts...)
	if err != nil {
		return nil, err
	}
	g.proxies.Set(key, p, gocache.NoExpiration)
	return p, nil
}

// Display is Proxy followed by DisplayImageCtx.
func (g *Gallery) Display(ctx context.Context, source string) (*Image, error) {
	p, err := g.Proxy(ctx, source)
	if err != nil {
		return nil, err
	}
	return p.DisplayImageCtx(ctx)
}

// Sources lists the sources with a proxy, sorted.
func (g *Gallery) Sources() []string {
	items := g.proxies.Items()
	out := make([]string, 0, len(items))
	for key := range items {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Len reports how many proxies the gallery holds.
func (g *Gallery) Len() int {
	return g.proxies.ItemCount()
}

func galleryKey(source string) string {
	if source == "" {
		return ""
	}
	return filepath.Clean(source)
}
