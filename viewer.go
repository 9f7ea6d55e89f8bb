// Package imageview puts a caching proxy in front of an expensive image
// loader. A RealViewer owns the decoded image; a CachingProxy satisfies the
// same Viewer contract, delegates to its RealViewer on the first display and
// serves every later display from its own cache.
package imageview

import "context"

// Viewer is the capability shared by RealViewer and CachingProxy.
type Viewer interface {
	// DisplayImage presents the image and returns its handle.
	DisplayImage() (*Image, error)
	DisplayImageCtx(ctx context.Context) (*Image, error)
}

var (
	_ Viewer = (*RealViewer)(nil)
	_ Viewer = (*CachingProxy)(nil)
)
