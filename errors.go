package imageview

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned for an empty resource identifier.
	ErrEmptySource = errors.New("imageview: empty image source")
	// ErrImageNotFound is returned when the source does not name a readable file.
	ErrImageNotFound = errors.New("imageview: image not found")
	// ErrUnsupportedFormat is returned when no registered decoder accepts the data.
	ErrUnsupportedFormat = errors.New("imageview: unsupported or corrupt image data")
	// ErrImageTooLarge is returned when the file exceeds the configured max bytes.
	ErrImageTooLarge = errors.New("imageview: image exceeds max size")
)

// LoadError reports that Source could not be resolved to image data.
// Err is one of the sentinel errors above, possibly wrapping the
// underlying filesystem or decoder error.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether any error in err's chain is a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

func newLoadError(source string, cause error) *LoadError {
	return &LoadError{Source: source, Err: cause}
}

// isContextErr reports whether err comes from a cancelled or expired context.
// Such errors are the caller's, not the source's, and are never remembered.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// bareContextErr strips any *LoadError wrapping from a context error.
func bareContextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return context.DeadlineExceeded
	}
	return context.Canceled
}
