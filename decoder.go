package imageview

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder turns a resource identifier into a decoded Image.
// Failures are returned as *LoadError, except context errors, which are
// returned as is.
type Decoder interface {
	Decode(ctx context.Context, source string) (*Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, source string) (*Image, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(ctx context.Context, source string) (*Image, error) {
	return f(ctx, source)
}

// FileDecoder reads images from the local filesystem using the formats
// registered with the image package (gif, jpeg, png, bmp, tiff, webp).
type FileDecoder struct {
	// MaxBytes rejects files larger than this many bytes. Zero disables the check.
	MaxBytes int64
}

// NewFileDecoder returns a FileDecoder with the given size cap.
func NewFileDecoder(maxBytes int64) *FileDecoder {
	return &FileDecoder{MaxBytes: maxBytes}
}

// Decode implements Decoder.
func (d *FileDecoder) Decode(ctx context.Context, source string) (*Image, error) {
	if source == "" {
		return nil, newLoadError(source, ErrEmptySource)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newLoadError(source, fmt.Errorf("%w: %w", ErrImageNotFound, err))
		}
		return nil, newLoadError(source, err)
	}
	if info.IsDir() {
		return nil, newLoadError(source, fmt.Errorf("%w: %s is a directory", ErrImageNotFound, source))
	}
	if d.MaxBytes > 0 && info.Size() > d.MaxBytes {
		return nil, newLoadError(source, ErrImageTooLarge)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	defer f.Close()

	pixels, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, newLoadError(source, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err))
	}

	b := pixels.Bounds()
	return &Image{
		Source: source,
		Format: strings.ToUpper(format),
		Width:  b.Dx(),
		Height: b.Dy(),
		Bytes:  info.Size(),
		Pixels: pixels,
	}, nil
}
