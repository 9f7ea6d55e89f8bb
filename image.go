package imageview

import (
	"fmt"
	"image"
)

// Image is the decoded handle produced by a Decoder. It is created once per
// load and never mutated afterwards; viewers share it by pointer.
type Image struct {
	// Source is the resource identifier the image was loaded from.
	Source string
	// Format is the upper-case format name reported by the decoder, e.g. "PNG".
	Format string
	Width  int
	Height int
	// Bytes is the size of the encoded data that was read.
	Bytes int64
	// Pixels holds the decoded raster. It may be nil for decoders that only
	// read metadata.
	Pixels image.Image
}

// Size renders the dimensions as "(width, height)".
func (img *Image) Size() string {
	return fmt.Sprintf("(%d, %d)", img.Width, img.Height)
}

func (img *Image) String() string {
	return fmt.Sprintf("%s %s %s", img.Source, img.Format, img.Size())
}
