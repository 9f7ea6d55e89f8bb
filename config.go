package imageview

import (
	"io"
	"os"

	"github.com/apex/log"
)

const defaultMaxImageBytes int64 = 64 << 20

// LoadMode selects when a RealViewer decodes its image.
type LoadMode string

const (
	// LoadEager decodes in the constructor; a bad source fails construction.
	LoadEager LoadMode = "eager"
	// LoadLazy defers decoding to the first display.
	LoadLazy LoadMode = "lazy"
)

// ViewerConfig controls how viewers are constructed.
type ViewerConfig struct {
	// Decoder loads images. Defaults to a FileDecoder capped at MaxBytes.
	Decoder Decoder

	// Presenter performs the presentation side effect. Defaults to NopPresenter.
	Presenter Presenter

	// Output receives the proxy's diagnostic lines. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives structured events. Defaults to the apex package logger.
	Logger log.Interface

	Observer Observer

	// LoadMode defaults to LoadEager.
	LoadMode LoadMode

	// MaxBytes caps the default FileDecoder. Ignored when Decoder is set.
	MaxBytes int64
}

func (c ViewerConfig) withDefaults() ViewerConfig {
	if c.MaxBytes <= 0 {
		c.MaxBytes = defaultMaxImageBytes
	}
	if c.Decoder == nil {
		c.Decoder = NewFileDecoder(c.MaxBytes)
	}
	if c.Presenter == nil {
		c.Presenter = NopPresenter{}
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = log.Log
	}
	if c.LoadMode == "" {
		c.LoadMode = LoadEager
	}
	return c
}

func newViewerConfig(opts []ViewerOption) ViewerConfig {
	var cfg ViewerConfig
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return cfg.withDefaults()
}
