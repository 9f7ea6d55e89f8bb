package imageview

import (
	"io"

	"github.com/apex/log"
)

// ViewerOption mutates ViewerConfig when constructing a viewer.
type ViewerOption func(ViewerConfig) ViewerConfig

// WithDecoder replaces the default file decoder.
func WithDecoder(d Decoder) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.Decoder = d
		return cfg
	}
}

// WithPresenter sets the presentation side effect run on every display.
func WithPresenter(p Presenter) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.Presenter = p
		return cfg
	}
}

// WithOutput redirects the proxy's hit/miss and metadata lines.
func WithOutput(w io.Writer) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.Output = w
		return cfg
	}
}

// WithLogger sets the structured logger.
func WithLogger(l log.Interface) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.Logger = l
		return cfg
	}
}

// WithObserver attaches an observer to receive load and display events.
func WithObserver(o Observer) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.Observer = o
		return cfg
	}
}

// WithLoadMode selects eager (default) or lazy decoding.
func WithLoadMode(mode LoadMode) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.LoadMode = mode
		return cfg
	}
}

// WithMaxBytes caps the size of files the default decoder will read.
func WithMaxBytes(n int64) ViewerOption {
	return func(cfg ViewerConfig) ViewerConfig {
		cfg.MaxBytes = n
		return cfg
	}
}
