package imageview

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/dustin/go-humanize"
)

// Presenter performs the presentation side effect for a displayed image.
type Presenter interface {
	Present(ctx context.Context, img *Image) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(ctx context.Context, img *Image) error

// Present implements Presenter.
func (f PresenterFunc) Present(ctx context.Context, img *Image) error {
	if f == nil {
		return nil
	}
	return f(ctx, img)
}

// NopPresenter presents nothing.
type NopPresenter struct{}

// Present implements Presenter.
func (NopPresenter) Present(context.Context, *Image) error { return nil }

// WriterPresenter writes a one-line summary of each presented image.
type WriterPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterPresenter returns a WriterPresenter writing to w.
func NewWriterPresenter(w io.Writer) *WriterPresenter {
	return &WriterPresenter{out: w}
}

// Present implements Presenter.
func (p *WriterPresenter) Present(_ context.Context, img *Image) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.out, "showing %s [%s %dx%d, %s]\n",
		img.Source, img.Format, img.Width, img.Height, humanize.Bytes(uint64(img.Bytes)))
	return err
}

// OpenPresenter writes a PNG preview of the image to a temporary file and
// hands it to the platform's file opener.
type OpenPresenter struct {
	// Dir holds preview files. Empty means os.TempDir().
	Dir string
	// Command overrides the opener; the preview path is appended as the last
	// argument.
	Command []string

	run func(ctx context.Context, name string, args ...string) error
}

// NewOpenPresenter returns an OpenPresenter using the platform opener.
func NewOpenPresenter() *OpenPresenter {
	return &OpenPresenter{}
}

// Present implements Presenter.
func (p *OpenPresenter) Present(ctx context.Context, img *Image) error {
	if img.Pixels == nil {
		return errors.New("imageview: image has no pixel data to preview")
	}
	f, err := os.CreateTemp(p.Dir, "imageview-*.png")
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := png.Encode(f, img.Pixels); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("write preview: %w", err)
	}

	argv := append(p.command(), f.Name())
	run := p.run
	if run == nil {
		run = startCommand
	}
	if err := run(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("open preview: %w", err)
	}
	return nil
}

func (p *OpenPresenter) command() []string {
	if len(p.Command) > 0 {
		return append([]string(nil), p.Command...)
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

// startCommand launches the opener without waiting for the viewer window to close.
func startCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
