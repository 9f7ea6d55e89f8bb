package imageview_test

import (
	"context"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/goforj/imageview"
	"github.com/goforj/imageview/viewerfake"
)

func TestRealViewerLoadsEagerly(t *testing.T) {
	fake := viewerfake.New().Add("sample.png", "PNG", 100, 50)
	out := &syncBuffer{}

	v, err := imageview.NewRealViewer(context.Background(), "sample.png", fakeOptions(fake, out)...)
	if err != nil {
		t.Fatalf("new viewer failed: %v", err)
	}
	fake.AssertCalled(t, viewerfake.OpDecode, "sample.png", 1)
	if !v.Loaded() {
		t.Fatalf("expected eager viewer to be loaded")
	}

	a, err := v.DisplayImage()
	if err != nil {
		t.Fatalf("display failed: %v", err)
	}
	b, err := v.DisplayImage()
	if err != nil {
		t.Fatalf("display failed: %v", err)
	}
	if a != b {
		t.Fatalf("expected the same handle for the viewer's lifetime")
	}
	fake.AssertCalled(t, viewerfake.OpDecode, "sample.png", 1)
	fake.AssertCalled(t, viewerfake.OpPresent, "sample.png", 2)
	if out.String() != "" {
		t.Fatalf("real viewer writes no proxy diagnostics, got %q", out.String())
	}
}

func TestRealViewerMissingSource(t *testing.T) {
	fake := viewerfake.New()
	v, err := imageview.NewRealViewer(context.Background(), "missing.png", fakeOptions(fake, &syncBuffer{})...)
	if v != nil {
		t.Fatalf("expected nil viewer on failure")
	}
	if !imageview.IsLoadError(err) || !errors.Is(err, imageview.ErrImageNotFound) {
		t.Fatalf("expected not-found load error, got %v", err)
	}
}

func TestRealViewerLazy(t *testing.T) {
	fake := viewerfake.New().Add("lazy.png", "PNG", 1, 1)
	v, err := imageview.NewRealViewer(context.Background(), "lazy.png",
		fakeOptions(fake, &syncBuffer{}, imageview.WithLoadMode(imageview.LoadLazy))...)
	if err != nil {
		t.Fatalf("new viewer failed: %v", err)
	}
	if v.Loaded() {
		t.Fatalf("lazy viewer loaded before display")
	}
	if _, err := v.DisplayImage(); err != nil {
		t.Fatalf("display failed: %v", err)
	}
	if !v.Loaded() || v.Source() != "lazy.png" {
		t.Fatalf("unexpected viewer state")
	}
}

func TestRealViewerCanceledLazyLoadRetries(t *testing.T) {
	fake := viewerfake.New().Add("lazy.png", "PNG", 3, 1)
	v, err := imageview.NewRealViewer(context.Background(), "lazy.png",
		fakeOptions(fake, &syncBuffer{}, imageview.WithLoadMode(imageview.LoadLazy))...)
	if err != nil {
		t.Fatalf("new viewer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.DisplayImageCtx(ctx); !errors.Is(err, context.Canceled) || imageview.IsLoadError(err) {
		t.Fatalf("expected bare context.Canceled, got %v", err)
	}
	if v.Loaded() {
		t.Fatalf("aborted load marked the viewer loaded")
	}

	img, err := v.DisplayImage()
	if err != nil {
		t.Fatalf("display after cancel failed: %v", err)
	}
	if img.Size() != "(3, 1)" || !v.Loaded() {
		t.Fatalf("unexpected viewer state after display")
	}
	fake.AssertCalled(t, viewerfake.OpDecode, "lazy.png", 2)
}

func TestRealViewerUnwrapsContextErrorsFromDecoder(t *testing.T) {
	dec := imageview.DecoderFunc(func(_ context.Context, source string) (*imageview.Image, error) {
		return nil, &imageview.LoadError{Source: source, Err: context.Canceled}
	})
	_, err := imageview.NewRealViewer(context.Background(), "x.png",
		imageview.WithDecoder(dec), imageview.WithLogger(quietLogger))
	if err != context.Canceled {
		t.Fatalf("expected bare context.Canceled, got %#v", err)
	}
}

func TestRealViewerWrapsForeignDecoderErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	dec := imageview.DecoderFunc(func(context.Context, string) (*imageview.Image, error) {
		return nil, boom
	})
	_, err := imageview.NewRealViewer(context.Background(), "x.png",
		imageview.WithDecoder(dec), imageview.WithLogger(quietLogger))

	var le *imageview.LoadError
	if !errors.As(err, &le) || le.Source != "x.png" || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestRealViewerRejectsNilImage(t *testing.T) {
	dec := imageview.DecoderFunc(func(context.Context, string) (*imageview.Image, error) {
		return nil, nil
	})
	_, err := imageview.NewRealViewer(context.Background(), "x.png",
		imageview.WithDecoder(dec), imageview.WithLogger(quietLogger))
	if !errors.Is(err, imageview.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRealViewerLogsLoad(t *testing.T) {
	fake := viewerfake.New().Add("sample.png", "PNG", 100, 50)
	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	_, err := imageview.NewRealViewer(context.Background(), "sample.png",
		imageview.WithDecoder(fake.Decoder()), imageview.WithLogger(logger))
	if err != nil {
		t.Fatalf("new viewer failed: %v", err)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(h.Entries))
	}
	e := h.Entries[0]
	if e.Message != "image loaded" || e.Fields.Get("format") != "PNG" || e.Fields.Get("size") != "(100, 50)" {
		t.Fatalf("unexpected entry %q %v", e.Message, e.Fields)
	}
	if e.Fields.Get("bytes") != "20 kB" {
		t.Fatalf("expected humanized bytes, got %v", e.Fields.Get("bytes"))
	}
}
