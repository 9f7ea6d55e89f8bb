package imageview

import (
	"errors"
	"fmt"
	"testing"
)

func TestLoadErrorMessageAndUnwrap(t *testing.T) {
	err := newLoadError("missing.png", ErrImageNotFound)
	if got := err.Error(); got != `load "missing.png": imageview: image not found` {
		t.Fatalf("unexpected message: %s", got)
	}
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected unwrap to sentinel")
	}
}

func TestIsLoadErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("startup: %w", newLoadError("x", ErrUnsupportedFormat))
	if !IsLoadError(wrapped) {
		t.Fatalf("expected wrapped load error to match")
	}
	if IsLoadError(errors.New("other")) || IsLoadError(nil) {
		t.Fatalf("expected non-load errors not to match")
	}
}
