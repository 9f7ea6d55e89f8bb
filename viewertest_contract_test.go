package imageview_test

import (
	"context"
	"testing"

	"github.com/goforj/imageview"
	"github.com/goforj/imageview/viewerfake"
	"github.com/goforj/imageview/viewertest"
)

func TestViewerContract(t *testing.T) {
	ctx := context.Background()
	want := viewertest.Options{Displays: 4, Concurrent: 8, Format: "PNG", Width: 100, Height: 50}

	cases := []struct {
		name string
		mk   func(opts ...imageview.ViewerOption) (imageview.Viewer, error)
	}{
		{"real", func(opts ...imageview.ViewerOption) (imageview.Viewer, error) {
			return imageview.NewRealViewer(ctx, "sample.png", opts...)
		}},
		{"proxy", func(opts ...imageview.ViewerOption) (imageview.Viewer, error) {
			return imageview.NewCachingProxy(ctx, "sample.png", opts...)
		}},
	}
	for _, tc := range cases {
		for _, mode := range []imageview.LoadMode{imageview.LoadEager, imageview.LoadLazy} {
			t.Run(tc.name+"/"+string(mode), func(t *testing.T) {
				fake := viewerfake.New().Add("sample.png", "PNG", 100, 50)
				v, err := tc.mk(fakeOptions(fake, &syncBuffer{}, imageview.WithLoadMode(mode))...)
				if err != nil {
					t.Fatalf("new viewer failed: %v", err)
				}
				viewertest.RunViewerContract(t, v, want)
				fake.AssertTotal(t, viewerfake.OpDecode, 1)
			})
		}
	}
}
