// Package viewertest provides a reusable contract suite for imageview.Viewer
// implementations.
//
// Example pattern:
//
//	func TestMyViewerContract(t *testing.T) {
//		v, err := newMyViewer("sample.png")
//		if err != nil {
//			t.Fatalf("new viewer: %v", err)
//		}
//		viewertest.RunViewerContract(t, v, viewertest.Options{
//			Format: "PNG",
//			Width:  100,
//			Height: 50,
//		})
//	}
package viewertest
