package imageview_test

import (
	"bytes"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/goforj/imageview"
	"github.com/goforj/imageview/viewerfake"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var quietLogger = &log.Logger{Handler: discard.Default, Level: log.FatalLevel}

func fakeOptions(fake *viewerfake.Fake, out *syncBuffer, extra ...imageview.ViewerOption) []imageview.ViewerOption {
	opts := []imageview.ViewerOption{
		imageview.WithDecoder(fake.Decoder()),
		imageview.WithPresenter(fake.Presenter()),
		imageview.WithOutput(out),
		imageview.WithLogger(quietLogger),
	}
	return append(opts, extra...)
}
