// Command imageview displays images through caching proxies: each path is
// loaded once and every further display is served from the proxy's cache.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/goforj/imageview"
	mylog "github.com/goforj/imageview/internal/log"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitLoad  = 2
)

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func main() {
	os.Exit(realMain(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitLoad
	}
	return exitOK
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "imageview",
		Usage:     "display images through a caching proxy",
		ArgsUsage: "PATH...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "times",
				Aliases: []string{"n"},
				Usage:   "how many times to display each image",
				Value:   2,
			},
			&cli.StringFlag{
				Name:  "present",
				Usage: "presentation: none, text or open",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "lazy",
				Usage: "defer decoding until the first display",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Usage: "refuse image files larger than this many bytes",
				Value: 64 << 20,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn, error or fatal",
				Sources: cli.EnvVars(mylog.EnvLevel),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, stdout, stderr)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return usageError{"no image path given"}
	}
	times := int(cmd.Int("times"))
	if times < 1 {
		return usageError{fmt.Sprintf("--times must be at least 1, got %d", times)}
	}
	presenter, err := presenterFor(cmd.String("present"), stdout)
	if err != nil {
		return err
	}
	if err := mylog.InitLogger(stderr, cmd.String("log-level")); err != nil {
		return usageError{err.Error()}
	}

	mode := imageview.LoadEager
	if cmd.Bool("lazy") {
		mode = imageview.LoadLazy
	}
	gallery := imageview.NewGallery(
		imageview.WithOutput(stdout),
		imageview.WithPresenter(presenter),
		imageview.WithLoadMode(mode),
		imageview.WithMaxBytes(int64(cmd.Int("max-bytes"))),
	)

	for _, path := range paths {
		proxy, err := gallery.Proxy(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "proxy %p\n", proxy)
		for i := 0; i < times; i++ {
			if _, err := proxy.DisplayImageCtx(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func presenterFor(name string, stdout io.Writer) (imageview.Presenter, error) {
	switch name {
	case "none":
		return imageview.NopPresenter{}, nil
	case "text", "":
		return imageview.NewWriterPresenter(stdout), nil
	case "open":
		return imageview.NewOpenPresenter(), nil
	default:
		return nil, usageError{fmt.Sprintf("unknown --present value %q", name)}
	}
}
