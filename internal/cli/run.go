package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/boxlayout/internal/document"
	"github.com/grindlemire/boxlayout/internal/layout"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

// design is one loaded document and its computed layout.
type design struct {
	path   string
	root   *layout.Node
	result *layout.Result
}

// computeAll loads and lays out every path concurrently. Results keep the
// order of paths. The first load error cancels the rest.
func (c *CLI) computeAll(ctx context.Context, paths []string, vp layout.Viewport, stdin io.Reader, stdinFormat string) ([]design, error) {
	logger := loggerFromContext(ctx)
	designs := make([]design, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := loadDesign(path, stdin, stdinFormat)
			if err != nil {
				logger.Debug("design failed to load", "path", path, "code", document.GetCode(err))
				if document.Is(err, document.ErrCodeFileNotFound) {
					return fmt.Errorf("%w (pass %q to read a design from stdin)", err, stdinPath)
				}
				return err
			}
			res := layout.Compute(root, vp, layout.WithLogger(c.engineLogger().With("design", path)))
			logger.Debug("design computed", "path", path, "nodes", res.Len(), "warnings", res.WarningCount())
			designs[i] = design{path: path, root: root, result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return designs, nil
}

func loadDesign(path string, stdin io.Reader, stdinFormat string) (*layout.Node, error) {
	if path != stdinPath {
		return document.Load(path)
	}
	if stdinFormat == "" {
		return nil, fmt.Errorf("reading from stdin requires --format (%v)", document.Formats())
	}
	format, err := document.ParseFormat(stdinFormat)
	if err != nil {
		return nil, err
	}
	root, err := document.Decode(stdin, format)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return root, nil
}

// countStdin rejects more than one "-" argument, since stdin can only be
// read once.
func countStdin(paths []string) error {
	n := 0
	for _, p := range paths {
		if p == stdinPath {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("stdin (%q) may be given at most once", stdinPath)
	}
	return nil
}
