package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"spritegen/internal/config"
	"spritegen/internal/logging"
	"spritegen/internal/pngenc"
	"spritegen/internal/sprite"
)

const fileExt = ".png"

type Generator struct {
	opts    config.Options
	logger  *logging.Logger
	stdout  io.Writer
	encoder pngenc.Encoder
}

type Result struct {
	Kind  sprite.Kind
	Path  string
	Bytes int
}

func New(opts config.Options, logger *logging.Logger, stdout io.Writer) *Generator {
	if logger == nil {
		panic("app.New: logger must not be nil")
	}
	if stdout == nil {
		panic("app.New: stdout must not be nil")
	}
	return &Generator{opts: opts, logger: logger, stdout: stdout}
}

func (g *Generator) Run() ([]Result, error) {
	return g.RunContext(context.Background())
}

// RunContext renders and writes every selected sprite, stopping at the first error.
// Cancellation is checked between sprites.
func (g *Generator) RunContext(ctx context.Context) ([]Result, error) {
	kinds, err := config.SelectedKinds(g.opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	g.logger.Debug("generating sprites",
		logging.Field("out_dir", g.opts.OutDir),
		logging.Field("count", len(kinds)),
	)

	results := make([]Result, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := g.writeSprite(kind)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		fmt.Fprintf(g.stdout, "  %s  (%d bytes)\n", res.Path, res.Bytes)
	}
	fmt.Fprintln(g.stdout, "Done.")
	g.logger.Info("sprites generated",
		logging.Field("out_dir", g.opts.OutDir),
		logging.Field("count", len(results)),
	)
	return results, nil
}

func (g *Generator) writeSprite(kind sprite.Kind) (Result, error) {
	img := kind.Render()
	data, err := g.encoder.Encode(img.Pix, img.Width, img.Height)
	if err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", kind, err)
	}
	path := SpritePath(g.opts.OutDir, kind)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", kind, err)
	}
	g.logger.Debug("sprite written",
		logging.Field("kind", kind),
		logging.Field("path", path),
		logging.Field("size", humanize.Bytes(uint64(len(data)))),
	)
	return Result{Kind: kind, Path: path, Bytes: len(data)}, nil
}

func SpritePath(dir string, kind sprite.Kind) string {
	return filepath.Join(dir, kind.String()+fileExt)
}
