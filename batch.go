package svg2png

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/svg2png/utils"
)

// Batch converts a list of SVG files one after another.
type Batch struct {
	Config   *Config
	Renderer Renderer
	// Spinner, when set, is shown while each file is being rendered.
	Spinner *utils.Spinner
	// Log receives one status line per converted file. Nil discards them.
	Log io.Writer
}

// Result holds the relevant information about a completed batch.
type Result struct {
	Converted []string // output paths, in conversion order
	Elapsed   time.Duration
}

// Run makes sure the output directory exists, then renders every input in
// the given order. The first failing conversion stops the batch: its error
// is returned as a *ConversionError and the remaining inputs are left
// untouched. Outputs written before the failure are kept.
func (b *Batch) Run(ctx context.Context, inputs []string) (*Result, error) {
	now := time.Now()
	res := &Result{}

	if err := os.MkdirAll(b.Config.OutputDir, 0755); err != nil {
		return res, fmt.Errorf("unable to create the destination directory: %w", err)
	}

	for i, in := range inputs {
		out := OutputPath(b.Config.OutputDir, in)
		if err := b.process(ctx, in, out); err != nil {
			res.Elapsed = time.Since(now)
			return res, &ConversionError{Index: i, Input: in, Output: out, Err: err}
		}
		res.Converted = append(res.Converted, out)
		b.printf("%s %s %s\n",
			utils.DecorateText(fmt.Sprintf("[%d/%d]", i+1, len(inputs)), utils.StatusMessage),
			filepath.Base(in),
			utils.DecorateText("⇢ "+out, utils.SuccessMessage),
		)
	}
	res.Elapsed = time.Since(now)

	return res, nil
}

// process renders a single file while the progress indicator is running.
func (b *Batch) process(ctx context.Context, in, out string) error {
	if b.Spinner == nil {
		return b.Renderer.Render(ctx, in, out, b.Config.DPI)
	}

	b.Spinner.SetMessage(fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SVG2PNG", utils.StatusMessage),
		utils.DecorateText("⇢ rendering "+filepath.Base(in)+"...", utils.DefaultMessage),
	))
	b.Spinner.StopMsg = ""
	b.Spinner.Start()
	defer b.Spinner.Stop()

	return b.Renderer.Render(ctx, in, out, b.Config.DPI)
}

func (b *Batch) printf(format string, args ...any) {
	if b.Log == nil {
		return
	}
	fmt.Fprintf(b.Log, format, args...)
}
