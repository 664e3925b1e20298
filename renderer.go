package svg2png

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultTool is the Inkscape binary looked up on PATH.
const DefaultTool = "inkscape"

// Renderer converts a single SVG file into a PNG file at the given resolution.
// An existing output file is overwritten.
type Renderer interface {
	Render(ctx context.Context, in, out, dpi string) error
}

// Inkscape renders through the Inkscape command line, one process per file.
type Inkscape struct {
	// Tool is the Inkscape executable, either a path or a name looked up on PATH.
	Tool string
	// Stdout and Stderr receive the output of the tool.
	Stdout io.Writer
	Stderr io.Writer
	// Env, when not nil, replaces the environment of the tool.
	Env []string
}

var _ Renderer = (*Inkscape)(nil)

// NewInkscape returns an Inkscape renderer forwarding the tool's output to
// the standard streams. An empty tool falls back to DefaultTool.
func NewInkscape(tool string) *Inkscape {
	if tool == "" {
		tool = DefaultTool
	}
	return &Inkscape{
		Tool:   tool,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Args returns the command line arguments used to render in into out.
// The export area is the drawing's bounding box, not the page.
func (r *Inkscape) Args(in, out, dpi string) []string {
	return []string{
		in,
		"--export-area-drawing",
		"--export-dpi=" + dpi,
		"--export-type=png",
		"--export-filename=" + out,
	}
}

// Render runs the tool and waits for it to exit. There is no timeout: the
// call returns when the tool does or when ctx is cancelled.
func (r *Inkscape) Render(ctx context.Context, in, out, dpi string) error {
	cmd := exec.CommandContext(ctx, r.Tool, r.Args(in, out, dpi)...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if r.Env != nil {
		cmd.Env = r.Env
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", r.Tool, err)
	}
	return nil
}
