package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/esimov/svg2png"
	"github.com/esimov/svg2png/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌─┐┬  ┬┌─┐┌─┐┌─┐┌┐┌┌─┐
└─┐└┐┌┘│ ┬┌─┘├─┘││││ ┬
└─┘ └┘ └─┘└─┘┴  ┘└┘└─┘

Batch SVG to PNG converter.
    Version: %s
`

// Renderer names accepted by the --renderer flag.
const (
	rendererInkscape = "inkscape"
	rendererNative   = "native"
)

type options struct {
	renderer string
	tool     string
	sort     bool
	quiet    bool
}

// newRootCmd builds the command. getenv resolves the configuration and is
// os.Getenv outside of tests.
func newRootCmd(getenv func(string) string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "svg2png",
		Short: "Convert every SVG file of the current directory to PNG",
		Long: fmt.Sprintf(helpBanner, Version) + `
Every *.svg file of the current directory is rendered into the png/
directory, cropped to its drawing area. The resolution is read from the
` + svg2png.EnvDPI + ` environment variable (default ` + svg2png.DefaultDPI + `).
The run stops at the first file which fails to convert.

Examples:
  svg2png
  DPI=600 svg2png --sort
  svg2png --renderer native`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, getenv, opts)
		},
	}

	cmd.Flags().StringVar(&opts.renderer, "renderer", rendererInkscape, "Renderer to use: inkscape or native")
	cmd.Flags().StringVar(&opts.tool, "tool", svg2png.DefaultTool, "Inkscape executable")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Convert the files in lexical order")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print progress")

	return cmd
}

func run(cmd *cobra.Command, getenv func(string) string, opts *options) error {
	cfg, err := svg2png.LoadConfig(getenv)
	if err != nil {
		return err
	}
	cfg.Sort = opts.sort

	renderer, err := selectRenderer(cmd, opts)
	if err != nil {
		return err
	}

	// Listing happens before Batch.Run creates the output directory, so a
	// listing failure leaves the working directory untouched.
	inputs, err := svg2png.ListInputs(cfg.InputDir, cfg.Sort)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	b := &svg2png.Batch{Config: cfg, Renderer: renderer}
	if !opts.quiet {
		b.Log = stderr
		if isTerminal(stderr) {
			b.Spinner = utils.NewSpinner(stderr, "", time.Millisecond*80, true)
		}
	}

	res, err := b.Run(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintf(stderr, "\n%d file(s) converted in %s\n",
			len(res.Converted),
			utils.DecorateText(utils.FormatTime(res.Elapsed), utils.SuccessMessage),
		)
	}
	return nil
}

// selectRenderer creates the Renderer named by the --renderer flag.
func selectRenderer(cmd *cobra.Command, opts *options) (svg2png.Renderer, error) {
	switch opts.renderer {
	case rendererInkscape:
		r := svg2png.NewInkscape(opts.tool)
		r.Stdout, r.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
		return r, nil
	case rendererNative:
		return svg2png.Native{}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q: must be %s or %s", opts.renderer, rendererInkscape, rendererNative)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return utils.IsTerminal(f)
}
