package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/render/wiring"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

var validFormats = []string{formatSVG, formatPNG, formatDOT}

type graphOpts struct {
	output   string
	format   string
	detailed bool
}

func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts
	cmd := &cobra.Command{
		Use:   "graph <save>",
		Short: "Draw the wiring of a save",
		Long: `Draw the elements and wires of a save with Graphviz.

Without -o the file is written next to the save, named after it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := graphFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: "+strings.Join(validFormats, ", ")+" (default from -o, else svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with identifier, position and state")
	return cmd
}

// graphFormat picks the output format from --format, else from the output
// file extension, else svg.
func graphFormat(format, output string) (string, error) {
	if format == "" {
		switch ext := strings.ToLower(filepath.Ext(output)); ext {
		case "":
			format = formatSVG
		case ".gv":
			format = formatDOT
		default:
			format = ext[1:]
		}
	}
	for _, f := range validFormats {
		if format == f {
			return f, nil
		}
	}
	return "", plaxerr.New(plaxerr.ErrCodeInvalidInput, "invalid format %q (want %s)", format, strings.Join(validFormats, ", "))
}

func (c *CLI) runGraph(ctx context.Context, arg string, opts graphOpts) error {
	doc, err := c.open(arg)
	if err != nil {
		return err
	}
	st, err := doc.Status()
	if err != nil {
		return err
	}

	dot := wiring.ToDOT(st, wiring.Options{Detailed: opts.detailed, Lock: c.newEditor(doc).LockStyle()})
	data := []byte(dot)
	if opts.format != formatDOT {
		spin := newSpinner(ctx, "Rendering "+opts.format)
		spin.Start()
		prog := newProgress(c.Logger)
		data, err = renderGraph(ctx, dot, opts.format)
		if err != nil {
			spin.StopWithError("Rendering failed")
			return err
		}
		spin.Stop()
		prog.done("rendered graph", "format", opts.format, "bytes", len(data))
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(doc.Path(), filepath.Ext(doc.Path())) + "." + opts.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("Drew %d elements and %d wires", len(st.Elements), len(st.Wires))
	printFile(out)
	return nil
}

func renderGraph(ctx context.Context, dot, format string) ([]byte, error) {
	if format == formatPNG {
		return wiring.RenderPNG(ctx, dot)
	}
	return wiring.RenderSVG(ctx, dot)
}
