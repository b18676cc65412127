package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/boxlayout/internal/config"
	"github.com/grindlemire/boxlayout/internal/layout"
)

func (c *CLI) computeCommand() *cobra.Command {
	var (
		vf          viewportFlags
		output      string
		stdinFormat string
	)

	cmd := &cobra.Command{
		Use:   "compute <design>...",
		Short: "Compute and print the layout of design documents",
		Long: `Compute and print the layout of design documents.

Each argument is a TOML, YAML or JSON node document ("-" reads stdin and
requires --format). Every node is listed with its rectangle, content box
and warnings.

Examples:
  boxlayout compute screen.toml
  boxlayout compute -W 120 -H 40 --output json screen.yaml
  cat screen.json | boxlayout compute --format json -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = c.cfg.Output.Format
			}
			return c.runCompute(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args, c.viewport(cmd, vf), output, stdinFormat)
		},
	}

	addViewportFlags(cmd, &vf)
	cmd.Flags().StringVarP(&output, "output", "o", "", "report format: table or json (default: config, then table)")
	cmd.Flags().StringVar(&stdinFormat, "format", "", "document format when reading stdin: toml, yaml or json")

	return cmd
}

func (c *CLI) runCompute(ctx context.Context, w io.Writer, stdin io.Reader, paths []string, vp layout.Viewport, output, stdinFormat string) error {
	if output != config.OutputTable && output != config.OutputJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", output, config.OutputTable, config.OutputJSON)
	}
	if err := countStdin(paths); err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	designs, err := c.computeAll(ctx, paths, vp, stdin, stdinFormat)
	if err != nil {
		return err
	}

	reports := make([]designReport, len(designs))
	for i, d := range designs {
		reports[i] = buildReport(d)
	}

	if output == config.OutputJSON {
		if err := writeJSON(w, reports); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else {
		writeTable(w, reports)
	}

	prog.done(fmt.Sprintf("Computed %d design(s)", len(designs)))
	return nil
}
