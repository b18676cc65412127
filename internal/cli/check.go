package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// ErrWarnings is returned by check when any design has layout warnings.
var ErrWarnings = errors.New("layout warnings found")

func (c *CLI) checkCommand() *cobra.Command {
	var (
		vf          viewportFlags
		stdinFormat string
	)

	cmd := &cobra.Command{
		Use:   "check <design>...",
		Short: "Report layout warnings and fail if there are any",
		Long: `Lay out design documents and list every warning (overflow, negative
space, constraint violations, cycles). The command exits non-zero when any
design has a warning, which makes it suitable for CI.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args, c.viewport(cmd, vf), stdinFormat)
		},
	}

	addViewportFlags(cmd, &vf)
	cmd.Flags().StringVar(&stdinFormat, "format", "", "document format when reading stdin: toml, yaml or json")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, w io.Writer, stdin io.Reader, paths []string, vp layout.Viewport, stdinFormat string) error {
	if err := countStdin(paths); err != nil {
		return err
	}

	designs, err := c.computeAll(ctx, paths, vp, stdin, stdinFormat)
	if err != nil {
		return err
	}

	total, failing := 0, 0
	for _, d := range designs {
		res := d.result
		count := res.WarningCount()
		if count == 0 {
			printSuccess(w, "%s: %d nodes, no warnings", d.path, res.Len())
			continue
		}

		failing++
		total += count
		printWarning(w, "%s: %d warning(s)", d.path, count)
		for _, id := range res.NodesWithWarnings() {
			diag, _ := res.Diagnostics(id)
			for _, warning := range diag.Warnings {
				printDetail(w, "%s %s %s", id, iconArrow, warning)
			}
		}
	}

	if total > 0 {
		printError(w, "%d warning(s) in %d of %d design(s)", total, failing, len(designs))
		return fmt.Errorf("%w: %d in %d design(s)", ErrWarnings, total, failing)
	}
	return nil
}
