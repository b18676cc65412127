package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/boxlayout/internal/layout"
)

func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List node kinds and their default sizes",
		Long: `List every node kind a design may use, whether it holds children or
sizes itself from items, and the size an empty node of that kind takes
when its width and height are auto.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeKinds(cmd.OutOrStdout())
		},
	}
}

func writeKinds(w io.Writer) {
	rows := make([][]string, 0, len(layout.Kinds()))
	for _, k := range layout.Kinds() {
		n := layout.NewNode(k.String(), k)
		class := "leaf"
		switch {
		case k.IsItemCollection():
			class = "collection"
		case k.IsContainer():
			class = "container"
		}
		rows = append(rows, []string{
			k.String(),
			class,
			strconv.Itoa(layout.ResolveAutoWidth(n)),
			strconv.Itoa(layout.ResolveAutoHeight(n)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Class", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
	fmt.Fprintln(w, t.String())
	printKeyValue(w, "kinds", strconv.Itoa(len(rows)))
}
