package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// Fallback grid when neither flags, config nor a terminal provide one.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type viewportFlags struct {
	width      int
	height     int
	responsive bool
}

func addViewportFlags(cmd *cobra.Command, f *viewportFlags) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "viewport width in cells (default: config, terminal, then 80)")
	cmd.Flags().IntVarP(&f.height, "height", "H", 0, "viewport height in cells (default: config, terminal, then 24)")
	cmd.Flags().BoolVarP(&f.responsive, "responsive", "r", false, "classify the viewport width into a breakpoint")
}

// viewport resolves each axis from the first source that sets it: flags,
// the config file, the terminal attached to stdout, then 80x24.
func (c *CLI) viewport(cmd *cobra.Command, f viewportFlags) layout.Viewport {
	termW, termH, haveTerm := c.termSize()

	pick := func(flag, configured, terminal, fallback int) int {
		switch {
		case flag > 0:
			return flag
		case configured > 0:
			return configured
		case haveTerm && terminal > 0:
			return terminal
		}
		return fallback
	}

	responsive := c.cfg.Viewport.Responsive
	if cmd.Flags().Changed("responsive") {
		responsive = f.responsive
	}

	return layout.Viewport{
		Width:      pick(f.width, c.cfg.Viewport.Width, termW, fallbackWidth),
		Height:     pick(f.height, c.cfg.Viewport.Height, termH, fallbackHeight),
		Responsive: responsive,
	}
}

func terminalSize() (int, int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
