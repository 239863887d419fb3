// glc - Generalized Linear Camera ray caster
// Renders built-in objects or OBJ/GLB meshes through perspective,
// orthogonal and pushbroom cameras, colored by face normal.
//
// Controls (view and window):
//
//	W/A/S/D  - Move the object up/left/down/right
//	R        - Rotate 30° around Y
//	T        - Rotate 30° around X
//	1/2/3    - Perspective / orthogonal / pushbroom
//	4/5/6    - Cube / triangle / teapot
//	B        - Random background
//	Esc      - Quit
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "glc",
		Short: "Generalized Linear Camera ray caster",
		Long: `glc casts one ray per pixel from a two-plane camera model and colors
each hit by its face normal. Use "render" for a PNG, "view" for the
terminal viewer or "window" for a desktop window.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newViewCmd(), newWindowCmd())
	return root
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
