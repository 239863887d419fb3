package main

import (
	"github.com/spf13/cobra"

	"github.com/taigrr/glc/pkg/window"
)

func newWindowCmd() *cobra.Command {
	var (
		f     sceneFlags
		scale int
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a desktop window with keyboard controls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, r, err := f.build()
			if err != nil {
				return err
			}
			return window.Run(window.New(cmd.Context(), sess, r), scale)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&scale, "scale", 2, "window size as a multiple of the raster size")
	return cmd
}
