package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/rlink/internal/app"
)

func (c *CLI) newEmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emit",
		Short: "Emit linker directives for R's numerical libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			// The environment read happens here, at the outermost edge; the
			// core receives the installation root as an explicit parameter.
			rHome, err := cmd.Flags().GetString("r-home")
			if err != nil {
				return err
			}
			if rHome == "" {
				rHome = os.Getenv("R_HOME")
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				RHome:       rHome,
				OptionsPath: configPath,
			})
		},
	}
}
