package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/usher/internal/app"
	"go.trai.ch/usher/internal/core/domain"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <project:target[:configuration]>",
		Short: "Start the dev server for a target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			configuration, _ := cmd.Flags().GetString("configuration")
			port, _ := cmd.Flags().GetInt("port")
			open, _ := cmd.Flags().GetBool("open")

			opts := app.ServeOptions{
				TargetRef:     args[0],
				Configuration: configuration,
			}

			// Tri-state: only an explicitly set flag becomes a user choice.
			if cmd.Flags().Changed("buildLibsFromSource") {
				fromSource, _ := cmd.Flags().GetBool("buildLibsFromSource")
				opts.BuildLibsFromSource = &fromSource
			}

			overrides := domain.Options{}
			if cmd.Flags().Changed("port") {
				overrides["port"] = port
			}
			if cmd.Flags().Changed("open") {
				overrides["open"] = open
			}
			if len(overrides) > 0 {
				opts.Overrides = overrides
			}

			return c.app.Serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("configuration", "c", "", "Configuration overlay to apply")
	cmd.Flags().Bool("buildLibsFromSource", true, "Rebuild dependency libraries from source instead of consuming build artifacts")
	cmd.Flags().IntP("port", "p", 0, "Port to serve on")
	cmd.Flags().BoolP("open", "o", false, "Open the served application in a browser")

	return cmd
}
