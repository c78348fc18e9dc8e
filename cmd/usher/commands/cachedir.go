package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-dir",
		Short: "Print the resolved cache directories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			cacheDir, graphCacheDir := c.app.CacheDirs()
			_, _ = fmt.Fprintf(out, "cache directory:               %s\n", cacheDir)
			_, _ = fmt.Fprintf(out, "project graph cache directory: %s\n", graphCacheDir)
		},
	}
}
