package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurmister/ytsum/internal/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ytsum %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
