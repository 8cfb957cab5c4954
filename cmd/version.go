package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionCmd used to get current version of portfolio0
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of portfolio0",
	Long:  `All software has versions. This is portfolio0's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("portfolio0 v0.0.1")
	},
}
