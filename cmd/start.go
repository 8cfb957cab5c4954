package cmd

import (
	"github.com/spf13/cobra"

	"portfolio0/http_server"
	"portfolio0/utils"
)

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the portfolio content server",
	Long:  `This runs the content API the portfolio website reads from`,
	Run: func(cmd *cobra.Command, args []string) {
		utils.Info("Starting Server.")
		http_server.Start()
	},
}
