package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio0",
	Short: "Portfolio0 serves and manages the content behind a personal portfolio website",
	Long: `Portfolio0 is the backend and content manager for a personal portfolio website.
The start command runs the content API, the other commands edit the content in
the site's database and trigger page revalidation on the running site.
`,
	Args:      cobra.OnlyValidArgs,
	ValidArgs: []string{"help", "version", "init", "start", "about", "projects", "blog", "skills", "contact", "deploy"},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func init() {
	rootCmd.AddCommand(VersionCmd)
	rootCmd.AddCommand(InitCmd)
	rootCmd.AddCommand(StartCmd)
	rootCmd.AddCommand(AboutCmd)
	rootCmd.AddCommand(ProjectsCmd)
	rootCmd.AddCommand(BlogCmd)
	rootCmd.AddCommand(SkillsCmd)
	rootCmd.AddCommand(ContactCmd)
	rootCmd.AddCommand(DeployCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
