package cmd

import (
	"github.com/spf13/cobra"

	"portfolio0/utils"
)

var DeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "trigger page revalidation or a full site rebuild",
	Long: `
Revalidation asks the running site to refresh specific pages. A build posts
to the configured build hook, which rebuilds the whole site.

Usage:

	portfolio0 deploy revalidate
	portfolio0 deploy revalidate -p /blog/hello-world
	portfolio0 deploy build
	portfolio0 deploy full
`,
}

var (
	revalidatePath string
	revalidateTag  string
)

var revalidateCmd = &cobra.Command{
	Use:   "revalidate",
	Short: "Revalidate site pages, the default page set when no path or tag is given",
	Run: func(cmd *cobra.Command, args []string) {
		notify := getNotifier()

		ok := false
		switch {
		case revalidateTag != "":
			ok = notify.RevalidateTag(revalidateTag)
		default:
			ok = notify.RevalidatePath(revalidatePath)
		}

		if !ok {
			utils.Error("Revalidation failed, check the site URL and revalidation secret")
			return
		}

		utils.Success("Revalidation triggered")
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Trigger the external build hook",
	Run: func(cmd *cobra.Command, args []string) {
		notify := getNotifier()

		if !notify.TriggerBuild() {
			utils.Error("Build trigger failed, check the build hook URL")
			return
		}

		utils.Success("Build triggered")
	},
}

var fullDeployCmd = &cobra.Command{
	Use:   "full",
	Short: "Revalidate the default page set, then trigger a build",
	Run: func(cmd *cobra.Command, args []string) {
		notify := getNotifier()

		if !notify.RevalidatePath("") {
			utils.Warn("Revalidation failed, continuing with the build")
		}

		if !notify.TriggerBuild() {
			utils.Error("Build trigger failed, check the build hook URL")
			return
		}

		utils.Success("Deploy triggered")
	},
}

func init() {
	revalidateCmd.Flags().StringVarP(&revalidatePath, "path", "p", "", "page path to revalidate")
	revalidateCmd.Flags().StringVarP(&revalidateTag, "tag", "t", "", "content tag to revalidate")

	DeployCmd.AddCommand(revalidateCmd)
	DeployCmd.AddCommand(buildCmd)
	DeployCmd.AddCommand(fullDeployCmd)
}
