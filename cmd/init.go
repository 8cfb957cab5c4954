package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"portfolio0/config"
	"portfolio0/constants"
	"portfolio0/secrets"
	"portfolio0/utils"
)

// InitCmd initializes portfolio0 configuration
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configurations and secrets for the portfolio0 server",
	Long: `
Initialize the server port, database file, site URL, revalidation secret and
build hook for portfolio0. You will be prompted for each value.

Usage:

	portfolio0 init

Every value is optional. The defaults run a local server on port 9121.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Initialize Portfolio0")

		portPrompt := promptui.Prompt{
			Label:     "Port",
			AllowEdit: true,
			Default:   constants.DefaultPort,
			Validate: func(input string) error {
				if _, err := strconv.ParseUint(input, 10, 16); err != nil {
					return fmt.Errorf("port must be a number")
				}
				return nil
			},
		}
		port, _ := portPrompt.Run()

		dbFilePathPrompt := promptui.Prompt{
			Label:     "Database File Path",
			AllowEdit: true,
			Default:   constants.SqliteDbFileName,
		}
		dbFilePath, _ := dbFilePathPrompt.Run()

		siteURLPrompt := promptui.Prompt{
			Label:     "Site URL",
			AllowEdit: true,
		}
		siteURL, _ := siteURLPrompt.Run()

		revalidationSecretPrompt := promptui.Prompt{
			Label:       "Revalidation Secret",
			HideEntered: true,
			Mask:        '*',
		}
		revalidationSecret, _ := revalidationSecretPrompt.Run()

		buildHookURLPrompt := promptui.Prompt{
			Label:     "Build Hook URL",
			AllowEdit: true,
		}
		buildHookURL, _ := buildHookURLPrompt.Run()

		configs := config.PortfolioConfig{
			Port:       port,
			DBFilePath: dbFilePath,
			SiteURL:    siteURL,
		}

		data, err := yaml.Marshal(configs)
		utils.CheckErr(err)

		fs := afero.NewOsFs()
		binPath := config.GetBinPath()
		err = afero.WriteFile(fs, binPath+"/"+constants.ConfigFileName, data, os.ModePerm)
		utils.CheckErr(err)

		secrets.SaveSecrets(&secrets.PortfolioSecrets{
			RevalidationSecret: revalidationSecret,
			BuildHookURL:       buildHookURL,
		})

		utils.Success("Portfolio0 Initialized")
	},
}
