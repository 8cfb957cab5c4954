package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"portfolio0/repository"
	"portfolio0/service"
	"portfolio0/utils"
)

var AboutCmd = &cobra.Command{
	Use:   "about",
	Short: "view or modify the about page entry",
	Long: `
The about entry is the single profile shown on the site's about page.

Usage:

	portfolio0 about show
	portfolio0 about update --title "Backend Engineer"

Updating when no entry exists yet creates one, which requires --name,
--title and --bio.
`,
}

var showAboutCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current about entry",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		about, err := services.AboutService.GetAbout()
		if err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Label("Name", about.Name)
		utils.Label("Title", about.Title)
		utils.Label("Bio", about.Bio)
		utils.Label("Short Bio", about.ShortBio)
		utils.Label("Avatar URL", about.AvatarURL)
		utils.Label("Resume URL", about.ResumeURL)
		utils.Label("Location", about.Location)
	},
}

var (
	aboutName      string
	aboutTitle     string
	aboutBio       string
	aboutBioFile   string
	aboutShortBio  string
	aboutAvatarURL string
	aboutResumeURL string
	aboutLocation  string
)

var updateAboutCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the about entry, creating it when none exists",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		fields := map[string]interface{}{}
		flagToColumn := map[string]string{
			"name":       repository.AboutNameColumn,
			"title":      repository.AboutTitleColumn,
			"bio":        repository.AboutBioColumn,
			"short-bio":  repository.AboutShortBioColumn,
			"avatar-url": repository.AboutAvatarURLColumn,
			"resume-url": repository.AboutResumeURLColumn,
			"location":   repository.AboutLocationColumn,
		}
		for flag, column := range flagToColumn {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				fields[column] = value
			}
		}

		if cmd.Flags().Changed("bio-file") {
			data, err := afero.ReadFile(afero.NewOsFs(), aboutBioFile)
			if err != nil {
				utils.Error("failed to read bio file: %v", err)
				return
			}
			fields[repository.AboutBioColumn] = string(data)
		}

		if _, err := services.AboutService.Update(fields); err != nil {
			if err == service.ErrNoFields {
				utils.Warn("nothing to update, pass at least one field flag")
				return
			}
			utils.Error(err.Message)
			return
		}

		utils.Success("About entry updated")
	},
}

func init() {
	updateAboutCmd.Flags().StringVar(&aboutName, "name", "", "display name")
	updateAboutCmd.Flags().StringVar(&aboutTitle, "title", "", "professional title")
	updateAboutCmd.Flags().StringVar(&aboutBio, "bio", "", "long-form biography")
	updateAboutCmd.Flags().StringVar(&aboutBioFile, "bio-file", "", "file to read the biography from")
	updateAboutCmd.Flags().StringVar(&aboutShortBio, "short-bio", "", "one-line biography")
	updateAboutCmd.Flags().StringVar(&aboutAvatarURL, "avatar-url", "", "avatar image URL")
	updateAboutCmd.Flags().StringVar(&aboutResumeURL, "resume-url", "", "resume download URL")
	updateAboutCmd.Flags().StringVar(&aboutLocation, "location", "", "location shown on the about page")

	AboutCmd.AddCommand(showAboutCmd)
	AboutCmd.AddCommand(updateAboutCmd)
}
