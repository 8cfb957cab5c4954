package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"portfolio0/repository"
	"portfolio0/service"
	"portfolio0/utils"
)

var ContactCmd = &cobra.Command{
	Use:   "contact",
	Short: "view or modify the contact page entry",
	Long: `
The contact entry is the single set of contact details shown on the site.

Usage:

	portfolio0 contact show
	portfolio0 contact update --email hello@example.com --link blog=https://example.com/feed

Updating when no entry exists yet creates one, which requires --email.
`,
}

var showContactCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current contact entry",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		contactInfo, err := services.ContactService.GetContactInfo()
		if err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Label("Email", contactInfo.Email)
		utils.Label("LinkedIn", contactInfo.LinkedinURL)
		utils.Label("GitHub", contactInfo.GithubURL)
		utils.Label("Twitter", contactInfo.TwitterURL)
		for name, url := range contactInfo.OtherLinks {
			utils.Label(name, url)
		}
	},
}

var (
	contactEmail       string
	contactLinkedinURL string
	contactGithubURL   string
	contactTwitterURL  string
	contactOtherLinks  []string
)

var updateContactCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the contact entry, creating it when none exists",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		fields := map[string]interface{}{}
		flagToColumn := map[string]string{
			"email":    repository.ContactInfoEmailColumn,
			"linkedin": repository.ContactInfoLinkedinURLColumn,
			"github":   repository.ContactInfoGithubURLColumn,
			"twitter":  repository.ContactInfoTwitterURLColumn,
		}
		for flag, column := range flagToColumn {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				fields[column] = value
			}
		}

		if cmd.Flags().Changed("link") {
			links := map[string]string{}
			for _, pair := range contactOtherLinks {
				name, url, found := strings.Cut(pair, "=")
				if !found || name == "" {
					utils.Error("links must look like name=url, got %q", pair)
					return
				}
				links[name] = url
			}
			fields[repository.ContactInfoOtherLinksColumn] = links
		}

		if _, err := services.ContactService.Update(fields); err != nil {
			if err == service.ErrNoFields {
				utils.Warn("nothing to update, pass at least one field flag")
				return
			}
			utils.Error(err.Message)
			return
		}

		utils.Success("Contact entry updated")
	},
}

func init() {
	updateContactCmd.Flags().StringVar(&contactEmail, "email", "", "contact email address")
	updateContactCmd.Flags().StringVar(&contactLinkedinURL, "linkedin", "", "LinkedIn profile URL")
	updateContactCmd.Flags().StringVar(&contactGithubURL, "github", "", "GitHub profile URL")
	updateContactCmd.Flags().StringVar(&contactTwitterURL, "twitter", "", "Twitter profile URL")
	updateContactCmd.Flags().StringArrayVar(&contactOtherLinks, "link", nil, "additional link as name=url, repeatable")

	ContactCmd.AddCommand(showContactCmd)
	ContactCmd.AddCommand(updateContactCmd)
}
