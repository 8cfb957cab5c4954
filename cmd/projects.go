package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"portfolio0/models"
	"portfolio0/repository"
	"portfolio0/service"
	"portfolio0/utils"
)

var ProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "list, create or modify portfolio projects",
	Long: `
Projects are the works shown on the site's projects page. Projects are
addressed by slug.

Usage:

	portfolio0 projects list
	portfolio0 projects create --slug my-app --title "My App" --description "..."
	portfolio0 projects update my-app --featured=true
	portfolio0 projects delete my-app
`,
}

var (
	projectsListAll      bool
	projectsListFeatured bool
)

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		var featured *bool
		if cmd.Flags().Changed("featured") {
			featured = &projectsListFeatured
		}

		projects, err := services.ProjectService.List(featured, projectsListAll)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		if len(projects) == 0 {
			utils.Warn("No projects found.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Slug", "Title", "Featured", "Published", "Order"})

		for index, project := range projects {
			t.AppendSeparator()
			t.AppendRow([]interface{}{
				index + 1,
				project.Slug,
				project.Title,
				project.IsFeatured,
				project.IsPublished,
				project.DisplayOrder,
			})
		}

		t.AppendFooter(table.Row{"", "", "", "", "Total", len(projects)})
		t.Render()
	},
}

var (
	projectSlug            string
	projectTitle           string
	projectDescription     string
	projectLongDescription string
	projectLongDescFile    string
	projectFeaturedImage   string
	projectLiveURL         string
	projectGithubURL       string
	projectTechStack       string
	projectFeatured        bool
	projectDraft           bool
	projectPublished       bool
	projectDisplayOrder    int64
)

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		longDescription := projectLongDescription
		if cmd.Flags().Changed("long-description-file") {
			data, err := afero.ReadFile(afero.NewOsFs(), projectLongDescFile)
			if err != nil {
				utils.Error("failed to read long description file: %v", err)
				return
			}
			longDescription = string(data)
		}

		project := models.Project{
			Slug:            projectSlug,
			Title:           projectTitle,
			Description:     projectDescription,
			LongDescription: longDescription,
			FeaturedImage:   projectFeaturedImage,
			LiveURL:         projectLiveURL,
			GithubURL:       projectGithubURL,
			TechStack:       splitCommaList(projectTechStack),
			IsFeatured:      projectFeatured,
			IsPublished:     !projectDraft,
			DisplayOrder:    projectDisplayOrder,
		}

		created, err := services.ProjectService.CreateOne(project)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Created project %q", created.Slug)
	},
}

var updateProjectCmd = &cobra.Command{
	Use:   "update [slug]",
	Short: "Update a project by slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		fields := map[string]interface{}{}
		stringFlagToColumn := map[string]string{
			"title":            repository.ProjectsTitleColumn,
			"description":      repository.ProjectsDescriptionColumn,
			"long-description": repository.ProjectsLongDescriptionColumn,
			"image":            repository.ProjectsFeaturedImageColumn,
			"live-url":         repository.ProjectsLiveURLColumn,
			"github-url":       repository.ProjectsGithubURLColumn,
		}
		for flag, column := range stringFlagToColumn {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				fields[column] = value
			}
		}
		if cmd.Flags().Changed("long-description-file") {
			data, err := afero.ReadFile(afero.NewOsFs(), projectLongDescFile)
			if err != nil {
				utils.Error("failed to read long description file: %v", err)
				return
			}
			fields[repository.ProjectsLongDescriptionColumn] = string(data)
		}
		if cmd.Flags().Changed("tech") {
			fields[repository.ProjectsTechStackColumn] = splitCommaList(projectTechStack)
		}
		if cmd.Flags().Changed("featured") {
			fields[repository.ProjectsIsFeaturedColumn] = projectFeatured
		}
		if cmd.Flags().Changed("published") {
			fields[repository.ProjectsIsPublishedColumn] = projectPublished
		}
		if cmd.Flags().Changed("order") {
			fields[repository.ProjectsDisplayOrderColumn] = projectDisplayOrder
		}

		if err := services.ProjectService.UpdateOneBySlug(args[0], fields); err != nil {
			if err == service.ErrNoFields {
				utils.Warn("nothing to update, pass at least one field flag")
				return
			}
			utils.Error(err.Message)
			return
		}

		utils.Success("Updated project %q", args[0])
	},
}

var projectDeleteYes bool

var deleteProjectCmd = &cobra.Command{
	Use:   "delete [slug]",
	Short: "Delete a project by slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirmDelete(fmt.Sprintf("Delete project %q", args[0]), projectDeleteYes) {
			utils.Warn("Delete cancelled")
			return
		}

		services := getServices()
		if services == nil {
			return
		}

		if err := services.ProjectService.DeleteOneBySlug(args[0]); err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Deleted project %q", args[0])
	},
}

// splitCommaList turns "go, sqlite ,redis" into ["go", "sqlite", "redis"].
func splitCommaList(raw string) []string {
	parts := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func init() {
	listProjectsCmd.Flags().BoolVar(&projectsListAll, "all", false, "include unpublished projects")
	listProjectsCmd.Flags().BoolVar(&projectsListFeatured, "featured", false, "filter by featured flag")

	for _, command := range []*cobra.Command{createProjectCmd, updateProjectCmd} {
		command.Flags().StringVar(&projectTitle, "title", "", "project title")
		command.Flags().StringVar(&projectDescription, "description", "", "short description")
		command.Flags().StringVar(&projectLongDescription, "long-description", "", "long-form description")
		command.Flags().StringVar(&projectLongDescFile, "long-description-file", "", "file to read the long description from")
		command.Flags().StringVar(&projectFeaturedImage, "image", "", "featured image URL")
		command.Flags().StringVar(&projectLiveURL, "live-url", "", "live deployment URL")
		command.Flags().StringVar(&projectGithubURL, "github-url", "", "source repository URL")
		command.Flags().StringVar(&projectTechStack, "tech", "", "comma-separated tech stack")
		command.Flags().BoolVar(&projectFeatured, "featured", false, "show on the home page")
		command.Flags().Int64Var(&projectDisplayOrder, "order", 0, "display order, lowest first")
	}
	createProjectCmd.Flags().StringVar(&projectSlug, "slug", "", "unique project slug")
	createProjectCmd.Flags().BoolVar(&projectDraft, "draft", false, "create as an unpublished draft")
	updateProjectCmd.Flags().BoolVar(&projectPublished, "published", false, "visible on the site")

	deleteProjectCmd.Flags().BoolVarP(&projectDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	ProjectsCmd.AddCommand(listProjectsCmd)
	ProjectsCmd.AddCommand(createProjectCmd)
	ProjectsCmd.AddCommand(updateProjectCmd)
	ProjectsCmd.AddCommand(deleteProjectCmd)
}
