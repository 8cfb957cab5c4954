package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"portfolio0/models"
	"portfolio0/repository"
	"portfolio0/service"
	"portfolio0/utils"
)

var SkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "list, add or modify skills",
	Long: `
Skills carry a 1-5 proficiency and are grouped by category on the site.
Removing a skill deactivates it rather than deleting the row.

Usage:

	portfolio0 skills list
	portfolio0 skills add --name Go --category backend --proficiency 5
	portfolio0 skills update Go --proficiency 4
	portfolio0 skills remove Go
	portfolio0 skills categories
`,
}

var skillsListCategory string

var listSkillsCmd = &cobra.Command{
	Use:   "list",
	Short: "List active skills grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		var category *string
		if cmd.Flags().Changed("category") {
			category = &skillsListCategory
		}

		skills, err := services.SkillService.List(category)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		if len(skills) == 0 {
			utils.Warn("No skills found.")
			return
		}

		grouped := map[string][]models.Skill{}
		order := []string{}
		for _, skill := range skills {
			if _, seen := grouped[skill.Category]; !seen {
				order = append(order, skill.Category)
			}
			grouped[skill.Category] = append(grouped[skill.Category], skill)
		}

		for _, category := range order {
			color.New(color.FgCyan, color.Bold).Println(category)
			for _, skill := range grouped[category] {
				fmt.Println(skillLine(skill))
			}
		}
	},
}

// skillLine formats one listing row, with a dot standing in for a
// missing icon.
func skillLine(skill models.Skill) string {
	icon := skill.Icon
	if icon == "" {
		icon = "•"
	}
	return fmt.Sprintf("  %s %-24s %s", icon, skill.Name, proficiencyBar(skill.Proficiency))
}

// proficiencyBar renders a 1-5 proficiency as filled and empty dots.
func proficiencyBar(proficiency int64) string {
	if proficiency < models.MinProficiency {
		proficiency = models.MinProficiency
	}
	if proficiency > models.MaxProficiency {
		proficiency = models.MaxProficiency
	}
	filled := int(proficiency)
	return strings.Repeat("●", filled) + strings.Repeat("○", models.MaxProficiency-filled)
}

var (
	skillName         string
	skillCategory     string
	skillProficiency  int64
	skillIcon         string
	skillDisplayOrder int64
)

var addSkillCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a skill",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		skill := models.Skill{
			Name:         skillName,
			Category:     skillCategory,
			Proficiency:  skillProficiency,
			Icon:         skillIcon,
			DisplayOrder: skillDisplayOrder,
		}

		created, err := services.SkillService.Add(skill)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Added skill %q %s", created.Name, proficiencyBar(created.Proficiency))
	},
}

var updateSkillCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Update a skill by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		fields := map[string]interface{}{}
		if cmd.Flags().Changed("category") {
			fields[repository.SkillsCategoryColumn] = skillCategory
		}
		if cmd.Flags().Changed("proficiency") {
			fields[repository.SkillsProficiencyColumn] = skillProficiency
		}
		if cmd.Flags().Changed("icon") {
			fields[repository.SkillsIconColumn] = skillIcon
		}
		if cmd.Flags().Changed("order") {
			fields[repository.SkillsDisplayOrderColumn] = skillDisplayOrder
		}

		if err := services.SkillService.UpdateOneByName(args[0], fields); err != nil {
			if err == service.ErrNoFields {
				utils.Warn("nothing to update, pass at least one field flag")
				return
			}
			utils.Error(err.Message)
			return
		}

		utils.Success("Updated skill %q", args[0])
	},
}

var skillRemoveYes bool

var removeSkillCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Deactivate a skill by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirmDelete(fmt.Sprintf("Remove skill %q", args[0]), skillRemoveYes) {
			utils.Warn("Remove cancelled")
			return
		}

		services := getServices()
		if services == nil {
			return
		}

		if err := services.SkillService.Remove(args[0]); err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Removed skill %q", args[0])
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct categories of active skills",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		categories, err := services.SkillService.Categories()
		if err != nil {
			utils.Error(err.Message)
			return
		}

		if len(categories) == 0 {
			utils.Warn("No categories found.")
			return
		}

		for _, category := range categories {
			fmt.Println(category)
		}
	},
}

func init() {
	listSkillsCmd.Flags().StringVar(&skillsListCategory, "category", "", "only list skills in this category")

	for _, command := range []*cobra.Command{addSkillCmd, updateSkillCmd} {
		command.Flags().StringVar(&skillCategory, "category", "", "skill category")
		command.Flags().Int64Var(&skillProficiency, "proficiency", models.DefaultProficiency, "proficiency from 1 to 5")
		command.Flags().StringVar(&skillIcon, "icon", "", "icon identifier")
		command.Flags().Int64Var(&skillDisplayOrder, "order", 0, "display order, lowest first")
	}
	addSkillCmd.Flags().StringVar(&skillName, "name", "", "skill name")

	removeSkillCmd.Flags().BoolVarP(&skillRemoveYes, "yes", "y", false, "skip the confirmation prompt")

	SkillsCmd.AddCommand(listSkillsCmd)
	SkillsCmd.AddCommand(addSkillCmd)
	SkillsCmd.AddCommand(updateSkillCmd)
	SkillsCmd.AddCommand(removeSkillCmd)
	SkillsCmd.AddCommand(categoriesCmd)
}
