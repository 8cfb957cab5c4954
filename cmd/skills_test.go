package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio0/models"
)

func Test_SkillsCmd_AddWithoutProficiencyDefaultsToThree(t *testing.T) {
	services := useTestServices(t)

	runCommand(t, "skills", "add", "--name", "Go", "--category", "backend")

	skills, listErr := services.SkillService.List(nil)
	assert.Nil(t, listErr)
	assert.Equal(t, 1, len(skills))
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, int64(models.DefaultProficiency), skills[0].Proficiency)
}

func Test_SkillsCmd_ListWarnsWhenEmpty(t *testing.T) {
	useTestServices(t)
	console := captureConsole(t)

	runCommand(t, "skills", "list")

	assert.Contains(t, console.String(), "No skills found.")
}

func Test_SkillsCmd_CategoriesWarnsWhenEmpty(t *testing.T) {
	useTestServices(t)
	console := captureConsole(t)

	runCommand(t, "skills", "categories")

	assert.Contains(t, console.String(), "No categories found.")
}

func Test_SkillLine_ShowsIconWithDotFallback(t *testing.T) {
	withIcon := skillLine(models.Skill{Name: "Go", Icon: "gopher", Proficiency: 4})
	assert.Contains(t, withIcon, "gopher Go")

	withoutIcon := skillLine(models.Skill{Name: "Go", Proficiency: 4})
	assert.Contains(t, withoutIcon, "• Go")
}
