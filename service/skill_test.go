package service

import (
	"net/http"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"portfolio0/db"
	"portfolio0/models"
	"portfolio0/repository"
)

func newTestSkillService() (SkillService, repository.SkillRepo, *fakeNotifier) {
	store := db.GetTestDataStore()
	logger := hclog.NewNullLogger()
	skillRepo := repository.NewSkillRepo(logger, store)
	fake := &fakeNotifier{}
	return NewSkillService(logger, skillRepo, fake), skillRepo, fake
}

func Test_SkillService_Add(t *testing.T) {
	skillService, _, fake := newTestSkillService()

	skill, err := skillService.Add(models.Skill{Name: "Go", Category: "backend", Proficiency: 5})
	if err != nil {
		t.Fatal("failed to add skill", err.Message)
	}
	assert.NotEmpty(t, skill.ID)
	assert.Contains(t, fake.paths, "/about")
}

func Test_SkillService_Add_RejectsOutOfRangeProficiency(t *testing.T) {
	skillService, skillRepo, fake := newTestSkillService()

	_, err := skillService.Add(models.Skill{Name: "Go", Category: "backend", Proficiency: 6})
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Type)
	assert.Empty(t, fake.paths)

	skills, listErr := skillRepo.List(nil)
	assert.Nil(t, listErr)
	assert.Equal(t, 0, len(skills))
}

func Test_SkillService_Update_RejectsOutOfRangeProficiency(t *testing.T) {
	skillService, skillRepo, _ := newTestSkillService()

	if _, err := skillService.Add(models.Skill{Name: "Go", Category: "backend", Proficiency: 5}); err != nil {
		t.Fatal("failed to add skill", err.Message)
	}

	err := skillService.UpdateOneByName("Go", map[string]interface{}{
		repository.SkillsProficiencyColumn: int64(0),
	})
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Type)

	skills, listErr := skillRepo.List(nil)
	assert.Nil(t, listErr)
	assert.Equal(t, int64(5), skills[0].Proficiency)
}

func Test_SkillService_Remove_SoftDeletes(t *testing.T) {
	skillService, skillRepo, _ := newTestSkillService()

	if _, err := skillService.Add(models.Skill{Name: "Go", Category: "backend", Proficiency: 5}); err != nil {
		t.Fatal("failed to add skill", err.Message)
	}

	if err := skillService.Remove("Go"); err != nil {
		t.Fatal("failed to remove skill", err.Message)
	}

	skills, listErr := skillRepo.List(nil)
	assert.Nil(t, listErr)
	assert.Equal(t, 0, len(skills))
}

func Test_SkillService_Remove_UnknownName(t *testing.T) {
	skillService, _, _ := newTestSkillService()

	err := skillService.Remove("missing")
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Type)
}

func Test_SkillService_Categories_PreservesDisplayOrder(t *testing.T) {
	skillService, _, _ := newTestSkillService()

	fixtures := []models.Skill{
		{Name: "Go", Category: "backend", Proficiency: 5, DisplayOrder: 1},
		{Name: "React", Category: "frontend", Proficiency: 4, DisplayOrder: 2},
		{Name: "SQLite", Category: "backend", Proficiency: 4, DisplayOrder: 3},
	}
	for _, fixture := range fixtures {
		if _, err := skillService.Add(fixture); err != nil {
			t.Fatal("failed to add skill", err.Message)
		}
	}

	categories, err := skillService.Categories()
	if err != nil {
		t.Fatal("failed to list categories", err.Message)
	}
	assert.Equal(t, []string{"backend", "frontend"}, categories)
}
