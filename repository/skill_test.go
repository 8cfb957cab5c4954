package repository

import (
	"net/http"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"portfolio0/db"
	"portfolio0/models"
)

func Test_SkillRepo_CreateOne(t *testing.T) {
	store := db.GetTestDataStore()
	skillRepo := NewSkillRepo(hclog.NewNullLogger(), store)

	skill := models.Skill{Name: "Go", Category: "backend", Proficiency: 5}
	id, createErr := skillRepo.CreateOne(&skill)
	if createErr != nil {
		t.Fatal("failed to create skill", createErr.Message)
	}
	assert.NotEmpty(t, id)
	assert.True(t, skill.IsActive)
}

func Test_SkillRepo_CreateOne_RequiresNameAndCategory(t *testing.T) {
	store := db.GetTestDataStore()
	skillRepo := NewSkillRepo(hclog.NewNullLogger(), store)

	skill := models.Skill{Name: "Go"}
	_, createErr := skillRepo.CreateOne(&skill)
	assert.NotNil(t, createErr)
	assert.Equal(t, http.StatusBadRequest, createErr.Type)
}

func Test_SkillRepo_List_ActiveOnlyAndCategoryFilter(t *testing.T) {
	store := db.GetTestDataStore()
	skillRepo := NewSkillRepo(hclog.NewNullLogger(), store)

	goSkill := models.Skill{Name: "Go", Category: "backend", Proficiency: 5, DisplayOrder: 2}
	sqliteSkill := models.Skill{Name: "SQLite", Category: "backend", Proficiency: 4, DisplayOrder: 1}
	cssSkill := models.Skill{Name: "CSS", Category: "frontend", Proficiency: 3}

	for _, skill := range []*models.Skill{&goSkill, &sqliteSkill, &cssSkill} {
		if _, createErr := skillRepo.CreateOne(skill); createErr != nil {
			t.Fatal("failed to create skill", createErr.Message)
		}
	}

	if _, deleteErr := skillRepo.SoftDeleteOneByName("CSS"); deleteErr != nil {
		t.Fatal("failed to soft delete skill", deleteErr.Message)
	}

	active, listErr := skillRepo.List(nil)
	if listErr != nil {
		t.Fatal("failed to list skills", listErr.Message)
	}
	assert.Equal(t, 2, len(active))
	assert.Equal(t, "SQLite", active[0].Name)
	assert.Equal(t, "Go", active[1].Name)

	backend := "backend"
	backendOnly, listErr := skillRepo.List(&backend)
	if listErr != nil {
		t.Fatal("failed to list backend skills", listErr.Message)
	}
	assert.Equal(t, 2, len(backendOnly))
}

func Test_SkillRepo_UpdateOneByName_SkipsInactive(t *testing.T) {
	store := db.GetTestDataStore()
	skillRepo := NewSkillRepo(hclog.NewNullLogger(), store)

	skill := models.Skill{Name: "Go", Category: "backend", Proficiency: 5}
	if _, createErr := skillRepo.CreateOne(&skill); createErr != nil {
		t.Fatal("failed to create skill", createErr.Message)
	}

	count, updateErr := skillRepo.UpdateOneByName("Go", map[string]interface{}{
		SkillsProficiencyColumn: int64(4),
	})
	assert.Nil(t, updateErr)
	assert.Equal(t, int64(1), count)

	if _, deleteErr := skillRepo.SoftDeleteOneByName("Go"); deleteErr != nil {
		t.Fatal("failed to soft delete skill", deleteErr.Message)
	}

	count, updateErr = skillRepo.UpdateOneByName("Go", map[string]interface{}{
		SkillsProficiencyColumn: int64(3),
	})
	assert.Nil(t, updateErr)
	assert.Equal(t, int64(0), count)
}

func Test_SkillRepo_SoftDeleteOneByName_KeepsRow(t *testing.T) {
	store := db.GetTestDataStore()
	skillRepo := NewSkillRepo(hclog.NewNullLogger(), store)

	skill := models.Skill{Name: "Go", Category: "backend", Proficiency: 5}
	if _, createErr := skillRepo.CreateOne(&skill); createErr != nil {
		t.Fatal("failed to create skill", createErr.Message)
	}

	count, deleteErr := skillRepo.SoftDeleteOneByName("Go")
	assert.Nil(t, deleteErr)
	assert.Equal(t, int64(1), count)

	active, listErr := skillRepo.List(nil)
	assert.Nil(t, listErr)
	assert.Equal(t, 0, len(active))

	store.ConnectionLock()
	defer store.ConnectionUnlock()
	row := store.GetOpenConnection().QueryRow("select count(*) from skills where name = ?", "Go")
	var total int
	assert.NoError(t, row.Scan(&total))
	assert.Equal(t, 1, total)
}
