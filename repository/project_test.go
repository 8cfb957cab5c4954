package repository

import (
	"net/http"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"portfolio0/db"
	"portfolio0/models"
)

func newTestProject() models.Project {
	return models.Project{
		Slug:        faker.Username(),
		Title:       faker.Sentence(),
		Description: faker.Sentence(),
		TechStack:   []string{"go", "sqlite"},
		IsPublished: true,
	}
}

func Test_ProjectRepo_CreateOne(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := newTestProject()
	id, createErr := projectRepo.CreateOne(&project)
	if createErr != nil {
		t.Fatal("failed to create project", createErr.Message)
	}
	assert.NotEmpty(t, id)
	assert.Equal(t, id, project.ID)
	assert.False(t, project.DateCreated.IsZero())

	fetched := models.Project{Slug: project.Slug}
	getErr := projectRepo.GetOneBySlug(&fetched, false)
	if getErr != nil {
		t.Fatal("failed to fetch project", getErr.Message)
	}
	assert.Equal(t, project.Title, fetched.Title)
	assert.Equal(t, []string{"go", "sqlite"}, fetched.TechStack)
}

func Test_ProjectRepo_CreateOne_RequiresFields(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := models.Project{Slug: "only-slug"}
	_, createErr := projectRepo.CreateOne(&project)
	assert.NotNil(t, createErr)
	assert.Equal(t, http.StatusBadRequest, createErr.Type)
}

func Test_ProjectRepo_CreateOne_RejectsDuplicateSlug(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := newTestProject()
	_, createErr := projectRepo.CreateOne(&project)
	if createErr != nil {
		t.Fatal("failed to create project", createErr.Message)
	}

	duplicate := newTestProject()
	duplicate.Slug = project.Slug
	_, dupErr := projectRepo.CreateOne(&duplicate)
	assert.NotNil(t, dupErr)
	assert.Equal(t, http.StatusBadRequest, dupErr.Type)
}

func Test_ProjectRepo_GetOneBySlug_PublishedOnly(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := newTestProject()
	project.IsPublished = false
	_, createErr := projectRepo.CreateOne(&project)
	if createErr != nil {
		t.Fatal("failed to create project", createErr.Message)
	}

	hidden := models.Project{Slug: project.Slug}
	getErr := projectRepo.GetOneBySlug(&hidden, true)
	assert.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)

	visible := models.Project{Slug: project.Slug}
	assert.Nil(t, projectRepo.GetOneBySlug(&visible, false))
}

func Test_ProjectRepo_List_OrderAndFilters(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	first := newTestProject()
	first.DisplayOrder = 2
	second := newTestProject()
	second.DisplayOrder = 1
	second.IsFeatured = true
	third := newTestProject()
	third.DisplayOrder = 3
	third.IsPublished = false

	for _, project := range []*models.Project{&first, &second, &third} {
		if _, createErr := projectRepo.CreateOne(project); createErr != nil {
			t.Fatal("failed to create project", createErr.Message)
		}
	}

	published, listErr := projectRepo.List(nil, true)
	if listErr != nil {
		t.Fatal("failed to list projects", listErr.Message)
	}
	assert.Equal(t, 2, len(published))
	assert.Equal(t, second.Slug, published[0].Slug)
	assert.Equal(t, first.Slug, published[1].Slug)

	featured := true
	featuredOnly, listErr := projectRepo.List(&featured, true)
	if listErr != nil {
		t.Fatal("failed to list featured projects", listErr.Message)
	}
	assert.Equal(t, 1, len(featuredOnly))
	assert.Equal(t, second.Slug, featuredOnly[0].Slug)

	all, listErr := projectRepo.List(nil, false)
	if listErr != nil {
		t.Fatal("failed to list all projects", listErr.Message)
	}
	assert.Equal(t, 3, len(all))
}

func Test_ProjectRepo_UpdateOneBySlug(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := newTestProject()
	_, createErr := projectRepo.CreateOne(&project)
	if createErr != nil {
		t.Fatal("failed to create project", createErr.Message)
	}

	count, updateErr := projectRepo.UpdateOneBySlug(project.Slug, map[string]interface{}{
		ProjectsTitleColumn:     "renamed",
		ProjectsTechStackColumn: []string{"go"},
	})
	if updateErr != nil {
		t.Fatal("failed to update project", updateErr.Message)
	}
	assert.Equal(t, int64(1), count)

	fetched := models.Project{Slug: project.Slug}
	assert.Nil(t, projectRepo.GetOneBySlug(&fetched, false))
	assert.Equal(t, "renamed", fetched.Title)
	assert.Equal(t, []string{"go"}, fetched.TechStack)
	assert.Equal(t, project.Description, fetched.Description)
}

func Test_ProjectRepo_UpdateOneBySlug_UnknownSlug(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	count, updateErr := projectRepo.UpdateOneBySlug("missing", map[string]interface{}{
		ProjectsTitleColumn: "renamed",
	})
	assert.Nil(t, updateErr)
	assert.Equal(t, int64(0), count)
}

func Test_ProjectRepo_DeleteOneBySlug(t *testing.T) {
	store := db.GetTestDataStore()
	projectRepo := NewProjectRepo(hclog.NewNullLogger(), store)

	project := newTestProject()
	_, createErr := projectRepo.CreateOne(&project)
	if createErr != nil {
		t.Fatal("failed to create project", createErr.Message)
	}

	count, deleteErr := projectRepo.DeleteOneBySlug(project.Slug)
	if deleteErr != nil {
		t.Fatal("failed to delete project", deleteErr.Message)
	}
	assert.Equal(t, int64(1), count)

	fetched := models.Project{Slug: project.Slug}
	getErr := projectRepo.GetOneBySlug(&fetched, false)
	assert.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)
}
