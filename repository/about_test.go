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

func Test_AboutRepo_GetActive_Empty(t *testing.T) {
	store := db.GetTestDataStore()
	aboutRepo := NewAboutRepo(hclog.NewNullLogger(), store)

	about := models.About{}
	getErr := aboutRepo.GetActive(&about)
	assert.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)
}

func Test_AboutRepo_CreateOne(t *testing.T) {
	store := db.GetTestDataStore()
	aboutRepo := NewAboutRepo(hclog.NewNullLogger(), store)

	about := models.About{
		Name:  faker.Name(),
		Title: "Backend Engineer",
		Bio:   faker.Paragraph(),
	}
	id, createErr := aboutRepo.CreateOne(&about)
	if createErr != nil {
		t.Fatal("failed to create about entry", createErr.Message)
	}
	assert.NotEmpty(t, id)
	assert.True(t, about.IsActive)

	fetched := models.About{}
	if getErr := aboutRepo.GetActive(&fetched); getErr != nil {
		t.Fatal("failed to fetch about entry", getErr.Message)
	}
	assert.Equal(t, about.Name, fetched.Name)
	assert.Equal(t, about.Bio, fetched.Bio)
}

func Test_AboutRepo_CreateOne_RequiresFields(t *testing.T) {
	store := db.GetTestDataStore()
	aboutRepo := NewAboutRepo(hclog.NewNullLogger(), store)

	about := models.About{Name: faker.Name()}
	_, createErr := aboutRepo.CreateOne(&about)
	assert.NotNil(t, createErr)
	assert.Equal(t, http.StatusBadRequest, createErr.Type)
}

func Test_AboutRepo_UpdateOneByID(t *testing.T) {
	store := db.GetTestDataStore()
	aboutRepo := NewAboutRepo(hclog.NewNullLogger(), store)

	about := models.About{
		Name:  faker.Name(),
		Title: "Backend Engineer",
		Bio:   faker.Paragraph(),
	}
	id, createErr := aboutRepo.CreateOne(&about)
	if createErr != nil {
		t.Fatal("failed to create about entry", createErr.Message)
	}

	count, updateErr := aboutRepo.UpdateOneByID(id, map[string]interface{}{
		AboutLocationColumn: "Lagos",
	})
	assert.Nil(t, updateErr)
	assert.Equal(t, int64(1), count)

	fetched := models.About{}
	assert.Nil(t, aboutRepo.GetActive(&fetched))
	assert.Equal(t, "Lagos", fetched.Location)
	assert.Equal(t, about.Title, fetched.Title)
}
