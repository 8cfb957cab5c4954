package repository

import (
	"fmt"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"

	"portfolio0/db"
	"portfolio0/models"
	"portfolio0/utils"
)

const (
	AboutTableName = "about"
)

const (
	AboutIdColumn          = "id"
	AboutNameColumn        = "name"
	AboutTitleColumn       = "title"
	AboutBioColumn         = "bio"
	AboutShortBioColumn    = "short_bio"
	AboutAvatarURLColumn   = "avatar_url"
	AboutResumeURLColumn   = "resume_url"
	AboutLocationColumn    = "location"
	AboutIsActiveColumn    = "is_active"
	AboutDateUpdatedColumn = "date_updated"
)

type AboutRepo interface {
	GetActive(about *models.About) *utils.GenericError
	CreateOne(about *models.About) (string, *utils.GenericError)
	UpdateOneByID(id string, fields map[string]interface{}) (int64, *utils.GenericError)
}

type aboutRepo struct {
	store  db.DataStore
	logger hclog.Logger
}

func NewAboutRepo(logger hclog.Logger, store db.DataStore) AboutRepo {
	return &aboutRepo{
		store:  store,
		logger: logger.Named("about-repo"),
	}
}

// GetActive returns the single active about row. There is at most one by
// convention; when several exist the most recently updated wins.
func (repo *aboutRepo) GetActive(about *models.About) *utils.GenericError {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(
		AboutIdColumn,
		AboutNameColumn,
		AboutTitleColumn,
		AboutBioColumn,
		AboutShortBioColumn,
		AboutAvatarURLColumn,
		AboutResumeURLColumn,
		AboutLocationColumn,
		AboutIsActiveColumn,
		AboutDateUpdatedColumn,
	).
		From(AboutTableName).
		Where(fmt.Sprintf("%s = ?", AboutIsActiveColumn), true).
		OrderBy(fmt.Sprintf("%s DESC", AboutDateUpdatedColumn)).
		Limit(1).
		RunWith(repo.store.GetOpenConnection())

	rows, err := selectBuilder.Query()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		scanErr := rows.Scan(
			&about.ID,
			&about.Name,
			&about.Title,
			&about.Bio,
			&about.ShortBio,
			&about.AvatarURL,
			&about.ResumeURL,
			&about.Location,
			&about.IsActive,
			&about.DateUpdated,
		)
		if scanErr != nil {
			return utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		found = true
	}
	if rows.Err() != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	if !found {
		return utils.HTTPGenericError(http.StatusNotFound, "no active about entry")
	}

	return nil
}

// CreateOne creates a new active about row
func (repo *aboutRepo) CreateOne(about *models.About) (string, *utils.GenericError) {
	if len(about.Name) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "name field is required")
	}
	if len(about.Title) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "title field is required")
	}
	if len(about.Bio) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "bio field is required")
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	about.ID = ksuid.New().String()
	about.IsActive = true
	about.DateUpdated = time.Now().UTC()

	insertBuilder := sq.Insert(AboutTableName).
		Columns(
			AboutIdColumn,
			AboutNameColumn,
			AboutTitleColumn,
			AboutBioColumn,
			AboutShortBioColumn,
			AboutAvatarURLColumn,
			AboutResumeURLColumn,
			AboutLocationColumn,
			AboutIsActiveColumn,
			AboutDateUpdatedColumn,
		).
		Values(
			about.ID,
			about.Name,
			about.Title,
			about.Bio,
			about.ShortBio,
			about.AvatarURL,
			about.ResumeURL,
			about.Location,
			about.IsActive,
			about.DateUpdated,
		).
		RunWith(repo.store.GetOpenConnection())

	_, err := insertBuilder.Exec()
	if err != nil {
		return "", utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return about.ID, nil
}

// UpdateOneByID writes exactly the given columns on the row with the id
func (repo *aboutRepo) UpdateOneByID(id string, fields map[string]interface{}) (int64, *utils.GenericError) {
	if len(fields) < 1 {
		return 0, utils.HTTPGenericError(http.StatusBadRequest, "no fields to update")
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	updateBuilder := sq.Update(AboutTableName).
		SetMap(fields).
		Where(fmt.Sprintf("%s = ?", AboutIdColumn), id).
		RunWith(repo.store.GetOpenConnection())

	res, err := updateBuilder.Exec()
	if err != nil {
		return 0, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return count, nil
}
