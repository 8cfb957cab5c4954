package repository

import (
	"fmt"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"

	"portfolio0/db"
	"portfolio0/models"
	"portfolio0/utils"
)

const (
	ContactInfoTableName = "contact_info"
)

const (
	ContactInfoIdColumn          = "id"
	ContactInfoEmailColumn       = "email"
	ContactInfoLinkedinURLColumn = "linkedin_url"
	ContactInfoGithubURLColumn   = "github_url"
	ContactInfoTwitterURLColumn  = "twitter_url"
	ContactInfoOtherLinksColumn  = "other_links"
	ContactInfoIsActiveColumn    = "is_active"
)

type ContactInfoRepo interface {
	GetActive(contactInfo *models.ContactInfo) *utils.GenericError
	CreateOne(contactInfo *models.ContactInfo) (string, *utils.GenericError)
	UpdateOneByID(id string, fields map[string]interface{}) (int64, *utils.GenericError)
}

type contactInfoRepo struct {
	store  db.DataStore
	logger hclog.Logger
}

func NewContactInfoRepo(logger hclog.Logger, store db.DataStore) ContactInfoRepo {
	return &contactInfoRepo{
		store:  store,
		logger: logger.Named("contact-info-repo"),
	}
}

// GetActive returns the single active contact row
func (repo *contactInfoRepo) GetActive(contactInfo *models.ContactInfo) *utils.GenericError {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(
		ContactInfoIdColumn,
		ContactInfoEmailColumn,
		ContactInfoLinkedinURLColumn,
		ContactInfoGithubURLColumn,
		ContactInfoTwitterURLColumn,
		ContactInfoOtherLinksColumn,
		ContactInfoIsActiveColumn,
	).
		From(ContactInfoTableName).
		Where(fmt.Sprintf("%s = ?", ContactInfoIsActiveColumn), true).
		Limit(1).
		RunWith(repo.store.GetOpenConnection())

	rows, err := selectBuilder.Query()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var otherLinks string
		scanErr := rows.Scan(
			&contactInfo.ID,
			&contactInfo.Email,
			&contactInfo.LinkedinURL,
			&contactInfo.GithubURL,
			&contactInfo.TwitterURL,
			&otherLinks,
			&contactInfo.IsActive,
		)
		if scanErr != nil {
			return utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		contactInfo.OtherLinks = unmarshalStringMap(otherLinks)
		found = true
	}
	if rows.Err() != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	if !found {
		return utils.HTTPGenericError(http.StatusNotFound, "no active contact info entry")
	}

	return nil
}

// CreateOne creates a new active contact row
func (repo *contactInfoRepo) CreateOne(contactInfo *models.ContactInfo) (string, *utils.GenericError) {
	if len(contactInfo.Email) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "email field is required")
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	contactInfo.ID = ksuid.New().String()
	contactInfo.IsActive = true

	insertBuilder := sq.Insert(ContactInfoTableName).
		Columns(
			ContactInfoIdColumn,
			ContactInfoEmailColumn,
			ContactInfoLinkedinURLColumn,
			ContactInfoGithubURLColumn,
			ContactInfoTwitterURLColumn,
			ContactInfoOtherLinksColumn,
			ContactInfoIsActiveColumn,
		).
		Values(
			contactInfo.ID,
			contactInfo.Email,
			contactInfo.LinkedinURL,
			contactInfo.GithubURL,
			contactInfo.TwitterURL,
			marshalStringMap(contactInfo.OtherLinks),
			contactInfo.IsActive,
		).
		RunWith(repo.store.GetOpenConnection())

	_, err := insertBuilder.Exec()
	if err != nil {
		return "", utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return contactInfo.ID, nil
}

// UpdateOneByID writes exactly the given columns on the row with the id
func (repo *contactInfoRepo) UpdateOneByID(id string, fields map[string]interface{}) (int64, *utils.GenericError) {
	if len(fields) < 1 {
		return 0, utils.HTTPGenericError(http.StatusBadRequest, "no fields to update")
	}

	if otherLinks, ok := fields[ContactInfoOtherLinksColumn].(map[string]string); ok {
		fields[ContactInfoOtherLinksColumn] = marshalStringMap(otherLinks)
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	updateBuilder := sq.Update(ContactInfoTableName).
		SetMap(fields).
		Where(fmt.Sprintf("%s = ?", ContactInfoIdColumn), id).
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
