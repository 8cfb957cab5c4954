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
	SkillsTableName = "skills"
)

const (
	SkillsIdColumn           = "id"
	SkillsNameColumn         = "name"
	SkillsCategoryColumn     = "category"
	SkillsProficiencyColumn  = "proficiency"
	SkillsIconColumn         = "icon"
	SkillsDisplayOrderColumn = "display_order"
	SkillsIsActiveColumn     = "is_active"
)

type SkillRepo interface {
	CreateOne(skill *models.Skill) (string, *utils.GenericError)
	List(category *string) ([]models.Skill, *utils.GenericError)
	UpdateOneByName(name string, fields map[string]interface{}) (int64, *utils.GenericError)
	SoftDeleteOneByName(name string) (int64, *utils.GenericError)
}

type skillRepo struct {
	store  db.DataStore
	logger hclog.Logger
}

func NewSkillRepo(logger hclog.Logger, store db.DataStore) SkillRepo {
	return &skillRepo{
		store:  store,
		logger: logger.Named("skill-repo"),
	}
}

// CreateOne creates a single active skill
func (repo *skillRepo) CreateOne(skill *models.Skill) (string, *utils.GenericError) {
	if len(skill.Name) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "name field is required")
	}
	if len(skill.Category) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "category field is required")
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	skill.ID = ksuid.New().String()
	skill.IsActive = true

	insertBuilder := sq.Insert(SkillsTableName).
		Columns(
			SkillsIdColumn,
			SkillsNameColumn,
			SkillsCategoryColumn,
			SkillsProficiencyColumn,
			SkillsIconColumn,
			SkillsDisplayOrderColumn,
			SkillsIsActiveColumn,
		).
		Values(
			skill.ID,
			skill.Name,
			skill.Category,
			skill.Proficiency,
			skill.Icon,
			skill.DisplayOrder,
			skill.IsActive,
		).
		RunWith(repo.store.GetOpenConnection())

	_, err := insertBuilder.Exec()
	if err != nil {
		return "", utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return skill.ID, nil
}

// List returns active skills ordered by display_order ascending, optionally
// restricted to one category
func (repo *skillRepo) List(category *string) ([]models.Skill, *utils.GenericError) {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(
		SkillsIdColumn,
		SkillsNameColumn,
		SkillsCategoryColumn,
		SkillsProficiencyColumn,
		SkillsIconColumn,
		SkillsDisplayOrderColumn,
		SkillsIsActiveColumn,
	).
		From(SkillsTableName).
		Where(fmt.Sprintf("%s = ?", SkillsIsActiveColumn), true).
		OrderBy(fmt.Sprintf("%s ASC", SkillsDisplayOrderColumn))

	if category != nil {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", SkillsCategoryColumn), *category)
	}

	rows, err := selectBuilder.RunWith(repo.store.GetOpenConnection()).Query()
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		skill := models.Skill{}
		scanErr := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.Proficiency,
			&skill.Icon,
			&skill.DisplayOrder,
			&skill.IsActive,
		)
		if scanErr != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		skills = append(skills, skill)
	}
	if rows.Err() != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	return skills, nil
}

// UpdateOneByName writes exactly the given columns on the active skill with
// the name. Names are assumed unique within the active set.
func (repo *skillRepo) UpdateOneByName(name string, fields map[string]interface{}) (int64, *utils.GenericError) {
	if len(fields) < 1 {
		return 0, utils.HTTPGenericError(http.StatusBadRequest, "no fields to update")
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	updateBuilder := sq.Update(SkillsTableName).
		SetMap(fields).
		Where(fmt.Sprintf("%s = ? AND %s = ?", SkillsNameColumn, SkillsIsActiveColumn), name, true).
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

// SoftDeleteOneByName marks the active skill with the name inactive. Skills
// are never hard deleted.
func (repo *skillRepo) SoftDeleteOneByName(name string) (int64, *utils.GenericError) {
	return repo.UpdateOneByName(name, map[string]interface{}{
		SkillsIsActiveColumn: false,
	})
}
