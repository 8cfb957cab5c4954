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
	ProjectsTableName = "projects"
)

const (
	ProjectsIdColumn              = "id"
	ProjectsSlugColumn            = "slug"
	ProjectsTitleColumn           = "title"
	ProjectsDescriptionColumn     = "description"
	ProjectsLongDescriptionColumn = "long_description"
	ProjectsFeaturedImageColumn   = "featured_image"
	ProjectsLiveURLColumn         = "live_url"
	ProjectsGithubURLColumn       = "github_url"
	ProjectsTechStackColumn       = "tech_stack"
	ProjectsIsFeaturedColumn      = "is_featured"
	ProjectsIsPublishedColumn     = "is_published"
	ProjectsDisplayOrderColumn    = "display_order"
	ProjectsDateCreatedColumn     = "date_created"
)

type ProjectRepo interface {
	CreateOne(project *models.Project) (string, *utils.GenericError)
	GetOneBySlug(project *models.Project, publishedOnly bool) *utils.GenericError
	List(featured *bool, publishedOnly bool) ([]models.Project, *utils.GenericError)
	UpdateOneBySlug(slug string, fields map[string]interface{}) (int64, *utils.GenericError)
	DeleteOneBySlug(slug string) (int64, *utils.GenericError)
}

type projectRepo struct {
	store  db.DataStore
	logger hclog.Logger
}

func NewProjectRepo(logger hclog.Logger, store db.DataStore) ProjectRepo {
	return &projectRepo{
		store:  store,
		logger: logger.Named("project-repo"),
	}
}

func projectColumns() []string {
	return []string{
		ProjectsIdColumn,
		ProjectsSlugColumn,
		ProjectsTitleColumn,
		ProjectsDescriptionColumn,
		ProjectsLongDescriptionColumn,
		ProjectsFeaturedImageColumn,
		ProjectsLiveURLColumn,
		ProjectsGithubURLColumn,
		ProjectsTechStackColumn,
		ProjectsIsFeaturedColumn,
		ProjectsIsPublishedColumn,
		ProjectsDisplayOrderColumn,
		ProjectsDateCreatedColumn,
	}
}

func scanProject(rows sq.RowScanner, project *models.Project) error {
	var techStack string
	err := rows.Scan(
		&project.ID,
		&project.Slug,
		&project.Title,
		&project.Description,
		&project.LongDescription,
		&project.FeaturedImage,
		&project.LiveURL,
		&project.GithubURL,
		&techStack,
		&project.IsFeatured,
		&project.IsPublished,
		&project.DisplayOrder,
		&project.DateCreated,
	)
	if err != nil {
		return err
	}
	project.TechStack = unmarshalStringArray(techStack)
	return nil
}

// CreateOne creates a single project
func (repo *projectRepo) CreateOne(project *models.Project) (string, *utils.GenericError) {
	if len(project.Slug) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "slug field is required")
	}
	if len(project.Title) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "title field is required")
	}
	if len(project.Description) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "description field is required")
	}

	existing := models.Project{Slug: project.Slug}
	getErr := repo.GetOneBySlug(&existing, false)
	if getErr == nil {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "another project exists with the same slug")
	}
	if getErr.Type != http.StatusNotFound {
		return "", getErr
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	project.ID = ksuid.New().String()
	project.DateCreated = time.Now().UTC()

	insertBuilder := sq.Insert(ProjectsTableName).
		Columns(projectColumns()...).
		Values(
			project.ID,
			project.Slug,
			project.Title,
			project.Description,
			project.LongDescription,
			project.FeaturedImage,
			project.LiveURL,
			project.GithubURL,
			marshalStringArray(project.TechStack),
			project.IsFeatured,
			project.IsPublished,
			project.DisplayOrder,
			project.DateCreated,
		).
		RunWith(repo.store.GetOpenConnection())

	_, err := insertBuilder.Exec()
	if err != nil {
		return "", utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return project.ID, nil
}

// GetOneBySlug returns the project with a matching slug
func (repo *projectRepo) GetOneBySlug(project *models.Project, publishedOnly bool) *utils.GenericError {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(projectColumns()...).
		From(ProjectsTableName).
		Where(fmt.Sprintf("%s = ?", ProjectsSlugColumn), project.Slug)

	if publishedOnly {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", ProjectsIsPublishedColumn), true)
	}

	rows, err := selectBuilder.RunWith(repo.store.GetOpenConnection()).Query()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		if scanErr := scanProject(rows, project); scanErr != nil {
			return utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		found = true
	}
	if rows.Err() != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	if !found {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find project with slug %q", project.Slug))
	}

	return nil
}

// List returns projects ordered by display_order ascending
func (repo *projectRepo) List(featured *bool, publishedOnly bool) ([]models.Project, *utils.GenericError) {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(projectColumns()...).
		From(ProjectsTableName).
		OrderBy(fmt.Sprintf("%s ASC", ProjectsDisplayOrderColumn))

	if publishedOnly {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", ProjectsIsPublishedColumn), true)
	}
	if featured != nil {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", ProjectsIsFeaturedColumn), *featured)
	}

	rows, err := selectBuilder.RunWith(repo.store.GetOpenConnection()).Query()
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project := models.Project{}
		if scanErr := scanProject(rows, &project); scanErr != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		projects = append(projects, project)
	}
	if rows.Err() != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	return projects, nil
}

// UpdateOneBySlug writes exactly the given columns on the project with the slug
func (repo *projectRepo) UpdateOneBySlug(slug string, fields map[string]interface{}) (int64, *utils.GenericError) {
	if len(fields) < 1 {
		return 0, utils.HTTPGenericError(http.StatusBadRequest, "no fields to update")
	}

	if techStack, ok := fields[ProjectsTechStackColumn].([]string); ok {
		fields[ProjectsTechStackColumn] = marshalStringArray(techStack)
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	updateBuilder := sq.Update(ProjectsTableName).
		SetMap(fields).
		Where(fmt.Sprintf("%s = ?", ProjectsSlugColumn), slug).
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

// DeleteOneBySlug permanently deletes the project with the slug
func (repo *projectRepo) DeleteOneBySlug(slug string) (int64, *utils.GenericError) {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	deleteBuilder := sq.Delete(ProjectsTableName).
		Where(fmt.Sprintf("%s = ?", ProjectsSlugColumn), slug).
		RunWith(repo.store.GetOpenConnection())

	res, err := deleteBuilder.Exec()
	if err != nil {
		return 0, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return count, nil
}
