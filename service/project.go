package service

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"portfolio0/models"
	"portfolio0/notifier"
	"portfolio0/repository"
	"portfolio0/utils"
)

type ProjectService interface {
	List(featured *bool, includeUnpublished bool) ([]models.Project, *utils.GenericError)
	CreateOne(project models.Project) (*models.Project, *utils.GenericError)
	UpdateOneBySlug(slug string, fields map[string]interface{}) *utils.GenericError
	DeleteOneBySlug(slug string) *utils.GenericError
}

type projectService struct {
	projectRepo repository.ProjectRepo
	notifier    notifier.Notifier
	logger      hclog.Logger
}

func NewProjectService(logger hclog.Logger, projectRepo repository.ProjectRepo, notify notifier.Notifier) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		notifier:    notify,
		logger:      logger.Named("project-service"),
	}
}

func (projectService *projectService) List(featured *bool, includeUnpublished bool) ([]models.Project, *utils.GenericError) {
	return projectService.projectRepo.List(featured, !includeUnpublished)
}

// CreateOne creates a new project and revalidates the listing pages
func (projectService *projectService) CreateOne(project models.Project) (*models.Project, *utils.GenericError) {
	if _, err := projectService.projectRepo.CreateOne(&project); err != nil {
		return nil, err
	}

	projectService.notifier.RevalidatePath("/projects")
	projectService.notifier.RevalidatePath("/")

	return &project, nil
}

// UpdateOneBySlug writes exactly the recognized fields and revalidates the
// listing, detail and home pages
func (projectService *projectService) UpdateOneBySlug(slug string, fields map[string]interface{}) *utils.GenericError {
	if len(fields) < 1 {
		return ErrNoFields
	}

	count, err := projectService.projectRepo.UpdateOneBySlug(slug, fields)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find project with slug %q", slug))
	}

	projectService.notifier.RevalidatePath("/projects")
	projectService.notifier.RevalidatePath(fmt.Sprintf("/projects/%s", slug))
	projectService.notifier.RevalidatePath("/")

	return nil
}

// DeleteOneBySlug permanently deletes a project
func (projectService *projectService) DeleteOneBySlug(slug string) *utils.GenericError {
	count, err := projectService.projectRepo.DeleteOneBySlug(slug)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find project with slug %q", slug))
	}

	projectService.notifier.RevalidatePath("/projects")
	projectService.notifier.RevalidatePath("/")

	return nil
}
