package service

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"portfolio0/models"
	"portfolio0/notifier"
	"portfolio0/repository"
	"portfolio0/utils"
)

type AboutService interface {
	GetAbout() (*models.About, *utils.GenericError)
	Update(fields map[string]interface{}) (*models.About, *utils.GenericError)
}

type aboutService struct {
	aboutRepo repository.AboutRepo
	notifier  notifier.Notifier
	logger    hclog.Logger
}

func NewAboutService(logger hclog.Logger, aboutRepo repository.AboutRepo, notify notifier.Notifier) AboutService {
	return &aboutService{
		aboutRepo: aboutRepo,
		notifier:  notify,
		logger:    logger.Named("about-service"),
	}
}

func (aboutService *aboutService) GetAbout() (*models.About, *utils.GenericError) {
	about := models.About{}
	if err := aboutService.aboutRepo.GetActive(&about); err != nil {
		return nil, err
	}
	return &about, nil
}

// Update is a guarded upsert: when an active row exists exactly the given
// columns are written on it, otherwise a new row is created, which requires
// name, title and bio to be present among the fields.
func (aboutService *aboutService) Update(fields map[string]interface{}) (*models.About, *utils.GenericError) {
	if len(fields) < 1 {
		return nil, ErrNoFields
	}

	existing := models.About{}
	getErr := aboutService.aboutRepo.GetActive(&existing)

	if getErr != nil && getErr.Type != http.StatusNotFound {
		return nil, getErr
	}

	if getErr == nil {
		fields[repository.AboutDateUpdatedColumn] = time.Now().UTC()
		if _, err := aboutService.aboutRepo.UpdateOneByID(existing.ID, fields); err != nil {
			return nil, err
		}
	} else {
		about := models.About{}
		stringField := func(column string) string {
			if v, ok := fields[column].(string); ok {
				return v
			}
			return ""
		}
		about.Name = stringField(repository.AboutNameColumn)
		about.Title = stringField(repository.AboutTitleColumn)
		about.Bio = stringField(repository.AboutBioColumn)
		about.ShortBio = stringField(repository.AboutShortBioColumn)
		about.AvatarURL = stringField(repository.AboutAvatarURLColumn)
		about.ResumeURL = stringField(repository.AboutResumeURLColumn)
		about.Location = stringField(repository.AboutLocationColumn)

		if len(about.Name) < 1 || len(about.Title) < 1 || len(about.Bio) < 1 {
			return nil, utils.HTTPGenericError(http.StatusBadRequest,
				"creating a new about entry requires name, title and bio")
		}

		if _, err := aboutService.aboutRepo.CreateOne(&about); err != nil {
			return nil, err
		}
	}

	updated := models.About{}
	if err := aboutService.aboutRepo.GetActive(&updated); err != nil {
		return nil, err
	}

	aboutService.notifier.RevalidatePath("/about")
	aboutService.notifier.RevalidatePath("/")

	return &updated, nil
}
