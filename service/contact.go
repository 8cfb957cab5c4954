package service

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"portfolio0/models"
	"portfolio0/notifier"
	"portfolio0/repository"
	"portfolio0/utils"
)

type ContactService interface {
	GetContactInfo() (*models.ContactInfo, *utils.GenericError)
	Update(fields map[string]interface{}) (*models.ContactInfo, *utils.GenericError)
}

type contactService struct {
	contactInfoRepo repository.ContactInfoRepo
	notifier        notifier.Notifier
	logger          hclog.Logger
}

func NewContactService(logger hclog.Logger, contactInfoRepo repository.ContactInfoRepo, notify notifier.Notifier) ContactService {
	return &contactService{
		contactInfoRepo: contactInfoRepo,
		notifier:        notify,
		logger:          logger.Named("contact-service"),
	}
}

func (contactService *contactService) GetContactInfo() (*models.ContactInfo, *utils.GenericError) {
	contactInfo := models.ContactInfo{}
	if err := contactService.contactInfoRepo.GetActive(&contactInfo); err != nil {
		return nil, err
	}
	return &contactInfo, nil
}

// Update is a guarded upsert: the active row is updated in place when one
// exists, otherwise a new row is created, which requires an email.
func (contactService *contactService) Update(fields map[string]interface{}) (*models.ContactInfo, *utils.GenericError) {
	if len(fields) < 1 {
		return nil, ErrNoFields
	}

	existing := models.ContactInfo{}
	getErr := contactService.contactInfoRepo.GetActive(&existing)

	if getErr != nil && getErr.Type != http.StatusNotFound {
		return nil, getErr
	}

	if getErr == nil {
		if _, err := contactService.contactInfoRepo.UpdateOneByID(existing.ID, fields); err != nil {
			return nil, err
		}
	} else {
		contactInfo := models.ContactInfo{}
		stringField := func(column string) string {
			if v, ok := fields[column].(string); ok {
				return v
			}
			return ""
		}
		contactInfo.Email = stringField(repository.ContactInfoEmailColumn)
		contactInfo.LinkedinURL = stringField(repository.ContactInfoLinkedinURLColumn)
		contactInfo.GithubURL = stringField(repository.ContactInfoGithubURLColumn)
		contactInfo.TwitterURL = stringField(repository.ContactInfoTwitterURLColumn)
		if otherLinks, ok := fields[repository.ContactInfoOtherLinksColumn].(map[string]string); ok {
			contactInfo.OtherLinks = otherLinks
		}

		if len(contactInfo.Email) < 1 {
			return nil, utils.HTTPGenericError(http.StatusBadRequest,
				"email is required when creating contact info")
		}

		if _, err := contactService.contactInfoRepo.CreateOne(&contactInfo); err != nil {
			return nil, err
		}
	}

	updated := models.ContactInfo{}
	if err := contactService.contactInfoRepo.GetActive(&updated); err != nil {
		return nil, err
	}

	contactService.notifier.RevalidatePath("/contact")

	return &updated, nil
}
