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

type SkillService interface {
	List(category *string) ([]models.Skill, *utils.GenericError)
	Categories() ([]string, *utils.GenericError)
	Add(skill models.Skill) (*models.Skill, *utils.GenericError)
	UpdateOneByName(name string, fields map[string]interface{}) *utils.GenericError
	Remove(name string) *utils.GenericError
}

type skillService struct {
	skillRepo repository.SkillRepo
	notifier  notifier.Notifier
	logger    hclog.Logger
}

func NewSkillService(logger hclog.Logger, skillRepo repository.SkillRepo, notify notifier.Notifier) SkillService {
	return &skillService{
		skillRepo: skillRepo,
		notifier:  notify,
		logger:    logger.Named("skill-service"),
	}
}

func (skillService *skillService) List(category *string) ([]models.Skill, *utils.GenericError) {
	return skillService.skillRepo.List(category)
}

// Categories returns the distinct categories of active skills, in the order
// their first skill appears.
func (skillService *skillService) Categories() ([]string, *utils.GenericError) {
	skills, err := skillService.skillRepo.List(nil)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, skill := range skills {
		if !seen[skill.Category] {
			seen[skill.Category] = true
			categories = append(categories, skill.Category)
		}
	}

	return categories, nil
}

// Add creates a skill after range-validating proficiency. Out of range
// rejects with no write.
func (skillService *skillService) Add(skill models.Skill) (*models.Skill, *utils.GenericError) {
	if skill.Proficiency < models.MinProficiency || skill.Proficiency > models.MaxProficiency {
		return nil, utils.HTTPGenericError(http.StatusBadRequest,
			fmt.Sprintf("proficiency must be between %d and %d", models.MinProficiency, models.MaxProficiency))
	}

	if _, err := skillService.skillRepo.CreateOne(&skill); err != nil {
		return nil, err
	}

	skillService.notifier.RevalidatePath("/")
	skillService.notifier.RevalidatePath("/about")

	return &skill, nil
}

// UpdateOneByName writes exactly the recognized fields on the active skill
// with the name
func (skillService *skillService) UpdateOneByName(name string, fields map[string]interface{}) *utils.GenericError {
	if len(fields) < 1 {
		return ErrNoFields
	}

	if proficiency, ok := fields[repository.SkillsProficiencyColumn].(int64); ok {
		if proficiency < models.MinProficiency || proficiency > models.MaxProficiency {
			return utils.HTTPGenericError(http.StatusBadRequest,
				fmt.Sprintf("proficiency must be between %d and %d", models.MinProficiency, models.MaxProficiency))
		}
	}

	count, err := skillService.skillRepo.UpdateOneByName(name, fields)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find active skill named %q", name))
	}

	skillService.notifier.RevalidatePath("/")
	skillService.notifier.RevalidatePath("/about")

	return nil
}

// Remove soft-deletes the active skill with the name
func (skillService *skillService) Remove(name string) *utils.GenericError {
	count, err := skillService.skillRepo.SoftDeleteOneByName(name)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find active skill named %q", name))
	}

	skillService.notifier.RevalidatePath("/")
	skillService.notifier.RevalidatePath("/about")

	return nil
}
