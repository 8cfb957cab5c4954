package service

import (
	"github.com/hashicorp/go-hclog"

	"portfolio0/models"
	"portfolio0/repository"
)

// QueryService is the read path behind the website. Every accessor fails
// soft: a store error is logged and the caller receives an empty or absent
// value it can render.
type QueryService interface {
	GetAbout() *models.About
	GetProjects(featured *bool) []models.Project
	GetProjectBySlug(slug string) *models.Project
	GetBlogPosts(featured *bool) []models.BlogPost
	GetBlogPostBySlug(slug string) *models.BlogPost
	GetSkills(category *string) []models.Skill
	GetSkillsByCategory() map[string][]models.Skill
	GetContactInfo() *models.ContactInfo
}

type queryService struct {
	aboutRepo       repository.AboutRepo
	projectRepo     repository.ProjectRepo
	blogPostRepo    repository.BlogPostRepo
	skillRepo       repository.SkillRepo
	contactInfoRepo repository.ContactInfoRepo
	logger          hclog.Logger
}

func NewQueryService(
	logger hclog.Logger,
	aboutRepo repository.AboutRepo,
	projectRepo repository.ProjectRepo,
	blogPostRepo repository.BlogPostRepo,
	skillRepo repository.SkillRepo,
	contactInfoRepo repository.ContactInfoRepo,
) QueryService {
	return &queryService{
		aboutRepo:       aboutRepo,
		projectRepo:     projectRepo,
		blogPostRepo:    blogPostRepo,
		skillRepo:       skillRepo,
		contactInfoRepo: contactInfoRepo,
		logger:          logger.Named("query-service"),
	}
}

func (queries *queryService) GetAbout() *models.About {
	about := models.About{}
	if err := queries.aboutRepo.GetActive(&about); err != nil {
		queries.logger.Error("error fetching about", "error", err.Message)
		return nil
	}
	return &about
}

func (queries *queryService) GetProjects(featured *bool) []models.Project {
	projects, err := queries.projectRepo.List(featured, true)
	if err != nil {
		queries.logger.Error("error fetching projects", "error", err.Message)
		return []models.Project{}
	}
	return projects
}

func (queries *queryService) GetProjectBySlug(slug string) *models.Project {
	project := models.Project{Slug: slug}
	if err := queries.projectRepo.GetOneBySlug(&project, true); err != nil {
		queries.logger.Error("error fetching project", "slug", slug, "error", err.Message)
		return nil
	}
	return &project
}

func (queries *queryService) GetBlogPosts(featured *bool) []models.BlogPost {
	published := true
	posts, err := queries.blogPostRepo.List(featured, &published)
	if err != nil {
		queries.logger.Error("error fetching blog posts", "error", err.Message)
		return []models.BlogPost{}
	}
	return posts
}

func (queries *queryService) GetBlogPostBySlug(slug string) *models.BlogPost {
	post := models.BlogPost{Slug: slug}
	if err := queries.blogPostRepo.GetOneBySlug(&post, true); err != nil {
		queries.logger.Error("error fetching blog post", "slug", slug, "error", err.Message)
		return nil
	}
	return &post
}

func (queries *queryService) GetSkills(category *string) []models.Skill {
	skills, err := queries.skillRepo.List(category)
	if err != nil {
		queries.logger.Error("error fetching skills", "error", err.Message)
		return []models.Skill{}
	}
	return skills
}

// GetSkillsByCategory groups the skills from GetSkills by category,
// preserving each skill's relative order within its category.
func (queries *queryService) GetSkillsByCategory() map[string][]models.Skill {
	grouped := map[string][]models.Skill{}
	for _, skill := range queries.GetSkills(nil) {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped
}

func (queries *queryService) GetContactInfo() *models.ContactInfo {
	contactInfo := models.ContactInfo{}
	if err := queries.contactInfoRepo.GetActive(&contactInfo); err != nil {
		queries.logger.Error("error fetching contact info", "error", err.Message)
		return nil
	}
	return &contactInfo
}
