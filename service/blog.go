package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"portfolio0/models"
	"portfolio0/notifier"
	"portfolio0/repository"
	"portfolio0/utils"
)

type BlogService interface {
	List(featured *bool, published *bool) ([]models.BlogPost, *utils.GenericError)
	CreateOne(post models.BlogPost) (*models.BlogPost, *utils.GenericError)
	Publish(slug string) *utils.GenericError
	Unpublish(slug string) *utils.GenericError
	UpdateOneBySlug(slug string, fields map[string]interface{}) *utils.GenericError
	DeleteOneBySlug(slug string) *utils.GenericError
}

type blogService struct {
	blogPostRepo repository.BlogPostRepo
	notifier     notifier.Notifier
	logger       hclog.Logger
}

func NewBlogService(logger hclog.Logger, blogPostRepo repository.BlogPostRepo, notify notifier.Notifier) BlogService {
	return &blogService{
		blogPostRepo: blogPostRepo,
		notifier:     notify,
		logger:       logger.Named("blog-service"),
	}
}

func (blogService *blogService) List(featured *bool, published *bool) ([]models.BlogPost, *utils.GenericError) {
	return blogService.blogPostRepo.List(featured, published)
}

// CreateOne creates a post, deriving reading_time from the content word
// count. Publishing at creation stamps published_at; drafts trigger no
// revalidation since nothing public changed.
func (blogService *blogService) CreateOne(post models.BlogPost) (*models.BlogPost, *utils.GenericError) {
	post.ReadingTime = models.ReadingTime(post.Content)

	if post.IsPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if _, err := blogService.blogPostRepo.CreateOne(&post); err != nil {
		return nil, err
	}

	if post.IsPublished {
		blogService.notifier.RevalidatePath("/blog")
		blogService.notifier.RevalidatePath("/")
	}

	return &post, nil
}

// Publish marks a draft published and stamps published_at with the current
// time.
func (blogService *blogService) Publish(slug string) *utils.GenericError {
	count, err := blogService.blogPostRepo.UpdateOneBySlug(slug, map[string]interface{}{
		repository.BlogPostsIsPublishedColumn: true,
		repository.BlogPostsPublishedAtColumn: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find post with slug %q", slug))
	}

	blogService.notifier.RevalidatePath("/blog")
	blogService.notifier.RevalidatePath(fmt.Sprintf("/blog/%s", slug))
	blogService.notifier.RevalidatePath("/")

	return nil
}

// Unpublish hides a post again. published_at keeps its prior value.
func (blogService *blogService) Unpublish(slug string) *utils.GenericError {
	count, err := blogService.blogPostRepo.UpdateOneBySlug(slug, map[string]interface{}{
		repository.BlogPostsIsPublishedColumn: false,
	})
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find post with slug %q", slug))
	}

	blogService.notifier.RevalidatePath("/blog")
	blogService.notifier.RevalidatePath("/")

	return nil
}

// UpdateOneBySlug writes exactly the recognized fields. A content change
// recomputes reading_time.
func (blogService *blogService) UpdateOneBySlug(slug string, fields map[string]interface{}) *utils.GenericError {
	if len(fields) < 1 {
		return ErrNoFields
	}

	if content, ok := fields[repository.BlogPostsContentColumn].(string); ok {
		fields[repository.BlogPostsReadingTimeColumn] = models.ReadingTime(content)
	}

	count, err := blogService.blogPostRepo.UpdateOneBySlug(slug, fields)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find post with slug %q", slug))
	}

	blogService.notifier.RevalidatePath("/blog")
	blogService.notifier.RevalidatePath(fmt.Sprintf("/blog/%s", slug))

	return nil
}

// DeleteOneBySlug permanently deletes a post
func (blogService *blogService) DeleteOneBySlug(slug string) *utils.GenericError {
	count, err := blogService.blogPostRepo.DeleteOneBySlug(slug)
	if err != nil {
		return err
	}
	if count < 1 {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find post with slug %q", slug))
	}

	blogService.notifier.RevalidatePath("/blog")
	blogService.notifier.RevalidatePath("/")

	return nil
}
