package repository

import (
	"database/sql"
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
	BlogPostsTableName = "blog_posts"
)

const (
	BlogPostsIdColumn            = "id"
	BlogPostsSlugColumn          = "slug"
	BlogPostsTitleColumn         = "title"
	BlogPostsContentColumn       = "content"
	BlogPostsExcerptColumn       = "excerpt"
	BlogPostsFeaturedImageColumn = "featured_image"
	BlogPostsTagsColumn          = "tags"
	BlogPostsIsFeaturedColumn    = "is_featured"
	BlogPostsIsPublishedColumn   = "is_published"
	BlogPostsReadingTimeColumn   = "reading_time"
	BlogPostsPublishedAtColumn   = "published_at"
	BlogPostsDateCreatedColumn   = "date_created"
)

type BlogPostRepo interface {
	CreateOne(post *models.BlogPost) (string, *utils.GenericError)
	GetOneBySlug(post *models.BlogPost, publishedOnly bool) *utils.GenericError
	List(featured *bool, published *bool) ([]models.BlogPost, *utils.GenericError)
	UpdateOneBySlug(slug string, fields map[string]interface{}) (int64, *utils.GenericError)
	DeleteOneBySlug(slug string) (int64, *utils.GenericError)
}

type blogPostRepo struct {
	store  db.DataStore
	logger hclog.Logger
}

func NewBlogPostRepo(logger hclog.Logger, store db.DataStore) BlogPostRepo {
	return &blogPostRepo{
		store:  store,
		logger: logger.Named("blog-post-repo"),
	}
}

func blogPostColumns() []string {
	return []string{
		BlogPostsIdColumn,
		BlogPostsSlugColumn,
		BlogPostsTitleColumn,
		BlogPostsContentColumn,
		BlogPostsExcerptColumn,
		BlogPostsFeaturedImageColumn,
		BlogPostsTagsColumn,
		BlogPostsIsFeaturedColumn,
		BlogPostsIsPublishedColumn,
		BlogPostsReadingTimeColumn,
		BlogPostsPublishedAtColumn,
		BlogPostsDateCreatedColumn,
	}
}

func scanBlogPost(rows sq.RowScanner, post *models.BlogPost) error {
	var tags string
	var publishedAt sql.NullTime
	err := rows.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.FeaturedImage,
		&tags,
		&post.IsFeatured,
		&post.IsPublished,
		&post.ReadingTime,
		&publishedAt,
		&post.DateCreated,
	)
	if err != nil {
		return err
	}
	post.Tags = unmarshalStringArray(tags)
	if publishedAt.Valid {
		t := publishedAt.Time
		post.PublishedAt = &t
	} else {
		post.PublishedAt = nil
	}
	return nil
}

// CreateOne creates a single blog post
func (repo *blogPostRepo) CreateOne(post *models.BlogPost) (string, *utils.GenericError) {
	if len(post.Slug) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "slug field is required")
	}
	if len(post.Title) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "title field is required")
	}
	if len(post.Content) < 1 {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "content field is required")
	}

	existing := models.BlogPost{Slug: post.Slug}
	getErr := repo.GetOneBySlug(&existing, false)
	if getErr == nil {
		return "", utils.HTTPGenericError(http.StatusBadRequest, "another post exists with the same slug")
	}
	if getErr.Type != http.StatusNotFound {
		return "", getErr
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	post.ID = ksuid.New().String()
	post.DateCreated = time.Now().UTC()

	var publishedAt interface{}
	if post.PublishedAt != nil {
		publishedAt = *post.PublishedAt
	}

	insertBuilder := sq.Insert(BlogPostsTableName).
		Columns(blogPostColumns()...).
		Values(
			post.ID,
			post.Slug,
			post.Title,
			post.Content,
			post.Excerpt,
			post.FeaturedImage,
			marshalStringArray(post.Tags),
			post.IsFeatured,
			post.IsPublished,
			post.ReadingTime,
			publishedAt,
			post.DateCreated,
		).
		RunWith(repo.store.GetOpenConnection())

	_, err := insertBuilder.Exec()
	if err != nil {
		return "", utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	return post.ID, nil
}

// GetOneBySlug returns the post with a matching slug
func (repo *blogPostRepo) GetOneBySlug(post *models.BlogPost, publishedOnly bool) *utils.GenericError {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(blogPostColumns()...).
		From(BlogPostsTableName).
		Where(fmt.Sprintf("%s = ?", BlogPostsSlugColumn), post.Slug)

	if publishedOnly {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", BlogPostsIsPublishedColumn), true)
	}

	rows, err := selectBuilder.RunWith(repo.store.GetOpenConnection()).Query()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		if scanErr := scanBlogPost(rows, post); scanErr != nil {
			return utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		found = true
	}
	if rows.Err() != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	if !found {
		return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find post with slug %q", post.Slug))
	}

	return nil
}

// List returns posts ordered by published_at descending. Drafts order last
// since their published_at is still null.
func (repo *blogPostRepo) List(featured *bool, published *bool) ([]models.BlogPost, *utils.GenericError) {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	selectBuilder := sq.Select(blogPostColumns()...).
		From(BlogPostsTableName).
		OrderBy(fmt.Sprintf("%s DESC", BlogPostsPublishedAtColumn))

	if published != nil {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", BlogPostsIsPublishedColumn), *published)
	}
	if featured != nil {
		selectBuilder = selectBuilder.Where(fmt.Sprintf("%s = ?", BlogPostsIsFeaturedColumn), *featured)
	}

	rows, err := selectBuilder.RunWith(repo.store.GetOpenConnection()).Query()
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		post := models.BlogPost{}
		if scanErr := scanBlogPost(rows, &post); scanErr != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, scanErr.Error())
		}
		posts = append(posts, post)
	}
	if rows.Err() != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	return posts, nil
}

// UpdateOneBySlug writes exactly the given columns on the post with the slug
func (repo *blogPostRepo) UpdateOneBySlug(slug string, fields map[string]interface{}) (int64, *utils.GenericError) {
	if len(fields) < 1 {
		return 0, utils.HTTPGenericError(http.StatusBadRequest, "no fields to update")
	}

	if tags, ok := fields[BlogPostsTagsColumn].([]string); ok {
		fields[BlogPostsTagsColumn] = marshalStringArray(tags)
	}

	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	updateBuilder := sq.Update(BlogPostsTableName).
		SetMap(fields).
		Where(fmt.Sprintf("%s = ?", BlogPostsSlugColumn), slug).
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

// DeleteOneBySlug permanently deletes the post with the slug
func (repo *blogPostRepo) DeleteOneBySlug(slug string) (int64, *utils.GenericError) {
	repo.store.ConnectionLock()
	defer repo.store.ConnectionUnlock()

	deleteBuilder := sq.Delete(BlogPostsTableName).
		Where(fmt.Sprintf("%s = ?", BlogPostsSlugColumn), slug).
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
