package repository

import (
	"net/http"
	"testing"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"portfolio0/db"
	"portfolio0/models"
)

func newTestBlogPost() models.BlogPost {
	return models.BlogPost{
		Slug:    faker.Username(),
		Title:   faker.Sentence(),
		Content: faker.Paragraph(),
		Tags:    []string{"go", "backend"},
	}
}

func Test_BlogPostRepo_CreateOne(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	post := newTestBlogPost()
	id, createErr := blogPostRepo.CreateOne(&post)
	if createErr != nil {
		t.Fatal("failed to create blog post", createErr.Message)
	}
	assert.NotEmpty(t, id)

	fetched := models.BlogPost{Slug: post.Slug}
	getErr := blogPostRepo.GetOneBySlug(&fetched, false)
	if getErr != nil {
		t.Fatal("failed to fetch blog post", getErr.Message)
	}
	assert.Equal(t, post.Title, fetched.Title)
	assert.Equal(t, []string{"go", "backend"}, fetched.Tags)
	assert.Nil(t, fetched.PublishedAt)
}

func Test_BlogPostRepo_CreateOne_RequiresContent(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	post := models.BlogPost{Slug: "draft", Title: "Draft"}
	_, createErr := blogPostRepo.CreateOne(&post)
	assert.NotNil(t, createErr)
	assert.Equal(t, http.StatusBadRequest, createErr.Type)
}

func Test_BlogPostRepo_PublishedAtRoundTrip(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	publishedAt := time.Now().UTC().Truncate(time.Second)
	post := newTestBlogPost()
	post.IsPublished = true
	post.PublishedAt = &publishedAt
	if _, createErr := blogPostRepo.CreateOne(&post); createErr != nil {
		t.Fatal("failed to create blog post", createErr.Message)
	}

	fetched := models.BlogPost{Slug: post.Slug}
	if getErr := blogPostRepo.GetOneBySlug(&fetched, true); getErr != nil {
		t.Fatal("failed to fetch blog post", getErr.Message)
	}
	if assert.NotNil(t, fetched.PublishedAt) {
		assert.True(t, fetched.PublishedAt.Equal(publishedAt))
	}
}

func Test_BlogPostRepo_List_PublishedFilter(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	draft := newTestBlogPost()
	if _, createErr := blogPostRepo.CreateOne(&draft); createErr != nil {
		t.Fatal("failed to create draft", createErr.Message)
	}

	publishedAt := time.Now().UTC()
	published := newTestBlogPost()
	published.IsPublished = true
	published.PublishedAt = &publishedAt
	if _, createErr := blogPostRepo.CreateOne(&published); createErr != nil {
		t.Fatal("failed to create published post", createErr.Message)
	}

	isPublished := true
	publishedOnly, listErr := blogPostRepo.List(nil, &isPublished)
	if listErr != nil {
		t.Fatal("failed to list published posts", listErr.Message)
	}
	assert.Equal(t, 1, len(publishedOnly))
	assert.Equal(t, published.Slug, publishedOnly[0].Slug)

	all, listErr := blogPostRepo.List(nil, nil)
	if listErr != nil {
		t.Fatal("failed to list all posts", listErr.Message)
	}
	assert.Equal(t, 2, len(all))
}

func Test_BlogPostRepo_UpdateOneBySlug(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	post := newTestBlogPost()
	if _, createErr := blogPostRepo.CreateOne(&post); createErr != nil {
		t.Fatal("failed to create blog post", createErr.Message)
	}

	count, updateErr := blogPostRepo.UpdateOneBySlug(post.Slug, map[string]interface{}{
		BlogPostsTitleColumn: "renamed",
		BlogPostsTagsColumn:  []string{"sqlite"},
	})
	if updateErr != nil {
		t.Fatal("failed to update blog post", updateErr.Message)
	}
	assert.Equal(t, int64(1), count)

	fetched := models.BlogPost{Slug: post.Slug}
	assert.Nil(t, blogPostRepo.GetOneBySlug(&fetched, false))
	assert.Equal(t, "renamed", fetched.Title)
	assert.Equal(t, []string{"sqlite"}, fetched.Tags)
}

func Test_BlogPostRepo_DeleteOneBySlug(t *testing.T) {
	store := db.GetTestDataStore()
	blogPostRepo := NewBlogPostRepo(hclog.NewNullLogger(), store)

	post := newTestBlogPost()
	if _, createErr := blogPostRepo.CreateOne(&post); createErr != nil {
		t.Fatal("failed to create blog post", createErr.Message)
	}

	count, deleteErr := blogPostRepo.DeleteOneBySlug(post.Slug)
	if deleteErr != nil {
		t.Fatal("failed to delete blog post", deleteErr.Message)
	}
	assert.Equal(t, int64(1), count)

	fetched := models.BlogPost{Slug: post.Slug}
	getErr := blogPostRepo.GetOneBySlug(&fetched, false)
	assert.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)
}
