package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"portfolio0/models"
	"portfolio0/repository"
	"portfolio0/service"
	"portfolio0/utils"
)

var BlogCmd = &cobra.Command{
	Use:   "blog",
	Short: "list, create, publish or modify blog posts",
	Long: `
Blog posts are drafts until published. Publishing stamps the publication
date shown on the site; unpublishing hides the post but keeps the stamp.

Usage:

	portfolio0 blog list --all
	portfolio0 blog create --slug hello-world --title "Hello World" --file post.md
	portfolio0 blog publish hello-world
	portfolio0 blog unpublish hello-world
	portfolio0 blog delete hello-world
`,
}

var (
	blogListAll      bool
	blogListFeatured bool
)

var listBlogCmd = &cobra.Command{
	Use:   "list",
	Short: "List blog posts",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		var featured *bool
		if cmd.Flags().Changed("featured") {
			featured = &blogListFeatured
		}

		var published *bool
		if !blogListAll {
			isPublished := true
			published = &isPublished
		}

		posts, err := services.BlogService.List(featured, published)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		if len(posts) == 0 {
			utils.Warn("No blog posts found.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Slug", "Title", "Published", "Published At", "Minutes"})

		for index, post := range posts {
			publishedAt := ""
			if post.PublishedAt != nil {
				publishedAt = post.PublishedAt.Format("2006-01-02 15:04")
			}
			t.AppendSeparator()
			t.AppendRow([]interface{}{
				index + 1,
				post.Slug,
				post.Title,
				post.IsPublished,
				publishedAt,
				post.ReadingTime,
			})
		}

		t.AppendFooter(table.Row{"", "", "", "", "Total", len(posts)})
		t.Render()
	},
}

var (
	blogSlug          string
	blogTitle         string
	blogContent       string
	blogContentFile   string
	blogExcerpt       string
	blogFeaturedImage string
	blogTags          string
	blogFeatured      bool
	blogPublish       bool
)

func readBlogContent(cmd *cobra.Command) (string, bool) {
	if cmd.Flags().Changed("file") {
		data, err := afero.ReadFile(afero.NewOsFs(), blogContentFile)
		if err != nil {
			utils.Error("failed to read content file: %v", err)
			return "", false
		}
		return string(data), true
	}
	return blogContent, true
}

var createBlogCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a blog post",
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		content, ok := readBlogContent(cmd)
		if !ok {
			return
		}

		post := models.BlogPost{
			Slug:          blogSlug,
			Title:         blogTitle,
			Content:       content,
			Excerpt:       blogExcerpt,
			FeaturedImage: blogFeaturedImage,
			Tags:          splitCommaList(blogTags),
			IsFeatured:    blogFeatured,
			IsPublished:   blogPublish,
		}

		created, err := services.BlogService.CreateOne(post)
		if err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Created blog post %q, estimated reading time %d minute(s)", created.Slug, created.ReadingTime)
	},
}

var publishBlogCmd = &cobra.Command{
	Use:   "publish [slug]",
	Short: "Publish a blog post, stamping its publication date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		if err := services.BlogService.Publish(args[0]); err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Published blog post %q", args[0])
	},
}

var unpublishBlogCmd = &cobra.Command{
	Use:   "unpublish [slug]",
	Short: "Hide a blog post without clearing its publication date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		if err := services.BlogService.Unpublish(args[0]); err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Unpublished blog post %q", args[0])
	},
}

var updateBlogCmd = &cobra.Command{
	Use:   "update [slug]",
	Short: "Update a blog post by slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services := getServices()
		if services == nil {
			return
		}

		fields := map[string]interface{}{}
		stringFlagToColumn := map[string]string{
			"title":   repository.BlogPostsTitleColumn,
			"content": repository.BlogPostsContentColumn,
			"excerpt": repository.BlogPostsExcerptColumn,
			"image":   repository.BlogPostsFeaturedImageColumn,
		}
		for flag, column := range stringFlagToColumn {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				fields[column] = value
			}
		}
		if cmd.Flags().Changed("file") {
			content, ok := readBlogContent(cmd)
			if !ok {
				return
			}
			fields[repository.BlogPostsContentColumn] = content
		}
		if cmd.Flags().Changed("tags") {
			fields[repository.BlogPostsTagsColumn] = splitCommaList(blogTags)
		}
		if cmd.Flags().Changed("featured") {
			fields[repository.BlogPostsIsFeaturedColumn] = blogFeatured
		}

		if err := services.BlogService.UpdateOneBySlug(args[0], fields); err != nil {
			if err == service.ErrNoFields {
				utils.Warn("nothing to update, pass at least one field flag")
				return
			}
			utils.Error(err.Message)
			return
		}

		utils.Success("Updated blog post %q", args[0])
	},
}

var blogDeleteYes bool

var deleteBlogCmd = &cobra.Command{
	Use:   "delete [slug]",
	Short: "Delete a blog post by slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirmDelete(fmt.Sprintf("Delete blog post %q", args[0]), blogDeleteYes) {
			utils.Warn("Delete cancelled")
			return
		}

		services := getServices()
		if services == nil {
			return
		}

		if err := services.BlogService.DeleteOneBySlug(args[0]); err != nil {
			utils.Error(err.Message)
			return
		}

		utils.Success("Deleted blog post %q", args[0])
	},
}

func init() {
	listBlogCmd.Flags().BoolVar(&blogListAll, "all", false, "include unpublished posts")
	listBlogCmd.Flags().BoolVar(&blogListFeatured, "featured", false, "filter by featured flag")

	for _, command := range []*cobra.Command{createBlogCmd, updateBlogCmd} {
		command.Flags().StringVar(&blogTitle, "title", "", "post title")
		command.Flags().StringVar(&blogContent, "content", "", "post content")
		command.Flags().StringVar(&blogContentFile, "file", "", "file to read the post content from")
		command.Flags().StringVar(&blogExcerpt, "excerpt", "", "short excerpt shown in listings")
		command.Flags().StringVar(&blogFeaturedImage, "image", "", "featured image URL")
		command.Flags().StringVar(&blogTags, "tags", "", "comma-separated tags")
		command.Flags().BoolVar(&blogFeatured, "featured", false, "show on the home page")
	}
	createBlogCmd.Flags().StringVar(&blogSlug, "slug", "", "unique post slug")
	createBlogCmd.Flags().BoolVar(&blogPublish, "publish", false, "publish immediately")

	deleteBlogCmd.Flags().BoolVarP(&blogDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	BlogCmd.AddCommand(listBlogCmd)
	BlogCmd.AddCommand(createBlogCmd)
	BlogCmd.AddCommand(publishBlogCmd)
	BlogCmd.AddCommand(unpublishBlogCmd)
	BlogCmd.AddCommand(updateBlogCmd)
	BlogCmd.AddCommand(deleteBlogCmd)
}
