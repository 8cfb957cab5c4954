package models

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// wordsPerMinute is the reading speed assumed when deriving reading_time.
const wordsPerMinute = 200

// BlogPost blog post model
type BlogPost struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	Tags          []string   `json:"tags"`
	IsFeatured    bool       `json:"is_featured"`
	IsPublished   bool       `json:"is_published"`
	ReadingTime   int64      `json:"reading_time"`
	PublishedAt   *time.Time `json:"published_at"`
	DateCreated   time.Time  `json:"date_created"`
}

// ReadingTime derives the estimated minutes to read from the whitespace
// delimited word count. Content with zero words yields 0.
func ReadingTime(content string) int64 {
	wordCount := len(strings.Fields(content))
	return int64(math.Ceil(float64(wordCount) / float64(wordsPerMinute)))
}

// ToJSON returns the content of the model as JSON
func (post *BlogPost) ToJSON() ([]byte, error) {
	data, err := json.Marshal(post)
	if err != nil {
		return data, err
	}
	return data, nil
}

// FromJSON extracts the content of a JSON object into the model
func (post *BlogPost) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &post); err != nil {
		return err
	}
	return nil
}
