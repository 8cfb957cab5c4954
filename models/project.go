package models

import (
	"encoding/json"
	"time"
)

// Project project model
type Project struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	FeaturedImage   string    `json:"featured_image"`
	LiveURL         string    `json:"live_url"`
	GithubURL       string    `json:"github_url"`
	TechStack       []string  `json:"tech_stack"`
	IsFeatured      bool      `json:"is_featured"`
	IsPublished     bool      `json:"is_published"`
	DisplayOrder    int64     `json:"display_order"`
	DateCreated     time.Time `json:"date_created"`
}

// ToJSON returns the content of the model as JSON
func (project *Project) ToJSON() ([]byte, error) {
	data, err := json.Marshal(project)
	if err != nil {
		return data, err
	}
	return data, nil
}

// FromJSON extracts the content of a JSON object into the model
func (project *Project) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &project); err != nil {
		return err
	}
	return nil
}
