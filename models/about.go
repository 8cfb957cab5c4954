package models

import (
	"encoding/json"
	"time"
)

// About is the single-active-row profile entity behind the about page.
type About struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Bio         string    `json:"bio"`
	ShortBio    string    `json:"short_bio"`
	AvatarURL   string    `json:"avatar_url"`
	ResumeURL   string    `json:"resume_url"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"is_active"`
	DateUpdated time.Time `json:"date_updated"`
}

// ToJSON returns the content of the model as JSON
func (about *About) ToJSON() ([]byte, error) {
	data, err := json.Marshal(about)
	if err != nil {
		return data, err
	}
	return data, nil
}

// FromJSON extracts the content of a JSON object into the model
func (about *About) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &about); err != nil {
		return err
	}
	return nil
}
