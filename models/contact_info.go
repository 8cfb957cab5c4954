package models

import "encoding/json"

// ContactInfo is the single-active-row contact entity behind the contact page.
type ContactInfo struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	LinkedinURL string            `json:"linkedin_url"`
	GithubURL   string            `json:"github_url"`
	TwitterURL  string            `json:"twitter_url"`
	OtherLinks  map[string]string `json:"other_links"`
	IsActive    bool              `json:"is_active"`
}

// ToJSON returns the content of the model as JSON
func (contactInfo *ContactInfo) ToJSON() ([]byte, error) {
	data, err := json.Marshal(contactInfo)
	if err != nil {
		return data, err
	}
	return data, nil
}

// FromJSON extracts the content of a JSON object into the model
func (contactInfo *ContactInfo) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &contactInfo); err != nil {
		return err
	}
	return nil
}
