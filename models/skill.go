package models

import "encoding/json"

const (
	MinProficiency     = 1
	MaxProficiency     = 5
	DefaultProficiency = 3
)

// Skill skill model. Removal is a soft-delete: is_active flips to false,
// the row is never deleted.
type Skill struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  int64  `json:"proficiency"`
	Icon         string `json:"icon"`
	DisplayOrder int64  `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// ToJSON returns the content of the model as JSON
func (skill *Skill) ToJSON() ([]byte, error) {
	data, err := json.Marshal(skill)
	if err != nil {
		return data, err
	}
	return data, nil
}

// FromJSON extracts the content of a JSON object into the model
func (skill *Skill) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &skill); err != nil {
		return err
	}
	return nil
}
