package repository

import "encoding/json"

// marshalStringArray stores string slices as JSON text columns.
func marshalStringArray(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalStringArray(raw string) []string {
	values := []string{}
	if len(raw) < 1 {
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

func marshalStringMap(values map[string]string) string {
	if values == nil {
		values = map[string]string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func unmarshalStringMap(raw string) map[string]string {
	values := map[string]string{}
	if len(raw) < 1 {
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return map[string]string{}
	}
	return values
}
