// Package output serializes analysis results.
package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ToJSON serializes an analysis result (or a slice of them) to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes an analysis result (or a slice of them) to YAML.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}
