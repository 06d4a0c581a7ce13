package danger

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// RatingMetadata is one row of the AFDRS messages table, keyed by the
// upper-cased rating name.
type RatingMetadata struct {
	Rating             string   `json:"Rating"`
	Color              string   `json:"color,omitempty"`
	BackgroundColor    string   `json:"background-color,omitempty"`
	FireBehaviour      string   `json:"FireBehaviour"`
	KeyMessage         string   `json:"KeyMessage"`
	SupportingMessages []string `json:"SupportingMessages,omitempty"`
}

type ratingsTable struct {
	FireDangerRatings []RatingMetadata `json:"FireDangerRatings"`
}

//go:embed ratings.json
var defaultRatingsJSON []byte

// DefaultRatings returns the AFDRS messages table shipped with the binary.
func DefaultRatings() []RatingMetadata {
	ratings, err := parseRatings(defaultRatingsJSON)
	if err != nil {
		// The embedded table is validated by tests; this is unreachable
		// with a well-formed build.
		panic(fmt.Sprintf("embedded ratings table is invalid: %v", err))
	}
	return ratings
}

// LoadRatings reads a ratings table from a JSON file. An empty path
// falls back to the embedded table.
func LoadRatings(path string) ([]RatingMetadata, error) {
	if path == "" {
		return DefaultRatings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file: %w", err)
	}

	ratings, err := parseRatings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ratings file %s: %w", path, err)
	}
	return ratings, nil
}

func parseRatings(data []byte) ([]RatingMetadata, error) {
	var table ratingsTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return table.FireDangerRatings, nil
}
