package danger

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/apex/log"
)

// District is one district entry from the upstream rating feed.
type District struct {
	Name             string `xml:"Name"`
	DangerLevelToday string `xml:"DangerLevelToday"`
}

// ResolvedDisplay is the danger level joined with its display metadata.
// It is always fully populated; failures resolve to the fallback values
// so the UI never shows stale state.
type ResolvedDisplay struct {
	Level      string `json:"level"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	Message    string `json:"message"`
	KeyMessage string `json:"keyMessage"`
}

const (
	LevelNoRating = "NO RATING"

	unavailableMessage    = "Rating information currently unavailable."
	unavailableKeyMessage = "Fire danger information is currently unavailable."
)

// Fallback is the display shown when the feed or the metadata table
// cannot produce a rating.
func Fallback() ResolvedDisplay {
	return ResolvedDisplay{
		Level:      LevelNoRating,
		Message:    unavailableMessage,
		KeyMessage: unavailableKeyMessage,
	}
}

// Resolver resolves today's danger level for one fixed district.
type Resolver struct {
	district string
	ratings  []RatingMetadata
}

// NewResolver creates a resolver for the given district name. The
// district comparison is a case-sensitive exact match.
func NewResolver(district string, ratings []RatingMetadata) *Resolver {
	return &Resolver{
		district: district,
		ratings:  ratings,
	}
}

// Resolve parses the XML rating feed and joins the district's level
// against the metadata table. It never fails: parse errors, a missing
// district, an empty level, and an unknown level all produce the
// fallback display.
func (r *Resolver) Resolve(xmlText string) ResolvedDisplay {
	districts, err := ParseDistricts(xmlText)
	if err != nil {
		log.Errorf("Failed to parse fire danger feed: %v", err)
		return Fallback()
	}

	var found *District
	for i := range districts {
		if districts[i].Name == r.district {
			found = &districts[i]
			break
		}
	}
	if found == nil {
		log.Errorf("District %q not found in the rating feed", r.district)
		return Fallback()
	}

	// Level comparison is case-insensitive by construction: both the
	// feed value and the table keys are upper-cased.
	level := strings.ToUpper(strings.TrimSpace(found.DangerLevelToday))
	if level == "" {
		log.Warnf("District %q has no danger level today", r.district)
		return Fallback()
	}

	meta, ok := lookupRating(r.ratings, level)
	if !ok {
		log.Errorf("No rating information found for danger level: %s", level)
		return Fallback()
	}

	return ResolvedDisplay{
		Level:      level,
		Color:      meta.Color,
		Background: meta.BackgroundColor,
		Message:    meta.FireBehaviour,
		KeyMessage: meta.KeyMessage,
	}
}

// ParseDistricts extracts every District element from the feed,
// regardless of nesting depth.
func ParseDistricts(xmlText string) ([]District, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))

	var districts []District
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "District" {
			continue
		}

		var d District
		if err := decoder.DecodeElement(&d, &start); err != nil {
			return nil, err
		}
		districts = append(districts, d)
	}

	return districts, nil
}

func lookupRating(ratings []RatingMetadata, level string) (RatingMetadata, bool) {
	for _, meta := range ratings {
		if meta.Rating == level {
			return meta, true
		}
	}
	return RatingMetadata{}, false
}
