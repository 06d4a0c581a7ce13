package incidents

import (
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// Category is one of the four alert categories an incident maps into.
type Category string

const (
	CategoryAdvice           Category = "Advice"
	CategoryWatchAndAct      Category = "Watch and Act"
	CategoryEmergencyWarning Category = "Emergency Warning"
	CategoryOther            Category = "Other"
)

// classificationOrder is the substring priority for Classify. A feature
// whose text contains several markers counts only for the first match.
var classificationOrder = []Category{
	CategoryAdvice,
	CategoryWatchAndAct,
	CategoryEmergencyWarning,
}

// Preview is one row of the bounded incident preview list.
type Preview struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// Summary is the aggregated view of the incident feed.
type Summary struct {
	Counts  map[Category]int `json:"counts"`
	Total   int              `json:"total"`
	Preview []Preview        `json:"preview"`
}

// PreviewLimit caps the preview list.
const PreviewLimit = 5

// Classify maps a feature into exactly one category by substring match
// on its category property, falling back to the description text when
// the category is absent.
func Classify(feature *geojson.Feature) Category {
	text := propertyString(feature, "category")
	if text == "" {
		text = propertyString(feature, "description")
	}

	for _, category := range classificationOrder {
		if strings.Contains(text, string(category)) {
			return category
		}
	}
	return CategoryOther
}

// Aggregator filters the incident feed to the brigade's service area
// and produces per-category counts plus a preview list.
type Aggregator struct {
	// ServiceAreas are the council areas whose incidents are shown.
	ServiceAreas []string

	// ShowAll bypasses the service-area filter. It exists so preview
	// environments can display test data and must be set explicitly
	// through configuration.
	ShowAll bool
}

func NewAggregator(serviceAreas []string, showAll bool) *Aggregator {
	return &Aggregator{
		ServiceAreas: serviceAreas,
		ShowAll:      showAll,
	}
}

// InServiceArea reports whether a feature's description names one of
// the configured council areas.
func (a *Aggregator) InServiceArea(feature *geojson.Feature) bool {
	description := propertyString(feature, "description")
	if description == "" {
		return false
	}
	for _, area := range a.ServiceAreas {
		if strings.Contains(description, "COUNCIL AREA: "+area) {
			return true
		}
	}
	return false
}

// Filter returns the features kept by the service-area rule.
func (a *Aggregator) Filter(features []*geojson.Feature) []*geojson.Feature {
	if a.ShowAll {
		return features
	}
	kept := make([]*geojson.Feature, 0, len(features))
	for _, feature := range features {
		if feature == nil {
			continue
		}
		if a.InServiceArea(feature) {
			kept = append(kept, feature)
		}
	}
	return kept
}

// Aggregate classifies and counts the filtered features. It never
// fails; a nil or empty collection yields an empty summary.
func (a *Aggregator) Aggregate(collection *geojson.FeatureCollection) Summary {
	summary := Summary{
		Counts: map[Category]int{
			CategoryAdvice:           0,
			CategoryWatchAndAct:      0,
			CategoryEmergencyWarning: 0,
			CategoryOther:            0,
		},
		Preview: []Preview{},
	}
	if collection == nil {
		return summary
	}

	for _, feature := range a.Filter(collection.Features) {
		summary.Counts[Classify(feature)]++
		summary.Total++

		if len(summary.Preview) < PreviewLimit {
			summary.Preview = append(summary.Preview, previewOf(feature))
		}
	}

	return summary
}

func previewOf(feature *geojson.Feature) Preview {
	fields := ExtractFields(propertyString(feature, "description"))

	title := propertyString(feature, "title")
	if title == "" {
		title = "Unknown"
	}

	// Prefer the status line; fall back to the alert level when the
	// feed omits it.
	status := fields.Status
	if status == FieldMissing {
		status = fields.AlertLevel
	}

	return Preview{
		Title:    title,
		Status:   status,
		Location: fields.Location,
	}
}

func propertyString(feature *geojson.Feature, key string) string {
	if feature == nil || feature.Properties == nil {
		return ""
	}
	value, err := feature.PropertyString(key)
	if err != nil {
		return ""
	}
	return value
}
