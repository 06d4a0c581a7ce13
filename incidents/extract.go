package incidents

import (
	"regexp"
	"strings"
)

// FieldMissing is the placeholder for a label absent from a description.
const FieldMissing = "N/A"

// Fields are the labelled values pulled out of an incident description,
// a semi-structured block of "LABEL: value" segments inside HTML.
type Fields struct {
	AlertLevel        string
	Location          string
	CouncilArea       string
	Status            string
	Type              string
	Fire              string
	Size              string
	ResponsibleAgency string
	Updated           string
}

var fieldLabels = []string{
	"ALERT LEVEL",
	"LOCATION",
	"COUNCIL AREA",
	"STATUS",
	"TYPE",
	"FIRE",
	"SIZE",
	"RESPONSIBLE AGENCY",
	"UPDATED",
}

// Each label's value runs up to the next tag boundary.
var fieldPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(fieldLabels))
	for _, label := range fieldLabels {
		patterns[label] = regexp.MustCompile(regexp.QuoteMeta(label) + `: ([^<]*)`)
	}
	return patterns
}()

// ExtractFields pulls the known labels out of a description block.
// Missing or malformed labels yield FieldMissing; it never fails.
func ExtractFields(description string) Fields {
	values := make(map[string]string, len(fieldLabels))
	for _, label := range fieldLabels {
		values[label] = FieldMissing
		if description == "" {
			continue
		}
		if match := fieldPatterns[label].FindStringSubmatch(description); match != nil {
			if value := strings.TrimSpace(match[1]); value != "" {
				values[label] = value
			}
		}
	}

	return Fields{
		AlertLevel:        values["ALERT LEVEL"],
		Location:          values["LOCATION"],
		CouncilArea:       values["COUNCIL AREA"],
		Status:            values["STATUS"],
		Type:              values["TYPE"],
		Fire:              values["FIRE"],
		Size:              values["SIZE"],
		ResponsibleAgency: values["RESPONSIBLE AGENCY"],
		Updated:           values["UPDATED"],
	}
}
