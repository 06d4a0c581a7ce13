package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// Category names used by the upstream calendar to mark public events.
const (
	CategoryTraining  = "Public - Training"
	CategoryCommunity = "Public - Community Engagement"
)

// EventTime tolerates both shapes the upstream emits for start/end:
// a bare ISO string and an object {"dateTime": "...", "timeZone": "..."}.
type EventTime struct {
	DateTime string
	TimeZone string
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		t.DateTime = raw
		return nil
	}

	var obj struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unsupported event time shape: %w", err)
	}
	t.DateTime = obj.DateTime
	t.TimeZone = obj.TimeZone
	return nil
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone,omitempty"`
	}{DateTime: t.DateTime, TimeZone: t.TimeZone})
}

// Upstream timestamps come with or without fractional seconds and
// usually without an offset, in which case they are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// In parses the event time and converts it to the given location.
func (t EventTime) In(loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, t.DateTime, time.UTC); err == nil {
			return parsed.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event time: %q", t.DateTime)
}

type Location struct {
	DisplayName string `json:"displayName"`
}

// Event is one upstream calendar entry.
type Event struct {
	Subject    string    `json:"subject"`
	Start      EventTime `json:"start"`
	End        EventTime `json:"end"`
	IsAllDay   bool      `json:"isAllDay"`
	Location   *Location `json:"location,omitempty"`
	Body       string    `json:"body,omitempty"`
	Categories []string  `json:"categories"`
}

// HasCategory reports whether the event carries the named category.
func (e Event) HasCategory(name string) bool {
	for _, category := range e.Categories {
		if category == name {
			return true
		}
	}
	return false
}

// EventsResponse is the upstream payload shape.
type EventsResponse struct {
	Value []Event `json:"value"`
}

// Groups are the two public calendars shown on the site. An event
// carrying both categories appears in both.
type Groups struct {
	Training  []Event `json:"training"`
	Community []Event `json:"community"`
}

// Group splits events into the two public calendars by category
// membership.
func Group(events []Event) Groups {
	var groups Groups
	for _, event := range events {
		if event.HasCategory(CategoryTraining) {
			groups.Training = append(groups.Training, event)
		}
		if event.HasCategory(CategoryCommunity) {
			groups.Community = append(groups.Community, event)
		}
	}
	return groups
}

// LocalZone returns the brigade's display time zone.
func LocalZone() (*time.Location, error) {
	return time.LoadLocation("Australia/Sydney")
}
