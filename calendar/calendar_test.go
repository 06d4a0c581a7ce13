package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEventTimeUnmarshalBothShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare string",
			raw:  `"2026-03-14T09:00:00Z"`,
			want: "2026-03-14T09:00:00Z",
		},
		{
			name: "graph object",
			raw:  `{"dateTime":"2026-03-14T09:00:00.0000000","timeZone":"UTC"}`,
			want: "2026-03-14T09:00:00.0000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var et EventTime
			if err := json.Unmarshal([]byte(tt.raw), &et); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if et.DateTime != tt.want {
				t.Errorf("DateTime = %q, want %q", et.DateTime, tt.want)
			}
		})
	}
}

func TestEventTimeIn(t *testing.T) {
	sydney, err := LocalZone()
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}

	// 9am UTC is 8pm in Sydney during daylight saving.
	et := EventTime{DateTime: "2026-01-10T09:00:00.0000000"}
	local, err := et.In(sydney)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if local.Hour() != 20 {
		t.Errorf("expected 20:00 local, got %02d:00", local.Hour())
	}

	if _, err := (EventTime{DateTime: "not a time"}).In(sydney); err == nil {
		t.Error("expected error for unparseable time")
	}

	allDay := EventTime{DateTime: "2026-03-14"}
	if _, err := allDay.In(time.UTC); err != nil {
		t.Errorf("all-day date failed to parse: %v", err)
	}
}

func TestGroup(t *testing.T) {
	events := []Event{
		{Subject: "Hazard reduction training", Categories: []string{CategoryTraining}},
		{Subject: "Open day", Categories: []string{CategoryCommunity}},
		{Subject: "Get ready weekend", Categories: []string{CategoryTraining, CategoryCommunity}},
		{Subject: "Committee meeting", Categories: []string{"Internal"}},
		{Subject: "No categories"},
	}

	groups := Group(events)

	if len(groups.Training) != 2 {
		t.Errorf("expected 2 training events, got %d", len(groups.Training))
	}
	if len(groups.Community) != 2 {
		t.Errorf("expected 2 community events, got %d", len(groups.Community))
	}

	// An event with both categories appears in both groups.
	if groups.Training[1].Subject != "Get ready weekend" || groups.Community[1].Subject != "Get ready weekend" {
		t.Error("dual-category event missing from a group")
	}
}

func TestEventsResponseDecoding(t *testing.T) {
	payload := `{"value":[{"subject":"Open day","start":{"dateTime":"2026-03-14T09:00:00.0000000","timeZone":"UTC"},"end":"2026-03-14T12:00:00Z","isAllDay":false,"location":{"displayName":"Bungendore Station"},"categories":["Public - Community Engagement"]}]}`

	var resp EventsResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Value) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Value))
	}

	event := resp.Value[0]
	if event.Subject != "Open day" {
		t.Errorf("unexpected subject: %q", event.Subject)
	}
	if event.Location == nil || event.Location.DisplayName != "Bungendore Station" {
		t.Errorf("unexpected location: %+v", event.Location)
	}
	if !event.HasCategory(CategoryCommunity) {
		t.Error("expected community category")
	}
	if event.HasCategory(CategoryTraining) {
		t.Error("unexpected training category")
	}
}
