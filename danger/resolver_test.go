package danger

import (
	"testing"
)

const ratingFeed = `<?xml version="1.0" encoding="utf-8"?>
<FireDangerMap>
  <District>
    <Name>Far North Coast</Name>
    <DangerLevelToday>MODERATE</DangerLevelToday>
  </District>
  <District>
    <Name>Southern Ranges</Name>
    <DangerLevelToday>high</DangerLevelToday>
  </District>
</FireDangerMap>`

func testRatings() []RatingMetadata {
	return []RatingMetadata{
		{
			Rating:        "MODERATE",
			Color:         "#000000",
			FireBehaviour: "Most fires can be controlled.",
			KeyMessage:    "Plan and prepare for fires in your area.",
		},
		{
			Rating:          "HIGH",
			Color:           "#000000",
			BackgroundColor: "#fdd835",
			FireBehaviour:   "Fires can be dangerous.",
			KeyMessage:      "Be ready to act.",
		},
	}
}

func TestResolveMatchingDistrict(t *testing.T) {
	r := NewResolver("Southern Ranges", testRatings())
	got := r.Resolve(ratingFeed)

	if got.Level != "HIGH" {
		t.Errorf("expected level HIGH, got %q", got.Level)
	}
	if got.Message != "Fires can be dangerous." {
		t.Errorf("unexpected message: %q", got.Message)
	}
	if got.KeyMessage != "Be ready to act." {
		t.Errorf("unexpected key message: %q", got.KeyMessage)
	}
	if got.Background != "#fdd835" {
		t.Errorf("unexpected background: %q", got.Background)
	}
}

func TestResolveLevelCaseInsensitive(t *testing.T) {
	feed := `<FireDangerMap><District><Name>Southern Ranges</Name><DangerLevelToday>  CaTaStRoPhIc </DangerLevelToday></District></FireDangerMap>`
	ratings := []RatingMetadata{{Rating: "CATASTROPHIC", FireBehaviour: "If a fire starts and takes hold, lives are likely to be lost."}}

	got := NewResolver("Southern Ranges", ratings).Resolve(feed)
	if got.Level != "CATASTROPHIC" {
		t.Errorf("expected CATASTROPHIC, got %q", got.Level)
	}
}

func TestResolveFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		district string
		ratings  []RatingMetadata
		xmlText  string
	}{
		{
			name:     "district missing from feed",
			district: "Monaro Alpine",
			ratings:  testRatings(),
			xmlText:  ratingFeed,
		},
		{
			name:     "district name comparison is case-sensitive",
			district: "southern ranges",
			ratings:  testRatings(),
			xmlText:  ratingFeed,
		},
		{
			name:     "no metadata row for level",
			district: "Southern Ranges",
			ratings:  []RatingMetadata{{Rating: "MODERATE"}},
			xmlText:  ratingFeed,
		},
		{
			name:     "empty danger level",
			district: "Southern Ranges",
			ratings:  testRatings(),
			xmlText:  `<FireDangerMap><District><Name>Southern Ranges</Name><DangerLevelToday>  </DangerLevelToday></District></FireDangerMap>`,
		},
		{
			name:     "malformed xml",
			district: "Southern Ranges",
			ratings:  testRatings(),
			xmlText:  "<FireDangerMap><District><Name>Southern",
		},
		{
			name:     "empty input",
			district: "Southern Ranges",
			ratings:  testRatings(),
			xmlText:  "",
		},
		{
			name:     "not xml at all",
			district: "Southern Ranges",
			ratings:  testRatings(),
			xmlText:  `{"error":"upstream returned json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResolver(tt.district, tt.ratings).Resolve(tt.xmlText)
			want := Fallback()
			if got != want {
				t.Errorf("expected fallback display, got %+v", got)
			}
		})
	}
}

func TestResolveNestedDistricts(t *testing.T) {
	// Some feed variants wrap districts in a container element.
	feed := `<rss><channel><FireDangerMap><District><Name>Southern Ranges</Name><DangerLevelToday>MODERATE</DangerLevelToday></District></FireDangerMap></channel></rss>`
	got := NewResolver("Southern Ranges", testRatings()).Resolve(feed)
	if got.Level != "MODERATE" {
		t.Errorf("expected MODERATE from nested feed, got %q", got.Level)
	}
}

func TestDefaultRatingsTable(t *testing.T) {
	ratings := DefaultRatings()
	if len(ratings) == 0 {
		t.Fatal("embedded ratings table is empty")
	}

	wanted := map[string]bool{
		"NO RATING":    false,
		"MODERATE":     false,
		"HIGH":         false,
		"EXTREME":      false,
		"CATASTROPHIC": false,
	}
	for _, meta := range ratings {
		if _, ok := wanted[meta.Rating]; ok {
			wanted[meta.Rating] = true
		}
		if meta.FireBehaviour == "" {
			t.Errorf("rating %s has no fire behaviour message", meta.Rating)
		}
		if meta.KeyMessage == "" {
			t.Errorf("rating %s has no key message", meta.Rating)
		}
	}
	for rating, found := range wanted {
		if !found {
			t.Errorf("embedded table missing rating %s", rating)
		}
	}
}

func TestLoadRatingsEmptyPathUsesDefault(t *testing.T) {
	ratings, err := LoadRatings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ratings) != len(DefaultRatings()) {
		t.Errorf("expected the embedded table")
	}
}

func TestLoadRatingsMissingFile(t *testing.T) {
	if _, err := LoadRatings("does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
