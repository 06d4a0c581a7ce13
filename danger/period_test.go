package danger

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestInDangerPeriod(t *testing.T) {
	tests := []struct {
		month time.Month
		want  bool
	}{
		{time.January, true},
		{time.February, true},
		{time.March, true},
		{time.April, false},
		{time.May, false},
		{time.June, false},
		{time.July, false},
		{time.August, false},
		{time.September, false},
		{time.October, true},
		{time.November, true},
		{time.December, true},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			clock := clockwork.NewFakeClockAt(time.Date(2026, tt.month, 15, 12, 0, 0, 0, time.UTC))
			checker := NewPeriodChecker(clock)
			if got := checker.InDangerPeriod(); got != tt.want {
				t.Errorf("InDangerPeriod() in %s = %v, want %v", tt.month, got, tt.want)
			}
			if got := checker.PermitRequired(); got != tt.want {
				t.Errorf("PermitRequired() in %s = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestStatusText(t *testing.T) {
	inPeriod := NewPeriodChecker(clockwork.NewFakeClockAt(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)))
	if text := inPeriod.StatusText(); text == "" || text[:6] != "We are" {
		t.Errorf("unexpected status text: %q", text)
	}

	outOfPeriod := NewPeriodChecker(clockwork.NewFakeClockAt(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	if inPeriod.StatusText() == outOfPeriod.StatusText() {
		t.Error("status text should differ between period states")
	}
}
