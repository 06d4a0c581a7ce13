package danger

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// PeriodChecker reports whether the statutory bush fire danger period
// is in effect. In NSW it runs from October through March.
type PeriodChecker struct {
	clock clockwork.Clock
}

func NewPeriodChecker(clock clockwork.Clock) *PeriodChecker {
	return &PeriodChecker{clock: clock}
}

// InDangerPeriod returns true between the start of October and the end
// of March.
func (p *PeriodChecker) InDangerPeriod() bool {
	month := p.clock.Now().Month()
	return month >= time.October || month <= time.March
}

// StatusText is the permit notice shown on the site for the current
// period state.
func (p *PeriodChecker) StatusText() string {
	if p.InDangerPeriod() {
		return "We are currently in the bushfire danger period. If you would like to light a fire any larger than a cooking fire you must;"
	}
	return "We are not currently in the bushfire danger period. If you would like to light a fire any larger than a cooking fire you must;"
}

// PermitRequired reports whether a fire permit is needed right now.
func (p *PeriodChecker) PermitRequired() bool {
	return p.InDangerPeriod()
}
