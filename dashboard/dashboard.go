package dashboard

import (
	"strings"
	"sync"

	"brigade-service/danger"
	"brigade-service/incidents"
)

// State is the single value the display layer is a function of. It
// replaces the module-level danger/incident variables the site used to
// mutate from several places.
type State struct {
	DangerLevel   string              `json:"dangerLevel"`
	Message       string              `json:"message"`
	IncidentCount int                 `json:"incidentCount"`
	Incidents     []incidents.Preview `json:"incidents"`
}

// Normalize trims and upper-cases the danger level, defaulting to
// "NO RATING" when empty.
func (s State) Normalize() State {
	level := strings.ToUpper(strings.TrimSpace(s.DangerLevel))
	if level == "" {
		level = danger.LevelNoRating
	}
	s.DangerLevel = level
	if s.Incidents == nil {
		s.Incidents = []incidents.Preview{}
	}
	return s
}

// Compose builds the dashboard state from the two pipeline outputs.
func Compose(display danger.ResolvedDisplay, summary incidents.Summary) State {
	message := display.Message
	if message == "" {
		message = display.KeyMessage
	}
	return State{
		DangerLevel:   display.Level,
		Message:       message,
		IncidentCount: summary.Total,
		Incidents:     summary.Preview,
	}.Normalize()
}

// StyleClass maps a normalized danger level to the status bar style
// class.
func StyleClass(level string) string {
	switch strings.ToUpper(level) {
	case "HIGH":
		return "level-high"
	case "EXTREME":
		return "level-extreme"
	case "CATASTROPHIC":
		return "level-catastrophic"
	case danger.LevelNoRating, "N/A", "ERROR":
		return "level-none"
	default:
		return "level-moderate"
	}
}

// Dispatcher delivers state updates to registered display subscribers.
// It replaces the window-global update hook with explicit registration.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers []func(State)
	current     State
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{current: State{}.Normalize()}
}

// Subscribe registers a display-update callback. The callback is
// immediately invoked with the current state so late subscribers do not
// render stale defaults.
func (d *Dispatcher) Subscribe(fn func(State)) {
	d.mu.Lock()
	d.subscribers = append(d.subscribers, fn)
	current := d.current
	d.mu.Unlock()

	fn(current)
}

// Update normalizes the state and delivers it to every subscriber.
func (d *Dispatcher) Update(state State) {
	normalized := state.Normalize()

	d.mu.Lock()
	d.current = normalized
	subscribers := make([]func(State), len(d.subscribers))
	copy(subscribers, d.subscribers)
	d.mu.Unlock()

	for _, fn := range subscribers {
		fn(normalized)
	}
}

// Current returns the most recently dispatched state.
func (d *Dispatcher) Current() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}
