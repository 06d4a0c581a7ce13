// Package client is the request-issuing side of the gateway: it runs
// the same validation the contact handler enforces, then fetches and
// normalizes the danger rating, incident, and calendar feeds the way
// the site's pages do on load.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"brigade-service/calendar"
	"brigade-service/config"
	"brigade-service/danger"
	"brigade-service/dashboard"
	"brigade-service/incidents"
	"brigade-service/models"
	"brigade-service/validation"
)

// Client talks to the gateway endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	resolver   *danger.Resolver
	aggregator *incidents.Aggregator
}

// Option configures a Client.
type Option func(*Client)

// WithResolver overrides the danger rating resolver.
func WithResolver(r *danger.Resolver) Option {
	return func(c *Client) { c.resolver = r }
}

// WithAggregator overrides the incident aggregator.
func WithAggregator(a *incidents.Aggregator) Option {
	return func(c *Client) { c.aggregator = a }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client with default district, service areas, and
// ratings table.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		resolver:   danger.NewResolver("Southern Ranges", danger.DefaultRatings()),
		aggregator: incidents.NewAggregator([]string{"Queanbeyan-Palerang", "ACT"}, false),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client whose pipelines follow the service
// configuration (district, ratings table, service areas, show-all flag).
func NewFromConfig(baseURL string, cfg *config.Config) (*Client, error) {
	ratings, err := danger.LoadRatings(cfg.RatingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings table: %w", err)
	}
	return New(baseURL,
		WithResolver(danger.NewResolver(cfg.District, ratings)),
		WithAggregator(incidents.NewAggregator(cfg.ServiceAreas, cfg.IncidentsShowAll)),
	), nil
}

// ValidationError carries the rule violations found before submission.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// SubmitContact validates the submission with the shared rule set and
// posts it to the contact endpoint. Records the handler would reject
// never leave the client.
func (c *Client) SubmitContact(ctx context.Context, sub models.ContactSubmission) (*models.ContactResponse, error) {
	if details := validation.Validate(sub); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit contact form: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("contact endpoint returned status %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("contact endpoint returned status %d", resp.StatusCode)
	}

	var out models.ContactResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode contact response: %w", err)
	}
	return &out, nil
}

// FetchDangerDisplay fetches the rating feed and resolves today's
// display. Fetch failures degrade to the fallback display with the
// error returned for logging; the display is always usable.
func (c *Client) FetchDangerDisplay(ctx context.Context) (danger.ResolvedDisplay, error) {
	body, err := c.get(ctx, "/api/fire-danger")
	if err != nil {
		return danger.Fallback(), fmt.Errorf("failed to fetch fire danger data: %w", err)
	}
	return c.resolver.Resolve(string(body)), nil
}

// FetchIncidentSummary fetches the incident feed and aggregates it.
// Failures degrade to an empty summary with the error returned for
// logging.
func (c *Client) FetchIncidentSummary(ctx context.Context) (incidents.Summary, error) {
	body, err := c.get(ctx, "/api/fire-incidents")
	if err != nil {
		return c.aggregator.Aggregate(nil), fmt.Errorf("failed to fetch incidents: %w", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return c.aggregator.Aggregate(nil), fmt.Errorf("failed to parse incident features: %w", err)
	}
	return c.aggregator.Aggregate(collection), nil
}

// FetchCalendarGroups fetches the calendar feed and splits it into the
// two public event groups.
func (c *Client) FetchCalendarGroups(ctx context.Context) (calendar.Groups, error) {
	body, err := c.get(ctx, "/api/calendar-events")
	if err != nil {
		return calendar.Groups{}, fmt.Errorf("failed to fetch events: %w", err)
	}

	var events calendar.EventsResponse
	if err := json.Unmarshal(body, &events); err != nil {
		return calendar.Groups{}, fmt.Errorf("failed to decode events: %w", err)
	}
	return calendar.Group(events.Value), nil
}

// FetchToken fetches the map-tile credential.
func (c *Client) FetchToken(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/mapbox-token")
	if err != nil {
		return "", fmt.Errorf("failed to fetch map token: %w", err)
	}
	var token models.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return token.Token, nil
}

// RefreshDashboard runs the danger and incident pipelines and pushes
// the composed state to the dispatcher. Either feed failing still
// produces a defined state; the first error is returned for logging.
func (c *Client) RefreshDashboard(ctx context.Context, d *dashboard.Dispatcher) (dashboard.State, error) {
	display, dangerErr := c.FetchDangerDisplay(ctx)
	summary, incidentsErr := c.FetchIncidentSummary(ctx)

	state := dashboard.Compose(display, summary)
	d.Update(state)

	if dangerErr != nil {
		return state, dangerErr
	}
	return state, incidentsErr
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("endpoint %s returned status %d", path, resp.StatusCode)
	}
	return body, nil
}
