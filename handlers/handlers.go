package handlers

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"brigade-service/config"
	"brigade-service/metrics"
	"brigade-service/middleware"
	"brigade-service/models"
	"brigade-service/upstream"
	"brigade-service/validation"
)

const configErrorMessage = "Server configuration error"

// GatewayHandler serves the proxy endpoints that hide the upstream
// webhook URLs and the map-tile credential from the browser.
type GatewayHandler struct {
	cfg      *config.Config
	upstream *upstream.Client
}

func NewGatewayHandler(cfg *config.Config, client *upstream.Client) *GatewayHandler {
	return &GatewayHandler{
		cfg:      cfg,
		upstream: client,
	}
}

// HealthCheck returns a simple health status
func (h *GatewayHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brigade-service",
	})
}

// MapboxToken returns the map-tile credential after checking the
// caller's origin. Requests without any origin are same-origin and
// allowed.
func (h *GatewayHandler) MapboxToken(c *gin.Context) {
	origin := middleware.ResolveOrigin(c.Request)
	if origin != "" && !middleware.OriginAllowed(origin, h.cfg.AllowedOrigins) {
		metrics.RequestsTotal.WithLabelValues("mapbox-token", "forbidden").Inc()
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
		return
	}

	if h.cfg.MapboxAccessToken == "" {
		log.Error("MAPBOX_ACCESS_TOKEN not configured")
		metrics.RequestsTotal.WithLabelValues("mapbox-token", "error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: configErrorMessage})
		return
	}

	metrics.RequestsTotal.WithLabelValues("mapbox-token", "ok").Inc()
	c.JSON(http.StatusOK, models.TokenResponse{Token: h.cfg.MapboxAccessToken})
}

// SubmitContact validates a contact submission and forwards it to the
// contact webhook. The honeypot short-circuits before validation:
// automated spam gets a success response and is dropped.
func (h *GatewayHandler) SubmitContact(c *gin.Context) {
	if h.cfg.ContactWebhookURL == "" {
		log.Error("AZURE_CONTACT_WEBHOOK_URL not configured")
		metrics.RequestsTotal.WithLabelValues("contact", "error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: configErrorMessage})
		return
	}

	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		log.Errorf("Failed to bind contact submission: %v", err)
		metrics.RequestsTotal.WithLabelValues("contact", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
		return
	}

	if sub.Website != "" {
		// Return success to not alert spammers.
		log.Warn("Potential spam submission detected (honeypot filled)")
		metrics.SpamTrapped.Inc()
		metrics.RequestsTotal.WithLabelValues("contact", "ok").Inc()
		c.JSON(http.StatusOK, models.ContactResponse{
			Success: true,
			Message: "Thank you for your submission",
		})
		return
	}

	if validationErrors := validation.Validate(sub); len(validationErrors) > 0 {
		metrics.RequestsTotal.WithLabelValues("contact", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Validation failed",
			Details: validationErrors,
		})
		return
	}

	resp, err := h.upstream.PostJSON(c.Request.Context(), h.cfg.ContactWebhookURL, validation.Sanitize(sub))
	if err != nil {
		log.Errorf("Error submitting contact form: %v", err)
		metrics.UpstreamFailures.WithLabelValues("contact").Inc()
		metrics.RequestsTotal.WithLabelValues("contact", "error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit form"})
		return
	}
	if !resp.OK() {
		// Relay the status but not the upstream body.
		log.Errorf("Contact webhook returned status %d", resp.StatusCode)
		metrics.UpstreamFailures.WithLabelValues("contact").Inc()
		metrics.RequestsTotal.WithLabelValues("contact", "error").Inc()
		c.JSON(resp.StatusCode, models.ErrorResponse{Error: "Failed to submit form"})
		return
	}

	metrics.RequestsTotal.WithLabelValues("contact", "ok").Inc()
	if resp.IsJSON() {
		c.Data(http.StatusOK, "application/json; charset=utf-8", resp.Body)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", resp.Body)
}

// CalendarEvents proxies the calendar webhook.
func (h *GatewayHandler) CalendarEvents(c *gin.Context) {
	h.relay(c, passthrough{
		endpoint:     "calendar-events",
		webhookURL:   h.cfg.CalendarWebhookURL,
		envName:      "AZURE_CALENDAR_WEBHOOK_URL",
		errorMessage: "Failed to fetch events",
		contentType:  "application/json; charset=utf-8",
	})
}

// FireIncidents proxies the incidents webhook.
func (h *GatewayHandler) FireIncidents(c *gin.Context) {
	h.relay(c, passthrough{
		endpoint:     "fire-incidents",
		webhookURL:   h.cfg.IncidentsWebhookURL,
		envName:      "AZURE_INCIDENTS_WEBHOOK_URL",
		errorMessage: "Failed to fetch incidents",
		contentType:  "application/json; charset=utf-8",
		headers: map[string]string{
			"X-Request-ID": "Get-Fire-Incidents",
			"Content-Type": "application/json",
		},
	})
}

// FireDanger proxies the danger rating webhook, relaying the body as
// XML. Parsing the feed is the browser's job, not the gateway's.
func (h *GatewayHandler) FireDanger(c *gin.Context) {
	h.relay(c, passthrough{
		endpoint:     "fire-danger",
		webhookURL:   h.cfg.FireDangerWebhookURL,
		envName:      "AZURE_FIRE_DANGER_WEBHOOK_URL",
		errorMessage: "Failed to fetch fire danger",
		contentType:  "application/xml",
	})
}

type passthrough struct {
	endpoint     string
	webhookURL   string
	envName      string
	errorMessage string
	contentType  string
	headers      map[string]string
}

// relay is the shared pass-through: fatal-config check, one GET, relay
// the body on success and a generic error otherwise.
func (h *GatewayHandler) relay(c *gin.Context, p passthrough) {
	if p.webhookURL == "" {
		log.Errorf("%s not configured", p.envName)
		metrics.RequestsTotal.WithLabelValues(p.endpoint, "error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: configErrorMessage})
		return
	}

	resp, err := h.upstream.Get(c.Request.Context(), p.webhookURL, p.headers)
	if err != nil {
		log.Errorf("Error fetching %s: %v", p.endpoint, err)
		metrics.UpstreamFailures.WithLabelValues(p.endpoint).Inc()
		metrics.RequestsTotal.WithLabelValues(p.endpoint, "error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: p.errorMessage})
		return
	}
	if !resp.OK() {
		log.Errorf("Upstream webhook for %s returned status %d", p.endpoint, resp.StatusCode)
		metrics.UpstreamFailures.WithLabelValues(p.endpoint).Inc()
		metrics.RequestsTotal.WithLabelValues(p.endpoint, "error").Inc()
		c.JSON(resp.StatusCode, models.ErrorResponse{Error: p.errorMessage})
		return
	}

	metrics.RequestsTotal.WithLabelValues(p.endpoint, "ok").Inc()
	c.Data(http.StatusOK, p.contentType, resp.Body)
}
