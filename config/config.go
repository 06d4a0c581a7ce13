package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the brigade service
type Config struct {
	// Server configuration
	Port      string
	StaticDir string

	// Origins allowed to call the gateway endpoints
	AllowedOrigins []string

	// Map tile credential, kept server-side
	MapboxAccessToken string

	// Upstream webhook URLs. Each one is required only by its own
	// handler; a missing value disables that handler alone.
	ContactWebhookURL    string
	CalendarWebhookURL   string
	IncidentsWebhookURL  string
	FireDangerWebhookURL string

	// Danger rating configuration
	District    string
	RatingsFile string

	// Incident filtering configuration
	ServiceAreas     []string
	IncidentsShowAll bool
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Server defaults
		Port:      getEnv("PORT", "3000"),
		StaticDir: getEnv("STATIC_DIR", "public"),

		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{
			"https://bungendorerfs.org",
			"https://www.bungendorerfs.org",
			"http://localhost:3000",
		}),

		MapboxAccessToken: getEnv("MAPBOX_ACCESS_TOKEN", ""),

		ContactWebhookURL:    getEnv("AZURE_CONTACT_WEBHOOK_URL", ""),
		CalendarWebhookURL:   getEnv("AZURE_CALENDAR_WEBHOOK_URL", ""),
		IncidentsWebhookURL:  getEnv("AZURE_INCIDENTS_WEBHOOK_URL", ""),
		FireDangerWebhookURL: getEnv("AZURE_FIRE_DANGER_WEBHOOK_URL", ""),

		District:    getEnv("FIRE_DISTRICT", "Southern Ranges"),
		RatingsFile: getEnv("AFDRS_RATINGS_FILE", ""),

		ServiceAreas: getListEnv("SERVICE_AREAS", []string{
			"Queanbeyan-Palerang",
			"ACT",
		}),
		IncidentsShowAll: getBoolEnv("INCIDENTS_SHOW_ALL", false),
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable or returns a default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getListEnv gets a comma-separated environment variable or returns a default value
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
