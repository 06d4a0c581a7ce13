package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("default port = %q, want 3000", cfg.Port)
	}
	if cfg.District != "Southern Ranges" {
		t.Errorf("default district = %q", cfg.District)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("default allow-list is empty")
	}
	if len(cfg.ServiceAreas) != 2 {
		t.Errorf("default service areas = %v", cfg.ServiceAreas)
	}
	if cfg.IncidentsShowAll {
		t.Error("show-all must default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("SERVICE_AREAS", "Yass Valley")
	t.Setenv("INCIDENTS_SHOW_ALL", "true")
	t.Setenv("AZURE_CONTACT_WEBHOOK_URL", "https://hook.example.com/contact")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("port = %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("allowed origins = %v", cfg.AllowedOrigins)
	}
	if len(cfg.ServiceAreas) != 1 || cfg.ServiceAreas[0] != "Yass Valley" {
		t.Errorf("service areas = %v", cfg.ServiceAreas)
	}
	if !cfg.IncidentsShowAll {
		t.Error("show-all flag not applied")
	}
	if cfg.ContactWebhookURL != "https://hook.example.com/contact" {
		t.Errorf("contact webhook = %q", cfg.ContactWebhookURL)
	}
}

func TestGetBoolEnvInvalidValue(t *testing.T) {
	t.Setenv("INCIDENTS_SHOW_ALL", "banana")
	if Load().IncidentsShowAll {
		t.Error("invalid boolean should fall back to default")
	}
}
