package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brigade-service/config"
	"brigade-service/handlers"
	"brigade-service/middleware"
	"brigade-service/upstream"
	"brigade-service/version"
)

const (
	EndPointHealth         = "/health"
	EndPointVersion        = "/version"
	EndPointMetrics        = "/metrics"
	EndPointMapboxToken    = "/mapbox-token"
	EndPointContact        = "/api/contact"
	EndPointCalendarEvents = "/api/calendar-events"
	EndPointFireIncidents  = "/api/fire-incidents"
	EndPointFireDanger     = "/api/fire-danger"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	log.Info("Starting the brigade service...")

	// Initialize handlers
	gatewayHandler := handlers.NewGatewayHandler(cfg, upstream.NewClient())

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET(EndPointVersion, func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get("brigade-service"))
	})

	router.GET(EndPointHealth, gatewayHandler.HealthCheck)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))

	// Gateway endpoints
	router.GET(EndPointMapboxToken, gatewayHandler.MapboxToken)
	router.POST(EndPointContact, gatewayHandler.SubmitContact)
	router.GET(EndPointCalendarEvents, gatewayHandler.CalendarEvents)
	router.GET(EndPointFireIncidents, gatewayHandler.FireIncidents)
	router.GET(EndPointFireDanger, gatewayHandler.FireDanger)

	// Serve the site's static assets for every other path
	staticDir := cfg.StaticDir
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		c.File(path)
	})

	// Get server port from config
	serverPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("Invalid PORT configuration: %v", err)
	}

	// Start server
	log.Infof("Brigade service starting on port %d", serverPort)
	if err := router.Run(fmt.Sprintf(":%d", serverPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
