package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics
	registry *prometheus.Registry

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Collectors are registered on registry;
// a nil registry gets a fresh one.
func NewHandler(services *service.Services, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newMetrics(registry),
		registry: registry,
		logger:   logger,
	}
}
