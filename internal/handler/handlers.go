package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/handler/grpc"
	"github.com/MKhiriev/go-clinic/internal/handler/http"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
)

// Handlers groups the transport handlers. GRPC is nil when no gRPC address
// is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, registry, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers
}
