package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-clinic/internal/logger"
)

// ServiceName is the name under which the clinic API reports its health,
// next to the overall "" entry.
const ServiceName = "clinic.ClinicAPI"

// Handler is the root gRPC transport handler. It exposes the standard
// grpc.health.v1 service; the serving status follows the database probe.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler that reports SERVING until told otherwise.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)

	return h
}

// Register attaches the health service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// SetServing updates the status reported for the server and for ServiceName.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown switches every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health service shutting down")
	h.health.Shutdown()
}
