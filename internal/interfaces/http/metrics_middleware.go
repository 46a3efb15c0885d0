package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "api_requests_total",
			Help:      "Total de peticiones HTTP por método, ruta y status",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fieldops",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	realtimeEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "realtime_events_total",
			Help:      "Eventos publicados al canal realtime",
		},
		[]string{"type"},
	)
)

// MetricsMiddleware cuenta y cronometra cada petición. Usa c.Route().Path
// (la plantilla con :id) para no explotar la cardinalidad de labels.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		requestCounter.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone GET /metrics en formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// InstrumentedPublisher decora un JobEventPublisher contando cada evento emitido.
type InstrumentedPublisher struct {
	inner ports.JobEventPublisher
}

// NewInstrumentedPublisher construye el decorador.
func NewInstrumentedPublisher(inner ports.JobEventPublisher) *InstrumentedPublisher {
	return &InstrumentedPublisher{inner: inner}
}

// PublishJobUpdate cuenta el evento y delega en el publisher real.
func (p *InstrumentedPublisher) PublishJobUpdate(tenantID string, job *dto.JobResponse) {
	realtimeEvents.WithLabelValues("job_update").Inc()
	p.inner.PublishJobUpdate(tenantID, job)
}
