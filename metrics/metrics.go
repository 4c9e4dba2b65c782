package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// Commands
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fbs_commands_total",
			Help: "Total number of executed commands by result.",
		},
		[]string{"command", "result"},
	)
	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fbs_command_duration_seconds",
			Help:    "Command execution time in seconds, file writes included.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// Business
	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fbs_bookings_created_total",
			Help: "Total number of bookings issued.",
		},
	)
	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fbs_bookings_cancelled_total",
			Help: "Total number of bookings cancelled.",
		},
	)
	bookingPrice = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fbs_booking_price",
			Help:    "Distribution of prices charged for new bookings.",
			Buckets: []float64{25, 50, 100, 150, 200, 300, 500, 750, 1000, 2000},
		},
	)
	storageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fbs_storage_errors_total",
			Help: "Total number of failed data file writes.",
		},
		[]string{"file"},
	)

	// HTTP
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fbs_http_requests_total",
			Help: "Total number of dashboard HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			commandsTotal,
			commandDuration,

			bookingsCreated,
			bookingsCancelled,
			bookingPrice,
			storageErrors,

			httpRequests,
		)
	})
}

// Handler serves the default registry on a fiber route.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}

// Middleware counts dashboard requests by route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		code := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
		}
		httpRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(code)).Inc()
		return err
	}
}

// --- Commands ---
func ObserveCommand(command string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	commandsTotal.WithLabelValues(command, result).Inc()
	commandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// --- Business ---
func IncBookingsCreated() {
	bookingsCreated.Inc()
}

func IncBookingsCancelled() {
	bookingsCancelled.Inc()
}

func ObserveBookingPrice(p float64) {
	bookingPrice.Observe(p)
}

func IncStorageError(file string) {
	storageErrors.WithLabelValues(file).Inc()
}
