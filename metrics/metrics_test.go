package metrics

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCommand(t *testing.T) {
	Register()

	before := testutil.ToFloat64(commandsTotal.WithLabelValues("addbooking", "error"))
	ObserveCommand("addbooking", errors.New("full"), time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(commandsTotal.WithLabelValues("addbooking", "error")))

	created := testutil.ToFloat64(bookingsCreated)
	IncBookingsCreated()
	assert.Equal(t, created+1, testutil.ToFloat64(bookingsCreated))
}

func TestHandlerServesRegistry(t *testing.T) {
	Register()
	IncBookingsCancelled()

	app := fiber.New()
	app.Use(Middleware())
	app.Get("/metrics", Handler())

	served := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/metrics", "200"))
	req, _ := http.NewRequest("GET", "/metrics", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Contains(t, string(body), "fbs_bookings_cancelled_total")
	assert.Equal(t, served+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/metrics", "200")))
}
