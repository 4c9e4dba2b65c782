package router

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"flight-booking-system/handlers"
	"flight-booking-system/metrics"
	"flight-booking-system/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, signKey string, logOutput io.Writer) {
	app.Use(metrics.Middleware())
	api := app.Group("/", logger.New(logger.Config{Output: logOutput}))
	api.Get("/metrics", metrics.Handler())

	//Login
	login := api.Group("/login")
	login.Post("/", h.Login)

	secured := api.Group("/api", middleware.Authorize(signKey))

	//Flights
	flights := secured.Group("/flights")
	flights.Get("/", h.GetFlights)
	flights.Get("/:id", h.GetFlight)
	flights.Get("/:id/passengers", h.GetPassengers)
	flights.Post("/", h.CreateFlight)
	flights.Delete("/:id", h.DeleteFlight)

	//Customers
	customers := secured.Group("/customers")
	customers.Get("/", h.GetCustomers)
	customers.Get("/:id", h.GetCustomer)
	customers.Post("/", h.CreateCustomer)
	customers.Delete("/:id", h.DeleteCustomer)

	//Bookings
	bookings := secured.Group("/bookings")
	bookings.Get("/", h.GetBookings)
	bookings.Post("/", h.CreateBooking)
	bookings.Patch("/cancel", h.CancelBooking)
	bookings.Put("/:id", h.UpdateBooking)
}
