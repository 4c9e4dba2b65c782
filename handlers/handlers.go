package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"flight-booking-system/commands"
	"flight-booking-system/database"
	"flight-booking-system/errors"
	"flight-booking-system/middleware"
	"flight-booking-system/model"
)

// Handler serves the dashboard. Every change goes through the same commands
// the console uses.
type Handler struct {
	dispatcher *commands.Dispatcher
	users      database.UserStore
	signKey    []byte
	validate   *validator.Validate
}

func New(dispatcher *commands.Dispatcher, users database.UserStore, signKey string) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		users:      users,
		signKey:    []byte(signKey),
		validate:   validator.New(),
	}
}

// run executes cmd and answers with its console output as the message.
func (h *Handler) run(c *fiber.Ctx, status int, cmd commands.Command) error {
	out := new(bytes.Buffer)
	if err := h.dispatcher.Execute(cmd, out); err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": strings.TrimSpace(out.String()),
		"data":    nil})
}

// parseBody decodes and validates a request body into req.
func (h *Handler) parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("unacceptable parameters: %v", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("incorrect input: %v", err)
	}
	return nil
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive number")
	}
	return id, nil
}

func isAdminRole(c *fiber.Ctx) bool {
	token, ok := c.Locals(middleware.IDENTITY_KEY).(*jwt.Token)
	if !ok {
		return false
	}
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role == model.RoleAdmin
}

func flightView(f *model.Flight, withPassengers bool) fiber.Map {
	view := fiber.Map{
		"id":             f.ID,
		"flight_number":  f.FlightNumber,
		"origin":         f.Origin,
		"destination":    f.Destination,
		"departure_date": model.FormatDate(f.DepartureDate),
		"seats":          f.NumberOfSeats,
		"seats_left":     f.SeatsLeft(),
		"price":          f.Price,
		"fully_booked":   f.IsFullyBooked(),
	}
	if withPassengers {
		passengers := []fiber.Map{}
		for _, p := range f.Passengers() {
			passengers = append(passengers, customerView(p))
		}
		view["passengers"] = passengers
	}
	return view
}

func customerView(c *model.Customer) fiber.Map {
	return fiber.Map{
		"id":    c.ID,
		"name":  c.Name,
		"phone": c.Phone,
		"email": c.Email,
	}
}

func bookingView(b *model.Booking) fiber.Map {
	return fiber.Map{
		"id":               b.ID,
		"customer_id":      b.Customer.ID,
		"customer_name":    b.Customer.Name,
		"flight_id":        b.Flight.ID,
		"flight_number":    b.Flight.FlightNumber,
		"booking_date":     model.FormatDate(b.BookingDate),
		"price":            b.Price,
		"status":           b.Status(),
		"cancellation_fee": b.CancellationFee(),
		"rebook_fee":       b.RebookFee(),
	}
}
