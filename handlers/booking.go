package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"flight-booking-system/commands"
	"flight-booking-system/errors"
	"flight-booking-system/model"
)

type bookingRequest struct {
	CustomerID int `json:"customer_id" validate:"required,gt=0"`
	FlightID   int `json:"flight_id" validate:"required,gt=0"`
}

type rebookRequest struct {
	FlightID int `json:"flight_id" validate:"required,gt=0"`
}

// GetBookings lists every booking; ?status=active or ?status=cancelled narrows it.
func (h *Handler) GetBookings(c *fiber.Ctx) error {
	status := c.Query("status")
	views := []fiber.Map{}
	err := h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		for _, b := range fbs.Bookings() {
			if (status == "active" && b.Cancelled()) || (status == "cancelled" && !b.Cancelled()) {
				continue
			}
			views = append(views, bookingView(b))
		}
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": fmt.Sprintf("%d booking(s)", len(views)), "data": views})
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	req := new(bookingRequest)
	if err := h.parseBody(c, req); err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusCreated, &commands.AddBooking{CustomerID: req.CustomerID, FlightID: req.FlightID})
}

// UpdateBooking moves a booking to another flight.
func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	req := new(rebookRequest)
	if err := h.parseBody(c, req); err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusOK, &commands.EditBooking{BookingID: id, NewFlightID: req.FlightID})
}

func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	req := new(bookingRequest)
	if err := h.parseBody(c, req); err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusOK, &commands.CancelBooking{CustomerID: req.CustomerID, FlightID: req.FlightID})
}
