package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"flight-booking-system/commands"
	"flight-booking-system/errors"
	"flight-booking-system/model"
)

type flightRequest struct {
	FlightNumber  string  `json:"flight_number" validate:"required"`
	Origin        string  `json:"origin" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	DepartureDate string  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	NumberOfSeats int     `json:"seats" validate:"gt=0"`
	Price         float64 `json:"price" validate:"gte=0"`
}

// GetFlights lists current flights; ?all=true includes departed ones.
// "departed" is judged against today's date.
func (h *Handler) GetFlights(c *fiber.Ctx) error {
	today := h.dispatcher.Today()
	views := []fiber.Map{}
	err := h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		flights := fbs.Flights()
		if c.Query("all") == "true" {
			flights = fbs.AllFlights()
		}
		for _, f := range flights {
			view := flightView(f, false)
			view["departed"] = !f.HasNotDeparted(today)
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": fmt.Sprintf("%d flight(s)", len(views)), "data": views})
}

func (h *Handler) GetFlight(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}

	var view fiber.Map
	err = h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		f, err := fbs.FlightByID(id)
		if err != nil {
			return err
		}
		view = flightView(f, true)
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "flight found", "data": view})
}

// GetPassengers lists the passengers of a flight with their booking.
func (h *Handler) GetPassengers(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}

	passengers := []fiber.Map{}
	err = h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		f, err := fbs.FlightByID(id)
		if err != nil {
			return err
		}
		for _, p := range f.Passengers() {
			view := customerView(p)
			if b := p.ActiveBookingForFlight(f.ID); b != nil {
				view["booking_id"] = b.ID
				view["price"] = b.Price
			}
			passengers = append(passengers, view)
		}
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": fmt.Sprintf("%d passenger(s)", len(passengers)), "data": passengers})
}

func (h *Handler) CreateFlight(c *fiber.Ctx) error {
	req := new(flightRequest)
	if err := h.parseBody(c, req); err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	departure, err := model.ParseDate(req.DepartureDate)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect departure date: %v", err))
	}

	return h.run(c, fiber.StatusCreated, &commands.AddFlight{
		FlightNumber:  strings.TrimSpace(req.FlightNumber),
		Origin:        strings.TrimSpace(req.Origin),
		Destination:   strings.TrimSpace(req.Destination),
		DepartureDate: departure,
		NumberOfSeats: req.NumberOfSeats,
		Price:         req.Price,
	})
}

func (h *Handler) DeleteFlight(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusOK, &commands.DeleteFlight{FlightID: id})
}
