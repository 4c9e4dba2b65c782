package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"flight-booking-system/commands"
	"flight-booking-system/errors"
	"flight-booking-system/model"
)

type customerRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	views := []fiber.Map{}
	err := h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		for _, customer := range fbs.Customers() {
			view := customerView(customer)
			view["active_bookings"] = len(customer.ActiveBookings())
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": fmt.Sprintf("%d customer(s)", len(views)), "data": views})
}

func (h *Handler) GetCustomer(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}

	var view fiber.Map
	err = h.dispatcher.View(func(fbs *model.FlightBookingSystem) error {
		customer, err := fbs.CustomerByID(id)
		if err != nil {
			return err
		}
		view = customerView(customer)
		bookings := []fiber.Map{}
		for _, b := range customer.Bookings() {
			bookings = append(bookings, bookingView(b))
		}
		view["bookings"] = bookings
		return nil
	})
	if err != nil {
		return errors.RaiseSystemError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "customer found", "data": view})
}

func (h *Handler) CreateCustomer(c *fiber.Ctx) error {
	req := new(customerRequest)
	if err := h.parseBody(c, req); err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusCreated, &commands.AddCustomer{Name: req.Name, Phone: req.Phone, Email: req.Email})
}

func (h *Handler) DeleteCustomer(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}
	id, err := paramID(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	return h.run(c, fiber.StatusOK, &commands.DeleteCustomer{CustomerID: id})
}
