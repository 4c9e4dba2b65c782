package commands

import (
	"strings"

	"github.com/pkg/errors"

	"flight-booking-system/database"
	"flight-booking-system/model"
)

type AddCustomer struct {
	Name  string
	Phone string
	Email string
}

func (c *AddCustomer) Execute(env *Env) error {
	if strings.TrimSpace(c.Name) == "" {
		return model.Errorf(model.ErrInvalidInput, "Customer name is required.")
	}
	if containsSeparator(c.Name, c.Phone, c.Email) {
		return model.Errorf(model.ErrInvalidInput, "Customer details cannot contain commas.")
	}

	customer := model.NewCustomer(env.System.NextCustomerID(),
		strings.TrimSpace(c.Name), strings.TrimSpace(c.Phone), strings.TrimSpace(c.Email))
	if err := env.System.AddCustomer(customer); err != nil {
		return err
	}
	if err := env.Stores.Customers.AppendCustomer(customer); err != nil {
		return err
	}
	env.printf("Customer #%d added.\n", customer.ID)
	return nil
}

type ShowCustomer struct {
	CustomerID int
}

func (c *ShowCustomer) Execute(env *Env) error {
	customer, err := env.System.CustomerByID(c.CustomerID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "Customer with ID %d not found.", c.CustomerID)
	}

	env.printf("Customer ID: %d\n", customer.ID)
	env.printf("Name: %s\n", customer.Name)
	env.printf("Phone: %s\n", customer.Phone)
	env.printf("Email: %s\n", customer.Email)

	bookings := customer.ActiveBookings()
	if len(bookings) == 0 {
		env.println("This customer has not made any bookings.")
		return nil
	}
	env.println("Bookings:")
	for _, b := range bookings {
		env.printf("Booking ID: %d\n", b.ID)
		env.printf("Flight Number: %s\n", b.Flight.FlightNumber)
		env.printf("Origin: %s\n", b.Flight.Origin)
		env.printf("Destination: %s\n", b.Flight.Destination)
		env.printf("Date: %s\n", model.FormatDate(b.Flight.DepartureDate))
		env.printf("Price: %.2f\n", b.Price)
		env.println()
	}
	return nil
}

// ListCustomers prints the customers file as it is on disk.
type ListCustomers struct{}

func (c *ListCustomers) Execute(env *Env) error {
	customers, err := env.Stores.Customers.ReadCustomers()
	if err != nil {
		return err
	}
	for _, customer := range customers {
		env.println(customer.DetailsShort())
	}
	env.printf("%d customer(s)\n", len(customers))
	return nil
}

type DeleteCustomer struct {
	CustomerID int
}

func (c *DeleteCustomer) Execute(env *Env) error {
	removed, err := env.Stores.Customers.DeleteCustomer(c.CustomerID, env.System)
	if errors.Is(err, model.ErrStorage) {
		env.storageFailed(database.CUSTOMERS_FILE, err)
	} else if err != nil {
		return err
	}
	if err := env.Stores.Bookings.StoreData(env.System); err != nil {
		env.storageFailed(database.BOOKINGS_FILE, err)
	}

	env.printf("Customer #%d deleted along with %d booking(s).\n", c.CustomerID, len(removed))
	return nil
}
