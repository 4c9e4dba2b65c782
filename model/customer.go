package model

import "fmt"

type Customer struct {
	ID    int
	Name  string
	Phone string
	Email string

	bookings []*Booking
}

func NewCustomer(id int, name, phone, email string) *Customer {
	return &Customer{ID: id, Name: name, Phone: phone, Email: email}
}

// Bookings returns every booking of the customer in the order they were made,
// cancelled ones included.
func (c *Customer) Bookings() []*Booking {
	bookings := make([]*Booking, len(c.bookings))
	copy(bookings, c.bookings)
	return bookings
}

func (c *Customer) AddBooking(booking *Booking) {
	c.bookings = append(c.bookings, booking)
}

func (c *Customer) RemoveBooking(booking *Booking) {
	for i, b := range c.bookings {
		if b == booking {
			c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
			return
		}
	}
}

func (c *Customer) ActiveBookings() []*Booking {
	active := []*Booking{}
	for _, b := range c.bookings {
		if !b.Cancelled() {
			active = append(active, b)
		}
	}
	return active
}

// ActiveBookingForFlight returns the customer's non-cancelled booking on the
// flight, or nil.
func (c *Customer) ActiveBookingForFlight(flightID int) *Booking {
	for _, b := range c.bookings {
		if !b.Cancelled() && b.Flight != nil && b.Flight.ID == flightID {
			return b
		}
	}
	return nil
}

func (c *Customer) DetailsShort() string {
	return fmt.Sprintf("Customer #%d - %s - %s - %s", c.ID, c.Name, c.Phone, c.Email)
}
