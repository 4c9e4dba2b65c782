package model

import (
	"sort"
	"time"
)

// FlightBookingSystem is the in-memory registry. It owns every flight,
// customer and booking of a running instance.
type FlightBookingSystem struct {
	systemDate   time.Time
	flights      map[int]*Flight
	customers    map[int]*Customer
	bookings     map[int]*Booking
	maxBookingID int
}

func NewFlightBookingSystem() *FlightBookingSystem {
	return &FlightBookingSystem{
		systemDate: SystemDate,
		flights:    map[int]*Flight{},
		customers:  map[int]*Customer{},
		bookings:   map[int]*Booking{},
	}
}

func (fbs *FlightBookingSystem) SystemDate() time.Time {
	return fbs.systemDate
}

func (fbs *FlightBookingSystem) GenerateBookingID() int {
	fbs.maxBookingID++
	return fbs.maxBookingID
}

// SetMaxBookingID seeds the booking id counter. It never moves it backwards.
func (fbs *FlightBookingSystem) SetMaxBookingID(id int) {
	if id > fbs.maxBookingID {
		fbs.maxBookingID = id
	}
}

func (fbs *FlightBookingSystem) NextFlightID() int {
	return maxKey(fbs.flights) + 1
}

func (fbs *FlightBookingSystem) NextCustomerID() int {
	return maxKey(fbs.customers) + 1
}

// Flights returns flights departing on or after the system date.
func (fbs *FlightBookingSystem) Flights() []*Flight {
	flights := []*Flight{}
	for _, f := range fbs.AllFlights() {
		if !f.DepartureDate.Before(fbs.systemDate) {
			flights = append(flights, f)
		}
	}
	return flights
}

func (fbs *FlightBookingSystem) AllFlights() []*Flight {
	flights := make([]*Flight, 0, len(fbs.flights))
	for _, id := range sortedKeys(fbs.flights) {
		flights = append(flights, fbs.flights[id])
	}
	return flights
}

func (fbs *FlightBookingSystem) Customers() []*Customer {
	customers := make([]*Customer, 0, len(fbs.customers))
	for _, id := range sortedKeys(fbs.customers) {
		customers = append(customers, fbs.customers[id])
	}
	return customers
}

func (fbs *FlightBookingSystem) Bookings() []*Booking {
	bookings := make([]*Booking, 0, len(fbs.bookings))
	for _, id := range sortedKeys(fbs.bookings) {
		bookings = append(bookings, fbs.bookings[id])
	}
	return bookings
}

func (fbs *FlightBookingSystem) FlightByID(id int) (*Flight, error) {
	f, ok := fbs.flights[id]
	if !ok {
		return nil, Errorf(ErrNotFound, "There is no flight with that ID.")
	}
	return f, nil
}

func (fbs *FlightBookingSystem) CustomerByID(id int) (*Customer, error) {
	c, ok := fbs.customers[id]
	if !ok {
		return nil, Errorf(ErrNotFound, "There is no customer with that ID.")
	}
	return c, nil
}

func (fbs *FlightBookingSystem) BookingByID(id int) (*Booking, error) {
	b, ok := fbs.bookings[id]
	if !ok {
		return nil, Errorf(ErrNotFound, "There is no booking with that ID.")
	}
	return b, nil
}

func (fbs *FlightBookingSystem) AddFlight(flight *Flight) error {
	if _, ok := fbs.flights[flight.ID]; ok {
		return Errorf(ErrDuplicateID, "Duplicate flight ID.")
	}
	for _, existing := range fbs.flights {
		if existing.FlightNumber == flight.FlightNumber && existing.DepartureDate.Equal(flight.DepartureDate) {
			return Errorf(ErrDuplicateSchedule, "There is a flight with same number and departure date in the system")
		}
	}
	fbs.flights[flight.ID] = flight
	return nil
}

func (fbs *FlightBookingSystem) AddCustomer(customer *Customer) error {
	if _, ok := fbs.customers[customer.ID]; ok {
		return Errorf(ErrDuplicateID, "Duplicate customer ID.")
	}
	fbs.customers[customer.ID] = customer
	return nil
}

func (fbs *FlightBookingSystem) AddBooking(booking *Booking) error {
	if booking.Customer == nil || booking.Flight == nil {
		return Errorf(ErrInvalidInput, "Booking must reference a customer and a flight.")
	}
	if _, ok := fbs.bookings[booking.ID]; ok {
		return Errorf(ErrDuplicateID, "Duplicate booking ID.")
	}
	fbs.bookings[booking.ID] = booking
	fbs.SetMaxBookingID(booking.ID)
	return nil
}

// BookingsByFlight returns the registered bookings on a flight, cancelled ones included.
func (fbs *FlightBookingSystem) BookingsByFlight(flightID int) []*Booking {
	bookings := []*Booking{}
	for _, b := range fbs.Bookings() {
		if b.Flight.ID == flightID {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

// BookingByCustomerAndFlight finds the active booking linking the two.
func (fbs *FlightBookingSystem) BookingByCustomerAndFlight(customerID, flightID int) (*Booking, error) {
	customer, err := fbs.CustomerByID(customerID)
	if err != nil {
		return nil, err
	}
	if _, err := fbs.FlightByID(flightID); err != nil {
		return nil, err
	}
	booking := customer.ActiveBookingForFlight(flightID)
	if booking == nil {
		return nil, Errorf(ErrNotFound, "No booking found for customer ID: %d and flight ID: %d", customerID, flightID)
	}
	return booking, nil
}

// DeleteFlight removes the flight together with every booking on it and
// returns the removed bookings.
func (fbs *FlightBookingSystem) DeleteFlight(id int) ([]*Booking, error) {
	flight, err := fbs.FlightByID(id)
	if err != nil {
		return nil, err
	}

	removed := []*Booking{}
	for _, customer := range fbs.customers {
		for _, b := range customer.Bookings() {
			if b.Flight == flight {
				customer.RemoveBooking(b)
				delete(fbs.bookings, b.ID)
				removed = append(removed, b)
			}
		}
	}
	for bid, b := range fbs.bookings {
		if b.Flight == flight {
			delete(fbs.bookings, bid)
			removed = append(removed, b)
		}
	}
	delete(fbs.flights, id)
	sortBookings(removed)
	return removed, nil
}

// DeleteCustomer removes the customer, their bookings and their seats.
func (fbs *FlightBookingSystem) DeleteCustomer(id int) ([]*Booking, error) {
	customer, err := fbs.CustomerByID(id)
	if err != nil {
		return nil, err
	}

	removed := customer.Bookings()
	for _, b := range removed {
		delete(fbs.bookings, b.ID)
		customer.RemoveBooking(b)
	}
	for bid, b := range fbs.bookings {
		if b.Customer == customer {
			delete(fbs.bookings, bid)
			removed = append(removed, b)
		}
	}
	for _, f := range fbs.flights {
		f.dropPassenger(customer)
	}
	delete(fbs.customers, id)
	sortBookings(removed)
	return removed, nil
}

func sortBookings(bookings []*Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func maxKey[V any](m map[int]V) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}
