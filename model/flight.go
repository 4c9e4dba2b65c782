package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const displayDateLayout = "02/01/2006"

type Flight struct {
	ID            int
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate time.Time
	NumberOfSeats int
	Price         float64

	passengers map[int]*Customer
}

func NewFlight(id int, flightNumber, origin, destination string, departureDate time.Time, numberOfSeats int, price float64) *Flight {
	return &Flight{
		ID:            id,
		FlightNumber:  flightNumber,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: Today(departureDate),
		NumberOfSeats: numberOfSeats,
		Price:         price,
		passengers:    map[int]*Customer{},
	}
}

// Passengers returns the booked customers ordered by id.
func (f *Flight) Passengers() []*Customer {
	ids := make([]int, 0, len(f.passengers))
	for id := range f.passengers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	passengers := make([]*Customer, 0, len(ids))
	for _, id := range ids {
		passengers = append(passengers, f.passengers[id])
	}
	return passengers
}

func (f *Flight) HasPassenger(customer *Customer) bool {
	_, ok := f.passengers[customer.ID]
	return ok
}

// AddPassenger silently ignores the customer when the flight is full or has
// departed before today.
func (f *Flight) AddPassenger(customer *Customer, today time.Time) {
	if f.BookedSeats() >= f.NumberOfSeats || f.DepartureDate.Before(Today(today)) {
		return
	}
	f.passengers[customer.ID] = customer
}

// RemovePassenger only removes a customer whose booking on this flight is
// still active.
func (f *Flight) RemovePassenger(customer *Customer) {
	if customer.ActiveBookingForFlight(f.ID) == nil {
		return
	}
	delete(f.passengers, customer.ID)
}

func (f *Flight) dropPassenger(customer *Customer) {
	delete(f.passengers, customer.ID)
}

// BookedSeats counts passengers holding a non-cancelled booking on the flight.
func (f *Flight) BookedSeats() int {
	booked := 0
	for _, p := range f.passengers {
		if p.ActiveBookingForFlight(f.ID) != nil {
			booked++
		}
	}
	return booked
}

func (f *Flight) SeatsLeft() int {
	return f.NumberOfSeats - f.BookedSeats()
}

func (f *Flight) IsFullyBooked() bool {
	return f.BookedSeats() >= f.NumberOfSeats
}

// HasNotDeparted reports whether departure is strictly after date.
func (f *Flight) HasNotDeparted(date time.Time) bool {
	return f.DepartureDate.After(Today(date))
}

// CalculatePrice applies the days-to-departure factor and the low seat
// surcharge. A fully booked flight keeps its base price.
func (f *Flight) CalculatePrice(currentDate time.Time) (float64, error) {
	if f.IsFullyBooked() {
		return f.Price, nil
	}

	daysLeft := DaysBetween(currentDate, f.DepartureDate)
	factor := 1.0
	switch {
	case daysLeft >= 6:
		factor = 1
	case daysLeft >= 1:
		factor = 2
	default:
		factor = 3
	}
	price := f.Price * factor

	seatsLeft := f.SeatsLeft()
	if seatsLeft <= 0 {
		return 0, Errorf(ErrNoSeatsAvailable, "No seats available on flight %s.", f.FlightNumber)
	}
	if seatsLeft <= 4 {
		price += float64(50 * (5 - seatsLeft))
	}
	return price, nil
}

func (f *Flight) DetailsShort() string {
	return fmt.Sprintf("Flight #%d - %s - %s to %s on %s - Price: $%.2f - Seats: %d",
		f.ID, f.FlightNumber, f.Origin, f.Destination,
		f.DepartureDate.Format(displayDateLayout), f.Price, f.NumberOfSeats)
}

func (f *Flight) DetailsLong() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Flight #%d\n", f.ID)
	fmt.Fprintf(&sb, "Flight Number: %s\n", f.FlightNumber)
	fmt.Fprintf(&sb, "Origin: %s\n", f.Origin)
	fmt.Fprintf(&sb, "Destination: %s\n", f.Destination)
	fmt.Fprintf(&sb, "Departure Date: %s\n", f.DepartureDate.Format(displayDateLayout))
	fmt.Fprintf(&sb, "Number of Seats: %d\n", f.NumberOfSeats)
	fmt.Fprintf(&sb, "Price: $%.2f\n", f.Price)
	sb.WriteString("Passengers:\n")
	for _, p := range f.Passengers() {
		sb.WriteString(p.Name + "\n")
	}
	return sb.String()
}
