package commands

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"flight-booking-system/database"
	"flight-booking-system/model"
)

type AddFlight struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureDate time.Time
	NumberOfSeats int
	Price         float64
}

func (c *AddFlight) validate(today time.Time) error {
	if strings.TrimSpace(c.FlightNumber) == "" || strings.TrimSpace(c.Origin) == "" || strings.TrimSpace(c.Destination) == "" {
		return model.Errorf(model.ErrInvalidInput, "Flight number, origin and destination are required.")
	}
	if containsSeparator(c.FlightNumber, c.Origin, c.Destination) {
		return model.Errorf(model.ErrInvalidInput, "Flight details cannot contain commas.")
	}
	if model.Today(c.DepartureDate).Before(today) {
		return model.Errorf(model.ErrInvalidInput, "Cannot add flight with a departure date in the past.")
	}
	if c.NumberOfSeats <= 0 {
		return model.Errorf(model.ErrInvalidInput, "Number of seats must be positive.")
	}
	if c.Price < 0 {
		return model.Errorf(model.ErrInvalidInput, "Price cannot be negative.")
	}
	return nil
}

func (c *AddFlight) Execute(env *Env) error {
	if err := c.validate(env.today()); err != nil {
		return err
	}

	flight := model.NewFlight(env.System.NextFlightID(),
		strings.TrimSpace(c.FlightNumber), strings.TrimSpace(c.Origin), strings.TrimSpace(c.Destination),
		c.DepartureDate, c.NumberOfSeats, c.Price)
	if err := env.System.AddFlight(flight); err != nil {
		return err
	}
	if err := env.Stores.Flights.AppendFlight(flight); err != nil {
		return err
	}
	env.printf("Flight #%d added.\n", flight.ID)
	return nil
}

type ShowFlight struct {
	FlightID int
}

func (c *ShowFlight) Execute(env *Env) error {
	flight, err := env.System.FlightByID(c.FlightID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "Flight with ID %d not found.", c.FlightID)
	}

	env.printf("Flight Number: %s\n", flight.FlightNumber)
	env.printf("Origin: %s\n", flight.Origin)
	env.printf("Destination: %s\n", flight.Destination)
	env.printf("Departure Date: %s\n", model.FormatDate(flight.DepartureDate))
	env.printf("Number of Seats: %d\n", flight.NumberOfSeats)
	env.printf("Seats Left: %d\n", flight.SeatsLeft())
	env.printf("Price: %.2f\n", flight.Price)

	passengers := flight.Passengers()
	if len(passengers) == 0 {
		env.println("No passengers booked for this flight.")
		return nil
	}
	env.println("Passengers:")
	for _, p := range passengers {
		env.printf("Name: %s\n", p.Name)
		env.printf("Phone Number: %s\n", p.Phone)
		env.println()
	}
	return nil
}

// ListFlights prints the flights file as it is on disk, keeping flights that
// depart after the wall clock date.
type ListFlights struct{}

func (c *ListFlights) Execute(env *Env) error {
	flights, err := env.Stores.Flights.ReadFlights()
	if err != nil {
		return err
	}

	today := env.today()
	count := 0
	for _, f := range flights {
		if f.HasNotDeparted(today) {
			env.println(f.DetailsShort())
			count++
		}
	}
	env.printf("%d flight(s)\n", count)
	return nil
}

type DeleteFlight struct {
	FlightID int
}

func (c *DeleteFlight) Execute(env *Env) error {
	removed, err := env.Stores.Flights.DeleteFlight(c.FlightID, env.System)
	if errors.Is(err, model.ErrStorage) {
		env.storageFailed(database.FLIGHTS_FILE, err)
	} else if err != nil {
		return err
	}
	if err := env.Stores.Bookings.StoreData(env.System); err != nil {
		env.storageFailed(database.BOOKINGS_FILE, err)
	}

	env.printf("Flight #%d deleted along with %d booking(s).\n", c.FlightID, len(removed))
	return nil
}

func containsSeparator(values ...string) bool {
	for _, v := range values {
		if strings.Contains(v, database.SEPARATOR) {
			return true
		}
	}
	return false
}
