package commands

import (
	"flight-booking-system/database"
	"flight-booking-system/metrics"
	"flight-booking-system/model"
)

type AddBooking struct {
	CustomerID int
	FlightID   int
}

func (c *AddBooking) Execute(env *Env) error {
	customer, err := env.System.CustomerByID(c.CustomerID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "Customer with ID %d not found.", c.CustomerID)
	}
	flight, err := env.System.FlightByID(c.FlightID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "Flight with ID %d not found.", c.FlightID)
	}

	today := env.today()
	if !flight.HasNotDeparted(today) {
		return model.Errorf(model.ErrDeparted, "Cannot book a flight that has already departed.")
	}
	if flight.BookedSeats() >= flight.NumberOfSeats {
		return model.Errorf(model.ErrFlightFull, "The flight is full. Booking cannot be made.")
	}
	if customer.ActiveBookingForFlight(flight.ID) != nil {
		return model.Errorf(model.ErrInvalidInput, "Customer already has a booking on this flight.")
	}

	price, err := flight.CalculatePrice(today)
	if err != nil {
		return err
	}

	booking := model.NewBooking(env.System.GenerateBookingID(), customer, flight, today, price)
	customer.AddBooking(booking)
	flight.AddPassenger(customer, today)
	if err := env.System.AddBooking(booking); err != nil {
		return err
	}
	metrics.IncBookingsCreated()
	metrics.ObserveBookingPrice(price)

	if err := env.Stores.Bookings.AppendBooking(booking); err != nil {
		return err
	}
	env.println("Booking was issued successfully to the customer.")
	env.printf("Booking ID: %d, Price: %.2f\n", booking.ID, booking.Price)
	return nil
}

type CancelBooking struct {
	CustomerID int
	FlightID   int
}

func (c *CancelBooking) Execute(env *Env) error {
	if _, err := env.System.CustomerByID(c.CustomerID); err != nil {
		return model.Errorf(model.ErrNotFound, "Customer not found for ID: %d", c.CustomerID)
	}
	if _, err := env.System.FlightByID(c.FlightID); err != nil {
		return model.Errorf(model.ErrNotFound, "Flight not found for ID: %d", c.FlightID)
	}
	booking, err := env.System.BookingByCustomerAndFlight(c.CustomerID, c.FlightID)
	if err != nil {
		return err
	}

	booking.Cancel()
	metrics.IncBookingsCancelled()

	// the cancellation stands even if the file cannot be rewritten
	if err := env.Stores.Bookings.StoreData(env.System); err != nil {
		env.storageFailed(database.BOOKINGS_FILE, err)
	}

	env.printf("Booking successfully cancelled for customer ID: %d and flight ID: %d\n", c.CustomerID, c.FlightID)
	env.printf("Cancellation fee: %.2f\n", booking.CancellationFee())
	return nil
}

type EditBooking struct {
	BookingID   int
	NewFlightID int
}

func (c *EditBooking) Execute(env *Env) error {
	booking, err := env.System.BookingByID(c.BookingID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "Booking not found for ID: %d", c.BookingID)
	}
	newFlight, err := env.System.FlightByID(c.NewFlightID)
	if err != nil {
		return model.Errorf(model.ErrNotFound, "New flight not found for ID: %d", c.NewFlightID)
	}
	if booking.Cancelled() {
		return model.Errorf(model.ErrCancelled, "Cannot update a cancelled booking.")
	}

	today := env.today()
	if !newFlight.HasNotDeparted(today) {
		return model.Errorf(model.ErrDeparted, "Cannot move a booking to a flight that has already departed.")
	}
	if newFlight != booking.Flight {
		if booking.Customer.ActiveBookingForFlight(newFlight.ID) != nil {
			return model.Errorf(model.ErrInvalidInput, "Customer already has a booking on this flight.")
		}
		if newFlight.BookedSeats() >= newFlight.NumberOfSeats {
			return model.Errorf(model.ErrFlightFull, "The new flight is full. Booking cannot be moved.")
		}
	}

	booking.MoveTo(newFlight, today)

	if err := env.Stores.Bookings.StoreData(env.System); err != nil {
		metrics.IncStorageError(database.BOOKINGS_FILE)
		return err
	}
	env.println("Booking successfully updated.")
	return nil
}

// ListBookings prints every booking held by the registry.
type ListBookings struct{}

func (c *ListBookings) Execute(env *Env) error {
	bookings := env.System.Bookings()
	for _, b := range bookings {
		env.printf("Booking #%d - %s - %s - %s - Price: %.2f - %s",
			b.ID, b.Customer.Name, b.Flight.FlightNumber, model.FormatDate(b.BookingDate), b.Price, b.Status())
		if b.Cancelled() {
			env.printf(" - Fee: %.2f", b.CancellationFee())
		}
		env.println()
	}
	env.printf("%d booking(s)\n", len(bookings))
	return nil
}
