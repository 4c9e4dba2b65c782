package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// book wires an active booking the same way the booking command does.
func book(t *testing.T, id int, c *Customer, f *Flight, today time.Time) *Booking {
	t.Helper()
	b := NewBooking(id, c, f, today, f.Price)
	c.AddBooking(b)
	f.AddPassenger(c, today)
	require.True(t, f.HasPassenger(c))
	return b
}

func TestCalculatePrice(t *testing.T) {
	today := Date(2024, time.March, 1)

	type Test struct {
		description   string
		seats         int
		activeBooked  int
		departure     time.Time
		expectedPrice float64
	}

	tests := []Test{
		{"plenty of seats, far away", 100, 0, today.AddDate(0, 0, 30), 100},
		{"six days out keeps factor one", 100, 0, today.AddDate(0, 0, 6), 100},
		{"five days out doubles", 100, 0, today.AddDate(0, 0, 5), 200},
		{"one day out doubles", 100, 0, today.AddDate(0, 0, 1), 200},
		{"departing today triples", 100, 0, today, 300},
		{"four active of five, ten days out", 5, 4, today.AddDate(0, 0, 10), 300},
		{"three seats left", 5, 2, today.AddDate(0, 0, 10), 200},
		{"fully booked keeps base price", 2, 2, today.AddDate(0, 0, 1), 100},
	}

	for _, test := range tests {
		flight := NewFlight(1, "BA100", "London", "Paris", test.departure, test.seats, 100)
		for i := 0; i < test.activeBooked; i++ {
			book(t, i+1, NewCustomer(i+1, "Name", "0", "e@mail"), flight, today)
		}

		price, err := flight.CalculatePrice(today)
		require.NoErrorf(t, err, test.description)
		assert.Equalf(t, test.expectedPrice, price, test.description)
	}
}

func TestCalculatePriceGrowsTowardsDeparture(t *testing.T) {
	departure := Date(2024, time.March, 20)
	flight := NewFlight(1, "BA100", "London", "Paris", departure, 10, 80)

	previous := 0.0
	for day := departure.AddDate(0, 0, -15); !day.After(departure); day = day.AddDate(0, 0, 1) {
		price, err := flight.CalculatePrice(day)
		require.NoError(t, err)
		assert.GreaterOrEqualf(t, price, previous, "price dropped on %s", FormatDate(day))
		previous = price
	}
}

func TestCalculatePriceFullyBookedShortCircuits(t *testing.T) {
	// zero capacity counts as fully booked, so the seat check never fires
	flight := NewFlight(1, "BA100", "London", "Paris", Date(2024, time.March, 20), 0, 80)

	price, err := flight.CalculatePrice(Date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 80.0, price)
	assert.False(t, errors.Is(err, ErrNoSeatsAvailable))
}

func TestAddPassenger(t *testing.T) {
	today := Date(2024, time.March, 1)

	flight := NewFlight(1, "BA100", "London", "Paris", today.AddDate(0, 0, 3), 1, 50)
	first := NewCustomer(1, "Ann", "1", "ann@mail")
	second := NewCustomer(2, "Bob", "2", "bob@mail")

	book(t, 1, first, flight, today)
	second.AddBooking(NewBooking(2, second, flight, today, 50))
	flight.AddPassenger(second, today)
	assert.False(t, flight.HasPassenger(second), "full flight must ignore new passengers")

	flight.AddPassenger(first, today)
	assert.Len(t, flight.Passengers(), 1, "re-adding a passenger is idempotent")

	departed := NewFlight(2, "BA101", "London", "Rome", today.AddDate(0, 0, -1), 10, 50)
	departed.AddPassenger(first, today)
	assert.Empty(t, departed.Passengers())
}

func TestRemovePassengerKeepsCancelledPassenger(t *testing.T) {
	today := Date(2024, time.March, 1)
	flight := NewFlight(1, "BA100", "London", "Paris", today.AddDate(0, 0, 10), 5, 50)
	customer := NewCustomer(1, "Ann", "1", "ann@mail")

	booking := NewBooking(1, customer, flight, today, 50)
	customer.AddBooking(booking)
	flight.AddPassenger(customer, today)

	// flag first, then remove: the passenger stays because the booking no longer counts
	booking.MarkCancelled()
	flight.RemovePassenger(customer)
	assert.True(t, flight.HasPassenger(customer))
	assert.Equal(t, 0, flight.BookedSeats())
}

func TestHasNotDeparted(t *testing.T) {
	flight := NewFlight(1, "BA100", "London", "Paris", Date(2024, time.March, 10), 5, 50)

	assert.True(t, flight.HasNotDeparted(Date(2024, time.March, 9)))
	assert.False(t, flight.HasNotDeparted(Date(2024, time.March, 10)))
	assert.False(t, flight.HasNotDeparted(Date(2024, time.March, 11)))
}

func TestFlightDetails(t *testing.T) {
	flight := NewFlight(3, "LH7", "Berlin", "Oslo", Date(2024, time.December, 24), 12, 99.5)

	assert.Equal(t, "Flight #3 - LH7 - Berlin to Oslo on 24/12/2024 - Price: $99.50 - Seats: 12", flight.DetailsShort())
	assert.Contains(t, flight.DetailsLong(), "Departure Date: 24/12/2024")
}
