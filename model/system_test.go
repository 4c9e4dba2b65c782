package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSystem(t *testing.T) *FlightBookingSystem {
	t.Helper()
	today := Date(2020, time.November, 1)
	fbs := NewFlightBookingSystem()

	require.NoError(t, fbs.AddFlight(NewFlight(1, "BA100", "London", "Paris", Date(2020, time.December, 1), 10, 100)))
	require.NoError(t, fbs.AddFlight(NewFlight(2, "BA200", "London", "Rome", Date(2020, time.December, 2), 10, 100)))
	require.NoError(t, fbs.AddFlight(NewFlight(3, "BA300", "London", "Oslo", Date(2020, time.October, 2), 10, 100)))
	require.NoError(t, fbs.AddCustomer(NewCustomer(1, "Ann", "1", "ann@mail")))
	require.NoError(t, fbs.AddCustomer(NewCustomer(2, "Bob", "2", "bob@mail")))

	for _, link := range [][3]int{{1, 1, 1}, {2, 1, 2}, {3, 2, 2}} {
		c, _ := fbs.CustomerByID(link[1])
		f, _ := fbs.FlightByID(link[2])
		b := book(t, link[0], c, f, today)
		require.NoError(t, fbs.AddBooking(b))
	}
	return fbs
}

func TestRegistryLookups(t *testing.T) {
	fbs := seededSystem(t)

	_, err := fbs.FlightByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "There is no flight with that ID.", err.Error())

	_, err = fbs.CustomerByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = fbs.BookingByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))

	b, err := fbs.BookingByCustomerAndFlight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, b.ID)

	_, err = fbs.BookingByCustomerAndFlight(2, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddFlightRejectsDuplicates(t *testing.T) {
	fbs := seededSystem(t)

	err := fbs.AddFlight(NewFlight(1, "XX1", "A", "B", Date(2021, time.January, 1), 5, 10))
	assert.True(t, errors.Is(err, ErrDuplicateID))

	err = fbs.AddFlight(NewFlight(9, "BA100", "A", "B", Date(2020, time.December, 1), 5, 10))
	assert.True(t, errors.Is(err, ErrDuplicateSchedule))

	err = fbs.AddFlight(NewFlight(9, "BA100", "A", "B", Date(2020, time.December, 8), 5, 10))
	assert.NoError(t, err)

	err = fbs.AddCustomer(NewCustomer(2, "Dup", "", ""))
	assert.True(t, errors.Is(err, ErrDuplicateID))

	err = fbs.AddBooking(NewBooking(1, &Customer{}, &Flight{}, Date(2020, time.November, 1), 1))
	assert.True(t, errors.Is(err, ErrDuplicateID))

	err = fbs.AddBooking(NewBooking(77, nil, &Flight{}, Date(2020, time.November, 1), 1))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFlightsFiltersBySystemDate(t *testing.T) {
	fbs := seededSystem(t)

	var ids []int
	for _, f := range fbs.Flights() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []int{1, 2}, ids)
	assert.Len(t, fbs.AllFlights(), 3)
}

func TestGenerateBookingID(t *testing.T) {
	fbs := NewFlightBookingSystem()
	fbs.SetMaxBookingID(10)
	fbs.SetMaxBookingID(4)

	assert.Equal(t, 11, fbs.GenerateBookingID())
	assert.Equal(t, 12, fbs.GenerateBookingID())
	assert.Equal(t, 1, fbs.NextFlightID())
	assert.Equal(t, 1, fbs.NextCustomerID())
}

func TestDeleteFlightCascades(t *testing.T) {
	fbs := seededSystem(t)

	removed, err := fbs.DeleteFlight(2)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	for _, id := range []int{2, 3} {
		_, err := fbs.BookingByID(id)
		assert.Truef(t, errors.Is(err, ErrNotFound), "booking %d should be gone", id)
	}
	_, err = fbs.FlightByID(2)
	assert.True(t, errors.Is(err, ErrNotFound))

	ann, _ := fbs.CustomerByID(1)
	assert.Len(t, ann.Bookings(), 1)
	assert.Len(t, fbs.BookingsByFlight(2), 0)

	_, err = fbs.DeleteFlight(2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteCustomerCascades(t *testing.T) {
	fbs := seededSystem(t)

	removed, err := fbs.DeleteCustomer(1)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	f1, _ := fbs.FlightByID(1)
	f2, _ := fbs.FlightByID(2)
	assert.Empty(t, f1.Passengers())
	assert.Len(t, f2.Passengers(), 1)
	assert.Len(t, fbs.Bookings(), 1)
	assert.Equal(t, 3, fbs.NextCustomerID())
}
