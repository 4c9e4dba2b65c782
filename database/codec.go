package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"flight-booking-system/model"
)

const SEPARATOR string = ","
const CANCELLED_MARK string = "cancelled"

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// parseID reads a record id, which must be a positive integer.
func parseID(field, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, errors.Errorf("unable to parse %s %s", name, field)
	}
	if id <= 0 {
		return 0, errors.Errorf("%s must be positive, got %d", name, id)
	}
	return id, nil
}

func FormatFlight(f *model.Flight) string {
	return strings.Join([]string{
		strconv.Itoa(f.ID),
		f.FlightNumber,
		f.Origin,
		f.Destination,
		model.FormatDate(f.DepartureDate),
		strconv.Itoa(f.NumberOfSeats),
		formatPrice(f.Price),
	}, SEPARATOR)
}

func ParseFlight(line string) (*model.Flight, error) {
	props := strings.Split(line, SEPARATOR)
	if len(props) != 7 {
		return nil, errors.Errorf("expected 7 fields, got %d", len(props))
	}

	id, err := parseID(props[0], "flight id")
	if err != nil {
		return nil, err
	}
	departure, err := model.ParseDate(props[4])
	if err != nil {
		return nil, errors.Errorf("unable to parse departure date %s", props[4])
	}
	seats, err := strconv.Atoi(strings.TrimSpace(props[5]))
	if err != nil {
		return nil, errors.Errorf("unable to parse number of seats %s", props[5])
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(props[6]), 64)
	if err != nil {
		return nil, errors.Errorf("unable to parse price %s", props[6])
	}

	return model.NewFlight(id, props[1], props[2], props[3], departure, seats, price), nil
}

// FormatCustomer renders a customer line. The full-file writer keeps a
// trailing separator, the appending writer does not.
func FormatCustomer(c *model.Customer, trailingSeparator bool) string {
	line := strings.Join([]string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email}, SEPARATOR)
	if trailingSeparator {
		line += SEPARATOR
	}
	return line
}

func ParseCustomer(line string) (*model.Customer, error) {
	props := strings.Split(line, SEPARATOR)
	// a fifth field may only be the empty one left by a trailing separator
	if len(props) < 4 || len(props) > 5 || (len(props) == 5 && props[4] != "") {
		return nil, errors.Errorf("expected 4 fields, got %d", len(props))
	}

	id, err := parseID(props[0], "customer id")
	if err != nil {
		return nil, err
	}
	return model.NewCustomer(id, props[1], props[2], props[3]), nil
}

func FormatBooking(b *model.Booking) string {
	line := strings.Join([]string{
		strconv.Itoa(b.ID),
		strconv.Itoa(b.Customer.ID),
		strconv.Itoa(b.Flight.ID),
		model.FormatDate(b.BookingDate),
		formatPrice(b.Price),
	}, SEPARATOR)
	if b.Cancelled() {
		line += SEPARATOR + CANCELLED_MARK
	}
	return line
}

// BookingRecord is a booking line before its references are resolved.
type BookingRecord struct {
	ID          int
	CustomerID  int
	FlightID    int
	BookingDate time.Time
	Price       float64
	Cancelled   bool
}

// ParseBooking reports ok=false for lines too short to hold a booking.
func ParseBooking(line string) (record BookingRecord, ok bool, err error) {
	props := strings.Split(line, SEPARATOR)
	if len(props) < 5 {
		return BookingRecord{}, false, nil
	}

	if record.ID, err = parseID(props[0], "booking id"); err != nil {
		return BookingRecord{}, false, err
	}
	if record.CustomerID, err = strconv.Atoi(strings.TrimSpace(props[1])); err != nil {
		return BookingRecord{}, false, errors.Errorf("unable to parse customer id %s", props[1])
	}
	if record.FlightID, err = strconv.Atoi(strings.TrimSpace(props[2])); err != nil {
		return BookingRecord{}, false, errors.Errorf("unable to parse flight id %s", props[2])
	}
	if record.BookingDate, err = model.ParseDate(props[3]); err != nil {
		return BookingRecord{}, false, errors.Errorf("unable to parse booking date %s", props[3])
	}
	if record.Price, err = strconv.ParseFloat(strings.TrimSpace(props[4]), 64); err != nil {
		return BookingRecord{}, false, errors.Errorf("unable to parse price %s", props[4])
	}
	record.Cancelled = len(props) > 5 && strings.TrimSpace(props[5]) == CANCELLED_MARK
	return record, true, nil
}
