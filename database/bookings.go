package database

import (
	"fmt"
	"log"
	"time"

	"flight-booking-system/model"
)

type BookingDataManager struct {
	Path   string
	Now    func() time.Time
	Logger *log.Logger
}

func (m *BookingDataManager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

// LoadData links every booking to its customer and flight. Lines referring
// to missing entities are skipped. Cancelled bookings do not take a seat.
func (m *BookingDataManager) LoadData(fbs *model.FlightBookingSystem) error {
	lines, err := readLines(m.Path)
	if err != nil {
		return err
	}

	maxBookingID := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		record, ok, err := ParseBooking(line)
		if err != nil {
			return model.WrapError(model.ErrInvalidInput, err, fmt.Sprintf("%s line %d", BOOKINGS_FILE, i+1))
		}
		if !ok {
			continue
		}

		customer, cerr := fbs.CustomerByID(record.CustomerID)
		flight, ferr := fbs.FlightByID(record.FlightID)
		if cerr != nil || ferr != nil {
			m.Logger.Printf("bookings: skipping booking %d on line %d, customer %d or flight %d is missing",
				record.ID, i+1, record.CustomerID, record.FlightID)
			continue
		}

		booking := model.NewBooking(record.ID, customer, flight, record.BookingDate, record.Price)
		if record.Cancelled {
			booking.MarkCancelled()
		}
		if err := fbs.AddBooking(booking); err != nil {
			return err
		}
		customer.AddBooking(booking)
		if !booking.Cancelled() {
			flight.AddPassenger(customer, m.now())
		}
		if record.ID > maxBookingID {
			maxBookingID = record.ID
		}
	}
	fbs.SetMaxBookingID(maxBookingID)
	return nil
}

// StoreData rewrites every booking grouped by customer.
func (m *BookingDataManager) StoreData(fbs *model.FlightBookingSystem) error {
	lines := []string{}
	for _, c := range fbs.Customers() {
		for _, b := range c.Bookings() {
			lines = append(lines, FormatBooking(b))
		}
	}
	return writeLines(m.Path, lines)
}

func (m *BookingDataManager) AppendBooking(b *model.Booking) error {
	return appendLine(m.Path, FormatBooking(b))
}
