package model

import (
	"fmt"
	"strings"
	"time"
)

// CancellationRate is the share of the price kept when a booking is cancelled.
const CancellationRate = 0.1

type Booking struct {
	ID          int
	Customer    *Customer
	Flight      *Flight
	BookingDate time.Time
	Price       float64

	cancelled       bool
	cancellationFee float64
	rebookFee       float64
}

func NewBooking(id int, customer *Customer, flight *Flight, bookingDate time.Time, price float64) *Booking {
	return &Booking{
		ID:          id,
		Customer:    customer,
		Flight:      flight,
		BookingDate: Today(bookingDate),
		Price:       price,
	}
}

func (b *Booking) Cancelled() bool {
	return b.cancelled
}

func (b *Booking) CancellationFee() float64 {
	return b.cancellationFee
}

// RebookFee is carried for display only; nothing computes it yet.
func (b *Booking) RebookFee() float64 {
	return b.rebookFee
}

// Cancel frees the seat and charges the cancellation fee. Calling it again
// changes nothing.
func (b *Booking) Cancel() {
	if b.cancelled {
		return
	}
	// the passenger must go while the booking still counts as active
	b.Flight.RemovePassenger(b.Customer)
	b.cancelled = true
	b.cancellationFee = b.Price * CancellationRate
}

// MarkCancelled restores a cancelled booking read from storage. The seat is
// left untouched.
func (b *Booking) MarkCancelled() {
	b.cancelled = true
	b.cancellationFee = b.Price * CancellationRate
}

// MoveTo reassigns the booking to another flight.
func (b *Booking) MoveTo(flight *Flight, today time.Time) {
	b.Flight.RemovePassenger(b.Customer)
	b.Flight = flight
	flight.AddPassenger(b.Customer, today)
}

func (b *Booking) Status() string {
	if b.cancelled {
		return "Cancelled"
	}
	return "Active"
}

func (b *Booking) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking ID: %d\n", b.ID)
	fmt.Fprintf(&sb, "Customer: %s\n", b.Customer.Name)
	fmt.Fprintf(&sb, "Flight: %s\n", b.Flight.FlightNumber)
	fmt.Fprintf(&sb, "Booking Date: %s\n", FormatDate(b.BookingDate))
	fmt.Fprintf(&sb, "Price: %.2f\n", b.Price)
	fmt.Fprintf(&sb, "Status: %s\n", b.Status())
	if b.cancelled {
		fmt.Fprintf(&sb, "Cancellation Fee: %.2f\n", b.cancellationFee)
	}
	fmt.Fprintf(&sb, "Rebook Fee: %.2f\n", b.rebookFee)
	return sb.String()
}
