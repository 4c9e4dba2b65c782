package database

import (
	"fmt"

	"flight-booking-system/model"
)

type FlightDataManager struct {
	Path string
}

func (m *FlightDataManager) LoadData(fbs *model.FlightBookingSystem) error {
	flights, err := m.ReadFlights()
	if err != nil {
		return err
	}
	for _, f := range flights {
		if err := fbs.AddFlight(f); err != nil {
			return err
		}
	}
	return nil
}

// StoreData rewrites the file with every flight in the registry, departed ones included.
func (m *FlightDataManager) StoreData(fbs *model.FlightBookingSystem) error {
	lines := []string{}
	for _, f := range fbs.AllFlights() {
		lines = append(lines, FormatFlight(f))
	}
	return writeLines(m.Path, lines)
}

func (m *FlightDataManager) AppendFlight(f *model.Flight) error {
	return appendLine(m.Path, FormatFlight(f))
}

// ReadFlights parses the file as it is on disk, independent of any registry.
func (m *FlightDataManager) ReadFlights() ([]*model.Flight, error) {
	lines, err := readLines(m.Path)
	if err != nil {
		return nil, err
	}

	flights := []*model.Flight{}
	for i, line := range lines {
		if line == "" {
			continue
		}
		f, err := ParseFlight(line)
		if err != nil {
			return nil, model.WrapError(model.ErrInvalidInput, err, fmt.Sprintf("%s line %d", FLIGHTS_FILE, i+1))
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// DeleteFlight removes the flight and its bookings from the registry, then
// rewrites the flights file. The removed bookings are returned even when the
// write fails.
func (m *FlightDataManager) DeleteFlight(id int, fbs *model.FlightBookingSystem) ([]*model.Booking, error) {
	removed, err := fbs.DeleteFlight(id)
	if err != nil {
		return nil, err
	}
	return removed, m.StoreData(fbs)
}
