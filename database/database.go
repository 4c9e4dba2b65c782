package database

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flight-booking-system/model"
)

const FLIGHTS_FILE string = "flights.txt"
const CUSTOMERS_FILE string = "customers.txt"
const BOOKINGS_FILE string = "bookings.txt"

// DataManager moves one entity type between its text file and the registry.
type DataManager interface {
	LoadData(fbs *model.FlightBookingSystem) error
	StoreData(fbs *model.FlightBookingSystem) error
}

// Stores groups the data managers of one data directory.
type Stores struct {
	Flights   *FlightDataManager
	Customers *CustomerDataManager
	Bookings  *BookingDataManager
}

func NewStores(dir string, now func() time.Time, logger *log.Logger) Stores {
	if logger == nil {
		logger = log.Default()
	}
	return Stores{
		Flights:   &FlightDataManager{Path: filepath.Join(dir, FLIGHTS_FILE)},
		Customers: &CustomerDataManager{Path: filepath.Join(dir, CUSTOMERS_FILE)},
		Bookings:  &BookingDataManager{Path: filepath.Join(dir, BOOKINGS_FILE), Now: now, Logger: logger},
	}
}

// Managers lists the managers in load order: bookings refer to flights and customers.
func (s Stores) Managers() []DataManager {
	return []DataManager{s.Flights, s.Customers, s.Bookings}
}

// Load builds a registry from the given managers, in order.
func Load(managers []DataManager) (*model.FlightBookingSystem, error) {
	fbs := model.NewFlightBookingSystem()
	for _, manager := range managers {
		if err := manager.LoadData(fbs); err != nil {
			return nil, err
		}
	}
	return fbs, nil
}

// Store writes the registry through every manager and reports the first failure.
func Store(fbs *model.FlightBookingSystem, managers []DataManager) error {
	var first error
	for _, manager := range managers {
		if err := manager.StoreData(fbs); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// readLines returns the non-blank lines of path, creating an empty file when it is missing.
func readLines(path string) ([]string, error) {
	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, model.WrapError(model.ErrStorage, err, "Unable to create "+filepath.Base(path))
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return nil, model.WrapError(model.ErrStorage, err, "Unable to create "+filepath.Base(path))
		}
		return nil, nil
	} else if err != nil {
		return nil, model.WrapError(model.ErrStorage, err, "Unable to read "+filepath.Base(path))
	}

	lines := []string{}
	for _, line := range strings.Split(string(fileBytes), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return model.WrapError(model.ErrStorage, err, "Error writing to "+filepath.Base(path))
	}
	return nil
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return model.WrapError(model.ErrStorage, err, "Error writing to "+filepath.Base(path))
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return model.WrapError(model.ErrStorage, err, "Error writing to "+filepath.Base(path))
	}
	return nil
}
