package database

import (
	"fmt"

	"flight-booking-system/model"
)

type CustomerDataManager struct {
	Path string
}

func (m *CustomerDataManager) LoadData(fbs *model.FlightBookingSystem) error {
	customers, err := m.ReadCustomers()
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := fbs.AddCustomer(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *CustomerDataManager) StoreData(fbs *model.FlightBookingSystem) error {
	lines := []string{}
	for _, c := range fbs.Customers() {
		lines = append(lines, FormatCustomer(c, true))
	}
	return writeLines(m.Path, lines)
}

func (m *CustomerDataManager) AppendCustomer(c *model.Customer) error {
	return appendLine(m.Path, FormatCustomer(c, false))
}

func (m *CustomerDataManager) ReadCustomers() ([]*model.Customer, error) {
	lines, err := readLines(m.Path)
	if err != nil {
		return nil, err
	}

	customers := []*model.Customer{}
	for i, line := range lines {
		if line == "" {
			continue
		}
		c, err := ParseCustomer(line)
		if err != nil {
			return nil, model.WrapError(model.ErrInvalidInput, err, fmt.Sprintf("%s line %d", CUSTOMERS_FILE, i+1))
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (m *CustomerDataManager) DeleteCustomer(id int, fbs *model.FlightBookingSystem) ([]*model.Booking, error) {
	removed, err := fbs.DeleteCustomer(id)
	if err != nil {
		return nil, err
	}
	return removed, m.StoreData(fbs)
}
