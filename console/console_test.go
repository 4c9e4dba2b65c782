package console

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking-system/commands"
	"flight-booking-system/database"
	"flight-booking-system/model"
)

type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Prompt(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func TestParse(t *testing.T) {
	type Test struct {
		description string
		line        string
		answers     []string
		expected    commands.Command
		expectedErr string
	}

	tests := []Test{
		{"list flights", "listflights", nil, &commands.ListFlights{}, ""},
		{"list customers", "listcustomers", nil, &commands.ListCustomers{}, ""},
		{"list bookings", "listbookings", nil, &commands.ListBookings{}, ""},
		{"help", "help", nil, &commands.Help{}, ""},
		{"gui", "loadgui", nil, &commands.LoadGUI{}, ""},
		{"show flight", "showflight 3", nil, &commands.ShowFlight{FlightID: 3}, ""},
		{"show customer", "showcustomer 4", nil, &commands.ShowCustomer{CustomerID: 4}, ""},
		{"delete flight", "deleteflight 5", nil, &commands.DeleteFlight{FlightID: 5}, ""},
		{"delete customer", "deletecustomer 6", nil, &commands.DeleteCustomer{CustomerID: 6}, ""},
		{"inline booking", "addbooking 1 2", nil, &commands.AddBooking{CustomerID: 1, FlightID: 2}, ""},
		{"prompted booking", "addbooking", []string{"7", "8"}, &commands.AddBooking{CustomerID: 7, FlightID: 8}, ""},
		{"half prompted cancel", "cancelbooking 1", []string{"9"}, &commands.CancelBooking{CustomerID: 1, FlightID: 9}, ""},
		{"prompted edit", "editbooking", []string{"3", "4"}, &commands.EditBooking{BookingID: 3, NewFlightID: 4}, ""},
		{"add customer", "addcustomer", []string{"Ann", "123", "ann@mail"}, &commands.AddCustomer{Name: "Ann", Phone: "123", Email: "ann@mail"}, ""},
		{"add flight", "addflight", []string{"BA1", "London", "Paris", "2030-01-02", "50", "99.5"},
			&commands.AddFlight{FlightNumber: "BA1", Origin: "London", Destination: "Paris",
				DepartureDate: model.Date(2030, time.January, 2), NumberOfSeats: 50, Price: 99.5}, ""},
		{"bad id", "showflight one", nil, nil, "Invalid input. Please enter a valid number."},
		{"bad prompted id", "addbooking", []string{"x"}, nil, "Invalid input. Please enter a valid number."},
		{"bad seats", "addflight", []string{"BA1", "London", "Paris", "2030-01-02", "many", "1"}, nil, "Invalid input. Please enter a valid number."},
		{"bad date", "addflight", []string{"BA1", "London", "Paris", "tomorrow", "1", "1"}, nil, "Invalid date. Please use the YYYY-MM-DD format."},
		{"unknown", "fly", nil, nil, "Invalid command."},
		{"show without id", "showflight", nil, nil, "Invalid command."},
		{"list with argument", "listflights now", nil, nil, "Invalid command."},
	}

	for _, test := range tests {
		cmd, err := Parse(test.line, &scriptedPrompter{answers: test.answers})
		if test.expectedErr != "" {
			require.Errorf(t, err, test.description)
			assert.Equalf(t, test.expectedErr, err.Error(), test.description)
			continue
		}
		require.NoErrorf(t, err, test.description)
		assert.Equalf(t, test.expected, cmd, test.description)
	}
}

func TestParsePromptLabels(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"1", "2"}}
	_, err := Parse("editbooking", prompter)
	require.NoError(t, err)
	assert.Equal(t, []string{"Enter Booking ID: ", "Enter New Flight ID: "}, prompter.asked)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	clock := func() time.Time { return model.Date(2024, time.May, 1) }
	stores := database.NewStores(dir, clock, log.New(io.Discard, "", 0))
	fbs, err := database.Load(stores.Managers())
	require.NoError(t, err)
	dispatcher := commands.NewDispatcher(commands.Env{System: fbs, Stores: stores, Now: clock})

	in := strings.NewReader(strings.Join([]string{
		"addcustomer", "Ann", "123", "ann@mail",
		"addflight", "BA1", "London", "Paris", "2024-05-20", "2", "100",
		"addbooking 1 1",
		"showflight 9",
		"nonsense",
		"",
		"listcustomers",
		"exit",
		"help",
	}, "\n"))
	out := new(bytes.Buffer)

	require.NoError(t, Run(in, out, dispatcher))

	output := out.String()
	assert.Contains(t, output, "Flight Booking System")
	assert.Contains(t, output, "Customer #1 added.")
	assert.Contains(t, output, "Flight #1 added.")
	assert.Contains(t, output, "Booking was issued successfully to the customer.")
	assert.Contains(t, output, "Flight with ID 9 not found.")
	assert.Contains(t, output, "Invalid command.")
	assert.Contains(t, output, "1 customer(s)")
	assert.NotContains(t, output, "Commands:", "nothing runs after exit")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	dispatcher := commands.NewDispatcher(commands.Env{System: model.NewFlightBookingSystem()})

	out := new(bytes.Buffer)
	require.NoError(t, Run(strings.NewReader("help\naddbooking 1"), out, dispatcher))
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "Flight ID: ")
}
