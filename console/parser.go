package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"flight-booking-system/commands"
	"flight-booking-system/model"
)

var errInvalidCommand = model.Errorf(model.ErrInvalidInput, "Invalid command.")
var errInvalidNumber = model.Errorf(model.ErrInvalidInput, "Invalid input. Please enter a valid number.")

// Prompter asks the user for a value that was not given on the command line.
type Prompter interface {
	Prompt(label string) (string, error)
}

type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *linePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Parse turns one console line into a command, prompting for missing values.
func Parse(line string, prompter Prompter) (commands.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errInvalidCommand
	}
	keyword, args := fields[0], fields[1:]

	switch keyword {
	case "addflight":
		return parseAddFlight(prompter)
	case "addcustomer":
		return parseAddCustomer(prompter)
	case "addbooking", "cancelbooking", "editbooking":
		return parseBookingCommand(keyword, args, prompter)
	}

	if len(args) == 0 {
		switch keyword {
		case "listflights":
			return &commands.ListFlights{}, nil
		case "listcustomers":
			return &commands.ListCustomers{}, nil
		case "listbookings":
			return &commands.ListBookings{}, nil
		case "loadgui":
			return &commands.LoadGUI{}, nil
		case "help":
			return &commands.Help{}, nil
		}
	} else if len(args) == 1 {
		switch keyword {
		case "showflight", "showcustomer", "deleteflight", "deletecustomer":
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return idCommand(keyword, id), nil
		}
	}
	return nil, errInvalidCommand
}

func idCommand(keyword string, id int) commands.Command {
	switch keyword {
	case "showflight":
		return &commands.ShowFlight{FlightID: id}
	case "showcustomer":
		return &commands.ShowCustomer{CustomerID: id}
	case "deleteflight":
		return &commands.DeleteFlight{FlightID: id}
	default:
		return &commands.DeleteCustomer{CustomerID: id}
	}
}

func parseBookingCommand(keyword string, args []string, prompter Prompter) (commands.Command, error) {
	if len(args) > 2 {
		return nil, errInvalidCommand
	}

	labels := [2]string{"Customer ID: ", "Flight ID: "}
	if keyword == "editbooking" {
		labels = [2]string{"Enter Booking ID: ", "Enter New Flight ID: "}
	}

	var ids [2]int
	for i, label := range labels {
		raw := ""
		if i < len(args) {
			raw = args[i]
		} else {
			answer, err := prompter.Prompt(label)
			if err != nil {
				return nil, err
			}
			raw = answer
		}
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	switch keyword {
	case "addbooking":
		return &commands.AddBooking{CustomerID: ids[0], FlightID: ids[1]}, nil
	case "cancelbooking":
		return &commands.CancelBooking{CustomerID: ids[0], FlightID: ids[1]}, nil
	default:
		return &commands.EditBooking{BookingID: ids[0], NewFlightID: ids[1]}, nil
	}
}

func parseAddFlight(prompter Prompter) (commands.Command, error) {
	answers, err := promptAll(prompter,
		"Flight Number: ",
		"Origin: ",
		"Destination: ",
		"Departure Date (\"YYYY-MM-DD\" format): ",
		"Number of Seats: ",
		"Price: ")
	if err != nil {
		return nil, err
	}

	departure, err := model.ParseDate(answers[3])
	if err != nil {
		return nil, model.Errorf(model.ErrInvalidInput, "Invalid date. Please use the YYYY-MM-DD format.")
	}
	seats, err := strconv.Atoi(answers[4])
	if err != nil {
		return nil, errInvalidNumber
	}
	price, err := strconv.ParseFloat(answers[5], 64)
	if err != nil {
		return nil, errInvalidNumber
	}

	return &commands.AddFlight{
		FlightNumber:  answers[0],
		Origin:        answers[1],
		Destination:   answers[2],
		DepartureDate: departure,
		NumberOfSeats: seats,
		Price:         price,
	}, nil
}

func parseAddCustomer(prompter Prompter) (commands.Command, error) {
	answers, err := promptAll(prompter, "Customer Name: ", "Customer Phone: ", "Customer Email: ")
	if err != nil {
		return nil, err
	}
	return &commands.AddCustomer{Name: answers[0], Phone: answers[1], Email: answers[2]}, nil
}

func promptAll(prompter Prompter, labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := prompter.Prompt(label)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errInvalidNumber
	}
	return id, nil
}
