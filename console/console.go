package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"flight-booking-system/commands"
)

// Run reads commands from in until "exit" or end of input. Command errors are
// printed and the loop goes on.
func Run(in io.Reader, out io.Writer, dispatcher *commands.Dispatcher) error {
	scanner := bufio.NewScanner(in)
	prompter := &linePrompter{scanner: scanner, out: out}

	fmt.Fprintln(out, "Flight Booking System")
	fmt.Fprintln(out, "Enter 'help' to see a list of available commands.")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		cmd, err := Parse(line, prompter)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := dispatcher.Execute(cmd, out); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
