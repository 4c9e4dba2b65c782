package commands

import (
	"fmt"
	"io"
	"log"
	"reflect"
	"strings"
	"sync"
	"time"

	"flight-booking-system/database"
	"flight-booking-system/metrics"
	"flight-booking-system/model"
)

const HelpMessage = "Commands:\n" +
	"\tlistflights                               print all flights\n" +
	"\tlistcustomers                             print all customers\n" +
	"\tlistbookings                              print all bookings\n" +
	"\taddflight                                 add a new flight\n" +
	"\taddcustomer                               add a new customer\n" +
	"\tshowflight [flight id]                    show flight details\n" +
	"\tshowcustomer [customer id]                show customer details\n" +
	"\taddbooking [customer id] [flight id]      add a new booking\n" +
	"\tcancelbooking [customer id] [flight id]   cancel a booking\n" +
	"\teditbooking [booking id] [flight id]      update a booking\n" +
	"\tdeleteflight [flight id]                  delete a flight and its bookings\n" +
	"\tdeletecustomer [customer id]              delete a customer and their bookings\n" +
	"\tloadgui                                   loads the GUI version of the app\n" +
	"\thelp                                      prints this help message\n" +
	"\texit                                      exits the program"

// GUILauncher starts the graphical front end.
type GUILauncher interface {
	Launch() error
}

// Env is everything a command may touch while it runs.
type Env struct {
	System *model.FlightBookingSystem
	Stores database.Stores
	Out    io.Writer
	Now    func() time.Time
	Logger *log.Logger
	GUI    GUILauncher
}

func (e *Env) today() time.Time {
	if e.Now == nil {
		return model.Today(time.Now())
	}
	return model.Today(e.Now())
}

func (e *Env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Env) println(args ...interface{}) {
	fmt.Fprintln(e.Out, args...)
}

// storageFailed records a write that could not be completed but is not
// reported to the user.
func (e *Env) storageFailed(file string, err error) {
	metrics.IncStorageError(file)
	e.Logger.Printf("storage: %v", err)
}

type Command interface {
	Execute(env *Env) error
}

// Dispatcher runs one command at a time against a shared registry.
type Dispatcher struct {
	mu  sync.Mutex
	env Env
}

func NewDispatcher(env Env) *Dispatcher {
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Out == nil {
		env.Out = io.Discard
	}
	return &Dispatcher{env: env}
}

// SetGUI installs the launcher used by LoadGUI.
func (d *Dispatcher) SetGUI(gui GUILauncher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.env.GUI = gui
}

// Execute runs cmd writing its output to out.
func (d *Dispatcher) Execute(cmd Command, out io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	env := d.env
	env.Out = out
	start := time.Now()
	err := cmd.Execute(&env)
	metrics.ObserveCommand(Name(cmd), err, time.Since(start))
	return err
}

// Today is the current date by the dispatcher's clock.
func (d *Dispatcher) Today() time.Time {
	return model.Today(d.env.Now())
}

// View gives fn exclusive read access to the registry.
func (d *Dispatcher) View(fn func(fbs *model.FlightBookingSystem) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.env.System)
}

// Store writes the whole registry through every data manager.
func (d *Dispatcher) Store() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return database.Store(d.env.System, d.env.Stores.Managers())
}

// Name is the console keyword of a command type.
func Name(cmd Command) string {
	t := reflect.TypeOf(cmd)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}
