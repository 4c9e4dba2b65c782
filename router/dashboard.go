package router

import (
	"log"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"

	"flight-booking-system/handlers"
	"flight-booking-system/model"
)

// Dashboard is the web front end started by the loadgui command.
type Dashboard struct {
	Addr   string
	App    *fiber.App
	logger *log.Logger

	mu      sync.Mutex
	running bool
}

func NewDashboard(addr string, h *handlers.Handler, signKey string, logger *log.Logger) *Dashboard {
	if logger == nil {
		logger = log.Default()
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	SetupRoutes(app, h, signKey, logger.Writer())
	return &Dashboard{Addr: addr, App: app, logger: logger}
}

// Launch binds the address and serves in the background. A failed bind
// leaves the dashboard stopped so it can be launched again.
func (d *Dashboard) Launch() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return model.Errorf(model.ErrInvalidInput, "The dashboard is already running.")
	}

	ln, err := net.Listen("tcp", d.Addr)
	if err != nil {
		return model.WrapError(model.ErrUnavailable, err, "Unable to start the dashboard")
	}
	d.running = true
	go func() {
		if err := d.App.Listener(ln); err != nil {
			d.logger.Printf("dashboard: %v", err)
		}
	}()
	d.logger.Printf("dashboard: listening on %s", ln.Addr())
	return nil
}

func (d *Dashboard) Shutdown() error {
	return d.App.Shutdown()
}
