package commands

import "flight-booking-system/model"

type Help struct{}

func (c *Help) Execute(env *Env) error {
	env.println(HelpMessage)
	return nil
}

// LoadGUI starts the dashboard.
type LoadGUI struct{}

func (c *LoadGUI) Execute(env *Env) error {
	if env.GUI == nil {
		return model.Errorf(model.ErrInvalidInput, "The dashboard is not available.")
	}
	if err := env.GUI.Launch(); err != nil {
		return err
	}
	env.println("Dashboard started.")
	return nil
}
