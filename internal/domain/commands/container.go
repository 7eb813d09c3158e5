package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewAdviseCommand); err != nil {
		return err
	}
	if err := container.Provide(NewReasonCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *AdviseCommand) Advise {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ReasonCommand) Reason {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
