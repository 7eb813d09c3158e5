package controllers

// WithExit replaces the process exit of the advise controller for testing.
func (it *AdviseController) WithExit(exit func(code int)) *AdviseController {
	it.exit = exit
	return it
}

// WithExit replaces the process exit of the reason controller for testing.
func (it *ReasonController) WithExit(exit func(code int)) *ReasonController {
	it.exit = exit
	return it
}
