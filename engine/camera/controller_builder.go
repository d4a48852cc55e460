package camera

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithZoomRate sets the fraction of the current radius removed per unit of scroll.
// Non-positive values are ignored.
//
// Parameters:
//   - rate: multiplicative zoom rate (default 0.002)
//
// Returns:
//   - ControllerOption: functional option to set the zoom rate
func WithZoomRate(rate float32) ControllerOption {
	return func(c *controllerImpl) {
		if rate > 0 {
			c.zoomRate = rate
		}
	}
}

// WithOrbitSensitivity scales orbit input. At 1.0 dragging across the full
// viewport width turns the camera one full revolution and the full height half a turn.
// Non-positive values are ignored.
//
// Parameters:
//   - sensitivity: orbit multiplier (default 1.0)
//
// Returns:
//   - ControllerOption: functional option to set orbit sensitivity
func WithOrbitSensitivity(sensitivity float32) ControllerOption {
	return func(c *controllerImpl) {
		if sensitivity > 0 {
			c.orbitSensitivity = sensitivity
		}
	}
}

// WithMinRadius raises the zoom floor above MinRadius. Lower values are ignored.
//
// Parameters:
//   - radius: minimum distance from the focus
//
// Returns:
//   - ControllerOption: functional option to set the zoom floor
func WithMinRadius(radius float32) ControllerOption {
	return func(c *controllerImpl) {
		c.minRadius = max(radius, MinRadius)
	}
}

// WithWorkers sets how many pooled goroutines update rigs when more than one
// camera is controlled. Zero or less updates every rig on the calling goroutine.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - ControllerOption: functional option to set the worker count
func WithWorkers(n int) ControllerOption {
	return func(c *controllerImpl) {
		c.workers = n
	}
}
