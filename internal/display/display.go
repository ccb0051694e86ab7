// Package display holds the observers that render weather measurements.
//
// Constructors never register anything. The Register* factories construct a
// display, register it with a subject and return the registered handle.
package display

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/i474232898/weather-station/internal/weather"
)

// Display is a weather observer that renders every update it receives.
type Display interface {
	weather.Observer

	// ID identifies this display instance in logs.
	ID() uuid.UUID
	// Name is the display kind, e.g. "forecast".
	Name() string
	// Updates returns how many updates the display has rendered.
	Updates() int
	// Detach removes the display from the subject it was registered with.
	Detach() error
}

// handle carries the bookkeeping shared by all displays.
type handle struct {
	id      uuid.UUID
	name    string
	subject weather.Subject
	updates int
}

func newHandle(name string) handle {
	return handle{
		id:   uuid.New(),
		name: name,
	}
}

func (h *handle) ID() uuid.UUID {
	return h.id
}

func (h *handle) Name() string {
	return h.name
}

func (h *handle) Updates() int {
	return h.updates
}

func (h *handle) attach(s weather.Subject, self weather.Observer) {
	h.subject = s
	s.RegisterObserver(self)
}

func (h *handle) detach(self weather.Observer) error {
	if h.subject == nil {
		return fmt.Errorf("%s display %s was never attached: %w", h.name, h.id, weather.ErrObserverNotFound)
	}
	return h.subject.RemoveObserver(self)
}
