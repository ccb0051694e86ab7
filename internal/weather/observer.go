package weather

import "errors"

var (
	// ErrObserverNotFound is returned when removing an observer that is not registered.
	ErrObserverNotFound = errors.New("observer not registered")

	// ErrObserverNotComparable is returned when removing an observer whose
	// dynamic value cannot be compared, such as a struct holding a slice.
	ErrObserverNotComparable = errors.New("observer is not comparable")
)

// Observer receives measurement updates pushed by a Subject. Only comparable
// observers (in practice, pointers) can be removed once registered.
type Observer interface {
	Update(temperature, humidity, pressure float64)
}

// Subject keeps an ordered set of observers and notifies them of state changes.
type Subject interface {
	// RegisterObserver appends o to the notification order. Registering the same
	// observer twice makes it receive every notification twice.
	RegisterObserver(o Observer)

	// RemoveObserver removes the first registration of o. It returns
	// ErrObserverNotFound if o is not registered and ErrObserverNotComparable
	// if o cannot be compared.
	RemoveObserver(o Observer) error

	// NotifyObservers pushes the current state to every observer in registration order.
	NotifyObservers()
}
