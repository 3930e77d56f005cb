package adapters

// EventSource is an interface for loading events to replay through the component.
// Implement this interface to read events from queues, databases, etc.
type EventSource interface {
	// Load retrieves the events in the order they should be processed.
	//
	// Returns array of events or error.
	Load() ([]Event, error)
}
