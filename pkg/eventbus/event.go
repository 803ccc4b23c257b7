package eventbus

// EventType identifies the kind of event being passed on the bus so that
// handlers can decide whether processing is required and how to interpret
// the payload.
type EventType string

// Event is delivered to every subscriber on the topics it was dispatched to.
type Event struct {
	EventType EventType
	Data      interface{}
}
