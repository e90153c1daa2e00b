package event

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler receives every event of the kind it subscribed to, in
// emission order.
type Handler func(Event)

// Emitter dispatches events to subscribed handlers and keeps the
// ordered append-only log of everything emitted.
type Emitter struct {
	handlers map[Kind][]Handler
	log      []Event
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[Kind][]Handler)}
}

// On subscribes a handler to one event kind. Handlers for a kind run
// in subscription order.
func (e *Emitter) On(kind Kind, handler Handler) {
	e.handlers[kind] = append(e.handlers[kind], handler)
}

// Emit appends the event to the log, then delivers it. The append
// happens first so the log is complete even if a handler panics.
func (e *Emitter) Emit(ev Event) {
	e.log = append(e.log, ev)
	for _, handler := range e.handlers[ev.Kind] {
		handler(ev)
	}
}

// Log returns a copy of the full event history.
func (e *Emitter) Log() []Event {
	log := make([]Event, len(e.log))
	copy(log, e.log)
	return log
}

func (e *Emitter) Len() int {
	return len(e.log)
}

// Stack returns the kinds of every logged event, in order.
func (e *Emitter) Stack() []Kind {
	kinds := make([]Kind, len(e.log))
	for i, ev := range e.log {
		kinds[i] = ev.Kind
	}
	return kinds
}

// MarshalLog encodes the full event history as JSON.
func (e *Emitter) MarshalLog() ([]byte, error) {
	return json.Marshal(e.log)
}
