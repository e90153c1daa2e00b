package event

// Recorder is an event listener for tests; it keeps every event it was
// delivered.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{events: make([]Event, 0)}
}

// Handle is the Handler to subscribe with.
func (r *Recorder) Handle(ev Event) {
	r.events = append(r.events, ev)
}

func (r *Recorder) Events() []Event {
	return r.events
}

func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}
