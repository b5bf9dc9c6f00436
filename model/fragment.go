package model

// PlacedEvent pairs an Event with an offset. Inside a Fragment the
// offset is relative to the fragment's own start; inside a Timeline it
// is a global score offset.
type PlacedEvent struct {
	Offset float64
	Event  Event
}

// Fragment is one generated musical idea. Produced once, never mutated
// after return.
type Fragment []PlacedEvent

// End returns the offset at which the last event stops sounding.
func (f Fragment) End() float64 {
	var end float64
	for _, pe := range f {
		if stop := pe.Offset + pe.Event.Duration; stop > end {
			end = stop
		}
	}
	return end
}
