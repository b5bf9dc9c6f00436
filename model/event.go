package model

// Tuplet marks a duration as part of an irregular subdivision,
// e.g. {3, 2} for triplet swing.
type Tuplet struct {
	Actual int
	Normal int
}

// Event is one timed sound: a single pitch or a chord. Duration is in
// beats. Velocity is deliberately an int, not a uint8: generators may
// run it past 127 and only the renderers clamp.
type Event struct {
	Pitches  []Pitch
	Duration float64
	Velocity int
	Accent   bool
	Tuplet   *Tuplet
}

func (e Event) IsChord() bool {
	return len(e.Pitches) > 1
}
