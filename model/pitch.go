package model

import "fmt"

// Pitch is a note name plus octave, with an optional detuning in cents.
// Cents is a bounded real offset, not a pitch class.
type Pitch struct {
	Step   string
	Octave int
	Cents  float64
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%v", p.Step, p.Octave)
}

// Name ignores the octave and detune, e.g. "F#".
func (p Pitch) Name() string {
	return p.Step
}
