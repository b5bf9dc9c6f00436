package tabla

import (
	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
)

// StrokeMap resolves tabla bols to General MIDI drum keys. Combo bols
// (Dha, Dhin) strike two sounds at once and render as chords.
var StrokeMap = map[string][]int{
	"Ge":   {36},     // resonant bass (kick)
	"Na":   {37},     // sharp rim (side stick)
	"Tin":  {45},     // soft resonant (low tom)
	"Dha":  {36, 37}, // bass + rim
	"Dhin": {36, 45}, // bass + soft
	"Ka":   {44},     // flat slap (pedal hi-hat)
	"Ke":   {44},
}

// swing subdivision: each beat splits 2/3 + 1/3 under a 3:2 tuplet
const (
	longBeat  = 2.0 / 3.0
	shortBeat = 1.0 / 3.0
)

type stroke struct {
	bol string
	dur float64
}

// One keherwa theka bar: Dha Ge | Na Tin | Na Ka | Dhin Na.
var keherwaPattern = []stroke{
	{"Dha", longBeat}, {"Ge", shortBeat},
	{"Na", longBeat}, {"Tin", shortBeat},
	{"Na", longBeat}, {"Ka", shortBeat},
	{"Dhin", longBeat}, {"Na", shortBeat},
}

// KeherwaCycle builds one 4-beat bar of keherwa theka with the swung
// triplet feel. Every event carries the 3:2 grouping marker.
func KeherwaCycle(velocity int) model.Fragment {
	var frag model.Fragment
	var cursor float64
	for _, s := range keherwaPattern {
		keys := StrokeMap[s.bol]
		var pitches []model.Pitch
		for _, k := range keys {
			pitches = append(pitches, pitch.FromMIDI(k))
		}
		frag = append(frag, model.PlacedEvent{
			Offset: cursor,
			Event: model.Event{
				Pitches:  pitches,
				Duration: s.dur,
				Velocity: velocity,
				Tuplet:   &model.Tuplet{Actual: 3, Normal: 2},
			},
		})
		cursor += s.dur
	}
	return frag
}

// Repeat lays count copies of the cycle end to end, each shifted by the
// nominal cycle length of 4 beats. Copies are exact duplicates.
func Repeat(cycle model.Fragment, count int) model.Fragment {
	var frag model.Fragment
	for i := 0; i < count; i++ {
		shift := float64(i) * 4.0
		for _, pe := range cycle {
			pe.Offset += shift
			frag = append(frag, pe)
		}
	}
	return frag
}
