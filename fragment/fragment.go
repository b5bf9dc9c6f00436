package fragment

import (
	"math/rand"

	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
	"github.com/faizfusion/saharenau/scale"
)

// Weights favor the Vaadi (third, F#) and Samvaadi (seventh, C#).
// Indexed Sa Re Ga Ma# Pa Dha Ni.
var alaapWeights = []float64{0.1, 0.1, 0.3, 0.1, 0.1, 0.1, 0.2}

// Rubato duration pool for the alaap, in beats.
var alaapDurations = []float64{0.5, 1.0, 1.5, 2.0}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Alaap generates the free-form opening movement: a weighted random
// walk over the Yaman scale with rubato durations. The walk stops once
// the cursor reaches targetBeats; the last note may overshoot, nothing
// gets truncated.
func Alaap(rng *rand.Rand, root model.Pitch, targetBeats float64) model.Fragment {
	pitches := scale.Yaman(root)

	var frag model.Fragment
	var cursor float64
	for cursor < targetBeats {
		p := pitches[weightedIndex(rng, alaapWeights)]
		dur := alaapDurations[rng.Intn(len(alaapDurations))]
		frag = append(frag, model.PlacedEvent{
			Offset: cursor,
			Event: model.Event{
				Pitches:  []model.Pitch{p},
				Duration: dur,
				Velocity: 80,
			},
		})
		cursor += dur
	}
	return frag
}

// Drone is the shadow drone simulating tarab strings: tonic and fifth
// held long and soft under everything else.
func Drone() model.Fragment {
	const droneBeats = 100
	const pianissimo = 30
	return model.Fragment{
		{Offset: 0, Event: model.Event{
			Pitches:  []model.Pitch{pitch.MustParse("D3")},
			Duration: droneBeats,
			Velocity: pianissimo,
		}},
		{Offset: 0, Event: model.Event{
			Pitches:  []model.Pitch{pitch.MustParse("A3")},
			Duration: droneBeats,
			Velocity: pianissimo,
		}},
	}
}

// Fracture builds the second movement's dissonance texture: G natural
// (the revolution) ground against G# (the tradition), a semitone apart,
// swelling from piano toward forte. Velocity is not clamped here; see
// the renderers.
func Fracture() model.Fragment {
	const count = 16

	var frag model.Fragment
	var cursor float64
	for i := 0; i < count; i++ {
		frag = append(frag, model.PlacedEvent{
			Offset: cursor,
			Event: model.Event{
				Pitches: []model.Pitch{
					pitch.MustParse("G3"),
					pitch.MustParse("G#3"),
				},
				Duration: 2.0,
				Velocity: 60 + i*3,
				Accent:   true, // sul ponticello grit
			},
		})
		cursor += 2.0
	}
	return frag
}

// PowerChord voices root + perfect fifth at the given duration.
func PowerChord(root model.Pitch, duration float64, velocity int) model.Event {
	fifth, err := pitch.Transpose(root, "P5")
	if err != nil {
		panic(err.Error())
	}
	return model.Event{
		Pitches:  []model.Pitch{root, fifth},
		Duration: duration,
		Velocity: velocity,
	}
}

// Riff generates the rhythm guitar for the rock movement: four passes
// of a four-bar progression, one chord per bar. Bars 1-3 are power
// chords; bar 4 is the full G minor triad, the "hope chord", with its
// Bb signalling the wound.
func Riff() model.Fragment {
	const (
		repetitions = 4
		barBeats    = 4.0
		velocity    = 96
	)

	var frag model.Fragment
	var cursor float64
	for rep := 0; rep < repetitions; rep++ {
		for _, ev := range []model.Event{
			PowerChord(pitch.MustParse("D3"), barBeats, velocity),
			PowerChord(pitch.MustParse("A2"), barBeats, velocity),
			PowerChord(pitch.MustParse("G2"), barBeats, velocity),
			{Pitches: scale.Progression["iv"], Duration: barBeats, Velocity: velocity},
		} {
			frag = append(frag, model.PlacedEvent{Offset: cursor, Event: ev})
			cursor += barBeats
		}
	}
	return frag
}

// Synthesis generates the final movement's sitar line: the same Yaman
// pitches as the alaap but locked to the rock grid, straight eighths,
// uniform choice instead of weighted.
func Synthesis(rng *rand.Rand, root model.Pitch) model.Fragment {
	const (
		bars          = 8
		eighthsPerBar = 8
		eighth        = 0.5
	)

	pitches := scale.Yaman(root)

	var frag model.Fragment
	var cursor float64
	for i := 0; i < bars*eighthsPerBar; i++ {
		frag = append(frag, model.PlacedEvent{
			Offset: cursor,
			Event: model.Event{
				Pitches:  []model.Pitch{pitches[rng.Intn(len(pitches))]},
				Duration: eighth,
				Velocity: 88,
			},
		})
		cursor += eighth
	}
	return frag
}
