package scale

import (
	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
)

// Progression is the "Dha conflict" harmony underneath the rock
// movement. IV and iv deliberately bring in G natural and Bb, both
// alien to Yaman.
var Progression = map[string][]model.Pitch{
	"I":  {pitch.MustParse("D3"), pitch.MustParse("F#3"), pitch.MustParse("A3")},
	"V":  {pitch.MustParse("A2"), pitch.MustParse("C#3"), pitch.MustParse("E3")},
	"IV": {pitch.MustParse("G2"), pitch.MustParse("B2"), pitch.MustParse("D3")},
	"iv": {pitch.MustParse("G2"), pitch.MustParse("Bb2"), pitch.MustParse("D3")},
}
