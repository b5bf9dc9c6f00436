package scale

import (
	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
)

// Intervals from the tonic: Re, Ga, Ma#, Pa, Dha, Ni.
var yamanIntervals = []string{"M2", "M3", "A4", "P5", "M6", "M7"}

// TivraMaCents sharpens the augmented fourth for its characteristic
// yearning quality.
const TivraMaCents = 10

// Yaman returns the 7 pitches of Raag Yaman on the given tonic. The
// augmented fourth (Tivra Ma) comes back detuned +10 cents; every other
// degree is exact.
func Yaman(root model.Pitch) []model.Pitch {
	pitches := []model.Pitch{root}
	for _, name := range yamanIntervals {
		p, err := pitch.Transpose(root, name)
		if err != nil {
			panic("bad yaman interval table: " + err.Error())
		}
		if name == "A4" {
			p.Cents = TivraMaCents
		}
		pitches = append(pitches, p)
	}
	return pitches
}
