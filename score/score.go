package score

import (
	"math/rand"

	"github.com/faizfusion/saharenau/config"
	"github.com/faizfusion/saharenau/fragment"
	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
	"github.com/faizfusion/saharenau/tabla"
	"github.com/faizfusion/saharenau/timeline"
)

// Zero-indexed General MIDI programs.
const (
	programSitar  = 104
	programCello  = 42
	programGuitar = 29 // overdriven
)

// Nominal movement lengths in beats. The section entry points are sums
// of these, NOT measurements of generated content: the alaap in
// particular may run past its nominal 32.
const (
	fractureNominal = 32.0
	riffNominal     = 64.0
)

// Build runs every generator and assembles the full score: five voices,
// the tempo map, metadata. The rand source is owned by the caller so
// two builds from the same seed are identical.
func Build(cfg config.Config, rng *rand.Rand) (model.Score, error) {
	root, err := pitch.Parse(cfg.Root)
	if err != nil {
		return model.Score{}, err
	}

	fractureStart := cfg.AlaapBeats
	riffStart := fractureStart + fractureNominal
	synthesisStart := riffStart + riffNominal

	// Movement I + IV share the sitar
	sitar := model.Timeline{Name: "Sitar", Program: programSitar}
	timeline.Place(&sitar, fragment.Alaap(rng, root, cfg.AlaapBeats), 0)
	timeline.Place(&sitar, fragment.Synthesis(rng, root), synthesisStart)

	drone := model.Timeline{Name: "Drone", Program: programSitar}
	timeline.Place(&drone, fragment.Drone(), 0)

	cello := model.Timeline{Name: "Cello", Program: programCello}
	timeline.Place(&cello, fragment.Fracture(), fractureStart)

	guitar := model.Timeline{Name: "Guitar", Program: programGuitar}
	timeline.Place(&guitar, fragment.Riff(), riffStart)

	drums := model.Timeline{Name: "Drums", Percussion: true}
	cycle := tabla.KeherwaCycle(92)
	timeline.Place(&drums, tabla.Repeat(cycle, cfg.DrumCycles), riffStart)

	return model.Score{
		Title:    cfg.Title,
		Composer: cfg.Composer,
		Voices:   []model.Timeline{sitar, drone, cello, guitar, drums},
		Tempos: []model.TempoMarker{
			{Offset: 0, BPM: cfg.BPM},
			// metric modulation where the rock section kicks in
			{Offset: riffStart, BPM: cfg.BPM * cfg.ModulationRatio},
		},
	}, nil
}
