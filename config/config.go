package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config shapes one rendition of the composition. Zero values fall
// back to the canonical piece, so a partial YAML file is fine.
type Config struct {
	Title    string `yaml:"title,omitempty"`
	Composer string `yaml:"composer,omitempty"`

	// Root is the tonic (Sa), e.g. "D4".
	Root string `yaml:"root,omitempty"`

	// Seed drives the alaap and synthesis randomness. Same seed, same
	// piece.
	Seed int64 `yaml:"seed,omitempty"`

	BPM             float64 `yaml:"bpm,omitempty"`
	ModulationRatio float64 `yaml:"modulationRatio,omitempty"`

	// AlaapBeats is the nominal length of movement I.
	AlaapBeats float64 `yaml:"alaapBeats,omitempty"`

	// DrumCycles is how many keherwa bars fill the rock section.
	DrumCycles int `yaml:"drumCycles,omitempty"`
}

func Default() Config {
	return Config{
		Title:           "Sahar-e-Nau: Symphony of the Awakening",
		Composer:        "Faiz Fusion Project",
		Root:            "D4",
		Seed:            1,
		BPM:             72,
		ModulationRatio: 1.5,
		AlaapBeats:      32,
		DrumCycles:      16,
	}
}

// Load reads a YAML config and fills unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}

	var in Config
	if err := yaml.Unmarshal(data, &in); err != nil {
		return cfg, fmt.Errorf("could not parse config: %w", err)
	}

	return merged(cfg, in), nil
}

func merged(base, in Config) Config {
	if in.Title != "" {
		base.Title = in.Title
	}
	if in.Composer != "" {
		base.Composer = in.Composer
	}
	if in.Root != "" {
		base.Root = in.Root
	}
	if in.Seed != 0 {
		base.Seed = in.Seed
	}
	if in.BPM != 0 {
		base.BPM = in.BPM
	}
	if in.ModulationRatio != 0 {
		base.ModulationRatio = in.ModulationRatio
	}
	if in.AlaapBeats != 0 {
		base.AlaapBeats = in.AlaapBeats
	}
	if in.DrumCycles != 0 {
		base.DrumCycles = in.DrumCycles
	}
	return base
}
