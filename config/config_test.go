package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	assert.Equal("D4", cfg.Root)
	assert.Equal(72.0, cfg.BPM)
	assert.Equal(1.5, cfg.ModulationRatio)
	assert.Equal(32.0, cfg.AlaapBeats)
	assert.Equal(16, cfg.DrumCycles)
	assert.NotEmpty(cfg.Title)
	assert.NotEmpty(cfg.Composer)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "piece.yml")
	err := os.WriteFile(path, []byte("root: C4\nseed: 99\n"), 0666)
	assert.Nil(err)

	cfg, err := Load(path)
	assert.Nil(err)
	assert.Equal("C4", cfg.Root)
	assert.Equal(int64(99), cfg.Seed)

	// untouched fields fall back
	assert.Equal(72.0, cfg.BPM)
	assert.Equal(16, cfg.DrumCycles)
	assert.Equal(Default().Title, cfg.Title)
}

func TestLoadFullYAML(t *testing.T) {
	assert := assert.New(t)

	raw := `title: Test Piece
composer: Nobody
root: E3
seed: 7
bpm: 90
modulationRatio: 2
alaapBeats: 16
drumCycles: 4
`
	path := filepath.Join(t.TempDir(), "piece.yml")
	assert.Nil(os.WriteFile(path, []byte(raw), 0666))

	cfg, err := Load(path)
	assert.Nil(err)
	assert.Equal("Test Piece", cfg.Title)
	assert.Equal("Nobody", cfg.Composer)
	assert.Equal("E3", cfg.Root)
	assert.Equal(int64(7), cfg.Seed)
	assert.Equal(90.0, cfg.BPM)
	assert.Equal(2.0, cfg.ModulationRatio)
	assert.Equal(16.0, cfg.AlaapBeats)
	assert.Equal(4, cfg.DrumCycles)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("nope/definitely-not-here.yml")
	assert.NotNil(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	assert.Nil(t, os.WriteFile(path, []byte("root: [unterminated"), 0666))
	_, err := Load(path)
	assert.NotNil(t, err)
}
