package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasics(t *testing.T) {
	assert := assert.New(t)

	p, err := Parse("D4")
	assert.Nil(err)
	assert.Equal("D", p.Step)
	assert.Equal(4, p.Octave)

	p, err = Parse("F#3")
	assert.Nil(err)
	assert.Equal("F#", p.Step)
	assert.Equal(3, p.Octave)

	p, err = Parse("Bb2")
	assert.Nil(err)
	assert.Equal("Bb", p.Step)
	assert.Equal(2, p.Octave)
}

func TestParseRejectsGarbage(t *testing.T) {
	assert := assert.New(t)
	for _, bad := range []string{"", "X4", "D", "D#x"} {
		_, err := Parse(bad)
		assert.NotNil(err, "should reject %q", bad)
	}
}

func TestMIDINumbers(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"C4", 60},
		{"D4", 62},
		{"A4", 69},
		{"G#3", 56},
		{"Bb2", 46},
		{"D3", 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MIDI(MustParse(c.name)))
		})
	}
}

func TestFromMIDIRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for _, key := range []int{36, 44, 45, 60, 62, 69} {
		assert.Equal(key, MIDI(FromMIDI(key)))
	}
	assert.Equal("C4", FromMIDI(60).String())
}

func TestTransposeSpelling(t *testing.T) {
	cases := []struct {
		root     string
		interval string
		want     string
	}{
		{"D4", "M2", "E4"},
		{"D4", "M3", "F#4"},
		{"D4", "A4", "G#4"}, // not Ab
		{"D4", "P5", "A4"},
		{"D4", "M6", "B4"},
		{"D4", "M7", "C#5"},
		{"A2", "P5", "E3"},
		{"Bb2", "M3", "D3"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v+%v", c.root, c.interval)
		t.Run(name, func(t *testing.T) {
			got, err := Transpose(MustParse(c.root), c.interval)
			assert.Nil(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestTransposeUnknownInterval(t *testing.T) {
	_, err := Transpose(MustParse("D4"), "X9")
	assert.NotNil(t, err)
}
