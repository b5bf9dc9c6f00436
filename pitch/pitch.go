package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faizfusion/saharenau/model"
)

// semitone offset of each natural step from C
var stepSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Interval names the distance of a transposition in diatonic steps and
// semitones. The names follow the usual shorthand: M2, M3, A4, P5...
type Interval struct {
	Steps     int
	Semitones int
}

var intervals = map[string]Interval{
	"P1": {0, 0},
	"m2": {1, 1},
	"M2": {1, 2},
	"m3": {2, 3},
	"M3": {2, 4},
	"P4": {3, 5},
	"A4": {3, 6},
	"P5": {4, 7},
	"m6": {5, 8},
	"M6": {5, 9},
	"m7": {6, 10},
	"M7": {6, 11},
	"P8": {7, 12},
}

// Parse turns "D4", "F#3" or "Bb2" into a Pitch. The detune starts at 0.
func Parse(s string) (model.Pitch, error) {
	var p model.Pitch
	if len(s) < 2 {
		return p, fmt.Errorf("pitch too short: %q", s)
	}

	step := strings.ToUpper(s[:1])
	if _, ok := stepSemitones[step[0]]; !ok {
		return p, fmt.Errorf("bad note letter in %q", s)
	}

	rest := s[1:]
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b' || rest[0] == '-') {
		if rest[0] == '-' {
			// leading minus belongs to the octave
			break
		}
		step += string(rest[0])
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return p, fmt.Errorf("bad octave in %q", s)
	}

	p.Step = step
	p.Octave = octave
	return p, nil
}

// MustParse is Parse for literals baked into tables.
func MustParse(s string) model.Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// MIDI returns the MIDI key number, C4 = 60. Detune cents are not part
// of the key number.
func MIDI(p model.Pitch) int {
	semis := stepSemitones[p.Step[0]]
	for _, c := range p.Step[1:] {
		switch c {
		case '#':
			semis++
		case 'b':
			semis--
		}
	}
	return (p.Octave+1)*12 + semis
}

// FromMIDI names a key number with sharps, 60 = C4.
func FromMIDI(key int) model.Pitch {
	return model.Pitch{
		Step:   sharpNames[((key%12)+12)%12],
		Octave: key/12 - 1,
	}
}

// Transpose moves p up by a named interval, spelling the result on the
// correct letter (so D + A4 is G#, not Ab). Detune is not carried over.
func Transpose(p model.Pitch, name string) (model.Pitch, error) {
	iv, ok := intervals[name]
	if !ok {
		return model.Pitch{}, fmt.Errorf("unknown interval %q", name)
	}

	letters := "CDEFGAB"
	from := strings.IndexByte(letters, p.Step[0])
	to := from + iv.Steps
	letter := letters[to%7]
	octave := p.Octave + to/7

	// accidental = how far the target letter's natural pitch misses
	// the exact semitone distance
	want := MIDI(p) + iv.Semitones
	natural := (octave+1)*12 + stepSemitones[letter]
	diff := want - natural

	step := string(letter)
	for ; diff > 0; diff-- {
		step += "#"
	}
	for ; diff < 0; diff++ {
		step += "b"
	}

	return model.Pitch{Step: step, Octave: octave}, nil
}
