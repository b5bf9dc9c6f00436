package fragment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
	"github.com/faizfusion/saharenau/scale"
)

func pitchNames(frag model.Fragment) []string {
	var names []string
	for _, pe := range frag {
		for _, p := range pe.Event.Pitches {
			names = append(names, p.String())
		}
	}
	return names
}

func TestAlaapFillsTargetWithoutTruncation(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(42))

	const target = 32.0
	frag := Alaap(rng, pitch.MustParse("D4"), target)

	var total float64
	for _, pe := range frag {
		total += pe.Event.Duration
	}
	assert.GreaterOrEqual(total, target)
	assert.Less(total, target+2.0, "overshoot is at most the longest duration")

	// the walk is gapless, so the fragment ends where the durations say
	assert.Equal(total, frag.End())
}

func TestAlaapStaysInsideTheScale(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(7))
	root := pitch.MustParse("D4")

	allowed := make(map[string]bool)
	for _, p := range scale.Yaman(root) {
		allowed[p.String()] = true
	}

	for _, name := range pitchNames(Alaap(rng, root, 32)) {
		assert.True(allowed[name], "%v is not a yaman pitch", name)
	}
}

func TestAlaapDurationsComeFromThePool(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(7))
	pool := map[float64]bool{0.5: true, 1.0: true, 1.5: true, 2.0: true}
	for _, pe := range Alaap(rng, pitch.MustParse("D4"), 32) {
		assert.True(pool[pe.Event.Duration])
	}
}

func TestAlaapOffsetsFollowTheCursor(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(3))
	frag := Alaap(rng, pitch.MustParse("D4"), 16)

	var cursor float64
	for _, pe := range frag {
		assert.Equal(cursor, pe.Offset)
		cursor += pe.Event.Duration
	}
}

func TestAlaapSeedsDiverge(t *testing.T) {
	root := pitch.MustParse("D4")
	a := Alaap(rand.New(rand.NewSource(42)), root, 32)
	b := Alaap(rand.New(rand.NewSource(43)), root, 32)
	assert.NotEqual(t, pitchNames(a), pitchNames(b))
}

func TestAlaapSameSeedRepeats(t *testing.T) {
	root := pitch.MustParse("D4")
	a := Alaap(rand.New(rand.NewSource(42)), root, 32)
	b := Alaap(rand.New(rand.NewSource(42)), root, 32)
	assert.Equal(t, a, b)
}

func TestDroneIsLongAndSoft(t *testing.T) {
	assert := assert.New(t)
	frag := Drone()
	assert.GreaterOrEqual(len(frag), 2)
	for _, pe := range frag {
		assert.Zero(pe.Offset)
		assert.Equal(100.0, pe.Event.Duration)
		assert.LessOrEqual(pe.Event.Velocity, 40, "drone should be pianissimo")
	}
}

func TestFractureCountAndClash(t *testing.T) {
	assert := assert.New(t)
	frag := Fracture()
	assert.Equal(16, len(frag))
	for _, pe := range frag {
		assert.Equal(2, len(pe.Event.Pitches))
		assert.Equal("G3", pe.Event.Pitches[0].String())
		assert.Equal("G#3", pe.Event.Pitches[1].String())
		assert.Equal(2.0, pe.Event.Duration)
		assert.True(pe.Event.Accent)
	}
}

func TestFractureCrescendo(t *testing.T) {
	assert := assert.New(t)
	frag := Fracture()
	for i := 1; i < len(frag); i++ {
		assert.GreaterOrEqual(frag[i].Event.Velocity, frag[i-1].Event.Velocity)
	}
	assert.Equal(60, frag[0].Event.Velocity)
}

func TestPowerChordIsRootPlusFifth(t *testing.T) {
	assert := assert.New(t)
	ev := PowerChord(pitch.MustParse("D3"), 4.0, 96)
	assert.Equal(2, len(ev.Pitches))
	assert.Equal(7, pitch.MIDI(ev.Pitches[1])-pitch.MIDI(ev.Pitches[0]))
	assert.Equal(4.0, ev.Duration)
}

func TestRiffProgression(t *testing.T) {
	assert := assert.New(t)
	frag := Riff()

	// 4 bars x 4 repetitions
	assert.Equal(16, len(frag))
	for _, pe := range frag {
		assert.Equal(4.0, pe.Event.Duration)
	}

	// bar 4 of each pass is the full g minor triad
	for rep := 0; rep < 4; rep++ {
		bar4 := frag[rep*4+3].Event
		assert.Equal(3, len(bar4.Pitches))
		assert.Equal("Bb2", bar4.Pitches[1].String())
	}
}

func TestRiffOffsetsAreBarAligned(t *testing.T) {
	assert := assert.New(t)
	for i, pe := range Riff() {
		assert.Equal(float64(i)*4.0, pe.Offset)
	}
}

func TestSynthesisStraightEighths(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(5))
	frag := Synthesis(rng, pitch.MustParse("D4"))

	// 8 bars of 8th notes
	assert.Equal(64, len(frag))
	for i, pe := range frag {
		assert.Equal(0.5, pe.Event.Duration)
		assert.Equal(float64(i)*0.5, pe.Offset)
		assert.Equal(1, len(pe.Event.Pitches))
	}
}

func TestSynthesisStaysInsideTheScale(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(5))
	root := pitch.MustParse("D4")

	allowed := make(map[string]bool)
	for _, p := range scale.Yaman(root) {
		allowed[p.String()] = true
	}
	for _, name := range pitchNames(Synthesis(rng, root)) {
		assert.True(allowed[name])
	}
}
