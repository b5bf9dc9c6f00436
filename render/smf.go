package render

import (
	"io"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/pitch"
	"github.com/faizfusion/saharenau/util"
)

const ticksPerQuarter = 480

const drumChannel = 9

// event ordering at an identical tick: offs and bend resets must land
// before the next note's bend and note-on
const (
	ordNoteOff = iota
	ordBendReset
	ordBendSet
	ordNoteOn
)

type timedMessage struct {
	tick uint64
	ord  int
	msg  midi.Message
}

func beatsToTicks(beats float64) uint64 {
	return uint64(math.Round(beats * ticksPerQuarter))
}

// clampVelocity is the only place loudness gets capped: the model keeps
// raw ints, MIDI needs 1..127.
func clampVelocity(v int) uint8 {
	if v < 1 {
		return 1
	}
	return uint8(util.Min(v, 127))
}

// bendValue maps a cents detune onto the default +/-2 semitone pitch
// bend range.
func bendValue(cents float64) int16 {
	v := cents / 200.0 * 8192.0
	if v > 8191 {
		v = 8191
	}
	if v < -8192 {
		v = -8192
	}
	return int16(v)
}

func voiceChannel(voiceNum int, percussion bool) uint8 {
	if percussion {
		return drumChannel
	}
	// skip the drum channel for melodic voices
	if voiceNum >= drumChannel {
		voiceNum++
	}
	return uint8(voiceNum)
}

func voiceTrack(voice model.Timeline, channel uint8) smf.Track {
	var messages []timedMessage
	for _, pe := range voice.Events {
		on := beatsToTicks(pe.Offset)
		off := beatsToTicks(pe.Offset + pe.Event.Duration)
		vel := clampVelocity(pe.Event.Velocity)
		for _, p := range pe.Event.Pitches {
			key := uint8(pitch.MIDI(p))
			if p.Cents != 0 {
				messages = append(messages,
					timedMessage{on, ordBendSet, midi.Pitchbend(channel, bendValue(p.Cents))},
					timedMessage{off, ordBendReset, midi.Pitchbend(channel, 0)})
			}
			messages = append(messages,
				timedMessage{on, ordNoteOn, midi.NoteOn(channel, key, vel)},
				timedMessage{off, ordNoteOff, midi.NoteOff(channel, key)})
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].tick != messages[j].tick {
			return messages[i].tick < messages[j].tick
		}
		return messages[i].ord < messages[j].ord
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(voice.Name))
	track.Add(0, smf.MetaInstrument(voice.Name))
	if !voice.Percussion {
		track.Add(0, midi.ProgramChange(channel, voice.Program))
	}

	var lastTick uint64
	for _, tm := range messages {
		track.Add(uint32(tm.tick-lastTick), tm.msg)
		lastTick = tm.tick
	}
	track.Close(0)
	return track
}

func conductorTrack(s model.Score) smf.Track {
	markers := make([]model.TempoMarker, len(s.Tempos))
	copy(markers, s.Tempos)
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Offset < markers[j].Offset
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(s.Title))
	track.Add(0, smf.MetaCopyright(s.Composer))
	track.Add(0, smf.MetaMeter(4, 4))

	var lastTick uint64
	for _, tm := range markers {
		tick := beatsToTicks(tm.Offset)
		track.Add(uint32(tick-lastTick), smf.MetaTempo(tm.BPM))
		lastTick = tick
	}
	track.Close(0)
	return track
}

// ToSMF lays the score into a format-1 SMF: one conductor track with
// the meter and tempo map, then one track per voice.
func ToSMF(s model.Score) *smf.SMF {
	out := smf.New()
	out.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	out.Add(conductorTrack(s))
	for i, voice := range s.Voices {
		out.Add(voiceTrack(voice, voiceChannel(i, voice.Percussion)))
	}
	return out
}

// WriteSMF renders the score into w as a Standard MIDI File.
func WriteSMF(s model.Score, w io.Writer) error {
	_, err := ToSMF(s).WriteTo(w)
	return err
}

// WriteSMFFile renders the score to a .mid on disk.
func WriteSMFFile(s model.Score, path string) error {
	return ToSMF(s).WriteFile(path)
}
