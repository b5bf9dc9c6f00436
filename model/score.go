package model

// Timeline is one instrumental voice: placed events at global offsets.
// Program is a zero-indexed General MIDI program; it is ignored when
// Percussion is set (those events address the drum channel by key).
type Timeline struct {
	Name       string
	Program    uint8
	Percussion bool
	Events     []PlacedEvent
}

// TempoMarker changes the global beats-per-minute from Offset onward.
type TempoMarker struct {
	Offset float64
	BPM    float64
}

// Score is the finished composition, handed to the renderers as-is.
type Score struct {
	Title    string
	Composer string
	Voices   []Timeline
	Tempos   []TempoMarker
}

// End returns the largest stop offset across all voices.
func (s Score) End() float64 {
	var end float64
	for _, v := range s.Voices {
		for _, pe := range v.Events {
			if stop := pe.Offset + pe.Event.Duration; stop > end {
				end = stop
			}
		}
	}
	return end
}
