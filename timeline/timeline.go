package timeline

import (
	"sort"

	"github.com/faizfusion/saharenau/model"
)

// Place shifts every event of frag by the placement offset and merges
// it into the voice. Placement offsets are nominal constants computed
// from the planned length of earlier sections, never measured from
// what the generators actually produced; a probabilistic fragment that
// overshoots its nominal length will simply overlap the next section's
// entry, and one that lands short leaves a gap. Both are part of the
// piece.
func Place(voice *model.Timeline, frag model.Fragment, offset float64) {
	for _, pe := range frag {
		voice.Events = append(voice.Events, model.PlacedEvent{
			Offset: offset + pe.Offset,
			Event:  pe.Event,
		})
	}
	// stable keeps each fragment's internal order at equal offsets
	sort.SliceStable(voice.Events, func(i, j int) bool {
		return voice.Events[i].Offset < voice.Events[j].Offset
	})
}
