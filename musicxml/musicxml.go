package musicxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/faizfusion/saharenau/model"
)

const (
	divisions       = 480 // per quarter
	beatsPerMeasure = 4
)

type xmlWriter struct {
	stream io.Writer
	level  int
	err    error
}

func (wr *xmlWriter) fmt(format string, args ...interface{}) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.stream, "%s%s\n", strings.Repeat("  ", wr.level), fmt.Sprintf(format, args...))
}

func (wr *xmlWriter) tag(name string, attrs ...interface{}) string {
	t := name
	for i := 0; i < len(attrs); i += 2 {
		t = fmt.Sprintf("%s %v=\"%v\"", t, attrs[i], attrs[i+1])
	}
	wr.fmt("<%s>", t)
	wr.level++
	return name
}

func (wr *xmlWriter) closeTag(name string) {
	wr.level--
	wr.fmt("</%s>", name)
}

func (wr *xmlWriter) emptyTag(name string) {
	wr.fmt("<%s/>", name)
}

func (wr *xmlWriter) contentTag(name string, content interface{}) {
	wr.fmt("<%s>%v</%s>", name, escape(fmt.Sprintf("%v", content)), name)
}

func escape(s string) string {
	var buf strings.Builder
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Export writes the score as partwise MusicXML.
func Export(s model.Score, w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	wr := xmlWriter{stream: w}

	root := wr.tag("score-partwise", "version", "3.1")
	writeWork(&wr, s)
	writeIdent(&wr, s)
	writePartList(&wr, s)
	for i, voice := range s.Voices {
		writePart(&wr, s, voice, partID(i), i == 0)
	}
	wr.closeTag(root)
	return wr.err
}

// ExportFile writes the score as MusicXML to a file on disk.
func ExportFile(s model.Score, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Export(s, f)
}

func partID(i int) string {
	return fmt.Sprintf("P%d", i+1)
}

func writeWork(wr *xmlWriter, s model.Score) {
	defer wr.closeTag(wr.tag("work"))
	wr.contentTag("work-title", s.Title)
}

func writeIdent(wr *xmlWriter, s model.Score) {
	ident := wr.tag("identification")
	wr.fmt("<creator type=\"composer\">%s</creator>", escape(s.Composer))
	enc := wr.tag("encoding")
	wr.contentTag("software", "saharenau")
	wr.contentTag("encoding-date", time.Now().Format("2006-01-02"))
	wr.closeTag(enc)
	wr.closeTag(ident)
}

func writePartList(wr *xmlWriter, s model.Score) {
	defer wr.closeTag(wr.tag("part-list"))
	for i, voice := range s.Voices {
		part := wr.tag("score-part", "id", partID(i))
		wr.contentTag("part-name", voice.Name)
		wr.closeTag(part)
	}
}

func toDivs(beats float64) int {
	return int(math.Round(beats * divisions))
}

// writePart lays one voice into 4/4 measures. Notes are not split at
// barlines; a long note simply spills over, which notation programs
// tolerate better than we have any need to care about. Tempo
// directions go into the lead part only.
func writePart(wr *xmlWriter, s model.Score, voice model.Timeline, id string, lead bool) {
	defer wr.closeTag(wr.tag("part", "id", id))

	end := s.End()
	numMeasures := int(math.Ceil(end/beatsPerMeasure + 1e-9))
	if numMeasures < 1 {
		numMeasures = 1
	}

	tempos := append([]model.TempoMarker(nil), s.Tempos...)
	events := voice.Events
	cursor := 0 // in divisions

	for m := 0; m < numMeasures; m++ {
		meas := wr.tag("measure", "number", m+1)
		if m == 0 {
			attr := wr.tag("attributes")
			wr.contentTag("divisions", divisions)
			key := wr.tag("key")
			wr.contentTag("fifths", 0)
			wr.closeTag(key)
			tim := wr.tag("time")
			wr.contentTag("beats", 4)
			wr.contentTag("beat-type", 4)
			wr.closeTag(tim)
			wr.closeTag(attr)
		}

		measureEnd := (m + 1) * beatsPerMeasure * divisions

		if lead {
			for len(tempos) > 0 && toDivs(tempos[0].Offset) < measureEnd {
				dir := wr.tag("direction", "placement", "above")
				wr.fmt("<sound tempo=\"%g\"/>", tempos[0].BPM)
				wr.closeTag(dir)
				tempos = tempos[1:]
			}
		}

		for len(events) > 0 && toDivs(events[0].Offset) < measureEnd {
			pe := events[0]
			events = events[1:]
			start := toDivs(pe.Offset)

			if start > cursor {
				writeRest(wr, start-cursor)
				cursor = start
			} else if start < cursor {
				// simultaneous or overlapping entry; rewind
				backup := wr.tag("backup")
				wr.contentTag("duration", cursor-start)
				wr.closeTag(backup)
				cursor = start
			}

			writeEvent(wr, pe.Event)
			cursor = start + toDivs(pe.Event.Duration)
		}

		if cursor < measureEnd && len(events) > 0 {
			writeRest(wr, measureEnd-cursor)
			cursor = measureEnd
		}

		wr.closeTag(meas)
	}
}

func writeRest(wr *xmlWriter, divs int) {
	note := wr.tag("note")
	wr.emptyTag("rest")
	wr.contentTag("duration", divs)
	wr.closeTag(note)
}

func writeEvent(wr *xmlWriter, e model.Event) {
	// note dynamics are a percentage of velocity 90, deliberately
	// uncapped, same as the model
	dynamics := fmt.Sprintf("%.1f", float64(e.Velocity)/90.0*100.0)
	for i, p := range e.Pitches {
		note := wr.tag("note", "dynamics", dynamics)
		if i > 0 {
			wr.emptyTag("chord")
		}
		writePitch(wr, p)
		wr.contentTag("duration", toDivs(e.Duration))
		if e.Tuplet != nil {
			mod := wr.tag("time-modification")
			wr.contentTag("actual-notes", e.Tuplet.Actual)
			wr.contentTag("normal-notes", e.Tuplet.Normal)
			wr.closeTag(mod)
		}
		if e.Accent && i == 0 {
			not := wr.tag("notations")
			art := wr.tag("articulations")
			wr.emptyTag("strong-accent")
			wr.closeTag(art)
			wr.closeTag(not)
		}
		wr.closeTag(note)
	}
}

func writePitch(wr *xmlWriter, p model.Pitch) {
	px := wr.tag("pitch")
	wr.contentTag("step", p.Step[:1])
	alter := 0.0
	for _, c := range p.Step[1:] {
		switch c {
		case '#':
			alter++
		case 'b':
			alter--
		}
	}
	alter += p.Cents / 100.0
	if alter != 0 {
		wr.contentTag("alter", fmt.Sprintf("%g", alter))
	}
	wr.contentTag("octave", p.Octave)
	wr.closeTag(px)
}
