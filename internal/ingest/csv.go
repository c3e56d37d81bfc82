// Package ingest loads the synthetic historical dataset into the store.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/campusintel/eventd/internal/model"
)

// frictionColumns maps each friction to its one-hot column prefix in the
// generator CSV (Relevance_Friction_1 .. Relevance_Friction_5 and so on).
var frictionColumns = []struct {
	prefix string
	assign func(*model.Event, int)
}{
	{"Relevance_Friction", func(e *model.Event, v int) { e.RelevanceFriction = v }},
	{"Schedule_Friction", func(e *model.Event, v int) { e.ScheduleFriction = v }},
	{"Fatigue_Friction", func(e *model.Event, v int) { e.FatigueFriction = v }},
	{"Promotion_Friction", func(e *model.Event, v int) { e.PromotionFriction = v }},
	{"Social_Friction", func(e *model.Event, v int) { e.SocialFriction = v }},
	{"Format_Friction", func(e *model.Event, v int) { e.FormatFriction = v }},
}

// ReadCSV parses the generator dataset. One-hot friction columns are
// collapsed back to their 1-5 rating; a row with no set level defaults to 1.
func ReadCSV(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read header")
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{
		"Domain", "Event_Type", "Speaker_Type", "Duration_Hours",
		"Day_Type", "Time_Slot", "Promotion_Days", "Certificate_Flag",
		"Interactivity_Level", "Expected_Attendance",
	} {
		if _, ok := idx[required]; !ok {
			return nil, eris.Errorf("ingest: missing column %q", required)
		}
	}

	var events []model.Event
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: read row %d", line)
		}
		line++

		event, err := parseRow(record, idx)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: row %d", line)
		}
		events = append(events, event)
	}

	return events, nil
}

func parseRow(record []string, idx map[string]int) (model.Event, error) {
	var e model.Event
	var err error

	e.Domain = record[idx["Domain"]]
	e.EventType = record[idx["Event_Type"]]
	e.SpeakerType = record[idx["Speaker_Type"]]
	e.DayType = record[idx["Day_Type"]]
	e.TimeSlot = record[idx["Time_Slot"]]

	if e.DurationHours, err = strconv.ParseFloat(record[idx["Duration_Hours"]], 64); err != nil {
		return e, eris.Wrap(err, "parse Duration_Hours")
	}
	if e.PromotionDays, err = strconv.Atoi(record[idx["Promotion_Days"]]); err != nil {
		return e, eris.Wrap(err, "parse Promotion_Days")
	}
	cert, err := strconv.Atoi(record[idx["Certificate_Flag"]])
	if err != nil {
		return e, eris.Wrap(err, "parse Certificate_Flag")
	}
	e.CertificateFlag = cert != 0
	if e.InteractivityLevel, err = strconv.ParseFloat(record[idx["Interactivity_Level"]], 64); err != nil {
		return e, eris.Wrap(err, "parse Interactivity_Level")
	}
	if e.ExpectedAttendance, err = strconv.Atoi(record[idx["Expected_Attendance"]]); err != nil {
		return e, eris.Wrap(err, "parse Expected_Attendance")
	}

	for _, fc := range frictionColumns {
		fc.assign(&e, oneHotRating(record, idx, fc.prefix))
	}

	if col, ok := idx["Engagement_Level"]; ok {
		e.AttendanceCategory = model.Category(record[col])
	}

	return e, nil
}

// oneHotRating finds the set level among prefix_1..prefix_5. Missing columns
// or an all-zero row default to 1 (no friction).
func oneHotRating(record []string, idx map[string]int, prefix string) int {
	for level := 1; level <= 5; level++ {
		col, ok := idx[fmt.Sprintf("%s_%d", prefix, level)]
		if !ok {
			continue
		}
		if record[col] == "1" {
			return level
		}
	}
	return 1
}
