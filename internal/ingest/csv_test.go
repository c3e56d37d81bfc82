package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusintel/eventd/internal/model"
)

func frictionHeader() []string {
	var cols []string
	for _, prefix := range []string{
		"Relevance_Friction", "Schedule_Friction", "Fatigue_Friction",
		"Promotion_Friction", "Social_Friction", "Format_Friction",
	} {
		for level := 1; level <= 5; level++ {
			cols = append(cols, fmt.Sprintf("%s_%d", prefix, level))
		}
	}
	return cols
}

// oneHot emits the 5 cells for a friction rated at the given level.
func oneHot(level int) []string {
	cells := make([]string, 5)
	for i := range cells {
		if i+1 == level {
			cells[i] = "1"
		} else {
			cells[i] = "0"
		}
	}
	return cells
}

func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	header := append([]string{
		"Domain", "Event_Type", "Speaker_Type", "Duration_Hours", "Day_Type",
		"Time_Slot", "Promotion_Days", "Certificate_Flag", "Interactivity_Level",
	}, frictionHeader()...)
	header = append(header, "Expected_Attendance", "Engagement_Level")

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func sampleRow() []string {
	row := []string{"Tech", "Workshop", "Industry", "1.5", "Weekday", "Evening", "12", "1", "0.73"}
	row = append(row, oneHot(2)...) // relevance
	row = append(row, oneHot(5)...) // schedule
	row = append(row, oneHot(1)...) // fatigue
	row = append(row, oneHot(3)...) // promotion
	row = append(row, oneHot(1)...) // social
	row = append(row, oneHot(4)...) // format
	return append(row, "118", "Medium")
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, [][]string{sampleRow()})

	events, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "Tech", e.Domain)
	assert.Equal(t, "Workshop", e.EventType)
	assert.Equal(t, "Industry", e.SpeakerType)
	assert.InDelta(t, 1.5, e.DurationHours, 0.001)
	assert.Equal(t, "Weekday", e.DayType)
	assert.Equal(t, "Evening", e.TimeSlot)
	assert.Equal(t, 12, e.PromotionDays)
	assert.True(t, e.CertificateFlag)
	assert.InDelta(t, 0.73, e.InteractivityLevel, 0.001)
	assert.Equal(t, 2, e.RelevanceFriction)
	assert.Equal(t, 5, e.ScheduleFriction)
	assert.Equal(t, 1, e.FatigueFriction)
	assert.Equal(t, 3, e.PromotionFriction)
	assert.Equal(t, 1, e.SocialFriction)
	assert.Equal(t, 4, e.FormatFriction)
	assert.Equal(t, 118, e.ExpectedAttendance)
	assert.Equal(t, model.CategoryMedium, e.AttendanceCategory)
}

func TestReadCSV_AllZeroFrictionDefaultsToOne(t *testing.T) {
	t.Parallel()

	row := []string{"Law", "Career_Talk", "Faculty", "2", "Weekend", "Morning", "3", "0", "0.2"}
	for i := 0; i < 6; i++ {
		row = append(row, "0", "0", "0", "0", "0")
	}
	row = append(row, "44", "Low")
	path := writeCSV(t, [][]string{row})

	events, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].RelevanceFriction)
	assert.Equal(t, 1, events[0].FormatFriction)
	assert.False(t, events[0].CertificateFlag)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Domain,Event_Type\nTech,Workshop\n"), 0o600))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadCSV_BadNumeric(t *testing.T) {
	t.Parallel()

	row := sampleRow()
	row[6] = "soon" // Promotion_Days
	path := writeCSV(t, [][]string{row})

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Promotion_Days")
}

func TestReadCSV_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
