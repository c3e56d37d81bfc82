package model

import "time"

// Category is the coarse attendance bucket derived from a predicted or
// recorded attendance figure.
type Category string

const (
	CategoryLow    Category = "Low"
	CategoryMedium Category = "Medium"
	CategoryHigh   Category = "High"
)

// CategoryFor classifies an attendance figure. Thresholds are shared by the
// local heuristic and the delegated prediction path: >120 is High, >70 is
// Medium, everything else (including exactly 70) is Low.
func CategoryFor(attendance int) Category {
	switch {
	case attendance > 120:
		return CategoryHigh
	case attendance > 70:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Event is a historical or predicted campus event record. Records are
// append-only: once written they are never updated or deleted.
type Event struct {
	ID                 string    `json:"id,omitempty"`
	Domain             string    `json:"domain"`
	EventType          string    `json:"eventType"`
	SpeakerType        string    `json:"speakerType"`
	DurationHours      float64   `json:"durationHours"`
	DayType            string    `json:"dayType"`
	TimeSlot           string    `json:"timeSlot"`
	PromotionDays      int       `json:"promotionDays"`
	CertificateFlag    bool      `json:"certificateFlag"`
	InteractivityLevel float64   `json:"interactivityLevel"`
	RelevanceFriction  int       `json:"relevanceFriction"`
	ScheduleFriction   int       `json:"scheduleFriction"`
	FatigueFriction    int       `json:"fatigueFriction"`
	PromotionFriction  int       `json:"promotionFriction"`
	SocialFriction     int       `json:"socialFriction"`
	FormatFriction     int       `json:"formatFriction"`
	ExpectedAttendance int       `json:"expectedAttendance"`
	AttendanceCategory Category  `json:"attendanceCategory,omitempty"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
}
