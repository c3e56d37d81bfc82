package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/campusintel/eventd/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS event_attendance (
	id                  TEXT PRIMARY KEY,
	domain              TEXT NOT NULL,
	event_type          TEXT NOT NULL,
	speaker_type        TEXT NOT NULL,
	duration_hours      REAL NOT NULL,
	day_type            TEXT NOT NULL,
	time_slot           TEXT NOT NULL,
	promotion_days      INTEGER NOT NULL,
	certificate_flag    INTEGER NOT NULL,
	interactivity_level REAL NOT NULL,
	relevance_friction  INTEGER NOT NULL DEFAULT 1,
	schedule_friction   INTEGER NOT NULL DEFAULT 1,
	fatigue_friction    INTEGER NOT NULL DEFAULT 1,
	promotion_friction  INTEGER NOT NULL DEFAULT 1,
	social_friction     INTEGER NOT NULL DEFAULT 1,
	format_friction     INTEGER NOT NULL DEFAULT 1,
	expected_attendance INTEGER NOT NULL,
	engagement_level    TEXT,
	created_at          DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_event_attendance_domain ON event_attendance(domain);
CREATE INDEX IF NOT EXISTS idx_event_attendance_speaker_type ON event_attendance(speaker_type);
CREATE INDEX IF NOT EXISTS idx_event_attendance_created_at ON event_attendance(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) InsertEvent(ctx context.Context, event model.Event) (*model.Event, error) {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event_attendance (
			id, domain, event_type, speaker_type, duration_hours, day_type, time_slot,
			promotion_days, certificate_flag, interactivity_level,
			relevance_friction, schedule_friction, fatigue_friction,
			promotion_friction, social_friction, format_friction,
			expected_attendance, engagement_level, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Domain, event.EventType, event.SpeakerType,
		event.DurationHours, event.DayType, event.TimeSlot,
		event.PromotionDays, boolToInt(event.CertificateFlag), event.InteractivityLevel,
		event.RelevanceFriction, event.ScheduleFriction, event.FatigueFriction,
		event.PromotionFriction, event.SocialFriction, event.FormatFriction,
		event.ExpectedAttendance, nullCategory(event.AttendanceCategory), event.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert event")
	}

	return &event, nil
}

func (s *SQLiteStore) ListEvents(ctx context.Context, limit int) ([]model.Event, error) {
	query := `SELECT id, domain, event_type, speaker_type, duration_hours, day_type, time_slot,
		promotion_days, certificate_flag, interactivity_level,
		relevance_friction, schedule_friction, fatigue_friction,
		promotion_friction, social_friction, format_friction,
		expected_attendance, engagement_level, created_at
	FROM event_attendance ORDER BY created_at, id`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list events")
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var certificate int
		var category sql.NullString
		if err := rows.Scan(
			&e.ID, &e.Domain, &e.EventType, &e.SpeakerType,
			&e.DurationHours, &e.DayType, &e.TimeSlot,
			&e.PromotionDays, &certificate, &e.InteractivityLevel,
			&e.RelevanceFriction, &e.ScheduleFriction, &e.FatigueFriction,
			&e.PromotionFriction, &e.SocialFriction, &e.FormatFriction,
			&e.ExpectedAttendance, &category, &e.CreatedAt,
		); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan event")
		}
		e.CertificateFlag = certificate != 0
		if category.Valid {
			e.AttendanceCategory = model.Category(category.String)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate events")
	}

	return events, nil
}

func (s *SQLiteStore) CountEvents(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_attendance`).Scan(&count)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: count events")
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullCategory(c model.Category) any {
	if c == "" {
		return nil
	}
	return string(c)
}
