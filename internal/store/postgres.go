package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/campusintel/eventd/internal/config"
	"github.com/campusintel/eventd/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock's pool
// satisfies it for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// preparedStatements lists queries to prepare on each new connection for the
// hot paths.
var preparedStatements = map[string]string{
	"insert_event": pgInsertEvent,
	"count_events": pgCountEvents,
}

const pgInsertEvent = `INSERT INTO event_attendance (
	id, domain, event_type, speaker_type, duration_hours, day_type, time_slot,
	promotion_days, certificate_flag, interactivity_level,
	relevance_friction, schedule_friction, fatigue_friction,
	promotion_friction, social_friction, format_friction,
	expected_attendance, engagement_level, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

const pgListEvents = `SELECT id, domain, event_type, speaker_type, duration_hours, day_type, time_slot,
	promotion_days, certificate_flag, interactivity_level,
	relevance_friction, schedule_friction, fatigue_friction,
	promotion_friction, social_friction, format_friction,
	expected_attendance, engagement_level, created_at
FROM event_attendance ORDER BY created_at, id`

const pgCountEvents = `SELECT COUNT(*) FROM event_attendance`

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *config.PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}

	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS event_attendance (
	id                  TEXT PRIMARY KEY,
	domain              TEXT NOT NULL,
	event_type          TEXT NOT NULL,
	speaker_type        TEXT NOT NULL,
	duration_hours      DOUBLE PRECISION NOT NULL,
	day_type            TEXT NOT NULL,
	time_slot           TEXT NOT NULL,
	promotion_days      INTEGER NOT NULL,
	certificate_flag    BOOLEAN NOT NULL,
	interactivity_level DOUBLE PRECISION NOT NULL,
	relevance_friction  INTEGER NOT NULL DEFAULT 1,
	schedule_friction   INTEGER NOT NULL DEFAULT 1,
	fatigue_friction    INTEGER NOT NULL DEFAULT 1,
	promotion_friction  INTEGER NOT NULL DEFAULT 1,
	social_friction     INTEGER NOT NULL DEFAULT 1,
	format_friction     INTEGER NOT NULL DEFAULT 1,
	expected_attendance INTEGER NOT NULL,
	engagement_level    TEXT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_event_attendance_domain ON event_attendance(domain);
CREATE INDEX IF NOT EXISTS idx_event_attendance_speaker_type ON event_attendance(speaker_type);
CREATE INDEX IF NOT EXISTS idx_event_attendance_created_at ON event_attendance(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) InsertEvent(ctx context.Context, event model.Event) (*model.Event, error) {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx, pgInsertEvent,
		event.ID, event.Domain, event.EventType, event.SpeakerType,
		event.DurationHours, event.DayType, event.TimeSlot,
		event.PromotionDays, event.CertificateFlag, event.InteractivityLevel,
		event.RelevanceFriction, event.ScheduleFriction, event.FatigueFriction,
		event.PromotionFriction, event.SocialFriction, event.FormatFriction,
		event.ExpectedAttendance, nullCategory(event.AttendanceCategory), event.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert event")
	}

	return &event, nil
}

func (s *PostgresStore) ListEvents(ctx context.Context, limit int) ([]model.Event, error) {
	query := pgListEvents
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list events")
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var category *string
		if err := rows.Scan(
			&e.ID, &e.Domain, &e.EventType, &e.SpeakerType,
			&e.DurationHours, &e.DayType, &e.TimeSlot,
			&e.PromotionDays, &e.CertificateFlag, &e.InteractivityLevel,
			&e.RelevanceFriction, &e.ScheduleFriction, &e.FatigueFriction,
			&e.PromotionFriction, &e.SocialFriction, &e.FormatFriction,
			&e.ExpectedAttendance, &category, &e.CreatedAt,
		); err != nil {
			return nil, eris.Wrap(err, "postgres: scan event")
		}
		if category != nil {
			e.AttendanceCategory = model.Category(*category)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate events")
	}

	return events, nil
}

func (s *PostgresStore) CountEvents(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, pgCountEvents).Scan(&count); err != nil {
		return 0, eris.Wrap(err, "postgres: count events")
	}
	return count, nil
}
