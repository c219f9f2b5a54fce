package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, description, event_date, image_url, tier, created_at`

// ListEventsByTiers returns events whose tier is in tiers, by event date.
func (r *EventRepository) ListEventsByTiers(ctx context.Context, tiers []domain.Tier) ([]domain.Event, error) {
	if len(tiers) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		names = append(names, string(tier))
	}

	query := `
SELECT ` + eventColumns + `
FROM events
WHERE tier = ANY($1)
ORDER BY event_date ASC, id ASC`
	rows, err := conn(ctx, r.pool).Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("list events by tier: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	query := `
SELECT ` + eventColumns + `
FROM events
ORDER BY event_date ASC, id ASC`
	rows, err := conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// DeleteAllEvents removes every row and reports how many were deleted.
func (r *EventRepository) DeleteAllEvents(ctx context.Context) (int64, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM events`)
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertEvents writes all events in one transaction and returns the stored
// rows.
func (r *EventRepository) InsertEvents(ctx context.Context, events []domain.Event) ([]domain.Event, error) {
	const stmt = `
INSERT INTO events (id, title, description, event_date, image_url, tier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + eventColumns

	inserted := make([]domain.Event, 0, len(events))
	err := withTx(ctx, r.pool, func(ctx context.Context) error {
		q := conn(ctx, r.pool)
		for _, event := range events {
			row := q.QueryRow(ctx, stmt,
				event.ID,
				event.Title,
				event.Description,
				event.EventDate,
				nullableText(event.ImageURL),
				string(event.Tier),
				event.CreatedAt,
			)
			stored, err := scanEvent(row)
			if err != nil {
				if isInvalidUUID(err) {
					return domain.ErrInvalidID
				}
				if isCheckViolation(err) {
					return domain.ErrInvalidTier
				}
				return fmt.Errorf("insert event %q: %w", event.Title, err)
			}
			inserted = append(inserted, stored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		event    domain.Event
		imageURL *string
		tier     string
	)
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&imageURL,
		&tier,
		&event.CreatedAt,
	); err != nil {
		return domain.Event{}, err
	}
	if imageURL != nil {
		event.ImageURL = *imageURL
	}
	event.Tier = domain.Tier(tier)
	event.EventDate = event.EventDate.UTC()
	event.CreatedAt = event.CreatedAt.UTC()
	return event, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
