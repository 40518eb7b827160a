package postgres

import (
	"context"
	"database/sql"

	"events-cleanup-service/internal/cleanup/core/domain"
	"events-cleanup-service/internal/cleanup/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var (
	_ ports.EventStorePort     = (*EventRepository)(nil)
	_ ports.ScriptRendererPort = (*EventRepository)(nil)
)

const summarySQL = `
SELECT
    COUNT(*) AS total_count,
    COUNT(*) FILTER (WHERE "event" = 'FlagValue') AS flag_value_count,
    MIN("timestamp") AS oldest,
    MAX("timestamp") AS newest
FROM events`

func (r *EventRepository) Count(ctx context.Context, p domain.Predicate) (int64, error) {
	b := &whereBuilder{}
	where, err := b.build(p)
	if err != nil {
		return 0, err
	}

	rows, err := r.db.QueryContext(ctx, withWhere("SELECT COUNT(*) FROM events", where), b.args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *EventRepository) Delete(ctx context.Context, p domain.Predicate) (int64, error) {
	b := &whereBuilder{}
	where, err := b.build(p)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, withWhere("DELETE FROM events", where), b.args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *EventRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	rows, err := r.db.QueryContext(ctx, summarySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := &domain.Summary{}
	if rows.Next() {
		var oldest, newest sql.NullTime
		if err := rows.Scan(&s.TotalCount, &s.FlagValueCount, &oldest, &newest); err != nil {
			return nil, err
		}
		if oldest.Valid {
			t := oldest.Time.UTC()
			s.OldestEventDate = &t
		}
		if newest.Valid {
			t := newest.Time.UTC()
			s.NewestEventDate = &t
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.CustomEventsCount = s.TotalCount - s.FlagValueCount
	return s, nil
}

// RenderScript renders the predicate with inlined literals for manual use.
func (r *EventRepository) RenderScript(p domain.Predicate) (domain.Script, error) {
	b := &whereBuilder{inline: true}
	where, err := b.build(p)
	if err != nil {
		return domain.Script{}, err
	}

	return domain.Script{
		DeleteSQL:  withWhere("DELETE FROM events", where) + ";",
		PreviewSQL: withWhere("SELECT COUNT(*) FROM events", where) + ";",
	}, nil
}

// Ping checks connectivity for health probes.
func (r *EventRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func withWhere(stmt, where string) string {
	if where == "" {
		return stmt
	}
	return stmt + "\nWHERE " + where
}
