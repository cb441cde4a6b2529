package repository

import (
	"context"
	"database/sql"
)

// DashboardRepo handles the remaining dashboard seed data: the opening
// assistant conversation and the summary-card figures.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) UpsertOpener(ctx context.Context, c ChatOpener) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO chat_openers(id, speaker, body, sort_order)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 speaker=excluded.speaker,
	 body=excluded.body,
	 sort_order=excluded.sort_order;
	`, c.ID, c.Speaker, c.Body, c.SortOrder)
	return err
}

func (r *DashboardRepo) ListOpeners(ctx context.Context) ([]ChatOpener, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, speaker, body, sort_order FROM chat_openers ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ChatOpener
	for rows.Next() {
		var c ChatOpener
		if err := rows.Scan(&c.ID, &c.Speaker, &c.Body, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) UpsertStat(ctx context.Context, s BuyerStat) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO buyer_stats(key, label, value)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 label=excluded.label,
	 value=excluded.value;
	`, s.Key, s.Label, s.Value)
	return err
}

func (r *DashboardRepo) ListStats(ctx context.Context) ([]BuyerStat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, label, value FROM buyer_stats ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BuyerStat
	for rows.Next() {
		var s BuyerStat
		if err := rows.Scan(&s.Key, &s.Label, &s.Value); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
