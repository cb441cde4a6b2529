package repository

import (
	"context"
	"database/sql"
)

// MarketRepo handles the market-analytics seed series.
type MarketRepo struct {
	db *sql.DB
}

func NewMarketRepo(db *sql.DB) *MarketRepo {
	return &MarketRepo{db: db}
}

func (r *MarketRepo) InsertPoint(ctx context.Context, p MarketPoint) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO market_points(month, value, sort_order)
	SELECT ?, ?, ?
	WHERE NOT EXISTS (SELECT 1 FROM market_points WHERE month = ?);
	`, p.Month, p.Value, p.SortOrder, p.Month)
	return err
}

func (r *MarketRepo) ListPoints(ctx context.Context) ([]MarketPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT month, value, sort_order FROM market_points ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MarketPoint
	for rows.Next() {
		var p MarketPoint
		if err := rows.Scan(&p.Month, &p.Value, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MarketRepo) UpsertInsight(ctx context.Context, ins MarketInsight) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO market_insights(id, area, body, sort_order)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 area=excluded.area,
	 body=excluded.body,
	 sort_order=excluded.sort_order;
	`, ins.ID, ins.Area, ins.Body, ins.SortOrder)
	return err
}

func (r *MarketRepo) ListInsights(ctx context.Context) ([]MarketInsight, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, area, body, sort_order FROM market_insights ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MarketInsight
	for rows.Next() {
		var ins MarketInsight
		if err := rows.Scan(&ins.ID, &ins.Area, &ins.Body, &ins.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, rows.Err()
}
