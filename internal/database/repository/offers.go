package repository

import (
	"context"
	"database/sql"
)

// OfferRepo handles offer templates and the saved-offer history.
type OfferRepo struct {
	db *sql.DB
}

func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

func (r *OfferRepo) UpsertTemplate(ctx context.Context, t OfferTemplate) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO offer_templates(id, name, description, sort_order)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 sort_order=excluded.sort_order;
	`, t.ID, t.Name, t.Description, t.SortOrder)
	return err
}

func (r *OfferRepo) ListTemplates(ctx context.Context) ([]OfferTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, sort_order FROM offer_templates ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OfferTemplate
	for rows.Next() {
		var t OfferTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *OfferRepo) UpsertSaved(ctx context.Context, o SavedOffer) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO saved_offers(id, property_id, date, status, amount_cents, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 property_id=excluded.property_id,
	 date=excluded.date,
	 status=excluded.status,
	 amount_cents=excluded.amount_cents,
	 sort_order=excluded.sort_order;
	`, o.ID, o.PropertyID, o.Date, o.Status, o.AmountCents, o.SortOrder)
	return err
}

func (r *OfferRepo) ListSaved(ctx context.Context) ([]SavedOffer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, property_id, date, status, amount_cents, sort_order FROM saved_offers ORDER BY sort_order, date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SavedOffer
	for rows.Next() {
		var o SavedOffer
		if err := rows.Scan(&o.ID, &o.PropertyID, &o.Date, &o.Status, &o.AmountCents, &o.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
