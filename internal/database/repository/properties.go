package repository

import (
	"context"
	"database/sql"
)

// PropertyRepo handles property listings.
type PropertyRepo struct {
	db *sql.DB
}

func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

func (r *PropertyRepo) Upsert(ctx context.Context, p Property) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO properties(id, title, address, price_cents, beds, baths, sqft, image_ref, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 address=excluded.address,
	 price_cents=excluded.price_cents,
	 beds=excluded.beds,
	 baths=excluded.baths,
	 sqft=excluded.sqft,
	 image_ref=excluded.image_ref,
	 sort_order=excluded.sort_order;
	`, p.ID, p.Title, p.Address, p.PriceCents, p.Beds, p.Baths, p.Sqft, p.ImageRef, p.SortOrder)
	return err
}

func (r *PropertyRepo) List(ctx context.Context) ([]Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, address, price_cents, beds, baths, sqft, image_ref, sort_order FROM properties ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Property
	for rows.Next() {
		var p Property
		if err := rows.Scan(&p.ID, &p.Title, &p.Address, &p.PriceCents, &p.Beds, &p.Baths, &p.Sqft, &p.ImageRef, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertyRepo) Get(ctx context.Context, id string) (*Property, error) {
	var p Property
	err := r.db.QueryRowContext(ctx, `SELECT id, title, address, price_cents, beds, baths, sqft, image_ref, sort_order FROM properties WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Address, &p.PriceCents, &p.Beds, &p.Baths, &p.Sqft, &p.ImageRef, &p.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
