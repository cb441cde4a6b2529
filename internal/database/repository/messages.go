package repository

import (
	"context"
	"database/sql"
)

// MessageRepo handles correspondence and the per-message advisory lookup.
type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Upsert(ctx context.Context, m Message) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO messages(id, category, sender, sender_role, subject, date, body, unread, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 category=excluded.category,
	 sender=excluded.sender,
	 sender_role=excluded.sender_role,
	 subject=excluded.subject,
	 date=excluded.date,
	 body=excluded.body,
	 sort_order=excluded.sort_order;
	`, m.ID, m.Category, m.Sender, m.SenderRole, m.Subject, m.Date, m.Body, m.Unread, m.SortOrder)
	if err != nil {
		return err
	}
	for _, a := range m.Attachments {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO message_attachments(message_id, name, size)
		SELECT ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM message_attachments WHERE message_id = ? AND name = ?);
		`, m.ID, a.Name, a.Size, m.ID, a.Name); err != nil {
			return err
		}
	}
	return nil
}

func (r *MessageRepo) List(ctx context.Context) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, sender, sender_role, subject, date, body, unread, sort_order FROM messages ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Category, &m.Sender, &m.SenderRole, &m.Subject, &m.Date, &m.Body, &m.Unread, &m.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		atts, err := r.attachments(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Attachments = atts
	}
	return out, nil
}

func (r *MessageRepo) attachments(ctx context.Context, messageID string) ([]Attachment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, size FROM message_attachments WHERE message_id = ? ORDER BY id`, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Attachment
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.Name, &a.Size); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// MarkRead flips unread to false. The flag is monotonic; there is no
// corresponding mark-unread write.
func (r *MessageRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE messages SET unread = 0 WHERE id = ?`, id)
	return err
}

func (r *MessageRepo) UpsertAnnotation(ctx context.Context, messageID, advice string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO message_annotations(message_id, advice)
	VALUES (?, ?)
	ON CONFLICT(message_id) DO UPDATE SET advice=excluded.advice;
	`, messageID, advice)
	return err
}

// Annotations returns the full message id -> advisory text lookup.
func (r *MessageRepo) Annotations(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT message_id, advice FROM message_annotations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var id, advice string
		if err := rows.Scan(&id, &advice); err != nil {
			return nil, err
		}
		out[id] = advice
	}
	return out, rows.Err()
}
