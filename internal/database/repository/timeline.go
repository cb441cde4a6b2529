package repository

import (
	"context"
	"database/sql"
)

// TimelineRepo handles transaction milestones and their checklists.
type TimelineRepo struct {
	db *sql.DB
}

func NewTimelineRepo(db *sql.DB) *TimelineRepo {
	return &TimelineRepo{db: db}
}

func (r *TimelineRepo) UpsertStage(ctx context.Context, s TimelineStage) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO timeline_stages(id, name, completed, active, date, description, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 completed=excluded.completed,
	 active=excluded.active,
	 date=excluded.date,
	 description=excluded.description,
	 sort_order=excluded.sort_order;
	`, s.ID, s.Name, s.Completed, s.Active, s.Date, s.Description, s.SortOrder)
	if err != nil {
		return err
	}
	for _, task := range s.Tasks {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO timeline_tasks(id, stage_id, name, completed, due, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		 stage_id=excluded.stage_id,
		 name=excluded.name,
		 completed=excluded.completed,
		 due=excluded.due,
		 sort_order=excluded.sort_order;
		`, task.ID, s.ID, task.Name, task.Completed, task.Due, task.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

func (r *TimelineRepo) ListStages(ctx context.Context) ([]TimelineStage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, completed, active, date, description, sort_order FROM timeline_stages ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TimelineStage
	for rows.Next() {
		var s TimelineStage
		if err := rows.Scan(&s.ID, &s.Name, &s.Completed, &s.Active, &s.Date, &s.Description, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		tasks, err := r.tasks(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Tasks = tasks
	}
	return out, nil
}

func (r *TimelineRepo) tasks(ctx context.Context, stageID string) ([]TimelineTask, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, completed, due, sort_order FROM timeline_tasks WHERE stage_id = ? ORDER BY sort_order`, stageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TimelineTask
	for rows.Next() {
		var t TimelineTask
		if err := rows.Scan(&t.ID, &t.Name, &t.Completed, &t.Due, &t.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
