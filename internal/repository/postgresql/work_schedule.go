package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/schedule"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// Upsert implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Upsert(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (department_id, work_start, work_end, lunch_start, lunch_end, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (department_id) DO UPDATE
		SET work_start = EXCLUDED.work_start,
		    work_end = EXCLUDED.work_end,
		    lunch_start = EXCLUDED.lunch_start,
		    lunch_end = EXCLUDED.lunch_end,
		    updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		sched.DepartmentID,
		sched.WorkStart,
		sched.WorkEnd,
		sched.LunchStart,
		sched.LunchEnd,
	).Scan(&sched.ID, &sched.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return schedule.WorkSchedule{}, department.ErrDepartmentNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return sched, nil
}

// GetByDepartment implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByDepartment(ctx context.Context, departmentID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, work_start, work_end, lunch_start, lunch_end, updated_at
		FROM work_schedules
		WHERE department_id = $1
	`

	var sched schedule.WorkSchedule
	err := q.QueryRow(ctx, query, departmentID).Scan(
		&sched.ID, &sched.DepartmentID, &sched.WorkStart, &sched.WorkEnd,
		&sched.LunchStart, &sched.LunchEnd, &sched.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return sched, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) List(ctx context.Context) (map[string]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, work_start, work_end, lunch_start, lunch_end, updated_at
		FROM work_schedules
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	schedules := make(map[string]schedule.WorkSchedule)
	for rows.Next() {
		var sched schedule.WorkSchedule
		if err := rows.Scan(
			&sched.ID, &sched.DepartmentID, &sched.WorkStart, &sched.WorkEnd,
			&sched.LunchStart, &sched.LunchEnd, &sched.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules[sched.DepartmentID] = sched
	}

	return schedules, rows.Err()
}

// Delete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Delete(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
