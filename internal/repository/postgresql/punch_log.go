package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/punchlog"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/database"
)

type punchLogRepository struct {
	db *database.DB
}

func NewPunchLogRepository(db *database.DB) punchlog.PunchLogRepository {
	return &punchLogRepository{db: db}
}

// Create implements punchlog.PunchLogRepository.
func (r *punchLogRepository) Create(ctx context.Context, event punchlog.PunchEvent) (punchlog.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_logs (employee_id, punch_date, punch_time, kind, device_info, ip_address, selfie_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		event.EmployeeID,
		event.Date,
		event.Time,
		event.Kind,
		event.DeviceInfo,
		event.IPAddress,
		event.SelfieURL,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return punchlog.PunchEvent{}, employee.ErrEmployeeNotFound
		}
		return punchlog.PunchEvent{}, fmt.Errorf("failed to create punch log: %w", err)
	}

	return event, nil
}

// ListByEmployee implements punchlog.PunchLogRepository.
func (r *punchLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]punchlog.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.punch_date, p.punch_time, p.kind,
		       p.device_info, p.ip_address, p.selfie_url, p.created_at, e.name
		FROM punch_logs p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.punch_date DESC, p.punch_time DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch logs: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// ListRange implements punchlog.PunchLogRepository.
func (r *punchLogRepository) ListRange(ctx context.Context, start, end string) ([]punchlog.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.employee_id, p.punch_date, p.punch_time, p.kind,
		       p.device_info, p.ip_address, p.selfie_url, p.created_at, e.name
		FROM punch_logs p
		JOIN employees e ON e.id = p.employee_id
	`)

	var args []any
	var conds []string
	if start != "" {
		args = append(args, start)
		conds = append(conds, fmt.Sprintf("p.punch_date >= $%d", len(args)))
	}
	if end != "" {
		args = append(args, end)
		conds = append(conds, fmt.Sprintf("p.punch_date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY p.punch_date DESC, p.punch_time DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch logs: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// LatestByEmployee implements punchlog.PunchLogRepository.
func (r *punchLogRepository) LatestByEmployee(ctx context.Context, employeeID string) (punchlog.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.punch_date, p.punch_time, p.kind,
		       p.device_info, p.ip_address, p.selfie_url, p.created_at, e.name
		FROM punch_logs p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.punch_date DESC, p.punch_time DESC
		LIMIT 1
	`

	var event punchlog.PunchEvent
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&event.ID, &event.EmployeeID, &event.Date, &event.Time, &event.Kind,
		&event.DeviceInfo, &event.IPAddress, &event.SelfieURL, &event.CreatedAt,
		&event.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punchlog.PunchEvent{}, punchlog.ErrPunchNotFound
		}
		return punchlog.PunchEvent{}, fmt.Errorf("failed to get latest punch log: %w", err)
	}

	return event, nil
}

// Delete implements punchlog.PunchLogRepository.
func (r *punchLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punch_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punchlog.ErrPunchNotFound
	}

	return nil
}

func scanPunchEvents(rows pgx.Rows) ([]punchlog.PunchEvent, error) {
	var events []punchlog.PunchEvent
	for rows.Next() {
		var event punchlog.PunchEvent
		if err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.Date, &event.Time, &event.Kind,
			&event.DeviceInfo, &event.IPAddress, &event.SelfieURL, &event.CreatedAt,
			&event.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch log: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
