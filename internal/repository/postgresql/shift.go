package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// operator_ids is a text[] column: one element per slot, '' for open slots.
const shiftSelect = `
	SELECT s.id, s.event_id, s.date, s.start_time, s.end_time, s.pause_hours,
		   s.required_operators, s.operator_ids, s.team_leader_id,
		   s.activity_type, s.role, s.notes, s.created_at, s.updated_at,
		   e.title AS event_title, e.start_date AS event_start
	FROM shifts s
	JOIN events e ON e.id = s.event_id
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID,
		&sh.EventID,
		&sh.Date,
		&sh.StartTime,
		&sh.EndTime,
		&sh.PauseHours,
		&sh.RequiredOperators,
		&sh.OperatorIDs,
		&sh.TeamLeaderID,
		&sh.ActivityType,
		&sh.Role,
		&sh.Notes,
		&sh.CreatedAt,
		&sh.UpdatedAt,
		&sh.EventTitle,
		&sh.EventStart,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (event_id, date, start_time, end_time, pause_hours,
			required_operators, operator_ids, team_leader_id, activity_type, role, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		newShift.EventID,
		newShift.Date,
		newShift.StartTime,
		newShift.EndTime,
		newShift.PauseHours,
		newShift.RequiredOperators,
		newShift.OperatorIDs,
		newShift.TeamLeaderID,
		newShift.ActivityType,
		newShift.Role,
		newShift.Notes,
	).Scan(&id)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("create shift: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanShift(q.QueryRow(ctx, shiftSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("get shift by id: %w", err)
	}

	return found, nil
}

// ListByEvent implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEvent(ctx context.Context, eventID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + ` WHERE s.event_id = $1 ORDER BY s.date ASC, s.start_time ASC`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list shifts by event: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListByDateRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByDateRange(ctx context.Context, start, end *time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		query += fmt.Sprintf(` AND s.date >= $%d`, argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		query += fmt.Sprintf(` AND s.date <= $%d`, argIdx)
		args = append(args, *end)
		argIdx++
	}

	query += ` ORDER BY s.date ASC, s.start_time ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts by date range: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListByOperator implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByOperator(ctx context.Context, operatorID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + ` WHERE $1 = ANY(s.operator_ids) ORDER BY s.date ASC, s.start_time ASC`

	rows, err := q.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("list shifts by operator: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET date = $1, start_time = $2, end_time = $3, pause_hours = $4,
			required_operators = $5, operator_ids = $6, team_leader_id = $7,
			activity_type = $8, role = $9, notes = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		sh.Date,
		sh.StartTime,
		sh.EndTime,
		sh.PauseHours,
		sh.RequiredOperators,
		sh.OperatorIDs,
		sh.TeamLeaderID,
		sh.ActivityType,
		sh.Role,
		sh.Notes,
		sh.ID,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// UpdateSlots implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdateSlots(ctx context.Context, shiftID string, operatorIDs []string, teamLeaderID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET operator_ids = $1, team_leader_id = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, operatorIDs, teamLeaderID, shiftID)
	if err != nil {
		return fmt.Errorf("update shift slots: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return shifts, nil
}
