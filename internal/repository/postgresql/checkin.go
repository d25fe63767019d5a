package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
)

type checkinRepositoryImpl struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) attendance.CheckinRepository {
	return &checkinRepositoryImpl{db: db}
}

const checkinSelect = `
	SELECT ch.id, ch.shift_id, ch.operator_id, ch.check_in, ch.check_out,
		   ch.check_in_latitude, ch.check_in_longitude,
		   ch.check_out_latitude, ch.check_out_longitude,
		   ch.notes, ch.created_at, ch.updated_at,
		   o.full_name AS operator_name,
		   s.date AS shift_date, s.start_time, s.end_time,
		   e.title AS event_title, e.address AS event_address,
		   c.name AS client_name, b.name AS brand_name
	FROM checkins ch
	JOIN operators o ON o.id = ch.operator_id
	JOIN shifts s ON s.id = ch.shift_id
	JOIN events e ON e.id = s.event_id
	JOIN clients c ON c.id = e.client_id
	LEFT JOIN brands b ON b.id = e.brand_id
`

func scanCheckin(row pgx.Row) (attendance.Checkin, error) {
	var ch attendance.Checkin
	err := row.Scan(
		&ch.ID,
		&ch.ShiftID,
		&ch.OperatorID,
		&ch.CheckIn,
		&ch.CheckOut,
		&ch.CheckInLatitude,
		&ch.CheckInLongitude,
		&ch.CheckOutLatitude,
		&ch.CheckOutLongitude,
		&ch.Notes,
		&ch.CreatedAt,
		&ch.UpdatedAt,
		&ch.OperatorName,
		&ch.ShiftDate,
		&ch.StartTime,
		&ch.EndTime,
		&ch.EventTitle,
		&ch.EventAddress,
		&ch.ClientName,
		&ch.BrandName,
	)
	return ch, err
}

// Create implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) Create(ctx context.Context, newCheckin attendance.Checkin) (attendance.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkins (shift_id, operator_id, check_in,
			check_in_latitude, check_in_longitude, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		newCheckin.ShiftID,
		newCheckin.OperatorID,
		newCheckin.CheckIn,
		newCheckin.CheckInLatitude,
		newCheckin.CheckInLongitude,
		newCheckin.Notes,
	).Scan(&id)
	if err != nil {
		return attendance.Checkin{}, fmt.Errorf("create checkin: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanCheckin(q.QueryRow(ctx, checkinSelect+` WHERE ch.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Checkin{}, attendance.ErrCheckinNotFound
		}
		return attendance.Checkin{}, fmt.Errorf("get checkin by id: %w", err)
	}

	return found, nil
}

// GetByShiftAndOperator implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) GetByShiftAndOperator(ctx context.Context, shiftID, operatorID string) (*attendance.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanCheckin(q.QueryRow(ctx, checkinSelect+` WHERE ch.shift_id = $1 AND ch.operator_id = $2`, shiftID, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkin by shift and operator: %w", err)
	}

	return &found, nil
}

// Update implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) Update(ctx context.Context, ch attendance.Checkin) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkins
		SET check_in = $1, check_out = $2,
			check_in_latitude = $3, check_in_longitude = $4,
			check_out_latitude = $5, check_out_longitude = $6,
			notes = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		ch.CheckIn,
		ch.CheckOut,
		ch.CheckInLatitude,
		ch.CheckInLongitude,
		ch.CheckOutLatitude,
		ch.CheckOutLongitude,
		ch.Notes,
		ch.ID,
	)
	if err != nil {
		return fmt.Errorf("update checkin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrCheckinNotFound
	}

	return nil
}

// ListByOperator implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) ListByOperator(ctx context.Context, operatorID string, startDate, endDate *time.Time) ([]attendance.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := checkinSelect + ` WHERE ch.operator_id = $1`
	args := []interface{}{operatorID}
	argIdx := 2

	if startDate != nil {
		query += fmt.Sprintf(` AND s.date >= $%d`, argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil {
		query += fmt.Sprintf(` AND s.date <= $%d`, argIdx)
		args = append(args, *endDate)
		argIdx++
	}

	query += ` ORDER BY s.date DESC, s.start_time DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkins by operator: %w", err)
	}
	defer rows.Close()

	return collectCheckins(rows)
}

// ListByShiftIDs implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) ListByShiftIDs(ctx context.Context, shiftIDs []string) ([]attendance.Checkin, error) {
	if len(shiftIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := checkinSelect + ` WHERE ch.shift_id = ANY($1) ORDER BY ch.created_at ASC`

	rows, err := q.Query(ctx, query, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("list checkins by shift ids: %w", err)
	}
	defer rows.Close()

	return collectCheckins(rows)
}

// DeleteByShift implements attendance.CheckinRepository.
func (r *checkinRepositoryImpl) DeleteByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM checkins WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("delete checkins by shift: %w", err)
	}

	return nil
}

func collectCheckins(rows pgx.Rows) ([]attendance.Checkin, error) {
	var checkins []attendance.Checkin
	for rows.Next() {
		ch, err := scanCheckin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		checkins = append(checkins, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkins: %w", err)
	}
	return checkins, nil
}
