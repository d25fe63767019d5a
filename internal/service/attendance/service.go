package attendance

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/planning"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	checkinRepo attendance.CheckinRepository
	shiftRepo   shift.ShiftRepository
}

func NewAttendanceService(
	checkinRepo attendance.CheckinRepository,
	shiftRepo shift.ShiftRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		checkinRepo: checkinRepo,
		shiftRepo:   shiftRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckinResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckinResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return attendance.CheckinResponse{}, err
	}

	assigned := false
	for _, opID := range sh.OperatorIDs {
		if opID == req.OperatorID {
			assigned = true
			break
		}
	}
	if !assigned {
		return attendance.CheckinResponse{}, attendance.ErrNotAssigned
	}

	existing, err := s.checkinRepo.GetByShiftAndOperator(ctx, req.ShiftID, req.OperatorID)
	if err != nil {
		return attendance.CheckinResponse{}, err
	}
	if existing != nil {
		return attendance.CheckinResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	created, err := s.checkinRepo.Create(ctx, attendance.Checkin{
		ShiftID:          req.ShiftID,
		OperatorID:       req.OperatorID,
		CheckIn:          &now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		Notes:            req.Notes,
	})
	if err != nil {
		return attendance.CheckinResponse{}, err
	}

	return toCheckinResponse(created, now), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckinResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckinResponse{}, err
	}

	existing, err := s.checkinRepo.GetByShiftAndOperator(ctx, req.ShiftID, req.OperatorID)
	if err != nil {
		return attendance.CheckinResponse{}, err
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.CheckinResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.CheckinResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := time.Now().UTC()
	existing.CheckOut = &now
	existing.CheckOutLatitude = req.Latitude
	existing.CheckOutLongitude = req.Longitude
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := s.checkinRepo.Update(ctx, *existing); err != nil {
		return attendance.CheckinResponse{}, err
	}

	updated, err := s.checkinRepo.GetByID(ctx, existing.ID)
	if err != nil {
		return attendance.CheckinResponse{}, err
	}

	return toCheckinResponse(updated, now), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	var startDate, endDate *time.Time
	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, _ := time.Parse("2006-01-02", *filter.StartDate)
		startDate = &parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, _ := time.Parse("2006-01-02", *filter.EndDate)
		endDate = &parsed
	}

	checkins, err := s.checkinRepo.ListByOperator(ctx, filter.OperatorID, startDate, endDate)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	now := time.Now().UTC()
	records := make([]attendance.CheckinResponse, 0, len(checkins))
	for _, ch := range checkins {
		records = append(records, toCheckinResponse(ch, now))
	}

	// The summary card covers the full record set even when a status
	// filter narrows the visible rows
	summary := buildSummary(records)

	status := ""
	if filter.Status != nil {
		status = strings.ToLower(*filter.Status)
	}
	records = planning.FilterByStatus(records, status, func(r attendance.CheckinResponse) string {
		return string(r.Status)
	})

	return attendance.MyAttendanceResponse{
		Records: records,
		Summary: summary,
	}, nil
}

func buildSummary(records []attendance.CheckinResponse) attendance.SummaryResponse {
	completed := 0
	totalHours := 0.0
	for _, r := range records {
		if r.Status != attendance.StatusCompleted {
			continue
		}
		completed++
		totalHours += workedHoursOf(r)
	}

	rate := 0
	if len(records) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(records)) * 100))
	}

	return attendance.SummaryResponse{
		CompletedShifts: completed,
		TotalHours:      int(math.Round(totalHours)),
		CompletionRate:  rate,
	}
}

func workedHoursOf(r attendance.CheckinResponse) float64 {
	if r.CheckInTime == nil || r.CheckOutTime == nil {
		return 0
	}
	in, err1 := time.Parse(time.RFC3339, *r.CheckInTime)
	out, err2 := time.Parse(time.RFC3339, *r.CheckOutTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return attendance.WorkedHours(&in, &out)
}

func toCheckinResponse(ch attendance.Checkin, now time.Time) attendance.CheckinResponse {
	resp := attendance.CheckinResponse{
		ID:                ch.ID,
		ShiftID:           ch.ShiftID,
		OperatorID:        ch.OperatorID,
		OperatorName:      ch.OperatorName,
		StartTime:         ch.StartTime,
		EndTime:           ch.EndTime,
		EventTitle:        ch.EventTitle,
		EventAddress:      ch.EventAddress,
		CheckInLatitude:   ch.CheckInLatitude,
		CheckInLongitude:  ch.CheckInLongitude,
		CheckOutLatitude:  ch.CheckOutLatitude,
		CheckOutLongitude: ch.CheckOutLongitude,
		WorkedHours:       attendance.WorkedHoursLabel(ch.CheckIn, ch.CheckOut),
		Notes:             ch.Notes,
	}

	if ch.ShiftDate != nil {
		date := ch.ShiftDate.Format("2006-01-02")
		resp.ShiftDate = &date
		resp.Status = attendance.ClassifyStatus(*ch.ShiftDate, ch.CheckIn, ch.CheckOut, now)
	} else {
		resp.Status = attendance.ClassifyStatus(now, ch.CheckIn, ch.CheckOut, now)
	}

	if ch.CheckIn != nil {
		ts := ch.CheckIn.Format(time.RFC3339)
		resp.CheckInTime = &ts
	}
	if ch.CheckOut != nil {
		ts := ch.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &ts
	}

	return resp
}
