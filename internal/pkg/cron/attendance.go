package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/notification"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	"github.com/turnario/turnario-backend-go/internal/pkg/email"
)

type AttendanceJobs struct {
	shiftRepo       shift.ShiftRepository
	checkinRepo     attendance.CheckinRepository
	operatorRepo    operator.OperatorRepository
	notificationSvc notification.Service
	emailSvc        email.EmailService
}

func NewAttendanceJobs(
	shiftRepo shift.ShiftRepository,
	checkinRepo attendance.CheckinRepository,
	operatorRepo operator.OperatorRepository,
	notificationSvc notification.Service,
	emailSvc email.EmailService,
) *AttendanceJobs {
	return &AttendanceJobs{
		shiftRepo:       shiftRepo,
		checkinRepo:     checkinRepo,
		operatorRepo:    operatorRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missed_checkin_digest", 1*time.Hour, j.MissedCheckinDigest)
}

// MissedCheckinDigest reports yesterday's shifts where an assigned operator never checked in.
// Planners get an in-app notification and an email summary.
func (j *AttendanceJobs) MissedCheckinDigest(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting missed check-in digest job")

	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	dayEnd := yesterday.AddDate(0, 0, 1).Add(-time.Second)

	shifts, err := j.shiftRepo.ListByDateRange(ctx, &yesterday, &dayEnd)
	if err != nil {
		return fmt.Errorf("failed to list shifts: %w", err)
	}
	if len(shifts) == 0 {
		slog.Info("Cron: No shifts scheduled yesterday")
		return nil
	}

	shiftIDs := make([]string, 0, len(shifts))
	operatorIDSet := make(map[string]struct{})
	for _, s := range shifts {
		shiftIDs = append(shiftIDs, s.ID)
		for _, opID := range s.OperatorIDs {
			if !shift.LooksUnassigned(opID) {
				operatorIDSet[opID] = struct{}{}
			}
		}
	}

	checkins, err := j.checkinRepo.ListByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return fmt.Errorf("failed to list check-ins: %w", err)
	}

	// Index check-ins by shift and operator
	checkedIn := make(map[string]struct{}, len(checkins))
	for _, c := range checkins {
		checkedIn[c.ShiftID+"|"+c.OperatorID] = struct{}{}
	}

	operatorIDs := make([]string, 0, len(operatorIDSet))
	for id := range operatorIDSet {
		operatorIDs = append(operatorIDs, id)
	}
	operators, err := j.operatorRepo.GetByIDs(ctx, operatorIDs)
	if err != nil {
		return fmt.Errorf("failed to load operators: %w", err)
	}

	var entries []email.MissedCheckinEntry
	for _, s := range shifts {
		for _, opID := range s.OperatorIDs {
			if shift.LooksUnassigned(opID) {
				continue
			}
			if _, ok := checkedIn[s.ID+"|"+opID]; ok {
				continue
			}
			name := opID
			if op, ok := operators[opID]; ok {
				name = op.FullName
			}
			eventTitle := ""
			if s.EventTitle != nil {
				eventTitle = *s.EventTitle
			}
			entries = append(entries, email.MissedCheckinEntry{
				OperatorName: name,
				EventTitle:   eventTitle,
				ShiftDate:    s.Date.Format("02/01/2006"),
				StartTime:    s.StartTime,
			})
		}
	}

	if len(entries) == 0 {
		slog.Info("Cron: All assigned operators checked in yesterday")
		return nil
	}

	plannerRole := operator.RolePlanner
	planners, err := j.operatorRepo.List(ctx, &plannerRole)
	if err != nil {
		return fmt.Errorf("failed to list planners: %w", err)
	}

	reportDate := yesterday.Format("02/01/2006")

	if j.notificationSvc != nil {
		reqs := make([]notification.CreateNotificationRequest, 0, len(planners))
		for _, planner := range planners {
			reqs = append(reqs, notification.CreateNotificationRequest{
				RecipientID: planner.ID,
				Type:        notification.TypeMissedCheckins,
				Title:       "Presenze mancanti",
				Message:     fmt.Sprintf("%d operatori non hanno effettuato il check-in il %s", len(entries), reportDate),
				Data: map[string]interface{}{
					"count": len(entries),
					"date":  yesterday.Format("2006-01-02"),
				},
			})
		}
		if err := j.notificationSvc.QueueBulkNotification(ctx, reqs); err != nil {
			slog.Error("Cron: Failed to queue digest notifications", "error", err)
		}
	}

	for _, planner := range planners {
		if j.emailSvc != nil {
			if err := j.emailSvc.SendMissedCheckinDigest(planner.Email, planner.FullName, reportDate, entries); err != nil {
				slog.Error("Cron: Failed to send digest email",
					"planner_id", planner.ID,
					"error", err)
			}
		}
	}

	slog.Info("Cron: Missed check-in digest sent", "missed_count", len(entries), "planner_count", len(planners))
	return nil
}
