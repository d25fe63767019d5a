package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/event"
	"github.com/turnario/turnario-backend-go/internal/domain/notification"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
	"github.com/turnario/turnario-backend-go/internal/pkg/email"
	"github.com/turnario/turnario-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db              *database.DB
	shiftRepo       shift.ShiftRepository
	eventRepo       event.EventRepository
	operatorRepo    operator.OperatorRepository
	checkinRepo     attendance.CheckinRepository
	notificationSvc notification.Service
	emailSvc        email.EmailService
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	eventRepo event.EventRepository,
	operatorRepo operator.OperatorRepository,
	checkinRepo attendance.CheckinRepository,
	notificationSvc notification.Service,
	emailSvc email.EmailService,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		shiftRepo:       shiftRepo,
		eventRepo:       eventRepo,
		operatorRepo:    operatorRepo,
		checkinRepo:     checkinRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
	}
}

// Create implements shift.ShiftService. The shift starts with
// RequiredOperators open slots.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	ev, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if date.Before(ev.StartDate) {
		return shift.ShiftResponse{}, shift.ErrShiftBeforeEventStart
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		EventID:           req.EventID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		PauseHours:        req.PauseHours,
		RequiredOperators: req.RequiredOperators,
		OperatorIDs:       make([]string, req.RequiredOperators),
		ActivityType:      req.ActivityType,
		Role:              req.Role,
		Notes:             req.Notes,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(found), nil
}

// Update implements shift.ShiftService. Assigned operators are notified of
// schedule changes.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		if sh.EventStart != nil && date.Before(*sh.EventStart) {
			return shift.ShiftResponse{}, shift.ErrShiftBeforeEventStart
		}
		sh.Date = date
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.PauseHours != nil {
		sh.PauseHours = *req.PauseHours
	}
	if req.ActivityType != nil {
		sh.ActivityType = *req.ActivityType
	}
	if req.Role != nil {
		sh.Role = *req.Role
	}
	if req.Notes != nil {
		sh.Notes = req.Notes
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	// Tell everyone already on the shift that the schedule moved
	for _, opID := range updated.OperatorIDs {
		if opID == "" {
			continue
		}
		s.queueNotification(ctx, opID, notification.TypeShiftUpdated,
			"Turno aggiornato",
			fmt.Sprintf("Il turno del %s è stato modificato", updated.Date.Format("02/01/2006")),
			updated)
	}

	return shift.NewShiftResponse(updated), nil
}

// AssignSlot implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignSlot(ctx context.Context, req shift.AssignSlotRequest) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.SlotIndex < 0 || req.SlotIndex >= len(sh.OperatorIDs) {
		return shift.ShiftResponse{}, shift.ErrSlotIndexOutOfRange
	}

	previous := sh.OperatorIDs[req.SlotIndex]

	newOperatorID := ""
	if req.OperatorID != nil {
		newOperatorID = *req.OperatorID
	}

	var assignedOp operator.Operator
	if newOperatorID != "" {
		// One slot per operator per shift
		for i, opID := range sh.OperatorIDs {
			if i != req.SlotIndex && opID == newOperatorID {
				return shift.ShiftResponse{}, shift.ErrOperatorAlreadyInShift
			}
		}

		assignedOp, err = s.operatorRepo.GetByID(ctx, newOperatorID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if !assignedOp.IsActive {
			return shift.ShiftResponse{}, operator.ErrOperatorInactive
		}
	}

	sh.OperatorIDs[req.SlotIndex] = newOperatorID

	// Clearing the team leader's slot clears the flag too
	teamLeaderID := sh.TeamLeaderID
	if teamLeaderID != nil && previous == *teamLeaderID && newOperatorID != previous {
		teamLeaderID = nil
	}

	if err := s.shiftRepo.UpdateSlots(ctx, sh.ID, sh.OperatorIDs, teamLeaderID); err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.shiftRepo.GetByID(ctx, sh.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if previous != "" && previous != newOperatorID {
		s.queueNotification(ctx, previous, notification.TypeShiftUnassigned,
			"Turno rimosso",
			fmt.Sprintf("Sei stato rimosso dal turno del %s", updated.Date.Format("02/01/2006")),
			updated)
	}

	if newOperatorID != "" && newOperatorID != previous {
		s.queueNotification(ctx, newOperatorID, notification.TypeShiftAssigned,
			"Nuovo turno assegnato",
			fmt.Sprintf("Ti è stato assegnato un turno il %s", updated.Date.Format("02/01/2006")),
			updated)

		if s.emailSvc != nil {
			eventTitle := ""
			if updated.EventTitle != nil {
				eventTitle = *updated.EventTitle
			}
			ev, err := s.eventRepo.GetByID(ctx, updated.EventID)
			address := ""
			if err == nil {
				address = ev.Address
			}
			if err := s.emailSvc.SendShiftAssignment(
				assignedOp.Email,
				assignedOp.FullName,
				eventTitle,
				updated.Date.Format("02/01/2006"),
				updated.StartTime,
				updated.EndTime,
				address,
			); err != nil {
				slog.Error("Failed to send shift assignment email",
					"operator_id", newOperatorID,
					"shift_id", updated.ID,
					"error", err)
			}
		}
	}

	return shift.NewShiftResponse(updated), nil
}

// SetTeamLeader implements shift.ShiftService.
func (s *ShiftServiceImpl) SetTeamLeader(ctx context.Context, req shift.SetTeamLeaderRequest) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.OperatorID != nil && *req.OperatorID == "" {
		req.OperatorID = nil
	}

	if req.OperatorID != nil {
		found := false
		for _, opID := range sh.OperatorIDs {
			if opID == *req.OperatorID {
				found = true
				break
			}
		}
		if !found {
			return shift.ShiftResponse{}, shift.ErrOperatorNotInShift
		}
	}

	if err := s.shiftRepo.UpdateSlots(ctx, sh.ID, sh.OperatorIDs, req.OperatorID); err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.shiftRepo.GetByID(ctx, sh.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.OperatorID != nil {
		s.queueNotification(ctx, *req.OperatorID, notification.TypeTeamLeaderSet,
			"Sei il capo squadra",
			fmt.Sprintf("Sei stato nominato capo squadra per il turno del %s", updated.Date.Format("02/01/2006")),
			updated)
	}

	return shift.NewShiftResponse(updated), nil
}

// Delete implements shift.ShiftService. The shift and its punch records go
// in the same transaction.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.checkinRepo.DeleteByShift(txCtx, id); err != nil {
			return err
		}
		return s.shiftRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	for _, opID := range sh.OperatorIDs {
		if opID == "" {
			continue
		}
		s.queueNotification(ctx, opID, notification.TypeShiftUnassigned,
			"Turno annullato",
			fmt.Sprintf("Il turno del %s è stato annullato", sh.Date.Format("02/01/2006")),
			sh)
	}

	return nil
}

func (s *ShiftServiceImpl) queueNotification(ctx context.Context, recipientID string, notifType notification.NotificationType, title, message string, sh shift.Shift) {
	if s.notificationSvc == nil {
		return
	}
	err := s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"shift_id":   sh.ID,
			"event_id":   sh.EventID,
			"date":       sh.Date.Format("2006-01-02"),
			"start_time": sh.StartTime,
		},
	})
	if err != nil {
		slog.Error("Failed to queue shift notification",
			"recipient_id", recipientID,
			"type", notifType,
			"error", err)
	}
}
