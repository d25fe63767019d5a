package event

import (
	"context"
	"fmt"
	"time"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
	"github.com/turnario/turnario-backend-go/internal/domain/event"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/domain/planning"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
)

type EventServiceImpl struct {
	eventRepo    event.EventRepository
	shiftRepo    shift.ShiftRepository
	operatorRepo operator.OperatorRepository
	checkinRepo  attendance.CheckinRepository
}

func NewEventService(
	eventRepo event.EventRepository,
	shiftRepo shift.ShiftRepository,
	operatorRepo operator.OperatorRepository,
	checkinRepo attendance.CheckinRepository,
) event.EventService {
	return &EventServiceImpl{
		eventRepo:    eventRepo,
		shiftRepo:    shiftRepo,
		operatorRepo: operatorRepo,
		checkinRepo:  checkinRepo,
	}
}

// Create implements event.EventService.
func (s *EventServiceImpl) Create(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.eventRepo.Create(ctx, event.Event{
		Title:        req.Title,
		ClientID:     req.ClientID,
		BrandID:      req.BrandID,
		ActivityCode: req.ActivityCode,
		Address:      req.Address,
		StartDate:    startDate,
		EndDate:      endDate,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	})
	if err != nil {
		return event.EventResponse{}, err
	}

	return toEventResponse(created), nil
}

// List implements event.EventService. Events come back grouped by calendar
// day with billed and assigned hour aggregates recomputed on every call.
func (s *EventServiceImpl) List(ctx context.Context, filter event.ListEventsFilter) (event.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return event.ListEventsResponse{}, err
	}

	start, end := parseRange(filter.StartDate, filter.EndDate)

	events, err := s.eventRepo.List(ctx, start, end)
	if err != nil {
		return event.ListEventsResponse{}, err
	}

	snapshots := make([]planning.EventSnapshot, 0, len(events))
	eventByID := make(map[string]event.Event, len(events))
	for _, ev := range events {
		shifts, err := s.shiftRepo.ListByEvent(ctx, ev.ID)
		if err != nil {
			return event.ListEventsResponse{}, fmt.Errorf("list shifts for event %s: %w", ev.ID, err)
		}
		snapshots = append(snapshots, planning.EventSnapshot{
			EventID: ev.ID,
			Title:   ev.Title,
			Shifts:  shifts,
		})
		eventByID[ev.ID] = ev
	}

	days := planning.FilterDaysByRange(planning.BuildDays(snapshots), start, end)

	response := event.ListEventsResponse{Days: make([]event.DayGroupResponse, 0, len(days))}
	for _, day := range days {
		group := event.DayGroupResponse{
			Date:          day.Date.Format("2006-01-02"),
			Events:        make([]event.EventDayItem, 0, len(day.Events)),
			BilledHours:   planning.FormatHoursTotal(day.BilledHours),
			AssignedHours: planning.FormatHoursTotal(day.AssignedHours),
			OperatorCount: day.OperatorCount,
		}
		for _, view := range day.Events {
			item := event.EventDayItem{
				Event:         toEventResponse(eventByID[view.EventID]),
				Shifts:        make([]shift.ShiftResponse, 0, len(view.Shifts)),
				BilledHours:   planning.FormatHours(view.BilledHours),
				AssignedHours: planning.FormatHours(view.AssignedHours),
			}
			for _, sh := range view.Shifts {
				item.Shifts = append(item.Shifts, shift.NewShiftResponse(sh))
			}
			group.Events = append(group.Events, item)
		}
		response.Days = append(response.Days, group)
	}

	return response, nil
}

// Detail implements event.EventService. The slot table is flattened, named,
// sorted by the requested column and capped by one-decimal footer totals.
func (s *EventServiceImpl) Detail(ctx context.Context, id string, sort planning.SortState) (event.EventDetailResponse, error) {
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return event.EventDetailResponse{}, err
	}

	shifts, err := s.shiftRepo.ListByEvent(ctx, id)
	if err != nil {
		return event.EventDetailResponse{}, err
	}

	// Resolve operator names for all occupied slots
	idSet := make(map[string]struct{})
	shiftIDs := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		shiftIDs = append(shiftIDs, sh.ID)
		for _, opID := range sh.OperatorIDs {
			if opID != "" {
				idSet[opID] = struct{}{}
			}
		}
	}
	ids := make([]string, 0, len(idSet))
	for opID := range idSet {
		ids = append(ids, opID)
	}
	operators, err := s.operatorRepo.GetByIDs(ctx, ids)
	if err != nil {
		return event.EventDetailResponse{}, err
	}

	checkins, err := s.checkinRepo.ListByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return event.EventDetailResponse{}, err
	}
	checkinByKey := make(map[string]string, len(checkins))
	for _, ch := range checkins {
		checkinByKey[ch.ShiftID+"|"+ch.OperatorID] = ch.ID
	}

	rows := make([]planning.DetailRow, 0)
	for _, sh := range shifts {
		hours := planning.FormatHours(planning.ShiftBilledHours(sh))
		for _, slot := range sh.Slots() {
			row := planning.DetailRow{
				ShiftID:      slot.ShiftID,
				SlotIndex:    slot.SlotIndex,
				Date:         slot.Date.Format("2006-01-02"),
				StartTime:    slot.StartTime,
				EndTime:      slot.EndTime,
				ActivityType: slot.ActivityType,
				Role:         slot.Role,
				OperatorID:   slot.OperatorID,
				Hours:        hours,
				IsTeamLeader: slot.IsTeamLeader,
			}
			if op, ok := operators[slot.OperatorID]; ok {
				row.OperatorName = planning.DisplayName(op.FullName)
			}
			if checkinID, ok := checkinByKey[slot.ShiftID+"|"+slot.OperatorID]; ok && slot.OperatorID != "" {
				row.CheckInID = checkinID
			}
			rows = append(rows, row)
		}
	}

	if sort.Key == "" {
		sort = planning.SortState{Key: planning.SortByDate, Dir: planning.SortAsc}
	}
	if sort.Dir == "" {
		sort.Dir = planning.SortAsc
	}
	planning.SortRows(rows, sort.Key, sort.Dir)

	billed, assigned := planning.EventTotals(shifts)

	response := event.EventDetailResponse{
		Event:              toEventResponse(ev),
		Rows:               make([]event.SlotRowResponse, 0, len(rows)),
		Sort:               sort,
		TotalBilledHours:   planning.FormatHoursTotal(billed),
		TotalAssignedHours: planning.FormatHoursTotal(assigned),
	}
	for _, row := range rows {
		response.Rows = append(response.Rows, event.SlotRowResponse{
			ShiftID:      row.ShiftID,
			SlotIndex:    row.SlotIndex,
			Date:         row.Date,
			StartTime:    row.StartTime,
			EndTime:      row.EndTime,
			ActivityType: row.ActivityType,
			Role:         row.Role,
			OperatorID:   row.OperatorID,
			OperatorName: row.OperatorName,
			IsAssigned:   row.OperatorID != "",
			IsTeamLeader: row.IsTeamLeader,
			Hours:        row.Hours,
		})
	}

	return response, nil
}

// Update implements event.EventService.
func (s *EventServiceImpl) Update(ctx context.Context, req event.UpdateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	ev, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return event.EventResponse{}, err
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.ClientID != nil {
		ev.ClientID = *req.ClientID
	}
	if req.BrandID != nil {
		ev.BrandID = req.BrandID
	}
	if req.ActivityCode != nil {
		ev.ActivityCode = req.ActivityCode
	}
	if req.Address != nil {
		ev.Address = *req.Address
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		ev.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		ev.EndDate = endDate
	}
	if req.ContactName != nil {
		ev.ContactName = req.ContactName
	}
	if req.ContactPhone != nil {
		ev.ContactPhone = req.ContactPhone
	}
	if req.Notes != nil {
		ev.Notes = req.Notes
	}

	if err := s.eventRepo.Update(ctx, ev); err != nil {
		return event.EventResponse{}, err
	}

	updated, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return event.EventResponse{}, err
	}

	return toEventResponse(updated), nil
}

// Delete implements event.EventService.
func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func toEventResponse(ev event.Event) event.EventResponse {
	return event.EventResponse{
		ID:           ev.ID,
		Title:        ev.Title,
		ClientID:     ev.ClientID,
		ClientName:   ev.ClientName,
		BrandID:      ev.BrandID,
		BrandName:    ev.BrandName,
		ActivityCode: ev.ActivityCode,
		Address:      ev.Address,
		StartDate:    ev.StartDate.Format("2006-01-02"),
		EndDate:      ev.EndDate.Format("2006-01-02"),
		ContactName:  ev.ContactName,
		ContactPhone: ev.ContactPhone,
		Notes:        ev.Notes,
		CreatedAt:    ev.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    ev.UpdatedAt.Format(time.RFC3339),
	}
}

func parseRange(startDate, endDate *string) (*time.Time, *time.Time) {
	var start, end *time.Time
	if startDate != nil && *startDate != "" {
		if t, err := time.Parse("2006-01-02", *startDate); err == nil {
			start = &t
		}
	}
	if endDate != nil && *endDate != "" {
		if t, err := time.Parse("2006-01-02", *endDate); err == nil {
			end = &t
		}
	}
	return start, end
}
