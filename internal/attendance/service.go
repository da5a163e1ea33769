package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/events"
	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"
)

const (
	eventCheckIn  = "check_in"
	eventCheckOut = "check_out"
)

var (
	ErrUserNotFound      = fmt.Errorf("user %w", api.ErrNotFound)
	ErrAlreadyCheckedIn  = api.Invalid("UserId", "User has already checked in or checked out today.")
	ErrNotCheckedIn      = api.Invalid("UserId", "User has not checked in today.")
	ErrAlreadyCheckedOut = api.Invalid("UserId", "User has already checked out today.")
	ErrActorRequired     = api.Invalid("CheckInBy", "exactly one of CheckInBy or CheckOutBy is required")
)

type Service interface {
	// Mark moves the member's attendance for today one step along
	// NoRecord, CheckedIn, CheckedOut. It reports whether the call checked
	// the member in.
	Mark(ctx context.Context, tenantID string, req MarkRequest) (*Attendance, bool, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Record, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	loc       *time.Location
	now       func() time.Time
}

func NewService(repo Repository, publisher events.Publisher, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *service) Mark(ctx context.Context, tenantID string, req MarkRequest) (*Attendance, bool, error) {
	if (req.CheckInBy == nil) == (req.CheckOutBy == nil) {
		return nil, false, ErrActorRequired
	}

	ok, err := s.repo.UserExists(ctx, tenantID, req.UserID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrUserNotFound
	}

	if req.CheckInBy != nil {
		a, err := s.checkIn(ctx, tenantID, req.UserID, *req.CheckInBy)
		return a, true, err
	}
	a, err := s.checkOut(ctx, tenantID, req.UserID, *req.CheckOutBy)
	return a, false, err
}

func (s *service) checkIn(ctx context.Context, tenantID string, userID, by int) (*Attendance, error) {
	if err := s.requireSystemUser(ctx, tenantID, "CheckInBy", by); err != nil {
		return nil, err
	}

	now := s.clock()
	a := &Attendance{
		TenantID:       tenantID,
		UserID:         userID,
		AttendanceDate: api.DateOf(now),
		CheckIn:        now,
		CheckInBy:      by,
	}
	if err := s.repo.CheckIn(ctx, a); err != nil {
		s.rejected(eventCheckIn, tenantID, userID, err)
		return nil, err
	}

	metrics.RecordAttendance(eventCheckIn, "ok")
	logger.Info("member checked in", "tenant_id", tenantID, "user_id", userID, "attendance_id", a.ID)
	events.Emit(ctx, s.publisher, events.AttendanceCheckedIn, tenantID, events.AttendanceData{
		AttendanceID: a.ID,
		UserID:       userID,
		SystemUserID: by,
		Date:         a.AttendanceDate.Format(api.DateLayout),
		At:           now,
	})
	return a, nil
}

func (s *service) checkOut(ctx context.Context, tenantID string, userID, by int) (*Attendance, error) {
	if err := s.requireSystemUser(ctx, tenantID, "CheckOutBy", by); err != nil {
		return nil, err
	}

	now := s.clock()
	a, err := s.repo.GetForDay(ctx, tenantID, userID, api.DateOf(now))
	if err != nil {
		s.rejected(eventCheckOut, tenantID, userID, err)
		return nil, err
	}
	if a.CheckOut != nil {
		s.rejected(eventCheckOut, tenantID, userID, ErrAlreadyCheckedOut)
		return nil, ErrAlreadyCheckedOut
	}

	a.CheckOut = &now
	a.CheckOutBy = &by
	if err := s.repo.CheckOut(ctx, a); err != nil {
		s.rejected(eventCheckOut, tenantID, userID, err)
		return nil, err
	}

	metrics.RecordAttendance(eventCheckOut, "ok")
	logger.Info("member checked out", "tenant_id", tenantID, "user_id", userID, "attendance_id", a.ID)
	events.Emit(ctx, s.publisher, events.AttendanceCheckedOut, tenantID, events.AttendanceData{
		AttendanceID: a.ID,
		UserID:       userID,
		SystemUserID: by,
		Date:         a.AttendanceDate.Format(api.DateLayout),
		At:           now,
	})
	return a, nil
}

func (s *service) requireSystemUser(ctx context.Context, tenantID, field string, id int) error {
	ok, err := s.repo.SystemUserExists(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return api.Invalid(field, field+" is not a system user of this tenant")
	}
	return nil
}

func (s *service) rejected(event, tenantID string, userID int, err error) {
	if !errors.Is(err, api.ErrValidation) {
		return
	}
	metrics.RecordAttendance(event, "rejected")
	logger.Debug("attendance transition rejected", "tenant_id", tenantID, "user_id", userID, "event", event, "reason", err.Error())
}

func (s *service) List(ctx context.Context, tenantID string, filter ListFilter) ([]Record, error) {
	entries, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		r := Record{
			ID:             e.ID,
			UserID:         e.UserID,
			UserName:       e.UserName,
			AttendanceDate: e.AttendanceDate.String(),
			CheckIn:        e.CheckIn.In(s.loc).Format(TimeLayout),
			CheckInBy:      e.CheckInBy,
			CheckInByName:  e.CheckInByName,
			CheckOutBy:     e.CheckOutBy,
			CheckOutByName: e.CheckOutByName,
		}
		if e.CheckOut != nil {
			out := e.CheckOut.In(s.loc).Format(TimeLayout)
			r.CheckOut = &out
		}
		records = append(records, r)
	}
	return records, nil
}
