package userdetail

import (
	"context"
	"fmt"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/attendance"
	"memberdesk/internal/subscription"

	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound = fmt.Errorf("user %w", api.ErrNotFound)
	ErrNoMatch      = fmt.Errorf("no users matching the criteria: %w", api.ErrNotFound)
)

type Service interface {
	Search(ctx context.Context, tenantID string, req SearchRequest) ([]MemberSummary, error)
	Detail(ctx context.Context, tenantID string, userID int) (*MemberDetail, error)
}

type service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *service) Search(ctx context.Context, tenantID string, req SearchRequest) ([]MemberSummary, error) {
	members, err := s.repo.Search(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, ErrNoMatch
	}

	ids := make([]int, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	byUser, err := s.subscriptions(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	results := make([]MemberSummary, len(members))
	for i, m := range members {
		results[i] = MemberSummary{Member: m, Subscriptions: byUser[m.ID]}
	}
	return results, nil
}

func (s *service) Detail(ctx context.Context, tenantID string, userID int) (*MemberDetail, error) {
	m, err := s.repo.GetMember(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	byUser, err := s.subscriptions(ctx, tenantID, []int{userID})
	if err != nil {
		return nil, err
	}

	now := s.clock()
	a, err := s.repo.Attendance(ctx, tenantID, userID, api.DateOf(now))
	if err != nil {
		return nil, err
	}

	d := &MemberDetail{Member: *m, Subscriptions: byUser[userID]}
	if a != nil {
		d.CheckedIn = true
		d.CheckedOut = a.CheckOut != nil
		d.Attendance = &TodayAttendance{
			CheckIn:    a.CheckIn.In(s.loc).Format(attendance.TimeLayout),
			CheckInBy:  a.CheckInBy,
			CheckOutBy: a.CheckOutBy,
		}
		if a.CheckOut != nil {
			out := a.CheckOut.In(s.loc).Format(attendance.TimeLayout)
			d.Attendance.CheckOut = &out
		}
	}
	return d, nil
}

// subscriptions resolves every mapping of the given members, keyed by
// member id. Members without mappings get an empty list.
func (s *service) subscriptions(ctx context.Context, tenantID string, userIDs []int) (map[int][]Subscription, error) {
	rows, err := s.repo.Subscriptions(ctx, tenantID, userIDs)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	byUser := make(map[int][]Subscription, len(userIDs))
	for _, id := range userIDs {
		byUser[id] = []Subscription{}
	}
	for _, row := range rows {
		b := subscription.Resolve(subscription.Mapping{
			ID:         row.ID,
			Price:      row.Price,
			ValidUntil: row.ValidUntil,
			IsActive:   row.IsActive,
		}, []decimal.Decimal{row.TotalPaid}, now)

		byUser[row.UserID] = append(byUser[row.UserID], Subscription{
			ID:         row.ID,
			PlanName:   row.PlanName,
			Shortcode:  row.Shortcode,
			Status:     b.Status,
			DueDate:    b.DueDate,
			PendingDue: b.PendingDue,
		})
	}
	return byUser, nil
}
