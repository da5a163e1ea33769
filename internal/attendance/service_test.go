package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UserExists(ctx context.Context, tenantID string, userID int) (bool, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SystemUserExists(ctx context.Context, tenantID string, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CheckIn(ctx context.Context, a *Attendance) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRepository) GetForDay(ctx context.Context, tenantID string, userID int, day api.Date) (*Attendance, error) {
	args := m.Called(ctx, tenantID, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attendance), args.Error(1)
}

func (m *MockRepository) CheckOut(ctx context.Context, a *Attendance) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRepository) List(ctx context.Context, tenantID string, filter ListFilter) ([]Entry, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

// memRepo keeps rows in memory and enforces one row per member and day the
// way the unique key does.
type memRepo struct {
	rows   []*Attendance
	nextID int
}

func (r *memRepo) UserExists(ctx context.Context, tenantID string, userID int) (bool, error) {
	return true, nil
}

func (r *memRepo) SystemUserExists(ctx context.Context, tenantID string, id int) (bool, error) {
	return true, nil
}

func (r *memRepo) find(tenantID string, userID int, day api.Date) *Attendance {
	for _, a := range r.rows {
		if a.TenantID == tenantID && a.UserID == userID && a.AttendanceDate.Equal(day.Time) {
			return a
		}
	}
	return nil
}

func (r *memRepo) CheckIn(ctx context.Context, a *Attendance) error {
	if r.find(a.TenantID, a.UserID, a.AttendanceDate) != nil {
		return ErrAlreadyCheckedIn
	}
	r.nextID++
	a.ID = r.nextID
	row := *a
	r.rows = append(r.rows, &row)
	return nil
}

func (r *memRepo) GetForDay(ctx context.Context, tenantID string, userID int, day api.Date) (*Attendance, error) {
	a := r.find(tenantID, userID, day)
	if a == nil {
		return nil, ErrNotCheckedIn
	}
	row := *a
	return &row, nil
}

func (r *memRepo) CheckOut(ctx context.Context, a *Attendance) error {
	for _, row := range r.rows {
		if row.ID == a.ID && row.CheckOut == nil {
			row.CheckOut, row.CheckOutBy = a.CheckOut, a.CheckOutBy
			return nil
		}
	}
	return ErrAlreadyCheckedOut
}

func (r *memRepo) List(ctx context.Context, tenantID string, filter ListFilter) ([]Entry, error) {
	return nil, nil
}

type recordingPublisher struct {
	keys []string
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey, tenantID string, data interface{}) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *recordingPublisher) Close() {}

var ist = time.FixedZone("IST", 5*3600+1800)

func newTestService(repo Repository, pub events.Publisher, now time.Time) *service {
	s := NewService(repo, pub, ist).(*service)
	s.now = func() time.Time { return now }
	return s
}

func intp(v int) *int { return &v }

func TestService_Mark_DayLifecycle(t *testing.T) {
	repo := &memRepo{}
	pub := &recordingPublisher{}
	morning := time.Date(2025, 3, 10, 7, 5, 0, 0, ist)
	s := newTestService(repo, pub, morning)
	ctx := context.Background()

	a, checkedIn, err := s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	require.NoError(t, err)
	assert.True(t, checkedIn)
	assert.Equal(t, api.NewDate(2025, 3, 10), a.AttendanceDate)
	assert.Nil(t, a.CheckOut)

	_, _, err = s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	s.now = func() time.Time { return morning.Add(95 * time.Minute) }
	a, checkedIn, err = s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckOutBy: intp(4)})
	require.NoError(t, err)
	assert.False(t, checkedIn)
	require.NotNil(t, a.CheckOut)
	assert.Equal(t, 4, *a.CheckOutBy)

	_, _, err = s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckOutBy: intp(4)})
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	_, _, err = s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	assert.Equal(t, []string{events.AttendanceCheckedIn, events.AttendanceCheckedOut}, pub.keys)
}

func TestService_Mark_NextDayStartsOver(t *testing.T) {
	repo := &memRepo{}
	late := time.Date(2025, 3, 10, 23, 50, 0, 0, ist)
	s := newTestService(repo, &recordingPublisher{}, late)
	ctx := context.Background()

	_, _, err := s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	require.NoError(t, err)

	// 00:10 IST on the 11th is still the 10th in UTC.
	s.now = func() time.Time { return time.Date(2025, 3, 10, 18, 40, 0, 0, time.UTC) }
	a, _, err := s.Mark(ctx, "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	require.NoError(t, err)
	assert.Equal(t, api.NewDate(2025, 3, 11), a.AttendanceDate)
}

func TestService_Mark_CheckOutWithoutCheckIn(t *testing.T) {
	s := newTestService(&memRepo{}, &recordingPublisher{}, time.Date(2025, 3, 10, 9, 0, 0, 0, ist))

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckOutBy: intp(4)})

	assert.ErrorIs(t, err, ErrNotCheckedIn)
	assert.Equal(t, 400, api.StatusCode(err))
}

func TestService_Mark_ActorRules(t *testing.T) {
	s := newTestService(new(MockRepository), &recordingPublisher{}, time.Now())

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101})
	assert.ErrorIs(t, err, ErrActorRequired)

	_, _, err = s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckInBy: intp(3), CheckOutBy: intp(3)})
	assert.ErrorIs(t, err, ErrActorRequired)
}

func TestService_Mark_UnknownUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UserExists", mock.Anything, "T1", 101).Return(false, nil)
	s := newTestService(repo, &recordingPublisher{}, time.Now())

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})

	assert.ErrorIs(t, err, ErrUserNotFound)
	repo.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything)
}

func TestService_Mark_UnknownSystemUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UserExists", mock.Anything, "T1", 101).Return(true, nil)
	repo.On("SystemUserExists", mock.Anything, "T1", 99).Return(false, nil)
	s := newTestService(repo, &recordingPublisher{}, time.Now())

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckOutBy: intp(99)})

	assert.ErrorIs(t, err, api.ErrValidation)
	assert.EqualError(t, err, "CheckOutBy is not a system user of this tenant")
	repo.AssertNotCalled(t, "GetForDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Mark_ConcurrentCheckOutLoses(t *testing.T) {
	repo := new(MockRepository)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	repo.On("UserExists", mock.Anything, "T1", 101).Return(true, nil)
	repo.On("SystemUserExists", mock.Anything, "T1", 4).Return(true, nil)
	repo.On("GetForDay", mock.Anything, "T1", 101, api.NewDate(2025, 3, 10)).
		Return(&Attendance{ID: 7, TenantID: "T1", UserID: 101}, nil)
	repo.On("CheckOut", mock.Anything, mock.Anything).Return(ErrAlreadyCheckedOut)
	s := newTestService(repo, &recordingPublisher{}, now)

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckOutBy: intp(4)})

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestService_Mark_StoreErrorPassesThrough(t *testing.T) {
	repo := new(MockRepository)
	boom := errors.New("connection reset")
	repo.On("UserExists", mock.Anything, "T1", 101).Return(false, boom)
	s := newTestService(repo, &recordingPublisher{}, time.Now())

	_, _, err := s.Mark(context.Background(), "T1", MarkRequest{UserID: 101, CheckInBy: intp(3)})
	assert.Equal(t, boom, err)
}

func TestService_List_FormatsInBusinessTimezone(t *testing.T) {
	repo := new(MockRepository)
	checkIn := time.Date(2025, 3, 10, 1, 35, 0, 0, time.UTC)
	checkOut := checkIn.Add(95 * time.Minute)
	outBy, outName := 4, "Ravi"

	repo.On("List", mock.Anything, "T1", ListFilter{UserID: 101}).Return([]Entry{
		{
			Attendance: Attendance{ID: 7, UserID: 101, AttendanceDate: api.NewDate(2025, 3, 10),
				CheckIn: checkIn, CheckInBy: 3, CheckOut: &checkOut, CheckOutBy: &outBy},
			UserName: "Asha", CheckInByName: "Meera", CheckOutByName: &outName,
		},
		{
			Attendance: Attendance{ID: 8, UserID: 101, AttendanceDate: api.NewDate(2025, 3, 11),
				CheckIn: checkIn.Add(24 * time.Hour), CheckInBy: 3},
			UserName: "Asha", CheckInByName: "Meera",
		},
	}, nil)
	s := newTestService(repo, &recordingPublisher{}, time.Now())

	records, err := s.List(context.Background(), "T1", ListFilter{UserID: 101})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "10 Mar 2025", records[0].AttendanceDate)
	assert.Equal(t, "10 Mar 2025, 07:05", records[0].CheckIn)
	require.NotNil(t, records[0].CheckOut)
	assert.Equal(t, "10 Mar 2025, 08:40", *records[0].CheckOut)
	assert.Equal(t, "Ravi", *records[0].CheckOutByName)
	assert.Nil(t, records[1].CheckOut)
}
