package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"memberdesk/internal/metrics"
	"memberdesk/internal/upload"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) CountActive(ctx context.Context, now time.Time) (map[string]int, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func TestJobs_SweepStaging(t *testing.T) {
	fs := afero.NewMemMapFs()
	storage := upload.NewStorage(fs, "/srv/uploads", "https://files.example.com/uploads", 1<<20)

	require.NoError(t, fs.MkdirAll("/srv/uploads/tmp/old", 0o755))
	require.NoError(t, fs.MkdirAll("/srv/uploads/tmp/fresh", 0o755))
	require.NoError(t, fs.Chtimes("/srv/uploads/tmp/old", fixedNow.Add(-2*time.Hour), fixedNow.Add(-2*time.Hour)))
	require.NoError(t, fs.Chtimes("/srv/uploads/tmp/fresh", fixedNow.Add(-10*time.Minute), fixedNow.Add(-10*time.Minute)))

	j := New(storage, new(MockCounter), nil)
	j.now = func() time.Time { return fixedNow }
	j.SweepStaging()

	_, err := fs.Stat("/srv/uploads/tmp/old")
	assert.Error(t, err)
	_, err = fs.Stat("/srv/uploads/tmp/fresh")
	assert.NoError(t, err)
}

func TestJobs_RefreshActiveSubscriptions(t *testing.T) {
	counter := new(MockCounter)
	ist := time.FixedZone("IST", 5*3600+1800)
	j := New(nil, counter, ist)
	j.now = func() time.Time { return fixedNow }

	counter.On("CountActive", mock.Anything, mock.MatchedBy(func(now time.Time) bool {
		return now.Equal(fixedNow) && now.Location() == ist
	})).Return(map[string]int{"T1": 3, "T2": 1}, nil).Once()

	j.RefreshActiveSubscriptions()

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.ActiveSubscriptions.WithLabelValues("T1")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ActiveSubscriptions.WithLabelValues("T2")))
	counter.AssertExpectations(t)
}

func TestJobs_RefreshActiveSubscriptions_KeepsGaugeOnError(t *testing.T) {
	metrics.SetActiveSubscriptions(map[string]int{"T9": 4})

	counter := new(MockCounter)
	j := New(nil, counter, nil)
	counter.On("CountActive", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	j.RefreshActiveSubscriptions()

	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.ActiveSubscriptions.WithLabelValues("T9")))
}

func TestScheduler_RegistersJobs(t *testing.T) {
	counter := new(MockCounter)
	counter.On("CountActive", mock.Anything, mock.Anything).Return(map[string]int{}, nil).Maybe()

	s := NewScheduler(New(nil, counter, nil))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, 2, s.Entries())
}
