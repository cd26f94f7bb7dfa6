package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewLister struct {
	mock.Mock
}

func (m *MockReviewLister) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// blockingLister holds the response until release is closed.
type blockingLister struct {
	started chan struct{}
	release chan struct{}
	reviews []domain.Review
}

func (b *blockingLister) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	close(b.started)
	<-b.release
	return b.reviews, nil
}

func TestSection_StartsLoading(t *testing.T) {
	sec := NewSection("p1", new(MockReviewLister))

	assert.Equal(t, StateLoading, sec.State())
	v := sec.View("1/2/2006")
	assert.True(t, v.Loading)
	assert.Empty(t, v.Error)
	assert.False(t, v.Empty)
}

func TestSection_LoadedWithReviews(t *testing.T) {
	lister := new(MockReviewLister)
	lister.On("ListReviews", mock.Anything, "p1").Return([]domain.Review{
		{ID: "r1", User: "Ann", Rating: 5, Comment: "Great", Date: "2026-01-05"},
		{ID: "r2", User: "Ben", Rating: 3, Comment: "Fine", Date: "2026-02-10T09:30:00Z"},
	}, nil).Once()

	sec := NewSection("p1", lister)
	sec.Load(context.Background())

	assert.Equal(t, StateLoaded, sec.State())
	v := sec.View("1/2/2006")
	assert.False(t, v.Loading)
	assert.False(t, v.Empty)
	assert.Len(t, v.Reviews, 2)
	assert.Equal(t, "Ann", v.Reviews[0].User)
	assert.Equal(t, "1/5/2026", v.Reviews[0].Date)
	assert.Equal(t, "2/10/2026", v.Reviews[1].Date)
	lister.AssertExpectations(t)
}

func TestSection_EmptyIsDistinctFromLoading(t *testing.T) {
	lister := new(MockReviewLister)
	lister.On("ListReviews", mock.Anything, "p1").Return([]domain.Review{}, nil).Once()

	sec := NewSection("p1", lister)
	sec.Load(context.Background())

	v := sec.View("1/2/2006")
	assert.True(t, v.Empty)
	assert.False(t, v.Loading)
	assert.Empty(t, v.Error)
}

func TestSection_FailedShowsFixedMessageOnly(t *testing.T) {
	lister := new(MockReviewLister)
	lister.On("ListReviews", mock.Anything, "p1").Return(nil, errors.New("connection refused")).Once()

	sec := NewSection("p1", lister)
	sec.Load(context.Background())

	assert.Equal(t, StateFailed, sec.State())
	v := sec.View("1/2/2006")
	assert.Equal(t, MsgLoadFailed, v.Error)
	assert.False(t, v.Loading)
	assert.NotContains(t, v.Error, "connection refused")
}

func TestSection_CloseDropsLateResponse(t *testing.T) {
	lister := &blockingLister{
		started: make(chan struct{}),
		release: make(chan struct{}),
		reviews: []domain.Review{{ID: "r1"}},
	}
	sec := NewSection("p1", lister)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sec.Load(context.Background())
	}()

	<-lister.started
	sec.Close()
	close(lister.release)
	wg.Wait()

	assert.Equal(t, StateLoading, sec.State())
	assert.Empty(t, sec.View("1/2/2006").Reviews)
}

func TestSection_LoadAfterCloseIsNoop(t *testing.T) {
	lister := new(MockReviewLister)
	sec := NewSection("p1", lister)
	sec.Close()

	sec.Load(context.Background())

	lister.AssertNotCalled(t, "ListReviews", mock.Anything, mock.Anything)
}
