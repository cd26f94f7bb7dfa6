package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/database"
	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Property{}, &domain.StoredReview{}, &domain.StoredBooking{}))
	return db
}

func TestPropertyRepository_GetByID(t *testing.T) {
	repo := NewPropertyRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Property{ID: "p1", Name: "Lake House", Description: "Quiet", Price: 120}))

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lake House", p.Name)
	assert.Equal(t, 120.0, p.Price)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPropertyRepository_ListOrdersByName(t *testing.T) {
	repo := NewPropertyRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Property{ID: "b", Name: "Beach Hut"}))
	require.NoError(t, repo.Create(ctx, &domain.Property{ID: "a", Name: "Alpine Cabin"}))

	items, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpine Cabin", items[0].Name)
}

func TestReviewRepository_ListByProperty(t *testing.T) {
	repo := NewReviewRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.StoredReview{ID: "r2", PropertyID: "p1", User: "Bo", Rating: 4, Date: "2026-03-02"}))
	require.NoError(t, repo.Create(ctx, &domain.StoredReview{ID: "r1", PropertyID: "p1", User: "Al", Rating: 5, Date: "2026-03-01"}))
	require.NoError(t, repo.Create(ctx, &domain.StoredReview{ID: "r3", PropertyID: "p2", User: "Cy", Rating: 3, Date: "2026-03-01"}))

	items, err := repo.ListByProperty(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ReviewID("r1"), items[0].ID)
	assert.Equal(t, domain.ReviewID("r2"), items[1].ID)

	empty, err := repo.ListByProperty(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBookingRepository_RequestIDAndPurge(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	key := "req-1"
	require.NoError(t, repo.Create(ctx, &domain.StoredBooking{RequestID: &key, FirstName: "A"}))

	got, err := repo.GetByRequestID(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "A", got.FirstName)

	_, err = repo.GetByRequestID(ctx, "other")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := "req-1"
	assert.Error(t, repo.Create(ctx, &domain.StoredBooking{RequestID: &dup}))

	old := domain.StoredBooking{FirstName: "Old", CreatedAt: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, repo.Create(ctx, &old))

	n, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
