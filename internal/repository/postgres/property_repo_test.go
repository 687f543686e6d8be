package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hoverhouse/hoverhouse-api/internal/domain"
	"github.com/hoverhouse/hoverhouse-api/internal/repository/postgres"
	"github.com/hoverhouse/hoverhouse-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPropertyRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPropertyRepository(testDB.DB)
	ctx := context.Background()

	yearBuilt := 1998
	property := &domain.Property{
		ID:          uuid.New(),
		Title:       "Seaside cottage",
		Location:    "Hermanus",
		Price:       2400000,
		Description: "Two bedrooms, ocean view",
		Image:       "https://images.example.com/cottage.jpg",
		Features:    []string{"ocean view", "garden"},
		Tags:        []string{"coastal"},
		Details: domain.PropertyDetails{
			Bedrooms:  2,
			Bathrooms: 1,
			Kitchen:   domain.DefaultKitchen,
			YearBuilt: &yearBuilt,
		},
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.Create(ctx, property))

	got, err := repo.GetByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, property.Title, got.Title)
	assert.Equal(t, []string{"ocean view", "garden"}, []string(got.Features))
	assert.Equal(t, 2, got.Details.Bedrooms)
	require.NotNil(t, got.Details.YearBuilt)
	assert.Equal(t, 1998, *got.Details.YearBuilt)
}

func TestPropertyRepository_ListNewestFirst(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPropertyRepository(testDB.DB)
	ctx := context.Background()

	oldest := testutil.NewPropertyBuilder().
		WithTitle("oldest").
		WithCreatedAt(time.Now().Add(-2 * time.Hour)).
		Build(t, testDB.DB)
	middle := testutil.NewPropertyBuilder().
		WithTitle("middle").
		WithCreatedAt(time.Now().Add(-1 * time.Hour)).
		Build(t, testDB.DB)
	newest := testutil.NewPropertyBuilder().
		WithTitle("newest").
		WithCreatedAt(time.Now()).
		Build(t, testDB.DB)

	properties, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, properties, 3)
	assert.Equal(t, newest.ID, properties[0].ID)
	assert.Equal(t, middle.ID, properties[1].ID)
	assert.Equal(t, oldest.ID, properties[2].ID)
}

func TestPropertyRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPropertyRepository(testDB.DB)
	ctx := context.Background()

	property := testutil.NewPropertyBuilder().WithPrice(1000000).Build(t, testDB.DB)

	property.Price = 950000
	property.Tags = []string{"price reduced"}
	require.NoError(t, repo.Update(ctx, property))

	got, err := repo.GetByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(950000), got.Price)
	assert.Equal(t, []string{"price reduced"}, []string(got.Tags))
}

func TestPropertyRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPropertyRepository(testDB.DB)
	ctx := context.Background()

	property := testutil.NewPropertyBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, property.ID))

	_, err := repo.GetByID(ctx, property.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	t.Run("deleting a missing property reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
