package services

import (
	"context"
	"testing"

	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCatalogList_FilterCombination(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))

	createTestService(t, db, "Rustic Wedding Arch", "Wedding", 800)
	createTestService(t, db, "Royal Wedding Stage", "Wedding", 1800)
	createTestService(t, db, "Budget Wedding Corner", "Wedding", 300)
	createTestService(t, db, "Birthday Balloon Wall", "Birthday", 900)

	resp, err := svc.List(context.Background(), &dto.ServiceListQuery{
		Category: "Wedding",
		MinPrice: intPtr(500),
		MaxPrice: intPtr(2000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Services, 2)
	for _, s := range resp.Services {
		assert.Equal(t, "Wedding", s.Category)
		assert.GreaterOrEqual(t, s.Cost, 500)
		assert.LessOrEqual(t, s.Cost, 2000)
	}
}

func TestCatalogList_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))

	createTestService(t, db, "Rustic Wedding Arch", "Wedding", 800)
	createTestService(t, db, "Birthday Balloon Wall", "Birthday", 900)

	resp, err := svc.List(context.Background(), &dto.ServiceListQuery{Search: "wedding"})
	require.NoError(t, err)

	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Rustic Wedding Arch", resp.Services[0].Name)
}

func TestCatalogList_CategoryAllDisablesFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))

	createTestService(t, db, "Rustic Wedding Arch", "Wedding", 800)
	createTestService(t, db, "Birthday Balloon Wall", "Birthday", 900)

	resp, err := svc.List(context.Background(), &dto.ServiceListQuery{Category: "All"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
}

func TestCatalogList_PaginationAndTotalPages(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))

	for i := 0; i < 7; i++ {
		createTestService(t, db, "Service", "Wedding", 100+i)
	}

	// Default limit is 6, so 7 rows make two pages.
	page1, err := svc.List(context.Background(), &dto.ServiceListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Len(t, page1.Services, 6)

	page2, err := svc.List(context.Background(), &dto.ServiceListQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Services, 1)
	assert.Equal(t, 2, page2.Page)
}

func TestCatalogUpdate_PartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))
	entry := createTestService(t, db, "Rustic Wedding Arch", "Wedding", 800)

	newCost := 950
	updated, err := svc.Update(context.Background(), entry.ID, &dto.UpdateServiceRequest{Cost: &newCost})
	require.NoError(t, err)

	assert.Equal(t, 950, updated.Cost)
	assert.Equal(t, "Rustic Wedding Arch", updated.Name)
}

func TestCatalogLocations_DistinctNonEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repositories.NewServiceRepository(db))

	createTestService(t, db, "A", "Wedding", 100)
	createTestService(t, db, "B", "Wedding", 100)

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Berlin"}, locations)
}
