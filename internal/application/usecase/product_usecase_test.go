package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestProductUseCase_Create(t *testing.T) {
	repo := newMemProducts()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: " Teclado ", Price: decimal.RequireFromString("199.90"), Stock: intPtr(4), CategoryIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Teclado", out.Name)
	assert.Equal(t, 4, out.Stock)
	assert.Equal(t, []string{}, out.ImagesURL)
	assert.Equal(t, []int64{1, 2}, repo.lastCatIDs)

	invalid := []dto.CreateProductRequest{
		{Name: "", Price: decimal.NewFromInt(1), CategoryIDs: []int64{1}},
		{Name: "X", Price: decimal.Zero, CategoryIDs: []int64{1}},
		{Name: "X", Price: decimal.NewFromInt(-1), CategoryIDs: []int64{1}},
		{Name: "X", Price: decimal.NewFromInt(1)},
		{Name: "X", Price: decimal.NewFromInt(1), Stock: intPtr(-1), CategoryIDs: []int64{1}},
	}
	for _, in := range invalid {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductUseCase_UpdateAndDelete(t *testing.T) {
	repo := newMemProducts()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Mouse", Price: decimal.NewFromInt(300), CategoryIDs: []int64{1}})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(350)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &newPrice, Stock: intPtr(9)})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, 9, updated.Stock)
	assert.Nil(t, repo.lastCatIDs)

	updated, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{CategoryIDs: []int64{3}})
	require.NoError(t, err)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, int64(3), updated.Categories[0].ID)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{CategoryIDs: []int64{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, 99, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, 99), domain.ErrNotFound)
	assert.Zero(t, repo.deleteCalls)
	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
