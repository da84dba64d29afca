package catalogapp

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds weighted cost from the buying price", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindBySKU", ctx, "SKU-1").Return(nil, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		price := decimal.NewFromInt(75)
		product, err := NewProductService(repo).Create(ctx, CreateProductRequest{
			SKU:         "SKU-1",
			Name:        "Widget",
			BuyingPrice: &price,
		})
		require.NoError(t, err)
		assert.True(t, product.BuyingPrice.Equal(price))
		assert.True(t, product.WeightedCost.Equal(price))
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		repo := new(MockProductRepository)
		existing, err := catalog.NewProduct("SKU-1", "Widget")
		require.NoError(t, err)
		repo.On("FindBySKU", ctx, "SKU-1").Return(existing, nil)

		_, err = NewProductService(repo).Create(ctx, CreateProductRequest{SKU: "SKU-1", Name: "Widget"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative buying price", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindBySKU", ctx, "SKU-1").Return(nil, nil)

		price := decimal.NewFromInt(-1)
		_, err := NewProductService(repo).Create(ctx, CreateProductRequest{
			SKU:         "SKU-1",
			Name:        "Widget",
			BuyingPrice: &price,
		})
		assert.Error(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only touches the provided fields", func(t *testing.T) {
		repo := new(MockProductRepository)
		product, err := catalog.NewProduct("SKU-1", "Widget")
		require.NoError(t, err)
		product.Barcode = "123"
		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		name := "Renamed"
		updated, err := NewProductService(repo).Update(ctx, product.ID, UpdateProductRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "123", updated.Barcode)
	})

	t.Run("unknown product maps to not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", ctx, mock.Anything).Return(nil, nil)

		_, err := NewProductService(repo).Update(ctx, uuid.New(), UpdateProductRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_GetBySKU(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("FindBySKU", ctx, "GHOST").Return(nil, nil)

	_, err := NewProductService(repo).GetBySKU(ctx, "GHOST")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)

	p1, err := catalog.NewProduct("SKU-1", "Widget")
	require.NoError(t, err)
	filter := shared.DefaultFilter()
	repo.On("FindAll", ctx, filter).Return([]catalog.Product{*p1}, nil)
	repo.On("Count", ctx, filter).Return(int64(41), nil)

	page, err := NewProductService(repo).List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}
