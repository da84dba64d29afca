// Package catalogapp holds the application services for the product
// catalog. Stock and cost figures are read-only here; they only change
// through ledger appends.
package catalogapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the fields accepted when creating a product.
// BuyingPrice seeds both the buying price and the weighted cost so the
// first sale of a manually created product has a cost basis.
type CreateProductRequest struct {
	SKU         string
	Name        string
	Barcode     string
	Description string
	BuyingPrice *decimal.Decimal
	VatRate     *decimal.Decimal
}

// UpdateProductRequest carries the updatable descriptive fields. Nil
// pointers leave the current value untouched.
type UpdateProductRequest struct {
	Name        *string
	Barcode     *string
	Description *string
	VatRate     *decimal.Decimal
}

// ProductService handles catalog CRUD operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	existing, err := s.productRepo.FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(req.SKU, req.Name)
	if err != nil {
		return nil, err
	}
	product.Barcode = req.Barcode
	product.Description = req.Description

	if req.BuyingPrice != nil {
		if req.BuyingPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Buying price cannot be negative")
		}
		product.BuyingPrice = *req.BuyingPrice
		product.WeightedCost = *req.BuyingPrice
	}
	if req.VatRate != nil {
		if err := product.SetVatRate(*req.VatRate); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// GetBySKU retrieves a product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// List returns a page of products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(products, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update updates a product's descriptive fields. Stock, weighted cost and
// buying price are not accepted here.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.ErrNotFound
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	barcode := product.Barcode
	if req.Barcode != nil {
		barcode = *req.Barcode
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := product.Update(name, barcode, description); err != nil {
		return nil, err
	}
	if req.VatRate != nil {
		if err := product.SetVatRate(*req.VatRate); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog. Ledger rows that reference it
// keep their frozen cost; they are not touched.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
