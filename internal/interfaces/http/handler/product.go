package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/catalogapp"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU         string           `json:"sku" binding:"required,min=1,max=100"`
	Name        string           `json:"name" binding:"max=255"`
	Barcode     string           `json:"barcode" binding:"max=50"`
	Description string           `json:"description" binding:"max=2000"`
	BuyingPrice *decimal.Decimal `json:"buying_price"`
	VatRate     *decimal.Decimal `json:"vat_rate"`
}

// UpdateProductRequest represents a request to update a product's
// descriptive fields. Stock and cost are not updatable over the API.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Barcode     *string          `json:"barcode" binding:"omitempty,max=50"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	VatRate     *decimal.Decimal `json:"vat_rate"`
}

// ProductResponse is the wire representation of a product
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode,omitempty"`
	Description   string          `json:"description,omitempty"`
	BuyingPrice   decimal.Decimal `json:"buying_price"`
	WeightedCost  decimal.Decimal `json:"weighted_cost"`
	StockQuantity int64           `json:"stock_quantity"`
	StockValue    decimal.Decimal `json:"stock_value"`
	VatRate       decimal.Decimal `json:"vat_rate"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Barcode:       p.Barcode,
		Description:   p.Description,
		BuyingPrice:   p.BuyingPrice,
		WeightedCost:  p.WeightedCost,
		StockQuantity: p.StockQuantity,
		StockValue:    p.StockValue(),
		VatRate:       p.VatRate,
		Version:       p.Version,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		SKU:         req.SKU,
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
		BuyingPrice: req.BuyingPrice,
		VatRate:     req.VatRate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toProductResponse(product))
}

// List returns a page of products
func (h *ProductHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.productService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toProductResponse(&page.Items[i]))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one product by ID
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductResponse(product))
}

// GetBySKU returns one product by SKU
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	sku := c.Param("sku")
	product, err := h.productService.GetBySKU(c.Request.Context(), sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductResponse(product))
}

// Update updates a product's descriptive fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
		VatRate:     req.VatRate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductResponse(product))
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
