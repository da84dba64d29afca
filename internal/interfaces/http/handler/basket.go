package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/shopspring/decimal"
)

// BasketHandler handles multi-line basket sale endpoints
type BasketHandler struct {
	BaseHandler
	basketCoordinator *ledgerapp.BasketSaleCoordinator
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(basketCoordinator *ledgerapp.BasketSaleCoordinator) *BasketHandler {
	return &BasketHandler{basketCoordinator: basketCoordinator}
}

// BasketLineRequest is one product line of a basket sale
type BasketLineRequest struct {
	ProductID        string          `json:"product_id" binding:"required,uuid"`
	Quantity         int64           `json:"quantity" binding:"required,min=1"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// CreateBasketRequest records one customer order spanning several products.
// The shipping cost is split across the lines.
type CreateBasketRequest struct {
	MarketplaceID string              `json:"marketplace_id" binding:"required,uuid"`
	OrderNumber   string              `json:"order_number" binding:"required,max=100"`
	ShippingCost  decimal.Decimal     `json:"shipping_cost"`
	SaleDate      *time.Time          `json:"sale_date"`
	Lines         []BasketLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// BasketResponse reports the ledger rows created for a basket
type BasketResponse struct {
	TransactionIDs []uuid.UUID `json:"transaction_ids"`
}

// Create records a basket sale as one atomic set of ledger entries
func (h *BasketHandler) Create(c *gin.Context) {
	var req CreateBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	marketplaceID, err := uuid.Parse(req.MarketplaceID)
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	input := ledgerapp.BasketSaleInput{
		MarketplaceID: marketplaceID,
		OrderNumber:   req.OrderNumber,
		ShippingCost:  req.ShippingCost,
		Lines:         make([]ledgerapp.BasketLine, 0, len(req.Lines)),
	}
	if req.SaleDate != nil {
		input.SaleDate = *req.SaleDate
	}
	for _, line := range req.Lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		input.Lines = append(input.Lines, ledgerapp.BasketLine{
			ProductID:        productID,
			Quantity:         line.Quantity,
			SalePrice:        line.SalePrice,
			CommissionAmount: line.CommissionAmount,
		})
	}

	result, err := h.basketCoordinator.RecordBasketSale(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, BasketResponse{TransactionIDs: result.TransactionIDs})
}
