package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles ledger API endpoints. The ledger is
// append-only: rows can be created, listed and bulk-deleted, never edited.
type TransactionHandler struct {
	BaseHandler
	ledgerService   *ledgerapp.LedgerService
	transactionRepo ledger.TransactionRepository
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *ledgerapp.LedgerService, transactionRepo ledger.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{
		ledgerService:   ledgerService,
		transactionRepo: transactionRepo,
	}
}

// CreateTransactionRequest represents a manual ledger entry. UnitPrice is
// the purchase price per unit and only meaningful for PURCHASE rows.
type CreateTransactionRequest struct {
	MarketplaceID    string           `json:"marketplace_id" binding:"required,uuid"`
	ProductID        *string          `json:"product_id" binding:"omitempty,uuid"`
	TransactionType  string           `json:"transaction_type" binding:"required,oneof=SALE RETURN CANCEL PURCHASE"`
	OrderNumber      string           `json:"order_number" binding:"max=100"`
	Quantity         int64            `json:"quantity" binding:"required,min=1"`
	SalePrice        decimal.Decimal  `json:"sale_price"`
	CommissionAmount decimal.Decimal  `json:"commission_amount"`
	ShippingCost     decimal.Decimal  `json:"shipping_cost"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	TransactionDate  *time.Time       `json:"transaction_date"`
}

// BulkDeleteRequest represents a corrective bulk delete of ledger rows
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// BulkDeleteResponse reports how many rows were removed
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// TransactionResponse is the wire representation of a ledger row
type TransactionResponse struct {
	ID                uuid.UUID       `json:"id"`
	MarketplaceID     uuid.UUID       `json:"marketplace_id"`
	ProductID         *uuid.UUID      `json:"product_id,omitempty"`
	TransactionType   string          `json:"transaction_type"`
	OrderNumber       string          `json:"order_number"`
	Quantity          int64           `json:"quantity"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	CostAtTransaction decimal.Decimal `json:"cost_at_transaction"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	TransactionDate   time.Time       `json:"transaction_date"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toTransactionResponse(t *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		MarketplaceID:     t.MarketplaceID,
		ProductID:         t.ProductID,
		TransactionType:   t.TransactionType.String(),
		OrderNumber:       t.OrderNumber,
		Quantity:          t.Quantity,
		SalePrice:         t.SalePrice,
		CommissionAmount:  t.CommissionAmount,
		ShippingCost:      t.ShippingCost,
		CostAtTransaction: t.CostAtTransaction,
		NetProfit:         t.NetProfit(),
		TransactionDate:   t.TransactionDate,
		CreatedAt:         t.CreatedAt,
	}
}

// Create appends one manual entry to the ledger
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	marketplaceID, err := uuid.Parse(req.MarketplaceID)
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	input := ledgerapp.AppendInput{
		MarketplaceID:    marketplaceID,
		Type:             ledger.TransactionType(req.TransactionType),
		OrderNumber:      req.OrderNumber,
		Quantity:         req.Quantity,
		SalePrice:        req.SalePrice,
		CommissionAmount: req.CommissionAmount,
		ShippingCost:     req.ShippingCost,
	}
	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		input.ProductID = &productID
	}
	if req.UnitPrice != nil {
		input.UnitPrice = *req.UnitPrice
	}
	if req.TransactionDate != nil {
		input.TransactionDate = *req.TransactionDate
	}

	tx, err := h.ledgerService.Append(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toTransactionResponse(tx))
}

// List returns a page of ledger rows. ?transaction_type=SALE narrows by
// type and ?search= matches order numbers.
func (h *TransactionHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if txType := c.Query("transaction_type"); txType != "" {
		if !ledger.TransactionType(txType).IsValid() {
			h.BadRequest(c, "Unknown transaction type")
			return
		}
		filter.Filters["transaction_type"] = txType
	}

	ctx := c.Request.Context()
	txs, err := h.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	total, err := h.transactionRepo.Count(ctx, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResponse(&txs[i]))
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID returns one ledger row
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	tx, err := h.transactionRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if tx == nil {
		h.NotFound(c, "Transaction not found")
		return
	}
	h.Success(c, toTransactionResponse(tx))
}

// BulkDelete removes ledger rows by ID. Stock and cost figures are left
// untouched; this is a corrective operation, not a reversal.
func (h *TransactionHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid transaction ID format")
			return
		}
		ids = append(ids, id)
	}

	deleted, err := h.ledgerService.BulkDelete(c.Request.Context(), ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, BulkDeleteResponse{DeletedCount: deleted})
}
