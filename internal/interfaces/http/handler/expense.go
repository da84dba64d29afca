package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *ledgerapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *ledgerapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate *time.Time      `json:"expense_date"`
}

// ExpenseResponse is the wire representation of an expense
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toExpenseResponse(e *ledger.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}

// Create records a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := ledgerapp.CreateExpenseRequest{
		Category:    ledger.ExpenseCategory(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.ExpenseDate != nil {
		input.ExpenseDate = *req.ExpenseDate
	}

	expense, err := h.expenseService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toExpenseResponse(expense))
}

// List returns expenses; ?category=RENT narrows by category
func (h *ExpenseHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if category := c.Query("category"); category != "" {
		if !ledger.ExpenseCategory(category).IsValid() {
			h.BadRequest(c, "Unknown expense category")
			return
		}
		filter.Filters["category"] = category
	}

	expenses, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, toExpenseResponse(&expenses[i]))
	}
	h.Success(c, items)
}

// GetByID returns one expense
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toExpenseResponse(expense))
}

// Delete removes an expense record
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
