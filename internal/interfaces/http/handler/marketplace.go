package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/marketapp"
	"github.com/sellerledger/backend/internal/domain/market"
)

// MarketplaceHandler handles marketplace API endpoints
type MarketplaceHandler struct {
	BaseHandler
	marketplaceService *marketapp.MarketplaceService
}

// NewMarketplaceHandler creates a new MarketplaceHandler
func NewMarketplaceHandler(marketplaceService *marketapp.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// CreateMarketplaceRequest represents a request to register a marketplace
type CreateMarketplaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// MarketplaceResponse is the wire representation of a marketplace
type MarketplaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toMarketplaceResponse(m *market.Marketplace) MarketplaceResponse {
	return MarketplaceResponse{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// List returns marketplaces; ?active=true narrows to the ones accepting
// new uploads.
func (h *MarketplaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		marketplaces []market.Marketplace
		err          error
	)
	if c.Query("active") == "true" {
		marketplaces, err = h.marketplaceService.ListActive(ctx)
	} else {
		req, bindErr := bindListRequest(c)
		if bindErr != nil {
			h.BadRequest(c, bindErr.Error())
			return
		}
		marketplaces, err = h.marketplaceService.List(ctx, toFilter(req))
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]MarketplaceResponse, 0, len(marketplaces))
	for i := range marketplaces {
		items = append(items, toMarketplaceResponse(&marketplaces[i]))
	}
	h.Success(c, items)
}

// GetByID returns one marketplace
func (h *MarketplaceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	marketplace, err := h.marketplaceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMarketplaceResponse(marketplace))
}

// Create registers a new marketplace
func (h *MarketplaceHandler) Create(c *gin.Context) {
	var req CreateMarketplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	marketplace, err := h.marketplaceService.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toMarketplaceResponse(marketplace))
}

// Deactivate hides a marketplace from new uploads
func (h *MarketplaceHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	marketplace, err := h.marketplaceService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMarketplaceResponse(marketplace))
}
