package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/marketapp"
	"github.com/sellerledger/backend/internal/domain/market"
)

// MappingHandler handles column mapping API endpoints
type MappingHandler struct {
	BaseHandler
	mappingService *marketapp.MappingService
}

// NewMappingHandler creates a new MappingHandler
func NewMappingHandler(mappingService *marketapp.MappingService) *MappingHandler {
	return &MappingHandler{mappingService: mappingService}
}

// CreateMappingRequest represents a request to bind an external column to
// a canonical field
type CreateMappingRequest struct {
	MarketplaceID  string `json:"marketplace_id" binding:"required,uuid"`
	FileKind       string `json:"file_kind" binding:"required,oneof=SALES STOCK"`
	ExternalColumn string `json:"external_column" binding:"required,min=1,max=255"`
	CanonicalField string `json:"canonical_field" binding:"required,min=1,max=255"`
}

// UpdateMappingRequest represents a request to rebind a mapping to a new
// external column
type UpdateMappingRequest struct {
	ExternalColumn string `json:"external_column" binding:"required,min=1,max=255"`
}

// MappingResponse is the wire representation of a column mapping
type MappingResponse struct {
	ID             uuid.UUID `json:"id"`
	MarketplaceID  uuid.UUID `json:"marketplace_id"`
	FileKind       string    `json:"file_kind"`
	ExternalColumn string    `json:"external_column"`
	CanonicalField string    `json:"canonical_field"`
}

func toMappingResponse(m *market.ColumnMapping) MappingResponse {
	return MappingResponse{
		ID:             m.ID,
		MarketplaceID:  m.MarketplaceID,
		FileKind:       m.FileKind.String(),
		ExternalColumn: m.ExternalColumn,
		CanonicalField: m.CanonicalField,
	}
}

// Create binds an external column to a canonical field
func (h *MappingHandler) Create(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	marketplaceID, err := uuid.Parse(req.MarketplaceID)
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	mapping, err := h.mappingService.Create(c.Request.Context(), marketapp.CreateMappingRequest{
		MarketplaceID:  marketplaceID,
		FileKind:       market.FileKind(req.FileKind),
		ExternalColumn: req.ExternalColumn,
		CanonicalField: req.CanonicalField,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toMappingResponse(mapping))
}

// ListByMarketplace returns the mappings configured for a marketplace.
// ?file_kind=SALES narrows the result to one file kind.
func (h *MappingHandler) ListByMarketplace(c *gin.Context) {
	marketplaceID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	ctx := c.Request.Context()

	var (
		mappings []market.ColumnMapping
		err      error
	)
	if kind := c.Query("file_kind"); kind != "" {
		mappings, err = h.mappingService.ListByContext(ctx, marketplaceID, market.FileKind(kind))
	} else {
		mappings, err = h.mappingService.ListByMarketplace(ctx, marketplaceID)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]MappingResponse, 0, len(mappings))
	for i := range mappings {
		items = append(items, toMappingResponse(&mappings[i]))
	}
	h.Success(c, items)
}

// Update rebinds a mapping to a new external column
func (h *MappingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	var req UpdateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	mapping, err := h.mappingService.Update(c.Request.Context(), id, req.ExternalColumn)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMappingResponse(mapping))
}

// Delete removes a mapping
func (h *MappingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	if err := h.mappingService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
