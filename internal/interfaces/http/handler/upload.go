package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/ingest"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/infrastructure/tabular"
	"github.com/sellerledger/backend/internal/interfaces/http/dto"
)

// UploadHandler handles marketplace report uploads. The uploaded file is
// parsed once and handed to the ingestion pipeline under the marketplace's
// column mapping for the declared file kind.
type UploadHandler struct {
	BaseHandler
	pipeline    *ingest.Pipeline
	maxFileSize int64
	delimiter   rune
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(pipeline *ingest.Pipeline, maxFileSize int64, delimiter rune) *UploadHandler {
	return &UploadHandler{
		pipeline:    pipeline,
		maxFileSize: maxFileSize,
		delimiter:   delimiter,
	}
}

// Upload ingests one report file. Row-level problems are reported in the
// response; mapping configuration problems and concurrency conflicts abort
// the whole batch.
func (h *UploadHandler) Upload(c *gin.Context) {
	marketplaceID, err := uuid.Parse(c.PostForm("marketplace_id"))
	if err != nil {
		h.BadRequest(c, "Invalid marketplace ID format")
		return
	}

	kind := market.FileKind(c.PostForm("file_kind"))
	if !kind.IsValid() {
		h.BadRequest(c, "file_kind must be SALES or STOCK")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "file exceeds the maximum upload size")
		return
	}

	reader, err := tabular.NewReader(file, tabular.WithDelimiter(h.delimiter))
	if err != nil {
		h.handleFileError(c, err)
		return
	}
	doc, err := reader.ReadDocument()
	if err != nil {
		h.handleFileError(c, err)
		return
	}

	result, err := h.pipeline.Ingest(c.Request.Context(), marketplaceID, kind, *doc)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *UploadHandler) handleFileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tabular.ErrEmptyFile):
		h.BadRequest(c, "file is empty")
	case errors.Is(err, tabular.ErrInvalidEncoding):
		h.BadRequest(c, "file has invalid encoding, must be UTF-8")
	case errors.Is(err, tabular.ErrMissingHeader):
		h.BadRequest(c, "file is missing its header row")
	default:
		h.InternalError(c, "failed to read file")
	}
}
