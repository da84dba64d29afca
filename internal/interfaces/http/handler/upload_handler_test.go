package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sellerledger/backend/internal/application/ingest"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadRouterFixture struct {
	productRepo     *MockProductRepository
	marketplaceRepo *MockMarketplaceRepository
	mappingRepo     *MockColumnMappingRepository
	transactionRepo *MockTransactionRepository
	marketplace     *market.Marketplace
	router          *gin.Engine
}

func newUploadRouter(t *testing.T) *uploadRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &uploadRouterFixture{
		productRepo:     new(MockProductRepository),
		marketplaceRepo: new(MockMarketplaceRepository),
		mappingRepo:     new(MockColumnMappingRepository),
		transactionRepo: new(MockTransactionRepository),
	}
	marketplace, err := market.NewMarketplace("Trendyol")
	require.NoError(t, err)
	f.marketplace = marketplace

	scope := ledgerapp.NewNoOpTransactionScope(f.productRepo, f.transactionRepo)
	ledgerService := ledgerapp.NewLedgerService(f.marketplaceRepo, scope)
	pipeline := ingest.NewPipeline(f.marketplaceRepo, ingest.NewMappingResolver(f.mappingRepo), ledgerService, scope)
	h := NewUploadHandler(pipeline, 1<<20, ',')

	r := gin.New()
	r.POST("/uploads", h.Upload)
	f.router = r
	return f
}

func (f *uploadRouterFixture) salesMappings(t *testing.T) []market.ColumnMapping {
	t.Helper()
	var mappings []market.ColumnMapping
	for external, canonical := range map[string]string{
		"Sipariş No":   ingest.FieldOrderNumber,
		"Satış Fiyatı": ingest.FieldSalePrice,
		"Stok Kodu":    ingest.FieldSKU,
	} {
		m, err := market.NewColumnMapping(f.marketplace.ID, market.FileKindSales, external, canonical)
		require.NoError(t, err)
		mappings = append(mappings, *m)
	}
	return mappings
}

func multipartUpload(t *testing.T, marketplaceID, kind, csv string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("marketplace_id", marketplaceID))
	require.NoError(t, writer.WriteField("file_kind", kind))
	part, err := writer.CreateFormFile("file", "report.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	t.Run("ingests a sales report", func(t *testing.T) {
		f := newUploadRouter(t)
		f.marketplaceRepo.On("FindByID", mock.Anything, f.marketplace.ID).Return(f.marketplace, nil)
		f.mappingRepo.On("FindByContext", mock.Anything, f.marketplace.ID, market.FileKindSales).
			Return(f.salesMappings(t), nil)
		// no catalog match: the rows land on the ledger without a product
		f.productRepo.On("FindBySKU", mock.Anything, mock.Anything).Return(nil, nil)
		f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		csv := "Sipariş No,Satış Fiyatı,Stok Kodu\nORD-1,199.90,SKU-1\nORD-2,59.50,SKU-2\n"
		body, contentType := multipartUpload(t, f.marketplace.ID.String(), "SALES", csv)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data map[string]json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.JSONEq(t, "2", string(resp.Data["created_count"]))
		assert.JSONEq(t, "0", string(resp.Data["updated_count"]))
		assert.JSONEq(t, "[]", string(resp.Data["errors"]))
		f.transactionRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("incomplete mapping aborts the batch", func(t *testing.T) {
		f := newUploadRouter(t)
		f.marketplaceRepo.On("FindByID", mock.Anything, f.marketplace.ID).Return(f.marketplace, nil)
		f.mappingRepo.On("FindByContext", mock.Anything, f.marketplace.ID, market.FileKindSales).
			Return([]market.ColumnMapping{}, nil)

		csv := "Sipariş No,Satış Fiyatı,Stok Kodu\nORD-1,199.90,SKU-1\n"
		body, contentType := multipartUpload(t, f.marketplace.ID.String(), "SALES", csv)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeConfiguration, decodeError(t, w.Body.String()).Code)
		f.transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown file kind answers 400", func(t *testing.T) {
		f := newUploadRouter(t)
		body, contentType := multipartUpload(t, f.marketplace.ID.String(), "INVOICE", "a,b\n1,2\n")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty file answers 400", func(t *testing.T) {
		f := newUploadRouter(t)
		body, contentType := multipartUpload(t, f.marketplace.ID.String(), "SALES", "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing file answers 400", func(t *testing.T) {
		f := newUploadRouter(t)
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("marketplace_id", f.marketplace.ID.String()))
		require.NoError(t, writer.WriteField("file_kind", "SALES"))
		require.NoError(t, writer.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
