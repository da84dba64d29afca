package catalog

import (
	"strings"
	"time"

	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a stocked item identified by its SKU.
// BuyingPrice tracks the latest unit purchase price; WeightedCost is the
// running average unit cost and is only ever derived from the mutation
// history through the cost basis rules, never set directly after creation.
type Product struct {
	shared.VersionedEntity
	SKU           string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Barcode       string          `gorm:"type:varchar(50);index"`
	Description   string          `gorm:"type:text"`
	BuyingPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	WeightedCost  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity int64           `gorm:"not null;default:0"` // may go negative on oversell
	VatRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:20"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with zero stock and cost
func NewProduct(sku, name string) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 100 {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	if strings.TrimSpace(name) == "" {
		name = sku
	}

	return &Product{
		VersionedEntity: shared.NewVersionedEntity(),
		SKU:             sku,
		Name:            name,
		BuyingPrice:     decimal.Zero,
		WeightedCost:    decimal.Zero,
		StockQuantity:   0,
		VatRate:         decimal.NewFromInt(20),
	}, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, barcode, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	p.Name = name
	p.Barcode = barcode
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetVatRate sets the VAT percentage applied to the product
func (p *Product) SetVatRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_VAT_RATE", "VAT rate cannot be negative")
	}
	p.VatRate = rate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// CurrentUnitCost returns the unit cost charged to departing stock: the
// weighted average when it is positive, otherwise the last buying price.
func (p *Product) CurrentUnitCost() decimal.Decimal {
	if p.WeightedCost.IsPositive() {
		return p.WeightedCost
	}
	return p.BuyingPrice
}

// StockValue returns the value of the stock on hand at weighted cost
func (p *Product) StockValue() decimal.Decimal {
	return p.WeightedCost.Mul(decimal.NewFromInt(p.StockQuantity))
}
