package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of ledger transaction
type TransactionType string

const (
	// TransactionTypeSale is an outbound sale on a marketplace
	TransactionTypeSale TransactionType = "SALE"
	// TransactionTypeReturn is a customer return
	TransactionTypeReturn TransactionType = "RETURN"
	// TransactionTypeCancel is a cancelled order line
	TransactionTypeCancel TransactionType = "CANCEL"
	// TransactionTypePurchase is inbound stock (purchase invoice, receipt)
	TransactionTypePurchase TransactionType = "PURCHASE"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is known
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSale, TransactionTypeReturn, TransactionTypeCancel, TransactionTypePurchase:
		return true
	}
	return false
}

// Transaction is one immutable row of the ledger. CostAtTransaction is a
// frozen snapshot of unit cost taken when the row is created; later cost
// changes never rewrite it, so historical profit stays stable.
type Transaction struct {
	shared.BaseEntity
	MarketplaceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID      `gorm:"type:uuid;index"` // nil when no SKU matched (e.g. penalty charges)
	TransactionType   TransactionType `gorm:"type:varchar(10);not null;index"`
	OrderNumber       string          `gorm:"type:varchar(100);not null;index"`
	Quantity          int64           `gorm:"not null;default:1"`
	SalePrice         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CommissionAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ShippingCost      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostAtTransaction decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TransactionDate   time.Time       `gorm:"type:timestamptz;not null;index"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction creates a new ledger transaction. The frozen unit cost is
// supplied by the cost basis computation, never by the caller's own math.
func NewTransaction(
	marketplaceID uuid.UUID,
	productID *uuid.UUID,
	txType TransactionType,
	orderNumber string,
	quantity int64,
	salePrice, commission, shipping, costAtTransaction decimal.Decimal,
	transactionDate time.Time,
) (*Transaction, error) {
	if marketplaceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MARKETPLACE", "Marketplace ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Invalid transaction type")
	}
	if quantity < 1 {
		return nil, shared.ErrInvalidQuantity
	}
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	return &Transaction{
		BaseEntity:        shared.NewBaseEntity(),
		MarketplaceID:     marketplaceID,
		ProductID:         productID,
		TransactionType:   txType,
		OrderNumber:       orderNumber,
		Quantity:          quantity,
		SalePrice:         salePrice,
		CommissionAmount:  commission,
		ShippingCost:      shipping,
		CostAtTransaction: costAtTransaction,
		TransactionDate:   transactionDate,
	}, nil
}

// TotalCost returns the full cost side of the row: frozen unit cost times
// quantity plus commission and shipping, each tracked separately in storage.
func (t *Transaction) TotalCost() decimal.Decimal {
	productCost := t.CostAtTransaction.Mul(decimal.NewFromInt(t.Quantity))
	return productCost.Add(t.CommissionAmount).Add(t.ShippingCost)
}

// NetProfit returns sale price minus the total cost of the row
func (t *Transaction) NetProfit() decimal.Decimal {
	return t.SalePrice.Sub(t.TotalCost())
}
