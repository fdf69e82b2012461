package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Medicine struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	GenericName   string          `json:"generic_name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	BatchNumber   string          `json:"batch_number"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	ExpiryDate    time.Time       `json:"expiry_date"`
	SupplierID    string          `json:"supplier_id"` // weak reference, no ownership
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TotalValue is derived from quantity and unit price, never stored.
func (m Medicine) TotalValue() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}
