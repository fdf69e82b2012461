package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
)

type CreateMedicineInput struct {
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
	SupplierID    string          `json:"supplier_id"`
}

// UpdateMedicineInput is a partial update; nil fields are left untouched.
type UpdateMedicineInput struct {
	Name          *string          `json:"name"`
	GenericName   *string          `json:"generic_name"`
	Category      *string          `json:"category"`
	Manufacturer  *string          `json:"manufacturer"`
	BatchNumber   *string          `json:"batch_number"`
	Quantity      *int             `json:"quantity"`
	Unit          *string          `json:"unit"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	MinStockLevel *int             `json:"min_stock_level"`
	MaxStockLevel *int             `json:"max_stock_level"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
	SupplierID    *string          `json:"supplier_id"`
	IsActive      *bool            `json:"is_active"`
}

func (in UpdateMedicineInput) Apply(m *model.Medicine) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.GenericName != nil {
		m.GenericName = *in.GenericName
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Manufacturer != nil {
		m.Manufacturer = *in.Manufacturer
	}
	if in.BatchNumber != nil {
		m.BatchNumber = *in.BatchNumber
	}
	if in.Quantity != nil {
		m.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		m.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		m.UnitPrice = *in.UnitPrice
	}
	if in.MinStockLevel != nil {
		m.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		m.MaxStockLevel = *in.MaxStockLevel
	}
	if in.ExpiryDate != nil {
		m.ExpiryDate = *in.ExpiryDate
	}
	if in.SupplierID != nil {
		m.SupplierID = *in.SupplierID
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
}

type CreateSupplierInput struct {
	Name          string        `json:"name"`
	ContactPerson string        `json:"contact_person"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       model.Address `json:"address"`
	LicenseNumber string        `json:"license_number"`
	TaxNumber     string        `json:"tax_number"`
}

type UpdateSupplierInput struct {
	Name          *string        `json:"name"`
	ContactPerson *string        `json:"contact_person"`
	Email         *string        `json:"email"`
	Phone         *string        `json:"phone"`
	Address       *model.Address `json:"address"`
	LicenseNumber *string        `json:"license_number"`
	TaxNumber     *string        `json:"tax_number"`
	IsActive      *bool          `json:"is_active"`
}

func (in UpdateSupplierInput) Apply(s *model.Supplier) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.ContactPerson != nil {
		s.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.LicenseNumber != nil {
		s.LicenseNumber = *in.LicenseNumber
	}
	if in.TaxNumber != nil {
		s.TaxNumber = *in.TaxNumber
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
}

type OrderItemInput struct {
	MedicineID string          `json:"medicine_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type CreateOrderInput struct {
	OrderNumber      string            `json:"order_number"` // generated when empty
	SupplierID       string            `json:"supplier_id"`
	Items            []OrderItemInput  `json:"items"`
	Status           model.OrderStatus `json:"status"` // defaults to Pending
	OrderDate        time.Time         `json:"order_date"`
	ExpectedDelivery *time.Time        `json:"expected_delivery"`
	Notes            string            `json:"notes"`
}

type UpdateOrderInput struct {
	SupplierID       *string            `json:"supplier_id"`
	Items            *[]OrderItemInput  `json:"items"`
	Status           *model.OrderStatus `json:"status"`
	OrderDate        *time.Time         `json:"order_date"`
	ExpectedDelivery *time.Time         `json:"expected_delivery"`
	ActualDelivery   *time.Time         `json:"actual_delivery"`
	Notes            *string            `json:"notes"`
}
