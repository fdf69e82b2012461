package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusOrdered   OrderStatus = "Ordered"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type OrderItem struct {
	MedicineID string          `json:"medicine_id"` // weak reference, no ownership
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type Order struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	SupplierID       string          `json:"supplier_id"`
	Items            []OrderItem     `json:"items"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           OrderStatus     `json:"status"`
	OrderDate        time.Time       `json:"order_date"`
	ExpectedDelivery *time.Time      `json:"expected_delivery"`
	ActualDelivery   *time.Time      `json:"actual_delivery"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
