package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

// buildOrderItems derives line totals and the order total; neither is
// trusted from input.
func buildOrderItems(inputs []dto.OrderItemInput) ([]model.OrderItem, decimal.Decimal) {
	items := make([]model.OrderItem, len(inputs))
	total := decimal.Zero
	for i, in := range inputs {
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		items[i] = model.OrderItem{
			MedicineID: in.MedicineID,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			LineTotal:  lineTotal,
		}
		total = total.Add(lineTotal)
	}
	return items, total
}

func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}

func (s *Store) CreateOrder(ctx context.Context, input dto.CreateOrderInput) (model.Order, error) {
	now := s.now()

	items, total := buildOrderItems(input.Items)
	orderNumber := input.OrderNumber
	if orderNumber == "" {
		orderNumber = generateOrderNumber(now)
	}
	status := input.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	local := model.Order{
		ID:               uuid.New().String(),
		OrderNumber:      orderNumber,
		SupplierID:       input.SupplierID,
		Items:            items,
		TotalAmount:      total,
		Status:           status,
		OrderDate:        orderDate,
		ExpectedDelivery: input.ExpectedDelivery,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.mu.Lock()
	s.orders = append(s.orders, local)
	s.mu.Unlock()

	if !s.remote() {
		return local, nil
	}

	created, err := s.gw.CreateOrder(ctx, input)
	if err != nil {
		s.logger.Warn("create order not mirrored, keeping local record",
			zap.String("id", local.ID), zap.Error(err))
		return local, nil
	}

	s.mu.Lock()
	if i := s.orderIndexLocked(local.ID); i >= 0 && s.orders[i].UpdatedAt.Equal(local.UpdatedAt) {
		s.orders[i] = created
	}
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, input dto.UpdateOrderInput) (model.Order, error) {
	if id == "" {
		return model.Order{}, inventory.ErrMissingID
	}

	now := s.now()
	s.mu.Lock()
	i := s.orderIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Order{}, inventory.ErrNotFound
	}
	o := s.orders[i]
	if input.SupplierID != nil {
		o.SupplierID = *input.SupplierID
	}
	if input.Items != nil {
		o.Items, o.TotalAmount = buildOrderItems(*input.Items)
	}
	if input.Status != nil {
		o.Status = *input.Status
	}
	if input.OrderDate != nil {
		o.OrderDate = *input.OrderDate
	}
	if input.ExpectedDelivery != nil {
		o.ExpectedDelivery = input.ExpectedDelivery
	}
	if input.ActualDelivery != nil {
		o.ActualDelivery = input.ActualDelivery
	}
	if input.Notes != nil {
		o.Notes = *input.Notes
	}
	o.UpdatedAt = now
	s.orders[i] = o
	s.mu.Unlock()

	if !s.remote() {
		return o, nil
	}

	updated, err := s.gw.UpdateOrder(ctx, id, input)
	if err != nil {
		s.logger.Warn("update order not mirrored, local record stands",
			zap.String("id", id), zap.Error(err))
		return o, nil
	}

	s.mu.Lock()
	if j := s.orderIndexLocked(id); j >= 0 && s.orders[j].UpdatedAt.Equal(now) {
		s.orders[j] = updated
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return inventory.ErrMissingID
	}

	s.mu.Lock()
	i := s.orderIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return inventory.ErrNotFound
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	s.mu.Unlock()

	if s.remote() {
		if err := s.gw.DeleteOrder(ctx, id); err != nil {
			s.logger.Warn("delete order not mirrored, local removal stands",
				zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}
