package inventory

import (
	"context"
	"errors"
	"fmt"

	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

// Gateway is the remote data source for the three collections. One network
// request per operation, no retries, no caching; failures come back as a
// *GatewayError and are the caller's problem.
type Gateway interface {
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	CreateMedicine(ctx context.Context, input dto.CreateMedicineInput) (model.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, input dto.UpdateMedicineInput) (model.Medicine, error)
	DeleteMedicine(ctx context.Context, id string) error

	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	CreateSupplier(ctx context.Context, input dto.CreateSupplierInput) (model.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input dto.UpdateSupplierInput) (model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, input dto.CreateOrderInput) (model.Order, error)
	UpdateOrder(ctx context.Context, id string, input dto.UpdateOrderInput) (model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// GatewayError wraps a failed gateway operation with its transport or
// status cause.
type GatewayError struct {
	Op     string // e.g. "list medicines"
	Status int    // HTTP status, 0 when the transport failed
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// AsGatewayError reports whether err is (or wraps) a GatewayError.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
