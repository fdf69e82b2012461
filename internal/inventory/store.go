package inventory

import (
	"context"
	"errors"

	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

// Mode is the store's data-source state. Loading is transient; once the
// initial load settles the store stays remote or fallback for its lifetime.
type Mode string

const (
	ModeLoading  Mode = "loading"
	ModeRemote   Mode = "remote"
	ModeFallback Mode = "fallback"
)

var (
	// ErrMissingID is returned when an update or delete is called without an id.
	ErrMissingID = errors.New("missing id")
	// ErrNotFound is returned when the referenced record is not in the store.
	ErrNotFound = errors.New("not found")
)

// Store owns the in-memory collections and the derived alert list.
// Mutations apply optimistically and, in remote mode, mirror to the
// gateway; a failed mirror is logged and the local record stands.
// Accessors return copies — callers never see the store's own slices.
type Store interface {
	Load(ctx context.Context)
	Mode() Mode
	LastError() error

	Medicines() []model.Medicine
	Suppliers() []model.Supplier
	Orders() []model.Order
	Alerts() []model.Alert

	CreateMedicine(ctx context.Context, input dto.CreateMedicineInput) (model.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, input dto.UpdateMedicineInput) (model.Medicine, error)
	DeleteMedicine(ctx context.Context, id string) error

	CreateSupplier(ctx context.Context, input dto.CreateSupplierInput) (model.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input dto.UpdateSupplierInput) (model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, input dto.CreateOrderInput) (model.Order, error)
	UpdateOrder(ctx context.Context, id string, input dto.UpdateOrderInput) (model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
