// Package store holds the in-memory copy of the three collections and the
// alert list derived from the medicines.
//
// Mutations are optimistic: the local collection changes first and the
// change is then mirrored to the remote gateway when the store is in
// remote mode. A failed mirror never rolls the local change back — it is
// logged and the local record becomes the source of truth. Fallback mode
// is entered only by a failed initial load; a mutation failure never
// degrades the mode, and there is no path back from fallback short of a
// fresh Load.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/alert"
	"pharmatrack/internal/inventory/fallback"
	"pharmatrack/internal/model"
)

type Store struct {
	gw     inventory.Gateway
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	mode      inventory.Mode
	lastErr   error
	medicines []model.Medicine
	suppliers []model.Supplier
	orders    []model.Order
	alerts    []model.Alert
}

var _ inventory.Store = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(gw inventory.Gateway, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		gw:     gw,
		logger: logger,
		now:    time.Now,
		mode:   inventory.ModeLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches all three collections concurrently. Adoption is
// all-or-nothing: if any fetch fails, every partial result is discarded
// and the bundled fallback dataset is loaded instead. Load never returns
// an error — a failed load is surfaced through Mode and LastError.
func (s *Store) Load(ctx context.Context) {
	var (
		wg   sync.WaitGroup
		meds []model.Medicine
		sups []model.Supplier
		ords []model.Order
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		meds, errs[0] = s.gw.ListMedicines(ctx)
	}()
	go func() {
		defer wg.Done()
		sups, errs[1] = s.gw.ListSuppliers(ctx)
	}()
	go func() {
		defer wg.Done()
		ords, errs[2] = s.gw.ListOrders(ctx)
	}()
	wg.Wait()

	mode := inventory.ModeRemote
	var loadErr error
	for _, err := range errs {
		if err != nil {
			loadErr = err
			break
		}
	}
	if loadErr != nil {
		s.logger.Warn("remote load failed, adopting bundled dataset", zap.Error(loadErr))
		meds, sups, ords = fallback.Dataset(s.now())
		mode = inventory.ModeFallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.medicines = meds
	s.suppliers = sups
	s.orders = ords
	s.mode = mode
	s.lastErr = loadErr
	s.refreshAlertsLocked()
}

func (s *Store) Mode() inventory.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Accessors hand out copies; the store's own slices are never shared.

func (s *Store) Medicines() []model.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Medicine, len(s.medicines))
	copy(out, s.medicines)
	return out
}

func (s *Store) Suppliers() []model.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(s.suppliers))
	for _, o := range s.orders {
		counts[o.SupplierID]++
	}
	out := make([]model.Supplier, len(s.suppliers))
	for i, sup := range s.suppliers {
		sup.OrderCount = counts[sup.ID]
		out[i] = sup
	}
	return out
}

func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		items := make([]model.OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		out[i] = o
	}
	return out
}

func (s *Store) Alerts() []model.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// refreshAlertsLocked recomputes the alert list from scratch. Called with
// the lock held after every change to the medicine collection.
func (s *Store) refreshAlertsLocked() {
	s.alerts = alert.Derive(s.medicines, s.now())
}

func (s *Store) remote() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode == inventory.ModeRemote
}

func (s *Store) medicineIndexLocked(id string) int {
	for i := range s.medicines {
		if s.medicines[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) supplierIndexLocked(id string) int {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) orderIndexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
