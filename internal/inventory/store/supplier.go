package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

func (s *Store) CreateSupplier(ctx context.Context, input dto.CreateSupplierInput) (model.Supplier, error) {
	now := s.now()
	local := model.Supplier{
		ID:            uuid.New().String(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		LicenseNumber: input.LicenseNumber,
		TaxNumber:     input.TaxNumber,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.suppliers = append(s.suppliers, local)
	s.mu.Unlock()

	if !s.remote() {
		return local, nil
	}

	created, err := s.gw.CreateSupplier(ctx, input)
	if err != nil {
		s.logger.Warn("create supplier not mirrored, keeping local record",
			zap.String("id", local.ID), zap.Error(err))
		return local, nil
	}

	s.mu.Lock()
	if i := s.supplierIndexLocked(local.ID); i >= 0 && s.suppliers[i].UpdatedAt.Equal(local.UpdatedAt) {
		s.suppliers[i] = created
	}
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateSupplier(ctx context.Context, id string, input dto.UpdateSupplierInput) (model.Supplier, error) {
	if id == "" {
		return model.Supplier{}, inventory.ErrMissingID
	}

	now := s.now()
	s.mu.Lock()
	i := s.supplierIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Supplier{}, inventory.ErrNotFound
	}
	sup := s.suppliers[i]
	input.Apply(&sup)
	sup.UpdatedAt = now
	s.suppliers[i] = sup
	s.mu.Unlock()

	if !s.remote() {
		return sup, nil
	}

	updated, err := s.gw.UpdateSupplier(ctx, id, input)
	if err != nil {
		s.logger.Warn("update supplier not mirrored, local record stands",
			zap.String("id", id), zap.Error(err))
		return sup, nil
	}

	s.mu.Lock()
	if j := s.supplierIndexLocked(id); j >= 0 && s.suppliers[j].UpdatedAt.Equal(now) {
		s.suppliers[j] = updated
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	if id == "" {
		return inventory.ErrMissingID
	}

	s.mu.Lock()
	i := s.supplierIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return inventory.ErrNotFound
	}
	// Dependent orders keep their supplier reference; no cascading here.
	s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
	s.mu.Unlock()

	if s.remote() {
		if err := s.gw.DeleteSupplier(ctx, id); err != nil {
			s.logger.Warn("delete supplier not mirrored, local removal stands",
				zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}
