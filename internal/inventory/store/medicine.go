package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

func (s *Store) CreateMedicine(ctx context.Context, input dto.CreateMedicineInput) (model.Medicine, error) {
	now := s.now()
	local := model.Medicine{
		ID:            uuid.New().String(),
		Name:          input.Name,
		GenericName:   input.GenericName,
		Category:      input.Category,
		Manufacturer:  input.Manufacturer,
		BatchNumber:   input.BatchNumber,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		UnitPrice:     input.UnitPrice,
		MinStockLevel: input.MinStockLevel,
		MaxStockLevel: input.MaxStockLevel,
		ExpiryDate:    input.ExpiryDate,
		SupplierID:    input.SupplierID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.medicines = append(s.medicines, local)
	s.refreshAlertsLocked()
	s.mu.Unlock()

	if !s.remote() {
		return local, nil
	}

	created, err := s.gw.CreateMedicine(ctx, input)
	if err != nil {
		s.logger.Warn("create medicine not mirrored, keeping local record",
			zap.String("id", local.ID), zap.Error(err))
		return local, nil
	}

	// Swap the optimistic record for the authoritative one, unless it was
	// edited or removed while the request was in flight.
	s.mu.Lock()
	if i := s.medicineIndexLocked(local.ID); i >= 0 && s.medicines[i].UpdatedAt.Equal(local.UpdatedAt) {
		s.medicines[i] = created
		s.refreshAlertsLocked()
	}
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateMedicine(ctx context.Context, id string, input dto.UpdateMedicineInput) (model.Medicine, error) {
	if id == "" {
		return model.Medicine{}, inventory.ErrMissingID
	}

	now := s.now()
	s.mu.Lock()
	i := s.medicineIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Medicine{}, inventory.ErrNotFound
	}
	m := s.medicines[i]
	input.Apply(&m)
	m.UpdatedAt = now
	s.medicines[i] = m
	s.refreshAlertsLocked()
	s.mu.Unlock()

	if !s.remote() {
		return m, nil
	}

	updated, err := s.gw.UpdateMedicine(ctx, id, input)
	if err != nil {
		s.logger.Warn("update medicine not mirrored, local record stands",
			zap.String("id", id), zap.Error(err))
		return m, nil
	}

	s.mu.Lock()
	if j := s.medicineIndexLocked(id); j >= 0 && s.medicines[j].UpdatedAt.Equal(now) {
		s.medicines[j] = updated
		s.refreshAlertsLocked()
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteMedicine(ctx context.Context, id string) error {
	if id == "" {
		return inventory.ErrMissingID
	}

	s.mu.Lock()
	i := s.medicineIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return inventory.ErrNotFound
	}
	// Orders referencing this medicine are left untouched; references are
	// weak and there is no cascading in this layer.
	s.medicines = append(s.medicines[:i], s.medicines[i+1:]...)
	s.refreshAlertsLocked()
	s.mu.Unlock()

	if s.remote() {
		if err := s.gw.DeleteMedicine(ctx, id); err != nil {
			s.logger.Warn("delete medicine not mirrored, local removal stands",
				zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}
