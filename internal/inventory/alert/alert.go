// Package alert derives operational alerts from the medicine collection.
// Derivation is a pure function of the collection and a point in time; the
// result is fully recomputed on every call, never patched incrementally.
package alert

import (
	"fmt"
	"math"
	"time"

	"pharmatrack/internal/model"
)

// ExpiryWindowDays is the horizon for expiring alerts.
const ExpiryWindowDays = 30

// DaysUntilExpiry counts remaining days as ceil((expiry-now)/24h).
// Zero or negative means the batch has expired.
func DaysUntilExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// Derive returns the alert list for the given medicines. Per medicine:
// low-stock when quantity <= minimum stock level, expired when the expiry
// date has passed, expiring when it falls within the next 30 days. Expired
// and expiring are mutually exclusive; low-stock can combine with either.
func Derive(medicines []model.Medicine, now time.Time) []model.Alert {
	alerts := make([]model.Alert, 0, len(medicines))
	seen := make(map[model.AlertKey]struct{}, len(medicines))

	add := func(a model.Alert) {
		if _, dup := seen[a.Key()]; dup {
			return
		}
		seen[a.Key()] = struct{}{}
		alerts = append(alerts, a)
	}

	for _, m := range medicines {
		if m.Quantity <= m.MinStockLevel {
			add(model.Alert{
				Kind:          model.AlertLowStock,
				MedicineID:    m.ID,
				MedicineName:  m.Name,
				Quantity:      m.Quantity,
				MinStockLevel: m.MinStockLevel,
				Message:       fmt.Sprintf("%s is low on stock: %d left (minimum %d)", m.Name, m.Quantity, m.MinStockLevel),
			})
		}

		if m.ExpiryDate.IsZero() {
			continue
		}
		days := DaysUntilExpiry(m.ExpiryDate, now)
		switch {
		case days <= 0:
			add(model.Alert{
				Kind:            model.AlertExpired,
				MedicineID:      m.ID,
				MedicineName:    m.Name,
				Quantity:        m.Quantity,
				MinStockLevel:   m.MinStockLevel,
				DaysUntilExpiry: days,
				ExpiryDate:      m.ExpiryDate,
				Message:         fmt.Sprintf("%s (batch %s) has expired", m.Name, m.BatchNumber),
			})
		case days <= ExpiryWindowDays:
			add(model.Alert{
				Kind:            model.AlertExpiring,
				MedicineID:      m.ID,
				MedicineName:    m.Name,
				Quantity:        m.Quantity,
				MinStockLevel:   m.MinStockLevel,
				DaysUntilExpiry: days,
				ExpiryDate:      m.ExpiryDate,
				Message:         fmt.Sprintf("%s (batch %s) expires in %d days", m.Name, m.BatchNumber, days),
			})
		}
	}

	return alerts
}
