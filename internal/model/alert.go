package model

import "time"

type AlertKind string

const (
	AlertLowStock AlertKind = "low_stock"
	AlertExpiring AlertKind = "expiring"
	AlertExpired  AlertKind = "expired"
)

// AlertKey identifies an alert by medicine and kind. Two alerts with the
// same key describe the same condition on the same record.
type AlertKey struct {
	MedicineID string    `json:"medicine_id"`
	Kind       AlertKind `json:"kind"`
}

type Alert struct {
	Kind            AlertKind `json:"kind"`
	MedicineID      string    `json:"medicine_id"`
	MedicineName    string    `json:"medicine_name"`
	Quantity        int       `json:"quantity"`
	MinStockLevel   int       `json:"min_stock_level"`
	DaysUntilExpiry int       `json:"days_until_expiry,omitempty"`
	ExpiryDate      time.Time `json:"expiry_date,omitempty"`
	Message         string    `json:"message"`
}

func (a Alert) Key() AlertKey {
	return AlertKey{MedicineID: a.MedicineID, Kind: a.Kind}
}
