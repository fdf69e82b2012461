package model

import "time"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       Address   `json:"address"`
	LicenseNumber string    `json:"license_number"`
	TaxNumber     string    `json:"tax_number"`
	IsActive      bool      `json:"is_active"`
	OrderCount    int       `json:"order_count"` // derived, display-only
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
