// Package fallback holds the bundled sample dataset the store adopts when
// the remote data source is unreachable at startup.
package fallback

import (
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
)

// Dataset returns the sample collections. Expiry and order dates are built
// relative to now so the derived alerts stay meaningful regardless of when
// the process starts.
func Dataset(now time.Time) ([]model.Medicine, []model.Supplier, []model.Order) {
	return medicines(now), suppliers(now), orders(now)
}

func medicines(now time.Time) []model.Medicine {
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }

	return []model.Medicine{
		{
			ID:            "MED-001",
			Name:          "Paracetamol 500mg",
			GenericName:   "Acetaminophen",
			Category:      "Analgesic",
			Manufacturer:  "Cipla Ltd",
			BatchNumber:   "PCM-2403",
			Quantity:      250,
			Unit:          "tablets",
			UnitPrice:     decimal.NewFromFloat(0.15),
			MinStockLevel: 50,
			MaxStockLevel: 1000,
			ExpiryDate:    days(540),
			SupplierID:    "SUP-001",
			IsActive:      true,
			CreatedAt:     days(-120),
			UpdatedAt:     days(-14),
		},
		{
			ID:            "MED-002",
			Name:          "Amoxicillin 250mg",
			GenericName:   "Amoxicillin",
			Category:      "Antibiotic",
			Manufacturer:  "GSK",
			BatchNumber:   "AMX-2311",
			Quantity:      30,
			Unit:          "capsules",
			UnitPrice:     decimal.NewFromFloat(0.45),
			MinStockLevel: 40,
			MaxStockLevel: 500,
			ExpiryDate:    days(180),
			SupplierID:    "SUP-002",
			IsActive:      true,
			CreatedAt:     days(-200),
			UpdatedAt:     days(-3),
		},
		{
			ID:            "MED-003",
			Name:          "Insulin Glargine 100IU",
			GenericName:   "Insulin glargine",
			Category:      "Antidiabetic",
			Manufacturer:  "Sanofi",
			BatchNumber:   "INS-2406",
			Quantity:      45,
			Unit:          "vials",
			UnitPrice:     decimal.NewFromFloat(24.90),
			MinStockLevel: 10,
			MaxStockLevel: 120,
			ExpiryDate:    days(20),
			SupplierID:    "SUP-003",
			IsActive:      true,
			CreatedAt:     days(-90),
			UpdatedAt:     days(-7),
		},
		{
			ID:            "MED-004",
			Name:          "Ibuprofen 400mg",
			GenericName:   "Ibuprofen",
			Category:      "NSAID",
			Manufacturer:  "Abbott",
			BatchNumber:   "IBU-2309",
			Quantity:      500,
			Unit:          "tablets",
			UnitPrice:     decimal.NewFromFloat(0.20),
			MinStockLevel: 100,
			MaxStockLevel: 2000,
			ExpiryDate:    days(-10),
			SupplierID:    "SUP-001",
			IsActive:      true,
			CreatedAt:     days(-400),
			UpdatedAt:     days(-30),
		},
		{
			ID:            "MED-005",
			Name:          "Omeprazole 20mg",
			GenericName:   "Omeprazole",
			Category:      "Antacid",
			Manufacturer:  "Dr. Reddy's",
			BatchNumber:   "OMP-2405",
			Quantity:      120,
			Unit:          "capsules",
			UnitPrice:     decimal.NewFromFloat(0.32),
			MinStockLevel: 30,
			MaxStockLevel: 600,
			ExpiryDate:    days(90),
			SupplierID:    "SUP-002",
			IsActive:      true,
			CreatedAt:     days(-60),
			UpdatedAt:     days(-1),
		},
	}
}

func suppliers(now time.Time) []model.Supplier {
	return []model.Supplier{
		{
			ID:            "SUP-001",
			Name:          "MediSupply Co",
			ContactPerson: "Rachel Tan",
			Email:         "orders@medisupply.example",
			Phone:         "+65 6555 0134",
			Address: model.Address{
				Street:  "12 Harbour Rd",
				City:    "Singapore",
				State:   "",
				Zip:     "099012",
				Country: "SG",
			},
			LicenseNumber: "PHL-88213",
			TaxNumber:     "TX-201544",
			IsActive:      true,
			CreatedAt:     now.AddDate(-1, 0, 0),
			UpdatedAt:     now.AddDate(0, -1, 0),
		},
		{
			ID:            "SUP-002",
			Name:          "PharmaDirect Ltd",
			ContactPerson: "Daniel Okoye",
			Email:         "sales@pharmadirect.example",
			Phone:         "+44 20 7946 0821",
			Address: model.Address{
				Street:  "4 Riverside Park",
				City:    "Leeds",
				State:   "West Yorkshire",
				Zip:     "LS1 4AP",
				Country: "UK",
			},
			LicenseNumber: "PHL-11276",
			TaxNumber:     "TX-774910",
			IsActive:      true,
			CreatedAt:     now.AddDate(-2, 0, 0),
			UpdatedAt:     now.AddDate(0, -2, 0),
		},
		{
			ID:            "SUP-003",
			Name:          "BioCare Distributors",
			ContactPerson: "Maria Santos",
			Email:         "contact@biocare.example",
			Phone:         "+1 415 555 0192",
			Address: model.Address{
				Street:  "880 Mission St",
				City:    "San Francisco",
				State:   "CA",
				Zip:     "94103",
				Country: "US",
			},
			LicenseNumber: "PHL-55902",
			TaxNumber:     "TX-340087",
			IsActive:      true,
			CreatedAt:     now.AddDate(0, -8, 0),
			UpdatedAt:     now.AddDate(0, 0, -20),
		},
	}
}

func orders(now time.Time) []model.Order {
	expected := now.AddDate(0, 0, 7)
	delivered := now.AddDate(0, 0, -12)

	restock := []model.OrderItem{
		{
			MedicineID: "MED-002",
			Quantity:   300,
			UnitPrice:  decimal.NewFromFloat(0.40),
			LineTotal:  decimal.NewFromFloat(120.00),
		},
	}
	monthly := []model.OrderItem{
		{
			MedicineID: "MED-001",
			Quantity:   500,
			UnitPrice:  decimal.NewFromFloat(0.12),
			LineTotal:  decimal.NewFromFloat(60.00),
		},
		{
			MedicineID: "MED-005",
			Quantity:   200,
			UnitPrice:  decimal.NewFromFloat(0.28),
			LineTotal:  decimal.NewFromFloat(56.00),
		},
	}

	return []model.Order{
		{
			ID:               "ORD-001",
			OrderNumber:      "PO-REST-0001",
			SupplierID:       "SUP-002",
			Items:            restock,
			TotalAmount:      decimal.NewFromFloat(120.00),
			Status:           model.OrderStatusPending,
			OrderDate:        now.AddDate(0, 0, -2),
			ExpectedDelivery: &expected,
			Notes:            "Urgent restock, amoxicillin below reorder level",
			CreatedAt:        now.AddDate(0, 0, -2),
			UpdatedAt:        now.AddDate(0, 0, -2),
		},
		{
			ID:             "ORD-002",
			OrderNumber:    "PO-MNTH-0014",
			SupplierID:     "SUP-001",
			Items:          monthly,
			TotalAmount:    decimal.NewFromFloat(116.00),
			Status:         model.OrderStatusDelivered,
			OrderDate:      now.AddDate(0, 0, -20),
			ActualDelivery: &delivered,
			Notes:          "Monthly replenishment",
			CreatedAt:      now.AddDate(0, 0, -20),
			UpdatedAt:      delivered,
		},
	}
}
