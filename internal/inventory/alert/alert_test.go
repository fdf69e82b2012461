package alert

import (
	"reflect"
	"testing"
	"time"

	"pharmatrack/internal/model"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func med(id string, qty, min int, expiry time.Time) model.Medicine {
	return model.Medicine{
		ID:            id,
		Name:          "Med " + id,
		BatchNumber:   "B-" + id,
		Quantity:      qty,
		MinStockLevel: min,
		ExpiryDate:    expiry,
	}
}

func kinds(alerts []model.Alert, id string) []model.AlertKind {
	var out []model.AlertKind
	for _, a := range alerts {
		if a.MedicineID == id {
			out = append(out, a.Kind)
		}
	}
	return out
}

func TestDerive_LowStock(t *testing.T) {
	farOut := testNow.AddDate(1, 0, 0)
	alerts := Derive([]model.Medicine{
		med("m1", 10, 10, farOut), // at threshold: alert
		med("m2", 11, 10, farOut), // above threshold: none
		med("m3", 0, 10, farOut),  // empty: alert
	}, testNow)

	if got := kinds(alerts, "m1"); !reflect.DeepEqual(got, []model.AlertKind{model.AlertLowStock}) {
		t.Fatalf("m1 alerts = %v, want low_stock only", got)
	}
	if got := kinds(alerts, "m2"); got != nil {
		t.Fatalf("m2 alerts = %v, want none", got)
	}
	if got := kinds(alerts, "m3"); !reflect.DeepEqual(got, []model.AlertKind{model.AlertLowStock}) {
		t.Fatalf("m3 alerts = %v, want low_stock only", got)
	}
}

func TestDerive_ExpiryWindow(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   model.AlertKind
		none   bool
	}{
		{"expires in 1 day", testNow.AddDate(0, 0, 1), model.AlertExpiring, false},
		{"expires in 30 days", testNow.AddDate(0, 0, 30), model.AlertExpiring, false},
		{"expires in 31 days", testNow.AddDate(0, 0, 31), "", true},
		{"expires right now", testNow, model.AlertExpired, false},
		{"expired yesterday", testNow.AddDate(0, 0, -1), model.AlertExpired, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := Derive([]model.Medicine{med("m1", 100, 10, tc.expiry)}, testNow)
			got := kinds(alerts, "m1")
			if tc.none {
				if got != nil {
					t.Fatalf("alerts = %v, want none", got)
				}
				return
			}
			if !reflect.DeepEqual(got, []model.AlertKind{tc.want}) {
				t.Fatalf("alerts = %v, want [%s]", got, tc.want)
			}
		})
	}
}

func TestDerive_ExpiredAndExpiringMutuallyExclusive(t *testing.T) {
	for d := -40; d <= 40; d++ {
		alerts := Derive([]model.Medicine{med("m1", 100, 10, testNow.AddDate(0, 0, d))}, testNow)
		var expired, expiring bool
		for _, a := range alerts {
			expired = expired || a.Kind == model.AlertExpired
			expiring = expiring || a.Kind == model.AlertExpiring
		}
		if expired && expiring {
			t.Fatalf("offset %d days: medicine flagged both expired and expiring", d)
		}
	}
}

func TestDerive_CombinedLowStockAndExpiring(t *testing.T) {
	alerts := Derive([]model.Medicine{med("m1", 5, 10, testNow.AddDate(0, 0, 15))}, testNow)
	got := kinds(alerts, "m1")
	want := []model.AlertKind{model.AlertLowStock, model.AlertExpiring}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("alerts = %v, want %v", got, want)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	meds := []model.Medicine{
		med("m1", 5, 10, testNow.AddDate(0, 0, 15)),
		med("m2", 100, 10, testNow.AddDate(0, 0, -2)),
		med("m3", 50, 10, testNow.AddDate(1, 0, 0)),
	}
	first := Derive(meds, testNow)
	second := Derive(meds, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recompute on unchanged collection differs:\n%v\n%v", first, second)
	}
}

func TestDerive_DuplicateRecordsCollapseByKey(t *testing.T) {
	m := med("m1", 5, 10, testNow.AddDate(1, 0, 0))
	alerts := Derive([]model.Medicine{m, m}, testNow)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1 (deduped by key)", len(alerts))
	}
}

func TestDerive_ZeroExpirySkipsDateAlerts(t *testing.T) {
	alerts := Derive([]model.Medicine{med("m1", 100, 10, time.Time{})}, testNow)
	if got := kinds(alerts, "m1"); got != nil {
		t.Fatalf("alerts = %v, want none for zero expiry", got)
	}
}

func TestDaysUntilExpiry_Ceil(t *testing.T) {
	cases := []struct {
		delta time.Duration
		want  int
	}{
		{36 * time.Hour, 2},
		{24 * time.Hour, 1},
		{time.Hour, 1},
		{0, 0},
		{-time.Hour, 0},
		{-25 * time.Hour, -1},
	}
	for _, tc := range cases {
		if got := DaysUntilExpiry(testNow.Add(tc.delta), testNow); got != tc.want {
			t.Errorf("DaysUntilExpiry(now%+v) = %d, want %d", tc.delta, got, tc.want)
		}
	}
}
