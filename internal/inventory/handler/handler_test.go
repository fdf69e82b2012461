package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/inventory/store"
	"pharmatrack/internal/model"
)

var errDown = errors.New("backend down")

// downGateway fails every operation; the store under test runs in
// fallback mode on the bundled dataset.
type downGateway struct{}

func (downGateway) ListMedicines(context.Context) ([]model.Medicine, error) { return nil, errDown }
func (downGateway) CreateMedicine(context.Context, dto.CreateMedicineInput) (model.Medicine, error) {
	return model.Medicine{}, errDown
}
func (downGateway) UpdateMedicine(context.Context, string, dto.UpdateMedicineInput) (model.Medicine, error) {
	return model.Medicine{}, errDown
}
func (downGateway) DeleteMedicine(context.Context, string) error { return errDown }
func (downGateway) ListSuppliers(context.Context) ([]model.Supplier, error) {
	return nil, errDown
}
func (downGateway) CreateSupplier(context.Context, dto.CreateSupplierInput) (model.Supplier, error) {
	return model.Supplier{}, errDown
}
func (downGateway) UpdateSupplier(context.Context, string, dto.UpdateSupplierInput) (model.Supplier, error) {
	return model.Supplier{}, errDown
}
func (downGateway) DeleteSupplier(context.Context, string) error { return errDown }
func (downGateway) ListOrders(context.Context) ([]model.Order, error) {
	return nil, errDown
}
func (downGateway) CreateOrder(context.Context, dto.CreateOrderInput) (model.Order, error) {
	return model.Order{}, errDown
}
func (downGateway) UpdateOrder(context.Context, string, dto.UpdateOrderInput) (model.Order, error) {
	return model.Order{}, errDown
}
func (downGateway) DeleteOrder(context.Context, string) error { return errDown }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(downGateway{}, zap.NewNop())
	s.Load(context.Background())

	h := NewInventoryHandler(s, nil, zap.NewNop())
	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	return env
}

func TestMedicineFlow(t *testing.T) {
	r := setupRouter(t)

	// list the bundled dataset
	w := doJSON(t, r, http.MethodGet, "/api/v1/medicines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code %v", w.Code)
	}
	var meds []model.Medicine
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &meds); err != nil || len(meds) != 5 {
		t.Fatalf("list: %d medicines (err %v), want 5", len(meds), err)
	}

	// create
	w = doJSON(t, r, http.MethodPost, "/api/v1/medicines", map[string]any{
		"name": "Cetirizine", "quantity": 60, "min_stock_level": 10,
		"expiry_date": time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create code %v: %s", w.Code, w.Body.String())
	}
	var created model.Medicine
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
		t.Fatalf("create: %+v (err %v)", created, err)
	}

	// update
	w = doJSON(t, r, http.MethodPut, "/api/v1/medicines/"+created.ID, map[string]any{
		"quantity": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update code %v", w.Code)
	}

	// the low-stock alert shows up synchronously
	w = doJSON(t, r, http.MethodGet, "/api/v1/alerts", nil)
	var alerts []model.Alert
	env = decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &alerts); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range alerts {
		if a.MedicineID == created.ID && a.Kind == model.AlertLowStock {
			found = true
		}
	}
	if !found {
		t.Fatalf("no low-stock alert for %s in %+v", created.ID, alerts)
	}

	// delete
	w = doJSON(t, r, http.MethodDelete, "/api/v1/medicines/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code %v", w.Code)
	}
}

func TestUpdateUnknownMedicine(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPut, "/api/v1/medicines/nope", map[string]any{"quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("code %v, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success || env.Error == "" {
		t.Fatalf("envelope %+v, want failure with message", env)
	}
}

func TestStatusReportsFallback(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code %v", w.Code)
	}
	var status struct {
		Mode      inventory.Mode `json:"mode"`
		LastError string         `json:"last_error"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatal(err)
	}
	if status.Mode != inventory.ModeFallback || status.LastError == "" {
		t.Fatalf("status = %+v, want fallback with recorded error", status)
	}
}
