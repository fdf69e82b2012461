// Package gateway implements the remote data source over the backend's
// REST API. It is deliberately thin: one request per operation, no
// retries, no caching, and no interpretation of business rules.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/model"
)

type REST struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ inventory.Gateway = (*REST)(nil)

func NewREST(baseURL string, timeout time.Duration, logger *zap.Logger) *REST {
	return &REST{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (g *REST) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	return listResource[model.Medicine](g, ctx, "/api/medicines", "medicines", "list medicines")
}

func (g *REST) CreateMedicine(ctx context.Context, input dto.CreateMedicineInput) (model.Medicine, error) {
	return writeResource[model.Medicine](g, ctx, http.MethodPost, "/api/medicines", input, "create medicine")
}

func (g *REST) UpdateMedicine(ctx context.Context, id string, input dto.UpdateMedicineInput) (model.Medicine, error) {
	return writeResource[model.Medicine](g, ctx, http.MethodPut, "/api/medicines/"+id, input, "update medicine")
}

func (g *REST) DeleteMedicine(ctx context.Context, id string) error {
	return g.delete(ctx, "/api/medicines/"+id, "delete medicine")
}

func (g *REST) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return listResource[model.Supplier](g, ctx, "/api/suppliers", "suppliers", "list suppliers")
}

func (g *REST) CreateSupplier(ctx context.Context, input dto.CreateSupplierInput) (model.Supplier, error) {
	return writeResource[model.Supplier](g, ctx, http.MethodPost, "/api/suppliers", input, "create supplier")
}

func (g *REST) UpdateSupplier(ctx context.Context, id string, input dto.UpdateSupplierInput) (model.Supplier, error) {
	return writeResource[model.Supplier](g, ctx, http.MethodPut, "/api/suppliers/"+id, input, "update supplier")
}

func (g *REST) DeleteSupplier(ctx context.Context, id string) error {
	return g.delete(ctx, "/api/suppliers/"+id, "delete supplier")
}

func (g *REST) ListOrders(ctx context.Context) ([]model.Order, error) {
	return listResource[model.Order](g, ctx, "/api/orders", "orders", "list orders")
}

func (g *REST) CreateOrder(ctx context.Context, input dto.CreateOrderInput) (model.Order, error) {
	return writeResource[model.Order](g, ctx, http.MethodPost, "/api/orders", input, "create order")
}

func (g *REST) UpdateOrder(ctx context.Context, id string, input dto.UpdateOrderInput) (model.Order, error) {
	return writeResource[model.Order](g, ctx, http.MethodPut, "/api/orders/"+id, input, "update order")
}

func (g *REST) DeleteOrder(ctx context.Context, id string) error {
	return g.delete(ctx, "/api/orders/"+id, "delete order")
}

func listResource[T any](g *REST, ctx context.Context, path, key, op string) ([]T, error) {
	body, err := g.do(ctx, http.MethodGet, path, nil, op)
	if err != nil {
		return nil, err
	}
	raw, err := extractCollection(body, key)
	if err != nil {
		return nil, &inventory.GatewayError{Op: op, Err: err}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &inventory.GatewayError{Op: op, Err: err}
	}
	return out, nil
}

func writeResource[T any](g *REST, ctx context.Context, method, path string, payload any, op string) (T, error) {
	var zero T
	body, err := g.do(ctx, method, path, payload, op)
	if err != nil {
		return zero, err
	}
	raw, err := extractRecord(body)
	if err != nil {
		return zero, &inventory.GatewayError{Op: op, Err: err}
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &inventory.GatewayError{Op: op, Err: err}
	}
	return out, nil
}

func (g *REST) delete(ctx context.Context, path, op string) error {
	_, err := g.do(ctx, http.MethodDelete, path, nil, op)
	return err
}

func (g *REST) do(ctx context.Context, method, path string, payload any, op string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, &inventory.GatewayError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, &inventory.GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &inventory.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &inventory.GatewayError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Debug("backend request failed",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return nil, &inventory.GatewayError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	return body, nil
}
