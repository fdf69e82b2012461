// Package handler exposes the inventory store over HTTP for the
// dashboard. Handlers only bind JSON and translate store errors; field
// validation belongs to the consumer UI, not this layer.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmatrack/internal/inventory"
	"pharmatrack/internal/inventory/dto"
	"pharmatrack/internal/prefs"
)

type InventoryHandler struct {
	store  inventory.Store
	prefs  *prefs.Store
	logger *zap.Logger
}

func NewInventoryHandler(store inventory.Store, prefStore *prefs.Store, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		store:  store,
		prefs:  prefStore,
		logger: logger,
	}
}

func (h *InventoryHandler) Register(r *gin.RouterGroup) {
	medicines := r.Group("/medicines")
	{
		medicines.GET("", h.ListMedicines)
		medicines.POST("", h.CreateMedicine)
		medicines.PUT("/:id", h.UpdateMedicine)
		medicines.DELETE("/:id", h.DeleteMedicine)
	}

	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.POST("", h.CreateSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	r.GET("/alerts", h.ListAlerts)
	r.GET("/status", h.Status)

	if h.prefs != nil {
		r.GET("/prefs", h.GetPrefs)
		r.PUT("/prefs", h.PutPrefs)
	}
}

// Helper functions
func (h *InventoryHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *InventoryHandler) error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

func (h *InventoryHandler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inventory.ErrMissingID):
		h.error(c, http.StatusBadRequest, "missing id")
	case errors.Is(err, inventory.ErrNotFound):
		h.error(c, http.StatusNotFound, "not found")
	default:
		h.error(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *InventoryHandler) ListMedicines(c *gin.Context) {
	h.success(c, h.store.Medicines())
}

func (h *InventoryHandler) CreateMedicine(c *gin.Context) {
	var input dto.CreateMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	m, err := h.store.CreateMedicine(c.Request.Context(), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, m)
}

func (h *InventoryHandler) UpdateMedicine(c *gin.Context) {
	var input dto.UpdateMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	m, err := h.store.UpdateMedicine(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, m)
}

func (h *InventoryHandler) DeleteMedicine(c *gin.Context) {
	if err := h.store.DeleteMedicine(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, nil)
}

func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	h.success(c, h.store.Suppliers())
}

func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var input dto.CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s, err := h.store.CreateSupplier(c.Request.Context(), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, s)
}

func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	var input dto.UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s, err := h.store.UpdateSupplier(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, s)
}

func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	if err := h.store.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, nil)
}

func (h *InventoryHandler) ListOrders(c *gin.Context) {
	h.success(c, h.store.Orders())
}

func (h *InventoryHandler) CreateOrder(c *gin.Context) {
	var input dto.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	o, err := h.store.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, o)
}

func (h *InventoryHandler) UpdateOrder(c *gin.Context) {
	var input dto.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	o, err := h.store.UpdateOrder(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, o)
}

func (h *InventoryHandler) DeleteOrder(c *gin.Context) {
	if err := h.store.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	h.success(c, nil)
}

func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	h.success(c, h.store.Alerts())
}

func (h *InventoryHandler) Status(c *gin.Context) {
	lastErr := ""
	if err := h.store.LastError(); err != nil {
		lastErr = err.Error()
	}
	h.success(c, gin.H{
		"mode":       h.store.Mode(),
		"last_error": lastErr,
	})
}

func (h *InventoryHandler) GetPrefs(c *gin.Context) {
	p, err := h.prefs.Load(c.Request.Context())
	if err != nil {
		h.logger.Warn("preference load failed, serving defaults", zap.Error(err))
	}
	h.success(c, p)
}

func (h *InventoryHandler) PutPrefs(c *gin.Context) {
	var p prefs.Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.prefs.Save(c.Request.Context(), p); err != nil {
		h.error(c, http.StatusInternalServerError, "Failed to save preferences: "+err.Error())
		return
	}
	h.success(c, p)
}
