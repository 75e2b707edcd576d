package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /admin/inventory/status?threshold=
func (h *InventoryHandler) Status(c *fiber.Ctx) error {
	threshold := 0
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return badRequest(c, "invalid threshold")
		}
		threshold = n
	}
	return c.JSON(h.Inv.StockStatusReport(threshold))
}

type restockReq struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

// POST /admin/inventory/restock
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var req restockReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	p, err := h.Inv.Restock(req.ProductID, req.Qty)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.restock", map[string]any{"product_id": p.ID, "qty": req.Qty, "stock": p.Quantity})
	return c.JSON(p)
}

type bulkRestockReq struct {
	Quantities map[int]int `json:"quantities"`
}

// POST /admin/inventory/restock/bulk
func (h *InventoryHandler) BulkRestock(c *fiber.Ctx) error {
	var req bulkRestockReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	applied, err := h.Inv.BulkRestock(req.Quantities)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "inventory.restock.bulk", map[string]any{"applied": applied})
	return c.JSON(fiber.Map{"applied": applied})
}

// GET /admin/inventory/value
func (h *InventoryHandler) Value(c *fiber.Ctx) error {
	return c.JSON(h.Inv.InventoryValue())
}

// GET /admin/inventory/turnover
func (h *InventoryHandler) Turnover(c *fiber.Ctx) error {
	return c.JSON(h.Inv.TurnoverReport())
}

// GET /admin/inventory/forecast
func (h *InventoryHandler) Forecast(c *fiber.Ctx) error {
	return c.JSON(h.Inv.StockForecast())
}
