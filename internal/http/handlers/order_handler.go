package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"grocerhub/internal/domain"
	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
)

// OrderHandler is the admin view over the order collection.
type OrderHandler struct {
	Orders *services.OrderService
}

// GET /admin/orders?status=&customer=
func (h *OrderHandler) List(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		orders, err := h.Orders.OrdersByStatus(status)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(orders)
	}
	if phone := c.Query("customer"); phone != "" {
		return c.JSON(h.Orders.OrdersByCustomer(phone))
	}
	return c.JSON(h.Orders.ListOrders())
}

// GET /admin/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	o, err := h.Orders.GetOrder(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(o)
}

type statusReq struct {
	Status string `json:"status"`
}

// PUT /admin/orders/:id/status. Completed is assigned only at checkout and
// deliberately not offered here.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Status == domain.StatusCompleted {
		return badRequest(c, "status Completed is assigned at checkout only")
	}
	if err := h.Orders.UpdateStatus(id, req.Status); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "orders.status.update", map[string]any{"order_id": id, "status": req.Status})
	return c.JSON(fiber.Map{"ok": true})
}

// DELETE /admin/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	if err := h.Orders.DeleteOrder(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "orders.delete", map[string]any{"order_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// GET /admin/orders/revenue
func (h *OrderHandler) Revenue(c *fiber.Ctx) error {
	return c.JSON(h.Orders.Revenue())
}
