package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"grocerhub/internal/domain"
	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
)

type CartHandler struct {
	Shop *services.ShopService
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cart := h.Shop.ViewCart(sid)
	return c.JSON(fiber.Map{
		"items": cart.Items,
		"total": cart.Total(),
		"count": cart.ItemCount(),
	})
}

type cartReq struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Qty < 1 {
		req.Qty = 1
	}
	if err := h.Shop.AddToCart(sid, req.ProductID, req.Qty); err != nil {
		return fail(c, err)
	}
	return h.View(c)
}

// DELETE /cart/:productId
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	h.Shop.RemoveFromCart(sid, id)
	return h.View(c)
}

// POST /checkout
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u := c.Locals("user").(*domain.User)
	order, err := h.Shop.Checkout(sid, u)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "shop.checkout", map[string]any{
		"order_id": order.OrderID,
		"total":    order.CalculateTotal(),
	})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GET /orders/mine
func (h *CartHandler) MyOrders(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	orders := h.Shop.MyOrders(u.Phone)
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(orders)
}
