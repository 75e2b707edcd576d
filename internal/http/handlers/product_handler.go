package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"grocerhub/internal/domain"
	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
	"grocerhub/internal/validate"
)

type ProductHandler struct {
	Catalog   *services.CatalogService
	Threshold int
}

type productView struct {
	domain.Product
	StockStatus string `json:"stock_status"`
}

func (h *ProductHandler) view(p domain.Product) productView {
	return productView{Product: p, StockStatus: p.StockStatus(h.Threshold)}
}

// GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.Catalog.ListProducts()
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, h.view(p))
	}
	return c.JSON(out)
}

// GET /products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(h.view(p))
}

// GET /products/search?q=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return badRequest(c, "missing q")
	}
	products := h.Catalog.SearchByName(q)
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, h.view(p))
	}
	return c.JSON(out)
}

type productReq struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// POST /admin/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "invalid product name")
	}
	qty, ok := validate.Qty(req.Quantity)
	if !ok {
		return badRequest(c, "invalid quantity")
	}
	price, ok := validate.Price(req.Price)
	if !ok {
		return badRequest(c, "invalid price")
	}
	p, err := h.Catalog.AddProduct(name, req.Category, qty, price)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "catalog.product.add", map[string]any{"id": p.ID, "name": p.Name})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /admin/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	current, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Name != "" {
		name, ok := validate.Name(req.Name)
		if !ok {
			return badRequest(c, "invalid product name")
		}
		current.Name = name
	}
	if req.Category != "" {
		current.Category = req.Category
	}
	if req.Quantity != "" {
		qty, ok := validate.Qty(req.Quantity)
		if !ok {
			return badRequest(c, "invalid quantity")
		}
		current.Quantity = qty
	}
	if req.Price != "" {
		price, ok := validate.Price(req.Price)
		if !ok {
			return badRequest(c, "invalid price")
		}
		current.Price = price
	}
	if err := h.Catalog.UpdateProduct(current); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "catalog.product.update", map[string]any{"id": current.ID})
	return c.JSON(current)
}

// DELETE /admin/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "catalog.product.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}
