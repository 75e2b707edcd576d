package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "grocerhub/internal/log"
	"grocerhub/internal/services"
	"grocerhub/internal/validate"
)

type SupplierHandler struct {
	Suppliers *services.SupplierService
}

// GET /admin/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Suppliers.ListSuppliers())
}

// GET /admin/suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	sup, err := h.Suppliers.GetSupplier(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sup)
}

type supplierReq struct {
	Name             string   `json:"name"`
	ContactPerson    string   `json:"contact_person"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Address          string   `json:"address"`
	ProductsSupplied []string `json:"products_supplied"`
}

// POST /admin/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req supplierReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "invalid supplier name")
	}
	contact, ok := validate.Name(req.ContactPerson)
	if !ok {
		return badRequest(c, "invalid contact person")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return badRequest(c, "invalid phone number")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	sup, err := h.Suppliers.AddSupplier(name, contact, phone, email, req.Address, req.ProductsSupplied)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.add", map[string]any{"id": sup.ID, "name": sup.Name})
	return c.Status(fiber.StatusCreated).JSON(sup)
}

// PUT /admin/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	sup, err := h.Suppliers.GetSupplier(id)
	if err != nil {
		return fail(c, err)
	}
	var req supplierReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Name != "" {
		sup.Name = req.Name
	}
	if req.ContactPerson != "" {
		sup.ContactPerson = req.ContactPerson
	}
	if req.Phone != "" {
		phone, ok := validate.Phone(req.Phone)
		if !ok {
			return badRequest(c, "invalid phone number")
		}
		sup.Phone = phone
	}
	if req.Email != "" {
		email, ok := validate.Email(req.Email)
		if !ok {
			return badRequest(c, "invalid email")
		}
		sup.Email = email
	}
	if req.Address != "" {
		sup.Address = req.Address
	}
	if req.ProductsSupplied != nil {
		sup.ProductsSupplied = req.ProductsSupplied
	}
	if err := h.Suppliers.UpdateInfo(sup); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.update", map[string]any{"id": sup.ID})
	return c.JSON(sup)
}

type ratingReq struct {
	Rating float64 `json:"rating"`
}

// PUT /admin/suppliers/:id/rating
func (h *SupplierHandler) UpdateRating(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	var req ratingReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Suppliers.UpdateRating(id, req.Rating); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.rating", map[string]any{"id": id, "rating": req.Rating})
	return c.JSON(fiber.Map{"ok": true})
}

type supplierStatusReq struct {
	Status string `json:"status"`
}

// PUT /admin/suppliers/:id/status
func (h *SupplierHandler) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	var req supplierStatusReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Suppliers.SetStatus(id, req.Status); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.status", map[string]any{"id": id, "status": req.Status})
	return c.JSON(fiber.Map{"ok": true})
}

// DELETE /admin/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	if err := h.Suppliers.DeleteSupplier(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}

type purchaseReq struct {
	ProductID int     `json:"product_id"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// POST /admin/suppliers/:id/purchase. One purchase restocks the product and
// updates the supplier totals together.
func (h *SupplierHandler) RecordPurchase(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	var req purchaseReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	sum, err := h.Suppliers.RecordPurchaseOrder(id, req.ProductID, req.Qty, req.UnitPrice)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "suppliers.purchase", map[string]any{
		"supplier_id": id, "product_id": req.ProductID, "total": sum.Total,
	})
	return c.Status(fiber.StatusCreated).JSON(sum)
}
