package handlers

import (
	"github.com/gofiber/fiber/v2"

	"grocerhub/internal/services"
)

type ReportHandler struct {
	Reports *services.ReportingService
}

// GET /admin/reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	return c.JSON(h.Reports.SalesSummary())
}

// GET /admin/reports/products
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.Reports.ProductSalesReport())
}

// GET /admin/reports/categories
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.Reports.RevenueByCategory())
}

// GET /admin/reports/customers
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	return c.JSON(h.Reports.CustomerAnalysis())
}

// GET /admin/reports/suppliers
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	return c.JSON(h.Reports.SupplierPerformanceReport())
}
