package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"grocerhub/internal/config"
	"grocerhub/internal/http/handlers"
	applog "grocerhub/internal/log"
	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	store := repos.NewStore(cfg.DataDir)
	if err := store.Init(); err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(store)
	authSvc := services.NewAuthService(userRepo)
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
				c.Locals("phone", u.Phone)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(store, cfg, authSvc)

	// Public catalog
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.ProductHandler.Search)
	app.Get("/products/:id", deps.ProductHandler.Get)

	// Auth routes (login throttled)
	app.Post("/signup", authH.Signup)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Logged-in user surface
	user := app.Group("", handlers.RequireUser(authSvc))
	user.Get("/profile", authH.Profile)
	user.Put("/profile", authH.UpdateProfile)
	user.Get("/cart", deps.CartHandler.View)
	user.Post("/cart", deps.CartHandler.Add)
	user.Delete("/cart/:productId", deps.CartHandler.Remove)
	user.Post("/checkout", deps.CartHandler.Checkout)
	user.Get("/orders/mine", deps.CartHandler.MyOrders)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Delete("/users/:phone", deps.AdminHandler.DeleteUser)

	admin.Post("/products", deps.ProductHandler.Create)
	admin.Put("/products/:id", deps.ProductHandler.Update)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)

	admin.Get("/orders", deps.OrderHandler.List)
	admin.Get("/orders/revenue", deps.OrderHandler.Revenue)
	admin.Get("/orders/:id", deps.OrderHandler.Get)
	admin.Put("/orders/:id/status", deps.OrderHandler.UpdateStatus)
	admin.Delete("/orders/:id", deps.OrderHandler.Delete)

	admin.Get("/suppliers", deps.SupplierHandler.List)
	admin.Post("/suppliers", deps.SupplierHandler.Create)
	admin.Get("/suppliers/:id", deps.SupplierHandler.Get)
	admin.Put("/suppliers/:id", deps.SupplierHandler.Update)
	admin.Put("/suppliers/:id/rating", deps.SupplierHandler.UpdateRating)
	admin.Put("/suppliers/:id/status", deps.SupplierHandler.SetStatus)
	admin.Delete("/suppliers/:id", deps.SupplierHandler.Delete)
	admin.Post("/suppliers/:id/purchase", deps.SupplierHandler.RecordPurchase)

	admin.Get("/inventory/status", deps.InventoryHandler.Status)
	admin.Post("/inventory/restock", deps.InventoryHandler.Restock)
	admin.Post("/inventory/restock/bulk", deps.InventoryHandler.BulkRestock)
	admin.Get("/inventory/value", deps.InventoryHandler.Value)
	admin.Get("/inventory/turnover", deps.InventoryHandler.Turnover)
	admin.Get("/inventory/forecast", deps.InventoryHandler.Forecast)

	admin.Get("/reports/sales", deps.ReportHandler.Sales)
	admin.Get("/reports/products", deps.ReportHandler.Products)
	admin.Get("/reports/categories", deps.ReportHandler.Categories)
	admin.Get("/reports/customers", deps.ReportHandler.Customers)
	admin.Get("/reports/suppliers", deps.ReportHandler.Suppliers)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
