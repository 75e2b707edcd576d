package handlers

import (
	"grocerhub/internal/config"
	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

type Deps struct {
	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	SupplierHandler  *SupplierHandler
	InventoryHandler *InventoryHandler
	ReportHandler    *ReportHandler
	AdminHandler     *AdminHandler
}

func NewDeps(store *repos.Store, cfg config.Config, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(store)
	orderRepo := repos.NewOrderRepo(store)
	supRepo := repos.NewSupplierRepo(store)

	catalogSvc := services.NewCatalogService(prodRepo)
	shopSvc := services.NewShopService(prodRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo)
	supSvc := services.NewSupplierService(supRepo, prodRepo)
	invSvc := services.NewInventoryService(prodRepo, orderRepo, cfg.LowStockThreshold)
	reportSvc := services.NewReportingService(orderRepo, prodRepo, supRepo)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc, Threshold: cfg.LowStockThreshold},
		CartHandler:      &CartHandler{Shop: shopSvc},
		OrderHandler:     &OrderHandler{Orders: orderSvc},
		SupplierHandler:  &SupplierHandler{Suppliers: supSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		ReportHandler:    &ReportHandler{Reports: reportSvc},
		AdminHandler:     &AdminHandler{Auth: auth},
	}
}
