package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

// CatalogServiceInput cuerpo de creación/actualización de un servicio. Se reenvía tal cual al
// backend: los campos nil no se envían.
type CatalogServiceInput struct {
	Slug           *string               `json:"slug,omitempty"`
	Name           *string               `json:"name,omitempty"`
	Description    *string               `json:"description,omitempty"`
	Duration       *int                  `json:"duration,omitempty"`
	CustomerPrice  *decimal.Decimal      `json:"customerPrice,omitempty"`
	VendorPayout   *decimal.Decimal      `json:"vendorPayout,omitempty"`
	Category       *string               `json:"category,omitempty"`
	Icon           *string               `json:"icon,omitempty"`
	AllowsProducts *bool                 `json:"allowsProducts,omitempty"`
	IsActive       *bool                 `json:"isActive,omitempty"`
	Products       []ServiceProductInput `json:"products,omitempty"`
}

// ServiceProductInput enlace de un producto a un servicio.
type ServiceProductInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Optional  bool   `json:"optional"`
}

// CatalogProductInput cuerpo de creación/actualización de un producto.
type CatalogProductInput struct {
	Slug          *string          `json:"slug,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Image         *string          `json:"image,omitempty"`
	CustomerPrice *decimal.Decimal `json:"customerPrice,omitempty"`
	VendorPayout  *decimal.Decimal `json:"vendorPayout,omitempty"`
	SKU           *string          `json:"sku,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

// ServiceListResponse salida de GET /api/catalog/services (mismo sobre que el backend).
type ServiceListResponse struct {
	Success bool                    `json:"success"`
	Data    []entity.CatalogService `json:"data"`
}

// ProductListResponse salida de GET /api/catalog/products.
type ProductListResponse struct {
	Success bool                    `json:"success"`
	Data    []entity.CatalogProduct `json:"data"`
}

// ServiceResponse salida de las mutaciones de servicios. Data es null si el backend no
// devolvió la entidad.
type ServiceResponse struct {
	Success bool                   `json:"success"`
	Data    *entity.CatalogService `json:"data"`
}

// ProductResponse salida de las mutaciones de productos.
type ProductResponse struct {
	Success bool                   `json:"success"`
	Data    *entity.CatalogProduct `json:"data"`
}
