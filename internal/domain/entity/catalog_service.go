package entity

import "github.com/shopspring/decimal"

// DefaultServiceDuration duración en minutos cuando la fuente no la informa.
const DefaultServiceDuration = 60

// CatalogService es la forma canónica de un servicio del catálogo.
// Products nunca es nil; solo trae elementos si el llamador pidió la expansión.
type CatalogService struct {
	ID             string           `json:"id"`
	Slug           *string          `json:"slug"`
	Name           string           `json:"name"`
	Description    *string          `json:"description"`
	Duration       int              `json:"duration"`
	CustomerPrice  decimal.Decimal  `json:"customerPrice"`
	VendorPayout   decimal.Decimal  `json:"vendorPayout"`
	Category       *string          `json:"category"`
	Icon           *string          `json:"icon"`
	AllowsProducts bool             `json:"allowsProducts"`
	IsActive       bool             `json:"isActive"`
	Products       []ServiceProduct `json:"products"`
}

// ServiceProduct enlaza un producto del catálogo con un servicio.
type ServiceProduct struct {
	ID             string         `json:"id"`
	Quantity       int            `json:"quantity"`
	Optional       bool           `json:"optional"`
	ProductCatalog CatalogProduct `json:"productCatalog"`
}
