package entity

import "github.com/shopspring/decimal"

// CatalogProduct es la forma canónica de un producto del catálogo (add-ons vendibles junto a
// un servicio). Los campos opcionales son punteros: se serializan como null, nunca se omiten.
type CatalogProduct struct {
	ID            string          `json:"id"`
	Slug          *string         `json:"slug"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category"`
	Image         *string         `json:"image"`
	CustomerPrice decimal.Decimal `json:"customerPrice"`
	VendorPayout  decimal.Decimal `json:"vendorPayout"`
	SKU           *string         `json:"sku"`
	IsActive      bool            `json:"isActive"`
}
