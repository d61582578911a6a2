package repository

import (
	"context"

	"github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
)

// CatalogKind colección del backend sobre la que opera una escritura.
type CatalogKind string

const (
	KindServices CatalogKind = "services"
	KindProducts CatalogKind = "products"
)

// CatalogWriter define el puerto de escritura del catálogo (DIP). Las escrituras van siempre
// al backend genérico: no hay fallback ni reintento entre fuentes.
type CatalogWriter interface {
	Create(ctx context.Context, kind CatalogKind, body any) (catalog.Record, error)
	Update(ctx context.Context, kind CatalogKind, id string, body any) (catalog.Record, error)
	Delete(ctx context.Context, kind CatalogKind, id string) error
}
