package catalog

import (
	"github.com/rs/zerolog"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

// Sources fuentes de una entidad por prioridad. Una fuente nil desactiva su tier.
type Sources[T any] struct {
	AtHome  dcatalog.Source[T] // catálogo especializado a domicilio
	Primary dcatalog.Source[T] // datastore primario
	Generic dcatalog.Source[T] // endpoint REST genérico
	Legacy  dcatalog.Source[T] // datastore legado (piso)
}

func onlyAtHome(f dcatalog.Filters) bool { return f.IsAtHome }

// NewServiceChain cadena de servicios: a domicilio (si aplica) → primario → genérico → legado.
// Un primario vacío siempre cae al siguiente tier.
func NewServiceChain(src Sources[entity.CatalogService], log zerolog.Logger) *Chain[entity.CatalogService] {
	return NewChain("services", log,
		Tier[entity.CatalogService]{Source: src.AtHome, When: onlyAtHome},
		Tier[entity.CatalogService]{Source: src.Primary},
		Tier[entity.CatalogService]{Source: src.Generic},
		Tier[entity.CatalogService]{Source: src.Legacy},
	)
}

// NewProductChain cadena de productos. Si el llamador excluyó los inactivos, un primario
// vacío es definitivo y no se consultan los tiers inferiores.
func NewProductChain(src Sources[entity.CatalogProduct], log zerolog.Logger) *Chain[entity.CatalogProduct] {
	return NewChain("products", log,
		Tier[entity.CatalogProduct]{Source: src.AtHome, When: onlyAtHome},
		Tier[entity.CatalogProduct]{Source: src.Primary, TrustEmpty: dcatalog.Filters.ExcludesInactive},
		Tier[entity.CatalogProduct]{Source: src.Generic},
		Tier[entity.CatalogProduct]{Source: src.Legacy},
	)
}
