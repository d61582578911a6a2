package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

var (
	_ dcatalog.Source[entity.CatalogService] = (*LegacyServiceSource)(nil)
	_ dcatalog.Source[entity.CatalogProduct] = (*LegacyProductSource)(nil)
)

// LegacyServiceSource tier legado: tabla services con la categoría en service_categories y
// un único precio compartido por cliente y vendedor. El esquema legado no tiene contexto a
// domicilio ni enlaces a productos.
type LegacyServiceSource struct {
	q Querier
}

// NewLegacyServiceSource construye el adaptador.
func NewLegacyServiceSource(q Querier) *LegacyServiceSource {
	return &LegacyServiceSource{q: q}
}

func (s *LegacyServiceSource) Name() string { return "legacy" }

func (s *LegacyServiceSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogService, error) {
	sql, args := legacyServicesQuery(f)
	recs, err := queryRecords(ctx, s.q, sql, args...)
	if err != nil {
		return nil, &domain.UpstreamError{Source: s.Name(), Err: fmt.Errorf("list services: %w", err)}
	}
	return dcatalog.NormalizeServices(recs, dcatalog.LegacyServiceFields, false), nil
}

// LegacyProductSource tier legado de productos (products + product_categories).
type LegacyProductSource struct {
	q Querier
}

// NewLegacyProductSource construye el adaptador.
func NewLegacyProductSource(q Querier) *LegacyProductSource {
	return &LegacyProductSource{q: q}
}

func (s *LegacyProductSource) Name() string { return "legacy" }

func (s *LegacyProductSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogProduct, error) {
	sql, args := legacyProductsQuery(f)
	recs, err := queryRecords(ctx, s.q, sql, args...)
	if err != nil {
		return nil, &domain.UpstreamError{Source: s.Name(), Err: fmt.Errorf("list products: %w", err)}
	}
	return dcatalog.NormalizeProducts(recs, dcatalog.LegacyProductFields), nil
}
