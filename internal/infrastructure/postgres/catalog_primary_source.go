package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

var (
	_ dcatalog.Source[entity.CatalogService] = (*PrimaryServiceSource)(nil)
	_ dcatalog.Source[entity.CatalogProduct] = (*PrimaryProductSource)(nil)
)

// PrimaryServiceSource tier del datastore primario (tabla catalog_services).
type PrimaryServiceSource struct {
	q Querier
}

// NewPrimaryServiceSource construye el adaptador. Pasar pool o tx (Querier).
func NewPrimaryServiceSource(q Querier) *PrimaryServiceSource {
	return &PrimaryServiceSource{q: q}
}

func (s *PrimaryServiceSource) Name() string { return "primary" }

// Resolve filtra por activo, contexto a domicilio y texto libre, ordenado por nombre.
// Con IncludeProducts carga además los productos enlazados en una segunda consulta.
func (s *PrimaryServiceSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogService, error) {
	sql, args := primaryServicesQuery(f)
	recs, err := queryRecords(ctx, s.q, sql, args...)
	if err != nil {
		return nil, &domain.UpstreamError{Source: s.Name(), Err: fmt.Errorf("list catalog_services: %w", err)}
	}
	if f.IncludeProducts && len(recs) > 0 {
		if err := s.attachProducts(ctx, recs); err != nil {
			return nil, &domain.UpstreamError{Source: s.Name(), Err: err}
		}
	}
	return dcatalog.NormalizeServices(recs, dcatalog.ServiceFields, f.IncludeProducts), nil
}

// attachProducts agrega a cada registro de servicio la lista "products" con sus enlaces,
// en la forma {id, quantity, optional, productCatalog}.
func (s *PrimaryServiceSource) attachProducts(ctx context.Context, services []map[string]any) error {
	ids := make([]string, 0, len(services))
	byID := make(map[string]map[string]any, len(services))
	for _, rec := range services {
		id, ok := rec["id"].(string)
		if !ok || id == "" {
			continue
		}
		ids = append(ids, id)
		byID[id] = rec
		rec["products"] = []any{}
	}
	if len(ids) == 0 {
		return nil
	}

	sql, args := serviceProductsQuery(ids)
	rows, err := queryRecords(ctx, s.q, sql, args...)
	if err != nil {
		return fmt.Errorf("list catalog_service_products: %w", err)
	}
	for _, row := range rows {
		serviceID, _ := row["service_id"].(string)
		svc, ok := byID[serviceID]
		if !ok {
			continue
		}
		link := map[string]any{
			"id":       row["link_id"],
			"quantity": row["quantity"],
			"optional": row["optional"],
		}
		product := make(map[string]any, len(row))
		for k, v := range row {
			switch k {
			case "link_id", "service_id", "quantity", "optional":
			default:
				product[k] = v
			}
		}
		link["productCatalog"] = product
		svc["products"] = append(svc["products"].([]any), link)
	}
	return nil
}

// PrimaryProductSource tier del datastore primario (tabla catalog_products).
type PrimaryProductSource struct {
	q Querier
}

// NewPrimaryProductSource construye el adaptador.
func NewPrimaryProductSource(q Querier) *PrimaryProductSource {
	return &PrimaryProductSource{q: q}
}

func (s *PrimaryProductSource) Name() string { return "primary" }

func (s *PrimaryProductSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogProduct, error) {
	sql, args := primaryProductsQuery(f)
	recs, err := queryRecords(ctx, s.q, sql, args...)
	if err != nil {
		return nil, &domain.UpstreamError{Source: s.Name(), Err: fmt.Errorf("list catalog_products: %w", err)}
	}
	return dcatalog.NormalizeProducts(recs, dcatalog.ProductFields), nil
}
