package backend

import (
	"context"
	"net/url"
	"strconv"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

var (
	_ dcatalog.Source[entity.CatalogService] = (*GenericServiceSource)(nil)
	_ dcatalog.Source[entity.CatalogProduct] = (*GenericProductSource)(nil)
)

// GenericServiceSource tier del endpoint REST genérico GET /catalog/services.
type GenericServiceSource struct {
	c *Client
}

// NewGenericServiceSource construye el adaptador.
func NewGenericServiceSource(c *Client) *GenericServiceSource {
	return &GenericServiceSource{c: c}
}

func (s *GenericServiceSource) Name() string { return "generic" }

// Resolve serializa los filtros como query params y normaliza el sobre {success, data}.
func (s *GenericServiceSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogService, error) {
	recs, err := s.c.list(ctx, s.Name(), "/catalog/services", filterQuery(f, false))
	if err != nil {
		return nil, err
	}
	return dcatalog.NormalizeServices(recs, dcatalog.ServiceFields, f.IncludeProducts), nil
}

// GenericProductSource tier del endpoint REST genérico GET /catalog/products.
type GenericProductSource struct {
	c *Client
}

// NewGenericProductSource construye el adaptador.
func NewGenericProductSource(c *Client) *GenericProductSource {
	return &GenericProductSource{c: c}
}

func (s *GenericProductSource) Name() string { return "generic" }

func (s *GenericProductSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogProduct, error) {
	recs, err := s.c.list(ctx, s.Name(), "/catalog/products", filterQuery(f, true))
	if err != nil {
		return nil, err
	}
	return dcatalog.NormalizeProducts(recs, dcatalog.ProductFields), nil
}

func filterQuery(f dcatalog.Filters, withCategory bool) url.Values {
	q := url.Values{}
	q.Set("showInactive", strconv.FormatBool(f.ShowInactive))
	if f.IncludeProducts {
		q.Set("includeProducts", "true")
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.IsAtHome {
		q.Set("isAtHome", "true")
	}
	if withCategory && f.Category != "" {
		q.Set("category", f.Category)
	}
	return q
}
