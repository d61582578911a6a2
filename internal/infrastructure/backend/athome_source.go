package backend

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

var (
	_ dcatalog.Source[entity.CatalogService] = (*AtHomeServiceSource)(nil)
	_ dcatalog.Source[entity.CatalogProduct] = (*AtHomeProductSource)(nil)
)

// AtHomeServiceSource tier especializado GET /customer/athome/services. El endpoint de
// cliente no acepta filtros, así que activo/búsqueda se aplican aquí.
// Todo servicio a domicilio admite productos adicionales.
type AtHomeServiceSource struct {
	c *Client
}

// NewAtHomeServiceSource construye el adaptador.
func NewAtHomeServiceSource(c *Client) *AtHomeServiceSource {
	return &AtHomeServiceSource{c: c}
}

func (s *AtHomeServiceSource) Name() string { return "athome" }

func (s *AtHomeServiceSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogService, error) {
	recs, err := s.c.list(ctx, s.Name(), "/customer/athome/services", nil)
	if err != nil {
		return nil, err
	}
	all := dcatalog.NormalizeServices(recs, dcatalog.ServiceFields, f.IncludeProducts)
	needle := foldText(f.Search)
	out := make([]entity.CatalogService, 0, len(all))
	for _, svc := range all {
		if f.ExcludesInactive() && !svc.IsActive {
			continue
		}
		if !matches(needle, svc.Name, svc.Description) {
			continue
		}
		svc.AllowsProducts = true
		out = append(out, svc)
	}
	return out, nil
}

// AtHomeProductSource tier especializado GET /customer/athome/products.
type AtHomeProductSource struct {
	c *Client
}

// NewAtHomeProductSource construye el adaptador.
func NewAtHomeProductSource(c *Client) *AtHomeProductSource {
	return &AtHomeProductSource{c: c}
}

func (s *AtHomeProductSource) Name() string { return "athome" }

func (s *AtHomeProductSource) Resolve(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogProduct, error) {
	recs, err := s.c.list(ctx, s.Name(), "/customer/athome/products", nil)
	if err != nil {
		return nil, err
	}
	all := dcatalog.NormalizeProducts(recs, dcatalog.ProductFields)
	needle := foldText(f.Search)
	category := foldText(f.Category)
	out := make([]entity.CatalogProduct, 0, len(all))
	for _, p := range all {
		if f.ExcludesInactive() && !p.IsActive {
			continue
		}
		if category != "" && (p.Category == nil || foldText(*p.Category) != category) {
			continue
		}
		if !matches(needle, p.Name, p.Description) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// matches búsqueda por subcadena sobre nombre y descripción; needle ya viene plegado.
func matches(needle, name string, description *string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(foldText(name), needle) {
		return true
	}
	return description != nil && strings.Contains(foldText(*description), needle)
}

// foldText pliega mayúsculas y elimina tildes: "Fácial" y "FACIAL" comparan igual.
func foldText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}
