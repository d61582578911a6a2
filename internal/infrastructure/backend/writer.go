package backend

import (
	"context"
	"net/http"
	"net/url"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/repository"
)

var _ repository.CatalogWriter = (*Writer)(nil)

// Writer implementación del puerto CatalogWriter sobre los endpoints de mutación
// POST/PUT/DELETE /catalog/{services|products}[/:id].
type Writer struct {
	c *Client
}

// NewWriter construye el adaptador de escritura.
func NewWriter(c *Client) *Writer {
	return &Writer{c: c}
}

func (w *Writer) Create(ctx context.Context, kind repository.CatalogKind, body any) (dcatalog.Record, error) {
	return w.c.mutate(ctx, http.MethodPost, "/catalog/"+string(kind), body)
}

func (w *Writer) Update(ctx context.Context, kind repository.CatalogKind, id string, body any) (dcatalog.Record, error) {
	return w.c.mutate(ctx, http.MethodPut, "/catalog/"+string(kind)+"/"+url.PathEscape(id), body)
}

func (w *Writer) Delete(ctx context.Context, kind repository.CatalogKind, id string) error {
	_, err := w.c.mutate(ctx, http.MethodDelete, "/catalog/"+string(kind)+"/"+url.PathEscape(id), nil)
	return err
}
