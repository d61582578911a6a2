package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/belleza-catalog-api/internal/application/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/repository"
	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/belleza-catalog-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/belleza-catalog-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubSource[T any] struct {
	name  string
	items []T
	last  dcatalog.Filters
}

func (s *stubSource[T]) Name() string { return s.name }

func (s *stubSource[T]) Resolve(_ context.Context, f dcatalog.Filters) ([]T, error) {
	s.last = f
	return s.items, nil
}

type stubWriter struct {
	rec   dcatalog.Record
	err   error
	token string
	id    string
}

func (w *stubWriter) Create(ctx context.Context, _ repository.CatalogKind, _ any) (dcatalog.Record, error) {
	w.token, _ = session.TokenFrom(ctx)
	return w.rec, w.err
}

func (w *stubWriter) Update(ctx context.Context, _ repository.CatalogKind, id string, _ any) (dcatalog.Record, error) {
	w.token, _ = session.TokenFrom(ctx)
	w.id = id
	return w.rec, w.err
}

func (w *stubWriter) Delete(ctx context.Context, _ repository.CatalogKind, id string) error {
	w.token, _ = session.TokenFrom(ctx)
	w.id = id
	return w.err
}

type catalogFixture struct {
	app      *fiber.App
	services *stubSource[entity.CatalogService]
	products *stubSource[entity.CatalogProduct]
	writer   *stubWriter
}

func newCatalogFixture() *catalogFixture {
	fx := &catalogFixture{
		services: &stubSource[entity.CatalogService]{name: "primary"},
		products: &stubSource[entity.CatalogProduct]{name: "primary"},
		writer:   &stubWriter{},
	}
	uc := appcatalog.NewUseCase(
		appcatalog.NewServiceChain(appcatalog.Sources[entity.CatalogService]{Primary: fx.services}, zerolog.Nop()),
		appcatalog.NewProductChain(appcatalog.Sources[entity.CatalogProduct]{Primary: fx.products}, zerolog.Nop()),
		fx.writer,
	)
	fx.app = fiber.New()
	apphttp.Router(fx.app, apphttp.RouterDeps{CatalogUC: uc, JWTSecret: testJWTSecret, Log: zerolog.Nop()})
	return fx
}

func (fx *catalogFixture) do(t *testing.T, method, target, body, auth string) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := fx.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestListServices_SobreYFiltros(t *testing.T) {
	fx := newCatalogFixture()
	fx.services.items = []entity.CatalogService{{ID: "s1", Name: "Facial", Duration: 60, IsActive: true, Products: []entity.ServiceProduct{}}}

	resp, body := fx.do(t, http.MethodGet, "/api/catalog/services?search=facial&includeProducts=true&showInactive=true", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	assert.Equal(t, "facial", fx.services.last.Search)
	assert.True(t, fx.services.last.IncludeProducts)
	assert.True(t, fx.services.last.ShowInactive)
	assert.False(t, fx.services.last.IsAtHome)
}

func TestListProducts_VacioEsListaVacia(t *testing.T) {
	fx := newCatalogFixture()

	resp, body := fx.do(t, http.MethodGet, "/api/catalog/products?category=Cabello", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{}, body["data"], "data nunca es null")
	assert.Equal(t, "Cabello", fx.products.last.Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateService_SinTokenRetorna401(t *testing.T) {
	fx := newCatalogFixture()

	resp, _ := fx.do(t, http.MethodPost, "/api/catalog/services", `{"name":"X"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateService_VendorRetorna403(t *testing.T) {
	fx := newCatalogFixture()

	resp, _ := fx.do(t, http.MethodPost, "/api/catalog/services", `{"name":"X"}`, tokenForRole(t, pkgjwt.RoleVendor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateService_ReenviaTokenYDevuelve201(t *testing.T) {
	fx := newCatalogFixture()
	fx.writer.rec = dcatalog.Record{"id": "s1", "name": "Keratina", "customerPrice": json.Number("80")}
	auth := tokenForRole(t, pkgjwt.RoleManager)

	resp, body := fx.do(t, http.MethodPost, "/api/catalog/services", `{"name":"Keratina","customerPrice":80}`, auth)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "s1", data["id"])
	assert.Equal(t, strings.TrimPrefix(auth, "Bearer "), fx.writer.token)
}

func TestCreateService_SinNombreRetorna400(t *testing.T) {
	fx := newCatalogFixture()

	resp, body := fx.do(t, http.MethodPost, "/api/catalog/services", `{"duration":30}`, tokenForRole(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestUpdateProduct_ErrorDelBackendConservaStatusYCuerpo(t *testing.T) {
	fx := newCatalogFixture()
	fx.writer.err = &domain.MutationError{Status: http.StatusNotFound, Body: "not found"}

	resp, body := fx.do(t, http.MethodPut, "/api/catalog/products/p1", `{"name":"Crema"}`, tokenForRole(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UPSTREAM", body["code"])
	assert.Equal(t, "not found", body["message"])
	assert.Equal(t, "p1", fx.writer.id)
}

func TestDeleteService_204(t *testing.T) {
	fx := newCatalogFixture()

	resp, _ := fx.do(t, http.MethodDelete, "/api/catalog/services/s9", "", tokenForRole(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "s9", fx.writer.id)
}

func TestCreateProduct_CuerpoInvalidoRetorna400(t *testing.T) {
	fx := newCatalogFixture()

	resp, body := fx.do(t, http.MethodPost, "/api/catalog/products", `{"name":`, tokenForRole(t, pkgjwt.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}
