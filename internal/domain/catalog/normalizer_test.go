package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
)

// ──────────────────────────────────────────────────────────────────────────────
// Servicios
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeService_CamelCaseGanaSobreSnakeCase(t *testing.T) {
	rec := catalog.Record{
		"id":             "s1",
		"name":           "Manicure",
		"customerPrice":  json.Number("50"),
		"customer_price": json.Number("40"),
		"price":          json.Number("30"),
		"vendor_payout":  "35.5",
	}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Equal(t, "50", svc.CustomerPrice.String(), "customerPrice tiene prioridad")
	assert.Equal(t, "35.5", svc.VendorPayout.String())
}

func TestNormalizeService_PriceComoUltimoRecurso(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "Pedicure", "price": 25}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Equal(t, "25", svc.CustomerPrice.String())
	assert.True(t, svc.VendorPayout.IsZero(), "price no alimenta vendorPayout fuera del legado")
}

func TestNormalizeService_Legado_PriceAlimentaAmbosPrecios(t *testing.T) {
	rec := catalog.Record{
		"id":            "7",
		"name":          "Corte",
		"price":         "42.50",
		"category_name": "Cabello",
		"duration":      int32(45),
	}

	svc, ok := catalog.NormalizeService(rec, catalog.LegacyServiceFields, false)
	require.True(t, ok)
	assert.Equal(t, "42.5", svc.CustomerPrice.String())
	assert.Equal(t, "42.5", svc.VendorPayout.String())
	require.NotNil(t, svc.Category)
	assert.Equal(t, "Cabello", *svc.Category)
	assert.Equal(t, 45, svc.Duration)
	assert.True(t, svc.IsActive, "sin is_active el legado se asume activo")
}

func TestNormalizeService_PrecioNoNumericoValeCero(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X", "customerPrice": "gratis", "vendorPayout": []any{1}}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.True(t, svc.CustomerPrice.IsZero())
	assert.True(t, svc.VendorPayout.IsZero())
}

func TestNormalizeService_PrecioNegativoSeAjustaACero(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X", "customerPrice": -10}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.True(t, svc.CustomerPrice.IsZero())
}

func TestNormalizeService_DuracionPorDefecto(t *testing.T) {
	cases := map[string]any{
		"ausente":     nil,
		"cero":        0,
		"negativa":    -15,
		"no numérica": "una hora",
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			rec := catalog.Record{"id": "s1", "name": "X"}
			if v != nil {
				rec["duration"] = v
			}
			svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
			require.True(t, ok)
			assert.Equal(t, 60, svc.Duration)
		})
	}
}

func TestNormalizeService_DuracionDesdeCadena(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X", "duration_minutes": "90"}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Equal(t, 90, svc.Duration)
}

func TestNormalizeService_Truthiness(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"uno", 1, true},
		{"cero", 0, false},
		{"cadena true", "true", true},
		{"cadena false", "false", false},
		{"cadena cero", "0", false},
		{"cadena vacía", "", false},
		{"cadena arbitraria", "sí", true},
		{"json number", json.Number("1"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := catalog.Record{"id": "s1", "name": "X", "allows_products": tc.v}
			svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
			require.True(t, ok)
			assert.Equal(t, tc.want, svc.AllowsProducts)
		})
	}
}

func TestNormalizeService_IsActivePorDefecto(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X"}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.True(t, svc.IsActive)
	assert.False(t, svc.AllowsProducts)

	inactive := catalog.FieldTable{Variants: catalog.ServiceFields.Variants, ActiveDefault: false}
	svc, ok = catalog.NormalizeService(rec, inactive, false)
	require.True(t, ok)
	assert.False(t, svc.IsActive, "el default de isActive es configurable por tabla")
}

func TestNormalizeService_SinIDONombreSeExcluye(t *testing.T) {
	_, ok := catalog.NormalizeService(catalog.Record{"name": "Sin id"}, catalog.ServiceFields, false)
	assert.False(t, ok)

	_, ok = catalog.NormalizeService(catalog.Record{"id": "s1", "name": "   "}, catalog.ServiceFields, false)
	assert.False(t, ok, "un nombre en blanco no es recuperable")
}

func TestNormalizeService_IDUUIDDePgx(t *testing.T) {
	id := uuid.New()
	rec := catalog.Record{"id": [16]byte(id), "name": "X"}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Equal(t, id.String(), svc.ID)
}

func TestNormalizeService_CategoriaComoObjeto(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X", "category": map[string]any{"id": "c1", "name": "Uñas"}}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	require.NotNil(t, svc.Category)
	assert.Equal(t, "Uñas", *svc.Category)
}

func TestNormalizeService_OpcionalesAusentesSonNil(t *testing.T) {
	svc, ok := catalog.NormalizeService(catalog.Record{"id": "s1", "name": "X"}, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Nil(t, svc.Slug)
	assert.Nil(t, svc.Description)
	assert.Nil(t, svc.Category)
	assert.Nil(t, svc.Icon)
	assert.NotNil(t, svc.Products, "products nunca es nil")
	assert.Empty(t, svc.Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos anidados
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeService_ExpandeProductos(t *testing.T) {
	rec := catalog.Record{
		"id":   "s1",
		"name": "Manicure",
		"products": []any{
			map[string]any{
				"id":       "l1",
				"quantity": json.Number("2"),
				"optional": true,
				"productCatalog": map[string]any{
					"id": "p1", "name": "Esmalte", "customer_price": "12.5",
				},
			},
			map[string]any{
				"product": map[string]any{"id": "p2", "name": "Lima"},
			},
			map[string]any{"id": "l3", "quantity": 1},
		},
	}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, true)
	require.True(t, ok)
	require.Len(t, svc.Products, 2, "el enlace sin producto se descarta")

	first := svc.Products[0]
	assert.Equal(t, "l1", first.ID)
	assert.Equal(t, 2, first.Quantity)
	assert.True(t, first.Optional)
	assert.Equal(t, "p1", first.ProductCatalog.ID)
	assert.Equal(t, "12.5", first.ProductCatalog.CustomerPrice.String())

	second := svc.Products[1]
	assert.Equal(t, "p2", second.ID, "sin id de enlace se usa el del producto")
	assert.Equal(t, 1, second.Quantity)
	assert.False(t, second.Optional)
}

func TestNormalizeService_SinExpandirIgnoraProductos(t *testing.T) {
	rec := catalog.Record{
		"id": "s1", "name": "X",
		"products": []any{map[string]any{"productCatalog": map[string]any{"id": "p1", "name": "Y"}}},
	}

	svc, ok := catalog.NormalizeService(rec, catalog.ServiceFields, false)
	require.True(t, ok)
	assert.Empty(t, svc.Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y listas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeProduct_Variantes(t *testing.T) {
	rec := catalog.Record{
		"product_id":   "p1",
		"product_name": "Crema",
		"image_url":    "https://cdn/img.png",
		"sku":          "CR-01",
		"is_active":    "false",
		"price":        10,
	}

	p, ok := catalog.NormalizeProduct(rec, catalog.ProductFields)
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Crema", p.Name)
	require.NotNil(t, p.Image)
	assert.Equal(t, "https://cdn/img.png", *p.Image)
	require.NotNil(t, p.SKU)
	assert.Equal(t, "CR-01", *p.SKU)
	assert.False(t, p.IsActive)
	assert.Equal(t, "10", p.CustomerPrice.String())
}

func TestNormalizeLists_ConservaOrdenYNuncaNil(t *testing.T) {
	recs := []catalog.Record{
		{"id": "b", "name": "B"},
		{"name": "sin id"},
		{"id": "a", "name": "A"},
	}

	out := catalog.NormalizeProducts(recs, catalog.ProductFields)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)

	assert.NotNil(t, catalog.NormalizeProducts(nil, catalog.ProductFields))
	assert.NotNil(t, catalog.NormalizeServices(nil, catalog.ServiceFields, true))
}

func TestNormalize_Idempotente(t *testing.T) {
	rec := catalog.Record{"id": "s1", "name": "X", "price": "20", "active": 0}

	a, _ := catalog.NormalizeService(rec, catalog.ServiceFields, true)
	b, _ := catalog.NormalizeService(rec, catalog.ServiceFields, true)
	assert.Equal(t, a, b)
	assert.False(t, a.IsActive)
}

func TestFilters_ExcludesInactive(t *testing.T) {
	assert.True(t, catalog.Filters{}.ExcludesInactive())
	assert.False(t, catalog.Filters{ShowInactive: true}.ExcludesInactive())
}
