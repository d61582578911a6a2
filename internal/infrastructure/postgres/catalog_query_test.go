package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
)

func TestPrimaryServicesQuery_PorDefectoSoloActivos(t *testing.T) {
	sql, args := primaryServicesQuery(dcatalog.Filters{})

	assert.Contains(t, sql, "FROM catalog_services WHERE is_active = true ORDER BY name ASC")
	assert.Empty(t, args)
}

func TestPrimaryServicesQuery_BusquedaYDomicilio(t *testing.T) {
	sql, args := primaryServicesQuery(dcatalog.Filters{ShowInactive: true, IsAtHome: true, Search: "50%_off"})

	assert.NotContains(t, sql, "is_active = true")
	assert.Contains(t, sql, "is_at_home = true AND (name ILIKE $1 OR description ILIKE $1)")
	assert.Equal(t, []any{`%50\%\_off%`}, args)
}

func TestPrimaryProductsQuery_Categoria(t *testing.T) {
	sql, args := primaryProductsQuery(dcatalog.Filters{Category: "Cabello", Search: "crema"})

	assert.Contains(t, sql, "is_active = true AND lower(category) = lower($1) AND (name ILIKE $2 OR description ILIKE $2)")
	assert.Equal(t, []any{"Cabello", "%crema%"}, args)
}

func TestServiceProductsQuery_OrdenPorPosicion(t *testing.T) {
	sql, args := serviceProductsQuery([]string{"s1", "s2"})

	assert.Contains(t, sql, "sp.service_id::text = ANY($1::text[])")
	assert.Contains(t, sql, "ORDER BY sp.service_id, sp.position ASC, p.name ASC")
	assert.Equal(t, []any{[]string{"s1", "s2"}}, args)
}

func TestLegacyQueries_IgnoranDomicilio(t *testing.T) {
	sql, _ := legacyServicesQuery(dcatalog.Filters{IsAtHome: true})
	assert.NotContains(t, sql, "is_at_home")
	assert.Contains(t, sql, "LEFT JOIN service_categories")

	sql, args := legacyProductsQuery(dcatalog.Filters{Category: "Uñas", ShowInactive: true})
	assert.NotContains(t, sql, "is_active = true")
	assert.Contains(t, sql, "lower(c.name) = lower($1)")
	assert.Equal(t, []any{"Uñas"}, args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
}
