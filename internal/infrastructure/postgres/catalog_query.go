package postgres

import (
	"strconv"
	"strings"

	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
)

// selectQuery arma un SELECT con predicados AND y parámetros posicionales.
type selectQuery struct {
	from  string
	where []string
	args  []any
	order string
}

func newSelect(from string) *selectQuery {
	return &selectQuery{from: from}
}

// arg registra un parámetro y devuelve su marcador ($n).
func (q *selectQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *selectQuery) and(cond string) {
	q.where = append(q.where, cond)
}

// search ILIKE sobre las columnas indicadas (OR entre ellas).
func (q *selectQuery) search(term string, columns ...string) {
	if term == "" {
		return
	}
	p := q.arg("%" + escapeLike(term) + "%")
	conds := make([]string, len(columns))
	for i, c := range columns {
		conds[i] = c + " ILIKE " + p
	}
	q.and("(" + strings.Join(conds, " OR ") + ")")
}

func (q *selectQuery) build() (string, []any) {
	var b strings.Builder
	b.WriteString(q.from)
	if len(q.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.where, " AND "))
	}
	if q.order != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.order)
	}
	return b.String(), q.args
}

// escapeLike neutraliza los comodines de LIKE en texto libre.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

const (
	primaryServiceSelect = `SELECT id::text AS id, slug, name, description, duration, customer_price, vendor_payout,
	category, icon, allows_products, is_active FROM catalog_services`

	primaryProductSelect = `SELECT id::text AS id, slug, name, description, category, image, customer_price,
	vendor_payout, sku, is_active FROM catalog_products`

	serviceProductsSelect = `SELECT sp.id::text AS link_id, sp.service_id::text AS service_id, sp.quantity, sp.optional,
	p.id::text AS id, p.slug, p.name, p.description, p.category, p.image, p.customer_price, p.vendor_payout,
	p.sku, p.is_active
	FROM catalog_service_products sp
	JOIN catalog_products p ON p.id = sp.product_id`

	legacyServiceSelect = `SELECT s.id::text AS id, s.name, s.description, s.duration, s.price, s.icon,
	s.is_active, c.name AS category_name
	FROM services s
	LEFT JOIN service_categories c ON c.id = s.category_id`

	legacyProductSelect = `SELECT p.id::text AS id, p.name, p.description, p.price, p.image_url, p.sku,
	p.is_active, c.name AS category_name
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id`
)

func primaryServicesQuery(f dcatalog.Filters) (string, []any) {
	q := newSelect(primaryServiceSelect)
	if f.ExcludesInactive() {
		q.and("is_active = true")
	}
	if f.IsAtHome {
		q.and("is_at_home = true")
	}
	q.search(f.Search, "name", "description")
	q.order = "name ASC"
	return q.build()
}

func primaryProductsQuery(f dcatalog.Filters) (string, []any) {
	q := newSelect(primaryProductSelect)
	if f.ExcludesInactive() {
		q.and("is_active = true")
	}
	if f.IsAtHome {
		q.and("is_at_home = true")
	}
	if f.Category != "" {
		q.and("lower(category) = lower(" + q.arg(f.Category) + ")")
	}
	q.search(f.Search, "name", "description")
	q.order = "name ASC"
	return q.build()
}

func serviceProductsQuery(serviceIDs []string) (string, []any) {
	q := newSelect(serviceProductsSelect)
	q.and("sp.service_id::text = ANY(" + q.arg(serviceIDs) + "::text[])")
	q.order = "sp.service_id, sp.position ASC, p.name ASC"
	return q.build()
}

func legacyServicesQuery(f dcatalog.Filters) (string, []any) {
	q := newSelect(legacyServiceSelect)
	if f.ExcludesInactive() {
		q.and("s.is_active = true")
	}
	q.search(f.Search, "s.name", "s.description")
	q.order = "s.name ASC"
	return q.build()
}

func legacyProductsQuery(f dcatalog.Filters) (string, []any) {
	q := newSelect(legacyProductSelect)
	if f.ExcludesInactive() {
		q.and("p.is_active = true")
	}
	if f.Category != "" {
		q.and("lower(c.name) = lower(" + q.arg(f.Category) + ")")
	}
	q.search(f.Search, "p.name", "p.description")
	q.order = "p.name ASC"
	return q.build()
}
