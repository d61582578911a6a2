package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
)

func (t FieldTable) str(rec Record, field string) (string, bool) {
	v, ok := t.Lookup(rec, field)
	if !ok {
		return "", false
	}
	return toString(v)
}

func (t FieldTable) optStr(rec Record, field string) *string {
	s, ok := t.str(rec, field)
	if !ok {
		return nil
	}
	return &s
}

func (t FieldTable) money(rec Record, field string) decimal.Decimal {
	v, _ := t.Lookup(rec, field)
	return toMoney(v)
}

func (t FieldTable) flag(rec Record, field string, def bool) bool {
	v, _ := t.Lookup(rec, field)
	return toBool(v, def)
}

// NormalizeService mapea un registro a CatalogService. ok=false si el registro no trae un
// id o un nombre recuperable y debe excluirse del resultado. Con expand=false los productos
// anidados se ignoran.
func NormalizeService(rec Record, t FieldTable, expand bool) (entity.CatalogService, bool) {
	id, okID := t.str(rec, FieldID)
	name, okName := t.str(rec, FieldName)
	if !okID || !okName {
		return entity.CatalogService{}, false
	}

	duration := entity.DefaultServiceDuration
	if v, ok := t.Lookup(rec, FieldDuration); ok {
		if n, ok := toPositiveInt(v); ok {
			duration = n
		}
	}

	svc := entity.CatalogService{
		ID:             id,
		Slug:           t.optStr(rec, FieldSlug),
		Name:           name,
		Description:    t.optStr(rec, FieldDescription),
		Duration:       duration,
		CustomerPrice:  t.money(rec, FieldCustomerPrice),
		VendorPayout:   t.money(rec, FieldVendorPayout),
		Category:       t.optStr(rec, FieldCategory),
		Icon:           t.optStr(rec, FieldIcon),
		AllowsProducts: t.flag(rec, FieldAllowsProducts, false),
		IsActive:       t.flag(rec, FieldIsActive, t.ActiveDefault),
		Products:       []entity.ServiceProduct{},
	}
	if expand {
		if v, ok := t.Lookup(rec, FieldProducts); ok {
			svc.Products = normalizeLinks(v)
		}
	}
	return svc, true
}

// NormalizeProduct mapea un registro a CatalogProduct; ok=false si debe excluirse.
func NormalizeProduct(rec Record, t FieldTable) (entity.CatalogProduct, bool) {
	id, okID := t.str(rec, FieldID)
	name, okName := t.str(rec, FieldName)
	if !okID || !okName {
		return entity.CatalogProduct{}, false
	}
	return entity.CatalogProduct{
		ID:            id,
		Slug:          t.optStr(rec, FieldSlug),
		Name:          name,
		Description:   t.optStr(rec, FieldDescription),
		Category:      t.optStr(rec, FieldCategory),
		Image:         t.optStr(rec, FieldImage),
		CustomerPrice: t.money(rec, FieldCustomerPrice),
		VendorPayout:  t.money(rec, FieldVendorPayout),
		SKU:           t.optStr(rec, FieldSKU),
		IsActive:      t.flag(rec, FieldIsActive, t.ActiveDefault),
	}, true
}

// NormalizeServices normaliza una lista conservando el orden y descartando los registros
// irrecuperables. Nunca devuelve nil.
func NormalizeServices(recs []Record, t FieldTable, expand bool) []entity.CatalogService {
	out := make([]entity.CatalogService, 0, len(recs))
	for _, rec := range recs {
		if svc, ok := NormalizeService(rec, t, expand); ok {
			out = append(out, svc)
		}
	}
	return out
}

// NormalizeProducts normaliza una lista de productos. Nunca devuelve nil.
func NormalizeProducts(recs []Record, t FieldTable) []entity.CatalogProduct {
	out := make([]entity.CatalogProduct, 0, len(recs))
	for _, rec := range recs {
		if p, ok := NormalizeProduct(rec, t); ok {
			out = append(out, p)
		}
	}
	return out
}

// normalizeLinks enlaces servicio-producto; los que no traen un producto recuperable se
// descartan.
func normalizeLinks(v any) []entity.ServiceProduct {
	items := asList(v)
	out := make([]entity.ServiceProduct, 0, len(items))
	for _, item := range items {
		rec, ok := asRecord(item)
		if !ok {
			continue
		}
		raw, _ := linkFields.Lookup(rec, FieldLinkProduct)
		prodRec, ok := asRecord(raw)
		if !ok {
			continue
		}
		product, ok := NormalizeProduct(prodRec, ProductFields)
		if !ok {
			continue
		}
		link := entity.ServiceProduct{
			ID:             product.ID,
			Quantity:       1,
			Optional:       linkFields.flag(rec, FieldLinkOptional, false),
			ProductCatalog: product,
		}
		if id, ok := linkFields.str(rec, FieldID); ok {
			link.ID = id
		}
		if q, ok := linkFields.Lookup(rec, FieldLinkQuantity); ok {
			if n, ok := toPositiveInt(q); ok {
				link.Quantity = n
			}
		}
		out = append(out, link)
	}
	return out
}
